// file: service/scoring_service.go

package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"scoring-api/logger"
	"scoring-api/model"
	"scoring-api/repository"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const scoreTTL = time.Hour

// ScoringService computes scores and looks up client interests. The cache
// is best-effort: its failures are logged and ignored. Failures of the
// store fail the call.
type ScoringService struct {
	cache repository.Store
	store repository.Store
}

func NewScoringService(cache, store repository.Store) *ScoringService {
	return &ScoringService{cache: cache, store: store}
}

func scoreKey(req model.OnlineScoreRequest) string {
	birthday := ""
	if t, err := time.Parse("02.01.2006", req.Birthday); err == nil {
		birthday = t.Format("20060102")
	}
	sum := md5.Sum([]byte(req.FirstName + req.LastName + req.Phone + birthday))
	return "uid:" + hex.EncodeToString(sum[:])
}

// Score returns the cached score for the person or computes and caches it.
func (s *ScoringService) Score(ctx context.Context, req model.OnlineScoreRequest) float64 {
	key := scoreKey(req)
	log := logger.Log.WithField("key", key)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		if score, perr := strconv.ParseFloat(cached, 64); perr == nil && score > 0 {
			return score
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.WithError(err).Warn("Score cache read failed")
	}

	var score float64
	if req.Phone != "" {
		score += 1.5
	}
	if req.Email != "" {
		score += 1.5
	}
	if req.Birthday != "" && req.Gender != nil && *req.Gender != model.GenderUnknown {
		score += 1.5
	}
	if req.FirstName != "" && req.LastName != "" {
		score += 0.5
	}

	if err := s.cache.Set(ctx, key, strconv.FormatFloat(score, 'f', -1, 64), scoreTTL); err != nil {
		log.WithError(err).Warn("Score cache write failed")
	}
	return score
}

// Interests returns the interests stored for a client. A client without a
// stored value has no interests.
func (s *ScoringService) Interests(ctx context.Context, clientID int) ([]string, error) {
	key := fmt.Sprintf("i:%d", clientID)

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrStoreFailure, key, err)
	}

	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"key":   key,
			"value": raw,
		}).WithError(err).Error("Stored interests are not a JSON list of strings")
		return nil, fmt.Errorf("%w: decode %s: %w", ErrStoreFailure, key, err)
	}
	if interests == nil {
		interests = []string{}
	}
	return interests, nil
}

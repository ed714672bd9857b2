// file: service/dispatcher.go

package service

import (
	"context"
	"errors"
	"fmt"
	"scoring-api/common"
	"scoring-api/logger"
	"scoring-api/model"
	"scoring-api/validation"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
)

// MethodFunc serves one API method with arguments that already passed its
// schema. Errors wrapping ErrStoreFailure map to INTERNAL_ERROR.
type MethodFunc func(ctx context.Context, args validation.Record, reqCtx *model.RequestContext) (any, error)

type method struct {
	schema  model.Schema
	handler MethodFunc
}

// Dispatcher validates a raw envelope, authenticates it and routes it to a
// registered method. The method table is fixed before serving starts.
type Dispatcher struct {
	validator *validation.Validator
	auth      *AuthService
	methods   map[string]method
}

// NewDispatcher returns a Dispatcher with online_score and
// clients_interests registered.
func NewDispatcher(validator *validation.Validator, auth *AuthService, scoring *ScoringService) *Dispatcher {
	d := &Dispatcher{
		validator: validator,
		auth:      auth,
		methods:   make(map[string]method),
	}
	d.Register(model.MethodOnlineScore, model.OnlineScoreSchema, onlineScoreHandler(scoring))
	d.Register(model.MethodClientsInterests, model.ClientsInterestsSchema, clientsInterestsHandler(scoring))
	return d
}

// Register adds or replaces a method. It is not safe to call concurrently
// with Dispatch.
func (d *Dispatcher) Register(name string, schema model.Schema, handler MethodFunc) {
	d.methods[name] = method{schema: schema, handler: handler}
}

// Dispatch runs one call to completion and returns either the method
// result or exactly one AppError. A nil reqCtx is replaced by an empty one.
func (d *Dispatcher) Dispatch(ctx context.Context, raw map[string]any, reqCtx *model.RequestContext) (any, *common.AppError) {
	if reqCtx == nil {
		reqCtx = &model.RequestContext{}
	}

	envelope, err := d.validator.Validate(model.EnvelopeSchema, raw)
	if err != nil {
		return nil, validationError(err)
	}

	var req model.MethodRequest
	if err := validation.Decode(envelope, &req); err != nil {
		return nil, common.NewCodeError(common.InvalidRequest, err)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"request_id": reqCtx.RequestID,
		"method":     req.Method,
		"login":      req.Login,
	})

	if !d.auth.Authenticate(req) {
		log.Info("Authentication failed")
		return nil, common.NewCodeError(common.Forbidden, ErrForbidden)
	}

	m, ok := d.methods[req.Method]
	if !ok {
		return nil, common.NewAppError(common.BadRequest,
			fmt.Sprintf("Unknown method '%s'", req.Method),
			fmt.Errorf("%w: %s", ErrUnknownMethod, req.Method))
	}

	args, err := d.validator.Validate(m.schema, req.Arguments)
	if err != nil {
		return nil, validationError(err)
	}

	if d.auth.IsAdmin(req) {
		log.Debug("Administrative call, handler skipped")
		return model.AdminScore, nil
	}

	result, err := m.handler(ctx, args, reqCtx)
	if err != nil {
		if errors.Is(err, ErrStoreFailure) {
			return nil, common.NewCodeError(common.InternalError, err)
		}
		return nil, common.NewCodeError(common.InternalError, fmt.Errorf("method %s: %w", req.Method, err))
	}
	return result, nil
}

func validationError(err error) *common.AppError {
	var failure *validation.ValidationFailure
	if errors.As(err, &failure) {
		return common.NewAppError(common.InvalidRequest, failure.Error(), err)
	}
	return common.NewCodeError(common.InvalidRequest, err)
}

func onlineScoreHandler(scoring *ScoringService) MethodFunc {
	return func(ctx context.Context, args validation.Record, reqCtx *model.RequestContext) (any, error) {
		var req model.OnlineScoreRequest
		if err := validation.Decode(args, &req); err != nil {
			return nil, err
		}

		has := make([]string, 0, len(args))
		for name := range args {
			has = append(has, name)
		}
		sort.Strings(has)
		reqCtx.Has = has

		return model.ScoreResult{Score: scoring.Score(ctx, req)}, nil
	}
}

func clientsInterestsHandler(scoring *ScoringService) MethodFunc {
	return func(ctx context.Context, args validation.Record, reqCtx *model.RequestContext) (any, error) {
		var req model.ClientsInterestsRequest
		if err := validation.Decode(args, &req); err != nil {
			return nil, err
		}
		reqCtx.NClients = len(req.ClientIDs)

		result := make(map[string][]string, len(req.ClientIDs))
		for _, id := range req.ClientIDs {
			interests, err := scoring.Interests(ctx, id)
			if err != nil {
				return nil, err
			}
			result[strconv.Itoa(id)] = interests
		}
		return result, nil
	}
}

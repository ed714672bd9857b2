// file: service/auth_service.go

package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"scoring-api/model"
	"time"
)

// adminTimeLayout gives the admin token hour granularity.
const adminTimeLayout = "2006010215"

// AuthService checks the token of a validated envelope.
type AuthService struct {
	salt       string
	adminLogin string
	adminSalt  string
	now        func() time.Time
}

// NewAuthService returns an AuthService using the given salts. A nil clock
// means time.Now.
func NewAuthService(salt, adminLogin, adminSalt string, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{salt: salt, adminLogin: adminLogin, adminSalt: adminSalt, now: now}
}

func (s *AuthService) IsAdmin(req model.MethodRequest) bool {
	return req.IsAdmin(s.adminLogin)
}

// ExpectedToken returns the hex SHA-512 digest the caller must present.
// Admin tokens are derived from the current clock hour, all others from
// account, login and the salt.
func (s *AuthService) ExpectedToken(req model.MethodRequest) string {
	var payload string
	if s.IsAdmin(req) {
		payload = s.now().Format(adminTimeLayout) + s.adminSalt
	} else {
		payload = req.Account + req.Login + s.salt
	}
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func (s *AuthService) Authenticate(req model.MethodRequest) bool {
	expected := s.ExpectedToken(req)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.Token)) == 1
}

package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alumnoextra/alumnos-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// AuthService implements login against a single static credential pair and
// stateless token verification. There is no user store and no revocation
// list; a token is valid iff its signature checks out and it has not expired.
type AuthService struct {
	username  string
	password  string
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(username, password, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		username:  username,
		password:  password,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Login checks both supplied values against the configured pair. The same
// generic error is returned whether the username, the password, or both are
// wrong; callers cannot probe which half failed.
func (s *AuthService) Login(_ context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// Verify parses and validates a raw token, returning the subject claim.
// An expired token is reported as domain.ErrTokenInvalid, same as a
// malformed or tampered one; the distinction is never surfaced to clients.
func (s *AuthService) Verify(raw string) (string, error) {
	if raw == "" {
		return "", domain.ErrTokenMissing
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}

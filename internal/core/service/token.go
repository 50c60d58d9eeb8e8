package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

// DefaultTokenTTL bounds token lifetime when no TTL is configured.
const DefaultTokenTTL = 30 * time.Minute

// TokenClaims is the decoded payload of a valid token. The embedded role
// reflects the subject's role at issuance time only; callers that need the
// current role must re-read the credential store.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenService issues and validates HS256-signed bearer tokens. The server
// holds no session state: the token itself is the full authorization
// artifact.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService refuses an empty signing secret; running with a default
// key would make every token forgeable.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue binds subject and role into a signed envelope expiring after the
// configured TTL.
func (s *TokenService) Issue(subject, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate checks signature and expiry against the server's own clock. Any
// failure collapses into ErrUnauthorized; the caller learns nothing about
// why a token was rejected.
func (s *TokenService) Validate(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	subject, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if subject == "" {
		return nil, domain.ErrUnauthorized
	}
	return &TokenClaims{Subject: subject, Role: role}, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
	"github.com/pulsefeed/feedback-analytics/internal/core/ports"
)

// AuthService implements registration, login, and the access control guard.
type AuthService struct {
	users    ports.UserRepository
	tokens   *TokenService
	hasher   *PasswordHasher
	throttle ports.LoginThrottle
	adminKey string
}

// NewAuthService wires the guard's collaborators. adminKey is the shared
// secret that elevates a registration to admin; throttle may be nil to
// disable login throttling.
func NewAuthService(users ports.UserRepository, tokens *TokenService, hasher *PasswordHasher, throttle ports.LoginThrottle, adminKey string) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		throttle: throttle,
		adminKey: adminKey,
	}
}

// Register creates an account with role user, or admin when adminKey matches
// the server secret. Two concurrent registrations for the same username can
// both pass an existence check, so uniqueness is left to the store's index
// and surfaced as ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, password, adminKey string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.RoleUser
	if adminKey != "" && adminKey == s.adminKey {
		role = domain.RoleAdmin
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues a token carrying the subject and its
// role at issuance time. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, username)
		if err == nil && blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		if s.throttle != nil {
			_ = s.throttle.RecordFailure(ctx, username)
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		_ = s.throttle.Clear(ctx, username)
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate is the two-step guard: signature check, then a freshness
// re-read of the credential store. The role comes from the store, never from
// the token, so a downgrade or account removal takes effect without waiting
// for expiry.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	return &domain.Identity{Username: user.Username, Role: user.Role}, nil
}

// RequireRole is a strict equality check. The two roles are disjoint; admin
// does not imply user.
func RequireRole(identity *domain.Identity, required string) error {
	if identity == nil || identity.Role != required {
		return domain.ErrForbidden
	}
	return nil
}

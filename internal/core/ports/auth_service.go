package ports

import (
	"context"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

type AuthService interface {
	// Register creates a new account. adminKey elevates the role to admin
	// when it matches the server secret; otherwise the role is user.
	Register(ctx context.Context, username, password, adminKey string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate validates a bearer token and re-reads the subject from
	// the credential store, so role changes and removals take effect
	// before the token expires.
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

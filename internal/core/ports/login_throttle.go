package ports

import "context"

// LoginThrottle tracks failed login attempts per username so repeated
// password guessing can be slowed down.
type LoginThrottle interface {
	// Blocked reports whether the username has exhausted its attempt budget.
	Blocked(ctx context.Context, username string) (bool, error)
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, username string) error
	// Clear resets the counter after a successful login.
	Clear(ctx context.Context, username string) error
}

package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrUserExists = errors.New("username already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrUnauthorized = errors.New("could not validate credentials")
var ErrForbidden = errors.New("admin access required")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// ValidRole reports whether role is one of the two closed role values.
// There is deliberately no hierarchy between them.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models a registered account. PasswordHash is write-once: there is no
// password update path, only registration.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated view of a caller, reconstructed on every
// request from a valid token plus a live read of the credential store.
// Never persisted.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

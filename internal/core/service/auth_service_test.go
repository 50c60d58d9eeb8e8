package service

import (
	"context"
	"testing"
	"time"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

type stubThrottle struct {
	blocked  bool
	failures int
	cleared  int
}

func (t *stubThrottle) Blocked(_ context.Context, _ string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, _ string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Clear(_ context.Context, _ string) error {
	t.cleared++
	return nil
}

func newTestAuthService(t *testing.T, repo *stubUserRepo, throttle *stubThrottle) *AuthService {
	t.Helper()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	return NewAuthService(repo, tokens, NewPasswordHasher(4), throttle, "admin-key")
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo, &stubThrottle{})

	user, err := svc.Register(context.Background(), "alice", "pw1secret", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", user.Role)
	}
	if user.PasswordHash == "pw1secret" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewPasswordHasher(4).Verify("pw1secret", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_AdminKey(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo, &stubThrottle{})

	admin, err := svc.Register(context.Background(), "root", "pw", "admin-key")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("matching admin key should elevate role, got %s", admin.Role)
	}

	plain, err := svc.Register(context.Background(), "bob", "pw", "wrong-key")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if plain.Role != domain.RoleUser {
		t.Fatalf("wrong admin key must not elevate role, got %s", plain.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo(), &stubThrottle{})

	if _, err := svc.Register(context.Background(), "", "pw", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo, &stubThrottle{})

	if _, err := svc.Register(context.Background(), "bob", "pw", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pw2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newTestAuthService(t, repo, throttle)

	if _, err := svc.Register(context.Background(), "carol", "s3cret", "admin-key"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if throttle.cleared != 1 {
		t.Fatalf("expected throttle cleared once, got %d", throttle.cleared)
	}

	claims, err := svc.tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Subject != "carol" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newTestAuthService(t, repo, throttle)

	_, _ = svc.Register(context.Background(), "dave", "goodpass", "")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", throttle.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo(), &stubThrottle{})

	// An unknown username must look exactly like a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo, &stubThrottle{blocked: true})

	_, _ = svc.Register(context.Background(), "eve", "pw", "")
	if _, _, err := svc.Login(context.Background(), "eve", "pw"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Authenticate_FreshRoleFromStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo, &stubThrottle{})

	_, _ = svc.Register(context.Background(), "frank", "pw", "admin-key")
	token, _, err := svc.Login(context.Background(), "frank", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Downgrade the stored role after issuance; the token still embeds admin.
	repo.users["frank"].Role = domain.RoleUser

	identity, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("expected live role from store, got %s", identity.Role)
	}
}

func TestAuthService_Authenticate_SubjectRemoved(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo, &stubThrottle{})

	_, _ = svc.Register(context.Background(), "gone", "pw", "")
	token, _, err := svc.Login(context.Background(), "gone", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.users, "gone")

	if _, err := svc.Authenticate(context.Background(), token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized after removal, got %v", err)
	}
}

func TestAuthService_Authenticate_BadToken(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo(), &stubThrottle{})

	if _, err := svc.Authenticate(context.Background(), "not-a-token"); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	admin := &domain.Identity{Username: "a", Role: domain.RoleAdmin}
	user := &domain.Identity{Username: "u", Role: domain.RoleUser}

	if err := RequireRole(admin, domain.RoleAdmin); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if err := RequireRole(user, domain.RoleAdmin); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for user, got %v", err)
	}
	if err := RequireRole(admin, domain.RoleUser); err != domain.ErrForbidden {
		t.Fatalf("roles are disjoint; expected ErrForbidden, got %v", err)
	}
	if err := RequireRole(nil, domain.RoleAdmin); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for nil identity, got %v", err)
	}
}

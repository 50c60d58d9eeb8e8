package service

import (
	"strings"
	"testing"
	"time"

	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
)

func TestNewTokenService_EmptySecret(t *testing.T) {
	if _, err := NewTokenService("", time.Minute); err == nil {
		t.Fatalf("expected error for empty signing secret")
	}
}

func TestTokenService_IssueValidate(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}

	token, err := svc.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc, err := NewTokenService("secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := svc.Validate(token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip one character in the signature segment.
	i := strings.LastIndex(token, ".") + 1
	flipped := byte('A')
	if token[i] == 'A' {
		flipped = 'B'
	}
	tampered := token[:i] + string(flipped) + token[i+1:]
	if tampered == token {
		t.Fatalf("tampering produced an identical token")
	}

	if _, err := svc.Validate(tampered); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenService("secret-a", time.Hour)
	verifier, _ := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Validate(token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized across secrets, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc, _ := NewTokenService("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Validate(raw); err != domain.ErrUnauthorized {
			t.Fatalf("expected ErrUnauthorized for %q, got %v", raw, err)
		}
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc, err := NewTokenService("secret", 0)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	if svc.ttl != DefaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTokenTTL, svc.ttl)
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

func TestNewTokenCodec_EmptySecret(t *testing.T) {
	if _, err := NewTokenCodec("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec, err := NewTokenCodec("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}

	user := &domain.User{ID: 42, Email: "alice@example.com", Role: domain.RoleAdmin}
	raw, err := codec.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected uid 42, got %d", claims.UserID)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec, err := NewTokenCodec("secret", -time.Minute)
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}
	// Negative ttl falls back to the default, so build the codec by hand.
	codec.ttl = -time.Minute

	raw, err := codec.Issue(&domain.User{ID: 1, Email: "bob@example.com", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := codec.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenCodec("secret-a", time.Hour)
	verifier, _ := NewTokenCodec("secret-b", time.Hour)

	raw, err := issuer.Issue(&domain.User{ID: 1, Email: "bob@example.com", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec, _ := NewTokenCodec("secret", time.Hour)
	if _, err := codec.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestPrincipalResolver_Resolve(t *testing.T) {
	users := newStubUserRepo()
	saved, _ := users.Create(context.Background(), &domain.User{Email: "carol@example.com", Role: domain.RoleGuide})

	codec, _ := NewTokenCodec("secret", time.Hour)
	raw, err := codec.Issue(saved)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	resolver := NewPrincipalResolver(users)
	p, err := resolver.Resolve(context.Background(), claims)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.ID != saved.ID || p.Role != domain.RoleGuide {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestPrincipalResolver_DeletedAccount(t *testing.T) {
	users := newStubUserRepo()
	resolver := NewPrincipalResolver(users)

	codec, _ := NewTokenCodec("secret", time.Hour)
	raw, _ := codec.Issue(&domain.User{ID: 9, Email: "ghost@example.com", Role: domain.RoleClient})
	claims, _ := codec.Verify(raw)

	if _, err := resolver.Resolve(context.Background(), claims); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

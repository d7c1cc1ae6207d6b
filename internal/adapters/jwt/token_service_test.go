package token_adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewTokenServiceRequiresKey(t *testing.T) {
	if _, err := NewTokenService("", time.Hour); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-signing-key", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue(context.Background(), true)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("expected isAdmin claim to survive the round trip")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc, _ := NewTokenService("test-signing-key", time.Hour)

	token, err := svc.Issue(context.Background(), true)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(context.Background(), tampered); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer, _ := NewTokenService("key-one", time.Hour)
	verifier, _ := NewTokenService("key-two", time.Hour)

	token, err := issuer.Issue(context.Background(), true)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for foreign signing key, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc, _ := NewTokenService("test-signing-key", time.Hour)

	// Собираем уже просроченный токен с тем же ключом.
	claims := &adminClaims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := svc.Verify(context.Background(), expired); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, _ := NewTokenService("test-signing-key", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

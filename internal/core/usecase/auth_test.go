package usecase

import (
	"context"
	"errors"
	"testing"

	"listing-service/internal/core/domain"
)

func TestLoginAdmin(t *testing.T) {
	uc := NewLoginAdminUseCase(&fakeVerifier{secret: "s3cret"}, &fakeTokenService{})

	token, err := uc.Execute(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "test-token" {
		t.Errorf("unexpected token: %q", token)
	}
}

func TestLoginAdminWrongPassword(t *testing.T) {
	uc := NewLoginAdminUseCase(&fakeVerifier{secret: "s3cret"}, &fakeTokenService{})

	if _, err := uc.Execute(context.Background(), "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifySession(t *testing.T) {
	uc := NewVerifySessionUseCase(&fakeTokenService{
		claims: &domain.SessionClaims{IsAdmin: true},
	})

	claims, err := uc.Execute(context.Background(), "test-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("expected admin claims")
	}
}

func TestVerifySessionRejectsBadToken(t *testing.T) {
	uc := NewVerifySessionUseCase(&fakeTokenService{verifyErr: domain.ErrTokenInvalid})

	if _, err := uc.Execute(context.Background(), "garbage"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	ucEmpty := NewVerifySessionUseCase(&fakeTokenService{claims: &domain.SessionClaims{IsAdmin: true}})
	if _, err := ucEmpty.Execute(context.Background(), ""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("empty token: expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifySessionRejectsNonAdmin(t *testing.T) {
	uc := NewVerifySessionUseCase(&fakeTokenService{
		claims: &domain.SessionClaims{IsAdmin: false},
	})

	if _, err := uc.Execute(context.Background(), "test-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("non-admin claims: expected ErrTokenInvalid, got %v", err)
	}
}

package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// VerifySessionUseCasePort - проверка сессионного токена.
type VerifySessionUseCasePort interface {
	Execute(ctx context.Context, token string) (*domain.SessionClaims, error)
}

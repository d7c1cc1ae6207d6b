package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type VerifySessionUseCase struct {
	tokenSvc port.TokenServicePort
}

func NewVerifySessionUseCase(tokenSvc port.TokenServicePort) *VerifySessionUseCase {
	return &VerifySessionUseCase{tokenSvc: tokenSvc}
}

func (uc *VerifySessionUseCase) Execute(ctx context.Context, token string) (*domain.SessionClaims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "VerifySession"})

	if token == "" {
		ucLogger.Warn("Session verification failed: empty token", nil)
		return nil, domain.ErrTokenInvalid
	}

	claims, err := uc.tokenSvc.Verify(ctx, token)
	if err != nil {
		// Ошибка уже залогирована в адаптере; для вызывающего любой сбой -
		// "неаутентифицирован".
		return nil, domain.ErrTokenInvalid
	}
	if !claims.IsAdmin {
		ucLogger.Warn("Session token is valid but carries no admin claim", nil)
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}

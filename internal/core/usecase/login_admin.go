package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type LoginAdminUseCase struct {
	verifier port.CredentialVerifierPort
	tokenSvc port.TokenServicePort
}

func NewLoginAdminUseCase(verifier port.CredentialVerifierPort, tokenSvc port.TokenServicePort) *LoginAdminUseCase {
	return &LoginAdminUseCase{
		verifier: verifier,
		tokenSvc: tokenSvc,
	}
}

func (uc *LoginAdminUseCase) Execute(ctx context.Context, password string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "LoginAdmin"})
	ucLogger.Info("Use case started: admin login attempt", nil)

	// Пустой секрет - невалидный ввод, не ошибка.
	if password == "" || !uc.verifier.Verify(password) {
		ucLogger.Warn("Login failed: invalid admin secret", nil)
		return "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokenSvc.Issue(ctx, true)
	if err != nil {
		ucLogger.Error("Failed to issue session token after successful login", err, nil)
		return "", err
	}

	ucLogger.Info("Use case finished: admin logged in", nil)
	return token, nil
}

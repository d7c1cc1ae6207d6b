package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// TokenServicePort - контракт выпуска и проверки сессионных токенов.
type TokenServicePort interface {
	// Issue выпускает подписанный токен с клеймом isAdmin и фиксированным
	// сроком жизни.
	Issue(ctx context.Context, isAdmin bool) (string, error)

	// Verify проверяет подпись и срок действия. Любой структурный сбой,
	// подделка или истечение срока дают domain.ErrTokenInvalid.
	Verify(ctx context.Context, token string) (*domain.SessionClaims, error)
}

// CredentialVerifierPort - проверка админского секрета. Пустой ввод -
// невалидный, а не ошибка.
type CredentialVerifierPort interface {
	Verify(secret string) bool
}

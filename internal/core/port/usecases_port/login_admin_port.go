package usecases_port

import "context"

// LoginAdminUseCasePort - вход администратора по секрету.
type LoginAdminUseCasePort interface {
	// Execute возвращает подписанный сессионный токен либо
	// domain.ErrInvalidCredentials.
	Execute(ctx context.Context, password string) (string, error)
}

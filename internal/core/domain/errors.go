package domain

import "errors"

// Ошибки, которые могут вернуться из Use Cases. "Не найдено" для объявлений
// моделируется nil-результатом, а не ошибкой.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid session token")
)

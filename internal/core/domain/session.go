package domain

// SessionClaims - полезная нагрузка админской сессии. Токен сам по себе
// является всем состоянием сессии: серверного хранилища сессий и отзыва нет.
type SessionClaims struct {
	IsAdmin bool
}

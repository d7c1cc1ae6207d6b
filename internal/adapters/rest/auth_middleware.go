package rest

import (
	"context"
	"net/http"

	"listing-service/internal/core/port/usecases_port"
)

// Имя cookie с токеном админской сессии.
const adminTokenCookie = "admin-token"

// Кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const adminSessionKey = contextKey("adminSession")

// AuthMiddleware пропускает дальше только запросы с валидной админской сессией.
type AuthMiddleware struct {
	verifyUC usecases_port.VerifySessionUseCasePort
}

func NewAuthMiddleware(verifyUC usecases_port.VerifySessionUseCasePort) *AuthMiddleware {
	return &AuthMiddleware{verifyUC: verifyUC}
}

func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(adminTokenCookie)
		if err != nil || cookie.Value == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := m.verifyUC.Execute(r.Context(), cookie.Value)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		// Кладем claims в контекст на случай, если обработчику они понадобятся
		ctx := context.WithValue(r.Context(), adminSessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

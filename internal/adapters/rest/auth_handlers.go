package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// AdminSessionTTL - срок жизни админской сессии и cookie с токеном.
const AdminSessionTTL = 24 * time.Hour

// AuthHandler - обработчики входа и проверки админской сессии.
type AuthHandler struct {
	loginUC  usecases_port.LoginAdminUseCasePort
	verifyUC usecases_port.VerifySessionUseCasePort
	// Secure-флаг cookie выключается только в локальной разработке.
	secureCookies bool
}

func NewAuthHandler(loginUC usecases_port.LoginAdminUseCasePort, verifyUC usecases_port.VerifySessionUseCasePort, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		loginUC:       loginUC,
		verifyUC:      verifyUC,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var reqDTO loginRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Отсутствие пароля - некорректный запрос, а не неверные креды.
	if reqDTO.Password == "" {
		logger.Warn("Login attempt without password", nil)
		WriteJSONError(w, http.StatusBadRequest, "Password is required")
		return
	}

	token, err := h.loginUC.Execute(r.Context(), reqDTO.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			logger.Warn("Login attempt with invalid credentials", nil)
			WriteJSONError(w, http.StatusUnauthorized, "Invalid password")
			return
		}
		logger.Error("Login use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     adminTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(AdminSessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	logger.Info("Admin logged in", nil)
	RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Verify обрабатывает GET /api/v1/auth/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Verify"})

	cookie, err := r.Cookie(adminTokenCookie)
	if err != nil || cookie.Value == "" {
		RespondWithJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}

	claims, err := h.verifyUC.Execute(r.Context(), cookie.Value)
	if err != nil {
		logger.Debug("Session verification failed", port.Fields{"error": err.Error()})
		RespondWithJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]bool{"authenticated": claims.IsAdmin})
}

// Logout обрабатывает POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
	RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

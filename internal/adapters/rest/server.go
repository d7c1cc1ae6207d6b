package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// ServerConfig - зависимости и настройки REST-сервера.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string

	AuthHandler     *AuthHandler
	PropertyHandler *PropertyHandler
	ListingHandler  *ListingHandler
	BookmarkHandler *BookmarkHandler
	InquiryHandler  *InquiryHandler
	AuthMiddleware  *AuthMiddleware
}

// NewServer создает роутер и HTTP-сервер.
func NewServer(cfg ServerConfig, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true, // для cookie админской сессии
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Get("/verify", cfg.AuthHandler.Verify)
			r.Post("/logout", cfg.AuthHandler.Logout)
		})

		// Публичное чтение каталога
		r.Get("/properties", cfg.PropertyHandler.List)
		r.Get("/properties/{propertyID}", cfg.PropertyHandler.Get)
		r.Get("/listings", cfg.ListingHandler.Browse)

		// Мутации каталога - только для админа
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware.RequireAdmin)

			r.Post("/properties", cfg.PropertyHandler.Create)
			r.Put("/properties", cfg.PropertyHandler.Update)
			r.Put("/properties/{propertyID}", cfg.PropertyHandler.Update)
			r.Delete("/properties", cfg.PropertyHandler.Delete)
			r.Delete("/properties/{propertyID}", cfg.PropertyHandler.Delete)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", cfg.BookmarkHandler.Get)
			r.Post("/", cfg.BookmarkHandler.Add)
			r.Delete("/", cfg.BookmarkHandler.Clear)
			r.Get("/{propertyID}", cfg.BookmarkHandler.Has)
			r.Delete("/{propertyID}", cfg.BookmarkHandler.Remove)
		})

		r.Post("/email/inquiry", cfg.InquiryHandler.Send)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}

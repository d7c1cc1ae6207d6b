package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cloudinary_adapter "listing-service/internal/adapters/cloudinary"
	"listing-service/internal/adapters/credentials"
	token_adapter "listing-service/internal/adapters/jwt"
	"listing-service/internal/adapters/localstore"
	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/postgres"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	rabbitManager *rabbitmq_common.ConnectionManager
	producer      *rabbitmq_producer.Publisher
	fluentClient  *fluent.Fluent
	logger        port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    int32(appConfig.Database.MaxConns),
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyRepository, err := postgres_adapter.NewPostgresPropertyAdapter(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres property repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres property repository: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSigningKey, rest.AdminSessionTTL)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	credentialVerifier, err := credentials.NewAdminVerifier(appConfig.Auth.AdminSecret)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create credential verifier: %w", err)
	}

	assetStore := cloudinary_adapter.NewAssetStore(cloudinary_adapter.Config{
		CloudName: appConfig.AssetStore.CloudName,
		APIKey:    appConfig.AssetStore.APIKey,
		APISecret: appConfig.AssetStore.APISecret,
		Folder:    appConfig.AssetStore.Folder,
	})
	if !assetStore.Configured() {
		appLogger.Warn("Asset store is not configured, image uploads will use placeholders", nil)
	}

	bookmarkStorage, err := localstore.NewBookmarkStorage(appConfig.Bookmarks.FilePath)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create bookmark storage: %w", err)
	}

	// RabbitMQ опционален: без него заявки уходят в mailto-фолбэк
	var (
		rabbitManager *rabbitmq_common.ConnectionManager
		producer      *rabbitmq_producer.Publisher
		inquiryQueue  port.InquiryQueuePort
	)
	if appConfig.RabbitMQ.Enabled {
		rabbitLogger := rabbitmq_adapter.NewPkgLoggerBridge(
			baseLogger.WithFields(port.Fields{"component": "rabbitmq"}),
		)

		rabbitManager, err = rabbitmq_common.NewManager(appConfig.RabbitMQ.URL, rabbitLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ, inquiries will use fallback", err, nil)
		} else {
			producer, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
				Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
				ExchangeName:             constants.ListingExchangeName,
				ExchangeType:             constants.ListingExchangeType,
				DurableExchange:          true,
				DeclareExchangeIfMissing: true,
				Logger:                   rabbitLogger,
			}, rabbitManager)
			if err != nil {
				appLogger.Error("Failed to create RabbitMQ producer, inquiries will use fallback", err, nil)
			} else {
				inquiryAdapter, err := rabbitmq_adapter.NewInquiryEnqueueAdapter(producer, constants.InquiryRoutingKey)
				if err != nil {
					appLogger.Error("Failed to create inquiry adapter", err, nil)
				} else {
					inquiryQueue = inquiryAdapter
				}
			}
		}
	}
	appLogger.Info("All persistence and transport adapters initialized.", nil)

	// --- 3. USE CASES ---
	loginUC := usecase.NewLoginAdminUseCase(credentialVerifier, tokenService)
	verifyUC := usecase.NewVerifySessionUseCase(tokenService)
	listUC := usecase.NewListPropertiesUseCase(propertyRepository)
	getUC := usecase.NewGetPropertyUseCase(propertyRepository)
	searchUC := usecase.NewSearchPropertiesUseCase(propertyRepository)
	addUC := usecase.NewAddPropertyUseCase(propertyRepository, assetStore)
	updateUC := usecase.NewUpdatePropertyUseCase(propertyRepository, assetStore)
	deleteUC := usecase.NewDeletePropertyUseCase(propertyRepository, assetStore)
	browseUC := usecase.NewBrowseListingsUseCase(propertyRepository, bookmarkStorage)
	sendInquiryUC := usecase.NewSendInquiryUseCase(inquiryQueue)
	addBookmarkUC := usecase.NewAddBookmarkUseCase(bookmarkStorage)
	removeBookmarkUC := usecase.NewRemoveBookmarkUseCase(bookmarkStorage)
	getBookmarksUC := usecase.NewGetBookmarksUseCase(bookmarkStorage)
	hasBookmarkUC := usecase.NewHasBookmarkUseCase(bookmarkStorage)
	clearBookmarksUC := usecase.NewClearBookmarksUseCase(bookmarkStorage)

	// --- 4. REST API ---
	apiServer := rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.PORT,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,

		AuthHandler: rest.NewAuthHandler(loginUC, verifyUC, appConfig.Rest.SecureCookies),
		PropertyHandler: rest.NewPropertyHandler(
			listUC, getUC, searchUC, addUC, updateUC, deleteUC,
		),
		ListingHandler: rest.NewListingHandler(browseUC),
		BookmarkHandler: rest.NewBookmarkHandler(
			getUC, addBookmarkUC, removeBookmarkUC, getBookmarksUC, hasBookmarkUC, clearBookmarksUC,
		),
		InquiryHandler: rest.NewInquiryHandler(sendInquiryUC, appConfig.Inquiry.FallbackRecipient),
		AuthMiddleware: rest.NewAuthMiddleware(verifyUC),
	}, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		rabbitManager: rabbitManager,
		producer:      producer,
		fluentClient:  fluentClient,
		logger:        appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.producer != nil {
			if err := a.producer.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ producer", err, nil)
			}
		}
		if a.rabbitManager != nil {
			if err := a.rabbitManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

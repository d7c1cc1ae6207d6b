package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type DBconfig struct {
	URL      string
	MaxConns int
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
	SecureCookies  bool
}

type AuthConfig struct {
	// AdminSecret - пароль админа: либо bcrypt-хэш, либо plaintext
	// (для локальной разработки).
	AdminSecret   string
	JWTSigningKey string
}

type AssetStoreConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type RabbitMQConfig struct {
	URL     string
	Enabled bool
}

type BookmarksConfig struct {
	FilePath string
}

type InquiryConfig struct {
	FallbackRecipient string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	Auth         AuthConfig
	AssetStore   AssetStoreConfig
	RabbitMQ     RabbitMQConfig
	Bookmarks    BookmarksConfig
	Inquiry      InquiryConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env опционален: в контейнере переменные приходят из окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listing-service")

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	cfg.Database.MaxConns = getEnvAsInt("DATABASE_MAX_CONNS", 10)

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.SecureCookies = getEnvAsBool("SECURE_COOKIES", false)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.Rest.AllowedOrigins = append(cfg.Rest.AllowedOrigins, trimmed)
			}
		}
	}

	cfg.Auth.AdminSecret = os.Getenv("ADMIN_SECRET")
	if cfg.Auth.AdminSecret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET environment variable is required")
	}
	cfg.Auth.JWTSigningKey = os.Getenv("JWT_SIGNING_KEY")
	if cfg.Auth.JWTSigningKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY environment variable is required")
	}

	// Хранилище изображений опционально: без него сервис работает
	// в деградированном режиме с URL-заглушками.
	cfg.AssetStore.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	cfg.AssetStore.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	cfg.AssetStore.APISecret = os.Getenv("CLOUDINARY_API_SECRET")
	cfg.AssetStore.Folder = getEnvAsString("CLOUDINARY_FOLDER", "listing-service-properties")

	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
	cfg.RabbitMQ.Enabled = cfg.RabbitMQ.URL != ""

	cfg.Bookmarks.FilePath = getEnvAsString("BOOKMARKS_FILE", "data/bookmarks.json")

	cfg.Inquiry.FallbackRecipient = getEnvAsString("INQUIRY_FALLBACK_EMAIL", "info@example.com")

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("WARNING: invalid value for %s: %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("WARNING: invalid value for %s: %q, using default %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return valueBool
}

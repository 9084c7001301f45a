package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend modes
const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
	BackendRemote   = "remote"
)

type Config struct {
	Port         string
	GinMode      string
	BackendMode  string
	SeedMockData bool

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	RecordStoreBaseURL   string
	RecordStoreProjectID string
	RecordStorePublicKey string
	RecordStoreTimeout   time.Duration
	RecordStoreRPS       float64

	CORSAllowedOrigins []string
	LogLevel           string
	LogFormat          string
	OpenAIAPIKey       string
}

// Load reads an optional .env file and then the process environment
func Load() *Config {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		BackendMode:  strings.ToLower(getEnv("BACKEND_MODE", BackendMemory)),
		SeedMockData: getEnvBool("SEED_MOCK_DATA", true),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "dashboard"),
		DBPassword: getEnv("DB_PASSWORD", "dashboard"),
		DBName:     getEnv("DB_NAME", "project_dashboard"),
		DBPath:     getEnv("DB_PATH", "project_dashboard.db"),

		RecordStoreBaseURL:   getEnv("RECORDSTORE_BASE_URL", ""),
		RecordStoreProjectID: getEnv("RECORDSTORE_PROJECT_ID", ""),
		RecordStorePublicKey: getEnv("RECORDSTORE_PUBLIC_KEY", ""),
		RecordStoreTimeout:   getEnvDuration("RECORDSTORE_TIMEOUT", 10*time.Second),
		RecordStoreRPS:       getEnvFloat("RECORDSTORE_RPS", 10),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "json")),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
	}
}

// Validate checks the combination of settings needed by the selected backend
func (c *Config) Validate() error {
	switch c.BackendMode {
	case BackendMemory:
	case BackendDatabase:
		switch c.DBDriver {
		case "mysql", "postgres", "sqlite":
		default:
			return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
		}
	case BackendRemote:
		if c.RecordStoreBaseURL == "" {
			return fmt.Errorf("RECORDSTORE_BASE_URL is required in %s mode", BackendRemote)
		}
		if c.RecordStoreProjectID == "" || c.RecordStorePublicKey == "" {
			return fmt.Errorf("RECORDSTORE_PROJECT_ID and RECORDSTORE_PUBLIC_KEY are required in %s mode", BackendRemote)
		}
	default:
		return fmt.Errorf("unsupported BACKEND_MODE %q", c.BackendMode)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

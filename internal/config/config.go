package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	// Storage backend: memory | file | redis | postgres
	StorageDriver string
	StoragePath   string
	RedisURL      string
	DatabaseURL   string

	// Admin identity and sessions
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	SessionTTL        time.Duration

	// Email configuration (optional)
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPUseTLS   bool
	StudioInbox  string

	// Frontend origin for CORS
	FrontendURL string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("API_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		StoragePath:   getEnv("STORAGE_PATH", "./data"),
		RedisURL:      getEnv("REDIS_URL", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		// Default hash matches the development password "password".
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key"),
		SessionTTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@adverx.studio"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "ADVERX Studio"),
		SMTPUseTLS:   getEnvBool("SMTP_USE_TLS", false),
		StudioInbox:  getEnv("STUDIO_INBOX", "hello@adverx.studio"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

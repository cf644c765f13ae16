package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Microsoft MicrosoftConfig
	Gemini    GeminiConfig
	Session   SessionConfig
	OTEL      OTELConfig
	Env       string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	StaticDir      string
	AllowedOrigins []string
}

// DatabaseConfig holds the SQLite database configuration
type DatabaseConfig struct {
	Path string
}

// MicrosoftConfig holds the Microsoft identity platform configuration
// for the delegated Graph OAuth flow.
type MicrosoftConfig struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	RedirectURL  string
	Scopes       []string
	Timezone     string
}

// GeminiConfig holds the Gemini model configuration
type GeminiConfig struct {
	APIKey string
	Model  string
}

// SessionConfig holds the cookie session configuration
type SessionConfig struct {
	Secret string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("PORT", 5155),
			StaticDir:      getEnv("STATIC_DIR", "web"),
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "assistant.db"),
		},
		Microsoft: MicrosoftConfig{
			ClientID:     getEnv("MS_CLIENT_ID", ""),
			ClientSecret: getEnv("MS_CLIENT_SECRET", ""),
			TenantID:     getEnv("MS_TENANT_ID", "common"),
			RedirectURL:  getEnv("MS_REDIRECT_URL", "http://localhost:5155/api/outlook/callback"),
			Scopes:       []string{"User.Read", "Mail.ReadWrite", "Mail.Send", "Calendars.ReadWrite"},
			Timezone:     getEnv("DISPLAY_TIMEZONE", "Asia/Kolkata"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "super-secret-key-for-dev"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "office-assistant"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Env: getEnv("APP_ENV", "development"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

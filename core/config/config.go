package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration, sourced from the environment.
// main loads a .env file first (godotenv), so every value here can live in
// either the process environment or the project's .env
type Config struct {
	Env        string
	Version    string
	ServerPort string

	// Database
	DBDriver string // sqlite | mysql | postgres (anything else degrades to the generic search dialect)
	DBPath   string // sqlite file path
	DBURL    string // DSN for mysql/postgres

	// Auth
	ApiKey    string
	JWTSecret string

	// Search defaults
	SearchDefaultLimit  int
	SearchCaseSensitive bool

	Middleware MiddlewareConfig
}

// MiddlewareConfig controls the configurable middleware system
type MiddlewareConfig struct {
	CORSEnabled        bool
	CORSAllowedOrigins []string
	SkipLoggingPaths   []string
}

// IsLoggingRequired reports whether requests to path should be logged
func (m *MiddlewareConfig) IsLoggingRequired(path string) bool {
	for _, skip := range m.SkipLoggingPaths {
		if skip != "" && strings.HasPrefix(path, skip) {
			return false
		}
	}
	return true
}

// NewConfig builds the configuration from environment variables with
// sensible development defaults
func NewConfig() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		Version:    getEnv("APP_VERSION", "1.0.0"),
		ServerPort: normalizePort(getEnv("SERVER_PORT", ":8100")),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:   getEnv("DB_PATH", "scout.db"),
		DBURL:    getEnv("DB_URL", ""),

		ApiKey:    getEnv("API_KEY", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),

		SearchDefaultLimit:  getEnvInt("SEARCH_DEFAULT_LIMIT", 10),
		SearchCaseSensitive: getEnvBool("SEARCH_CASE_SENSITIVE", false),

		Middleware: MiddlewareConfig{
			CORSEnabled:        getEnvBool("CORS_ENABLED", true),
			CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
			SkipLoggingPaths:   strings.Split(getEnv("SKIP_LOGGING_PATHS", "/health,/swagger,/static"), ","),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// splitList splits a comma-separated env value, dropping empty entries
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// normalizePort ensures the port is in ":8100" form
func normalizePort(port string) string {
	if port == "" {
		return ":8100"
	}
	if !strings.HasPrefix(port, ":") {
		return ":" + port
	}
	return port
}

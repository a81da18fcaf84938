// Package configs provides application configuration loaded from environment variables.
// All configuration is externalized via environment variables for 12-factor app compliance.
package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTickerURL is the Bittrex v1.1 getticker endpoint. The market is appended verbatim.
const DefaultTickerURL = "https://api.bittrex.com/api/v1.1/public/getticker?market="

// AppConfig holds all application configuration.
// Load it once at startup using AppLoad().
type AppConfig struct {
	// Server contains the inbound HTTP listener settings.
	Server ServerConfig

	// Ticker contains settings for the upstream ticker API.
	Ticker TickerConfig

	// Log contains logger settings.
	Log LogConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// Host is the interface to bind. Empty means all interfaces.
	Host string

	// Port is the TCP port to listen on.
	Port string

	// GinMode is passed to gin.SetMode ("debug", "release" or "test").
	GinMode string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// TickerConfig holds upstream ticker API settings.
type TickerConfig struct {
	// URL is the base endpoint; the requested market is concatenated to it.
	URL string

	// Timeout caps the whole outbound request.
	Timeout time.Duration
}

// LogConfig holds logrus settings.
type LogConfig struct {
	// Level is a logrus level name (e.g., "debug", "info").
	Level string

	// Format is "text" or "json".
	Format string
}

// AppLoad loads all application configuration from environment variables.
// It attempts to load a .env file first (for local development).
// Call this once at application startup.
func AppLoad() *AppConfig {
	_ = godotenv.Load() // Ignore error - .env is optional

	return &AppConfig{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", ""),
			Port:            getEnv("SERVER_PORT", "8080"),
			GinMode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Ticker: TickerConfig{
			URL:     getEnv("TICKER_URL", DefaultTickerURL),
			Timeout: getEnvDuration("TICKER_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvDuration accepts Go duration strings ("5s") or plain seconds ("5").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil && d > 0 {
		return d
	}
	if secs := getEnvInt(key, 0); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

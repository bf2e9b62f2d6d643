package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	Engine   EngineConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// RedisConfig holds redis-related configuration used for session
// rate limiting and conversation context caching
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	SessionTTL   time.Duration
	ContextTTL   time.Duration
}

// GeminiConfig holds configuration for the narrative text generator
type GeminiConfig struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// EngineConfig holds the tunable policy constants of the design engine.
// The defaults are the policy set the scenario tests are written against;
// they can be adjusted per deployment without touching selection logic.
type EngineConfig struct {
	// LaborRate is the fraction of the total budget reserved for labor.
	LaborRate float64
	// PriceTolerance widens the per-slot unit price ceiling when querying
	// the catalog (1.2 accepts candidates up to 20% over).
	PriceTolerance float64
	// AcceptTolerance bounds how far a scored product's total price may
	// exceed its slot budget before the synthesizer takes over.
	AcceptTolerance float64
	// TargetUtilization is the fraction of a slot budget a synthesized
	// item aims to consume.
	TargetUtilization float64
	// SurplusThreshold and OverageTolerance delimit the reconciliation
	// band: surplus above SurplusThreshold*budget is redistributed,
	// totals above OverageTolerance*budget are scaled down.
	SurplusThreshold float64
	OverageTolerance float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8086"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "design_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			URL:          getEnv("REDIS_URL", "redis://localhost:6379/0"),
			DialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvAsDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			SessionTTL:   getEnvAsDuration("SESSION_CACHE_TTL", 5*time.Minute),
			ContextTTL:   getEnvAsDuration("CONVERSATION_CONTEXT_TTL", 5*time.Minute),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout:     getEnvAsDuration("GEMINI_TIMEOUT", 10*time.Second),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvAsInt("GEMINI_MAX_TOKENS", 500),
		},
		Engine: EngineConfig{
			LaborRate:         getEnvAsFloat("ENGINE_LABOR_RATE", 0.15),
			PriceTolerance:    getEnvAsFloat("ENGINE_PRICE_TOLERANCE", 1.2),
			AcceptTolerance:   getEnvAsFloat("ENGINE_ACCEPT_TOLERANCE", 1.5),
			TargetUtilization: getEnvAsFloat("ENGINE_TARGET_UTILIZATION", 0.92),
			SurplusThreshold:  getEnvAsFloat("ENGINE_SURPLUS_THRESHOLD", 0.05),
			OverageTolerance:  getEnvAsFloat("ENGINE_OVERAGE_TOLERANCE", 1.02),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "design"),
		},
	}, nil
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

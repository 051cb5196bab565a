package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	User               string
	Password           string
	Host               string
	Port               string
	Name               string
	SSLMode            string
	StatementTimeoutMs int
	AutoMigrate        bool
}

// DSN builds the postgres URL used by gorm's postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=church_tracker&options=-c statement_timeout=%d",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode, d.StatementTimeoutMs,
	)
}

// Config is the process configuration. It is built once in main and passed down.
type Config struct {
	Port        string
	AppEnv      string
	CorsOrigins []string
	TimeZone    string

	RequestTimeoutMs   int
	RateLimitPerMinute int

	LogLevel string
	LogFile  string

	StatsRefreshCron string
	StatsRefreshDays int

	DB DatabaseConfig
}

// IsProduction reports whether destructive tooling (seeding) must be refused.
func (c Config) IsProduction() bool {
	if strings.EqualFold(c.AppEnv, "production") || strings.EqualFold(c.AppEnv, "prod") {
		return true
	}
	return strings.Contains(strings.ToLower(c.DB.Host), "prod")
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Info().Msg("running in Railway, using system environment")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment")
		return
	}
	log.Info().Msg(".env file loaded")
}

// Load reads the environment into a Config.
func Load() Config {
	cfg := Config{
		Port:               GetEnv("PORT", "3000"),
		AppEnv:             GetEnv("APP_ENV", "development"),
		CorsOrigins:        splitList(GetEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		TimeZone:           GetEnv("TZ", "Local"),
		RequestTimeoutMs:   GetEnvInt("REQUEST_TIMEOUT_MS", 5000),
		RateLimitPerMinute: GetEnvInt("RATE_LIMIT_PER_MINUTE", 300),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		LogFile:            GetEnv("LOG_FILE"),
		StatsRefreshCron:   GetEnv("STATS_REFRESH_CRON", "30 3 * * *"),
		StatsRefreshDays:   GetEnvInt("STATS_REFRESH_DAYS", 14),
		DB: DatabaseConfig{
			User:               GetEnv("DB_USER"),
			Password:           GetEnv("DB_PASSWORD"),
			Host:               GetEnv("DB_HOST", "localhost"),
			Port:               GetEnv("DB_PORT", "5432"),
			Name:               GetEnv("DB_NAME"),
			SSLMode:            GetEnv("DB_SSLMODE", "require"),
			StatementTimeoutMs: GetEnvInt("DB_STATEMENT_TIMEOUT_MS", 3000),
			AutoMigrate:        GetEnvBool("AUTO_MIGRATE", false),
		},
	}

	if cfg.DB.Name == "" {
		log.Warn().Msg("DB_NAME is not set")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer env, using default")
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid boolean env, using default")
		return def
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Config struct {
	AppEnv          string
	Port            string
	GraphQLEndpoint string
	GraphQLTimeout  time.Duration

	JWTSecret     string
	JWTExpiry     time.Duration
	SecureCookies bool

	Database    DatabaseConfig
	RedisAddr   string
	KafkaBroker string

	Location         *time.Location
	DefaultLocale    string
	EmployeeCacheTTL  time.Duration
	CreditCacheTTL    time.Duration
	DashboardCacheTTL time.Duration
	RBACModelPath     string
}

// Load reads .env (if present) and the process environment. Environment
// variables win over .env values, which win over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("GRAPHQL_ENDPOINT", "http://localhost:4000/graphql")
	v.SetDefault("GRAPHQL_TIMEOUT", "10s")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY", "12h")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "jample_admin")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_BROKER", "")
	v.SetDefault("TIMEZONE", "Asia/Seoul")
	v.SetDefault("DEFAULT_LOCALE", "ko")
	v.SetDefault("EMPLOYEE_CACHE_TTL", "1m")
	v.SetDefault("CREDIT_CACHE_TTL", "30s")
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.SetDefault("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	logger := zap.L().Named("config")

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", v.GetString("TIMEZONE"), err)
	}

	cfg := &Config{
		AppEnv:          v.GetString("APP_ENV"),
		Port:            v.GetString("PORT"),
		GraphQLEndpoint: v.GetString("GRAPHQL_ENDPOINT"),
		GraphQLTimeout:  durationOr(v, "GRAPHQL_TIMEOUT", 10*time.Second),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTExpiry:       durationOr(v, "JWT_EXPIRY", 12*time.Hour),
		SecureCookies:   v.GetString("APP_ENV") == "production",
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		RedisAddr:         v.GetString("REDIS_ADDR"),
		KafkaBroker:       v.GetString("KAFKA_BROKER"),
		Location:          loc,
		DefaultLocale:     v.GetString("DEFAULT_LOCALE"),
		EmployeeCacheTTL:  durationOr(v, "EMPLOYEE_CACHE_TTL", time.Minute),
		CreditCacheTTL:    durationOr(v, "CREDIT_CACHE_TTL", 30*time.Second),
		DashboardCacheTTL: durationOr(v, "DASHBOARD_CACHE_TTL", 5*time.Minute),
		RBACModelPath:     v.GetString("RBAC_MODEL_PATH"),
	}

	if cfg.GraphQLEndpoint == "" {
		return nil, fmt.Errorf("GRAPHQL_ENDPOINT is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.KafkaBroker == "" {
		logger.Warn("KAFKA_BROKER not set, outbox events will stay pending until a worker runs")
	}

	return cfg, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			zap.L().Named("config").Warn("invalid duration, using default",
				zap.String("key", key),
				zap.String("value", raw),
				zap.Duration("default", fallback),
			)
		}
		return fallback
	}
	return d
}

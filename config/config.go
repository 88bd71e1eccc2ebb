package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MongoURI          string        `mapstructure:"MONGODB_URI"`
	MongoDatabase     string        `mapstructure:"MONGODB_DATABASE"`
	MongoTransactions bool          `mapstructure:"MONGO_TRANSACTIONS"`
	RedisURL          string        `mapstructure:"REDIS_URL"`
	CatalogCacheTTL   time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	JWTSecret         string        `mapstructure:"JWT_TOKEN_SECRET"`
	JWTExpiry         time.Duration `mapstructure:"JWT_EXPIRY"`
	StripeSecretKey   string        `mapstructure:"STRIPE_SECRET_KEY"`
	StripeCurrency    string        `mapstructure:"STRIPE_CURRENCY"`
	ReconcileCron     string        `mapstructure:"RECONCILE_CRON"`
	MigrationsEnabled bool          `mapstructure:"MIGRATIONS_ENABLED"`
	JobsEnabled       bool          `mapstructure:"JOBS_ENABLED"`
	CORSOrigins       []string      `mapstructure:"-"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "MONGODB_URI", "MONGODB_DATABASE", "MONGO_TRANSACTIONS",
	"REDIS_URL", "CATALOG_CACHE_TTL", "JWT_TOKEN_SECRET", "JWT_EXPIRY",
	"STRIPE_SECRET_KEY", "STRIPE_CURRENCY", "RECONCILE_CRON",
	"MIGRATIONS_ENABLED", "JOBS_ENABLED", "CORS_ORIGINS",
}

// Load reads configuration from the process environment. The caller is
// expected to have loaded any .env file beforehand.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGODB_DATABASE", "doctorsPortal")
	v.SetDefault("MONGO_TRANSACTIONS", false)
	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("STRIPE_CURRENCY", "usd")
	v.SetDefault("RECONCILE_CRON", "*/15 * * * *")
	v.SetDefault("MIGRATIONS_ENABLED", true)
	v.SetDefault("JOBS_ENABLED", true)
	v.SetDefault("CORS_ORIGINS", "*")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	for _, origin := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.MongoURI) == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_TOKEN_SECRET is required")
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive, got %s", c.JWTExpiry)
	}
	return nil
}

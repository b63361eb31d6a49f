package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/maxviazov/offer-catalog-service/internal/pagination"
)

// ErrMissingSecret is returned when a required secret is neither in the file nor in the environment.
var ErrMissingSecret = errors.New("missing required secret")

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	setDefaults(v)

	// Secrets usually live only in the environment; AutomaticEnv alone
	// does not surface keys that are absent from the file during Unmarshal.
	for _, key := range []string{"postgres.user", "postgres.password", "postgres.db"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "offer-catalog-service")
	v.SetDefault("app.version", "0.0.1")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)

	v.SetDefault("pagination.per_page", pagination.DefaultPerPage)
	v.SetDefault("pagination.max_pages", pagination.DefaultMaxPages)
}

func (c *Config) validate() error {
	var missing []string
	if c.Postgres.User == "" {
		missing = append(missing, "APP_POSTGRES_USER")
	}
	if c.Postgres.Password == "" {
		missing = append(missing, "APP_POSTGRES_PASSWORD")
	}
	if c.Postgres.DBName == "" {
		missing = append(missing, "APP_POSTGRES_DB")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSecret, strings.Join(missing, ", "))
	}
	if c.Pagination.PerPage <= 0 {
		return fmt.Errorf("pagination.per_page must be > 0, got %d", c.Pagination.PerPage)
	}
	if c.Pagination.MaxPages < 0 {
		return fmt.Errorf("pagination.max_pages must be >= 0, got %d", c.Pagination.MaxPages)
	}
	return nil
}

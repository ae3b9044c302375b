package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ServerPort       int    `mapstructure:"SERVER_PORT"`
	Environment      string `mapstructure:"ENVIRONMENT"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	CorsAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`

	DatabaseDriver   string `mapstructure:"DB_DRIVER"`
	DatabaseDbPath   string `mapstructure:"DB_PATH"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     int    `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSLMODE"`

	DatabaseCacheAddress string `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DB_CACHE_PORT"`
	CacheTTLMinutes      int    `mapstructure:"CACHE_TTL_MINUTES"`
}

var defaults = map[string]any{
	"SERVER_PORT":        8288,
	"ENVIRONMENT":        "development",
	"LOG_LEVEL":          "info",
	"CORS_ALLOW_ORIGINS": "*",
	"DB_DRIVER":          DriverSQLite,
	"DB_PATH":            "data/club.db",
	"DB_HOST":            "",
	"DB_PORT":            5432,
	"DB_USER":            "",
	"DB_PASSWORD":        "",
	"DB_NAME":            "",
	"DB_SSLMODE":         "disable",
	"DB_CACHE_ADDRESS":   "",
	"DB_CACHE_PORT":      6379,
	"CACHE_TTL_MINUTES":  60,
}

// InitConfig reads .env, an optional config.yaml and the environment, in
// increasing order of precedence.
func InitConfig() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.ServerPort <= 0 {
		return fmt.Errorf("invalid server port %d", c.ServerPort)
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseDbPath == "" {
			return errors.New("database path is empty")
		}
	case DriverPostgres:
		if c.DatabaseHost == "" || c.DatabaseName == "" {
			return errors.New("postgres host and database name are required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}

	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

func (c Config) CacheAddress() string {
	if c.DatabaseCacheAddress == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.DatabaseCacheAddress, c.DatabaseCachePort)
}

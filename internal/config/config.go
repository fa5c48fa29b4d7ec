package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string `mapstructure:"service_name"`
	Environment string `mapstructure:"environment"`

	HTTPAddr string `mapstructure:"http_addr"`

	Database DatabaseConfig `mapstructure:"database"`

	LogLevel       string `mapstructure:"log_level"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

type DatabaseConfig struct {
	// Driver is one of postgres, mysql, sqlite.
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TRADELOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("service_name", "tradelog")
	v.SetDefault("environment", "development")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:tradelog.db?cache=shared")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_enabled", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

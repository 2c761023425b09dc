package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the portal core.
type Config struct {
	AppName           string
	AppEnv            string
	LogLevel          string
	RedisURL          string
	DashboardCacheTTL time.Duration
	SeedDemoData      bool
}

// IsDevelopment reports whether the app runs in the development environment.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads configuration values from environment variables and an optional
// .env file. An empty redis URL disables the dashboard cache.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PORTAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Edu Portal")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("dashboard.cache_ttl", "5m")
	v.SetDefault("seed.demo_data", true)

	ttlString := v.GetString("dashboard.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		LogLevel:          strings.ToLower(v.GetString("log.level")),
		RedisURL:          v.GetString("redis.url"),
		DashboardCacheTTL: ttl,
		SeedDemoData:      v.GetBool("seed.demo_data"),
	}

	return cfg, nil
}

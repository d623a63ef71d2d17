package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ErrMissingJWTSecret is returned by Validate when no signing secret is
// configured. There is deliberately no built-in fallback secret.
var ErrMissingJWTSecret = errors.New("auth.jwt_secret is required (set JWT_SECRET or configs/config.toml)")

type Config struct {
	App    AppConfig    `toml:"app"`
	Auth   AuthConfig   `toml:"auth"`
	SQLite SQLiteConfig `toml:"sqlite"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type AuthConfig struct {
	JWTSecret      string `toml:"jwt_secret"`
	SessionTTLHour int    `toml:"session_ttl_hour"`
	BcryptCost     int    `toml:"bcrypt_cost"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.Auth.SessionTTLHour <= 0 {
		return fmt.Errorf("auth.session_ttl_hour must be positive, got %d", c.Auth.SessionTTLHour)
	}
	return nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// IsProd reports whether the service runs in a production-like environment;
// it controls the Secure cookie attribute and the logger profile.
func (c *Config) IsProd() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "gopherblog",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8080,
			GinMode: "debug",
		},
		Auth: AuthConfig{
			JWTSecret:      "",
			SessionTTLHour: 24 * 7,
			BcryptCost:     12,
		},
		SQLite: SQLiteConfig{
			Path: "blog.db",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.SessionTTLHour = getEnvAsInt("SESSION_TTL_HOUR", cfg.Auth.SessionTTLHour)
	cfg.Auth.BcryptCost = getEnvAsInt("BCRYPT_COST", cfg.Auth.BcryptCost)

	cfg.SQLite.Path = getEnv("SQLITE_PATH", cfg.SQLite.Path)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	RedisAddr         string
	CacheTTL          time.Duration
	NewReleaseWindow  time.Duration
	JWTSecret         string
	SessionSecret     string
	HideDefaultBanner bool
	SeedSampleShoes   bool
	Port              string
	Env               string
}

// LoadConfig loads configuration from an optional .env file and the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	cacheTTL, err := intEnv("CACHE_TTL_SECONDS", utils.DefaultCacheTTLSeconds)
	if err != nil {
		return nil, err
	}
	windowDays, err := intEnv("NEW_RELEASE_WINDOW_DAYS", int(utils.DefaultNewReleaseWindow/(24*time.Hour)))
	if err != nil {
		return nil, err
	}
	hideDefault, err := boolEnv("HIDE_DEFAULT_BANNER", false)
	if err != nil {
		return nil, err
	}
	seed, err := boolEnv("SEED_SAMPLE_SHOES", true)
	if err != nil {
		return nil, err
	}

	config := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            stringEnv("DB_PORT", utils.DefaultDBPort),
		DBUser:            stringEnv("DB_USER", utils.DefaultDBUser),
		DBPassword:        stringEnv("DB_PASSWORD", utils.DefaultDBPassword),
		DBName:            stringEnv("DB_NAME", utils.DefaultDBName),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		CacheTTL:          time.Duration(cacheTTL) * time.Second,
		NewReleaseWindow:  time.Duration(windowDays) * 24 * time.Hour,
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SessionSecret:     stringEnv("SESSION_SECRET", "sole-and-ankle-dev-session"),
		HideDefaultBanner: hideDefault,
		SeedSampleShoes:   seed,
		Port:              stringEnv("PORT", utils.DefaultPort),
		Env:               stringEnv("ENV", "development"),
	}

	return config, nil
}

// UseDatabase reports whether a Postgres host is configured
func (c *Config) UseDatabase() bool {
	return c.DBHost != ""
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return v, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Auth    AuthConfig
	Upload  UploadConfig
	Rules   RulesConfig
	Storage StorageConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// AuthConfig holds bearer token configuration. An empty secret leaves the API
// open.
type AuthConfig struct {
	JWTSecret string
}

type UploadConfig struct {
	MaxBytes int64
}

// RulesConfig holds the attendance rule settings that may differ between
// deployments.
type RulesConfig struct {
	OverridesFile  string
	LateThreshold  clock.Clock
	LunchAllowance time.Duration
}

type StorageConfig struct {
	ExportDir string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}

	config.Auth = AuthConfig{
		JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
	}

	// Upload configuration
	maxBytes, err := strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", strconv.Itoa(32<<20)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES: %w", err)
	}
	config.Upload = UploadConfig{MaxBytes: maxBytes}

	// Rules configuration
	threshold, err := clock.Parse(getEnv("RULES_LATE_THRESHOLD", "08:10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RULES_LATE_THRESHOLD: %w", err)
	}
	allowance, err := time.ParseDuration(getEnv("RULES_LUNCH_ALLOWANCE", "20m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RULES_LUNCH_ALLOWANCE: %w", err)
	}
	config.Rules = RulesConfig{
		OverridesFile:  getEnv("RULES_OVERRIDES_FILE", ""),
		LateThreshold:  threshold,
		LunchAllowance: allowance,
	}

	config.Storage = StorageConfig{
		ExportDir: getEnv("STORAGE_EXPORT_DIR", "./exports"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.Rules.LunchAllowance < 0 || c.Rules.LunchAllowance%time.Minute != 0 {
		return fmt.Errorf("RULES_LUNCH_ALLOWANCE must be a non-negative whole number of minutes")
	}
	return nil
}

// LunchAllowanceMinutes returns the lunch allowance in whole minutes.
func (c *Config) LunchAllowanceMinutes() int {
	return int(c.Rules.LunchAllowance / time.Minute)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

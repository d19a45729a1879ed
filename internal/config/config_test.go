package config

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Empty(t, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, int64(32<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, clock.New(8, 10), cfg.Rules.LateThreshold)
	assert.Equal(t, 20, cfg.LunchAllowanceMinutes())
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RULES_LATE_THRESHOLD", "08:00")
	t.Setenv("RULES_LUNCH_ALLOWANCE", "30m")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, clock.New(8, 0), cfg.Rules.LateThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Rules.LunchAllowance)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"APP_PORT":              "eighty",
		"UPLOAD_MAX_BYTES":      "-1",
		"RULES_LATE_THRESHOLD":  "noon-ish",
		"RULES_LUNCH_ALLOWANCE": "90s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

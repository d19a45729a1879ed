package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights/internal/config"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Rules: config.RulesConfig{
			LateThreshold:  clock.New(8, 10),
			LunchAllowance: 20 * time.Minute,
		},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Defaults(t *testing.T) {
	services, err := New(testConfig(), discard())
	require.NoError(t, err)
	assert.Nil(t, services.JWT)
	assert.Equal(t, schedule.CategoryRegular, services.Resolver.Resolve("Ana").Category())
}

func TestNew_LoadsOverridesAndAuth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- key: "marta gil"
  treat_as_ppp: true
  fixed_daily_hours: 40
`), 0o644))

	cfg := testConfig()
	cfg.Rules.OverridesFile = path
	cfg.Auth.JWTSecret = "secret"

	services, err := New(cfg, discard())
	require.NoError(t, err)
	assert.NotNil(t, services.JWT)
	assert.Equal(t, schedule.CategoryFixed, services.Resolver.Resolve("Marta Gil").Category())
}

func TestNew_BadOverridesFile(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.OverridesFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(cfg, discard())
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

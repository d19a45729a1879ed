// Package app wires the attendance engine from configuration. Both binaries
// build their services through it.
package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insights/internal/config"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/jwt"
	attendanceService "github.com/cmlabs-hris/attendance-insights/internal/service/attendance"
	reportService "github.com/cmlabs-hris/attendance-insights/internal/service/report"
	scheduleService "github.com/cmlabs-hris/attendance-insights/internal/service/schedule"
)

// AccessTokenTTL is the lifetime of tokens minted by the CLI.
const AccessTokenTTL = 24 * time.Hour

type Services struct {
	Resolver schedule.Resolver
	Reports  report.ReportService
	// JWT is nil when AUTH_JWT_SECRET is empty.
	JWT jwt.Service
}

func New(cfg *config.Config, logger *slog.Logger) (*Services, error) {
	layout := attendance.DefaultLayout()

	overrides, err := scheduleService.LoadOverridesFile(cfg.Rules.OverridesFile, len(layout.Blocks))
	if err != nil {
		return nil, err
	}
	resolver := scheduleService.NewResolver(overrides)

	classifier := attendanceService.NewClassifier(attendanceService.Policy{
		LateThreshold:  cfg.Rules.LateThreshold,
		LunchAllowance: cfg.LunchAllowanceMinutes(),
	})

	services := &Services{
		Resolver: resolver,
		Reports:  reportService.NewReportService(resolver, classifier, reportService.NewAggregator(), layout, logger),
	}
	if cfg.Auth.JWTSecret != "" {
		services.JWT = jwt.NewJWTService(cfg.Auth.JWTSecret, AccessTokenTTL)
	}

	logger.Info("attendance engine ready",
		slog.Int("overrides", len(overrides)),
		slog.String("late_threshold", cfg.Rules.LateThreshold.String()),
		slog.Bool("auth", services.JWT != nil),
	)
	return services, nil
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

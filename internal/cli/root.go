package cli

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/jwt"
	"github.com/charmbracelet/lipgloss"
)

type Context struct {
	Out       io.Writer
	Logger    *slog.Logger
	Resolver  schedule.Resolver
	Reports   report.ReportService
	ExportDir string
	// JWT is nil when no signing secret is configured.
	JWT jwt.Service
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

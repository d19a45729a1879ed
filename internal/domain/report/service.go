package report

import (
	"context"
	"io"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
)

// Aggregator folds one employee's events into statistics.
type Aggregator interface {
	Aggregate(employeeID string, sched schedule.EmployeeSchedule, events []attendance.Event) EmployeeStats
}

// ReportService runs the whole engine over one workbook.
type ReportService interface {
	// Generate processes an already opened workbook.
	Generate(ctx context.Context, wb attendance.Workbook, sourceName string) (Report, error)

	// GenerateFromUpload validates and opens an uploaded file, then processes it.
	GenerateFromUpload(ctx context.Context, req GenerateReportRequest) (Report, error)

	// GenerateEmployee processes a single employee.
	GenerateEmployee(ctx context.Context, wb attendance.Workbook, employeeID string) (EmployeeStats, EmployeeTimeline, error)
}

// Exporter renders a report to a downloadable format.
type Exporter interface {
	Export(w io.Writer, rep Report) error
	ContentType() string
	Extension() string
}

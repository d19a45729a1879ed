package attendance

import (
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
)

// Workbook is a read-only view over an uploaded spreadsheet. Each run opens
// its own Workbook.
type Workbook interface {
	SheetNames() []string
	Sheet(name string) (Sheet, error)
	Close() error
}

// Sheet exposes cells by 0-based row and column. Out-of-range cells read as "".
type Sheet interface {
	Name() string
	Cell(row, col int) string
}

// Location is one (sheet, block) pair holding an employee's records.
type Location struct {
	Sheet Sheet
	Block ColumnBlock
}

// SheetLocator finds where an employee's daily records live.
type SheetLocator interface {
	// AttendanceSheets returns every sheet from the attendance start sheet
	// onward, or a *ConfigurationError when it is missing.
	AttendanceSheets(wb Workbook) ([]string, error)

	// Locate returns all matching (sheet, block) pairs in workbook order. A pin
	// bypasses the scan.
	Locate(wb Workbook, employeeID string, pin *schedule.Placement) ([]Location, error)

	// Employees lists every identifier found in block name cells, in order of
	// first appearance, including pinned blocks.
	Employees(wb Workbook, pins []schedule.Placement) ([]string, error)
}

// RecordExtractor turns one located block into daily records.
type RecordExtractor interface {
	Extract(sheet Sheet, block ColumnBlock) []DailyRecord
}

// EventClassifier applies a schedule to a daily record. Implementations are
// pure.
type EventClassifier interface {
	Classify(rec DailyRecord, sched schedule.EmployeeSchedule) []Event
	ClassifyOvertime(rec DailyRecord) []Event
}

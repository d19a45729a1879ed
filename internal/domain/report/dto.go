package report

import (
	"io"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/diag"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/validator"
)

// ========================================
// UPLOAD
// ========================================

var AllowedWorkbookExtensions = []string{".xlsx", ".xlsm"}

type GenerateReportRequest struct {
	FileName string    `json:"file_name"`
	Size     int64     `json:"size"`
	MaxSize  int64     `json:"-"`
	Content  io.Reader `json:"-"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FileName) || r.Content == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "attendance workbook is required",
		})
	} else if !validator.HasExtension(r.FileName, AllowedWorkbookExtensions) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "invalid file type: only " + strings.Join(AllowedWorkbookExtensions, ", ") + " allowed",
		})
	}

	if r.MaxSize > 0 && r.Size > r.MaxSize {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "attendance workbook is too large",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportRequest struct {
	GenerateReportRequest
	Format string `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.GenerateReportRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if !validator.IsValidExportFormat(r.Format) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: csv, xlsx, pdf",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// EMPLOYEE STATISTICS
// ========================================

// WeekCount is the fixed number of week buckets per month: days 1-7, 8-14,
// 15-21 and 22 onward. Short or long months are not special-cased.
const WeekCount = 4

// WeekDays holds affected day labels per week bucket.
type WeekDays [WeekCount][]string

// Metric folds one event kind.
type Metric struct {
	Count   int      `json:"count"`
	Minutes int      `json:"minutes"`
	Weeks   WeekDays `json:"weeks"`
}

type EmployeeStats struct {
	Employee   string            `json:"employee"`
	Department string            `json:"department"`
	Category   schedule.Category `json:"category"`
	Sheets     []string          `json:"sheets"`

	LateArrivals       Metric `json:"late_arrivals"`
	LateAfterThreshold Metric `json:"late_arrivals_after_810"`
	EarlyDepartures    Metric `json:"early_departures"`
	LunchOvertime      Metric `json:"lunch_overtime"`
	MissingEntries     Metric `json:"missing_entries"`
	MissingExits       Metric `json:"missing_exits"`
	MissingLunches     Metric `json:"missing_lunches"`
	MidDayDepartures   Metric `json:"mid_day_departures"`
	Overtime           Metric `json:"overtime"`
	Absences           Metric `json:"absences"`

	RequiredHours     float64             `json:"required_hours"`
	ActualHours       float64             `json:"actual_hours"`
	WeeklyHours       *[WeekCount]float64 `json:"weekly_hours,omitempty"`
	PerfectAttendance bool                `json:"perfect_attendance"`
}

// ========================================
// REPORT
// ========================================

type DepartmentTotal struct {
	Department    string  `json:"department"`
	Employees     int     `json:"employees"`
	RequiredHours float64 `json:"required_hours"`
	ActualHours   float64 `json:"actual_hours"`
}

// TimelineDay carries up to four punches for one day, for chart rendering.
type TimelineDay struct {
	Sheet        string  `json:"sheet"`
	Day          int     `json:"day"`
	DayLabel     string  `json:"day_label"`
	InitialEntry *string `json:"initial_entry"`
	MiddayExit   *string `json:"midday_exit"`
	MiddayEntry  *string `json:"midday_entry"`
	FinalExit    *string `json:"final_exit"`
}

type EmployeeTimeline struct {
	Employee string        `json:"employee"`
	Days     []TimelineDay `json:"days"`
}

type Totals struct {
	Employees          int     `json:"employees"`
	PerfectAttendance  int     `json:"perfect_attendance"`
	LateArrivals       int     `json:"late_arrivals"`
	LateAfterThreshold int     `json:"late_arrivals_after_810"`
	EarlyDepartures    int     `json:"early_departures"`
	Absences           int     `json:"absences"`
	RequiredHours      float64 `json:"required_hours"`
	ActualHours        float64 `json:"actual_hours"`
}

type Report struct {
	RunID       string             `json:"run_id"`
	SourceName  string             `json:"source_name"`
	GeneratedAt string             `json:"generated_at"`
	Totals      Totals             `json:"totals"`
	Departments []DepartmentTotal  `json:"departments"`
	Employees   []EmployeeStats    `json:"employees"`
	Timelines   []EmployeeTimeline `json:"timelines"`
	Diagnostics []diag.Entry       `json:"diagnostics"`
}

package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/diag"
	"github.com/cmlabs-hris/attendance-insights/internal/service/workbook"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	resolver   schedule.Resolver
	classifier attendance.EventClassifier
	aggregator report.Aggregator
	layout     attendance.Layout
	logger     *slog.Logger
	now        func() time.Time
}

func NewReportService(
	resolver schedule.Resolver,
	classifier attendance.EventClassifier,
	aggregator report.Aggregator,
	layout attendance.Layout,
	logger *slog.Logger,
) report.ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportServiceImpl{
		resolver:   resolver,
		classifier: classifier,
		aggregator: aggregator,
		layout:     layout,
		logger:     logger,
		now:        time.Now,
	}
}

// run is the state of a single processing run. Nothing in it outlives the
// call that created it.
type run struct {
	*ReportServiceImpl
	wb          attendance.Workbook
	log         *diag.Log
	locator     attendance.SheetLocator
	extractor   attendance.RecordExtractor
	departments *workbook.Departments
}

func (s *ReportServiceImpl) newRun(wb attendance.Workbook, log *diag.Log) (*run, error) {
	locator, err := workbook.NewLocator(s.layout, log)
	if err != nil {
		return nil, err
	}
	if _, err := locator.AttendanceSheets(wb); err != nil {
		return nil, err
	}
	departments, err := workbook.LoadDepartments(wb, s.layout, log)
	if err != nil {
		return nil, err
	}
	return &run{
		ReportServiceImpl: s,
		wb:                wb,
		log:               log,
		locator:           locator,
		extractor:         workbook.NewExtractor(s.layout, log),
		departments:       departments,
	}, nil
}

// GenerateFromUpload implements report.ReportService.
func (s *ReportServiceImpl) GenerateFromUpload(ctx context.Context, req report.GenerateReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	wb, err := workbook.Open(req.Content)
	if err != nil {
		return report.Report{}, fmt.Errorf("%w: %v", report.ErrUnreadableWorkbook, err)
	}
	defer wb.Close()

	return s.Generate(ctx, wb, req.FileName)
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, wb attendance.Workbook, sourceName string) (report.Report, error) {
	runID := uuid.NewString()
	log := diag.New(s.logger.With(slog.String("run_id", runID), slog.String("source", sourceName)))

	r, err := s.newRun(wb, log)
	if err != nil {
		return report.Report{}, err
	}

	employees, err := r.locator.Employees(wb, s.resolver.Placements())
	if err != nil {
		return report.Report{}, err
	}

	rep := report.Report{
		RunID:       runID,
		SourceName:  sourceName,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Employees:   []report.EmployeeStats{},
		Timelines:   []report.EmployeeTimeline{},
	}

	for _, id := range employees {
		if err := ctx.Err(); err != nil {
			return report.Report{}, err
		}
		stats, timeline, found, err := r.employee(id)
		if err != nil {
			return report.Report{}, err
		}
		if !found {
			continue
		}
		rep.Employees = append(rep.Employees, stats)
		rep.Timelines = append(rep.Timelines, timeline)
	}

	rep.Departments = departmentTotals(rep.Employees)
	rep.Totals = totals(rep.Employees)
	rep.Diagnostics = log.Entries()

	s.logger.Info("report generated",
		slog.String("run_id", runID),
		slog.String("source", sourceName),
		slog.Int("employees", len(rep.Employees)),
		slog.Int("diagnostics", len(rep.Diagnostics)),
	)
	return rep, nil
}

// GenerateEmployee implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployee(ctx context.Context, wb attendance.Workbook, employeeID string) (report.EmployeeStats, report.EmployeeTimeline, error) {
	if err := ctx.Err(); err != nil {
		return report.EmployeeStats{}, report.EmployeeTimeline{}, err
	}

	r, err := s.newRun(wb, diag.New(s.logger))
	if err != nil {
		return report.EmployeeStats{}, report.EmployeeTimeline{}, err
	}

	stats, timeline, found, err := r.employee(employeeID)
	if err != nil {
		return report.EmployeeStats{}, report.EmployeeTimeline{}, err
	}
	if !found {
		return report.EmployeeStats{}, report.EmployeeTimeline{}, fmt.Errorf("%w: %q", attendance.ErrEmployeeNotFound, employeeID)
	}
	return stats, timeline, nil
}

// employee runs resolver, locator, extractor, classifier and aggregator for
// one identifier. found is false when no block holds the employee.
func (r *run) employee(id string) (report.EmployeeStats, report.EmployeeTimeline, bool, error) {
	sched := r.resolver.Resolve(id)

	locations, err := r.locator.Locate(r.wb, id, sched.Placement)
	if err != nil {
		return report.EmployeeStats{}, report.EmployeeTimeline{}, false, err
	}
	if len(locations) == 0 {
		r.log.Warn(diag.Entry{
			Code:     diag.CodeEmployeeNotFound,
			Employee: id,
			Message:  "no attendance block carries this name",
		})
		return report.EmployeeStats{}, report.EmployeeTimeline{}, false, nil
	}

	var (
		events []attendance.Event
		sheets []string
	)
	timeline := report.EmployeeTimeline{Employee: id, Days: []report.TimelineDay{}}
	seenSheet := make(map[string]bool)

	for _, loc := range locations {
		if name := loc.Sheet.Name(); !seenSheet[name] {
			seenSheet[name] = true
			sheets = append(sheets, name)
		}
		for _, rec := range r.extractor.Extract(loc.Sheet, loc.Block) {
			events = append(events, r.classifier.Classify(rec, sched)...)
			if sched.OvertimeEligible && sched.OvertimeSource == nil {
				events = append(events, r.classifier.ClassifyOvertime(rec)...)
			}
			timeline.Days = append(timeline.Days, timelineDay(rec))
		}
	}

	if sched.OvertimeEligible && sched.OvertimeSource != nil {
		overtime, err := r.locator.Locate(r.wb, id, sched.OvertimeSource)
		if err != nil {
			return report.EmployeeStats{}, report.EmployeeTimeline{}, false, err
		}
		for _, loc := range overtime {
			for _, rec := range r.extractor.Extract(loc.Sheet, loc.Block) {
				events = append(events, r.classifier.ClassifyOvertime(rec)...)
			}
		}
	}

	stats := r.aggregator.Aggregate(id, sched, events)
	stats.Department = r.departments.Lookup(id)
	stats.Sheets = sheets
	return stats, timeline, true, nil
}

func timelineDay(rec attendance.DailyRecord) report.TimelineDay {
	return report.TimelineDay{
		Sheet:        rec.Sheet,
		Day:          rec.DayNumber,
		DayLabel:     rec.DayLabel,
		InitialEntry: formatClock(rec.Entry),
		MiddayExit:   formatClock(rec.LunchOut),
		MiddayEntry:  formatClock(rec.LunchReturn),
		FinalExit:    formatClock(rec.Exit),
	}
}

func formatClock(c *clock.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

// departmentTotals groups employees by department in order of first
// appearance.
func departmentTotals(employees []report.EmployeeStats) []report.DepartmentTotal {
	out := []report.DepartmentTotal{}
	index := make(map[string]int)
	for _, e := range employees {
		i, ok := index[e.Department]
		if !ok {
			i = len(out)
			index[e.Department] = i
			out = append(out, report.DepartmentTotal{Department: e.Department})
		}
		out[i].Employees++
		out[i].RequiredHours = round2(out[i].RequiredHours + e.RequiredHours)
		out[i].ActualHours = round2(out[i].ActualHours + e.ActualHours)
	}
	return out
}

func totals(employees []report.EmployeeStats) report.Totals {
	t := report.Totals{Employees: len(employees)}
	for _, e := range employees {
		if e.PerfectAttendance {
			t.PerfectAttendance++
		}
		t.LateArrivals += e.LateArrivals.Count
		t.LateAfterThreshold += e.LateAfterThreshold.Count
		t.EarlyDepartures += e.EarlyDepartures.Count
		t.Absences += e.Absences.Count
		t.RequiredHours = round2(t.RequiredHours + e.RequiredHours)
		t.ActualHours = round2(t.ActualHours + e.ActualHours)
	}
	return t
}

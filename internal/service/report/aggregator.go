package report

import (
	"fmt"
	"math"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
)

// Monthly hour standards.
const (
	RegularRequiredHours  = 76.40
	PPPRequiredHours      = 80.0
	AbsenceDeductionHours = 8.0
)

// WeekOf maps a day of month to its 0-based week bucket: 1-7, 8-14, 15-21,
// and everything from 22 on. Out-of-range days are clamped into the first or
// last bucket.
func WeekOf(day int) int {
	switch {
	case day <= 7:
		return 0
	case day <= 14:
		return 1
	case day <= 21:
		return 2
	default:
		return report.WeekCount - 1
	}
}

type AggregatorImpl struct{}

func NewAggregator() report.Aggregator {
	return &AggregatorImpl{}
}

// Aggregate implements report.Aggregator.
func (a *AggregatorImpl) Aggregate(employeeID string, sched schedule.EmployeeSchedule, events []attendance.Event) report.EmployeeStats {
	stats := report.EmployeeStats{
		Employee: employeeID,
		Category: sched.Category(),
	}

	var workedMinutes [report.WeekCount]int
	for _, e := range events {
		if e.Kind == attendance.EventWorked {
			workedMinutes[WeekOf(e.Day)] += e.Minutes
			continue
		}
		if m := metricFor(&stats, e.Kind); m != nil {
			fold(m, e)
		}
	}

	switch stats.Category {
	case schedule.CategoryFixed:
		stats.RequiredHours = *sched.FixedDailyHours
		stats.ActualHours = *sched.FixedDailyHours
	case schedule.CategoryPPP:
		var weekly [report.WeekCount]float64
		total := 0.0
		for i, minutes := range workedMinutes {
			weekly[i] = round2(float64(minutes) / 60)
			total += weekly[i]
		}
		stats.RequiredHours = PPPRequiredHours
		stats.ActualHours = round2(total)
		stats.WeeklyHours = &weekly
	default:
		stats.RequiredHours = RegularRequiredHours
		stats.ActualHours = round2(math.Max(0, RegularRequiredHours-AbsenceDeductionHours*float64(stats.Absences.Count)))
	}

	stats.PerfectAttendance = stats.Absences.Count == 0 &&
		stats.LateArrivals.Count == 0 &&
		stats.EarlyDepartures.Count == 0

	return stats
}

func metricFor(s *report.EmployeeStats, kind attendance.EventKind) *report.Metric {
	switch kind {
	case attendance.EventLateArrival:
		return &s.LateArrivals
	case attendance.EventLateAfterThreshold:
		return &s.LateAfterThreshold
	case attendance.EventEarlyDeparture:
		return &s.EarlyDepartures
	case attendance.EventLunchOvertime:
		return &s.LunchOvertime
	case attendance.EventMissingEntry:
		return &s.MissingEntries
	case attendance.EventMissingExit:
		return &s.MissingExits
	case attendance.EventMissingLunch:
		return &s.MissingLunches
	case attendance.EventMidDayDeparture:
		return &s.MidDayDepartures
	case attendance.EventOvertime:
		return &s.Overtime
	case attendance.EventAbsence:
		return &s.Absences
	}
	return nil
}

func fold(m *report.Metric, e attendance.Event) {
	m.Count++
	m.Minutes += e.Minutes
	w := WeekOf(e.Day)
	m.Weeks[w] = append(m.Weeks[w], fmt.Sprintf("%02d", e.Day))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package attendance

import (
	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
)

// Policy holds the organisation-wide rule constants that do not vary per
// employee.
type Policy struct {
	// LateThreshold is the fixed cut-off behind the late-after-threshold
	// metric, independent of each schedule's start.
	LateThreshold clock.Clock
	// LunchAllowance is the lunch break length, in minutes, that is never
	// counted as overtime.
	LunchAllowance int
}

func DefaultPolicy() Policy {
	return Policy{
		LateThreshold:  clock.New(8, 10),
		LunchAllowance: 20,
	}
}

type ClassifierImpl struct {
	policy Policy
}

func NewClassifier(policy Policy) attendance.EventClassifier {
	return &ClassifierImpl{policy: policy}
}

// Classify implements attendance.EventClassifier.
func (c *ClassifierImpl) Classify(rec attendance.DailyRecord, sched schedule.EmployeeSchedule) []attendance.Event {
	if rec.IsAbsence {
		return []attendance.Event{newEvent(attendance.EventAbsence, rec, 0)}
	}
	if rec.IsWeekend {
		return nil
	}

	var events []attendance.Event

	if rec.Entry != nil {
		if late := rec.Entry.Sub(sched.Start); late > 0 {
			events = append(events, newEvent(attendance.EventLateArrival, rec, late))
		}
		if late := rec.Entry.Sub(c.policy.LateThreshold); late > 0 {
			events = append(events, newEvent(attendance.EventLateAfterThreshold, rec, late))
		}
	}

	if rec.Exit != nil && !sched.HideExit {
		if early := sched.End.Sub(*rec.Exit); early > 0 {
			events = append(events, newEvent(attendance.EventEarlyDeparture, rec, early))
		}
	}

	if sched.RequiresLunchCheck && rec.LunchOut != nil && rec.LunchReturn != nil {
		if over := rec.LunchReturn.Sub(*rec.LunchOut) - c.policy.LunchAllowance; over > 0 {
			events = append(events, newEvent(attendance.EventLunchOvertime, rec, over))
		}
	}

	events = append(events, c.missing(rec, sched)...)

	if rec.Entry != nil && rec.Exit == nil && !sched.TreatAsPPP && !sched.SkipMidDay {
		events = append(events, newEvent(attendance.EventMidDayDeparture, rec, 0))
	}

	if rec.Entry != nil && rec.Exit != nil {
		if worked := rec.Exit.Sub(*rec.Entry); worked > 0 {
			events = append(events, newEvent(attendance.EventWorked, rec, worked))
		}
	}

	return events
}

// missing stages missing-punch flags and then clears them when the block's
// absence-marker column says the employee was absent that day.
func (c *ClassifierImpl) missing(rec attendance.DailyRecord, sched schedule.EmployeeSchedule) []attendance.Event {
	var staged []attendance.Event
	if rec.Entry == nil {
		staged = append(staged, newEvent(attendance.EventMissingEntry, rec, 0))
	}
	if rec.Exit == nil {
		staged = append(staged, newEvent(attendance.EventMissingExit, rec, 0))
	}
	if sched.RequiresLunchCheck && rec.Exit != nil && (rec.LunchOut == nil || rec.LunchReturn == nil) {
		staged = append(staged, newEvent(attendance.EventMissingLunch, rec, 0))
	}

	if rec.AbsenceMarked {
		return nil
	}
	return staged
}

// ClassifyOvertime implements attendance.EventClassifier. Weekend and
// absence days are not counted.
func (c *ClassifierImpl) ClassifyOvertime(rec attendance.DailyRecord) []attendance.Event {
	if rec.IsAbsence || rec.IsWeekend || rec.Entry == nil || rec.Exit == nil {
		return nil
	}
	if minutes := rec.Exit.Sub(*rec.Entry); minutes > 0 {
		return []attendance.Event{newEvent(attendance.EventOvertime, rec, minutes)}
	}
	return nil
}

func newEvent(kind attendance.EventKind, rec attendance.DailyRecord, minutes int) attendance.Event {
	return attendance.Event{
		Kind:     kind,
		Sheet:    rec.Sheet,
		Day:      rec.DayNumber,
		DayLabel: rec.DayLabel,
		Minutes:  minutes,
	}
}

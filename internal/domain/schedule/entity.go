package schedule

import "github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"

// Category decides how required/actual hours are computed for an employee.
type Category string

const (
	CategoryRegular Category = "regular"
	CategoryPPP     Category = "ppp"   // reduced-hours, week-bucketed accounting
	CategoryFixed   Category = "fixed" // constant hours, independent of events
)

var (
	DefaultStart    = clock.New(7, 50)
	DefaultEnd      = clock.New(17, 10)
	DefaultPPPStart = clock.New(8, 0)
	DefaultPPPEnd   = clock.New(12, 0)
)

// Placement pins an attendance block on a named sheet.
type Placement struct {
	Sheet string `yaml:"sheet" json:"sheet"`
	Block int    `yaml:"block" json:"block"`
}

// EmployeeSchedule is the resolved configuration every downstream rule reads.
// Nothing after the resolver looks at the employee identifier for business
// decisions.
type EmployeeSchedule struct {
	Employee           string      `json:"employee"`
	Start              clock.Clock `json:"start_time"`
	End                clock.Clock `json:"end_time"`
	RequiresLunchCheck bool        `json:"requires_lunch_check"`
	OvertimeEligible   bool        `json:"overtime_eligible"`
	HideExit           bool        `json:"hide_exit"`
	TreatAsPPP         bool        `json:"treat_as_ppp"`
	FixedDailyHours    *float64    `json:"fixed_daily_hours,omitempty"`
	SkipMidDay         bool        `json:"skip_mid_day"`
	Placement          *Placement  `json:"placement,omitempty"`
	OvertimeSource     *Placement  `json:"overtime_source,omitempty"`
}

func (s EmployeeSchedule) Category() Category {
	switch {
	case s.FixedDailyHours != nil:
		return CategoryFixed
	case s.TreatAsPPP:
		return CategoryPPP
	default:
		return CategoryRegular
	}
}

// Default is the global schedule used when no override matches.
func Default(employee string) EmployeeSchedule {
	return EmployeeSchedule{
		Employee:           employee,
		Start:              DefaultStart,
		End:                DefaultEnd,
		RequiresLunchCheck: true,
	}
}

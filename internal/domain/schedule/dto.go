package schedule

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/validator"
)

type MatchMode string

const (
	MatchExact    MatchMode = "exact"
	MatchContains MatchMode = "contains"
)

var MatchModeValues = []string{string(MatchExact), string(MatchContains)}

// Override is one row of the declarative override table. Nil fields inherit
// from the default schedule.
type Override struct {
	Key              string       `yaml:"key" json:"key"`
	Match            MatchMode    `yaml:"match" json:"match"`
	Start            *clock.Clock `yaml:"start" json:"start,omitempty"`
	End              *clock.Clock `yaml:"end" json:"end,omitempty"`
	LunchCheck       *bool        `yaml:"lunch_check" json:"lunch_check,omitempty"`
	OvertimeEligible *bool        `yaml:"overtime_eligible" json:"overtime_eligible,omitempty"`
	HideExit         bool         `yaml:"hide_exit" json:"hide_exit"`
	TreatAsPPP       bool         `yaml:"treat_as_ppp" json:"treat_as_ppp"`
	FixedDailyHours  *float64     `yaml:"fixed_daily_hours" json:"fixed_daily_hours,omitempty"`
	SkipMidDay       bool         `yaml:"skip_mid_day" json:"skip_mid_day"`
	Placement        *Placement   `yaml:"placement" json:"placement,omitempty"`
	Overtime         *Placement   `yaml:"overtime" json:"overtime,omitempty"`
}

// NormalizeKey lowercases and trims an identifier for table lookups.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (o *Override) Validate(blocks int) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(o.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	}
	if o.Match != "" && !validator.IsInSlice(string(o.Match), MatchModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "match",
			Message: "match must be one of: " + strings.Join(MatchModeValues, ", "),
		})
	}
	if o.Start != nil && o.End != nil && *o.End <= *o.Start {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be after start",
		})
	}
	if o.FixedDailyHours != nil && *o.FixedDailyHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fixed_daily_hours",
			Message: "fixed_daily_hours must be a non-negative number",
		})
	}
	for field, p := range map[string]*Placement{"placement": o.Placement, "overtime": o.Overtime} {
		if p == nil {
			continue
		}
		if validator.IsEmpty(p.Sheet) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".sheet",
				Message: "sheet is required",
			})
		}
		if p.Block < 0 || p.Block >= blocks {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".block",
				Message: fmt.Sprintf("block must be between 0 and %d", blocks-1),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResolveScheduleRequest is the debug lookup exposed over HTTP and the CLI.
type ResolveScheduleRequest struct {
	Employee string `json:"employee"`
}

func (r *ResolveScheduleRequest) Validate() error {
	if validator.IsEmpty(r.Employee) {
		return validator.ValidationErrors{{
			Field:   "employee",
			Message: "employee is required",
		}}
	}
	return nil
}

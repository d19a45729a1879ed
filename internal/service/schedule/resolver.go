package schedule

import (
	"maps"
	"slices"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
)

const pppMarker = "ppp"

// ResolverImpl consults the override table in a fixed order: exact PPP
// override, "ppp" substring, exact or pattern override, global default.
// It is read-only after construction and safe to share between runs.
type ResolverImpl struct {
	exact    map[string]schedule.Override
	contains []schedule.Override
}

func NewResolver(overrides []schedule.Override) schedule.Resolver {
	r := &ResolverImpl{exact: make(map[string]schedule.Override)}
	for _, o := range overrides {
		o.Key = schedule.NormalizeKey(o.Key)
		if o.Match == schedule.MatchContains {
			r.contains = append(r.contains, o)
			continue
		}
		r.exact[o.Key] = o
	}
	return r
}

// Resolve implements schedule.Resolver.
func (r *ResolverImpl) Resolve(employeeID string) schedule.EmployeeSchedule {
	key := schedule.NormalizeKey(employeeID)
	override, hasExact := r.exact[key]

	if hasExact && override.TreatAsPPP {
		return ppp(employeeID, &override)
	}

	pattern := r.matchPattern(key)

	if strings.Contains(key, pppMarker) {
		switch {
		case hasExact:
			return ppp(employeeID, &override)
		case pattern != nil:
			return ppp(employeeID, pattern)
		default:
			return ppp(employeeID, nil)
		}
	}

	if hasExact {
		return merge(employeeID, override)
	}
	if pattern != nil {
		if pattern.TreatAsPPP {
			return ppp(employeeID, pattern)
		}
		return merge(employeeID, *pattern)
	}

	return schedule.Default(employeeID)
}

// Placements implements schedule.Resolver.
func (r *ResolverImpl) Placements() []schedule.Placement {
	var out []schedule.Placement
	seen := make(map[schedule.Placement]bool)
	add := func(o schedule.Override) {
		if o.Placement != nil && !seen[*o.Placement] {
			seen[*o.Placement] = true
			out = append(out, *o.Placement)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(r.exact)) {
		add(r.exact[key])
	}
	for _, o := range r.contains {
		add(o)
	}
	return out
}

// matchPattern returns the first contains-pattern override found in key.
func (r *ResolverImpl) matchPattern(key string) *schedule.Override {
	for i := range r.contains {
		if r.contains[i].Key != "" && strings.Contains(key, r.contains[i].Key) {
			o := r.contains[i]
			return &o
		}
	}
	return nil
}

func merge(employeeID string, o schedule.Override) schedule.EmployeeSchedule {
	s := schedule.Default(employeeID)
	if o.Start != nil {
		s.Start = *o.Start
	}
	if o.End != nil {
		s.End = *o.End
	}
	if o.LunchCheck != nil {
		s.RequiresLunchCheck = *o.LunchCheck
	}
	applyCommon(&s, &o)
	return s
}

func ppp(employeeID string, o *schedule.Override) schedule.EmployeeSchedule {
	s := schedule.EmployeeSchedule{
		Employee:   employeeID,
		Start:      schedule.DefaultPPPStart,
		End:        schedule.DefaultPPPEnd,
		TreatAsPPP: true,
	}
	if o == nil {
		return s
	}
	if o.Start != nil {
		s.Start = *o.Start
	}
	if o.End != nil {
		s.End = *o.End
	}
	applyCommon(&s, o)
	return s
}

func applyCommon(s *schedule.EmployeeSchedule, o *schedule.Override) {
	if o.OvertimeEligible != nil {
		s.OvertimeEligible = *o.OvertimeEligible
	} else if o.Overtime != nil {
		s.OvertimeEligible = true
	}
	s.HideExit = o.HideExit
	s.SkipMidDay = o.SkipMidDay
	if o.FixedDailyHours != nil {
		hours := *o.FixedDailyHours
		s.FixedDailyHours = &hours
	}
	if o.Placement != nil {
		p := *o.Placement
		s.Placement = &p
	}
	if o.Overtime != nil {
		p := *o.Overtime
		s.OvertimeSource = &p
	}
}

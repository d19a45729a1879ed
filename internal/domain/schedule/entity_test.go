package schedule

import (
	"testing"

	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeSchedule_Category(t *testing.T) {
	hours := 76.4
	assert.Equal(t, CategoryRegular, Default("ana").Category())
	assert.Equal(t, CategoryPPP, EmployeeSchedule{TreatAsPPP: true}.Category())
	assert.Equal(t, CategoryFixed, EmployeeSchedule{TreatAsPPP: true, FixedDailyHours: &hours}.Category())
}

func TestOverride_Validate(t *testing.T) {
	start, end := clock.New(9, 0), clock.New(8, 0)
	hours := -1.0
	o := Override{
		Key:             " ",
		Match:           "regex",
		Start:           &start,
		End:             &end,
		FixedDailyHours: &hours,
		Placement:       &Placement{Sheet: "", Block: 3},
	}

	err := o.Validate(3)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "key")
	assert.Contains(t, fields, "match")
	assert.Contains(t, fields, "end")
	assert.Contains(t, fields, "fixed_daily_hours")
	assert.Contains(t, fields, "placement.sheet")
	assert.Contains(t, fields, "placement.block")
}

func TestOverride_ValidateAcceptsMinimal(t *testing.T) {
	o := Override{Key: "jane doe"}
	assert.NoError(t, o.Validate(3))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "jane doe ppp", NormalizeKey("  Jane Doe PPP "))
}

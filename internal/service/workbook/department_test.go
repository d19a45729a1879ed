package workbook

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDepartments(t *testing.T) {
	log := diag.New(nil)
	wb := NewMemory().AddSheet("Summary", map[string]string{
		"B3":   "Header Row",
		"C3":   "Ignored",
		"B4":   "Ana Ruiz",
		"C4":   "Finance",
		"B5":   " Luis Mora ",
		"C5":   " Operations ",
		"B204": "Outside Window",
		"C204": "Nope",
	})

	d, err := LoadDepartments(wb, attendance.DefaultLayout(), log)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "Finance", d.Lookup("Ana Ruiz"))
	assert.Equal(t, "Operations", d.Lookup("Luis Mora"))
	assert.Empty(t, log.Entries())

	assert.Equal(t, "", d.Lookup("Outside Window"))
	assert.Equal(t, "", d.Lookup("Header Row"))
	assert.Equal(t, 2, log.Count(diag.CodeDepartmentNotFound))
}

func TestLoadDepartments_MissingSummary(t *testing.T) {
	wb := NewMemory().AddSheet("Exceptional", nil)

	_, err := LoadDepartments(wb, attendance.DefaultLayout(), nil)
	var cfgErr *attendance.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Summary", cfgErr.Sheet)
}

func TestLoadDepartments_UnreadableSummary(t *testing.T) {
	log := diag.New(nil)
	wb := NewMemory().AddBrokenSheet("Summary", errors.New("bad zip entry"))

	d, err := LoadDepartments(wb, attendance.DefaultLayout(), log)
	require.NoError(t, err)
	assert.Zero(t, d.Len())
	assert.Equal(t, 1, log.Count(diag.CodeDataAccessError))
}

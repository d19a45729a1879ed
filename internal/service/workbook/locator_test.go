package workbook

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocator(t *testing.T) (attendance.SheetLocator, *diag.Log) {
	t.Helper()
	log := diag.New(nil)
	loc, err := NewLocator(attendance.DefaultLayout(), log)
	require.NoError(t, err)
	return loc, log
}

func sampleWorkbook() *Memory {
	return NewMemory().
		AddSheet("Summary", map[string]string{"B4": "Ana Ruiz", "C4": "Finance"}).
		AddSheet("Cover", map[string]string{"J3": "Not Counted"}).
		AddSheet("Exceptional", map[string]string{"J3": "Ana Ruiz", "Y3": " Luis Mora ", "AN3": "ana ruiz"}).
		AddSheet("Week 2", map[string]string{"J3": "Luis Mora", "Y3": "Ana Ruiz"})
}

func TestAttendanceSheets_StartAtExceptional(t *testing.T) {
	loc, _ := newTestLocator(t)

	sheets, err := loc.AttendanceSheets(sampleWorkbook())
	require.NoError(t, err)
	assert.Equal(t, []string{"Exceptional", "Week 2"}, sheets)
}

func TestAttendanceSheets_MissingExceptional(t *testing.T) {
	loc, _ := newTestLocator(t)
	wb := NewMemory().AddSheet("Summary", nil).AddSheet("Data", nil)

	_, err := loc.AttendanceSheets(wb)
	var cfgErr *attendance.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Exceptional", cfgErr.Sheet)
	assert.ErrorIs(t, err, attendance.ErrRequiredSheetMissing)
}

func TestLocate_ScansEveryAttendanceSheet(t *testing.T) {
	loc, _ := newTestLocator(t)

	got, err := loc.Locate(sampleWorkbook(), "Ana Ruiz", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Exceptional", got[0].Sheet.Name())
	assert.Equal(t, 0, got[0].Block.Index)
	assert.Equal(t, "Week 2", got[1].Sheet.Name())
	assert.Equal(t, 1, got[1].Block.Index)
}

func TestLocate_TrimsNameCell(t *testing.T) {
	loc, _ := newTestLocator(t)

	got, err := loc.Locate(sampleWorkbook(), "Luis Mora", nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLocate_NotFound(t *testing.T) {
	loc, _ := newTestLocator(t)

	got, err := loc.Locate(sampleWorkbook(), "Nobody", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocate_PinBypassesScan(t *testing.T) {
	loc, _ := newTestLocator(t)
	wb := sampleWorkbook().AddSheet("Special", map[string]string{"Y3": "someone else"})

	got, err := loc.Locate(wb, "Ana Ruiz", &schedule.Placement{Sheet: "Special", Block: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Special", got[0].Sheet.Name())
	assert.Equal(t, "Y", got[0].Block.Name)
}

func TestLocate_PinToMissingSheet(t *testing.T) {
	loc, log := newTestLocator(t)

	got, err := loc.Locate(sampleWorkbook(), "Ana Ruiz", &schedule.Placement{Sheet: "Nope", Block: 0})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, log.Count(diag.CodeDataAccessError))
}

func TestLocate_BrokenSheetIsSkippedAndReportedOnce(t *testing.T) {
	loc, log := newTestLocator(t)
	wb := sampleWorkbook().AddBrokenSheet("Week 3", errors.New("corrupt xml"))

	got, err := loc.Locate(wb, "Ana Ruiz", nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = loc.Locate(wb, "Luis Mora", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, log.Count(diag.CodeDataAccessError))
}

func TestEmployees_FirstAppearanceOrder(t *testing.T) {
	loc, _ := newTestLocator(t)

	got, err := loc.Employees(sampleWorkbook(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Ruiz", "Luis Mora", "ana ruiz"}, got)
}

func TestEmployees_IncludesPinnedBlocks(t *testing.T) {
	loc, _ := newTestLocator(t)
	wb := sampleWorkbook().AddSheet("Special", map[string]string{"J3": "Pedro Sanz"})

	got, err := loc.Employees(wb, []schedule.Placement{{Sheet: "Special", Block: 0}})
	require.NoError(t, err)
	assert.Contains(t, got, "Pedro Sanz")
}

func TestNewLocator_RejectsBadLayout(t *testing.T) {
	layout := attendance.DefaultLayout()
	layout.Blocks = nil

	_, err := NewLocator(layout, nil)
	assert.ErrorIs(t, err, attendance.ErrInvalidLayout)
}

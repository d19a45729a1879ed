package workbook

import (
	"testing"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		letters string
		want    int
	}{
		{"A", 0},
		{"J", 9},
		{"Z", 25},
		{"AA", 26},
		{"AN", 39},
		{"ao", 40},
	}
	for _, tt := range tests {
		t.Run(tt.letters, func(t *testing.T) {
			got, err := ColumnIndex(tt.letters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnIndex_Invalid(t *testing.T) {
	for _, letters := range []string{"", "A1", "ABCD", "?"} {
		_, err := ColumnIndex(letters)
		assert.ErrorIs(t, err, attendance.ErrInvalidColumn, letters)
	}
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "B12", CellName(1, 12))
	assert.Equal(t, "AN3", CellName(39, 3))
}

func TestValidateLayout(t *testing.T) {
	require.NoError(t, ValidateLayout(attendance.DefaultLayout()))

	bad := attendance.DefaultLayout()
	bad.Blocks = append([]attendance.ColumnBlock{}, bad.Blocks...)
	bad.Blocks[1].Exit = "X9"
	assert.ErrorIs(t, ValidateLayout(bad), attendance.ErrInvalidLayout)

	rows := attendance.DefaultLayout()
	rows.LastDayRow = 5
	assert.ErrorIs(t, ValidateLayout(rows), attendance.ErrInvalidLayout)
}

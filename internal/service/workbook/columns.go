package workbook

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

// ColumnIndex converts spreadsheet column letters to a 0-based index
// ("A" -> 0, "J" -> 9, "AN" -> 39).
func ColumnIndex(letters string) (int, error) {
	letters = strings.TrimSpace(letters)
	if !validator.IsValidColumn(letters) {
		return 0, fmt.Errorf("%w: %q", attendance.ErrInvalidColumn, letters)
	}
	n, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", attendance.ErrInvalidColumn, err)
	}
	return n - 1, nil
}

// CellName renders a 0-based column and 1-based row as "B12".
func CellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return fmt.Sprintf("C%dR%d", col+1, row)
	}
	return name
}

// blockColumns is a ColumnBlock with its letters resolved to indices.
type blockColumns struct {
	attendance.ColumnBlock
	name, day, entry, lunchOut, lunchReturn, exit, absence int
}

func resolveBlock(b attendance.ColumnBlock) (blockColumns, error) {
	out := blockColumns{ColumnBlock: b}
	targets := []struct {
		letters string
		dst     *int
	}{
		{b.Name, &out.name},
		{b.Day, &out.day},
		{b.Entry, &out.entry},
		{b.LunchOut, &out.lunchOut},
		{b.LunchReturn, &out.lunchReturn},
		{b.Exit, &out.exit},
		{b.Absence, &out.absence},
	}
	for _, t := range targets {
		idx, err := ColumnIndex(t.letters)
		if err != nil {
			return blockColumns{}, fmt.Errorf("block %d: %w", b.Index, err)
		}
		*t.dst = idx
	}
	return out, nil
}

// ValidateLayout checks every column reference and row window in a layout.
func ValidateLayout(layout attendance.Layout) error {
	if len(layout.Blocks) == 0 {
		return fmt.Errorf("%w: no column blocks", attendance.ErrInvalidLayout)
	}
	for _, b := range layout.Blocks {
		if _, err := resolveBlock(b); err != nil {
			return fmt.Errorf("%w: %w", attendance.ErrInvalidLayout, err)
		}
	}
	if layout.NameRow < 1 || layout.FirstDayRow < 1 || layout.LastDayRow < layout.FirstDayRow {
		return fmt.Errorf("%w: bad row window", attendance.ErrInvalidLayout)
	}
	for _, col := range []string{layout.SummaryNameCol, layout.SummaryDepartmentCol} {
		if _, err := ColumnIndex(col); err != nil {
			return fmt.Errorf("%w: summary: %w", attendance.ErrInvalidLayout, err)
		}
	}
	return nil
}

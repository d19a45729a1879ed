package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/diag"
)

// LocatorImpl belongs to a single run: it remembers which sheets already
// failed so each unreadable sheet is reported once.
type LocatorImpl struct {
	layout   attendance.Layout
	blocks   []blockColumns
	log      *diag.Log
	reported map[string]bool
}

// NewLocator validates the layout up front; a bad layout is a programming or
// deployment error, never a property of the uploaded document.
func NewLocator(layout attendance.Layout, log *diag.Log) (attendance.SheetLocator, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}
	blocks := make([]blockColumns, 0, len(layout.Blocks))
	for _, b := range layout.Blocks {
		resolved, _ := resolveBlock(b)
		blocks = append(blocks, resolved)
	}
	return &LocatorImpl{layout: layout, blocks: blocks, log: log, reported: make(map[string]bool)}, nil
}

// AttendanceSheets implements attendance.SheetLocator.
func (l *LocatorImpl) AttendanceSheets(wb attendance.Workbook) ([]string, error) {
	names := wb.SheetNames()
	for i, name := range names {
		if name == l.layout.AttendanceStartSheet {
			return names[i:], nil
		}
	}
	return nil, &attendance.ConfigurationError{Sheet: l.layout.AttendanceStartSheet}
}

// Locate implements attendance.SheetLocator.
func (l *LocatorImpl) Locate(wb attendance.Workbook, employeeID string, pin *schedule.Placement) ([]attendance.Location, error) {
	if pin != nil {
		loc, ok := l.pinned(wb, *pin, employeeID)
		if !ok {
			return nil, nil
		}
		return []attendance.Location{loc}, nil
	}

	sheets, err := l.AttendanceSheets(wb)
	if err != nil {
		return nil, err
	}

	target := strings.TrimSpace(employeeID)
	var out []attendance.Location
	for _, name := range sheets {
		sheet, ok := l.open(wb, name, employeeID)
		if !ok {
			continue
		}
		for _, b := range l.blocks {
			if l.nameAt(sheet, b) == target {
				out = append(out, attendance.Location{Sheet: sheet, Block: b.ColumnBlock})
			}
		}
	}
	return out, nil
}

// Employees implements attendance.SheetLocator.
func (l *LocatorImpl) Employees(wb attendance.Workbook, pins []schedule.Placement) ([]string, error) {
	sheets, err := l.AttendanceSheets(wb)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, name := range sheets {
		sheet, ok := l.open(wb, name, "")
		if !ok {
			continue
		}
		for _, b := range l.blocks {
			add(l.nameAt(sheet, b))
		}
	}
	for _, pin := range pins {
		sheet, ok := l.open(wb, pin.Sheet, "")
		if !ok || pin.Block < 0 || pin.Block >= len(l.blocks) {
			continue
		}
		add(l.nameAt(sheet, l.blocks[pin.Block]))
	}
	return out, nil
}

func (l *LocatorImpl) pinned(wb attendance.Workbook, pin schedule.Placement, employeeID string) (attendance.Location, bool) {
	if pin.Block < 0 || pin.Block >= len(l.blocks) {
		l.log.Warn(diag.Entry{
			Code:     diag.CodeDataAccessError,
			Sheet:    pin.Sheet,
			Employee: employeeID,
			Message:  fmt.Sprintf("pinned block %d does not exist", pin.Block),
		})
		return attendance.Location{}, false
	}
	sheet, ok := l.open(wb, pin.Sheet, employeeID)
	if !ok {
		return attendance.Location{}, false
	}
	return attendance.Location{Sheet: sheet, Block: l.blocks[pin.Block].ColumnBlock}, true
}

// open loads a sheet, downgrading failures to a diagnostic.
func (l *LocatorImpl) open(wb attendance.Workbook, name, employeeID string) (attendance.Sheet, bool) {
	sheet, err := wb.Sheet(name)
	if err != nil {
		if l.reported[name] {
			return nil, false
		}
		l.reported[name] = true
		var dae *attendance.DataAccessError
		if !errors.As(err, &dae) {
			err = &attendance.DataAccessError{Sheet: name, Err: err}
		}
		l.log.Error(diag.Entry{
			Code:     diag.CodeDataAccessError,
			Sheet:    name,
			Employee: employeeID,
			Message:  err.Error(),
		})
		return nil, false
	}
	return sheet, true
}

func (l *LocatorImpl) nameAt(sheet attendance.Sheet, b blockColumns) string {
	return strings.TrimSpace(sheet.Cell(l.layout.NameRow-1, b.name))
}

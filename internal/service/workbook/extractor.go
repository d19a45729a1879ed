package workbook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/diag"
	"github.com/xuri/excelize/v2"
)

var (
	dayDigitsRegex = regexp.MustCompile(`\d+`)
	weekdayRegex   = regexp.MustCompile(`\p{L}+`)
)

type ExtractorImpl struct {
	layout  attendance.Layout
	weekend map[string]bool
	log     *diag.Log
}

func NewExtractor(layout attendance.Layout, log *diag.Log) attendance.RecordExtractor {
	weekend := make(map[string]bool, len(layout.WeekendTokens))
	for _, tok := range layout.WeekendTokens {
		weekend[strings.ToLower(tok)] = true
	}
	return &ExtractorImpl{layout: layout, weekend: weekend, log: log}
}

// Extract implements attendance.RecordExtractor. Rows with an empty day label
// are skipped; a malformed row is reported and skipped without stopping the
// scan.
func (e *ExtractorImpl) Extract(sheet attendance.Sheet, block attendance.ColumnBlock) []attendance.DailyRecord {
	cols, err := resolveBlock(block)
	if err != nil {
		e.log.Error(diag.Entry{
			Code:    diag.CodeMalformedRow,
			Sheet:   sheet.Name(),
			Message: err.Error(),
		})
		return nil
	}

	var records []attendance.DailyRecord
	for row := e.layout.FirstDayRow; row <= e.layout.LastDayRow; row++ {
		if rec, ok := e.extractRow(sheet, cols, row); ok {
			records = append(records, rec)
		}
	}
	return records
}

func (e *ExtractorImpl) extractRow(sheet attendance.Sheet, cols blockColumns, row int) (rec attendance.DailyRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn(diag.Entry{
				Code:    diag.CodeMalformedRow,
				Sheet:   sheet.Name(),
				Cell:    CellName(cols.day, row),
				Message: fmt.Sprintf("row skipped: %v", r),
			})
			ok = false
		}
	}()

	idx := row - 1
	label := strings.TrimSpace(sheet.Cell(idx, cols.day))
	if label == "" {
		return attendance.DailyRecord{}, false
	}

	rec = attendance.DailyRecord{
		Sheet:     sheet.Name(),
		Block:     cols.Index,
		Row:       row,
		DayLabel:  label,
		DayNumber: row - e.layout.FirstDayRow + 1,
	}

	if e.isAbsenceText(label) {
		rec.IsAbsence = true
	} else {
		day, weekday, err := parseDayLabel(label)
		if err != nil {
			e.log.Warn(diag.Entry{
				Code:    diag.CodeMalformedRow,
				Sheet:   sheet.Name(),
				Cell:    CellName(cols.day, row),
				Message: err.Error(),
			})
			return attendance.DailyRecord{}, false
		}
		if day > 0 {
			rec.DayNumber = day
		}
		rec.Weekday = weekday
		rec.IsWeekend = e.weekend[weekday]
	}

	marker := strings.ToLower(sheet.Cell(idx, cols.absence))
	rec.AbsenceMarked = strings.Contains(marker, strings.ToLower(e.layout.AbsenceToken))

	rec.Entry = e.timeAt(sheet, cols.entry, row)
	rec.LunchOut = e.timeAt(sheet, cols.lunchOut, row)
	rec.LunchReturn = e.timeAt(sheet, cols.lunchReturn, row)
	rec.Exit = e.timeAt(sheet, cols.exit, row)
	return rec, true
}

// timeAt normalizes one punch cell; unparseable values become absent.
func (e *ExtractorImpl) timeAt(sheet attendance.Sheet, col, row int) *clock.Clock {
	raw := strings.TrimSpace(sheet.Cell(row-1, col))
	if raw == "" || e.isAbsenceText(raw) {
		return nil
	}
	c, err := clock.Parse(raw)
	if err != nil {
		perr := &attendance.ParseError{Sheet: sheet.Name(), Cell: CellName(col, row), Value: raw, Err: err}
		e.log.Warn(diag.Entry{
			Code:    diag.CodeParseError,
			Sheet:   perr.Sheet,
			Cell:    perr.Cell,
			Message: perr.Error(),
		})
		return nil
	}
	return &c
}

func (e *ExtractorImpl) isAbsenceText(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), e.layout.AbsenceToken)
}

// parseDayLabel reads "06 Sa", "Sa 06", an ISO date or a date serial. Numbers
// up to 31 are day numbers, not serials. A label without digits yields day 0
// and lets the caller fall back to the row.
func parseDayLabel(label string) (int, string, error) {
	if f, err := strconv.ParseFloat(label, 64); err == nil && f > 31 && f < 1e6 {
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return 0, "", fmt.Errorf("day label %q: %w", label, err)
		}
		return t.Day(), weekdayToken(t.Weekday()), nil
	}
	if fields := strings.Fields(label); len(fields) > 0 {
		if t, err := time.Parse("2006-01-02", fields[0]); err == nil {
			return t.Day(), weekdayToken(t.Weekday()), nil
		}
	}

	day := 0
	if digits := dayDigitsRegex.FindString(label); digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || n > 31 {
			return 0, "", fmt.Errorf("day label %q: day number out of range", label)
		}
		day = n
	}
	weekday := strings.ToLower(weekdayRegex.FindString(label))
	return day, weekday, nil
}

func weekdayToken(d time.Weekday) string {
	return strings.ToLower(d.String()[:3])
}

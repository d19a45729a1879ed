package workbook

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
)

// gridSheet is a fully materialized sheet.
type gridSheet struct {
	name string
	rows [][]string
}

func (s *gridSheet) Name() string { return s.name }

func (s *gridSheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	r := s.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Memory is an in-memory Workbook. Sheets are kept in insertion order.
type Memory struct {
	order  []string
	sheets map[string]*gridSheet
	broken map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		sheets: make(map[string]*gridSheet),
		broken: make(map[string]error),
	}
}

// AddSheet creates a sheet whose cells are given as {"B12": "08:15"}.
func (m *Memory) AddSheet(name string, cells map[string]string) *Memory {
	sheet := &gridSheet{name: name}
	for ref, value := range cells {
		col, row, err := splitCellName(ref)
		if err != nil {
			panic(err)
		}
		for len(sheet.rows) <= row {
			sheet.rows = append(sheet.rows, nil)
		}
		for len(sheet.rows[row]) <= col {
			sheet.rows[row] = append(sheet.rows[row], "")
		}
		sheet.rows[row][col] = value
	}
	if _, ok := m.sheets[name]; !ok {
		m.order = append(m.order, name)
	}
	m.sheets[name] = sheet
	return m
}

// AddBrokenSheet registers a sheet name whose contents fail to load.
func (m *Memory) AddBrokenSheet(name string, err error) *Memory {
	m.order = append(m.order, name)
	m.broken[name] = err
	return m
}

func (m *Memory) SheetNames() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Memory) Sheet(name string) (attendance.Sheet, error) {
	if err, ok := m.broken[name]; ok {
		return nil, &attendance.DataAccessError{Sheet: name, Err: err}
	}
	s, ok := m.sheets[name]
	if !ok {
		return nil, &attendance.DataAccessError{Sheet: name, Err: fmt.Errorf("sheet does not exist")}
	}
	return s, nil
}

func (m *Memory) Close() error { return nil }

// splitCellName turns "AN3" into (39, 2).
func splitCellName(ref string) (col, row int, err error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	i := strings.IndexAny(ref, "0123456789")
	if i <= 0 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	col, err = ColumnIndex(ref[:i])
	if err != nil {
		return 0, 0, err
	}
	var r int
	if _, err := fmt.Sscanf(ref[i:], "%d", &r); err != nil || r < 1 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	return col, r - 1, nil
}

package workbook

import (
	"fmt"
	"io"
	"sync"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// Excel is a Workbook backed by an xlsx document. Sheets are read lazily with
// raw cell values so time cells arrive as day fractions, not formatted text.
type Excel struct {
	file  *excelize.File
	mu    sync.Mutex
	cache map[string]*gridSheet
}

// Open reads an xlsx document. Each call yields an independent handle.
func Open(r io.Reader) (*Excel, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Excel{file: f, cache: make(map[string]*gridSheet)}, nil
}

func OpenFile(path string) (*Excel, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Excel{file: f, cache: make(map[string]*gridSheet)}, nil
}

func (e *Excel) SheetNames() []string {
	return e.file.GetSheetList()
}

func (e *Excel) Sheet(name string) (attendance.Sheet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, ok := e.cache[name]; ok {
		return s, nil
	}
	if idx, err := e.file.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, &attendance.DataAccessError{Sheet: name, Err: fmt.Errorf("sheet does not exist")}
	}
	rows, err := e.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &attendance.DataAccessError{Sheet: name, Err: err}
	}
	s := &gridSheet{name: name, rows: rows}
	e.cache[name] = s
	return s, nil
}

func (e *Excel) Close() error {
	return e.file.Close()
}

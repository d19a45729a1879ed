package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
)

// utf8BOM lets spreadsheet applications detect the encoding of accented
// headers.
const utf8BOM = "\ufeff"

type CSVExporter struct{}

func NewCSVExporter() report.Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }
func (e *CSVExporter) Extension() string   { return ".csv" }

// Export implements report.Exporter with one row per employee.
func (e *CSVExporter) Export(w io.Writer, rep report.Report) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(headers()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range rep.Employees {
		if err := writer.Write(employeeRow(s)); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", s.Employee, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ParseCSV reads a file produced by CSVExporter back into statistics. Only
// the counts, minute totals, hours and identity columns are recovered; week
// lists are not.
func ParseCSV(r io.Reader) ([]report.EmployeeStats, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", report.ErrInvalidExport)
		}
		return nil, fmt.Errorf("%w: %v", report.ErrInvalidExport, err)
	}

	byHeader := make(map[string]column, len(employeeColumns))
	for _, c := range employeeColumns {
		byHeader[c.header] = c
	}
	cols := make([]*column, len(header))
	for i, h := range header {
		if c, ok := byHeader[strings.TrimSpace(h)]; ok && c.parse != nil {
			cols[i] = &c
		}
	}

	var out []report.EmployeeStats
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", report.ErrInvalidExport, line, err)
		}
		var s report.EmployeeStats
		for i, value := range record {
			if i >= len(cols) || cols[i] == nil {
				continue
			}
			if err := cols[i].parse(&s, value); err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", report.ErrInvalidExport, line, cols[i].header, err)
			}
		}
		out = append(out, s)
	}
	return out, nil
}

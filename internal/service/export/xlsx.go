package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	employeesSheet   = "Empleados"
	departmentsSheet = "Departamentos"
	diagnosticsSheet = "Incidencias"
)

type XLSXExporter struct{}

func NewXLSXExporter() report.Exporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (e *XLSXExporter) Extension() string { return ".xlsx" }

// Export implements report.Exporter. The workbook carries the employee table,
// department totals and the run's diagnostics on separate sheets.
func (e *XLSXExporter) Export(w io.Writer, rep report.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), employeesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	rows := make([][]any, 0, len(rep.Employees))
	for _, s := range rep.Employees {
		rows = append(rows, employeeCells(s))
	}
	if err := writeTable(f, employeesSheet, headers(), rows, headerStyle); err != nil {
		return err
	}

	if _, err := f.NewSheet(departmentsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	deptRows := make([][]any, 0, len(rep.Departments))
	for _, d := range rep.Departments {
		deptRows = append(deptRows, []any{d.Department, d.Employees, d.RequiredHours, d.ActualHours})
	}
	if err := writeTable(f, departmentsSheet,
		[]string{"Departamento", "Empleados", "Horas requeridas", "Horas reales"}, deptRows, headerStyle); err != nil {
		return err
	}

	if len(rep.Diagnostics) > 0 {
		if _, err := f.NewSheet(diagnosticsSheet); err != nil {
			return fmt.Errorf("failed to create sheet: %w", err)
		}
		diagRows := make([][]any, 0, len(rep.Diagnostics))
		for _, d := range rep.Diagnostics {
			diagRows = append(diagRows, []any{string(d.Level), d.Code, d.Sheet, d.Cell, d.Employee, d.Message})
		}
		if err := writeTable(f, diagnosticsSheet,
			[]string{"Nivel", "Código", "Hoja", "Celda", "Empleado", "Mensaje"}, diagRows, headerStyle); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// employeeCells keeps numbers numeric so the sheet can be summed.
func employeeCells(s report.EmployeeStats) []any {
	text := employeeRow(s)
	out := make([]any, len(text))
	for i, c := range employeeColumns {
		out[i] = text[i]
		switch c.header {
		case "Horas requeridas":
			out[i] = s.RequiredHours
		case "Horas reales":
			out[i] = s.ActualHours
		}
	}
	return out
}

func writeTable(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header %q: %w", h, err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, columnWidth(h)); err != nil {
			return err
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func columnWidth(header string) float64 {
	w := float64(len([]rune(header))) + 4
	if w < 12 {
		return 12
	}
	if w > 40 {
		return 40
	}
	return w
}

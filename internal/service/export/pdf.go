package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

type PDFExporter struct{}

func NewPDFExporter() report.Exporter {
	return &PDFExporter{}
}

func (e *PDFExporter) ContentType() string { return "application/pdf" }
func (e *PDFExporter) Extension() string   { return ".pdf" }

// Export implements report.Exporter: a summary page header followed by one
// block per employee, breaking pages automatically.
func (e *PDFExporter) Export(w io.Writer, rep report.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Informe de asistencia"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Archivo: %s", rep.SourceName)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Generado: %s", rep.GeneratedAt)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Empleados: %d   Asistencia perfecta: %d   Ausencias: %d",
		rep.Totals.Employees, rep.Totals.PerfectAttendance, rep.Totals.Absences)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Horas requeridas: %s   Horas reales: %s",
		formatHours(rep.Totals.RequiredHours), formatHours(rep.Totals.ActualHours))))
	pdf.Ln(10)

	if len(rep.Departments) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr("Departamentos"))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "B", 9)
		for _, h := range []string{"Departamento", "Empleados", "Horas requeridas", "Horas reales"} {
			pdf.CellFormat(45, 7, tr(h), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		for _, d := range rep.Departments {
			name := d.Department
			if name == "" {
				name = "-"
			}
			pdf.CellFormat(45, 6, tr(name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%d", d.Employees), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, formatHours(d.RequiredHours), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, formatHours(d.ActualHours), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	for _, s := range rep.Employees {
		// Keep a block's title with at least a few of its lines.
		if _, pageHeight := pdf.GetPageSize(); pdf.GetY() > pageHeight-60 {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 236, 245)
		pdf.CellFormat(0, 8, tr(s.Employee), "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		row := employeeRow(s)
		for i, c := range employeeColumns {
			if i == 0 {
				continue
			}
			pdf.CellFormat(80, 5, tr(c.header), "", 0, "L", false, 0, "")
			pdf.MultiCell(0, 5, tr(row[i]), "", "L", false)
		}
		if s.WeeklyHours != nil {
			pdf.CellFormat(80, 5, tr("Horas por semana"), "", 0, "L", false, 0, "")
			pdf.MultiCell(0, 5, fmt.Sprintf("%s | %s | %s | %s",
				formatHours(s.WeeklyHours[0]), formatHours(s.WeeklyHours[1]),
				formatHours(s.WeeklyHours[2]), formatHours(s.WeeklyHours[3])), "", "L", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-insights/internal/service/export"
	"github.com/cmlabs-hris/attendance-insights/internal/service/workbook"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type ProcessCmd struct {
	File     string   `arg:"" type:"existingfile" help:"Attendance workbook (.xlsx)."`
	Employee string   `help:"Process a single employee."`
	JSON     bool     `help:"Print the raw report as JSON."`
	Export   []string `help:"Export formats to write (csv, xlsx, pdf)." sep:","`
	OutDir   string   `help:"Directory for exports. Defaults to STORAGE_EXPORT_DIR." type:"path"`
}

func (c *ProcessCmd) Run(ctx *Context) error {
	wb, err := workbook.OpenFile(c.File)
	if err != nil {
		return err
	}
	defer wb.Close()

	background := context.Background()
	source := filepath.Base(c.File)

	if c.Employee != "" {
		return c.runEmployee(background, ctx, wb)
	}

	rep, err := ctx.Reports.Generate(background, wb, source)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		printReport(ctx, rep)
	}

	if len(c.Export) == 0 {
		return nil
	}
	return c.writeExports(background, ctx, rep, source)
}

func (c *ProcessCmd) runEmployee(background context.Context, ctx *Context, wb *workbook.Excel) error {
	stats, timeline, err := ctx.Reports.GenerateEmployee(background, wb, c.Employee)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(ctx.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"stats":    stats,
		"timeline": timeline,
	})
}

func (c *ProcessCmd) writeExports(background context.Context, ctx *Context, rep report.Report, source string) error {
	dir := c.OutDir
	if dir == "" {
		dir = ctx.ExportDir
	}
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(source, filepath.Ext(source))
	for _, format := range c.Export {
		exporter, err := export.ForFormat(format)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := exporter.Export(&buf, rep); err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		path, err := store.Upload(background, &buf, base+exporter.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Out, mutedStyle.Render("wrote "+filepath.Join(dir, path)))
	}
	return nil
}

func printReport(ctx *Context, rep report.Report) {
	fmt.Fprintln(ctx.Out, titleStyle.Render(fmt.Sprintf("%s: %d employees", rep.SourceName, rep.Totals.Employees)))

	rows := make([][]string, 0, len(rep.Employees))
	for _, s := range rep.Employees {
		rows = append(rows, []string{
			s.Employee,
			s.Department,
			string(s.Category),
			strconv.Itoa(s.LateArrivals.Count),
			strconv.Itoa(s.LateAfterThreshold.Count),
			strconv.Itoa(s.EarlyDepartures.Count),
			strconv.Itoa(s.Absences.Count),
			strconv.Itoa(s.MidDayDepartures.Count),
			strconv.FormatFloat(s.RequiredHours, 'f', 2, 64),
			strconv.FormatFloat(s.ActualHours, 'f', 2, 64),
			perfectMark(s.PerfectAttendance),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Employee", "Department", "Category", "Late", "After 08:10", "Early", "Absences", "Mid-day", "Required", "Actual", "Perfect").
		Rows(rows...)
	fmt.Fprintln(ctx.Out, t.Render())

	if n := len(rep.Diagnostics); n > 0 {
		fmt.Fprintln(ctx.Out, warnStyle.Render(fmt.Sprintf("%d diagnostics", n)))
		for _, d := range rep.Diagnostics {
			where := strings.Trim(d.Sheet+"!"+d.Cell, "!")
			fmt.Fprintln(ctx.Out, mutedStyle.Render(fmt.Sprintf("  [%s] %s %s %s", d.Level, d.Code, where, d.Message)))
		}
	}
}

func perfectMark(ok bool) string {
	if ok {
		return "yes"
	}
	return ""
}

package workbook

import (
	"slices"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/diag"
)

// Departments maps employee identifiers to departments as listed on the
// administrative summary sheet.
type Departments struct {
	byName map[string]string
	log    *diag.Log
}

// LoadDepartments reads the summary sheet's row window once per run. A
// missing summary sheet is a *attendance.ConfigurationError; an unreadable
// one yields an empty index and a diagnostic.
func LoadDepartments(wb attendance.Workbook, layout attendance.Layout, log *diag.Log) (*Departments, error) {
	if !slices.Contains(wb.SheetNames(), layout.SummarySheet) {
		return nil, &attendance.ConfigurationError{Sheet: layout.SummarySheet}
	}

	d := &Departments{byName: make(map[string]string), log: log}

	nameCol, err := ColumnIndex(layout.SummaryNameCol)
	if err != nil {
		return nil, err
	}
	deptCol, err := ColumnIndex(layout.SummaryDepartmentCol)
	if err != nil {
		return nil, err
	}

	sheet, err := wb.Sheet(layout.SummarySheet)
	if err != nil {
		log.Error(diag.Entry{
			Code:    diag.CodeDataAccessError,
			Sheet:   layout.SummarySheet,
			Message: err.Error(),
		})
		return d, nil
	}

	for row := layout.SummaryFirstRow; row <= layout.SummaryLastRow; row++ {
		name := strings.TrimSpace(sheet.Cell(row-1, nameCol))
		if name == "" {
			continue
		}
		if _, dup := d.byName[name]; dup {
			continue
		}
		d.byName[name] = strings.TrimSpace(sheet.Cell(row-1, deptCol))
	}
	return d, nil
}

// Lookup returns the employee's department, or "" with a diagnostic when the
// summary sheet does not list them.
func (d *Departments) Lookup(employeeID string) string {
	if d == nil {
		return ""
	}
	if dept, ok := d.byName[strings.TrimSpace(employeeID)]; ok {
		return dept
	}
	d.log.Info(diag.Entry{
		Code:     diag.CodeDepartmentNotFound,
		Employee: employeeID,
		Message:  "employee not listed on the summary sheet",
	})
	return ""
}

// Len reports how many employees the summary sheet lists.
func (d *Departments) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byName)
}

package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
)

// column is one field of the flat employee table. parse is nil for derived
// columns that are not read back.
type column struct {
	header string
	format func(s report.EmployeeStats) string
	parse  func(s *report.EmployeeStats, v string) error
}

func textColumn(header string, field func(*report.EmployeeStats) *string) column {
	return column{
		header: header,
		format: func(s report.EmployeeStats) string { return *field(&s) },
		parse: func(s *report.EmployeeStats, v string) error {
			*field(s) = v
			return nil
		},
	}
}

func intColumn(header string, field func(*report.EmployeeStats) *int) column {
	return column{
		header: header,
		format: func(s report.EmployeeStats) string { return strconv.Itoa(*field(&s)) },
		parse: func(s *report.EmployeeStats, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			*field(s) = n
			return nil
		},
	}
}

func hoursColumn(header string, field func(*report.EmployeeStats) *float64) column {
	return column{
		header: header,
		format: func(s report.EmployeeStats) string { return formatHours(*field(&s)) },
		parse: func(s *report.EmployeeStats, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return err
			}
			*field(s) = f
			return nil
		},
	}
}

// employeeColumns is the column order shared by every tabular export.
var employeeColumns = []column{
	textColumn("Empleado", func(s *report.EmployeeStats) *string { return &s.Employee }),
	textColumn("Departamento", func(s *report.EmployeeStats) *string { return &s.Department }),
	{
		header: "Categoría",
		format: func(s report.EmployeeStats) string { return string(s.Category) },
		parse: func(s *report.EmployeeStats, v string) error {
			s.Category = schedule.Category(v)
			return nil
		},
	},
	intColumn("Llegadas tarde", func(s *report.EmployeeStats) *int { return &s.LateArrivals.Count }),
	intColumn("Minutos tarde", func(s *report.EmployeeStats) *int { return &s.LateArrivals.Minutes }),
	intColumn("Llegadas después 08:10", func(s *report.EmployeeStats) *int { return &s.LateAfterThreshold.Count }),
	intColumn("Minutos después 08:10", func(s *report.EmployeeStats) *int { return &s.LateAfterThreshold.Minutes }),
	intColumn("Salidas anticipadas", func(s *report.EmployeeStats) *int { return &s.EarlyDepartures.Count }),
	intColumn("Minutos salida anticipada", func(s *report.EmployeeStats) *int { return &s.EarlyDepartures.Minutes }),
	intColumn("Exceso almuerzo", func(s *report.EmployeeStats) *int { return &s.LunchOvertime.Count }),
	intColumn("Minutos exceso almuerzo", func(s *report.EmployeeStats) *int { return &s.LunchOvertime.Minutes }),
	intColumn("Sin entrada", func(s *report.EmployeeStats) *int { return &s.MissingEntries.Count }),
	intColumn("Sin salida", func(s *report.EmployeeStats) *int { return &s.MissingExits.Count }),
	intColumn("Sin almuerzo", func(s *report.EmployeeStats) *int { return &s.MissingLunches.Count }),
	intColumn("Salidas a mitad de jornada", func(s *report.EmployeeStats) *int { return &s.MidDayDepartures.Count }),
	{
		header: "Días salidas a mitad de jornada",
		format: func(s report.EmployeeStats) string { return FormatMidDayDepartures(s.MidDayDepartures.Weeks) },
	},
	intColumn("Horas extra (días)", func(s *report.EmployeeStats) *int { return &s.Overtime.Count }),
	intColumn("Horas extra (min)", func(s *report.EmployeeStats) *int { return &s.Overtime.Minutes }),
	intColumn("Ausencias", func(s *report.EmployeeStats) *int { return &s.Absences.Count }),
	hoursColumn("Horas requeridas", func(s *report.EmployeeStats) *float64 { return &s.RequiredHours }),
	hoursColumn("Horas reales", func(s *report.EmployeeStats) *float64 { return &s.ActualHours }),
	{
		header: "Asistencia perfecta",
		format: func(s report.EmployeeStats) string { return yesNo(s.PerfectAttendance) },
		parse: func(s *report.EmployeeStats, v string) error {
			switch strings.TrimSpace(v) {
			case "Sí":
				s.PerfectAttendance = true
			case "No":
				s.PerfectAttendance = false
			default:
				return fmt.Errorf("unexpected value %q", v)
			}
			return nil
		},
	},
}

func headers() []string {
	out := make([]string, len(employeeColumns))
	for i, c := range employeeColumns {
		out[i] = c.header
	}
	return out
}

func employeeRow(s report.EmployeeStats) []string {
	out := make([]string, len(employeeColumns))
	for i, c := range employeeColumns {
		out[i] = c.format(s)
	}
	return out
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

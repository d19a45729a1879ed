package export

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
)

// FormatMidDayDepartures renders week buckets as
// "Semana 1: 03, 05; Semana 4: 22". Empty weeks are left out.
func FormatMidDayDepartures(weeks report.WeekDays) string {
	var parts []string
	for i, days := range weeks {
		if len(days) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("Semana %d: %s", i+1, strings.Join(days, ", ")))
	}
	return strings.Join(parts, "; ")
}

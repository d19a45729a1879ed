package export

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
)

// Formats lists every supported export format.
var Formats = []string{"csv", "xlsx", "pdf"}

// ForFormat returns the exporter for a format name such as "xlsx".
func ForFormat(format string) (report.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return NewCSVExporter(), nil
	case "xlsx":
		return NewXLSXExporter(), nil
	case "pdf":
		return NewPDFExporter(), nil
	}
	return nil, fmt.Errorf("%w: %q", report.ErrUnsupportedFormat, format)
}

package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// The document lacks a required sheet: the one failure users see verbatim.
	var cfgErr *attendance.ConfigurationError
	if errors.As(err, &cfgErr) {
		UnprocessableEntity(w, "MISSING_SHEET", cfgErr.Error())
		return
	}

	switch {
	// Report domain errors
	case errors.Is(err, report.ErrUnreadableWorkbook):
		BadRequest(w, "The uploaded file is not a readable workbook", nil)
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found in workbook")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

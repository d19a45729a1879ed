package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrRequiredSheetMissing = errors.New("required sheet missing")
	ErrSheetUnreadable      = errors.New("sheet cannot be read")
	ErrUnparseableValue     = errors.New("cell value cannot be parsed")
	ErrInvalidColumn        = errors.New("invalid column letters")
	ErrInvalidLayout        = errors.New("invalid workbook layout")
	ErrEmployeeNotFound     = errors.New("employee not found in workbook")
)

// ConfigurationError means the document lacks the minimum structure. It is
// the only error that aborts a run.
type ConfigurationError struct {
	Sheet string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("the uploaded document has no %q sheet", e.Sheet)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrRequiredSheetMissing
}

// DataAccessError means one sheet could not be read; that sheet contributes
// nothing and the run continues.
type DataAccessError struct {
	Sheet string
	Err   error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("sheet %q cannot be read: %v", e.Sheet, e.Err)
}

func (e *DataAccessError) Unwrap() []error {
	return []error{ErrSheetUnreadable, e.Err}
}

// ParseError means a single cell value was unusable; it is treated as absent.
type ParseError struct {
	Sheet string
	Cell  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s!%s: cannot parse %q: %v", e.Sheet, e.Cell, e.Value, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrUnparseableValue, e.Err}
}

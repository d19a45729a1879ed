package report

import "errors"

var (
	ErrUnreadableWorkbook = errors.New("the uploaded file is not a readable workbook")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrInvalidExport      = errors.New("export file is malformed")
)

package validator

import (
	"path/filepath"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// HasExtension reports whether filename ends in one of exts (case-insensitive,
// exts given with the leading dot).
func HasExtension(filename string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	return IsInSlice(ext, exts)
}

// Column letters as used in spreadsheet addresses: A..XFD.
var columnRegex = regexp.MustCompile(`^[A-Za-z]{1,3}$`)

func IsValidColumn(letters string) bool {
	return columnRegex.MatchString(letters)
}

// Formats accepted by the export endpoints and CLI.
var exportFormatRegex = regexp.MustCompile(`^(csv|xlsx|pdf)$`)

func IsValidExportFormat(format string) bool {
	return exportFormatRegex.MatchString(strings.ToLower(format))
}

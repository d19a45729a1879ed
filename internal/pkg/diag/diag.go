// Package diag collects per-run processing diagnostics. Entries are returned
// to the caller alongside the results and mirrored to a slog.Logger.
package diag

import (
	"context"
	"log/slog"
	"sync"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Diagnostic codes.
const (
	CodeParseError         = "parse_error"
	CodeDataAccessError    = "data_access_error"
	CodeMalformedRow       = "malformed_row"
	CodeDepartmentNotFound = "department_not_found"
	CodeEmployeeNotFound   = "employee_not_found"
)

type Entry struct {
	Level    Level  `json:"level"`
	Code     string `json:"code"`
	Sheet    string `json:"sheet,omitempty"`
	Cell     string `json:"cell,omitempty"`
	Employee string `json:"employee,omitempty"`
	Message  string `json:"message"`
}

// Log is safe to use as a nil pointer; a nil Log drops everything.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Info(e Entry)  { l.add(LevelInfo, e) }
func (l *Log) Warn(e Entry)  { l.add(LevelWarn, e) }
func (l *Log) Error(e Entry) { l.add(LevelError, e) }

func (l *Log) add(level Level, e Entry) {
	if l == nil {
		return
	}
	e.Level = level

	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	if l.logger == nil {
		return
	}
	attrs := []slog.Attr{slog.String("code", e.Code)}
	if e.Sheet != "" {
		attrs = append(attrs, slog.String("sheet", e.Sheet))
	}
	if e.Cell != "" {
		attrs = append(attrs, slog.String("cell", e.Cell))
	}
	if e.Employee != "" {
		attrs = append(attrs, slog.String("employee", e.Employee))
	}
	l.logger.LogAttrs(context.Background(), slogLevel(level), e.Message, attrs...)
}

// Entries returns a copy of everything recorded so far.
func (l *Log) Entries() []Entry {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns how many entries carry the given code.
func (l *Log) Count(code string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Code == code {
			n++
		}
	}
	return n
}

func slogLevel(level Level) slog.Level {
	switch level {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

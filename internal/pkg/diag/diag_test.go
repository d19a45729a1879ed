package diag

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_RecordsAndMirrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	log := New(logger)

	log.Warn(Entry{Code: CodeParseError, Sheet: "Att.1", Cell: "B12", Message: "cannot parse time"})
	log.Error(Entry{Code: CodeDataAccessError, Sheet: "Att.2", Message: "sheet unreadable"})

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, LevelWarn, entries[0].Level)
	assert.Equal(t, LevelError, entries[1].Level)
	assert.Equal(t, 1, log.Count(CodeParseError))

	assert.Contains(t, buf.String(), `"cell":"B12"`)
	assert.Contains(t, buf.String(), `"code":"data_access_error"`)
}

func TestLog_NilIsSilent(t *testing.T) {
	var log *Log
	log.Warn(Entry{Code: CodeParseError})
	assert.Empty(t, log.Entries())
	assert.Zero(t, log.Count(CodeParseError))
}

package attendance

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	var err error = &ConfigurationError{Sheet: "Exceptional"}
	assert.ErrorIs(t, err, ErrRequiredSheetMissing)
	assert.Equal(t, `the uploaded document has no "Exceptional" sheet`, err.Error())

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestDataAccessError_UnwrapsBoth(t *testing.T) {
	err := &DataAccessError{Sheet: "Att.3", Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, err, ErrSheetUnreadable)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseError(t *testing.T) {
	err := &ParseError{Sheet: "Att.1", Cell: "B12", Value: "8h15", Err: io.EOF}
	assert.ErrorIs(t, err, ErrUnparseableValue)
	assert.Contains(t, err.Error(), "Att.1!B12")
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()
	assert.Len(t, layout.Blocks, 3)
	assert.Equal(t, 31, layout.LastDayRow-layout.FirstDayRow+1)
	for i, b := range layout.Blocks {
		assert.Equal(t, i, b.Index)
	}
}

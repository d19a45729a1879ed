package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Clock
	}{
		{"08:15", New(8, 15)},
		{"8:15", New(8, 15)},
		{" 07:50:59 ", New(7, 50)},
		{"5:10 PM", New(17, 10)},
		{"8:05 a. m.", New(8, 5)},
		{"12:30 p.m.", New(12, 30)},
		{"2024-03-04 11:47:00", New(11, 47)},
		{"2024-03-04T06:00:00", New(6, 0)},
		{"04/03/2024 17:10", New(17, 10)},
		{"0.34375", New(8, 15)},
		{"45355.5", New(12, 0)},
		{"0", New(0, 0)},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)

	for _, input := range []string{"absence", "25:00", "45355", "-0.2", "1.0000001e9x"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidTime, input)
	}
}

func TestClock_Arithmetic(t *testing.T) {
	entry := MustParse("08:15")
	assert.Equal(t, 25, entry.Sub(MustParse("07:50")))
	assert.Equal(t, "08:15", entry.String())
	assert.Equal(t, 8, entry.Hour())
	assert.Equal(t, 15, entry.Minute())
}

func TestClock_TextRoundTrip(t *testing.T) {
	var c Clock
	require.NoError(t, c.UnmarshalText([]byte("17:10")))
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "17:10", string(text))
	assert.Error(t, c.UnmarshalText([]byte("late")))
}

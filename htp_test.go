// ABOUTME: Tests for the public parse API and its error wrapping
// ABOUTME: Covers end-to-end phrases and errors.As/errors.Is reachability

package htp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/htp/clue"
	"github.com/harper/htp/interpreter"
	"github.com/harper/htp/parser"
)

var christmasEve = time.Date(2020, 12, 24, 23, 45, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"last friday at 19:43", time.Date(2020, 12, 18, 19, 43, 0, 0, time.UTC)},
		{"next friday at 19:43", time.Date(2020, 12, 25, 19, 43, 0, 0, time.UTC)},
		{"friday", time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"yesterday at 7pm", time.Date(2020, 12, 23, 19, 0, 0, 0, time.UTC)},
		{"2 min ago", christmasEve.Add(-2 * time.Minute)},
		{"in 3 hours", christmasEve.Add(3 * time.Hour)},
		{"9:30", time.Date(2020, 12, 24, 9, 30, 0, 0, time.UTC)},
		{"now", christmasEve},
		{"2020-12-25T19:43:42", time.Date(2020, 12, 25, 19, 43, 42, 0, time.UTC)},
		{"25/12/2020", time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input, christmasEve)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "Parse(%q) = %v, want %v", tc.input, got, tc.want)
		})
	}
}

func TestParse_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2020, 12, 24, 10, 0, 0, 0, loc)

	got, err := Parse("today at 8", now)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.True(t, time.Date(2020, 12, 24, 8, 0, 0, 0, loc).Equal(got))
}

func TestParseWithConfig_RollForward(t *testing.T) {
	got, err := ParseWithConfig("9:30", Config{Now: christmasEve, RollForward: true})
	require.NoError(t, err)
	assert.True(t, time.Date(2020, 12, 25, 9, 30, 0, 0, time.UTC).Equal(got))

	got, err = ParseWithConfig("23:50", Config{Now: christmasEve, RollForward: true})
	require.NoError(t, err)
	assert.True(t, time.Date(2020, 12, 24, 23, 50, 0, 0, time.UTC).Equal(got))
}

func TestParse_ParseErrors(t *testing.T) {
	_, err := Parse("9 xm", christmasEve)
	require.Error(t, err)

	var htpErr *Error
	require.True(t, errors.As(err, &htpErr))
	assert.Equal(t, "9 xm", htpErr.Input)

	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "xm", pe.Token)
	assert.ErrorIs(t, err, parser.ErrUnknownAmPm)

	_, err = Parse("whenever", christmasEve)
	assert.ErrorIs(t, err, parser.ErrNoMatch)
}

func TestParse_EvaluationErrors(t *testing.T) {
	_, err := Parse("25:00", christmasEve)
	var te *interpreter.TimeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, uint(25), te.Hour)
	assert.ErrorIs(t, err, interpreter.ErrInvalidTime)

	_, err = Parse("friday at 12pm", christmasEve)
	assert.ErrorIs(t, err, interpreter.ErrInvalidTimeAmPm)

	_, err = Parse("30/02/2020", christmasEve)
	var ie *interpreter.IsoDateError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, uint(30), ie.Day)
	assert.ErrorIs(t, err, interpreter.ErrInvalidIsoDate)

	var htpErr *Error
	require.True(t, errors.As(err, &htpErr))
	assert.Equal(t, "30/02/2020", htpErr.Input)
}

func TestParse_LargeOffsets(t *testing.T) {
	ref := time.Date(2020, 7, 12, 12, 45, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"4000 months ago", time.Date(1691, 12, 24, 12, 45, 0, 0, time.UTC)},
		{"20000 weeks ago", ref.AddDate(0, 0, -140000)},
		{"in 4000 months", ref.AddDate(0, 0, 120000)},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input, ref)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "Parse(%q) = %v, want %v", tc.input, got, tc.want)
		})
	}

	_, err := Parse("in 18446744073709551615 weeks", ref)
	assert.ErrorIs(t, err, interpreter.ErrOffsetOverflow)
	var oe *interpreter.OffsetError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, clue.Weeks, oe.Unit)

	_, err = Parse("18446744073709551616 weeks ago", ref)
	assert.ErrorIs(t, err, parser.ErrInvalidInteger)
}

func TestError_Message(t *testing.T) {
	_, err := Parse("whenever", christmasEve)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `htp: "whenever": `)
}

func TestParseTimeClue(t *testing.T) {
	c, err := ParseTimeClue("last friday at 9")
	require.NoError(t, err)
	assert.Equal(t, clue.RelativeDayAt{
		Modifier: clue.Last,
		Weekday:  clue.Friday,
		At:       &clue.HMS{Hour: 9},
	}, c)
	assert.Equal(t, "relative_day_at", clue.Kind(c))
}

func TestEvaluate(t *testing.T) {
	c, err := ParseTimeClue("in 2 days")
	require.NoError(t, err)

	got, err := Evaluate(c, Config{Now: christmasEve})
	require.NoError(t, err)
	assert.True(t, christmasEve.Add(48*time.Hour).Equal(got))

	_, err = Evaluate(clue.Time{Clock: clue.HMS{Hour: 30}}, Config{Now: christmasEve})
	var htpErr *Error
	require.True(t, errors.As(err, &htpErr))
	assert.Equal(t, "Time(30:00:00)", htpErr.Input)
}

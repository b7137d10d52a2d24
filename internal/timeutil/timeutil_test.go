// ABOUTME: Tests for reference time resolution
// ABOUTME: Uses a fake clock so results do not depend on the wall clock

package timeutil

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var sunday = time.Date(2020, 7, 12, 12, 45, 0, 0, time.UTC)

func TestReference_Empty(t *testing.T) {
	clock := clockwork.NewFakeClockAt(sunday)
	loc := time.FixedZone("UTC+2", 2*60*60)

	got, err := Reference(clock, loc, "")
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}
	if !got.Equal(sunday) {
		t.Errorf("Reference() = %v, want %v", got, sunday)
	}
	if got.Location() != loc {
		t.Errorf("Reference() location = %v, want %v", got.Location(), loc)
	}
}

func TestReference_RFC3339(t *testing.T) {
	clock := clockwork.NewFakeClockAt(sunday)

	got, err := Reference(clock, time.UTC, "2020-12-24T23:45:00+01:00")
	if err != nil {
		t.Fatalf("Reference() error = %v", err)
	}
	want := time.Date(2020, 12, 24, 22, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Reference() = %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != 3600 {
		t.Errorf("Reference() offset = %d, want 3600", offset)
	}
}

func TestReference_Layouts(t *testing.T) {
	clock := clockwork.NewFakeClockAt(sunday)

	tests := []struct {
		value string
		want  time.Time
	}{
		{"2020-12-24 23:45", time.Date(2020, 12, 24, 23, 45, 0, 0, time.UTC)},
		{"2020-12-24", time.Date(2020, 12, 24, 0, 0, 0, 0, time.UTC)},
		{"08:30", time.Date(2020, 7, 12, 8, 30, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		got, err := Reference(clock, time.UTC, tc.value)
		if err != nil {
			t.Fatalf("Reference(%q) error = %v", tc.value, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("Reference(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestReference_Invalid(t *testing.T) {
	clock := clockwork.NewFakeClockAt(sunday)
	if _, err := Reference(clock, time.UTC, "not a time"); err == nil {
		t.Error("expected error for unparseable reference time")
	}
}

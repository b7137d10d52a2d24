// ABOUTME: Week boundary and day shifting helpers for timestamps
// ABOUTME: Weeks start on Monday, matching the weekday index used by time clues

package instant

import (
	"time"

	"github.com/jinzhu/now"
)

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return now.With(t).Monday()
}

// ShiftDays moves ts by n calendar days, keeping hour, minute and second.
// The shift is taken from noon so a 23 or 25 hour DST day cannot change the date.
// A kept wall time the target day skips is normalized as WithClock does.
func ShiftDays(ts Timestamp, n int) Timestamp {
	t := ts.Time()
	noon := ts.WithClock(12, 0, 0).Add(time.Duration(n) * 24 * time.Hour)
	return noon.WithClock(t.Hour(), t.Minute(), t.Second())
}

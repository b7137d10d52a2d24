// ABOUTME: Timestamp capability set required by the interpreter
// ABOUTME: Instant implements it on top of time.Time, keeping the caller's location

package instant

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when calendar fields do not form a real date-time.
var ErrInvalidDate = errors.New("invalid calendar date")

// Timestamp is the set of calendar operations the interpreter relies on.
// Any date-time backend providing these can be evaluated against.
type Timestamp interface {
	Weekday() time.Weekday
	Add(d time.Duration) Timestamp
	// WithClock keeps the date and replaces the time of day. A wall time the
	// zone skips is normalized; use At to reject it instead.
	WithClock(hour, minute, second int) Timestamp
	// WithDate keeps the time of day and replaces the date.
	WithDate(year, month, day int) Timestamp
	Before(other Timestamp) bool
	Equal(other Timestamp) bool
	// At builds a timestamp in the same zone, rejecting impossible fields.
	At(year, month, day, hour, minute, second int) (Timestamp, error)
	Time() time.Time
}

// Instant is a Timestamp backed by time.Time.
type Instant struct {
	t time.Time
}

var _ Timestamp = Instant{}

// New wraps t.
func New(t time.Time) Instant {
	return Instant{t: t}
}

// Date builds an Instant from explicit fields in loc.
// It fails with ErrInvalidDate instead of normalizing out-of-range values.
func Date(year, month, day, hour, minute, second int, loc *time.Location) (Instant, error) {
	if loc == nil {
		loc = time.UTC
	}
	if month < 1 || month > 12 || day < 1 || day > 31 ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Instant{}, invalid(year, month, day, hour, minute, second)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	// time.Date normalizes 30 February to 1 March and skips DST gaps; both must fail.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return Instant{}, invalid(year, month, day, hour, minute, second)
	}
	return Instant{t: t}, nil
}

func invalid(year, month, day, hour, minute, second int) error {
	return fmt.Errorf("%w: %04d-%02d-%02dT%02d:%02d:%02d", ErrInvalidDate, year, month, day, hour, minute, second)
}

func (i Instant) Weekday() time.Weekday {
	return i.t.Weekday()
}

func (i Instant) Add(d time.Duration) Timestamp {
	return Instant{t: i.t.Add(d)}
}

func (i Instant) WithClock(hour, minute, second int) Timestamp {
	return Instant{t: time.Date(i.t.Year(), i.t.Month(), i.t.Day(), hour, minute, second, 0, i.t.Location())}
}

func (i Instant) WithDate(year, month, day int) Timestamp {
	return Instant{t: time.Date(year, time.Month(month), day, i.t.Hour(), i.t.Minute(), i.t.Second(), i.t.Nanosecond(), i.t.Location())}
}

func (i Instant) Before(other Timestamp) bool {
	return i.t.Before(other.Time())
}

func (i Instant) Equal(other Timestamp) bool {
	return i.t.Equal(other.Time())
}

func (i Instant) At(year, month, day, hour, minute, second int) (Timestamp, error) {
	return Date(year, month, day, hour, minute, second, i.t.Location())
}

func (i Instant) Time() time.Time {
	return i.t
}

func (i Instant) String() string {
	return i.t.Format(time.RFC3339)
}

// ABOUTME: Evaluation errors for bad clock fields, impossible dates and oversized offsets
// ABOUTME: Each error keeps the raw fields from the clue for precise reporting

package interpreter

import (
	"errors"
	"fmt"

	"github.com/harper/htp/clue"
)

var (
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidTimeAmPm = errors.New("invalid time with am/pm")
	ErrInvalidIsoDate  = errors.New("invalid ISO date")
	ErrUnsupportedClue = errors.New("unsupported time clue")
	ErrOffsetOverflow  = errors.New("offset out of range")
	ErrSkippedTime     = errors.New("time skipped in zone")
)

// TimeError reports an hour, minute or second out of range.
// Fields are as supplied, before any PM offset.
type TimeError struct {
	Hour   uint
	Minute uint
	Second uint
	AmPm   clue.AmPm
}

func (e *TimeError) Error() string {
	if e.AmPm != clue.NoAmPm {
		return fmt.Sprintf("invalid time: %d:%d:%d %s", e.Hour, e.Minute, e.Second, e.AmPm)
	}
	return fmt.Sprintf("invalid time: %d:%d:%d", e.Hour, e.Minute, e.Second)
}

func (e *TimeError) Is(target error) bool {
	if e.AmPm != clue.NoAmPm {
		return target == ErrInvalidTimeAmPm
	}
	return target == ErrInvalidTime
}

// IsoDateError reports calendar fields that do not form a real date-time.
type IsoDateError struct {
	Year   int
	Month  uint
	Day    uint
	Hour   uint
	Minute uint
	Second uint
	Err    error
}

func (e *IsoDateError) Error() string {
	return fmt.Sprintf("invalid ISO date: %d-%d-%dT%d:%d:%d", e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Second)
}

func (e *IsoDateError) Is(target error) bool {
	return target == ErrInvalidIsoDate
}

func (e *IsoDateError) Unwrap() error {
	return e.Err
}

// LocalTimeError reports a time of day that does not exist on a date in the
// reference zone, usually because a DST transition skips it.
type LocalTimeError struct {
	Year   int
	Month  uint
	Day    uint
	Hour   uint
	Minute uint
	Second uint
	Zone   string
	Err    error
}

func (e *LocalTimeError) Error() string {
	return fmt.Sprintf("time skipped in zone %s: %d-%d-%dT%d:%d:%d", e.Zone, e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Second)
}

func (e *LocalTimeError) Is(target error) bool {
	return target == ErrSkippedTime
}

func (e *LocalTimeError) Unwrap() error {
	return e.Err
}

// OffsetError reports a relative offset too large to apply to a date.
type OffsetError struct {
	Count uint64
	Unit  clue.Quantifier
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("offset out of range: %d %s", e.Count, e.Unit)
}

func (e *OffsetError) Is(target error) bool {
	return target == ErrOffsetOverflow
}

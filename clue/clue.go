// ABOUTME: Time clue data model produced by the parser and consumed by the interpreter
// ABOUTME: A closed set of variants carrying raw, unvalidated clock and calendar fields

package clue

import (
	"fmt"
	"strings"
)

// TimeClue describes what kind of time expression was recognized.
// The set of implementations is closed; switch on the concrete type.
type TimeClue interface {
	fmt.Stringer
	timeClue()
}

// HMS is a raw hour/minute/second triple. Ranges are checked at evaluation.
type HMS struct {
	Hour   uint
	Minute uint
	Second uint
}

func (h HMS) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", h.Hour, h.Minute, h.Second)
}

// YMD is a raw year/month/day triple. It may not form a real date.
type YMD struct {
	Year  int
	Month uint
	Day   uint
}

func (d YMD) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Now is the reference instant itself: "now".
type Now struct{}

// Time is a time of day without a date: "19:43:42", "8", "7pm".
type Time struct {
	Clock HMS
	AmPm  AmPm
}

// Relative is a past offset: "4 min ago".
type Relative struct {
	Count uint64
	Unit  Quantifier
}

// RelativeFuture is a future offset: "in 4 min".
type RelativeFuture struct {
	Count uint64
	Unit  Quantifier
}

// RelativeDayAt is "last/next <weekday> [at <time>]".
type RelativeDayAt struct {
	Modifier Modifier
	Weekday  Weekday
	At       *HMS
	AmPm     AmPm
}

// SameWeekDayAt is "<weekday> [at <time>]" within the current week.
type SameWeekDayAt struct {
	Weekday Weekday
	At      *HMS
	AmPm    AmPm
}

// ShortcutDayAt is "today/yesterday/tomorrow [at <time>]".
type ShortcutDayAt struct {
	Day  ShortcutDay
	At   *HMS
	AmPm AmPm
}

// Iso is an explicit calendar date and time. Date-only input carries midnight.
type Iso struct {
	Date  YMD
	Clock HMS
}

func (Now) timeClue()            {}
func (Time) timeClue()           {}
func (Relative) timeClue()       {}
func (RelativeFuture) timeClue() {}
func (RelativeDayAt) timeClue()  {}
func (SameWeekDayAt) timeClue()  {}
func (ShortcutDayAt) timeClue()  {}
func (Iso) timeClue()            {}

func (Now) String() string { return "Now" }

func (c Time) String() string {
	return "Time(" + join(c.Clock.String(), ampmArg(c.AmPm)) + ")"
}

func (c Relative) String() string {
	return fmt.Sprintf("Relative(%d, %s)", c.Count, c.Unit)
}

func (c RelativeFuture) String() string {
	return fmt.Sprintf("RelativeFuture(%d, %s)", c.Count, c.Unit)
}

func (c RelativeDayAt) String() string {
	return "RelativeDayAt(" + join(c.Modifier.String(), c.Weekday.String(), clockArg(c.At), ampmArg(c.AmPm)) + ")"
}

func (c SameWeekDayAt) String() string {
	return "SameWeekDayAt(" + join(c.Weekday.String(), clockArg(c.At), ampmArg(c.AmPm)) + ")"
}

func (c ShortcutDayAt) String() string {
	return "ShortcutDayAt(" + join(c.Day.String(), clockArg(c.At), ampmArg(c.AmPm)) + ")"
}

func (c Iso) String() string {
	return fmt.Sprintf("Iso(%sT%s)", c.Date, c.Clock)
}

// Kind returns a stable snake_case name for the variant of c.
func Kind(c TimeClue) string {
	switch c.(type) {
	case Now:
		return "now"
	case Time:
		return "time"
	case Relative:
		return "relative"
	case RelativeFuture:
		return "relative_future"
	case RelativeDayAt:
		return "relative_day_at"
	case SameWeekDayAt:
		return "same_week_day_at"
	case ShortcutDayAt:
		return "shortcut_day_at"
	case Iso:
		return "iso"
	default:
		return "unknown"
	}
}

func clockArg(h *HMS) string {
	if h == nil {
		return ""
	}
	return h.String()
}

func ampmArg(a AmPm) string {
	if a == NoAmPm {
		return ""
	}
	return a.String()
}

func join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// ABOUTME: Enumerations carried by time clues: weekday, modifier, quantifier, shortcut day, am/pm
// ABOUTME: Weekday indices start at Monday for week arithmetic

package clue

import "time"

// AmPm is an optional meridiem marker. The zero value means none was given.
type AmPm int

const (
	NoAmPm AmPm = iota
	AM
	PM
)

func (a AmPm) String() string {
	switch a {
	case AM:
		return "am"
	case PM:
		return "pm"
	default:
		return ""
	}
}

// Modifier selects the previous or following occurrence of a weekday.
type Modifier int

const (
	Last Modifier = iota
	Next
)

func (m Modifier) String() string {
	if m == Next {
		return "next"
	}
	return "last"
}

// Quantifier is the unit of a relative offset.
type Quantifier int

const (
	Minutes Quantifier = iota
	Hours
	Days
	Weeks
	// Months are a fixed 30 days, not calendar months.
	Months
)

func (q Quantifier) String() string {
	switch q {
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	case Months:
		return "months"
	default:
		return "unknown"
	}
}

// Duration returns the fixed length of one unit.
func (q Quantifier) Duration() time.Duration {
	switch q {
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	case Weeks:
		return 7 * 24 * time.Hour
	case Months:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// ShortcutDay is a day named relative to the reference date.
type ShortcutDay int

const (
	Today ShortcutDay = iota
	Yesterday
	Tomorrow
)

func (d ShortcutDay) String() string {
	switch d {
	case Yesterday:
		return "yesterday"
	case Tomorrow:
		return "tomorrow"
	default:
		return "today"
	}
}

// Offset returns the number of days between the reference date and d.
func (d ShortcutDay) Offset() int {
	switch d {
	case Yesterday:
		return -1
	case Tomorrow:
		return 1
	default:
		return 0
	}
}

// Weekday is a day of the week. Its value is the number of days from Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "unknown"
	}
	return weekdayNames[w]
}

// DaysFromMonday returns 0 for Monday through 6 for Sunday.
func (w Weekday) DaysFromMonday() int {
	return int(w)
}

// WeekdayOf converts a standard library weekday, which counts from Sunday.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

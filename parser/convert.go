// ABOUTME: Conversion pass from parse tree nodes to time clues
// ABOUTME: Parses integer fields and maps category words without validating ranges

package parser

import (
	"fmt"
	"strconv"

	"github.com/harper/htp/clue"
)

// Convert turns a parse tree node into a time clue.
func Convert(n Node) (clue.TimeClue, error) {
	switch n := n.(type) {
	case NowNode:
		return clue.Now{}, nil

	case TimeNode:
		hms, ampm, err := convertTime(n)
		if err != nil {
			return nil, err
		}
		return clue.Time{Clock: hms, AmPm: ampm}, nil

	case RelativeNode:
		count, unit, err := convertOffset(n.Count, n.Unit)
		if err != nil {
			return nil, err
		}
		return clue.Relative{Count: count, Unit: unit}, nil

	case RelativeFutureNode:
		count, unit, err := convertOffset(n.Count, n.Unit)
		if err != nil {
			return nil, err
		}
		return clue.RelativeFuture{Count: count, Unit: unit}, nil

	case DayAtNode:
		return convertDayAt(n)

	case IsoNode:
		year, err := parseYear(n.Year)
		if err != nil {
			return nil, err
		}
		month, err := parseField(n.Month)
		if err != nil {
			return nil, err
		}
		day, err := parseField(n.Day)
		if err != nil {
			return nil, err
		}
		hms, err := convertClock(n.Clock)
		if err != nil {
			return nil, err
		}
		return clue.Iso{Date: clue.YMD{Year: year, Month: month, Day: day}, Clock: hms}, nil

	case DateNode:
		year, err := parseYear(n.Year)
		if err != nil {
			return nil, err
		}
		month, err := parseField(n.Month)
		if err != nil {
			return nil, err
		}
		day, err := parseField(n.Day)
		if err != nil {
			return nil, err
		}
		return clue.Iso{Date: clue.YMD{Year: year, Month: month, Day: day}}, nil

	default:
		return nil, noMatch(fmt.Sprintf("%T", n))
	}
}

func convertDayAt(n DayAtNode) (clue.TimeClue, error) {
	var at *clue.HMS
	var ampm clue.AmPm
	if n.At != nil {
		hms, a, err := convertTime(*n.At)
		if err != nil {
			return nil, err
		}
		at, ampm = &hms, a
	}

	if n.Modifier != "" {
		m, err := ModifierFrom(n.Modifier)
		if err != nil {
			return nil, err
		}
		w, err := WeekdayFrom(n.Day)
		if err != nil {
			return nil, err
		}
		return clue.RelativeDayAt{Modifier: m, Weekday: w, At: at, AmPm: ampm}, nil
	}

	if _, ok := shortcutDays[n.Day]; ok {
		d, err := ShortcutDayFrom(n.Day)
		if err != nil {
			return nil, err
		}
		return clue.ShortcutDayAt{Day: d, At: at, AmPm: ampm}, nil
	}

	w, err := WeekdayFrom(n.Day)
	if err != nil {
		return nil, err
	}
	return clue.SameWeekDayAt{Weekday: w, At: at, AmPm: ampm}, nil
}

func convertTime(n TimeNode) (clue.HMS, clue.AmPm, error) {
	hms, err := convertClock(n.Clock)
	if err != nil {
		return clue.HMS{}, clue.NoAmPm, err
	}
	if n.AmPm == "" {
		return hms, clue.NoAmPm, nil
	}
	ampm, err := AmPmFrom(n.AmPm)
	if err != nil {
		return clue.HMS{}, clue.NoAmPm, err
	}
	return hms, ampm, nil
}

// convertClock fills missing minute and second with zero.
func convertClock(c ClockNode) (clue.HMS, error) {
	var hms clue.HMS
	var err error
	if hms.Hour, err = parseField(c.Hour); err != nil {
		return clue.HMS{}, err
	}
	if c.Minute != "" {
		if hms.Minute, err = parseField(c.Minute); err != nil {
			return clue.HMS{}, err
		}
	}
	if c.Second != "" {
		if hms.Second, err = parseField(c.Second); err != nil {
			return clue.HMS{}, err
		}
	}
	return hms, nil
}

func convertOffset(count, unit string) (uint64, clue.Quantifier, error) {
	n, err := strconv.ParseUint(count, 10, 64)
	if err != nil {
		return 0, 0, invalidInteger(count, err)
	}
	q, err := QuantifierFrom(unit)
	if err != nil {
		return 0, 0, err
	}
	return n, q, nil
}

func parseField(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, invalidInteger(s, err)
	}
	return uint(n), nil
}

func parseYear(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, invalidInteger(s, err)
	}
	return int(n), nil
}

func invalidInteger(s string, cause error) *ParseError {
	return &ParseError{Token: s, Err: ErrInvalidInteger, Cause: cause}
}

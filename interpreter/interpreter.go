// ABOUTME: Evaluates time clues against a reference timestamp
// ABOUTME: Resolves weekdays within Monday-based weeks and applies validated clock fields

package interpreter

import (
	"time"

	"github.com/harper/htp/clue"
	"github.com/harper/htp/instant"
)

// Config is the evaluation context.
type Config struct {
	// Now is the reference instant relative clues resolve against.
	Now instant.Timestamp
	// RollForward moves a bare time of day that is already past to the next day.
	RollForward bool
}

var midnight = clue.HMS{}

// CheckHMS validates a clock, adding 12 hours for PM first.
// 12 pm therefore fails as hour 24 and 12 am stays hour 12.
func CheckHMS(hms clue.HMS, ampm clue.AmPm) (clue.HMS, error) {
	h := hms.Hour
	if ampm == clue.PM {
		h += 12
	}
	if h < 24 && hms.Minute < 60 && hms.Second < 60 {
		return clue.HMS{Hour: h, Minute: hms.Minute, Second: hms.Second}, nil
	}
	return clue.HMS{}, &TimeError{Hour: hms.Hour, Minute: hms.Minute, Second: hms.Second, AmPm: ampm}
}

// Evaluate resolves c against cfg.Now.
func Evaluate(c clue.TimeClue, cfg Config) (instant.Timestamp, error) {
	now := cfg.Now

	switch c := c.(type) {
	case clue.Now:
		return now, nil

	case clue.Time:
		hms, err := CheckHMS(c.Clock, c.AmPm)
		if err != nil {
			return nil, err
		}
		ts, err := withClock(now, hms)
		if err != nil {
			return nil, err
		}
		if cfg.RollForward && ts.Before(now) {
			return withClock(instant.ShiftDays(now, 1), hms)
		}
		return ts, nil

	case clue.Relative:
		return shift(now, c.Count, c.Unit, false)

	case clue.RelativeFuture:
		return shift(now, c.Count, c.Unit, true)

	case clue.RelativeDayAt:
		hms, err := CheckHMS(orMidnight(c.At), c.AmPm)
		if err != nil {
			return nil, err
		}
		day := sameWeek(now, c.Weekday)
		current := clue.WeekdayOf(now.Weekday()).DaysFromMonday()
		target := c.Weekday.DaysFromMonday()
		switch c.Modifier {
		case clue.Last:
			if target >= current {
				day = instant.ShiftDays(day, -7)
			}
		case clue.Next:
			if target <= current {
				day = instant.ShiftDays(day, 7)
			}
		}
		return withClock(day, hms)

	case clue.SameWeekDayAt:
		hms, err := CheckHMS(orMidnight(c.At), c.AmPm)
		if err != nil {
			return nil, err
		}
		return withClock(sameWeek(now, c.Weekday), hms)

	case clue.ShortcutDayAt:
		hms, err := CheckHMS(orMidnight(c.At), c.AmPm)
		if err != nil {
			return nil, err
		}
		return withClock(instant.ShiftDays(now, c.Day.Offset()), hms)

	case clue.Iso:
		ts, err := now.At(c.Date.Year, int(c.Date.Month), int(c.Date.Day),
			int(c.Clock.Hour), int(c.Clock.Minute), int(c.Clock.Second))
		if err != nil {
			return nil, &IsoDateError{
				Year:   c.Date.Year,
				Month:  c.Date.Month,
				Day:    c.Date.Day,
				Hour:   c.Clock.Hour,
				Minute: c.Clock.Minute,
				Second: c.Clock.Second,
				Err:    err,
			}
		}
		return ts, nil

	default:
		return nil, ErrUnsupportedClue
	}
}

// sameWeek returns the occurrence of w in the Monday-based week containing now.
func sameWeek(now instant.Timestamp, w clue.Weekday) instant.Timestamp {
	current := clue.WeekdayOf(now.Weekday()).DaysFromMonday()
	return instant.ShiftDays(now, w.DaysFromMonday()-current)
}

// withClock sets the time of day on ts's date. A wall time the zone skips,
// such as 02:30 on a spring-forward day, fails like an impossible ISO date.
func withClock(ts instant.Timestamp, hms clue.HMS) (instant.Timestamp, error) {
	t := ts.Time()
	out, err := ts.At(t.Year(), int(t.Month()), t.Day(), int(hms.Hour), int(hms.Minute), int(hms.Second))
	if err != nil {
		return nil, &LocalTimeError{
			Year:   t.Year(),
			Month:  uint(t.Month()),
			Day:    uint(t.Day()),
			Hour:   hms.Hour,
			Minute: hms.Minute,
			Second: hms.Second,
			Zone:   t.Location().String(),
			Err:    err,
		}
	}
	return out, nil
}

func orMidnight(h *clue.HMS) clue.HMS {
	if h == nil {
		return midnight
	}
	return *h
}

const oneDay = 24 * time.Hour

// maxOffsetDays caps relative offsets at about 270 thousand years.
const maxOffsetDays = 100_000_000

// dayChunk is how many days are added per step; a time.Duration holds
// just over 106 thousand.
const dayChunk = 100_000

// shift moves now by count units of exact elapsed time, backwards unless
// future is set. Counts whose offset exceeds maxOffsetDays fail with
// *OffsetError.
func shift(now instant.Timestamp, count uint64, unit clue.Quantifier, future bool) (instant.Timestamp, error) {
	step := unit.Duration()
	if step == 0 {
		return nil, ErrUnsupportedClue
	}

	var days uint64
	var rest time.Duration
	if step < oneDay {
		perDay := uint64(oneDay / step)
		days = count / perDay
		rest = time.Duration(count%perDay) * step
	} else {
		perUnit := uint64(step / oneDay)
		if count > maxOffsetDays/perUnit {
			return nil, &OffsetError{Count: count, Unit: unit}
		}
		days = count * perUnit
	}
	if days > maxOffsetDays {
		return nil, &OffsetError{Count: count, Unit: unit}
	}

	sign := time.Duration(-1)
	if future {
		sign = 1
	}
	ts := now.Add(sign * rest)
	for days > 0 {
		n := min(days, dayChunk)
		ts = ts.Add(sign * time.Duration(n) * oneDay)
		days -= n
	}
	return ts, nil
}

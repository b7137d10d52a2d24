// ABOUTME: English vocabulary for weekdays, shortcut days, modifiers, units, and am/pm
// ABOUTME: Maps recognized category tokens to time clue enums or typed parse errors

package parser

import "github.com/harper/htp/clue"

var weekdays = map[string]clue.Weekday{
	"monday":    clue.Monday,
	"mon":       clue.Monday,
	"tuesday":   clue.Tuesday,
	"tue":       clue.Tuesday,
	"wednesday": clue.Wednesday,
	"wed":       clue.Wednesday,
	"thursday":  clue.Thursday,
	"thu":       clue.Thursday,
	"friday":    clue.Friday,
	"fri":       clue.Friday,
	"saturday":  clue.Saturday,
	"sat":       clue.Saturday,
	"sunday":    clue.Sunday,
	"sun":       clue.Sunday,
}

var shortcutDays = map[string]clue.ShortcutDay{
	"today":     clue.Today,
	"yesterday": clue.Yesterday,
	"tomorrow":  clue.Tomorrow,
}

var modifiers = map[string]clue.Modifier{
	"last": clue.Last,
	"next": clue.Next,
}

var quantifiers = map[string]clue.Quantifier{
	"min":    clue.Minutes,
	"h":      clue.Hours,
	"hour":   clue.Hours,
	"hours":  clue.Hours,
	"d":      clue.Days,
	"day":    clue.Days,
	"days":   clue.Days,
	"w":      clue.Weeks,
	"week":   clue.Weeks,
	"weeks":  clue.Weeks,
	"month":  clue.Months,
	"months": clue.Months,
}

var ampms = map[string]clue.AmPm{
	"am": clue.AM,
	"pm": clue.PM,
}

// WeekdayFrom maps a full or abbreviated weekday name.
func WeekdayFrom(s string) (clue.Weekday, error) {
	if w, ok := weekdays[s]; ok {
		return w, nil
	}
	return 0, unknown(ErrUnknownWeekday, s)
}

// ShortcutDayFrom maps today, yesterday or tomorrow.
func ShortcutDayFrom(s string) (clue.ShortcutDay, error) {
	if d, ok := shortcutDays[s]; ok {
		return d, nil
	}
	return 0, unknown(ErrUnknownShortcutDay, s)
}

// ModifierFrom maps last or next.
func ModifierFrom(s string) (clue.Modifier, error) {
	if m, ok := modifiers[s]; ok {
		return m, nil
	}
	return 0, unknown(ErrUnknownModifier, s)
}

// QuantifierFrom maps a unit word such as "min", "h" or "weeks".
func QuantifierFrom(s string) (clue.Quantifier, error) {
	if q, ok := quantifiers[s]; ok {
		return q, nil
	}
	return 0, unknown(ErrUnknownQuantifier, s)
}

// AmPmFrom maps am or pm.
func AmPmFrom(s string) (clue.AmPm, error) {
	if a, ok := ampms[s]; ok {
		return a, nil
	}
	return clue.NoAmPm, unknown(ErrUnknownAmPm, s)
}

func isDayWord(s string) bool {
	_, weekday := weekdays[s]
	_, shortcut := shortcutDays[s]
	return weekday || shortcut
}

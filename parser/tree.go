// ABOUTME: Typed parse tree for the time phrase grammar, one node type per rule
// ABOUTME: Grammar recognizes the surface syntax; nodes keep raw token text only

package parser

import "strings"

// Node is a parse tree node produced by Grammar.
type Node interface {
	node()
}

// NowNode matches "now".
type NowNode struct{}

// ClockNode matches "H", "H:M" or "H:M:S". Missing parts are empty.
type ClockNode struct {
	Hour   string
	Minute string
	Second string
}

// TimeNode matches a clock optionally followed by an am/pm word.
type TimeNode struct {
	Clock ClockNode
	AmPm  string
}

// RelativeNode matches "<N> <unit> ago".
type RelativeNode struct {
	Count string
	Unit  string
}

// RelativeFutureNode matches "in <N> <unit>".
type RelativeFutureNode struct {
	Count string
	Unit  string
}

// DayAtNode matches "[<modifier>] <day> [at <time>]".
type DayAtNode struct {
	Modifier string
	Day      string
	At       *TimeNode
}

// IsoNode matches "YYYY-MM-DDTH[:M[:S]]", with "-" or "/" as separator.
type IsoNode struct {
	Year  string
	Month string
	Day   string
	Clock ClockNode
}

// DateNode matches "DD/MM/YYYY" or "DD-MM-YYYY".
type DateNode struct {
	Day   string
	Month string
	Year  string
}

func (NowNode) node()            {}
func (TimeNode) node()           {}
func (RelativeNode) node()       {}
func (RelativeFutureNode) node() {}
func (DayAtNode) node()          {}
func (IsoNode) node()            {}
func (DateNode) node()           {}

const agoSuffix = "ago"

// production recognizes a whole token sequence or reports false.
type production func([]token) (Node, bool)

// productions are tried in order; the first to match the whole input wins.
var productions = []production{
	matchNow,
	matchIso,
	matchDate,
	matchRelative,
	matchRelativeFuture,
	matchDayAt,
	matchTime,
}

// Grammar tokenizes text and returns the parse tree of the first matching rule.
func Grammar(text string) (Node, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	for _, p := range productions {
		if n, ok := p(tokens); ok {
			return n, nil
		}
	}
	return nil, noMatch("")
}

func matchNow(ts []token) (Node, bool) {
	if len(ts) == 1 && ts[0].is(tokWord, "now") {
		return NowNode{}, true
	}
	return nil, false
}

func matchIso(ts []token) (Node, bool) {
	if len(ts) < 7 {
		return nil, false
	}
	if !isDigits(ts[0], 4, 4) || !ts[1].isSep() || !isDigits(ts[2], 1, 2) ||
		ts[3].kind != ts[1].kind || !isDigits(ts[4], 1, 2) || !ts[5].is(tokWord, "t") {
		return nil, false
	}
	clock, ok := matchClock(ts[6:])
	if !ok {
		return nil, false
	}
	return IsoNode{Year: ts[0].text, Month: ts[2].text, Day: ts[4].text, Clock: clock}, true
}

func matchDate(ts []token) (Node, bool) {
	if len(ts) != 5 {
		return nil, false
	}
	if !isDigits(ts[0], 1, 2) || !ts[1].isSep() || !isDigits(ts[2], 1, 2) ||
		ts[3].kind != ts[1].kind || !isDigits(ts[4], 4, 4) {
		return nil, false
	}
	return DateNode{Day: ts[0].text, Month: ts[2].text, Year: ts[4].text}, true
}

// matchRelative accepts the unit and "ago" as two words or glued into one.
func matchRelative(ts []token) (Node, bool) {
	if len(ts) < 2 || ts[0].kind != tokNumber {
		return nil, false
	}
	switch {
	case len(ts) == 3 && ts[1].kind == tokWord && ts[2].is(tokWord, agoSuffix):
		return RelativeNode{Count: ts[0].text, Unit: ts[1].text}, true
	case len(ts) == 2 && ts[1].kind == tokWord &&
		len(ts[1].text) > len(agoSuffix) && strings.HasSuffix(ts[1].text, agoSuffix):
		return RelativeNode{Count: ts[0].text, Unit: strings.TrimSuffix(ts[1].text, agoSuffix)}, true
	}
	return nil, false
}

func matchRelativeFuture(ts []token) (Node, bool) {
	if len(ts) != 3 || !ts[0].is(tokWord, "in") || ts[1].kind != tokNumber || ts[2].kind != tokWord {
		return nil, false
	}
	return RelativeFutureNode{Count: ts[1].text, Unit: ts[2].text}, true
}

// matchDayAt accepts one or two leading words and an optional "at <time>".
// A lone word must belong to the day vocabulary; otherwise the shape alone
// decides and the conversion pass reports unknown words.
func matchDayAt(ts []token) (Node, bool) {
	words := 0
	for words < len(ts) && words < 2 && ts[words].kind == tokWord && ts[words].text != "at" {
		words++
	}
	if words == 0 {
		return nil, false
	}

	var n DayAtNode
	if words == 2 {
		n.Modifier, n.Day = ts[0].text, ts[1].text
	} else {
		n.Day = ts[0].text
	}

	rest := ts[words:]
	if len(rest) > 0 {
		if !rest[0].is(tokWord, "at") {
			return nil, false
		}
		at, ok := matchTimeNode(rest[1:])
		if !ok {
			return nil, false
		}
		n.At = &at
	}

	if words == 1 && n.At == nil && !isDayWord(n.Day) {
		return nil, false
	}
	return n, true
}

func matchTime(ts []token) (Node, bool) {
	n, ok := matchTimeNode(ts)
	if !ok {
		return nil, false
	}
	return n, true
}

func matchTimeNode(ts []token) (TimeNode, bool) {
	var n TimeNode
	if len(ts) > 0 && ts[len(ts)-1].kind == tokWord {
		n.AmPm = ts[len(ts)-1].text
		ts = ts[:len(ts)-1]
	}
	clock, ok := matchClock(ts)
	if !ok {
		return TimeNode{}, false
	}
	n.Clock = clock
	return n, true
}

func matchClock(ts []token) (ClockNode, bool) {
	var c ClockNode
	switch len(ts) {
	case 1:
		if !isDigits(ts[0], 1, 2) {
			return c, false
		}
		c.Hour = ts[0].text
	case 3:
		if !isDigits(ts[0], 1, 2) || ts[1].kind != tokColon || !isDigits(ts[2], 1, 2) {
			return c, false
		}
		c.Hour, c.Minute = ts[0].text, ts[2].text
	case 5:
		if !isDigits(ts[0], 1, 2) || ts[1].kind != tokColon || !isDigits(ts[2], 1, 2) ||
			ts[3].kind != tokColon || !isDigits(ts[4], 1, 2) {
			return c, false
		}
		c.Hour, c.Minute, c.Second = ts[0].text, ts[2].text, ts[4].text
	default:
		return c, false
	}
	return c, true
}

func isDigits(t token, minLen, maxLen int) bool {
	return t.kind == tokNumber && len(t.text) >= minLen && len(t.text) <= maxLen
}

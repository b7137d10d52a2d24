// ABOUTME: Human time parser public API: phrase plus reference time to timestamp
// ABOUTME: Composes the parser and interpreter and wraps their errors in one type

// Package htp turns short human phrases such as "last friday at 9",
// "2 days ago" or "2020-12-25T19:43:00" into timestamps relative to a
// reference time.
//
//	now := time.Date(2020, 12, 24, 23, 45, 0, 0, time.UTC)
//	t, err := htp.Parse("last friday at 19:43", now)
//	// t == 2020-12-18T19:43:00Z
package htp

import (
	"fmt"
	"time"

	"github.com/harper/htp/clue"
	"github.com/harper/htp/instant"
	"github.com/harper/htp/interpreter"
	"github.com/harper/htp/parser"
)

// Config controls evaluation of a phrase.
type Config struct {
	// Now is the reference time. Its location is kept in the result.
	Now time.Time
	// RollForward interprets a bare time of day that has already passed
	// today as the same time tomorrow.
	RollForward bool
}

// Error wraps a parse or evaluation failure for one input phrase.
// Use errors.As to reach *parser.ParseError, *interpreter.TimeError or
// *interpreter.IsoDateError, and errors.Is for their sentinels.
type Error struct {
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("htp: %q: %v", e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse resolves text against now with roll-forward disabled.
func Parse(text string, now time.Time) (time.Time, error) {
	return ParseWithConfig(text, Config{Now: now})
}

// ParseWithConfig resolves text using cfg.
func ParseWithConfig(text string, cfg Config) (time.Time, error) {
	c, err := ParseTimeClue(text)
	if err != nil {
		return time.Time{}, err
	}
	t, err := evaluate(c, cfg)
	if err != nil {
		return time.Time{}, &Error{Input: text, Err: err}
	}
	return t, nil
}

// ParseTimeClue parses text without evaluating it, for callers that want to
// inspect the structure or evaluate it later.
func ParseTimeClue(text string) (clue.TimeClue, error) {
	c, err := parser.ParseTimeClue(text)
	if err != nil {
		return nil, &Error{Input: text, Err: err}
	}
	return c, nil
}

// Evaluate resolves an already parsed clue using cfg.
// The returned error's Input is the clue's string form.
func Evaluate(c clue.TimeClue, cfg Config) (time.Time, error) {
	t, err := evaluate(c, cfg)
	if err != nil {
		return time.Time{}, &Error{Input: c.String(), Err: err}
	}
	return t, nil
}

func evaluate(c clue.TimeClue, cfg Config) (time.Time, error) {
	ts, err := interpreter.Evaluate(c, interpreter.Config{
		Now:         instant.New(cfg.Now),
		RollForward: cfg.RollForward,
	})
	if err != nil {
		return time.Time{}, err
	}
	return ts.Time(), nil
}

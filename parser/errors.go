// ABOUTME: Parse error type and sentinel causes for phrase recognition failures
// ABOUTME: Carries the offending token so callers can build precise messages

package parser

import (
	"errors"
	"fmt"
)

var (
	ErrNoMatch            = errors.New("unexpected non matching pattern")
	ErrInvalidInteger     = errors.New("invalid integer")
	ErrUnknownWeekday     = errors.New("unknown weekday")
	ErrUnknownShortcutDay = errors.New("unknown shortcut day")
	ErrUnknownModifier    = errors.New("unknown modifier")
	ErrUnknownQuantifier  = errors.New("unknown quantifier")
	ErrUnknownAmPm        = errors.New("unknown am or pm")
)

// ParseError reports why a phrase could not be turned into a time clue.
// Err is one of the sentinels above; Cause holds a lower level error if any.
type ParseError struct {
	Input string
	Token string
	Err   error
	Cause error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s: `%s`", msg, e.Token)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func noMatch(token string) *ParseError {
	return &ParseError{Token: token, Err: ErrNoMatch}
}

func unknown(err error, token string) *ParseError {
	return &ParseError{Token: token, Err: err}
}

// ABOUTME: Entry point turning a human time phrase into a time clue
// ABOUTME: Runs the grammar then the conversion pass; never consults a reference time

package parser

import (
	"errors"

	"github.com/harper/htp/clue"
)

// ParseTimeClue recognizes text and returns its time clue.
// Clock and calendar fields are not range checked; "25:99" parses.
func ParseTimeClue(text string) (clue.TimeClue, error) {
	tree, err := Grammar(text)
	if err != nil {
		return nil, withInput(err, text)
	}
	c, err := Convert(tree)
	if err != nil {
		return nil, withInput(err, text)
	}
	return c, nil
}

func withInput(err error, text string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Input = text
	}
	return err
}

// ABOUTME: Tokenizer for time phrases: numbers, words, and date/time separators
// ABOUTME: Whitespace is insignificant and letters split from digits without it

package parser

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokWord
	tokColon
	tokDash
	tokSlash
)

type token struct {
	kind tokenKind
	text string
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

func (t token) isSep() bool {
	return t.kind == tokDash || t.kind == tokSlash
}

// tokenize lower-cases s and splits it into tokens.
// It fails on the first character that belongs to no token class.
func tokenize(s string) ([]token, error) {
	runes := []rune(strings.ToLower(s))
	var tokens []token

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9':
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[i:j])})
			i = j
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			tokens = append(tokens, token{kind: tokWord, text: string(runes[i:j])})
			i = j
		case r == ':':
			tokens = append(tokens, token{kind: tokColon, text: ":"})
			i++
		case r == '-':
			tokens = append(tokens, token{kind: tokDash, text: "-"})
			i++
		case r == '/':
			tokens = append(tokens, token{kind: tokSlash, text: "/"})
			i++
		default:
			return nil, noMatch(string(r))
		}
	}

	return tokens, nil
}

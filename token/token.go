// Package token classifies code points for the word scanner.
// Each Class is a predicate over a single rune, the scanner state tables
// are lists of classes tried in order.
package token

import "unicode"

type Class uint8

const (
	NONE Class = iota

	SPACE      // unicode white space, includes the synthesized newline
	QUOTE      // ' or "
	CLOSEQUOTE // same quote as the one that opened the word, resolved by the scanner
	ALPHA      // letters, possible start of an URI scheme
	SCHEME     // letters, digits, + - .
	COLON
	PIPE
	SLASH
	PRINT   // graphic, including spaces
	GRAPH   // printable and not a space
	CONTROL // C0/C1 controls (tab, newline...)
)

//go:generate stringer -type=Class
var _ = NONE.String() // force compile error if go generate is missing.

// Match reports whether r belongs to the class. CLOSEQUOTE needs the opening
// quote to be exact and degrades to QUOTE here.
func (c Class) Match(r rune) bool {
	switch c {
	case SPACE:
		return IsSpace(r)
	case QUOTE, CLOSEQUOTE:
		return IsQuote(r)
	case ALPHA:
		return unicode.IsLetter(r)
	case SCHEME:
		return IsScheme(r)
	case COLON:
		return r == ':'
	case PIPE:
		return r == '|'
	case SLASH:
		return r == '/'
	case PRINT:
		return IsPrint(r)
	case GRAPH:
		return IsGraph(r)
	case CONTROL:
		return unicode.IsControl(r)
	default:
		return false
	}
}

func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func IsQuote(r rune) bool {
	return r == '\'' || r == '"'
}

// IsScheme is true for the characters allowed after the first letter of an
// URI scheme.
func IsScheme(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '-' || r == '.'
}

// IsPrint includes format characters (zero width joiners etc.) so emoji
// sequences read from a screen don't stop the scanner.
func IsPrint(r rune) bool {
	return unicode.IsGraphic(r) || unicode.Is(unicode.Cf, r)
}

func IsGraph(r rune) bool {
	return IsPrint(r) && !unicode.IsSpace(r)
}

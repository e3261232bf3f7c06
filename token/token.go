// Package token defines the Token value the scanner produces: a matched
// pattern reference, the matched text, and source position, optionally
// linked into the doubly-linked chain the scanner builds in token-list
// mode (spec §4.5).
package token

import "github.com/grammarkit/parsekit/grammar"

// Token is one scanned lexical unit.
type Token struct {
	Pattern *grammar.TokenPattern
	Image   string

	StartLine, StartColumn int
	EndLine, EndColumn     int

	Prev, Next *Token
}

// ID returns the underlying pattern's id, or -1 for a token with no
// pattern (never produced by the scanner; defensive for callers building
// synthetic tokens in tests).
func (t *Token) ID() int {
	if t == nil || t.Pattern == nil {
		return -1
	}
	return t.Pattern.ID
}

// ShortForm renders the token the way diagnostics do, by delegating to
// grammar.TokenPattern.ShortForm: a literal pattern's quoted text, or a
// regular-expression pattern's name. A token with no pattern renders as
// its image.
func (t *Token) ShortForm() string {
	if t == nil {
		return "<nil>"
	}
	if t.Pattern == nil {
		return t.Image
	}
	return t.Pattern.ShortForm()
}

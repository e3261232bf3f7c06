// Package automata defines the shared contract the scanner's three
// competing matchers (string DFA, compact NFA, general regex) implement:
// a read-only, arbitrarily-far-peekable rune source, and the answer shape
// each matcher gives back (a match length, or no match).
package automata

import "github.com/grammarkit/parsekit/charbuffer"

// EOF is returned by a Source's Peek once offset crosses end-of-input.
const EOF = charbuffer.EOFRune

// Source is the minimal view of a character stream a matcher needs: pure
// lookahead, no consumption. *charbuffer.CharBuffer satisfies this.
type Source interface {
	Peek(offset int) rune
}

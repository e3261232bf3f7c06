// Package scanner implements the Scanner (spec §4.1/§4.5): maximal-munch
// tokenization across three competing matchers — StringDFA for literal
// patterns, TokenNFA for regex patterns that parse under the compact
// dialect, and one general regex matcher per pattern that doesn't. On
// each call the longest match across all three wins; ties go to the
// lowest pattern id, matching the teacher's longest-match lexer
// (tooling/lexer/lexer.go) generalized from "one DFA" to "three matchers
// raced against each other".
package scanner

import (
	"fmt"

	"github.com/grammarkit/parsekit/automata/nfa"
	"github.com/grammarkit/parsekit/automata/regex"
	"github.com/grammarkit/parsekit/automata/stringdfa"
	"github.com/grammarkit/parsekit/charbuffer"
	"github.com/grammarkit/parsekit/errs"
	"github.com/grammarkit/parsekit/grammar"
	"github.com/grammarkit/parsekit/token"
)

type fallbackPattern struct {
	id      int
	matcher *regex.Matcher
}

// Scanner tokenizes one input stream against a fixed grammar's token
// patterns.
type Scanner struct {
	g   *grammar.Grammar
	buf *charbuffer.CharBuffer

	literals  *stringdfa.DFA[int]
	compact   *nfa.NFA
	fallbacks []fallbackPattern

	// tokenList mode: when true, Next links produced tokens into a
	// doubly-linked chain and keeps the tail for O(1) append, matching
	// spec §4.5's token-list mode used by the parser's peek queue.
	tokenList bool
	tail      *token.Token
}

// New builds a Scanner from every token pattern in g, installing literal
// patterns into the StringDFA, regex patterns into the compact NFA when
// they parse under its strict dialect, and otherwise into a dedicated
// general regex matcher (spec §4.1's two-tier install strategy). Returns
// the first construction error encountered, if any regex pattern is
// rejected even by the permissive dialect.
func New(g *grammar.Grammar, tokenList bool) (*Scanner, error) {
	s := &Scanner{
		g:         g,
		literals:  stringdfa.New[int](),
		compact:   nfa.New(),
		tokenList: tokenList,
	}
	for _, tp := range g.Tokens() {
		switch tp.Kind {
		case grammar.LiteralString:
			if s.literals.HasPrefixCollision(tp.Text, false) {
				g.AddWarning(fmt.Sprintf("token %q: literal %q extends or repeats an existing literal at load time", tp.Name, tp.Text))
			}
			s.literals.Add(tp.Text, false, tp.ID)
			tp.SetDebugAnnotation("string-dfa")
		case grammar.RegularExpression:
			if err := s.compact.AddPattern(tp.ID, tp.Text); err != nil {
				m, ferr := regex.Compile(tp.Text)
				if ferr != nil {
					return nil, &errs.ConstructionError{
						Kind: errs.INVALID_TOKEN, Name: tp.Name,
						Message: fmt.Sprintf("pattern %q rejected by both regex dialects: %v", tp.Text, ferr),
					}
				}
				s.fallbacks = append(s.fallbacks, fallbackPattern{id: tp.ID, matcher: m})
				tp.SetDebugAnnotation("general-regex")
			} else {
				tp.SetDebugAnnotation("compact-nfa")
			}
		}
	}
	return s, nil
}

// Reset rebinds the scanner to a new input stream and clears position and
// token-list state, letting one Scanner be reused across inputs (spec
// §4.5).
func (s *Scanner) Reset(upstream charbuffer.Reader) {
	s.buf = charbuffer.New(upstream)
	s.tail = nil
}

// ResetString is a convenience wrapper around Reset for string input.
func (s *Scanner) ResetString(input string) {
	s.buf = charbuffer.FromString(input)
	s.tail = nil
}

// Next scans the next token, skipping patterns marked Ignore and
// surfacing patterns marked ErrorFlag as a ParseError instead of a token.
// Returns (nil, nil, true) at end of input.
func (s *Scanner) Next() (tok *token.Token, perr *errs.ParseError, eof bool) {
	for {
		if s.buf.AtEOF() {
			return nil, nil, true
		}
		startLine, startCol := s.buf.Line(), s.buf.Column()
		patternID, length, ok := s.bestMatch()
		if !ok {
			c := s.buf.Peek(0)
			return nil, &errs.ParseError{
				Kind: errs.UNEXPECTED_CHAR, Line: startLine, Column: startCol,
				Actual:  fmt.Sprintf("%q", c),
				Message: fmt.Sprintf("unexpected character %q", c),
			}, false
		}
		image := s.buf.Read(length)
		tp := s.g.Token(patternID)

		if tp.ErrorFlag {
			msg := tp.ErrorMessage
			if msg == "" {
				msg = fmt.Sprintf("invalid token %q", image)
			}
			return nil, &errs.ParseError{
				Kind: errs.INVALID_TOKEN_PARSE, Line: startLine, Column: startCol,
				Actual: image, Message: msg,
			}, false
		}
		if tp.Ignore {
			continue
		}

		endLine, endCol := endPosition(startLine, startCol, image)
		t := &token.Token{
			Pattern:     tp,
			Image:       image,
			StartLine:   startLine,
			StartColumn: startCol,
			EndLine:     endLine,
			EndColumn:   endCol,
		}
		if s.tokenList {
			s.link(t)
		}
		return t, nil, false
	}
}

// endPosition computes the inclusive end line/column of image (spec §3:
// "end line and column (1-based, end inclusive)"), given the position of
// its first character. charbuffer.Read's own line/column counters track
// the position of the *next* character still to be read, one step past
// what this needs: this walks the same newline rule (line++ on '\n',
// column resets to 1 after it, else column++) but stops one character
// short, landing on the last consumed character itself rather than the
// one after it.
func endPosition(startLine, startCol int, image string) (line, col int) {
	line, col = startLine, startCol
	runes := []rune(image)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (s *Scanner) link(t *token.Token) {
	if s.tail != nil {
		s.tail.Next = t
		t.Prev = s.tail
	}
	s.tail = t
}

// bestMatch races the three matchers over the current buffer position and
// returns the winner's pattern id and match length. Longest length wins;
// ties go to the lowest pattern id, independent of which matcher produced
// the candidate (spec §4.1).
func (s *Scanner) bestMatch() (patternID, length int, ok bool) {
	bestLen := -1
	bestID := -1

	consider := func(id, l int, matched bool) {
		if !matched {
			return
		}
		if l > bestLen || (l == bestLen && id < bestID) {
			bestLen, bestID = l, id
		}
	}

	if id, l, matched := s.literals.Match(s.buf, false); matched {
		consider(id, l, matched)
	}
	if id, l, matched := s.compact.Match(s.buf); matched {
		consider(id, l, matched)
	}
	for _, fb := range s.fallbacks {
		if l, matched := fb.matcher.Match(s.buf); matched {
			consider(fb.id, l, matched)
		}
	}

	if bestLen < 0 {
		return 0, 0, false
	}
	return bestID, bestLen, true
}

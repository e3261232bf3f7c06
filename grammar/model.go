// Package grammar holds the declarative grammar model: token patterns,
// production patterns, their alternatives and elements, and the Grammar
// construction API described in spec §3 and §6. It is grounded on the
// teacher's tooling/grammar package (LexicalGrammar/SyntacticGrammar), with
// the two grammars merged into one id-keyed model and repetition counts
// generalized from the teacher's fixed ?, *, + wrappers to min/max element
// elements the way Grammatica-family runtimes express them.
package grammar

import "github.com/grammarkit/parsekit/lookahead"

// TokenKind distinguishes a literal-string pattern from a regular-expression
// pattern.
type TokenKind int

const (
	LiteralString TokenKind = iota
	RegularExpression
)

func (k TokenKind) String() string {
	if k == LiteralString {
		return "literal-string"
	}
	return "regular-expression"
}

// TokenPattern is an immutable record describing one lexical token.
type TokenPattern struct {
	ID           int
	Name         string
	Kind         TokenKind
	Text         string
	Ignore       bool
	ErrorFlag    bool
	ErrorMessage string

	// debugAnnotation is set by the scanner at install time to record which
	// matcher (string DFA, compact NFA, general regex) ended up handling
	// this pattern. Purely diagnostic.
	debugAnnotation string
}

// SetDebugAnnotation records which matcher installed this pattern. Called by
// the scanner, not by grammar construction code.
func (t *TokenPattern) SetDebugAnnotation(s string) { t.debugAnnotation = s }

// DebugAnnotation returns the matcher that installed this pattern, or "" if
// the pattern has not been installed into a scanner yet.
func (t *TokenPattern) DebugAnnotation() string { return t.debugAnnotation }

// ShortForm renders a token pattern the way UNEXPECTED_TOKEN's expected list
// wants it: the pattern's name, quoted image for literals.
func (t *TokenPattern) ShortForm() string {
	if t.Kind == LiteralString {
		return quote(t.Text)
	}
	return t.Name
}

func quote(s string) string { return "\"" + s + "\"" }

// Unbounded is the sentinel ProductionPatternElement.Max uses to mean
// "no upper bound" (spec §3: "maximum count (min..∞ expressed as a
// sentinel)").
const Unbounded = -1

// ProductionPatternElement is a token-or-production reference with a
// min/max repetition count.
type ProductionPatternElement struct {
	IsToken bool
	ID      int
	Min     int
	Max     int // Unbounded for "no upper bound"

	lookAhead *lookahead.Set
}

// LookAhead returns the element's cached look-ahead set, or nil before
// Prepare has run.
func (e *ProductionPatternElement) LookAhead() *lookahead.Set { return e.lookAhead }

// SetLookAhead installs the element's resolved look-ahead set. Called only
// by the analyzer.
func (e *ProductionPatternElement) SetLookAhead(s *lookahead.Set) { e.lookAhead = s }

// Optional reports whether the element may be skipped entirely.
func (e *ProductionPatternElement) Optional() bool { return e.Min == 0 }

// Repeated reports whether the element may match more than once.
func (e *ProductionPatternElement) Repeated() bool { return e.Max == Unbounded || e.Max > 1 }

func (e *ProductionPatternElement) equal(o *ProductionPatternElement) bool {
	return e.IsToken == o.IsToken && e.ID == o.ID && e.Min == o.Min && e.Max == o.Max
}

// ProductionPatternAlternative is one ordered, non-empty list of elements
// making up a right-hand side of a production.
type ProductionPatternAlternative struct {
	Pattern  *ProductionPattern
	Elements []*ProductionPatternElement

	lookAhead *lookahead.Set
}

// LookAhead returns the alternative's cached look-ahead set, or nil before
// Prepare has run.
func (a *ProductionPatternAlternative) LookAhead() *lookahead.Set { return a.lookAhead }

// SetLookAhead installs the alternative's resolved look-ahead set. Called
// only by the analyzer.
func (a *ProductionPatternAlternative) SetLookAhead(s *lookahead.Set) { a.lookAhead = s }

// Equal reports whether two alternatives have equal element lists, the
// definition of alternative equality used to reject duplicate alternatives.
func (a *ProductionPatternAlternative) Equal(o *ProductionPatternAlternative) bool {
	if len(a.Elements) != len(o.Elements) {
		return false
	}
	for i, e := range a.Elements {
		if !e.equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// ProductionPattern is identified by id and name and holds an ordered,
// non-empty list of alternatives.
type ProductionPattern struct {
	ID           int
	Name         string
	Alternatives []*ProductionPatternAlternative
	Synthetic    bool
	Default      *ProductionPatternAlternative

	lookAhead *lookahead.Set
}

// LookAhead returns the pattern's cached look-ahead set (the union of its
// alternatives' sets), or nil before Prepare has run.
func (p *ProductionPattern) LookAhead() *lookahead.Set { return p.lookAhead }

// SetLookAhead installs the pattern's resolved look-ahead set. Called only
// by the analyzer.
func (p *ProductionPattern) SetLookAhead(s *lookahead.Set) { p.lookAhead = s }

// NonDefaultAlternatives returns the alternatives in declaration order,
// excluding whichever one (if any) was promoted to Default.
func (p *ProductionPattern) NonDefaultAlternatives() []*ProductionPatternAlternative {
	out := make([]*ProductionPatternAlternative, 0, len(p.Alternatives))
	for _, alt := range p.Alternatives {
		if alt != p.Default {
			out = append(out, alt)
		}
	}
	return out
}

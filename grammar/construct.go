package grammar

import (
	"fmt"

	"github.com/grammarkit/parsekit/errs"
)

// TokenOptions carries the optional ignore/error flags spec §6's
// construction API allows when adding a token pattern.
type TokenOptions struct {
	Ignore       bool
	Error        bool
	ErrorMessage string
}

// Grammar is the mutable construction-time container for token and
// production patterns, sharing one id space as spec §3/§9.4 require.
// Grounded on the teacher's LexicalGrammar/SyntacticGrammar
// (tooling/grammar), merged into a single id-keyed model since parsekit's
// token and production ids are drawn from one caller-assigned space.
type Grammar struct {
	tokens      map[int]*TokenPattern
	tokenOrder  []int
	productions map[int]*ProductionPattern
	prodOrder   []int
	idOwner     map[int]string // id -> "token "+name or "production "+name, for disjointness checks

	startID  int
	hasStart bool

	prepared bool
	warnings []string
}

// New creates an empty Grammar.
func New() *Grammar {
	return &Grammar{
		tokens:      make(map[int]*TokenPattern),
		productions: make(map[int]*ProductionPattern),
		idOwner:     make(map[int]string),
	}
}

// AddTokenPattern registers a new token pattern. Returns INVALID_PRODUCTION
// if id collides with an already-registered token or production id (spec
// §9.4: ids are enforced disjoint at add time).
func (g *Grammar) AddTokenPattern(id int, name string, kind TokenKind, text string, opts TokenOptions) (*TokenPattern, error) {
	if owner, exists := g.idOwner[id]; exists {
		return nil, &errs.ConstructionError{
			Kind: errs.INVALID_PRODUCTION, Name: name,
			Message: fmt.Sprintf("id %d already used by %s", id, owner),
		}
	}
	tp := &TokenPattern{
		ID: id, Name: name, Kind: kind, Text: text,
		Ignore: opts.Ignore, ErrorFlag: opts.Error, ErrorMessage: opts.ErrorMessage,
	}
	g.tokens[id] = tp
	g.tokenOrder = append(g.tokenOrder, id)
	g.idOwner[id] = "token " + name
	return tp, nil
}

// AddProductionPattern registers a new, initially alternative-less,
// production pattern. Alternatives are appended afterward with
// AddAlternative.
func (g *Grammar) AddProductionPattern(id int, name string) (*ProductionPattern, error) {
	if owner, exists := g.idOwner[id]; exists {
		return nil, &errs.ConstructionError{
			Kind: errs.INVALID_PRODUCTION, Name: name,
			Message: fmt.Sprintf("id %d already used by %s", id, owner),
		}
	}
	pp := &ProductionPattern{ID: id, Name: name}
	g.productions[id] = pp
	g.prodOrder = append(g.prodOrder, id)
	g.idOwner[id] = "production " + name
	if !g.hasStart {
		g.startID = id
		g.hasStart = true
	}
	return pp, nil
}

// NewElement validates and constructs a production pattern element. A
// {0,0} repetition, or a {min,max} with 0<=max<min, is rejected at
// construction per spec §8's boundary behaviors and §9.5.
func NewElement(isToken bool, id int, min, max int) (*ProductionPatternElement, error) {
	if min < 0 {
		return nil, &errs.ConstructionError{Kind: errs.INVALID_PRODUCTION, Message: "negative minimum count"}
	}
	if max == 0 && min == 0 {
		return nil, &errs.ConstructionError{Kind: errs.INVALID_PRODUCTION, Message: "{0,0} repetition is never satisfiable"}
	}
	if max != Unbounded && max >= 0 && max < min {
		return nil, &errs.ConstructionError{Kind: errs.INVALID_PRODUCTION, Message: fmt.Sprintf("max %d is less than min %d", max, min)}
	}
	if max < 0 {
		max = Unbounded
	}
	return &ProductionPatternElement{IsToken: isToken, ID: id, Min: min, Max: max}, nil
}

// AddAlternative appends a new alternative to p, rejecting duplicates
// (spec §3: "Two alternatives are equal iff their element lists are
// equal") and empty element lists.
func (p *ProductionPattern) AddAlternative(elements ...*ProductionPatternElement) (*ProductionPatternAlternative, error) {
	if len(elements) == 0 {
		return nil, &errs.ConstructionError{Kind: errs.INVALID_PRODUCTION, Name: p.Name, Message: "alternative has no elements"}
	}
	alt := &ProductionPatternAlternative{Pattern: p, Elements: elements}
	for _, existing := range p.Alternatives {
		if existing.Equal(alt) {
			return nil, &errs.ConstructionError{Kind: errs.INVALID_PRODUCTION, Name: p.Name, Message: "duplicate alternative"}
		}
	}
	p.Alternatives = append(p.Alternatives, alt)
	return alt, nil
}

// SetSynthetic marks p as synthetic: when true, its children replace the
// node itself in the parse tree (spec §3/§4.8).
func (p *ProductionPattern) SetSynthetic(synthetic bool) { p.Synthetic = synthetic }

// SetDefaultAlternative designates alt as p's fallback alternative, used
// when no other alternative's look-ahead matches (spec §3/§4.7/§9.3). alt
// must already belong to p.
func (p *ProductionPattern) SetDefaultAlternative(alt *ProductionPatternAlternative) error {
	for _, a := range p.Alternatives {
		if a == alt {
			p.Default = alt
			return nil
		}
	}
	return &errs.ConstructionError{Kind: errs.INVALID_PRODUCTION, Name: p.Name, Message: "default alternative does not belong to this pattern"}
}

// SetStartPattern designates the production the parse driver invokes first.
// When never called, the first production added is the start pattern.
func (g *Grammar) SetStartPattern(id int) error {
	if _, ok := g.productions[id]; !ok {
		return &errs.ConstructionError{Kind: errs.INVALID_PRODUCTION, Message: fmt.Sprintf("no such production id %d", id)}
	}
	g.startID = id
	g.hasStart = true
	return nil
}

// StartPattern returns the designated start production, or nil if the
// grammar has no productions at all.
func (g *Grammar) StartPattern() *ProductionPattern {
	if !g.hasStart {
		return nil
	}
	return g.productions[g.startID]
}

// Token returns the token pattern with the given id, or nil.
func (g *Grammar) Token(id int) *TokenPattern { return g.tokens[id] }

// Production returns the production pattern with the given id, or nil.
func (g *Grammar) Production(id int) *ProductionPattern { return g.productions[id] }

// Tokens returns every token pattern in declaration order.
func (g *Grammar) Tokens() []*TokenPattern {
	out := make([]*TokenPattern, len(g.tokenOrder))
	for i, id := range g.tokenOrder {
		out[i] = g.tokens[id]
	}
	return out
}

// Productions returns every production pattern in declaration order.
func (g *Grammar) Productions() []*ProductionPattern {
	out := make([]*ProductionPattern, len(g.prodOrder))
	for i, id := range g.prodOrder {
		out[i] = g.productions[id]
	}
	return out
}

// Prepared reports whether analyzer.Prepare has successfully run.
func (g *Grammar) Prepared() bool { return g.prepared }

// MarkPrepared is called by the analyzer once look-ahead resolution
// succeeds. Exported so the analyzer package (which must not be imported
// here, to avoid a cycle) can flip the flag without grammar depending on it.
func (g *Grammar) MarkPrepared() { g.prepared = true }

// AddWarning records a non-fatal construction-time observation (spec §9.1:
// overlapping StringDFA terminals are flagged, not rejected).
func (g *Grammar) AddWarning(msg string) { g.warnings = append(g.warnings, msg) }

// Warnings returns every non-fatal warning recorded during construction.
func (g *Grammar) Warnings() []string { return g.warnings }

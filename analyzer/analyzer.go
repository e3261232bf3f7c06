// Package analyzer implements the LookAheadAnalyzer (spec §4.7): an
// iterative, per-alternative resolver that computes a bounded look-ahead
// set for every element, alternative, and production in a grammar,
// detects inherent ambiguity between sibling alternatives, detects
// infinite derivation loops, and promotes the first conflicting
// alternative to a production's default. Grounded on the teacher's FIRST
// set fixpoint (tooling/ll1/first.go) and conflict/table-building logic
// (tooling/ll1/table.go), generalized from a single fixed k=1 terminal
// set per symbol to a bounded set of token sequences up to a configurable
// maximum length, expressed here with lookahead.Set instead of a plain
// map[string]bool.
package analyzer

import (
	"fmt"
	"io"

	"github.com/grammarkit/parsekit/errs"
	"github.com/grammarkit/parsekit/grammar"
	"github.com/grammarkit/parsekit/lookahead"
)

// DefaultMaxLength bounds how many tokens a look-ahead sequence may carry
// before analysis gives up distinguishing alternatives further and
// reports ambiguity instead of growing sequences without limit.
const DefaultMaxLength = 4

// Analyzer resolves look-ahead sets for one grammar.
type Analyzer struct {
	g       *grammar.Grammar
	maxLen  int
	visited map[string]bool // "(name,k)" stack entries currently being resolved, for cycle detection
}

// Prepare runs structural validation, then look-ahead resolution, over g,
// and marks g prepared on success. This is the package-level entry point
// parser.New calls when it is handed an unprepared grammar; it lives here
// rather than on Grammar to avoid grammar importing analyzer (spec §4.7's resolution depends on the grammar
// model, so the dependency can only run one way).
func Prepare(g *grammar.Grammar) []*errs.ConstructionError {
	if errs := g.Validate(); len(errs) > 0 {
		return errs
	}
	a := &Analyzer{g: g, maxLen: DefaultMaxLength, visited: make(map[string]bool)}
	if err := a.resolveAll(); err != nil {
		return []*errs.ConstructionError{err}
	}
	g.MarkPrepared()
	return nil
}

func (a *Analyzer) resolveAll() *errs.ConstructionError {
	for _, p := range a.g.Productions() {
		if _, err := a.resolveProduction(p); err != nil {
			return err
		}
	}
	return nil
}

// resolveProduction computes and caches p's look-ahead set: the union of
// its alternatives' sets, after resolving conflicts between sibling
// alternatives and promoting a default where needed.
func (a *Analyzer) resolveProduction(p *grammar.ProductionPattern) (*lookahead.Set, *errs.ConstructionError) {
	if p.LookAhead() != nil {
		return p.LookAhead(), nil
	}
	key := fmt.Sprintf("%s@%d", p.Name, a.maxLen)
	if a.visited[key] {
		return nil, &errs.ConstructionError{
			Kind: errs.INFINITE_LOOP, Name: p.Name,
			Message: "production's look-ahead depends on itself without consuming a token first",
		}
	}
	a.visited[key] = true
	defer delete(a.visited, key)

	altSets := make([]*lookahead.Set, len(p.Alternatives))
	for i, alt := range p.Alternatives {
		set, err := a.resolveAlternative(alt)
		if err != nil {
			return nil, err
		}
		altSets[i] = set
	}

	if err := a.resolveConflicts(p, altSets); err != nil {
		return nil, err
	}

	union := lookahead.New(a.maxLen)
	for _, s := range altSets {
		union.AddSet(s)
	}
	p.SetLookAhead(union)
	return union, nil
}

// resolveConflicts finds overlapping alternatives (excluding the pair
// where one is already the designated default) and, for the first
// pairwise conflict found in declaration order, promotes the earlier
// alternative to default rather than failing outright — spec §9.3's
// "first-conflicting-alternative wins" resolution of Open Question 3.
// Once a default exists, any further conflict not involving the default
// alternative is still reported as inherent ambiguity: promotion only
// ever resolves one alternative's conflicts, not every alternative's.
func (a *Analyzer) resolveConflicts(p *grammar.ProductionPattern, altSets []*lookahead.Set) *errs.ConstructionError {
	for i := 0; i < len(p.Alternatives); i++ {
		for j := i + 1; j < len(p.Alternatives); j++ {
			if !altSets[i].IsOverlap(altSets[j]) {
				continue
			}
			ai, aj := p.Alternatives[i], p.Alternatives[j]
			if p.Default == ai || p.Default == aj {
				continue
			}
			if p.Default == nil {
				if err := p.SetDefaultAlternative(ai); err != nil {
					return err.(*errs.ConstructionError)
				}
				continue
			}
			return &errs.ConstructionError{
				Kind: errs.INHERENT_AMBIGUITY, Name: p.Name,
				Message: fmt.Sprintf("alternatives %d and %d of %q cannot be distinguished within %d tokens of look-ahead", i, j, p.Name, a.maxLen),
			}
		}
	}
	return nil
}

// resolveAlternative computes an alternative's look-ahead set as the
// combination of its elements' sets in order, stopping early once a
// mandatory, non-optional element has been folded in (later elements
// can't affect what's needed to choose this alternative, since the
// alternative is already distinguishable by then in the common case) —
// mirrored on the teacher's FIRST-of-sequence computation
// (computeFirstOfProduction's SynSequence case), generalized from "first
// non-nullable terminal" to "combine bounded sequences until the combined
// set reaches maxLen or a mandatory element is folded in".
func (a *Analyzer) resolveAlternative(alt *grammar.ProductionPatternAlternative) (*lookahead.Set, *errs.ConstructionError) {
	if alt.LookAhead() != nil {
		return alt.LookAhead(), nil
	}
	result := lookahead.New(a.maxLen)
	result.AddEmpty()
	combining := true
	for _, elem := range alt.Elements {
		elemSet, err := a.resolveElement(elem)
		if err != nil {
			return nil, err
		}
		// Every element needs its own resolved set for the parser's
		// per-repetition decisions, but only the leading run up to (and
		// including) the first mandatory element contributes to the
		// alternative's own look-ahead: once a mandatory element is
		// reached, the alternative is already distinguishable by then.
		if combining {
			result = result.CreateCombination(elemSet)
			if !elem.Optional() {
				combining = false
			}
		}
	}
	alt.SetLookAhead(result)
	return result, nil
}

// resolveElement computes one element's look-ahead set: a single token's
// own id for a token element, or (for a production element) the
// referenced production's set, repeated to model the element's own
// min/max repetition when it repeats.
func (a *Analyzer) resolveElement(elem *grammar.ProductionPatternElement) (*lookahead.Set, *errs.ConstructionError) {
	if elem.LookAhead() != nil {
		return elem.LookAhead(), nil
	}
	var base *lookahead.Set
	if elem.IsToken {
		base = lookahead.New(a.maxLen)
		base.Add([]int{elem.ID}, false)
	} else {
		prod := a.g.Production(elem.ID)
		set, err := a.resolveProduction(prod)
		if err != nil {
			return nil, err
		}
		base = set
	}
	if elem.Repeated() {
		base = base.CreateRepetitive()
	}
	if elem.Optional() {
		empty := lookahead.New(a.maxLen)
		empty.AddEmpty()
		base = base.Union(empty)
	}
	elem.SetLookAhead(base)
	return base, nil
}

// Dump writes a human-readable summary of every production's and
// alternative's resolved look-ahead set, grounded on the teacher's
// PrintFirstSets/PrintFollowSets (tooling/ll1/debug.go) sorted,
// deterministic text-table format — a supplemental debugging aid spec.md
// itself doesn't require but any production LL(k) tool needs.
func Dump(g *grammar.Grammar, w io.Writer) {
	for _, p := range g.Productions() {
		set := p.LookAhead()
		if set == nil {
			fmt.Fprintf(w, "%s: (unresolved)\n", p.Name)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", p.Name, formatSet(set))
		for i, alt := range p.Alternatives {
			tag := ""
			if p.Default == alt {
				tag = " [default]"
			}
			fmt.Fprintf(w, "  alt %d%s: %s\n", i, tag, formatSet(alt.LookAhead()))
		}
	}
}

func formatSet(set *lookahead.Set) string {
	if set == nil {
		return "{}"
	}
	seqs := set.Sequences()
	parts := make([]string, len(seqs))
	for i, seq := range seqs {
		parts[i] = fmt.Sprint(seq.Tokens)
		if seq.Repetitive {
			parts[i] += "..."
		}
	}
	return fmt.Sprintf("{%v}", parts)
}

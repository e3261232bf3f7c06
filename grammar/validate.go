package grammar

import (
	"fmt"

	"github.com/grammarkit/parsekit/errs"
)

// Validate runs every structural check spec §3's invariants require that
// can only be done once the whole grammar is known: completeness
// (every referenced id resolves), left recursion, and empty-match
// alternatives. Duplicate ids and duplicate alternatives are rejected
// eagerly at add time instead (see construct.go). Every problem found is
// returned, not just the first — construction errors are fatal but the
// grammar author still deserves to see the whole list in one pass.
func (g *Grammar) Validate() []*errs.ConstructionError {
	var out []*errs.ConstructionError

	if len(g.productions) == 0 {
		out = append(out, &errs.ConstructionError{Kind: errs.INVALID_PARSER, Message: "grammar has no productions"})
		return out
	}

	out = append(out, g.checkReferences()...)
	if len(out) > 0 {
		// Left recursion and nullability analysis assume every reference
		// resolves; don't compound the diagnostics with bogus follow-on noise.
		return out
	}
	out = append(out, g.checkLeftRecursion()...)
	out = append(out, g.checkEmptyMatch()...)
	return out
}

func (g *Grammar) checkReferences() []*errs.ConstructionError {
	var out []*errs.ConstructionError
	for _, id := range g.prodOrder {
		p := g.productions[id]
		for _, alt := range p.Alternatives {
			for _, elem := range alt.Elements {
				if elem.IsToken {
					if _, ok := g.tokens[elem.ID]; !ok {
						out = append(out, &errs.ConstructionError{
							Kind: errs.INVALID_PRODUCTION, Name: p.Name,
							Message: fmt.Sprintf("references undefined token id %d", elem.ID),
						})
					}
				} else {
					if _, ok := g.productions[elem.ID]; !ok {
						out = append(out, &errs.ConstructionError{
							Kind: errs.INVALID_PRODUCTION, Name: p.Name,
							Message: fmt.Sprintf("references undefined production id %d", elem.ID),
						})
					}
				}
			}
		}
	}
	return out
}

// checkLeftRecursion walks, for each production, the leftmost chain of
// element references: a token element with min>0 or a production element
// with min>0 stops the chain (it must consume input first), while min==0
// elements let the walk continue into the next element of the same
// alternative. Finding the origin production again before any such stop is
// left recursion. Grounded on the teacher's recursive production-rule walk
// in tooling/ll1/first.go (collectTerminalsFromProduction et al.), adapted
// from "collect every terminal" to "can we return to the origin without
// consuming a token".
func (g *Grammar) checkLeftRecursion() []*errs.ConstructionError {
	var out []*errs.ConstructionError
	for _, id := range g.prodOrder {
		visited := map[int]bool{}
		if g.leftRecurses(id, id, visited) {
			out = append(out, &errs.ConstructionError{
				Kind: errs.INVALID_PRODUCTION, Name: g.productions[id].Name,
				Message: "left recursion is not supported",
			})
		}
	}
	return out
}

func (g *Grammar) leftRecurses(originID, currentID int, visited map[int]bool) bool {
	if visited[currentID] {
		return false
	}
	visited[currentID] = true
	prod := g.productions[currentID]
	for _, alt := range prod.Alternatives {
		for _, elem := range alt.Elements {
			if elem.IsToken {
				if elem.Min > 0 {
					break
				}
				continue
			}
			if elem.ID == originID {
				return true
			}
			if g.leftRecurses(originID, elem.ID, visited) {
				return true
			}
			if elem.Min > 0 {
				break
			}
		}
	}
	return false
}

// checkEmptyMatch computes, by fixpoint, which productions can derive the
// empty sequence, then flags every alternative whose elements are all
// individually nullable — exactly such an alternative matches the empty
// sequence, which spec §3 forbids. Grounded directly on the teacher's
// nullable-tracking fixpoint in tooling/ll1/first.go's ComputeFirstSets,
// adapted from the teacher's Terminal/NonTerminal/Sequence ADT to element
// min/max repetition.
func (g *Grammar) checkEmptyMatch() []*errs.ConstructionError {
	nullable := make(map[int]bool)
	changed := true
	for changed {
		changed = false
		for _, id := range g.prodOrder {
			if nullable[id] {
				continue
			}
			p := g.productions[id]
			for _, alt := range p.Alternatives {
				if g.altNullable(alt, nullable) {
					nullable[id] = true
					changed = true
					break
				}
			}
		}
	}

	var out []*errs.ConstructionError
	for _, id := range g.prodOrder {
		p := g.productions[id]
		for _, alt := range p.Alternatives {
			if g.altNullable(alt, nullable) {
				out = append(out, &errs.ConstructionError{
					Kind: errs.INVALID_PRODUCTION, Name: p.Name,
					Message: "alternative may match the empty sequence",
				})
			}
		}
	}
	return out
}

func (g *Grammar) altNullable(alt *ProductionPatternAlternative, nullable map[int]bool) bool {
	for _, elem := range alt.Elements {
		if !elemNullable(elem, nullable) {
			return false
		}
	}
	return true
}

func elemNullable(elem *ProductionPatternElement, nullable map[int]bool) bool {
	if elem.Min == 0 {
		return true
	}
	return !elem.IsToken && nullable[elem.ID]
}

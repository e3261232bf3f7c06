// Package regex implements the general regex matcher (spec §4.4): the
// fallback used for patterns whose text doesn't parse under the compact
// NFA's strict dialect. Rather than compiling to automaton states, it
// walks a recursive element tree built directly from the parsed AST, the
// way a backtracking matcher does. Every element exposes the full set of
// prefix lengths it can consume at a given position, longest first; a
// sequence's lengths are the elementwise combination of its children's,
// so the top-level match is simply the head of the root element's length
// list (spec §4.4's "skip-counter enumeration for longest match first",
// expressed here as an explicit sorted candidate list instead of an index
// threaded through recursive calls).
package regex

import (
	"sort"

	"github.com/grammarkit/parsekit/automata"
	"github.com/grammarkit/parsekit/automata/regexast"
)

// element enumerates, longest first, every length it can consume reading
// forward from pos in src.
type element interface {
	lengths(src automata.Source, pos int) []int
}

// Matcher compiles one pattern's general matcher tree. A Matcher is
// stateless between calls and may be reused across inputs.
type Matcher struct {
	root element
}

// Compile parses text under the permissive dialect and builds the element
// tree. Unlike the compact NFA, there is no further fallback: a pattern
// rejected here is a hard construction error.
func Compile(text string) (*Matcher, error) {
	node, err := regexast.Parse(text, regexast.Permissive)
	if err != nil {
		return nil, err
	}
	return &Matcher{root: build(node)}, nil
}

// Match returns the longest prefix of src (from position 0) the pattern
// accepts.
func (m *Matcher) Match(src automata.Source) (length int, ok bool) {
	lens := m.root.lengths(src, 0)
	if len(lens) == 0 {
		return 0, false
	}
	return lens[0], true
}

func build(n *regexast.Node) element {
	switch n.Kind {
	case regexast.KindLiteral:
		return literalElem{r: n.Literal}
	case regexast.KindAnyChar:
		return classElem{ranges: regexast.AnyCharRanges()}
	case regexast.KindClass:
		ranges := n.Ranges
		if n.Negate {
			ranges = negate(ranges)
		}
		return classElem{ranges: ranges}
	case regexast.KindConcat:
		children := make([]element, len(n.Children))
		for i, c := range n.Children {
			children[i] = build(c)
		}
		return &seqElem{children: children}
	case regexast.KindAlt:
		children := make([]element, len(n.Children))
		for i, c := range n.Children {
			children[i] = build(c)
		}
		return &altElem{children: children}
	case regexast.KindRepeat:
		return &repeatElem{inner: build(n.Children[0]), min: n.Min, max: n.Max}
	default:
		return emptyElem{}
	}
}

func dedupDesc(xs []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(xs)))
	out := xs[:0]
	var last int
	haveLast := false
	for _, x := range xs {
		if haveLast && x == last {
			continue
		}
		out = append(out, x)
		last, haveLast = x, true
	}
	return out
}

type emptyElem struct{}

func (emptyElem) lengths(_ automata.Source, _ int) []int { return []int{0} }

type literalElem struct{ r rune }

func (e literalElem) lengths(src automata.Source, pos int) []int {
	if src.Peek(pos) == e.r {
		return []int{1}
	}
	return nil
}

type classElem struct{ ranges []regexast.Range }

func (e classElem) in(c rune) bool {
	for _, r := range e.ranges {
		if c >= r.Lo && c <= r.Hi {
			return true
		}
	}
	return false
}

func (e classElem) lengths(src automata.Source, pos int) []int {
	c := src.Peek(pos)
	if c != automata.EOF && e.in(c) {
		return []int{1}
	}
	return nil
}

// seqElem's lengths are every total length obtainable by picking one
// candidate length from each child in turn, each child's candidates
// evaluated at the position left by the previous child's chosen length.
type seqElem struct{ children []element }

func (e *seqElem) lengths(src automata.Source, pos int) []int {
	totals := []int{0}
	cur := pos
	for _, child := range e.children {
		var next []int
		seenAt := map[int][]int{} // position -> already-computed child lengths, avoids recompute per duplicate running total
		for _, t := range totals {
			p := cur + t
			cl, ok := seenAt[p]
			if !ok {
				cl = child.lengths(src, p)
				seenAt[p] = cl
			}
			for _, l := range cl {
				next = append(next, t+l)
			}
		}
		if len(next) == 0 {
			return nil
		}
		totals = dedupDesc(next)
	}
	return totals
}

// altElem's lengths are the union of every branch's lengths, longest
// first.
type altElem struct{ children []element }

func (e *altElem) lengths(src automata.Source, pos int) []int {
	var all []int
	for _, c := range e.children {
		all = append(all, c.lengths(src, pos)...)
	}
	if len(all) == 0 {
		return nil
	}
	return dedupDesc(all)
}

// repeatElem matches {min,max} repetitions of inner. Each repetition's
// longest candidate is taken greedily (this dialect never needs a
// repeated element to itself backtrack across multiple candidate widths,
// since token patterns are built from single-width literals and classes
// at the repeated position) to build a running total per repetition
// count, then every count in [min,max] actually reached is offered,
// longest first.
type repeatElem struct {
	inner    element
	min, max int
}

func (e *repeatElem) lengths(src automata.Source, pos int) []int {
	limit := e.max
	if limit == regexast.Unbounded {
		limit = 1 << 20
	}
	totals := []int{0}
	cur := pos
	reps := 0
	for reps < limit {
		cl := e.inner.lengths(src, cur)
		if len(cl) == 0 || cl[0] == 0 {
			break
		}
		cur += cl[0]
		reps++
		totals = append(totals, totals[len(totals)-1]+cl[0])
	}
	if reps < e.min {
		return nil
	}
	var out []int
	for r := reps; r >= e.min; r-- {
		out = append(out, totals[r])
	}
	return out
}

func negate(ranges []regexast.Range) []regexast.Range {
	type pair struct{ lo, hi rune }
	sorted := make([]pair, len(ranges))
	for i, r := range ranges {
		sorted[i] = pair{r.Lo, r.Hi}
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].lo > sorted[j].lo; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	var out []regexast.Range
	lo := rune(0)
	for _, r := range sorted {
		if r.lo > lo {
			out = append(out, regexast.Range{Lo: lo, Hi: r.lo - 1})
		}
		if r.hi+1 > lo {
			lo = r.hi + 1
		}
	}
	if lo <= 0x10FFFF {
		out = append(out, regexast.Range{Lo: lo, Hi: 0x10FFFF})
	}
	return out
}

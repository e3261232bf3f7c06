// Package nfa implements TokenNFA (spec §4.3): a combined nondeterministic
// automaton over every regular-expression token pattern that parses under
// the strict dialect, simulated one input character at a time over an
// epsilon-closed frontier of states so that one pass over the input
// reports the longest match across every installed pattern, tie-broken by
// lowest pattern id.
package nfa

import (
	"sort"

	"github.com/grammarkit/parsekit/automata"
	"github.com/grammarkit/parsekit/automata/regexast"
)

// NFA is a TokenNFA container. Patterns are added incrementally; each
// successfully parsed pattern is spliced into the shared state space as a
// new branch off a single start state. Patterns whose text doesn't parse
// under the strict dialect are rejected with DialectError so the caller
// (the scanner's pattern installer) can retry them against the general
// regex matcher instead.
type NFA struct {
	b          *builder
	start      int
	patternIDs []int // in install order, for deterministic tie-breaking

	step0 [128]*stepCache
}

type stepCache struct {
	computed bool
	frontier []int
}

// New creates an empty TokenNFA container.
func New() *NFA {
	b := newBuilder()
	start := b.newState()
	return &NFA{b: b, start: start}
}

// AddPattern parses text under the strict regex dialect and splices the
// resulting fragment's accept state into the shared state space, tagging
// it with patternID. Returns the DialectError produced by regexast.Parse
// on failure; DialectError.Exceeded distinguishes "try the general
// matcher" from "reject outright".
func (n *NFA) AddPattern(patternID int, text string) error {
	node, err := regexast.Parse(text, regexast.Strict)
	if err != nil {
		return err
	}
	f := n.b.compile(node)
	n.b.addEpsilon(n.start, f.start)
	n.b.states[f.accept].patternID = patternID
	n.patternIDs = append(n.patternIDs, patternID)
	// Invalidate the first-step cache: the branch structure changed.
	for i := range n.step0 {
		n.step0[i] = nil
	}
	return nil
}

// epsilonClosure returns the sorted, deduplicated set of states reachable
// from seed by following only epsilon edges (seed states included).
func (n *NFA) epsilonClosure(seed []int) []int {
	seen := make(map[int]bool, len(seed)*2)
	var stack []int
	for _, s := range seed {
		if !seen[s] {
			seen[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.b.states[s].epsilon {
			if !seen[e] {
				seen[e] = true
				stack = append(stack, e)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// advance consumes one character from every state in frontier, returning
// the (not yet epsilon-closed) set of reachable states.
func (n *NFA) advance(frontier []int, c rune) []int {
	var next []int
	for _, s := range frontier {
		for _, t := range n.b.states[s].trans {
			if c >= t.Lo && c <= t.Hi {
				next = append(next, t.To)
			}
		}
	}
	return next
}

// acceptedPattern returns the lowest-id pattern accepted by any state in
// frontier, and whether any state accepts at all. Lowest id, not
// insertion order, is the scanner's documented tie-break (spec §4.1).
func (n *NFA) acceptedPattern(frontier []int) (patternID int, ok bool) {
	best := -1
	for _, s := range frontier {
		pid := n.b.states[s].patternID
		if pid < 0 {
			continue
		}
		if best < 0 || pid < best {
			best = pid
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// Match runs the queue-based simulation described in spec §4.3: at each
// step the current frontier (already epsilon-closed) is intersected
// against the next input character to build the next step's frontier,
// which is then epsilon-closed before repeating. The longest prefix for
// which any state accepts is remembered as the running best; ties between
// patterns accepted at the same length resolve to the lowest pattern id
// at that length specifically (not globally), matching the scanner's
// per-offset tie-break.
func (n *NFA) Match(src automata.Source) (patternID int, length int, ok bool) {
	frontier := n.epsilonClosure([]int{n.start})
	offset := 0
	bestLen := -1
	bestPattern := 0
	if pid, matched := n.acceptedPattern(frontier); matched {
		bestLen, bestPattern = 0, pid
	}
	for {
		c := src.Peek(offset)
		if c == automata.EOF || len(frontier) == 0 {
			break
		}
		var next []int
		if offset == 0 && c >= 0 && c < 128 {
			next = n.step0Next(frontier, c)
		} else {
			next = n.advance(frontier, c)
		}
		if len(next) == 0 {
			break
		}
		offset++
		frontier = n.epsilonClosure(next)
		if pid, matched := n.acceptedPattern(frontier); matched {
			bestLen, bestPattern = offset, pid
		}
	}
	if bestLen < 0 {
		return 0, 0, false
	}
	return bestPattern, bestLen, true
}

// step0Next returns the (not yet epsilon-closed) states reachable by
// consuming ASCII character c from the start state's closure, memoized
// per character — the "128-entry table indexed by the first ASCII
// character" optimization spec §4.3 calls for, bypassing the transition
// scan on every repeated first character across many Match calls (one per
// token the scanner pulls from the same installed pattern set).
func (n *NFA) step0Next(startFrontier []int, c rune) []int {
	if cached := n.step0[c]; cached != nil && cached.computed {
		return cached.frontier
	}
	next := n.advance(startFrontier, c)
	n.step0[c] = &stepCache{computed: true, frontier: next}
	return next
}

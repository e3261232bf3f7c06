// Package lookahead implements LookAheadSet: sets of bounded token-id
// sequences with the union/intersection/filter/combination/repetition
// operations the analyzer needs (spec §4.6). There is no direct teacher
// analogue — the teacher's LL(1) parser (tooling/ll1) only ever needs
// single-token FIRST/FOLLOW sets — so this package generalizes the
// teacher's plain `map[string]bool` FIRST-set representation
// (tooling/ll1/first.go) from single symbols to bounded sequences, using
// github.com/emirpasic/gods/v2 for the ordered "initial tokens" set and
// github.com/samber/lo for the slice-level set algebra.
package lookahead

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/v2/sets/hashset"
	"github.com/samber/lo"
)

// Sequence is one bounded token-id sequence, plus the "repetitive" tag that
// marks sequences arising from a cycle in the grammar (spec glossary:
// "repetitive sequence").
type Sequence struct {
	Tokens     []int
	Repetitive bool
}

func (s Sequence) key() string {
	var b strings.Builder
	for i, t := range s.Tokens {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}

// Peeker is the minimal view of a token source IsNext needs: the id of the
// token `offset` positions ahead, if one exists.
type Peeker interface {
	PeekTokenID(offset int) (id int, ok bool)
}

// Set is a LookAheadSet: a collection of Sequences no longer than MaxLen,
// each either ordinary or repetitive.
type Set struct {
	MaxLen  int
	members map[string]Sequence
}

// New creates an empty Set bounded to maxLen.
func New(maxLen int) *Set {
	return &Set{MaxLen: maxLen, members: make(map[string]Sequence)}
}

// clone returns a deep-enough copy (sequences themselves are treated as
// immutable once added, so sharing the []int slices is safe).
func (s *Set) clone() *Set {
	out := New(s.MaxLen)
	for k, v := range s.members {
		out.members[k] = v
	}
	return out
}

// Add inserts a sequence, clamping it to MaxLen and merging the repetitive
// tag with any existing equal sequence (a sequence is repetitive if it was
// ever added as such).
func (s *Set) Add(tokens []int, repetitive bool) {
	if s.MaxLen >= 0 && len(tokens) > s.MaxLen {
		tokens = tokens[:s.MaxLen]
	}
	cp := append([]int(nil), tokens...)
	seq := Sequence{Tokens: cp, Repetitive: repetitive}
	key := seq.key()
	if existing, ok := s.members[key]; ok && existing.Repetitive {
		return
	}
	s.members[key] = seq
}

// AddEmpty inserts the empty sequence.
func (s *Set) AddEmpty() { s.Add(nil, false) }

// AddSet merges every member of other into s, preserving repetitive tags.
func (s *Set) AddSet(other *Set) {
	if other == nil {
		return
	}
	for _, seq := range other.members {
		s.Add(seq.Tokens, seq.Repetitive)
	}
}

// Size returns the number of distinct sequences in the set.
func (s *Set) Size() int { return len(s.members) }

// Sequences returns the set's members in a deterministic order (shortest
// first, then lexicographic by token id), useful for debug dumps and tests.
func (s *Set) Sequences() []Sequence {
	out := make([]Sequence, 0, len(s.members))
	for _, seq := range s.members {
		out = append(out, seq)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Tokens, out[j].Tokens
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out
}

// MinLength returns the shortest member length, or 0 for an empty set.
func (s *Set) MinLength() int {
	if len(s.members) == 0 {
		return 0
	}
	min := -1
	for _, seq := range s.members {
		if min == -1 || len(seq.Tokens) < min {
			min = len(seq.Tokens)
		}
	}
	return min
}

// LongestMember returns the longest member length, or 0 for an empty set.
func (s *Set) LongestMember() int {
	max := 0
	for _, seq := range s.members {
		if len(seq.Tokens) > max {
			max = len(seq.Tokens)
		}
	}
	return max
}

// Union returns a new set containing every member of s and other.
func (s *Set) Union(other *Set) *Set {
	out := s.clone()
	out.AddSet(other)
	return out
}

// Intersects reports whether s and other share at least one identical
// sequence.
func (s *Set) Intersects(other *Set) bool {
	if other == nil {
		return false
	}
	for k := range s.members {
		if _, ok := other.members[k]; ok {
			return true
		}
	}
	return false
}

// CreateIntersection returns the members present, identically, in both sets.
func (s *Set) CreateIntersection(other *Set) *Set {
	maxLen := s.MaxLen
	out := New(maxLen)
	if other == nil {
		return out
	}
	for k, seq := range s.members {
		if o, ok := other.members[k]; ok {
			out.Add(seq.Tokens, seq.Repetitive || o.Repetitive)
		}
	}
	return out
}

// isPrefixOrEqual reports whether a is a prefix of b or equal to b.
func isPrefixOrEqual(a, b []int) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsOverlap reports whether any member of s is a prefix of, or equal to,
// any member of other.
func (s *Set) IsOverlap(other *Set) bool {
	if other == nil {
		return false
	}
	for _, a := range s.members {
		for _, b := range other.members {
			if isPrefixOrEqual(a.Tokens, b.Tokens) || isPrefixOrEqual(b.Tokens, a.Tokens) {
				return true
			}
		}
	}
	return false
}

// CreateOverlaps returns the subset of s whose members are a prefix of, or
// equal to, some member of other.
func (s *Set) CreateOverlaps(other *Set) *Set {
	out := New(s.MaxLen)
	if other == nil {
		return out
	}
	for _, a := range s.members {
		for _, b := range other.members {
			if isPrefixOrEqual(a.Tokens, b.Tokens) {
				out.Add(a.Tokens, a.Repetitive)
				break
			}
		}
	}
	return out
}

// CreateCombination Cartesian-concatenates s with other, clamping every
// resulting sequence to s.MaxLen. A sequence is repetitive if either of its
// two source sequences was.
func (s *Set) CreateCombination(other *Set) *Set {
	out := New(s.MaxLen)
	if other == nil || other.Size() == 0 {
		return s.clone()
	}
	if s.Size() == 0 {
		return out
	}
	for _, a := range s.members {
		for _, b := range other.members {
			combined := make([]int, 0, len(a.Tokens)+len(b.Tokens))
			combined = append(combined, a.Tokens...)
			combined = append(combined, b.Tokens...)
			out.Add(combined, a.Repetitive || b.Repetitive)
		}
	}
	return out
}

// CreateFilter removes sequences from s that cannot extend any sequence in
// probe: a member of s survives only if it is a prefix of some probe member,
// or some probe member is a prefix of it.
func (s *Set) CreateFilter(probe *Set) *Set {
	if probe == nil || probe.Size() == 0 {
		return s.clone()
	}
	out := New(s.MaxLen)
	probeSeqs := probe.Sequences()
	for _, a := range s.members {
		keep := lo.SomeBy(probeSeqs, func(b Sequence) bool {
			return isPrefixOrEqual(a.Tokens, b.Tokens) || isPrefixOrEqual(b.Tokens, a.Tokens)
		})
		if keep {
			out.Add(a.Tokens, a.Repetitive)
		}
	}
	return out
}

// CreateNextSet returns, among the sequences starting with tokenID, their
// tails with that leading token dropped.
func (s *Set) CreateNextSet(tokenID int) *Set {
	out := New(s.MaxLen)
	for _, seq := range s.members {
		if len(seq.Tokens) > 0 && seq.Tokens[0] == tokenID {
			out.Add(seq.Tokens[1:], seq.Repetitive)
		}
	}
	return out
}

// CreateRepetitive returns a copy of s with every member marked repetitive.
func (s *Set) CreateRepetitive() *Set {
	out := New(s.MaxLen)
	for _, seq := range s.members {
		out.Add(seq.Tokens, true)
	}
	return out
}

// HasRepetitive reports whether any member of s is marked repetitive.
func (s *Set) HasRepetitive() bool {
	for _, seq := range s.members {
		if seq.Repetitive {
			return true
		}
	}
	return false
}

// NonEmpty returns a copy of s with the empty sequence removed. A set built
// for an optional element unions in the empty sequence so the element can be
// skipped when choosing between sibling alternatives; that same set is the
// wrong thing to test when deciding whether *one more repetition* of the
// element is present, since IsNext always reports true once a set contains
// the empty sequence. Callers making that decision should test against
// NonEmpty() instead, so the check reflects the element's FIRST set.
func (s *Set) NonEmpty() *Set {
	out := New(s.MaxLen)
	for k, seq := range s.members {
		if len(seq.Tokens) == 0 {
			continue
		}
		out.members[k] = seq
	}
	return out
}

// IsNext reports whether the next 1..k tokens available from peeker form a
// member of s. k defaults to s.LongestMember() when 0.
func (s *Set) IsNext(peeker Peeker, k int) bool {
	if k <= 0 {
		k = s.LongestMember()
		if k == 0 {
			k = 1
		}
	}
	lookahead := make([]int, 0, k)
	for i := 0; i < k; i++ {
		id, ok := peeker.PeekTokenID(i)
		if !ok {
			break
		}
		lookahead = append(lookahead, id)
	}
	for _, seq := range s.members {
		if len(seq.Tokens) == 0 {
			return true
		}
		if len(seq.Tokens) <= len(lookahead) && intSliceEqual(seq.Tokens, lookahead[:len(seq.Tokens)]) {
			return true
		}
	}
	return false
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// InitialTokens returns the set of first tokens across all members, in
// ascending order, for use in diagnostic messages (spec glossary: "initial
// tokens").
func (s *Set) InitialTokens() []int {
	set := hashset.New[int]()
	for _, seq := range s.members {
		if len(seq.Tokens) > 0 {
			set.Add(seq.Tokens[0])
		}
	}
	out := set.Values()
	sort.Ints(out)
	return out
}

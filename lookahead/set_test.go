package lookahead

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePeeker struct {
	ids []int
}

func (f fakePeeker) PeekTokenID(offset int) (int, bool) {
	if offset < 0 || offset >= len(f.ids) {
		return 0, false
	}
	return f.ids[offset], true
}

func TestAddClampsToMaxLen(t *testing.T) {
	s := New(2)
	s.Add([]int{1, 2, 3, 4}, false)
	require.Equal(t, 1, s.Size())
	require.Equal(t, []int{1, 2}, s.Sequences()[0].Tokens)
}

func TestAddRepetitiveSticky(t *testing.T) {
	s := New(4)
	s.Add([]int{1, 2}, true)
	s.Add([]int{1, 2}, false) // must not downgrade an existing repetitive member
	require.True(t, s.Sequences()[0].Repetitive)
}

func TestUnionAndSize(t *testing.T) {
	a := New(4)
	a.Add([]int{1}, false)
	b := New(4)
	b.Add([]int{2}, false)
	u := a.Union(b)
	require.Equal(t, 2, u.Size())
	// originals untouched
	require.Equal(t, 1, a.Size())
}

func TestIntersectsAndCreateIntersection(t *testing.T) {
	a := New(4)
	a.Add([]int{1}, false)
	a.Add([]int{2}, false)
	b := New(4)
	b.Add([]int{2}, false)
	b.Add([]int{3}, false)

	require.True(t, a.Intersects(b))
	inter := a.CreateIntersection(b)
	require.Equal(t, 1, inter.Size())
	require.Equal(t, []int{2}, inter.Sequences()[0].Tokens)
}

func TestIsOverlapPrefixEitherDirection(t *testing.T) {
	a := New(4)
	a.Add([]int{1, 2}, false)
	b := New(4)
	b.Add([]int{1}, false)
	require.True(t, a.IsOverlap(b), "b's member is a prefix of a's")

	c := New(4)
	c.Add([]int{9}, false)
	require.False(t, a.IsOverlap(c))
}

func TestCreateCombinationCartesian(t *testing.T) {
	a := New(4)
	a.Add([]int{1}, false)
	a.Add([]int{2}, false)
	b := New(4)
	b.Add([]int{9}, false)

	combined := a.CreateCombination(b)
	require.Equal(t, 2, combined.Size())
	seqs := combined.Sequences()
	require.Equal(t, []int{1, 9}, seqs[0].Tokens)
	require.Equal(t, []int{2, 9}, seqs[1].Tokens)
}

func TestCreateCombinationWithEmptyOtherReturnsClone(t *testing.T) {
	a := New(4)
	a.Add([]int{1}, false)
	empty := New(4)
	combined := a.CreateCombination(empty)
	require.Equal(t, 1, combined.Size())
	require.Equal(t, []int{1}, combined.Sequences()[0].Tokens)
}

func TestCreateCombinationClampsToMaxLen(t *testing.T) {
	a := New(2)
	a.Add([]int{1}, false)
	b := New(2)
	b.Add([]int{2, 3}, false)
	combined := a.CreateCombination(b)
	require.Equal(t, []int{1, 2}, combined.Sequences()[0].Tokens)
}

func TestCreateRepetitiveMarksEveryMember(t *testing.T) {
	s := New(4)
	s.Add([]int{1}, false)
	s.Add([]int{2}, false)
	rep := s.CreateRepetitive()
	require.True(t, rep.HasRepetitive())
	for _, seq := range rep.Sequences() {
		require.True(t, seq.Repetitive)
	}
	require.False(t, s.HasRepetitive(), "original set must be untouched")
}

func TestIsNextMatchesPrefixOfPeek(t *testing.T) {
	s := New(4)
	s.Add([]int{1, 2}, false)
	s.Add([]int{3}, false)

	require.True(t, s.IsNext(fakePeeker{ids: []int{1, 2, 99}}, 0))
	require.True(t, s.IsNext(fakePeeker{ids: []int{3, 99}}, 0))
	require.False(t, s.IsNext(fakePeeker{ids: []int{9}}, 0))
}

func TestIsNextEmptySequenceAlwaysMatches(t *testing.T) {
	s := New(4)
	s.AddEmpty()
	require.True(t, s.IsNext(fakePeeker{ids: nil}, 0))
	require.True(t, s.IsNext(fakePeeker{ids: []int{1, 2}}, 0))
}

func TestNonEmptyDropsEmptySequenceFromIsNextDecision(t *testing.T) {
	s := New(4)
	s.AddEmpty()
	s.Add([]int{1}, false)

	require.True(t, s.IsNext(fakePeeker{ids: []int{9}}, 0), "raw set always matches once it contains the empty sequence")

	stripped := s.NonEmpty()
	require.True(t, stripped.IsNext(fakePeeker{ids: []int{1}}, 0))
	require.False(t, stripped.IsNext(fakePeeker{ids: []int{9}}, 0))
}

func TestIsNextShortInputFailsLongerMember(t *testing.T) {
	s := New(4)
	s.Add([]int{1, 2}, false)
	require.False(t, s.IsNext(fakePeeker{ids: []int{1}}, 0))
}

func TestInitialTokensSortedAndDeduped(t *testing.T) {
	s := New(4)
	s.Add([]int{3, 1}, false)
	s.Add([]int{1, 2}, false)
	s.Add([]int{2}, false)
	require.Equal(t, []int{1, 2, 3}, s.InitialTokens())
}

func TestMinAndLongestMember(t *testing.T) {
	s := New(4)
	s.Add([]int{1}, false)
	s.Add([]int{1, 2, 3}, false)
	require.Equal(t, 1, s.MinLength())
	require.Equal(t, 3, s.LongestMember())
}

func TestCreateNextSetDropsLeadingToken(t *testing.T) {
	s := New(4)
	s.Add([]int{1, 2}, false)
	s.Add([]int{1, 3}, false)
	s.Add([]int{4}, false)

	next := s.CreateNextSet(1)
	require.Equal(t, 2, next.Size())
	seqs := next.Sequences()
	require.Equal(t, []int{2}, seqs[0].Tokens)
	require.Equal(t, []int{3}, seqs[1].Tokens)
}

func TestCreateFilterKeepsOverlappingPrefixes(t *testing.T) {
	s := New(4)
	s.Add([]int{1, 2}, false)
	s.Add([]int{5}, false)

	probe := New(4)
	probe.Add([]int{1}, false)

	filtered := s.CreateFilter(probe)
	require.Equal(t, 1, filtered.Size())
	require.Equal(t, []int{1, 2}, filtered.Sequences()[0].Tokens)
}

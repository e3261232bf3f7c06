package regexast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLiteralConcat(t *testing.T) {
	n, err := Parse("ab", Strict)
	require.NoError(t, err)
	require.Equal(t, KindConcat, n.Kind)
	require.Len(t, n.Children, 2)
	require.Equal(t, KindLiteral, n.Children[0].Kind)
	require.Equal(t, 'a', n.Children[0].Literal)
}

func TestParseAlternation(t *testing.T) {
	n, err := Parse("a|b|c", Strict)
	require.NoError(t, err)
	require.Equal(t, KindAlt, n.Kind)
	require.Len(t, n.Children, 3)
}

func TestParseStarPlusOptional(t *testing.T) {
	n, err := Parse("a*", Strict)
	require.NoError(t, err)
	require.Equal(t, KindRepeat, n.Kind)
	require.Equal(t, 0, n.Min)
	require.Equal(t, Unbounded, n.Max)

	n, err = Parse("a+", Strict)
	require.NoError(t, err)
	require.Equal(t, 1, n.Min)
	require.Equal(t, Unbounded, n.Max)

	n, err = Parse("a?", Strict)
	require.NoError(t, err)
	require.Equal(t, 0, n.Min)
	require.Equal(t, 1, n.Max)
}

func TestParseBoundedRepetition(t *testing.T) {
	n, err := Parse("a{2,5}", Strict)
	require.NoError(t, err)
	require.Equal(t, KindRepeat, n.Kind)
	require.Equal(t, 2, n.Min)
	require.Equal(t, 5, n.Max)

	n, err = Parse("a{3}", Strict)
	require.NoError(t, err)
	require.Equal(t, 3, n.Min)
	require.Equal(t, 3, n.Max)

	n, err = Parse("a{2,}", Strict)
	require.NoError(t, err)
	require.Equal(t, 2, n.Min)
	require.Equal(t, Unbounded, n.Max)
}

func TestParseRejectsZeroZeroBounds(t *testing.T) {
	_, err := Parse("a{0,0}", Strict)
	require.Error(t, err)
}

func TestParseRejectsMaxLessThanMin(t *testing.T) {
	_, err := Parse("a{5,2}", Strict)
	require.Error(t, err)
}

func TestParseRejectsReluctantQuantifier(t *testing.T) {
	_, err := Parse("a*?", Strict)
	require.Error(t, err)

	_, err = Parse("a+?", Strict)
	require.Error(t, err)

	_, err = Parse("a??", Strict)
	require.Error(t, err)
}

func TestParseRejectsPossessiveQuantifier(t *testing.T) {
	_, err := Parse("a*+", Strict)
	require.Error(t, err)
}

func TestParseRejectsAnchors(t *testing.T) {
	_, err := Parse("^a", Strict)
	require.Error(t, err)

	_, err = Parse("a$", Strict)
	require.Error(t, err)
}

func TestParseCharClassSimpleAndNegated(t *testing.T) {
	n, err := Parse("[a-z]", Strict)
	require.NoError(t, err)
	require.Equal(t, KindClass, n.Kind)
	require.False(t, n.Negate)
	require.Equal(t, []Range{{'a', 'z'}}, n.Ranges)

	n, err = Parse("[^0-9]", Strict)
	require.NoError(t, err)
	require.True(t, n.Negate)
}

func TestParseCharClassShorthands(t *testing.T) {
	n, err := Parse(`\d`, Strict)
	require.NoError(t, err)
	require.Equal(t, KindClass, n.Kind)
	require.Equal(t, digitRanges, n.Ranges)

	n, err = Parse(`\w`, Strict)
	require.NoError(t, err)
	require.Equal(t, wordRanges, n.Ranges)
}

func TestParseAnyChar(t *testing.T) {
	n, err := Parse(".", Strict)
	require.NoError(t, err)
	require.Equal(t, KindAnyChar, n.Kind)
}

func TestParseGroupedAlternation(t *testing.T) {
	n, err := Parse("(a|b)c", Strict)
	require.NoError(t, err)
	require.Equal(t, KindConcat, n.Kind)
	require.Equal(t, KindAlt, n.Children[0].Kind)
}

func TestParseStrictRejectsUnknownEscapeOutsideClass(t *testing.T) {
	_, err := Parse(`\.`, Strict)
	require.Error(t, err)
	de, ok := err.(*DialectError)
	require.True(t, ok)
	require.True(t, de.Exceeded, "an unrecognized punctuation escape must be marked as a dialect-exceeded, not hard-rejected, failure")
}

func TestParsePermissiveAcceptsEscapedPunctuation(t *testing.T) {
	n, err := Parse(`\.`, Permissive)
	require.NoError(t, err)
	require.Equal(t, KindLiteral, n.Kind)
	require.Equal(t, '.', n.Literal)
}

func TestParseEscapeInsideClassAlwaysAllowed(t *testing.T) {
	n, err := Parse(`[\.\-]`, Strict)
	require.NoError(t, err)
	require.Equal(t, KindClass, n.Kind)
	require.Len(t, n.Ranges, 2)
}

func TestParseTrailingHyphenIsLiteral(t *testing.T) {
	n, err := Parse("[a-]", Strict)
	require.NoError(t, err)
	require.Equal(t, []Range{{'a', 'a'}, {'-', '-'}}, n.Ranges)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("a)", Strict)
	require.Error(t, err)
}

func TestParseUnterminatedGroup(t *testing.T) {
	_, err := Parse("(a", Strict)
	require.Error(t, err)
}

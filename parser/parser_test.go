package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grammarkit/parsekit/fixtures"
	"github.com/grammarkit/parsekit/grammar"
	"github.com/grammarkit/parsekit/scanner"
	"github.com/grammarkit/parsekit/tree"
)

func newDriver(t *testing.T, input string) *Driver {
	t.Helper()
	g, err := fixtures.NewArithmeticGrammar()
	require.NoError(t, err)
	sc, err := scanner.New(g, false)
	require.NoError(t, err)
	sc.ResetString(input)
	d, cerrs := New(g, sc, Hooks{})
	require.Empty(t, cerrs)
	return d
}

func labelsOf(children []labeled) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Label()
	}
	return out
}

type labeled interface{ Label() string }

func TestParseSingleNumber(t *testing.T) {
	d := newDriver(t, "1")
	node, errLog := d.Parse()
	require.True(t, errLog.Empty())
	require.Equal(t, `Expr{Term{Factor{Atom{Token{NUMBER:"1"}}}}}`, node.String())
}

func TestParseSumFlattensSyntheticTail(t *testing.T) {
	d := newDriver(t, "1 + 2")
	node, errLog := d.Parse()
	require.True(t, errLog.Empty())
	require.Len(t, node.Children, 3, "the synthetic SumTail node must be flattened away")
	require.Equal(t, `Expr{Term{Factor{Atom{Token{NUMBER:"1"}}}} Token{"+":"+"} Term{Factor{Atom{Token{NUMBER:"2"}}}}}`, node.String())
}

func TestParseNestedParenthesesAndPrecedence(t *testing.T) {
	d := newDriver(t, "(1 + 2) * 3")
	node, errLog := d.Parse()
	require.True(t, errLog.Empty())

	// Expr -> Term, with no trailing +/- at the top level.
	require.Len(t, node.Children, 1)
	term := node.Children[0]
	require.Equal(t, "Term", term.Label())
	require.Len(t, term.Children, 3, "Factor, MUL token, Factor, with ProductTail flattened")
	require.Equal(t, `"*"`, term.Children[1].Label())

	parenFactor := term.Children[0]
	atom := parenFactor.Children[0]
	require.Len(t, atom.Children, 3, "LPAREN, nested Expr, RPAREN")
	require.Equal(t, `"("`, atom.Children[0].Label())
	require.Equal(t, `")"`, atom.Children[2].Label())

	nestedExpr := atom.Children[1]
	require.Len(t, nestedExpr.Children, 3, "nested Expr's own SumTail must also flatten")
	require.Equal(t, `"+"`, nestedExpr.Children[1].Label())
}

func TestParseMultipleSumTerms(t *testing.T) {
	d := newDriver(t, "1 + 2 + 3")
	node, errLog := d.Parse()
	require.True(t, errLog.Empty())
	require.Len(t, node.Children, 5, "two SumTail repetitions flatten into two (op, term) pairs")
}

func TestParseReportsErrorOnIncompleteInput(t *testing.T) {
	d := newDriver(t, "1 +")
	_, errLog := d.Parse()
	require.False(t, errLog.Empty())
}

func TestParseReportsErrorOnLeadingUnexpectedToken(t *testing.T) {
	d := newDriver(t, "+ 1")
	_, errLog := d.Parse()
	require.False(t, errLog.Empty())
}

func TestParseRecoversAfterUnexpectedTokenAndDoesNotPanic(t *testing.T) {
	d := newDriver(t, "1 + + 2")
	require.NotPanics(t, func() {
		_, errLog := d.Parse()
		require.False(t, errLog.Empty())
	})
}

func TestParseReportsTrailingInputAfterCompleteMatch(t *testing.T) {
	d := newDriver(t, "1 )")
	node, errLog := d.Parse()
	require.NotNil(t, node)
	require.False(t, errLog.Empty(), "a complete match followed by leftover input must still be flagged")
}

func TestPeekTokenIDImplementsLookaheadPeeker(t *testing.T) {
	d := newDriver(t, "1 + 2")
	id, ok := d.PeekTokenID(0)
	require.True(t, ok)
	require.Equal(t, fixtures.TokNumber, id)

	id, ok = d.PeekTokenID(1)
	require.True(t, ok)
	require.Equal(t, fixtures.TokAdd, id)
}

func TestNewRunsAnalyzerPrepareIfNeeded(t *testing.T) {
	g, err := fixtures.NewArithmeticGrammar()
	require.NoError(t, err)
	require.False(t, g.Prepared())

	sc, err := scanner.New(g, false)
	require.NoError(t, err)
	sc.ResetString("1")

	_, cerrs := New(g, sc, Hooks{})
	require.Empty(t, cerrs)
	require.True(t, g.Prepared())
}

func TestHooksEnterAndChildAreCalled(t *testing.T) {
	g, err := fixtures.NewArithmeticGrammar()
	require.NoError(t, err)
	sc, err := scanner.New(g, false)
	require.NoError(t, err)
	sc.ResetString("1")

	var entered []string
	var childCount int
	hooks := Hooks{
		Enter: func(p *grammar.ProductionPattern) { entered = append(entered, p.Name) },
		Child: func(parent, child *tree.Node) { childCount++ },
	}
	d, cerrs := New(g, sc, hooks)
	require.Empty(t, cerrs)
	_, errLog := d.Parse()
	require.True(t, errLog.Empty())
	require.Contains(t, entered, "Expr")
	require.Contains(t, entered, "Atom")
	require.Greater(t, childCount, 0)
}

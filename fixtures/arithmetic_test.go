package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grammarkit/parsekit/analyzer"
)

func TestNewArithmeticGrammarBuildsWithoutError(t *testing.T) {
	g, err := NewArithmeticGrammar()
	require.NoError(t, err)
	require.NotNil(t, g.StartPattern())
	require.Equal(t, "Expr", g.StartPattern().Name)
}

func TestNewArithmeticGrammarPreparesCleanly(t *testing.T) {
	g, err := NewArithmeticGrammar()
	require.NoError(t, err)
	cerrs := analyzer.Prepare(g)
	require.Empty(t, cerrs, "the seed grammar must validate and resolve look-ahead without construction errors")
	require.True(t, g.Prepared())
}

func TestSumAndProductTailAreMarkedSynthetic(t *testing.T) {
	g, err := NewArithmeticGrammar()
	require.NoError(t, err)
	require.True(t, g.Production(ProdSumTail).Synthetic)
	require.True(t, g.Production(ProdProductTail).Synthetic)
	require.False(t, g.Production(ProdExpr).Synthetic)
}

func TestTokenPatternsRegisteredAsExpected(t *testing.T) {
	g, err := NewArithmeticGrammar()
	require.NoError(t, err)
	require.Len(t, g.Tokens(), 9)
	require.True(t, g.Token(TokWhitespace).Ignore)
	require.Equal(t, "+", g.Token(TokAdd).Text)
}

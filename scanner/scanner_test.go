package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grammarkit/parsekit/grammar"
)

func newTestGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	_, err := g.AddTokenPattern(1, "ADD", grammar.LiteralString, "+", grammar.TokenOptions{})
	require.NoError(t, err)
	_, err = g.AddTokenPattern(2, "NUMBER", grammar.RegularExpression, `[0-9]+`, grammar.TokenOptions{})
	require.NoError(t, err)
	_, err = g.AddTokenPattern(3, "WS", grammar.RegularExpression, `[ \t\r\n]+`, grammar.TokenOptions{Ignore: true})
	require.NoError(t, err)
	_, err = g.AddTokenPattern(4, "BAD", grammar.RegularExpression, `#+`, grammar.TokenOptions{Error: true, ErrorMessage: "no comments allowed"})
	require.NoError(t, err)
	return g
}

func TestScannerProducesTokensAndSkipsIgnored(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("1 + 2")

	tok1, perr, eof := sc.Next()
	require.Nil(t, perr)
	require.False(t, eof)
	require.Equal(t, "1", tok1.Image)
	require.Equal(t, 2, tok1.ID())

	tok2, perr, eof := sc.Next()
	require.Nil(t, perr)
	require.False(t, eof)
	require.Equal(t, "+", tok2.Image)
	require.Equal(t, 1, tok2.ID())

	tok3, perr, eof := sc.Next()
	require.Nil(t, perr)
	require.False(t, eof)
	require.Equal(t, "2", tok3.Image)

	_, _, eof = sc.Next()
	require.True(t, eof)
}

func TestScannerReportsUnexpectedChar(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("@")

	tok, perr, eof := sc.Next()
	require.Nil(t, tok)
	require.False(t, eof)
	require.NotNil(t, perr)
}

func TestScannerReportsErrorFlaggedToken(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("###")

	tok, perr, eof := sc.Next()
	require.Nil(t, tok)
	require.False(t, eof)
	require.NotNil(t, perr)
	require.Equal(t, "no comments allowed", perr.Message)
}

func TestScannerEmptyInputIsImmediateEOF(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("")

	_, _, eof := sc.Next()
	require.True(t, eof)
}

func TestScannerTokenListModeLinksTokens(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, true)
	require.NoError(t, err)
	sc.ResetString("1 +")

	tok1, _, _ := sc.Next()
	tok2, _, _ := sc.Next()

	require.Equal(t, tok2, tok1.Next)
	require.Equal(t, tok1, tok2.Prev)
}

func TestScannerPositionTracking(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("1\n+")

	tok1, _, _ := sc.Next()
	require.Equal(t, 1, tok1.StartLine)
	require.Equal(t, 1, tok1.StartColumn)

	tok2, _, _ := sc.Next()
	require.Equal(t, 2, tok2.StartLine)
	require.Equal(t, 1, tok2.StartColumn)
}

func TestScannerEndPositionIsInclusiveOfLastCharacter(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("1")

	tok, _, _ := sc.Next()
	require.Equal(t, 1, tok.StartLine)
	require.Equal(t, 1, tok.StartColumn)
	require.Equal(t, 1, tok.EndLine)
	require.Equal(t, 1, tok.EndColumn, "a single-character token must end on its own column, not the next character's")
}

func TestScannerEndPositionSpansMultipleCharacters(t *testing.T) {
	g := newTestGrammar(t)
	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("345")

	tok, _, _ := sc.Next()
	require.Equal(t, "345", tok.Image)
	require.Equal(t, 1, tok.StartColumn)
	require.Equal(t, 3, tok.EndColumn)
}

func TestScannerInstallsFallbackMatcherForPermissiveOnlyPattern(t *testing.T) {
	g := grammar.New()
	// An escaped punctuation character outside a class is rejected by the
	// strict dialect but accepted by the permissive one, forcing this
	// pattern onto the general regex fallback path.
	_, err := g.AddTokenPattern(1, "DOTLIT", grammar.RegularExpression, `a\.b`, grammar.TokenOptions{})
	require.NoError(t, err)

	sc, err := New(g, false)
	require.NoError(t, err)
	sc.ResetString("a.b")

	tok, perr, eof := sc.Next()
	require.Nil(t, perr)
	require.False(t, eof)
	require.Equal(t, "a.b", tok.Image)
	require.Equal(t, "general-regex", g.Token(1).DebugAnnotation())
}

func TestScannerWarnsOnLiteralPrefixCollision(t *testing.T) {
	g := grammar.New()
	_, err := g.AddTokenPattern(1, "IN", grammar.LiteralString, "in", grammar.TokenOptions{})
	require.NoError(t, err)
	_, err = g.AddTokenPattern(2, "INDEX", grammar.LiteralString, "index", grammar.TokenOptions{})
	require.NoError(t, err)

	_, err = New(g, false)
	require.NoError(t, err)
	require.NotEmpty(t, g.Warnings())
}

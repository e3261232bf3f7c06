package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grammarkit/parsekit/grammar"
)

func TestIDNilSafety(t *testing.T) {
	var tok *Token
	require.Equal(t, -1, tok.ID())

	tok = &Token{}
	require.Equal(t, -1, tok.ID())
}

func TestIDDelegatesToPattern(t *testing.T) {
	tok := &Token{Pattern: &grammar.TokenPattern{ID: 7}}
	require.Equal(t, 7, tok.ID())
}

func TestShortFormDelegatesToPattern(t *testing.T) {
	tok := &Token{Pattern: &grammar.TokenPattern{Kind: grammar.LiteralString, Text: "+", Name: "ADD"}}
	require.Equal(t, `"+"`, tok.ShortForm())
}

func TestShortFormFallsBackToImageWithoutPattern(t *testing.T) {
	tok := &Token{Image: "raw-text"}
	require.Equal(t, "raw-text", tok.ShortForm())
}

func TestShortFormNilToken(t *testing.T) {
	var tok *Token
	require.Equal(t, "<nil>", tok.ShortForm())
}

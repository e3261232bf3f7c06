package errs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructionErrorMessage(t *testing.T) {
	e := &ConstructionError{Kind: INVALID_PRODUCTION, Name: "Expr", Message: "left recursion"}
	require.Equal(t, "INVALID_PRODUCTION: Expr: left recursion", e.Error())

	anon := &ConstructionError{Kind: INTERNAL, Message: "unreachable"}
	require.Equal(t, "INTERNAL: unreachable", anon.Error())
}

func TestConstructionKindString(t *testing.T) {
	cases := map[ConstructionKind]string{
		INTERNAL:           "INTERNAL",
		INVALID_PARSER:     "INVALID_PARSER",
		INVALID_TOKEN:      "INVALID_TOKEN",
		INVALID_PRODUCTION: "INVALID_PRODUCTION",
		INFINITE_LOOP:      "INFINITE_LOOP",
		INHERENT_AMBIGUITY: "INHERENT_AMBIGUITY",
		ConstructionKind(99): "UNKNOWN",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}

func TestParseErrorMessageUnexpectedToken(t *testing.T) {
	e := &ParseError{
		Kind:     UNEXPECTED_TOKEN,
		Line:     3,
		Column:   7,
		Actual:   `"-"`,
		Expected: []string{`NUMBER`, `IDENT`, `"("`},
	}
	require.Equal(t, `UNEXPECTED_TOKEN at line 3, column 7: unexpected "-", expected NUMBER, IDENT or "("`, e.Error())
}

func TestJoinOr(t *testing.T) {
	require.Equal(t, "", joinOr(nil))
	require.Equal(t, "a", joinOr([]string{"a"}))
	require.Equal(t, "a or b", joinOr([]string{"a", "b"}))
	require.Equal(t, "a, b or c", joinOr([]string{"a", "b", "c"}))
}

func TestParseErrorMessageWithoutPosition(t *testing.T) {
	e := &ParseError{Kind: IO, Message: "closed source"}
	require.Equal(t, "IO: closed source", e.Error())
}

func TestParseErrorLogAccumulates(t *testing.T) {
	var log ParseErrorLog
	require.True(t, log.Empty())

	log.Add(&ParseError{Kind: UNEXPECTED_CHAR, Line: 1, Column: 1, Actual: "'#'"})
	log.Add(&ParseError{Kind: UNEXPECTED_EOF, Line: 2, Column: 1})
	require.False(t, log.Empty())
	require.Len(t, log.Errors, 2)

	got := log.Error()
	require.Contains(t, got, "UNEXPECTED_CHAR")
	require.Contains(t, got, "UNEXPECTED_EOF")
}

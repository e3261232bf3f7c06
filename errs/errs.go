// Package errs defines the two error taxonomies used across parsekit:
// construction errors (raised while building or preparing a grammar) and
// parse errors (raised while driving a parse). Both are plain values that
// satisfy the error interface, in the style of the teacher's own
// GrammarNotLL1Error/Conflict pair.
package errs

import (
	"fmt"
	"strings"
)

// ConstructionKind identifies the category of a ConstructionError.
type ConstructionKind int

const (
	// INTERNAL is the implementation-bug escape hatch.
	INTERNAL ConstructionKind = iota
	// INVALID_PARSER means the grammar has no productions.
	INVALID_PARSER
	// INVALID_TOKEN means a token pattern's text was rejected by every matcher.
	INVALID_TOKEN
	// INVALID_PRODUCTION covers empty productions, duplicate ids, undefined
	// references, left recursion, empty-match alternatives, and duplicate
	// alternatives.
	INVALID_PRODUCTION
	// INFINITE_LOOP signals a cycle at the current look-ahead depth.
	INFINITE_LOOP
	// INHERENT_AMBIGUITY signals a conflict irreducible at any permitted depth.
	INHERENT_AMBIGUITY
)

func (k ConstructionKind) String() string {
	switch k {
	case INTERNAL:
		return "INTERNAL"
	case INVALID_PARSER:
		return "INVALID_PARSER"
	case INVALID_TOKEN:
		return "INVALID_TOKEN"
	case INVALID_PRODUCTION:
		return "INVALID_PRODUCTION"
	case INFINITE_LOOP:
		return "INFINITE_LOOP"
	case INHERENT_AMBIGUITY:
		return "INHERENT_AMBIGUITY"
	default:
		return "UNKNOWN"
	}
}

// ConstructionError is raised by grammar construction and Prepare. These are
// always fatal: construction never recovers from one, it aborts.
type ConstructionError struct {
	Kind    ConstructionKind
	Name    string // pattern or production name involved, when known
	Message string
}

func (e *ConstructionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Name, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ParseKind identifies the category of a ParseError.
type ParseKind int

const (
	// IO is raised when the underlying character source fails.
	IO ParseKind = iota
	UNEXPECTED_EOF
	UNEXPECTED_CHAR
	UNEXPECTED_TOKEN
	// INVALID_TOKEN_PARSE is raised when the scanner matches a token pattern
	// marked as an error pattern.
	INVALID_TOKEN_PARSE
	// ANALYSIS is raised by an analyzer hook.
	ANALYSIS
	// INTERNAL_PARSE is the parse-time implementation-bug escape hatch.
	INTERNAL_PARSE
)

func (k ParseKind) String() string {
	switch k {
	case IO:
		return "IO"
	case UNEXPECTED_EOF:
		return "UNEXPECTED_EOF"
	case UNEXPECTED_CHAR:
		return "UNEXPECTED_CHAR"
	case UNEXPECTED_TOKEN:
		return "UNEXPECTED_TOKEN"
	case INVALID_TOKEN_PARSE:
		return "INVALID_TOKEN"
	case ANALYSIS:
		return "ANALYSIS"
	case INTERNAL_PARSE:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// ParseError is one diagnostic raised while scanning or parsing. Expected
// carries the ordered list of human-readable token descriptions that would
// have been accepted instead, used only by UNEXPECTED_TOKEN.
type ParseError struct {
	Kind     ParseKind
	Line     int
	Column   int
	Actual   string // the offending token's short form, when known
	Expected []string
	Message  string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Kind)
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	}
	switch {
	case e.Kind == UNEXPECTED_TOKEN && len(e.Expected) > 0:
		fmt.Fprintf(&b, ": unexpected %s, expected %s", e.Actual, joinOr(e.Expected))
	case e.Actual != "":
		fmt.Fprintf(&b, ": %s", e.Actual)
	case e.Message != "":
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}

// joinOr renders a list with "or" before the last entry, e.g. `"+", "-" or "*"`.
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}

// ParseErrorLog accumulates ParseErrors discovered during a single parse run,
// in discovery order, and is itself raised as a single composite failure
// when non-empty once parsing ends.
type ParseErrorLog struct {
	Errors []*ParseError
}

// Add appends an error to the log.
func (l *ParseErrorLog) Add(e *ParseError) {
	l.Errors = append(l.Errors, e)
}

// Empty reports whether no errors were logged.
func (l *ParseErrorLog) Empty() bool {
	return len(l.Errors) == 0
}

// Error renders every logged error, one per line.
func (l *ParseErrorLog) Error() string {
	lines := make([]string, len(l.Errors))
	for i, e := range l.Errors {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

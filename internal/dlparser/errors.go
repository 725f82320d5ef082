package dlparser

import "fmt"

// ErrorKind classifies a parse failure per the error taxonomy in spec §7.
type ErrorKind int

const (
	// Lexical is an input character matching no token rule.
	Lexical ErrorKind = iota
	// Structural covers missing parens, wrong arity, misplaced ABox
	// syntax, and trailing operators.
	Structural
)

// ParseError is returned for any malformed input line. It is always
// fatal — the caller aborts the run rather than retrying.
type ParseError struct {
	Kind ErrorKind
	Msg  string
	Line string
}

func (e *ParseError) Error() string {
	kind := "structural"
	if e.Kind == Lexical {
		kind = "lexical"
	}
	return fmt.Sprintf("%s parse error: %s (in %q)", kind, e.Msg, e.Line)
}

func lexErr(line, msg string) error {
	return &ParseError{Kind: Lexical, Msg: msg, Line: line}
}

func structErr(line, msg string) error {
	return &ParseError{Kind: Structural, Msg: msg, Line: line}
}

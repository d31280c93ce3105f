package idf

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tells lexical from syntactical failures.
type ErrorKind int

// Kinds of parse failures.
const (
	// KindLexical is reported for input characters no token rule matches.
	KindLexical ErrorKind = iota
	// KindSyntax is reported for tokens the grammar does not accept.
	KindSyntax
	// KindEndOfInput is reported when the input ends before a complete
	// object (or before any object at all) was read.
	KindEndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "lexical error"
	case KindSyntax:
		return "syntax error"
	case KindEndOfInput:
		return "unexpected end of input"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes why an input could not be parsed. Text is the offending
// character (lexical errors) or token text (syntax errors), it is empty for
// end of input.
type Error struct {
	Kind ErrorKind
	Text string
	Line int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindLexical:
		return fmt.Sprintf("illegal character %q at line %d of input", e.Text, e.Line)
	case KindSyntax:
		return fmt.Sprintf("syntax error at token %q on line %d", e.Text, e.Line)
	}

	if e.Line > 0 {
		return fmt.Sprintf("syntax error: unexpected end of input after line %d", e.Line)
	}
	return "syntax error: unexpected end of input"
}

// kindOf returns the kind of the parse error wrapped in err.
func kindOf(err error) (ErrorKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}

	return e.Kind, true
}

// IsLexical returns true iff err (or an error it wraps) is a lexical error.
func IsLexical(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindLexical
}

// IsSyntax returns true iff err (or an error it wraps) is a syntax error,
// including a premature end of input.
func IsSyntax(err error) bool {
	k, ok := kindOf(err)
	return ok && (k == KindSyntax || k == KindEndOfInput)
}

package idf

import "fmt"

// TokenKind classifies a lexical unit.
type TokenKind int

// Token kinds emitted by the lexer. Comments and line breaks never reach the
// parser.
const (
	Value TokenKind = iota
	Comma
	Semicolon
)

func (k TokenKind) String() string {
	switch k {
	case Value:
		return "VALUE"
	case Comma:
		return "COMMA"
	case Semicolon:
		return "SEMICOLON"
	}

	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified piece of input. Text has surrounding whitespace
// removed, Line is the 1-based line the token starts on.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q (line %d)", t.Kind, t.Text, t.Line)
}

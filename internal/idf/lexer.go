package idf

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// valueChar matches one character of a field value: anything except the
// delimiters and line feeds.
const valueChar = `[^!,;\n]`

// idfLexer holds the token rules in priority order. Rules with lower case
// names produce no tokens. The definition is built once and never modified,
// so it is safe to use from concurrent Tokenize calls.
var idfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `[ \t\r\n]*![^\n]*`},
	{Name: "newline", Pattern: `([ \t]*\r?\n)+`},
	{Name: "Comma", Pattern: `[ \t]*,[ \t]*`},
	{Name: "Semicolon", Pattern: `[ \t]*;[ \t]*`},
	{Name: "trailing", Pattern: `[ \t\r]+$`},
	{Name: "Value", Pattern: `[ \t]*(` + valueChar + `|\*)+[ \t]*`},
})

var tokenKinds = map[lexer.TokenType]TokenKind{
	idfLexer.Symbols()["Value"]:     Value,
	idfLexer.Symbols()["Comma"]:     Comma,
	idfLexer.Symbols()["Semicolon"]: Semicolon,
}

// Tokenize splits text into tokens. Comments, line breaks and whitespace
// around delimiters are dropped, line numbers count line feeds. When the
// lexer fails, an *Error of kind KindLexical is returned and no tokens at
// all.
func Tokenize(text string) ([]Token, error) {
	lex, err := idfLexer.LexString("", text)
	if err != nil {
		return nil, errors.Wrap(err, "LexString")
	}

	var tokens []Token
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, lexicalError(text, tokens, err)
		}

		if t.EOF() {
			return tokens, nil
		}

		kind, ok := tokenKinds[t.Type]
		if !ok {
			continue
		}

		tokens = append(tokens, Token{
			Kind: kind,
			Text: strings.TrimSpace(t.Value),
			Line: t.Pos.Line,
		})
	}
}

// lexicalError converts the error returned by the lexer into an *Error
// naming the character the lexer got stuck on.
func lexicalError(text string, tokens []Token, err error) error {
	var perr interface {
		Position() lexer.Position
	}

	if !errors.As(err, &perr) {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		return &Error{Kind: KindLexical, Line: line}
	}

	pos := perr.Position()
	e := &Error{Kind: KindLexical, Line: pos.Line}
	if pos.Offset >= 0 && pos.Offset < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos.Offset:])
		e.Text = string(r)
	}

	return e
}

package idf

// TraceFunc receives diagnostic messages while a text is parsed.
type TraceFunc func(format string, args ...interface{})

type options struct {
	trace TraceFunc
}

// Option configures a single Parse call.
type Option func(*options)

// Trace makes the parser report each token and each object it builds to fn.
func Trace(fn TraceFunc) Option {
	return func(o *options) {
		o.trace = fn
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.trace == nil {
		o.trace = func(string, ...interface{}) {}
	}

	return o
}

// parser reads objects from a token list with one token of lookahead.
type parser struct {
	tokens []Token
	pos    int
	trace  TraceFunc
}

// next returns the next token, ok is false at the end of the input.
func (p *parser) next() (t Token, ok bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}

	t = p.tokens[p.pos]
	p.pos++
	p.trace("token %v\n", t)
	return t, true
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// endOfInput returns the error for a premature end of the token list.
func (p *parser) endOfInput() error {
	line := 0
	if len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	return &Error{Kind: KindEndOfInput, Line: line}
}

func unexpected(t Token) error {
	return &Error{Kind: KindSyntax, Text: t.Text, Line: t.Line}
}

// expect returns the next token, which must be of the given kind.
func (p *parser) expect(kind TokenKind) (Token, error) {
	t, ok := p.next()
	if !ok {
		return Token{}, p.endOfInput()
	}

	if t.Kind != kind {
		return Token{}, unexpected(t)
	}

	return t, nil
}

// object reads one object. The field list is collected in a loop, so very
// wide objects do not grow the stack.
func (p *parser) object() (Object, error) {
	name, err := p.expect(Value)
	if err != nil {
		return Object{}, err
	}

	obj := Object{Type: name.Text, Line: name.Line}

	t, ok := p.next()
	if !ok {
		return Object{}, p.endOfInput()
	}

	switch t.Kind {
	case Semicolon:
		return obj, nil
	case Comma:
	default:
		return Object{}, unexpected(t)
	}

	for {
		v, err := p.expect(Value)
		if err != nil {
			return Object{}, err
		}
		obj.Fields = append(obj.Fields, v.Text)

		t, ok := p.next()
		if !ok {
			return Object{}, p.endOfInput()
		}

		switch t.Kind {
		case Semicolon:
			return obj, nil
		case Comma:
			continue
		default:
			return Object{}, unexpected(t)
		}
	}
}

// document reads all objects, at least one is required.
func (p *parser) document() ([]Object, error) {
	var objs []Object
	for !p.atEnd() {
		obj, err := p.object()
		if err != nil {
			return nil, err
		}

		p.trace("object %v (line %d)\n", obj, obj.Line)
		objs = append(objs, obj)
	}

	if len(objs) == 0 {
		return nil, p.endOfInput()
	}

	return objs, nil
}

// ParseObjects returns all objects in text in input order.
func ParseObjects(text string, opts ...Option) ([]Object, error) {
	o := newOptions(opts)

	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	o.trace("lexer returned %d tokens\n", len(tokens))

	p := &parser{tokens: tokens, trace: o.trace}
	return p.document()
}

// Parse parses text and groups the objects by upper-cased type name. Either
// the complete document or an error is returned, errors from the lexer and
// the parser are of type *Error.
func Parse(text string, opts ...Option) (*Document, error) {
	objs, err := ParseObjects(text, opts...)
	if err != nil {
		return nil, err
	}

	return NewDocument(objs), nil
}

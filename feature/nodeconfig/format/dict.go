package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Dict reads the legacy override files that hold a single dictionary literal:
//
//	dict(
//	    sleep_interval = 10,  # log every minute
//	    dfrobot_moisture = True
//	)
//
// The brace form {"sleep_interval": 10} is accepted too. Values are limited to
// True/False and integers, optionally signed and multiplied (10*60). The file is
// parsed, never executed; anything else is a syntax error.
type Dict struct{}

func (Dict) Name() string { return "dict" }
func (Dict) Ext() string  { return ".py" }

func (Dict) Decode(data []byte) (map[string]any, error) {
	p := &dictParser{lex: dictLexer{src: data, line: 1}}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var (
		out map[string]any
		err error
	)
	switch {
	case p.tok.kind == tokIdent && p.tok.text == "dict":
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect("("); err != nil {
			return nil, err
		}
		out, err = p.entries(")", true)
	case p.isPunct("{"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		out, err = p.entries("}", false)
	default:
		return nil, p.errorf("expected dict(...) or {...}, found %s", p.tok)
	}
	if err != nil {
		return nil, err
	}

	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %s after dictionary", p.tok)
	}
	return out, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokString
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	line int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokString:
		return strconv.Quote(t.text)
	default:
		return "'" + t.text + "'"
	}
}

const punctuation = "(){}=:,*+-"

type dictLexer struct {
	src  []byte
	pos  int
	line int
}

func (l *dictLexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	c := l.src[l.pos]
	start := l.pos
	switch {
	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.src[start:l.pos]), line: l.line}, nil
	case isDigit(c):
		// Letters are consumed so 0x1F and 10_000 reach ParseInt whole.
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokInt, text: string(l.src[start:l.pos]), line: l.line}, nil
	case c == '"' || c == '\'':
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] != c {
			if l.src[l.pos] == '\n' || l.src[l.pos] == '\\' {
				return token{}, fmt.Errorf("line %d: unsupported character in string literal", l.line)
			}
			l.pos++
		}
		if l.pos >= len(l.src) {
			return token{}, fmt.Errorf("line %d: unterminated string literal", l.line)
		}
		text := string(l.src[start+1 : l.pos])
		l.pos++
		return token{kind: tokString, text: text, line: l.line}, nil
	case strings.IndexByte(punctuation, c) >= 0:
		l.pos++
		return token{kind: tokPunct, text: string(c), line: l.line}, nil
	default:
		return token{}, fmt.Errorf("line %d: unexpected character %q", l.line, c)
	}
}

func (l *dictLexer) skipSpace() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; c {
		case '\n':
			l.line++
			l.pos++
		case ' ', '\t', '\r':
			l.pos++
		case '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

type dictParser struct {
	lex dictLexer
	tok token
}

func (p *dictParser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *dictParser) isPunct(s string) bool {
	return p.tok.kind == tokPunct && p.tok.text == s
}

func (p *dictParser) expect(s string) error {
	if !p.isPunct(s) {
		return p.errorf("expected '%s', found %s", s, p.tok)
	}
	return p.advance()
}

func (p *dictParser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.tok.line, fmt.Sprintf(format, args...))
}

// entries parses key/value pairs up to and including the closing punctuation.
// keywords selects the dict(name = value) form over {"name": value}.
func (p *dictParser) entries(closing string, keywords bool) (map[string]any, error) {
	out := map[string]any{}
	for !p.isPunct(closing) {
		key, err := p.key(keywords)
		if err != nil {
			return nil, err
		}
		if _, dup := out[key]; dup {
			return nil, p.errorf("key %q repeated", key)
		}

		val, err := p.value()
		if err != nil {
			return nil, err
		}
		out[key] = val

		if p.isPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if !p.isPunct(closing) {
			return nil, p.errorf("expected ',' or '%s', found %s", closing, p.tok)
		}
	}
	return out, p.advance()
}

func (p *dictParser) key(keywords bool) (string, error) {
	var name string
	if keywords {
		if p.tok.kind != tokIdent || p.tok.text == "True" || p.tok.text == "False" {
			return "", p.errorf("expected setting name, found %s", p.tok)
		}
		name = p.tok.text
		if err := p.advance(); err != nil {
			return "", err
		}
		return name, p.expect("=")
	}

	if p.tok.kind != tokString {
		return "", p.errorf("expected quoted setting name, found %s", p.tok)
	}
	name = p.tok.text
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, p.expect(":")
}

func (p *dictParser) value() (any, error) {
	if p.tok.kind == tokIdent {
		var b bool
		switch p.tok.text {
		case "True":
			b = true
		case "False":
			b = false
		default:
			return nil, p.errorf("unsupported value %s", p.tok)
		}
		return b, p.advance()
	}

	n, err := p.signedInt()
	if err != nil {
		return nil, err
	}
	for p.isPunct("*") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		m, err := p.signedInt()
		if err != nil {
			return nil, err
		}
		if n != 0 && (n*m)/n != m {
			return nil, p.errorf("integer overflow")
		}
		n *= m
	}
	return int(n), nil
}

func (p *dictParser) signedInt() (int64, error) {
	neg := false
	for p.isPunct("-") || p.isPunct("+") {
		if p.tok.text == "-" {
			neg = !neg
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
	}

	if p.tok.kind != tokInt {
		return 0, p.errorf("expected integer, True or False, found %s", p.tok)
	}
	text := p.tok.text
	if len(text) > 1 && text[0] == '0' && isDigit(text[1]) {
		return 0, p.errorf("invalid integer %s: leading zeros are not allowed", p.tok)
	}
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, p.errorf("invalid integer %s", p.tok)
	}
	if neg {
		n = -n
	}
	return n, p.advance()
}

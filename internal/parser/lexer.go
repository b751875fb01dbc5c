package parser

import (
	"fmt"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenComment
	tokenIdent
	tokenNumber
	tokenRegister // __register
	tokenArray    // array
	tokenOf       // of
	tokenLBrace
	tokenRBrace
	tokenLBracket
	tokenRBracket
	tokenColon
	tokenComma
	tokenSemicolon
	tokenRange // ..
)

var tokenNames = map[tokenKind]string{
	tokenEOF:       "end of input",
	tokenComment:   "comment",
	tokenIdent:     "identifier",
	tokenNumber:    "number",
	tokenRegister:  "'__register'",
	tokenArray:     "'array'",
	tokenOf:        "'of'",
	tokenLBrace:    "'{'",
	tokenRBrace:    "'}'",
	tokenLBracket:  "'['",
	tokenRBracket:  "']'",
	tokenColon:     "':'",
	tokenComma:     "','",
	tokenSemicolon: "';'",
	tokenRange:     "'..'",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

var keywords = map[string]tokenKind{
	"__register": tokenRegister,
	"array":      tokenArray,
	"of":         tokenOf,
}

var punctuation = map[byte]tokenKind{
	'{': tokenLBrace,
	'}': tokenRBrace,
	'[': tokenLBracket,
	']': tokenRBracket,
	':': tokenColon,
	',': tokenComma,
	';': tokenSemicolon,
}

type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}

// lexer splits the input into tokens, tracking line and column positions.
type lexer struct {
	input  []byte
	pos    int
	line   int
	column int
}

func newLexer(input []byte) *lexer {
	return &lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

func (l *lexer) next() (token, error) {
	l.skipWhitespace()

	tok := token{line: l.line, column: l.column}
	if l.pos >= len(l.input) {
		tok.kind = tokenEOF
		return tok, nil
	}

	c := l.input[l.pos]
	switch {
	case c == '/' && l.peek(1) == '/':
		start := l.pos
		for l.pos < len(l.input) && l.input[l.pos] != '\n' {
			l.advance()
		}
		tok.kind = tokenComment
		tok.text = string(l.input[start:l.pos])
		return tok, nil

	case c == '.' && l.peek(1) == '.':
		l.advance()
		l.advance()
		tok.kind = tokenRange
		tok.text = ".."
		return tok, nil

	case isDigit(c):
		tok.kind = tokenNumber
		tok.text = l.readWhile(isIdentChar)
		return tok, nil

	case isIdentStart(c):
		tok.text = l.readWhile(isIdentChar)
		if kind, ok := keywords[tok.text]; ok {
			tok.kind = kind
		} else {
			tok.kind = tokenIdent
		}
		return tok, nil
	}

	if kind, ok := punctuation[c]; ok {
		l.advance()
		tok.kind = kind
		tok.text = string(c)
		return tok, nil
	}

	return tok, fmt.Errorf("unexpected character %q", c)
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *lexer) readWhile(accept func(byte) bool) string {
	start := l.pos
	for l.pos < len(l.input) && accept(l.input[l.pos]) {
		l.advance()
	}
	return string(l.input[start:l.pos])
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

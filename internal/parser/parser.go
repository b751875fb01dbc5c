// Package parser implements the parser for register description files.
//
// A file is a sequence of statements:
//
//	// comment until the end of the line
//	__register 32 { 31:31 OneBit, 15:0 SomeBits } ANOTHER_REG;
//	array [0..3] of __register 32 { } ARRAY_REG;
//
// Bitfields are written as high:low followed by an optional name.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/retroenv/regview/internal/ast"
)

// Error describes a syntax error with its position in the input.
type Error struct {
	File   string
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
}

type parser struct {
	file  string
	lexer *lexer
	tok   token
}

// Parse parses all statements of the given input. The name is only used
// for error messages.
func Parse(name string, input []byte) ([]ast.Statement, error) {
	p, err := newParser(name, input)
	if err != nil {
		return nil, err
	}

	var statements []ast.Statement
	for p.tok.kind != tokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// ParseStatement parses exactly one statement.
func ParseStatement(input string) (ast.Statement, error) {
	p, err := newParser("", []byte(input))
	if err != nil {
		return nil, err
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, p.errorf("unexpected %s after statement", p.tok.kind)
	}
	return stmt, nil
}

func newParser(name string, input []byte) (*parser, error) {
	p := &parser{
		file:  name,
		lexer: newLexer(input),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lexer.next()
	if err != nil {
		return &Error{
			File:   p.file,
			Line:   tok.line,
			Column: tok.column,
			Msg:    err.Error(),
		}
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &Error{
		File:   p.file,
		Line:   p.tok.line,
		Column: p.tok.column,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// expect consumes the current token if it is of the given kind.
func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.tok
	if tok.kind != kind {
		return tok, p.errorf("expected %s, found %s", kind, describe(tok))
	}
	if err := p.advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch p.tok.kind {
	case tokenComment:
		line := p.tok.line
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Comment{Line: line}, nil

	case tokenArray:
		return p.parseArray()

	case tokenRegister:
		return p.parseRegister()

	default:
		return nil, p.errorf("expected statement, found %s", describe(p.tok))
	}
}

// parseArray parses "array [from..to] of __register ...".
func (p *parser) parseArray() (*ast.Register, error) {
	if _, err := p.expect(tokenArray); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenLBracket); err != nil {
		return nil, err
	}
	from, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenRange); err != nil {
		return nil, err
	}
	to, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenRBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenOf); err != nil {
		return nil, err
	}

	reg, err := p.parseRegister()
	if err != nil {
		return nil, err
	}
	reg.Array = &ast.Range{From: from, To: to}
	return reg, nil
}

// parseRegister parses "__register bits { fields } NAME;".
func (p *parser) parseRegister() (*ast.Register, error) {
	start, err := p.expect(tokenRegister)
	if err != nil {
		return nil, err
	}
	bits, err := p.parseNumber()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFields()
	if err != nil {
		return nil, err
	}

	name, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}

	return &ast.Register{
		Name:   name.text,
		Bits:   bits,
		Fields: fields,
		Line:   start.line,
	}, nil
}

func (p *parser) parseFields() ([]ast.Bitfield, error) {
	if _, err := p.expect(tokenLBrace); err != nil {
		return nil, err
	}

	var fields []ast.Bitfield
	for p.tok.kind != tokenRBrace {
		if len(fields) > 0 {
			if _, err := p.expect(tokenComma); err != nil {
				return nil, err
			}
		}

		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	if _, err := p.expect(tokenRBrace); err != nil {
		return nil, err
	}
	return fields, nil
}

// parseField parses "high:low" with an optional trailing name.
func (p *parser) parseField() (ast.Bitfield, error) {
	high, err := p.parseNumber()
	if err != nil {
		return ast.Bitfield{}, err
	}
	if _, err := p.expect(tokenColon); err != nil {
		return ast.Bitfield{}, err
	}
	low, err := p.parseNumber()
	if err != nil {
		return ast.Bitfield{}, err
	}

	field := ast.Bitfield{
		From: low,
		To:   high,
	}
	if p.tok.kind == tokenIdent {
		field.Name = p.tok.text
		if err := p.advance(); err != nil {
			return ast.Bitfield{}, err
		}
	}
	return field, nil
}

func (p *parser) parseNumber() (uint32, error) {
	tok, err := p.expect(tokenNumber)
	if err != nil {
		return 0, err
	}

	text, base := tok.text, 10
	if len(text) > 2 && (text[:2] == "0x" || text[:2] == "0X") {
		text, base = text[2:], 16
	}

	value, err := strconv.ParseUint(text, base, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &Error{File: p.file, Line: tok.line, Column: tok.column,
				Msg: fmt.Sprintf("number %s exceeds %d", tok.text, uint32(math.MaxUint32))}
		}
		return 0, &Error{File: p.file, Line: tok.line, Column: tok.column,
			Msg: fmt.Sprintf("invalid number %s", tok.text)}
	}
	return uint32(value), nil
}

func describe(tok token) string {
	if tok.text == "" {
		return tok.kind.String()
	}
	return fmt.Sprintf("%s %q", tok.kind, tok.text)
}

/*
File    : mesa/parser/parser.go
Package : parser
*/

package parser

import (
	"github.com/mesa-lang/mesa/errs"
	"github.com/mesa-lang/mesa/lexer"
)

// maxArgs is the cap on call arguments and function parameters.
const maxArgs = 255

// Parser drives a recursive-descent parse over a token stream with a
// one-token lookahead (cur, peek).
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// NewParser builds a Parser over source, primed with the first two
// tokens.
func NewParser(source string) *Parser {
	p := &Parser{lex: lexer.NewLexer(source)}
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

// curIs reports whether the current token has type t.
func (p *Parser) curIs(t lexer.TokenType) bool { return p.cur.Type == t }

// expect consumes the current token if it has type t, else returns a
// ParseError naming what was expected.
func (p *Parser) expect(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.cur.Type != t {
		return lexer.Token{}, errs.NewParseError(p.cur.Span, "%s (got %s)", message, p.cur.Type)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// Parse consumes the whole token stream, returning the ordered list
// of top-level statements. Per the error-handling policy, the first
// error aborts parsing and is returned immediately. There is no
// partial-result contract.
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.ERROR) {
			return nil, errs.NewLexError(p.cur.Span, "%s", p.cur.Literal)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

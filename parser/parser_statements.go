/*
File    : mesa/parser/parser_statements.go
Package : parser
*/

package parser

import (
	"github.com/mesa-lang/mesa/errs"
	"github.com/mesa-lang/mesa/lexer"
	"github.com/mesa-lang/mesa/objects"
)

// typeKeywordType maps a declarator token to its static type. Callers
// must already have checked Token.IsTypeKeyword().
func typeKeywordType(tok lexer.Token) objects.Type {
	switch tok.Type {
	case lexer.INT:
		return objects.IntType
	case lexer.DOUBLE:
		return objects.DoubleType
	case lexer.STRING:
		return objects.StringType
	case lexer.BOOLEAN:
		return objects.BooleanType
	}
	return objects.AnyType
}

// parseStatement dispatches on the leading token: a bare type keyword
// starts a variable declaration, otherwise the leading keyword (or
// absence of one) picks the statement form.
func (p *Parser) parseStatement() (Stmt, error) {
	if p.cur.IsTypeKeyword() {
		return p.parseVarDecl()
	}
	switch p.cur.Type {
	case lexer.WRITE:
		return p.parseWrite()
	case lexer.FUN:
		return p.parseFunctionDecl()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.LEFT_CURLY_BRACKET:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	default:
		return p.parseExprStatement()
	}
}

// parseVarDecl parses `TYPE IDENTIFIER = expression;`.
func (p *Parser) parseVarDecl() (Stmt, error) {
	startSpan := p.cur.Span
	declaredType := typeKeywordType(p.cur)
	p.advance()

	nameTok, err := p.expect(lexer.IDENTIFIER, "expected variable name after type")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGNMENT, "expected '=' after variable name"); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarDeclStatement{
		DeclaredType: declaredType,
		Name:         nameTok.Literal,
		Init:         init,
		Sp:           startSpan,
	}, nil
}

// parseWrite parses `write ( expression ) ;`.
func (p *Parser) parseWrite() (Stmt, error) {
	startSpan := p.cur.Span
	p.advance()
	if _, err := p.expect(lexer.LEFT_BRACKET, "expected '(' after write"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_BRACKET, "expected ')' after write expression"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after write statement"); err != nil {
		return nil, err
	}
	return &WriteStatement{Expr: expr, Sp: startSpan}, nil
}

// parseExprStatement parses `expression ;`.
func (p *Parser) parseExprStatement() (Stmt, error) {
	startSpan := p.cur.Span
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStatement{Expr: expr, Sp: startSpan}, nil
}

// parseBlock parses `{ statement* }`.
func (p *Parser) parseBlock() (*BlockStatement, error) {
	startSpan := p.cur.Span
	if _, err := p.expect(lexer.LEFT_CURLY_BRACKET, "expected '{'"); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for !p.curIs(lexer.RIGHT_CURLY_BRACKET) {
		if p.curIs(lexer.EOF) {
			return nil, errs.NewParseError(p.cur.Span, "expected '}' to close block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume '}'
	return &BlockStatement{Statements: stmts, Sp: startSpan}, nil
}

// parseIf parses `if (cond) {block} (elif (cond) {block})* (else {block})?`.
func (p *Parser) parseIf() (Stmt, error) {
	startSpan := p.cur.Span
	p.advance()
	cond, thenBlock, err := p.parseCondAndBlock()
	if err != nil {
		return nil, err
	}
	stmt := &IfStatement{Cond: cond, Then: thenBlock, Sp: startSpan}
	for p.curIs(lexer.ELIF) {
		p.advance()
		elifCond, elifBlock, err := p.parseCondAndBlock()
		if err != nil {
			return nil, err
		}
		stmt.Elifs = append(stmt.Elifs, ElifClause{Cond: elifCond, Block: elifBlock})
	}
	if p.curIs(lexer.ELSE) {
		p.advance()
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

// parseCondAndBlock parses the common `(expression) { block }` shape
// shared by if, elif, and while.
func (p *Parser) parseCondAndBlock() (Expr, *BlockStatement, error) {
	if _, err := p.expect(lexer.LEFT_BRACKET, "expected '(' after condition keyword"); err != nil {
		return nil, nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(lexer.RIGHT_BRACKET, "expected ')' after condition"); err != nil {
		return nil, nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, block, nil
}

// parseWhile parses `while (cond) { block }`.
func (p *Parser) parseWhile() (Stmt, error) {
	startSpan := p.cur.Span
	p.advance()
	cond, body, err := p.parseCondAndBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStatement{Cond: cond, Body: body, Sp: startSpan}, nil
}

// parseReturn parses `return expression? ;`.
func (p *Parser) parseReturn() (Stmt, error) {
	startSpan := p.cur.Span
	p.advance()
	var value Expr
	if !p.curIs(lexer.SEMICOLON) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after return statement"); err != nil {
		return nil, err
	}
	return &ReturnStatement{Value: value, Sp: startSpan}, nil
}

// parseFunctionDecl parses `fun NAME ( params? ) { block }`.
func (p *Parser) parseFunctionDecl() (Stmt, error) {
	startSpan := p.cur.Span
	p.advance()
	nameTok, err := p.expect(lexer.IDENTIFIER, "expected function name after fun")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LEFT_BRACKET, "expected '(' after function name"); err != nil {
		return nil, err
	}
	var params []Param
	if !p.curIs(lexer.RIGHT_BRACKET) {
		for {
			if len(params) >= maxArgs {
				return nil, errs.NewParseError(p.cur.Span, "cannot have more than %d function arguments", maxArgs)
			}
			if !p.cur.IsTypeKeyword() {
				return nil, errs.NewParseError(p.cur.Span, "expected parameter type")
			}
			paramType := typeKeywordType(p.cur)
			p.advance()
			paramName, err := p.expect(lexer.IDENTIFIER, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Name: paramName.Literal, DeclaredType: paramType})
			if !p.curIs(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RIGHT_BRACKET, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &FunctionStatement{Name: nameTok.Literal, Params: params, Body: body, Sp: startSpan}, nil
}

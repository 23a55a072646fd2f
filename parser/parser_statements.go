package parser

import (
	"fmt"

	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/token"
)

// parseStatement dispatches on the current token: `let` and `=>` have
// dedicated statement forms, everything else is an expression
// evaluated for its value.
func (p *Parser) parseStatement() ast.Statement {
	switch p.current.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN_ARROW:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let` IDENT (`::` TypeValue)? `=` expr `;`?.
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.current}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.current, Value: p.current.Literal}

	if p.peekIs(token.TYPE_ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Name.DeclaredType = p.parseTypeValue()
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseReturnStatement parses `=>` expr `;`?.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.current}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseExpressionStatement parses a bare expression at LOWEST
// precedence, evaluated for its value.
func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.current}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseBlock parses statements until a matching `}`, assuming current
// is already positioned on the opening `{`.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.current, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.currentIs(token.RBRACE) && !p.currentIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if !p.currentIs(token.RBRACE) {
		p.errors = append(p.errors, fmt.Sprintf(
			"The next token was expected to be of type %s, but %s was obtained",
			token.RBRACE, p.current.Kind))
	}
	return block
}

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/token"
)

// parseExpression is the core Pratt loop: find a prefix handler for
// the current token, then repeatedly fold in infix operators whose
// precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.current.Kind]
	if !ok {
		p.noPrefixParseFnError(p.current.Kind)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Kind]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.current, Value: p.current.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.current.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf(
			"It was not possible to parse %q like Integer", p.current.Literal))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.current, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.current.Literal, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf(
			"It was not possible to parse %q like Float", p.current.Literal))
		return nil
	}
	return &ast.FloatLiteral{Token: p.current, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.current, Value: strings.Trim(p.current.Literal, `"`)}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.current, Value: p.currentIs(token.TRUE)}
}

func (p *Parser) parseVoidLiteral() ast.Expression {
	return &ast.VoidLiteral{Token: p.current}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.current, Operator: p.current.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.current,
		Left:     left,
		Operator: p.current.Literal,
	}
	precedence := p.currentPrecedence()
	if p.currentIs(token.EXPONENTIATION) {
		// `**` is right-associative: its right operand may itself be a `**`.
		precedence--
	}
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseGroupedOrTupleExpression parses `(expr)` as a grouping, or, if
// a comma follows the first expression, `(e1, e2, ...)` as a tuple
// literal.
func (p *Parser) parseGroupedOrTupleExpression() ast.Expression {
	openToken := p.current
	p.nextToken()

	first := p.parseExpression(LOWEST)

	if !p.peekIs(token.COMMA) {
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return first
	}

	values := []ast.Expression{first}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		values = append(values, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.TupleLiteral{Token: openToken, Values: values}
}

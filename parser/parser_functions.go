package parser

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/token"
)

// parseFunctionLiteral parses
// `fn` IDENT `::` TypeValue (`,` IDENT `::` TypeValue)* `->` TypeValue `{` Block `}`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.current}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	param, typ := p.parseTypedParameter()
	fn.Parameters = append(fn.Parameters, param)
	fn.TypeParameters = append(fn.TypeParameters, typ)

	for p.peekIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		param, typ := p.parseTypedParameter()
		fn.Parameters = append(fn.Parameters, param)
		fn.TypeParameters = append(fn.TypeParameters, typ)
	}

	if !p.expectPeek(token.OUTPUT_ARROW) {
		return nil
	}
	p.nextToken()
	fn.TypeOutput = p.parseTypeValue()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlock()
	return fn
}

// parseTypedParameter consumes `IDENT :: TypeValue` with current
// positioned on IDENT.
func (p *Parser) parseTypedParameter() (*ast.Identifier, *ast.TypeValue) {
	ident := &ast.Identifier{Token: p.current, Value: p.current.Literal}
	if !p.expectPeek(token.TYPE_ASSIGN) {
		return ident, nil
	}
	p.nextToken()
	typ := p.parseTypeValue()
	ident.DeclaredType = typ
	return ident, typ
}

// parseTypeValue parses a TypeValue: a bare class name, a `[elem]`
// list form, or a `(t1, t2, ...)` tuple form. Assumes current is
// positioned on the first token of the type.
func (p *Parser) parseTypeValue() *ast.TypeValue {
	switch p.current.Kind {
	case token.CLASSNAME:
		return &ast.TypeValue{Token: p.current, Name: p.current.Literal}
	case token.LBRACKET:
		tok := p.current
		p.nextToken()
		elem := p.parseTypeValue()
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return &ast.TypeValue{Token: tok, ElemType: elem}
	case token.LPAREN:
		tok := p.current
		p.nextToken()
		elems := []*ast.TypeValue{p.parseTypeValue()}
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			elems = append(elems, p.parseTypeValue())
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.TypeValue{Token: tok, Elements: elems}
	default:
		p.errors = append(p.errors, "It was not possible to parse a type value starting with "+string(p.current.Kind))
		return nil
	}
}

// parseCallExpression parses a comma-separated argument list between
// `(` and `)`, current positioned on `(`.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.current, Function: function}
	call.Arguments = p.parseExpressionList(token.RPAREN)
	return call
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	list := []ast.Expression{}

	if p.peekIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

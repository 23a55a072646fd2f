package parser

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/token"
)

// parseIfExpression parses `if` cond `then` `{` Block `}` (`else` `{` Block `}`)?.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.current}
	p.nextToken()

	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.THEN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlock()

	if p.peekIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlock()
	}
	return expr
}

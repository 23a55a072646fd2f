package parser

import (
	"fmt"

	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/token"
)

// parseListLiteral parses `[v1, v2, ...]`. Per spec.md §4.2 / §9
// quirk 2, list literals are homogeneous at the syntactic level: the
// leading token kind of every element must match the leading token
// kind of the first element. This is a parse-time check only; runtime
// values of mixed types can still end up in a list via identifiers.
func (p *Parser) parseListLiteral() ast.Expression {
	list := &ast.ListLiteral{Token: p.current}

	if p.peekIs(token.RBRACKET) {
		p.nextToken()
		return list
	}

	p.nextToken()
	firstKind := p.current.Kind
	list.Values = append(list.Values, p.parseExpression(LOWEST))

	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		if p.current.Kind != firstKind {
			p.errors = append(p.errors, fmt.Sprintf(
				"List elements must be homogeneous: expected %s but found %s",
				firstKind, p.current.Kind))
		}
		list.Values = append(list.Values, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return list
}

// parseCallListExpression parses 1-3 comma-separated index
// expressions between `[` and `]` following an indexable expression:
// one is an item lookup, two a `start,end` slice, three add a step.
func (p *Parser) parseCallListExpression(list ast.Expression) ast.Expression {
	expr := &ast.CallListExpression{Token: p.current, List: list}
	expr.Range = p.parseExpressionList(token.RBRACKET)
	return expr
}

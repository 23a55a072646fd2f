package parser

import "github.com/sigmaf-lang/sigmaf/token"

// Precedence levels, low to high, per spec.md §4.2.
const (
	_ int = iota
	LOWEST
	ANDOR       // && ||
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	POWER       // **
	PREFIX      // unary -
	CALL        // ( [ .
)

var precedences = map[token.Kind]int{
	token.AND:            ANDOR,
	token.OR:             ANDOR,
	token.EQ:             EQUALS,
	token.NOT_EQ:         EQUALS,
	token.LT:             LESSGREATER,
	token.GT:             LESSGREATER,
	token.L_OR_EQ_T:      LESSGREATER,
	token.G_OR_EQ_T:      LESSGREATER,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.MULTIPLICATION: PRODUCT,
	token.DIVISION:       PRODUCT,
	token.MODULUS:        PRODUCT,
	token.EXPONENTIATION: POWER,
	token.LPAREN:         CALL,
	token.LBRACKET:       CALL,
	token.COMPOSITION:    CALL,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) currentPrecedence() int {
	if pr, ok := precedences[p.current.Kind]; ok {
		return pr
	}
	return LOWEST
}

/*
File    : sigmaf/parser/parser.go
Package : parser
*/

// Package parser implements a Pratt parser for SigmaF: prefix and
// infix handlers are registered per token.Kind, consulted through a
// precedence table (see parser_precedence.go) to decide when to
// descend into a subexpression. ParseProgram never aborts on a
// malformed statement; it accumulates diagnostics into Errors() and
// keeps going, matching spec.md §4.2 and §9's "parser recovery" note.
package parser

import (
	"fmt"

	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/lexer"
	"github.com/sigmaf-lang/sigmaf/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the three-token lookahead window (previous, current,
// peek) used by the Pratt algorithm, plus the registries mapping each
// token.Kind to its prefix and/or infix handler.
type Parser struct {
	lex *lexer.Lexer

	previous token.Token
	current  token.Token
	peek     token.Token

	errors []string

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New creates a Parser over src, registers all prefix/infix handlers,
// and primes the lookahead window by reading the first two tokens.
func New(src string) *Parser {
	p := &Parser{
		lex:    lexer.New(src),
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseVoidLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrTupleExpression)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FN, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.Kind]infixParseFn)
	for _, k := range []token.Kind{
		token.PLUS, token.MINUS, token.MULTIPLICATION, token.DIVISION,
		token.MODULUS, token.EXPONENTIATION, token.EQ, token.NOT_EQ,
		token.LT, token.GT, token.L_OR_EQ_T, token.G_OR_EQ_T,
		token.AND, token.OR, token.COMPOSITION,
	} {
		p.registerInfix(k, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseCallListExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

// Errors returns every diagnostic collected while parsing.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.previous = p.current
	p.current = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) currentIs(kind token.Kind) bool { return p.current.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool    { return p.peek.Kind == kind }

// expectPeek advances past the peek token if it has the expected kind,
// otherwise records a diagnostic and leaves the cursor unchanged.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) peekError(kind token.Kind) {
	p.errors = append(p.errors, fmt.Sprintf(
		"The next token was expected to be of type %s, but %s was obtained",
		kind, p.peek.Kind))
}

func (p *Parser) noPrefixParseFnError(kind token.Kind) {
	p.errors = append(p.errors, fmt.Sprintf(
		"It was not possible to parse a prefix expression starting with %s", kind))
}

// ParseProgram reads statements until EOF, returning the accumulated
// AST. Parse failures never stop the loop; they append to Errors().
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.currentIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

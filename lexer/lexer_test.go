package lexer_test

import (
	"testing"

	"github.com/sigmaf-lang/sigmaf/lexer"
	"github.com/sigmaf-lang/sigmaf/token"
	"github.com/stretchr/testify/assert"
)

func TestNextTokenOperatorsAndDelimiters(t *testing.T) {
	src := `=+-*/%**.,;(){}[]==!=<><=>=&&||::=>->`

	expected := []token.Token{
		{Kind: token.ASSIGN, Literal: "="},
		{Kind: token.PLUS, Literal: "+"},
		{Kind: token.MINUS, Literal: "-"},
		{Kind: token.MULTIPLICATION, Literal: "*"},
		{Kind: token.DIVISION, Literal: "/"},
		{Kind: token.MODULUS, Literal: "%"},
		{Kind: token.EXPONENTIATION, Literal: "**"},
		{Kind: token.COMPOSITION, Literal: "."},
		{Kind: token.COMMA, Literal: ","},
		{Kind: token.SEMICOLON, Literal: ";"},
		{Kind: token.LPAREN, Literal: "("},
		{Kind: token.RPAREN, Literal: ")"},
		{Kind: token.LBRACE, Literal: "{"},
		{Kind: token.RBRACE, Literal: "}"},
		{Kind: token.LBRACKET, Literal: "["},
		{Kind: token.RBRACKET, Literal: "]"},
		{Kind: token.EQ, Literal: "=="},
		{Kind: token.NOT_EQ, Literal: "!="},
		{Kind: token.LT, Literal: "<"},
		{Kind: token.GT, Literal: ">"},
		{Kind: token.L_OR_EQ_T, Literal: "<="},
		{Kind: token.G_OR_EQ_T, Literal: ">="},
		{Kind: token.AND, Literal: "&&"},
		{Kind: token.OR, Literal: "||"},
		{Kind: token.TYPE_ASSIGN, Literal: "::"},
		{Kind: token.RETURN_ARROW, Literal: "=>"},
		{Kind: token.OUTPUT_ARROW, Literal: "->"},
		{Kind: token.EOF, Literal: ""},
	}

	lex := lexer.New(src)
	for i, want := range expected {
		got := lex.NextToken()
		assert.Equal(t, want.Kind, got.Kind, "token %d kind", i)
		assert.Equal(t, want.Literal, got.Literal, "token %d literal", i)
	}
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	src := `let sum fn if then else return true false null bool int str float function list tuple void _under1`

	expected := []struct {
		kind    token.Kind
		literal string
	}{
		{token.LET, "let"},
		{token.IDENT, "sum"},
		{token.FN, "fn"},
		{token.IF, "if"},
		{token.THEN, "then"},
		{token.ELSE, "else"},
		{token.RETURN, "return"},
		{token.TRUE, "true"},
		{token.FALSE, "false"},
		{token.NULL, "null"},
		{token.CLASSNAME, "bool"},
		{token.CLASSNAME, "int"},
		{token.CLASSNAME, "str"},
		{token.CLASSNAME, "float"},
		{token.CLASSNAME, "function"},
		{token.CLASSNAME, "list"},
		{token.CLASSNAME, "tuple"},
		{token.CLASSNAME, "void"},
		{token.IDENT, "_under1"},
	}

	lex := lexer.New(src)
	for i, want := range expected {
		got := lex.NextToken()
		assert.Equal(t, want.kind, got.Kind, "token %d kind", i)
		assert.Equal(t, want.literal, got.Literal, "token %d literal", i)
	}
}

func TestNextTokenNumbersAndStrings(t *testing.T) {
	src := `5 3.14 "hello world"`

	lex := lexer.New(src)

	tok := lex.NextToken()
	assert.Equal(t, token.INT, tok.Kind)
	assert.Equal(t, "5", tok.Literal)

	tok = lex.NextToken()
	assert.Equal(t, token.FLOAT, tok.Kind)
	assert.Equal(t, "3.14", tok.Literal)

	tok = lex.NextToken()
	assert.Equal(t, token.STRING, tok.Kind)
	assert.Equal(t, `"hello world"`, tok.Literal)
}

func TestNextTokenIllegalCharacters(t *testing.T) {
	src := `: ! & |`
	lex := lexer.New(src)

	for _, literal := range []string{":", "!", "&", "|"} {
		tok := lex.NextToken()
		assert.Equal(t, token.ILLEGAL, tok.Kind)
		assert.Equal(t, literal, tok.Literal)
	}
}

func TestNextTokenTracksLineNumbers(t *testing.T) {
	src := "let a = 1;\nlet b = 2;\nb;"
	lex := lexer.New(src)

	var lastLine int
	for {
		tok := lex.NextToken()
		lastLine = tok.Line
		if tok.Kind == token.EOF {
			break
		}
	}
	assert.Equal(t, 3, lastLine)
}

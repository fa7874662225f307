/*
File    : LostRecord/lexer/lexer_test.go
Project : LostRecord narrative-language compiler
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens (excluding the trailing EOF)
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` the story tells : 42 . `,
			ExpectedTokens: []Token{
				NewToken(KEYWORD_TYPE, "the"),
				NewToken(KEYWORD_TYPE, "story"),
				NewToken(KEYWORD_TYPE, "tells"),
				NewToken(COLON_DELIM, ":"),
				NewToken(INT_LIT, "42"),
				NewToken(PERIOD_DELIM, "."),
			},
		},
		{
			Input: `a value hero_age, type int, begins at 3 .`,
			ExpectedTokens: []Token{
				NewToken(KEYWORD_TYPE, "a"),
				NewToken(KEYWORD_TYPE, "value"),
				NewToken(KEYWORD_TYPE, "hero_age"),
				NewToken(COMMA_DELIM, ","),
				NewToken(KEYWORD_TYPE, "type"),
				NewToken(KEYWORD_TYPE, "int"),
				NewToken(COMMA_DELIM, ","),
				NewToken(KEYWORD_TYPE, "begins"),
				NewToken(KEYWORD_TYPE, "at"),
				NewToken(INT_LIT, "3"),
				NewToken(PERIOD_DELIM, "."),
			},
		},
		{
			Input: `perform the story of 'greet' using ( )`,
			ExpectedTokens: []Token{
				NewToken(KEYWORD_TYPE, "perform"),
				NewToken(KEYWORD_TYPE, "the"),
				NewToken(KEYWORD_TYPE, "story"),
				NewToken(KEYWORD_TYPE, "of"),
				NewToken(QUOTE_DELIM, "'"),
				NewToken(KEYWORD_TYPE, "greet"),
				NewToken(QUOTE_DELIM, "'"),
				NewToken(KEYWORD_TYPE, "using"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
			},
		},
		{
			Input: `12 3.14 7 "hello world"`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "12"),
				NewToken(FLOAT_LIT, "3.14"),
				NewToken(INT_LIT, "7"),
				NewToken(STRING_LIT, `"hello world"`),
			},
		},
		{
			// 'true' and 'false' lex as booleans no matter the context
			Input: `true false truth falsehood while_true`,
			ExpectedTokens: []Token{
				NewToken(BOOL_LIT, "true"),
				NewToken(BOOL_LIT, "false"),
				NewToken(KEYWORD_TYPE, "truth"),
				NewToken(KEYWORD_TYPE, "falsehood"),
				NewToken(KEYWORD_TYPE, "while_true"),
			},
		},
		{
			// a comment swallows the rest of its line
			Input: "if met // the rest is a remark . , :\nwhile",
			ExpectedTokens: []Token{
				NewToken(KEYWORD_TYPE, "if"),
				NewToken(KEYWORD_TYPE, "met"),
				NewToken(KEYWORD_TYPE, "while"),
			},
		},
		{
			// a lone slash is not a comment
			Input: `1 / 2`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "1"),
				NewToken(INVALID_TYPE, "/"),
				NewToken(INT_LIT, "2"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		tokens := lex.ConsumeTokens()

		// the stream always ends with exactly one EOF token
		assert.Equal(t, len(test.ExpectedTokens)+1, len(tokens), "input: %s", test.Input)
		assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type, "input: %s", test.Input)

		for i, expected := range test.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "input: %s, token %d", test.Input, i)
			assert.Equal(t, expected.Text, tokens[i].Text, "input: %s, token %d", test.Input, i)
		}
	}
}

// TestLexer_EofTermination checks that every input, including degenerate
// ones, produces a stream with exactly one trailing EOF token.
func TestLexer_EofTermination(t *testing.T) {
	inputs := []string{
		"",
		"   \t\r\n  ",
		"// only a comment",
		"the story ends a line .",
		`"unterminated`,
	}

	for _, input := range inputs {
		lex := NewLexer(input)
		tokens := lex.ConsumeTokens()

		assert.NotEmpty(t, tokens, "input: %q", input)
		assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type, "input: %q", input)

		eofs := 0
		for _, tok := range tokens {
			if tok.Type == EOF_TYPE {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs, "input: %q", input)
	}
}

// TestLexer_LineNumbers checks that the line counter increments exactly
// on newline bytes, including newlines inside string bodies.
func TestLexer_LineNumbers(t *testing.T) {
	src := "one\ntwo\n\"a\nstring\"\nfive"
	lex := NewLexer(src)
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 5, len(tokens)) // one two "a\nstring" five EOF

	assert.Equal(t, KEYWORD_TYPE, tokens[0].Type)
	assert.Equal(t, 1, tokens[0].Line)

	assert.Equal(t, KEYWORD_TYPE, tokens[1].Type)
	assert.Equal(t, 2, tokens[1].Line)

	// the string opens on line 3 and closes on line 4; its newline is
	// part of the body and counted
	assert.Equal(t, STRING_LIT, tokens[2].Type)
	assert.Equal(t, "a\nstring", tokens[2].Literal)
	assert.Equal(t, 4, tokens[2].Line)

	assert.Equal(t, KEYWORD_TYPE, tokens[3].Type)
	assert.Equal(t, 5, tokens[3].Line)
}

// TestLexer_StringBodiesAreVerbatim checks that string bodies carry no
// escape processing: a backslash sequence stays two bytes, exactly as
// the generator will emit it between backticks for the assembler.
func TestLexer_StringBodiesAreVerbatim(t *testing.T) {
	src := `"hi\n" "tab\there"`
	lex := NewLexer(src)
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, `hi\n`, tokens[0].Literal)
	assert.Equal(t, `"hi\n"`, tokens[0].Text)
	assert.Equal(t, `tab\there`, tokens[1].Literal)
}

// TestLexer_UnterminatedString checks that a string missing its closing
// quote is dropped: the stream holds nothing but the EOF token.
func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"never closed`)
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, EOF_TYPE, tokens[0].Type)
}

// TestLexer_UnexpectedCharacter checks that a stray byte becomes an
// INVALID token and scanning continues past it.
func TestLexer_UnexpectedCharacter(t *testing.T) {
	lex := NewLexer(`@ story`)
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, INVALID_TYPE, tokens[0].Type)
	assert.Equal(t, "@", tokens[0].Text)
	assert.Equal(t, KEYWORD_TYPE, tokens[1].Type)
	assert.Equal(t, "story", tokens[1].Text)
}

// TestLexer_NumberBeforePeriod checks that the statement terminator is
// not swallowed into a number: a period counts as a fraction only when a
// digit follows it.
func TestLexer_NumberBeforePeriod(t *testing.T) {
	lex := NewLexer(`7 .`)
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, INT_LIT, tokens[0].Type)
	assert.Equal(t, "7", tokens[0].Text)
	assert.Equal(t, PERIOD_DELIM, tokens[1].Type)

	lex = NewLexer(`7.5.`)
	tokens = lex.ConsumeTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, FLOAT_LIT, tokens[0].Type)
	assert.Equal(t, "7.5", tokens[0].Text)
	assert.Equal(t, PERIOD_DELIM, tokens[1].Type)
}

/*
File    : LostRecord/parser/parser.go
Project : LostRecord narrative-language compiler
*/

/*
Package parser implements the recursive-descent parser for the LostRecord
narrative language.

The parser converts the token slice produced by the lexer into an Abstract
Syntax Tree (AST). Because the lexer reserves no words, every grammar
decision is made here by inspecting the Text of the next one to five
tokens: "the story ends at this moment" and "the story ends a line" share
a prefix and are told apart purely by lookahead into the token buffer.

Key features:
- Statement dispatch over spoken phrase prefixes (a value, for procedure,
  perform, the result, the story, if, while)
- Classic precedence-climbing expression grammar (assignment, or, and,
  comparison, addition, multiplication, unary, primary)
- Fused comparison phrases: 'is equal to', 'is greater than', 'is less
  than' are assembled into single operator tokens
- Panic-free error collection with re-synchronization: a faulted statement
  is reported and dropped, and parsing resumes at the next likely
  statement head
*/
package parser

import (
	"fmt"
	"os"

	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
)

// Parser represents the parser state. It owns the full token buffer and a
// cursor into it; the phrase lookahead indexes the buffer directly, which
// is why the tokens are held as a slice rather than streamed.
type Parser struct {
	Tokens  []lexer.Token // Complete token buffer, terminated by one EOF token
	Current int           // Cursor: index of the next token to consume

	// Collect parsing errors instead of stopping at the first one.
	// Each entry mirrors a "Line N: Parse Error: ..." line already
	// written to standard error.
	Errors []string
}

// NewParser creates a Parser for the given source code. The source is
// tokenized eagerly so that the grammar's multi-word lookahead can index
// the buffer freely.
//
// Example:
//
//	par := NewParser("the story tells: 42 .")
//	statements := par.Parse()
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	return NewParserFromTokens(lex.ConsumeTokens())
}

// NewParserFromTokens creates a Parser over an already-scanned token
// buffer. The buffer must be terminated by an EOF token; ConsumeTokens
// guarantees that.
func NewParserFromTokens(tokens []lexer.Token) *Parser {
	return &Parser{
		Tokens: tokens,
		Errors: make([]string, 0),
	}
}

// Parse converts the token buffer into a sequence of top-level statements.
// A statement that fails to parse is reported on standard error as
//
//	Line N: Parse Error: <message>
//
// and dropped; the parser then re-synchronizes and keeps going, so one
// bad statement cannot take the rest of the program with it.
func (par *Parser) Parse() []StatementNode {
	statements := make([]StatementNode, 0)

	for !par.isAtEnd() {
		stmt, err := par.statement()
		if err != nil {
			par.addError(par.peek().Line, err)
			par.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}

	return statements
}

// addError records a parse error and writes it to standard error in the
// compiler's diagnostic format.
func (par *Parser) addError(line int, err error) {
	msg := fmt.Sprintf("Line %d: Parse Error: %s", line, err.Error())
	fmt.Fprintln(os.Stderr, msg)
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if any statement failed to parse.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parse error messages collected during Parse.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// synchronize skips tokens after a parse error until a plausible statement
// boundary: just past a period, or just before one of the words that can
// begin a statement. This keeps one malformed statement from producing a
// cascade of follow-on errors.
func (par *Parser) synchronize() {
	par.advance()

	for !par.isAtEnd() {
		if par.previous().Text == "." {
			return
		}

		switch par.peek().Text {
		case "a", "for", "if", "while", "perform", "the":
			return
		}

		par.advance()
	}
}

// peek returns the token at the cursor without consuming it.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.Current]
}

// peekAt returns the token k positions past the cursor, clamped to the
// terminating EOF token. The grammar never needs to look further than
// four tokens ahead.
func (par *Parser) peekAt(k int) lexer.Token {
	idx := par.Current + k
	if idx >= len(par.Tokens) {
		idx = len(par.Tokens) - 1
	}
	return par.Tokens[idx]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Current-1]
}

// advance consumes and returns the token at the cursor.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.Current++
	}
	return par.previous()
}

// isAtEnd reports whether the cursor has reached the EOF token.
func (par *Parser) isAtEnd() bool {
	return par.peek().Type == lexer.EOF_TYPE
}

// match checks whether the tokens at the cursor spell out the given word
// sequence; if they do, all of them are consumed. Nothing is consumed on
// a partial match, so callers can probe alternative phrases freely.
//
// Example:
//
//	if par.match("begins", "at") { ... }
func (par *Parser) match(texts ...string) bool {
	for i, text := range texts {
		if par.Current+i >= len(par.Tokens) || par.Tokens[par.Current+i].Text != text {
			return false
		}
	}

	par.Current += len(texts)

	return true
}

// nameToken is the expectation passed to consume when the grammar wants
// any identifier-shaped word (a variable, type, or procedure name) rather
// than one specific word.
const nameToken = "KEYWORD"

// consume checks the token at the cursor against an expectation and
// consumes it on success. The expectation is either a literal token text
// (".", "story") or the nameToken sentinel, which accepts any word token.
// On mismatch it returns an error carrying the caller's message, extended
// with what was actually found.
func (par *Parser) consume(expected string, message string) (lexer.Token, error) {
	if par.isAtEnd() {
		return lexer.Token{}, fmt.Errorf("Unexpected end of file. %s", message)
	}
	if expected == nameToken && par.peek().Type == lexer.KEYWORD_TYPE {
		return par.advance(), nil
	}
	if par.peek().Text == expected {
		return par.advance(), nil
	}

	return lexer.Token{}, fmt.Errorf("%s Got '%s' instead of '%s'.", message, par.peek().Text, expected)
}

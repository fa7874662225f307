/*
File    : LostRecord/lexer/token.go
Project : LostRecord narrative-language compiler
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the LostRecord language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element of the
// narrative surface syntax: prose words, literals, or punctuation.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the LostRecord language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents an unrecognized or malformed token
	INVALID_TYPE TokenType = "INVALID"

	// Words
	// KEYWORD_TYPE is any identifier-shaped word. The lexer performs no
	// reserved-word classification at all: "while", "story" and a user
	// variable name all lex identically, and the parser decides which
	// words form grammar phrases by matching their Text fields.
	KEYWORD_TYPE TokenType = "KEYWORD"
	// IDENTIFIER_TYPE exists for completeness of the token vocabulary;
	// the scanner never emits it because KEYWORD_TYPE covers every
	// identifier-shaped lexeme.
	IDENTIFIER_TYPE TokenType = "IDENTIFIER"

	// Literals
	// Token types for literal values in the source code
	INT_LIT    TokenType = "INT_LITERAL"    // Integer literal (e.g., 42, 1000)
	FLOAT_LIT  TokenType = "FLOAT_LITERAL"  // Floating-point literal (e.g., 3.14)
	STRING_LIT TokenType = "STRING_LITERAL" // String literal (e.g., "hello")
	BOOL_LIT   TokenType = "BOOL_LITERAL"   // Boolean literal (true or false)

	// Delimiters
	// Punctuation separating the prose
	PERIOD_DELIM TokenType = "." // Period - statement terminator
	COMMA_DELIM  TokenType = "," // Comma - separates clauses and arguments
	COLON_DELIM  TokenType = ":" // Colon - introduces blocks and told values
	QUOTE_DELIM  TokenType = "'" // Single quote - wraps procedure names

	// Structural Tokens
	LEFT_PAREN  TokenType = "(" // Left parenthesis - parameter and argument lists
	RIGHT_PAREN TokenType = ")" // Right parenthesis
)

// Token represents a single lexical token in LostRecord source code.
// It contains the token's type, the raw source slice it was scanned from,
// the decoded literal payload (for literal tokens), and the line it
// appeared on.
//
// Fields:
//   - Type: The category of the token (keyword, literal, punctuation)
//   - Text: The actual source slice this token represents
//   - Literal: The decoded payload for literal tokens - for STRING_LIT the
//     interior between the quotes, for numerics the digit string, for
//     BOOL_LIT "true" or "false"; empty for everything else
//   - Line: The line number where this token appears in the source (1-indexed)
//
// Example:
//
//	For the source word "story" at line 5:
//	Token{Type: KEYWORD_TYPE, Text: "story", Literal: "", Line: 5}
type Token struct {
	Type    TokenType // The type/category of this token
	Text    string    // The actual text from source code
	Literal string    // Decoded literal payload (literals only)
	Line    int       // Line number in source file (1-indexed)
}

// NewToken creates a new Token with the specified type and text.
// This is a basic constructor that does not set a literal payload or
// line metadata. Use NewTokenWithMetadata when position information
// is needed.
//
// Example:
//
//	token := NewToken(KEYWORD_TYPE, "story")
func NewToken(tokenType TokenType, text string) Token {
	return Token{
		Type: tokenType,
		Text: text,
	}
}

// NewTokenWithMetadata creates a new Token with full metadata, including
// the decoded literal payload and the source line. This constructor is
// used during scanning so that every emitted token carries the position
// information the parser's diagnostics rely on.
//
// Example:
//
//	token := NewTokenWithMetadata(INT_LIT, "42", "42", 10)
func NewTokenWithMetadata(tokenType TokenType, text string, literal string, line int) Token {
	return Token{
		Type:    tokenType,
		Text:    text,
		Literal: literal,
		Line:    line,
	}
}

// Print outputs a human-readable representation of the token to standard
// output. The format is "text:type", which shows both the source slice and
// its classification. This is primarily used for debugging.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Text, tok.Type)
}

// IsLiteral reports whether the token carries one of the four literal
// kinds. The parser uses this when recognizing primary expressions.
func (tok Token) IsLiteral() bool {
	switch tok.Type {
	case INT_LIT, FLOAT_LIT, STRING_LIT, BOOL_LIT:
		return true
	}
	return false
}

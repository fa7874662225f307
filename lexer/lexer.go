/*
File    : LostRecord/lexer/lexer.go
Project : LostRecord narrative-language compiler
*/
package lexer

// Lexer performs lexical analysis (tokenization) of LostRecord source code.
// It scans through the source text byte by byte, identifying and creating
// tokens that represent the syntactic elements of the narrative language.
//
// The lexer maintains state about its current position in the source code,
// including the line number for error reporting. It handles:
//   - Prose words (every identifier-shaped lexeme becomes a KEYWORD token;
//     the parser matches grammar phrases against the word text later)
//   - Literals (integers, floats, strings, booleans)
//   - Punctuation (parentheses, period, comma, colon, single quote)
//   - Comments (single-line //)
//   - Whitespace (which is skipped)
//
// Fields:
//   - Src: The complete source code as a string
//   - Current: The byte at the current position being examined
//   - Position: The current index in the source string (0-indexed)
//   - SrcLength: The total length of the source string
//   - Line: The current line number in the source (1-indexed)
type Lexer struct {
	Src       string // Entire source code in plain text format
	Current   byte   // Current character being examined
	Position  int    // Current position of pointer in the source code
	SrcLength int    // Length of source string
	Line      int    // Line number in source (1-indexed)
}

// NewLexer creates and initializes a new Lexer for the given source code.
// It sets up the initial state with the first character of the source
// and initializes line tracking to line 1.
//
// Example:
//
//	lexer := NewLexer("the story tells: 42 .")
func NewLexer(src string) Lexer {
	// Initialize current to null byte if source is empty
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
	}
}

// NextToken retrieves the next token from the source code stream.
// It skips whitespace and comments, then identifies and returns the next
// meaningful token. This is the main entry point for token-by-token
// scanning.
//
// The method handles:
//   - Punctuation tokens ( ) . , : '
//   - String literals (no escape processing; the body is kept verbatim)
//   - Numeric literals (integers and floats)
//   - Words (keywords in the loose sense - see KEYWORD_TYPE)
//
// An unrecognized byte is reported on standard error and emitted as an
// INVALID token so that scanning can continue.
//
// Returns:
//   - Token: The next token in the source, or EOF_TYPE if the end is reached
func (lex *Lexer) NextToken() Token {

	var token Token
	// Skip any whitespace and comments before the next token
	lex.IgnoreWhitespacesAndComments()

	// Match the current character to determine token type
	switch lex.Current {
	case '(':
		token = NewTokenWithMetadata(LEFT_PAREN, "(", "", lex.Line)
	case ')':
		token = NewTokenWithMetadata(RIGHT_PAREN, ")", "", lex.Line)
	case '.':
		token = NewTokenWithMetadata(PERIOD_DELIM, ".", "", lex.Line)
	case ',':
		token = NewTokenWithMetadata(COMMA_DELIM, ",", "", lex.Line)
	case ':':
		token = NewTokenWithMetadata(COLON_DELIM, ":", "", lex.Line)
	case '\'':
		token = NewTokenWithMetadata(QUOTE_DELIM, "'", "", lex.Line)
	case '/':
		// A lone slash is not part of the language. The '//' comment form
		// was already swallowed by IgnoreWhitespacesAndComments, so any
		// slash seen here is stray.
		token = NewTokenWithMetadata(INVALID_TYPE, "/", "", lex.Line)
	case 0:
		// Null byte indicates end of file
		token = NewTokenWithMetadata(EOF_TYPE, "", "", lex.Line)
	case '"':
		// String literal - delegate to specialized handler
		return readStringLiteral(lex)
	default:
		// Check for numeric literals, words, or invalid characters
		if isNumeric(lex.Current) {
			return readNumber(lex)
		} else if isAlpha(lex.Current) {
			return readWord(lex)
		}

		// Unrecognized leading byte: report it and emit an INVALID token
		reportUnexpectedCharacter(lex.Line, lex.Current)
		token = NewTokenWithMetadata(INVALID_TYPE, string(lex.Current), "", lex.Line)
	}

	// Move to the next character for the next token
	lex.Advance()

	return token
}

// Peek looks ahead to the next character in the source without consuming it.
// This is useful for lookahead when distinguishing '//' comments from a
// stray slash and float literals from a trailing period.
//
// Returns:
//   - byte: The next character, or 0 if at end of source
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0 // End of source
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the lexer to the next character in the source.
// It updates the Current byte and Position.
// Line tracking is handled where newlines are consumed.
//
// After calling Advance:
//   - Position is incremented
//   - Current is set to the new character (or 0 if at end)
func (lex *Lexer) Advance() {
	lex.Position++

	if lex.Position >= lex.SrcLength {
		lex.Current = 0              // Null byte indicates end
		lex.Position = lex.SrcLength // Keep position at end
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespacesAndComments skips over whitespace and comments in the
// source. This method is called before scanning each meaningful token.
//
// It handles:
//   - Whitespace characters (space, tab, carriage return)
//   - Newlines (incrementing the Line counter)
//   - Single-line comments (// ...)
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for {
		if isWhitespace(lex.Current) {
			// Track line numbers when encountering newlines
			if lex.Current == '\n' {
				lex.Line++
			}
			lex.Advance()
		} else if lex.Current == '/' && lex.Peek() == '/' {
			// Single-line comment detected
			lex.SkipSingleLineComment()
		} else {
			// No more whitespace or comments
			break
		}
	}
}

// SkipSingleLineComment skips over a single-line comment (// ...).
// It advances the lexer until a newline or end of file is reached.
// The newline itself is not consumed, so line tracking stays correct.
//
// Example:
//
//	Source: "// a remark\nthe story"
//	After skip: lexer is positioned at '\n'
func (lex *Lexer) SkipSingleLineComment() {
	// Skip the '//' characters
	lex.Advance()
	lex.Advance()

	// Skip until end of line or end of file
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// ConsumeTokens tokenizes the entire source code and returns all tokens,
// terminated by exactly one EOF token. It repeatedly calls NextToken until
// EOF is reached. The parser indexes freely into the returned slice for
// its multi-word phrase lookahead, and the trailing EOF token is the
// sentinel that bounds that lookahead.
//
// Example:
//
//	lexer := NewLexer("the story tells: 42 .")
//	tokens := lexer.ConsumeTokens()
//	// tokens: [the story tells : 42 . EOF]
func (lex *Lexer) ConsumeTokens() []Token {
	tokens := make([]Token, 0)
	for {
		token := lex.NextToken()
		tokens = append(tokens, token)
		if token.Type == EOF_TYPE {
			break
		}
	}
	return tokens
}

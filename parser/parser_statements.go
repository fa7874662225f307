/*
File    : LostRecord/parser/parser_statements.go
Project : LostRecord narrative-language compiler
*/
package parser

import (
	"fmt"

	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
)

// statement dispatches on the phrase at the cursor and parses one
// statement. The checks are ordered so that the longer phrase prefixes
// win: 'the result', 'the story ends at' and 'the story' all begin with
// 'the', and 'for procedure' must not shadow a variable named 'for'
// appearing in an expression statement.
func (par *Parser) statement() (StatementNode, error) {
	if par.peek().Text == "a" && par.peekAt(1).Text == "value" {
		return par.declaration()
	}
	if par.peek().Text == "for" && par.peekAt(1).Text == "procedure" {
		return par.procedureDeclaration()
	}
	if par.peek().Text == "perform" {
		return par.procedureCallStatement()
	}
	if par.peek().Text == "the" && par.peekAt(1).Text == "result" {
		return par.returnStatement()
	}
	if par.peek().Text == "the" && par.peekAt(1).Text == "story" && par.peekAt(2).Text == "ends" {
		if par.peekAt(3).Text == "at" {
			return par.breakStatement()
		}

		return par.printStatement()
	}
	if par.peek().Text == "the" && par.peekAt(1).Text == "story" {
		return par.printStatement()
	}
	if par.peek().Text == "if" {
		return par.ifStatement()
	}
	if par.peek().Text == "while" {
		return par.whileStatement()
	}

	return par.expressionStatement()
}

// declaration parses
//
//	a value <NAME>, type <TYPE>, (begins at | is revealed as) <EXPR>.
//
// The introduction phrase decides IsMutable; neither mutability nor the
// declared type is enforced by later stages.
func (par *Parser) declaration() (StatementNode, error) {
	par.advance() // a
	par.advance() // value
	name, err := par.consume(nameToken, "Expected variable name.")
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(",", "Expected ','."); err != nil {
		return nil, err
	}
	if _, err := par.consume("type", "Expected 'type'."); err != nil {
		return nil, err
	}
	varType, err := par.consume(nameToken, "Expected type name.")
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(",", "Expected ','."); err != nil {
		return nil, err
	}

	var isMutable bool
	if par.match("begins", "at") {
		isMutable = true
	} else if par.match("is", "revealed", "as") {
		isMutable = false
	} else {
		return nil, fmt.Errorf("Expected 'begins at' or 'is revealed as'.")
	}

	initializer, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(".", "Expected '.' after declaration."); err != nil {
		return nil, err
	}

	return &DeclarationStatementNode{Name: name, VarType: varType, Initializer: initializer, IsMutable: isMutable}, nil
}

// procedureDeclaration parses
//
//	for procedure named '<NAME>' accepting (<PARAMS>) [and yielding <TYPE>],
//	tell the following story: <BLOCK>
//
// The yielded type clause is optional; when absent the ReturnType token
// stays zero-valued.
func (par *Parser) procedureDeclaration() (StatementNode, error) {
	words := []string{"for", "procedure", "named"}
	for _, word := range words {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return nil, err
		}
	}
	if _, err := par.consume("'", "Expected single quote before procedure name."); err != nil {
		return nil, err
	}
	name, err := par.consume(nameToken, "Expected procedure name.")
	if err != nil {
		return nil, err
	}
	if _, err := par.consume("'", "Expected single quote after procedure name."); err != nil {
		return nil, err
	}

	if _, err := par.consume("accepting", "Expected 'accepting'."); err != nil {
		return nil, err
	}
	if _, err := par.consume("(", "Expected '(' for parameter list."); err != nil {
		return nil, err
	}

	params := make([]Param, 0)
	if par.peek().Text != ")" {
		for {
			paramName, err := par.consume(nameToken, "Expected parameter name.")
			if err != nil {
				return nil, err
			}
			if _, err := par.consume("as", "Expected 'as'."); err != nil {
				return nil, err
			}
			paramType, err := par.consume(nameToken, "Expected parameter type.")
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Name: paramName, Type: paramType})

			if !par.match(",") {
				break
			}
		}
	}

	if _, err := par.consume(")", "Expected ')' after parameter list."); err != nil {
		return nil, err
	}

	var returnType lexer.Token
	if par.match("and", "yielding") {
		returnType, err = par.consume(nameToken, "Expected return type.")
		if err != nil {
			return nil, err
		}
	}

	if _, err := par.consume(",", "Expected ',' after procedure header."); err != nil {
		return nil, err
	}
	if err := par.consumeStoryIntro(); err != nil {
		return nil, err
	}
	body, err := par.block()
	if err != nil {
		return nil, err
	}

	return &ProcedureDeclStatementNode{Name: name, Params: params, ReturnType: returnType, Body: body}, nil
}

// procedureCallStatement parses
//
//	perform the story of '<NAME>' using (<ARGS>).
func (par *Parser) procedureCallStatement() (StatementNode, error) {
	words := []string{"perform", "the", "story", "of"}
	for _, word := range words {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return nil, err
		}
	}
	if _, err := par.consume("'", "Expected single quote before procedure name."); err != nil {
		return nil, err
	}
	name, err := par.consume(nameToken, "Expected procedure name to call.")
	if err != nil {
		return nil, err
	}
	if _, err := par.consume("'", "Expected single quote after procedure name."); err != nil {
		return nil, err
	}

	arguments, err := par.argumentList()
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(".", "Expected '.' after procedure call."); err != nil {
		return nil, err
	}

	return &ProcedureCallStatementNode{Callee: name, Arguments: arguments}, nil
}

// returnStatement parses
//
//	the result shall be <EXPR>.
func (par *Parser) returnStatement() (StatementNode, error) {
	words := []string{"the", "result", "shall", "be"}
	for _, word := range words {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return nil, err
		}
	}
	value, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(".", "Expected '.' after return value."); err != nil {
		return nil, err
	}

	return &ReturnStatementNode{Value: value}, nil
}

// breakStatement parses
//
//	the story ends at this moment.
func (par *Parser) breakStatement() (StatementNode, error) {
	words := []string{"the", "story", "ends", "at", "this", "moment"}
	for _, word := range words {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return nil, err
		}
	}
	if _, err := par.consume(".", "Expected '.' after 'the story ends at this moment'."); err != nil {
		return nil, err
	}

	return &BreakStatementNode{}, nil
}

// printStatement parses the two forms that share the 'the story' prefix:
//
//	the story tells: <EXPR>.
//	the story ends a line.
func (par *Parser) printStatement() (StatementNode, error) {
	if _, err := par.consume("the", "Expected 'the'."); err != nil {
		return nil, err
	}
	if _, err := par.consume("story", "Expected 'story'."); err != nil {
		return nil, err
	}

	if par.peek().Text == "tells" {
		par.advance()
		if _, err := par.consume(":", "Expected ':' after 'tells'."); err != nil {
			return nil, err
		}
		value, err := par.expression()
		if err != nil {
			return nil, err
		}
		if _, err := par.consume(".", "Expected '.' after print expression."); err != nil {
			return nil, err
		}
		return &PrintStatementNode{Expr: value}, nil
	}

	if par.peek().Text == "ends" {
		par.advance()
		if _, err := par.consume("a", "Expected 'a'."); err != nil {
			return nil, err
		}
		if _, err := par.consume("line", "Expected 'line'."); err != nil {
			return nil, err
		}
		if _, err := par.consume(".", "Expected '.' after 'ends a line'."); err != nil {
			return nil, err
		}
		return &NewlineStatementNode{}, nil
	}

	return nil, fmt.Errorf("Unrecognized story action. Expected 'tells:' or 'ends a line'.")
}

// ifStatement parses
//
//	if <EXPR> is met, tell the following story: <BLOCK>
//
// There is no else arm in the grammar.
func (par *Parser) ifStatement() (StatementNode, error) {
	if _, err := par.consume("if", "Expected 'if'."); err != nil {
		return nil, err
	}
	condition, err := par.expression()
	if err != nil {
		return nil, err
	}

	if _, err := par.consume("is", "Expected 'is' after the condition."); err != nil {
		return nil, err
	}
	if _, err := par.consume("met", "Expected 'met' after 'is'."); err != nil {
		return nil, err
	}
	if _, err := par.consume(",", "Expected ',' after 'met'."); err != nil {
		return nil, err
	}
	if err := par.consumeStoryIntro(); err != nil {
		return nil, err
	}
	thenBranch, err := par.block()
	if err != nil {
		return nil, err
	}

	return &IfStatementNode{Condition: condition, ThenBranch: thenBranch}, nil
}

// whileStatement parses
//
//	while <EXPR> holds, tell the following story: <BLOCK>
func (par *Parser) whileStatement() (StatementNode, error) {
	if _, err := par.consume("while", "Expected 'while'."); err != nil {
		return nil, err
	}
	condition, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume("holds", "Expected 'holds' after condition."); err != nil {
		return nil, err
	}
	if _, err := par.consume(",", "Expected ',' after 'holds'."); err != nil {
		return nil, err
	}
	if err := par.consumeStoryIntro(); err != nil {
		return nil, err
	}
	body, err := par.block()
	if err != nil {
		return nil, err
	}

	return &WhileStatementNode{Condition: condition, Body: body}, nil
}

// consumeStoryIntro consumes the 'tell the following story:' run shared
// by if, while and procedure headers.
func (par *Parser) consumeStoryIntro() error {
	words := []string{"tell", "the", "following", "story"}
	for _, word := range words {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return err
		}
	}
	if _, err := par.consume(":", "Expected ':' after 'story'."); err != nil {
		return err
	}
	return nil
}

// block parses
//
//	beginning of the story <STMT>* end of the story.
//
// Statements accumulate until the word 'end' appears at the cursor. If
// the file runs out first the block is unterminated, which is a hard
// error for the whole statement.
func (par *Parser) block() (StatementNode, error) {
	words := []string{"beginning", "of", "the", "story"}
	for _, word := range words {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return nil, err
		}
	}

	statements := make([]StatementNode, 0)
	for par.peek().Text != "end" {
		stmt, err := par.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		if par.isAtEnd() {
			return nil, fmt.Errorf("Unterminated block statement, missing 'end of the story'.")
		}
	}

	closing := []string{"end", "of", "the", "story"}
	for _, word := range closing {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return nil, err
		}
	}
	if _, err := par.consume(".", "Expected '.' after 'end of the story'."); err != nil {
		return nil, err
	}

	return &BlockStatementNode{Statements: statements}, nil
}

// expressionStatement parses a bare expression followed by the statement
// terminator.
func (par *Parser) expressionStatement() (StatementNode, error) {
	expr, err := par.expression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(".", "Expected '.' after a statement."); err != nil {
		return nil, err
	}

	return &ExpressionStatementNode{Expr: expr}, nil
}

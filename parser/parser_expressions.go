/*
File    : LostRecord/parser/parser_expressions.go
Project : LostRecord narrative-language compiler
*/
package parser

import (
	"fmt"

	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
)

// expression is the lowest-precedence rule. Assignment is recognized by a
// five-token lookahead for 'the value <NAME> continues as'; the value side
// re-enters expression, which makes assignment right-associative:
//
//	the value x continues as the value y continues as 5
//
// parses as Assign(x, Assign(y, 5)).
func (par *Parser) expression() (ExpressionNode, error) {
	if par.peek().Text == "the" && len(par.Tokens) > par.Current+4 &&
		par.peekAt(1).Text == "value" && par.peekAt(3).Text == "continues" && par.peekAt(4).Text == "as" {
		par.advance() // the
		par.advance() // value
		name, err := par.consume(nameToken, "Expected variable name in assignment.")
		if err != nil {
			return nil, err
		}
		if _, err := par.consume("continues", "Expected 'continues as'."); err != nil {
			return nil, err
		}
		if _, err := par.consume("as", "Expected 'continues as'."); err != nil {
			return nil, err
		}
		value, err := par.expression()
		if err != nil {
			return nil, err
		}

		return &AssignExpressionNode{Name: name, Value: value}, nil
	}

	return par.logicOr()
}

// logicOr parses a left-associative chain of 'or' operations.
func (par *Parser) logicOr() (ExpressionNode, error) {
	expr, err := par.logicAnd()
	if err != nil {
		return nil, err
	}

	for par.match("or") {
		op := par.previous()
		right, err := par.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: op, Right: right}
	}

	return expr, nil
}

// logicAnd parses a left-associative chain of 'and' operations.
func (par *Parser) logicAnd() (ExpressionNode, error) {
	expr, err := par.comparison()
	if err != nil {
		return nil, err
	}

	for par.match("and") {
		op := par.previous()
		right, err := par.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: op, Right: right}
	}

	return expr, nil
}

// comparison assembles the fused three-word comparison phrases. The word
// 'is' alone is ambiguous: 'is met' closes an if-condition, and 'is' can
// also introduce 'is revealed as' in surrounding prose, so the rule only
// commits after seeing 'is' followed by greater/less/equal. Anything else
// rolls the cursor back over the consumed 'is' and leaves the loop.
func (par *Parser) comparison() (ExpressionNode, error) {
	expr, err := par.addition()
	if err != nil {
		return nil, err
	}

	for par.peek().Text == "is" {
		if par.peekAt(1).Text == "met" {
			break
		}

		op := par.advance()

		switch par.peek().Text {
		case "greater", "less", "equal":
			opPart2 := par.advance()
			op.Text += " " + opPart2.Text

			if opPart2.Text == "greater" || opPart2.Text == "less" {
				if _, err := par.consume("than", "Expected 'than'."); err != nil {
					return nil, err
				}
				op.Text += " than"
			} else {
				if _, err := par.consume("to", "Expected 'to'."); err != nil {
					return nil, err
				}
				op.Text += " to"
			}

			right, err := par.addition()
			if err != nil {
				return nil, err
			}
			expr = &ComparisonExpressionNode{Left: expr, Operation: op, Right: right}
		default:
			par.Current--
			return expr, nil
		}
	}

	return expr, nil
}

// addition parses a left-associative chain of 'plus' and 'minus'
// operations.
func (par *Parser) addition() (ExpressionNode, error) {
	expr, err := par.multiplication()
	if err != nil {
		return nil, err
	}

	for par.peek().Text == "plus" || par.peek().Text == "minus" {
		op := par.advance()
		right, err := par.multiplication()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: op, Right: right}
	}

	return expr, nil
}

// multiplication parses a left-associative chain of 'multiplied by' and
// 'divided by' operations. The operator token keeps only the head word;
// the trailing 'by' is consumed and discarded.
func (par *Parser) multiplication() (ExpressionNode, error) {
	expr, err := par.unary()
	if err != nil {
		return nil, err
	}

	for par.peek().Text == "multiplied" || par.peek().Text == "divided" {
		op := par.advance()
		if _, err := par.consume("by", "Expected 'by'."); err != nil {
			return nil, err
		}
		right, err := par.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: op, Right: right}
	}

	return expr, nil
}

// unary parses the prefix 'not' operator, right-associatively.
func (par *Parser) unary() (ExpressionNode, error) {
	if par.match("not") {
		op := par.previous()
		right, err := par.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpressionNode{Operation: op, Right: right}, nil
	}

	return par.primary()
}

// primary parses the leaves of the expression grammar: the four literal
// kinds, the 'the story of' call form, and bare variable references.
func (par *Parser) primary() (ExpressionNode, error) {
	if par.peek().IsLiteral() {
		return &LiteralExpressionNode{Value: par.advance()}, nil
	}
	if par.peek().Text == "the" && par.peekAt(1).Text == "story" {
		return par.functionCallExpression()
	}
	if par.peek().Type == lexer.KEYWORD_TYPE {
		return &VariableExpressionNode{Name: par.advance()}, nil
	}

	return nil, fmt.Errorf("Expected an expression, got '%s'.", par.peek().Text)
}

// functionCallExpression parses the expression form of a call:
//
//	the story of '<NAME>' using (<ARGS>)
//
// It is the statement form minus 'perform' and the terminating period.
func (par *Parser) functionCallExpression() (ExpressionNode, error) {
	words := []string{"the", "story", "of"}
	for _, word := range words {
		if _, err := par.consume(word, fmt.Sprintf("Expected '%s'.", word)); err != nil {
			return nil, err
		}
	}
	if _, err := par.consume("'", "Expected ' before function name."); err != nil {
		return nil, err
	}
	name, err := par.consume(nameToken, "Expected function name.")
	if err != nil {
		return nil, err
	}
	if _, err := par.consume("'", "Expected ' after function name."); err != nil {
		return nil, err
	}

	arguments, err := par.argumentList()
	if err != nil {
		return nil, err
	}

	return &FunctionCallExpressionNode{Callee: name, Arguments: arguments}, nil
}

// argumentList parses '(' <EXPR> (, <EXPR>)* ')' with an allowed empty
// list, shared by both call forms.
func (par *Parser) argumentList() ([]ExpressionNode, error) {
	if _, err := par.consume("using", "Expected 'using'."); err != nil {
		return nil, err
	}
	if _, err := par.consume("(", "Expected '(' for arguments."); err != nil {
		return nil, err
	}

	arguments := make([]ExpressionNode, 0)
	if par.peek().Text != ")" {
		for {
			arg, err := par.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)

			if !par.match(",") {
				break
			}
		}
	}

	if _, err := par.consume(")", "Expected ')' after arguments."); err != nil {
		return nil, err
	}

	return arguments, nil
}

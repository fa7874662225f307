/*
File    : LostRecord/parser/node.go
Project : LostRecord narrative-language compiler
*/
package parser

import (
	"strings"

	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
)

// Node: base interface for all nodes of the AST
// Literal(): returns a readable reconstruction of the node's source text
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker method distinguishing the statement family
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// Expression(): marker method distinguishing the expression family
type ExpressionNode interface {
	Node
	Expression()
}

// Param: one procedure parameter, an ordered (name, type) pair of word
// tokens as they appeared in the 'accepting (...)' clause.
type Param struct {
	Name lexer.Token // The parameter name word
	Type lexer.Token // The parameter type word
}

// LiteralExpressionNode: represents a literal value in the source code
// Example: 42, 3.14, "hello", true
type LiteralExpressionNode struct {
	Value lexer.Token // One of the four literal token kinds
}

// LiteralExpressionNode.Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	return node.Value.Text
}

// LiteralExpressionNode.Expression(): marker
func (node *LiteralExpressionNode) Expression() {

}

// VariableExpressionNode: represents a bare variable reference
// Example: counter, hero_age
type VariableExpressionNode struct {
	Name lexer.Token // The referenced variable's word token
}

// VariableExpressionNode.Literal(): string representation of the node
func (node *VariableExpressionNode) Literal() string {
	return node.Name.Text
}

// VariableExpressionNode.Expression(): marker
func (node *VariableExpressionNode) Expression() {

}

// BinaryExpressionNode: represents an arithmetic or logical operation with
// two operands. The operator token's Text is one of the spoken operator
// words: plus, minus, multiplied, divided, and, or.
// Example: x plus 1, flag and ready
type BinaryExpressionNode struct {
	Left      ExpressionNode // Left operand expression
	Operation lexer.Token    // The operator word token
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Text + " " + node.Right.Literal()
}

// BinaryExpressionNode.Expression(): marker
func (node *BinaryExpressionNode) Expression() {

}

// ComparisonExpressionNode: represents a comparison between two operands.
// The operator token's Text is always the fused three-word phrase the
// parser assembled: "is equal to", "is greater than", or "is less than".
// Example: age is greater than 10
type ComparisonExpressionNode struct {
	Left      ExpressionNode // Left operand expression
	Operation lexer.Token    // The fused comparison phrase token
	Right     ExpressionNode // Right operand expression
}

// ComparisonExpressionNode.Literal(): string representation of the node
func (node *ComparisonExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Text + " " + node.Right.Literal()
}

// ComparisonExpressionNode.Expression(): marker
func (node *ComparisonExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a prefix operation on one operand.
// The only unary operator in the language is the word "not".
// Example: not done
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator word token ("not")
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Text + " " + node.Right.Literal()
}

// UnaryExpressionNode.Expression(): marker
func (node *UnaryExpressionNode) Expression() {

}

// AssignExpressionNode: represents a re-binding of an existing variable
// Example: the value x continues as x plus 1
type AssignExpressionNode struct {
	Name  lexer.Token    // The assigned variable's word token
	Value ExpressionNode // The expression whose value is stored
}

// AssignExpressionNode.Literal(): string representation of the node
func (node *AssignExpressionNode) Literal() string {
	return "the value " + node.Name.Text + " continues as " + node.Value.Literal()
}

// AssignExpressionNode.Expression(): marker
func (node *AssignExpressionNode) Expression() {

}

// FunctionCallExpressionNode: represents a procedure call used for its
// yielded value inside an expression
// Example: the story of 'double' using (21)
type FunctionCallExpressionNode struct {
	Callee    lexer.Token      // The called procedure's name word
	Arguments []ExpressionNode // Ordered argument expressions
}

// FunctionCallExpressionNode.Literal(): string representation of the node
func (node *FunctionCallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return "the story of '" + node.Callee.Text + "' using (" + strings.Join(args, ", ") + ")"
}

// FunctionCallExpressionNode.Expression(): marker
func (node *FunctionCallExpressionNode) Expression() {

}

// DeclarationStatementNode: represents a variable declaration statement.
// IsMutable records which introduction phrase was used ('begins at' vs
// 'is revealed as'); nothing downstream enforces it.
// Example: a value x, type int, begins at 3 .
type DeclarationStatementNode struct {
	Name        lexer.Token    // The declared variable's word token
	VarType     lexer.Token    // The declared type word (int, bool, string)
	Initializer ExpressionNode // The initialization expression
	IsMutable   bool           // true for 'begins at', false for 'is revealed as'
}

// DeclarationStatementNode.Literal(): string representation of the node
func (node *DeclarationStatementNode) Literal() string {
	intro := "is revealed as"
	if node.IsMutable {
		intro = "begins at"
	}
	return "a value " + node.Name.Text + ", type " + node.VarType.Text + ", " + intro + " " + node.Initializer.Literal()
}

// DeclarationStatementNode.Statement(): marker
func (node *DeclarationStatementNode) Statement() {

}

// ExpressionStatementNode: represents a bare expression used as a statement
// Example: the value x continues as 5 .
type ExpressionStatementNode struct {
	Expr ExpressionNode // The wrapped expression
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal()
}

// ExpressionStatementNode.Statement(): marker
func (node *ExpressionStatementNode) Statement() {

}

// IfStatementNode: represents a conditional statement. The grammar has no
// else arm.
// Example: if x is less than 2 is met, tell the following story: ...
type IfStatementNode struct {
	Condition  ExpressionNode // The condition expression
	ThenBranch StatementNode  // Executed when the condition is non-zero
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	return "if " + node.Condition.Literal() + " is met, tell the following story: " + node.ThenBranch.Literal()
}

// IfStatementNode.Statement(): marker
func (node *IfStatementNode) Statement() {

}

// WhileStatementNode: represents a loop statement
// Example: while x is less than 10 holds, tell the following story: ...
type WhileStatementNode struct {
	Condition ExpressionNode // The loop condition expression
	Body      StatementNode  // Repeated while the condition is non-zero
}

// WhileStatementNode.Literal(): string representation of the node
func (node *WhileStatementNode) Literal() string {
	return "while " + node.Condition.Literal() + " holds, tell the following story: " + node.Body.Literal()
}

// WhileStatementNode.Statement(): marker
func (node *WhileStatementNode) Statement() {

}

// BlockStatementNode: represents a bracketed run of statements
// Example: beginning of the story ... end of the story.
type BlockStatementNode struct {
	Statements []StatementNode // Ordered statements of the block
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "beginning of the story "
	for _, stmt := range node.Statements {
		str += stmt.Literal()
		str += " . "
	}
	str += "end of the story"
	return str
}

// BlockStatementNode.Statement(): marker
func (node *BlockStatementNode) Statement() {

}

// PrintStatementNode: represents the telling form of the story statement
// Example: the story tells: x plus 1 .
type PrintStatementNode struct {
	Expr ExpressionNode // The told expression
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "the story tells: " + node.Expr.Literal()
}

// PrintStatementNode.Statement(): marker
func (node *PrintStatementNode) Statement() {

}

// NewlineStatementNode: represents the line-break form of the story
// statement. It carries no operands.
// Example: the story ends a line .
type NewlineStatementNode struct {
}

// NewlineStatementNode.Literal(): string representation of the node
func (node *NewlineStatementNode) Literal() string {
	return "the story ends a line"
}

// NewlineStatementNode.Statement(): marker
func (node *NewlineStatementNode) Statement() {

}

// ProcedureDeclStatementNode: represents a procedure definition. The
// ReturnType token stays zero-valued when the 'and yielding' clause is
// absent; nothing downstream reads it.
// Example: for procedure named 'double' accepting (n as int) and yielding int, ...
type ProcedureDeclStatementNode struct {
	Name       lexer.Token   // The procedure's name word
	Params     []Param       // Ordered (name, type) parameter pairs
	ReturnType lexer.Token   // Optional yielded type word
	Body       StatementNode // The procedure body block
}

// ProcedureDeclStatementNode.Literal(): string representation of the node
func (node *ProcedureDeclStatementNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, param.Name.Text+" as "+param.Type.Text)
	}
	res := "for procedure named '" + node.Name.Text + "' accepting (" + strings.Join(params, ", ") + ")"
	if node.ReturnType.Text != "" {
		res += " and yielding " + node.ReturnType.Text
	}
	return res + ", tell the following story: " + node.Body.Literal()
}

// ProcedureDeclStatementNode.Statement(): marker
func (node *ProcedureDeclStatementNode) Statement() {

}

// ProcedureCallStatementNode: represents a procedure call in statement
// position, where any yielded value is discarded
// Example: perform the story of 'greet' using () .
type ProcedureCallStatementNode struct {
	Callee    lexer.Token      // The called procedure's name word
	Arguments []ExpressionNode // Ordered argument expressions
}

// ProcedureCallStatementNode.Literal(): string representation of the node
func (node *ProcedureCallStatementNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return "perform the story of '" + node.Callee.Text + "' using (" + strings.Join(args, ", ") + ")"
}

// ProcedureCallStatementNode.Statement(): marker
func (node *ProcedureCallStatementNode) Statement() {

}

// ReturnStatementNode: represents yielding a value from a procedure.
// A return always carries an expression; a bare return is not part of
// the grammar.
// Example: the result shall be n multiplied by 2 .
type ReturnStatementNode struct {
	Value ExpressionNode // The yielded expression
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	return "the result shall be " + node.Value.Literal()
}

// ReturnStatementNode.Statement(): marker
func (node *ReturnStatementNode) Statement() {

}

// BreakStatementNode: represents leaving the innermost loop. It carries
// no operands.
// Example: the story ends at this moment .
type BreakStatementNode struct {
}

// BreakStatementNode.Literal(): string representation of the node
func (node *BreakStatementNode) Literal() string {
	return "the story ends at this moment"
}

// BreakStatementNode.Statement(): marker
func (node *BreakStatementNode) Statement() {

}

/*
File    : LostRecord/parser/print_visitor.go
Project : LostRecord narrative-language compiler
*/
package parser

import (
	"bytes"
	"fmt"
)

// INDENT_SIZE is the number of spaces each nesting level adds.
const INDENT_SIZE = 4

// PrintingVisitor renders a parsed statement sequence as an indented
// tree, one node per line. The REPL's /ast toggle uses it to show what
// the parser made of a line before the assembly appears, and the tests
// use it to assert on tree shapes.
type PrintingVisitor struct {
	Indent int          // Current indentation, in spaces
	Buf    bytes.Buffer // Accumulated tree text
}

// String returns the accumulated tree text.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// indent writes the current indentation prefix.
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line to the buffer.
func (p *PrintingVisitor) line(format string, args ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// VisitStatements renders a whole statement sequence.
func (p *PrintingVisitor) VisitStatements(statements []StatementNode) {
	for _, stmt := range statements {
		p.VisitStatement(stmt)
	}
}

// VisitStatement renders one statement subtree.
func (p *PrintingVisitor) VisitStatement(stmt StatementNode) {
	switch node := stmt.(type) {
	case *DeclarationStatementNode:
		intro := "is revealed as"
		if node.IsMutable {
			intro = "begins at"
		}
		p.line("Declaration [%s: %s] (%s)", node.Name.Text, node.VarType.Text, intro)
		p.nested(func() { p.VisitExpression(node.Initializer) })
	case *ExpressionStatementNode:
		p.line("ExpressionStatement")
		p.nested(func() { p.VisitExpression(node.Expr) })
	case *IfStatementNode:
		p.line("If")
		p.nested(func() {
			p.VisitExpression(node.Condition)
			p.VisitStatement(node.ThenBranch)
		})
	case *WhileStatementNode:
		p.line("While")
		p.nested(func() {
			p.VisitExpression(node.Condition)
			p.VisitStatement(node.Body)
		})
	case *BlockStatementNode:
		p.line("Block (%d statements)", len(node.Statements))
		p.nested(func() { p.VisitStatements(node.Statements) })
	case *PrintStatementNode:
		p.line("Print")
		p.nested(func() { p.VisitExpression(node.Expr) })
	case *NewlineStatementNode:
		p.line("Newline")
	case *ProcedureDeclStatementNode:
		params := ""
		for i, param := range node.Params {
			if i > 0 {
				params += ", "
			}
			params += param.Name.Text + " as " + param.Type.Text
		}
		p.line("ProcedureDecl ['%s' (%s) yielding %q]", node.Name.Text, params, node.ReturnType.Text)
		p.nested(func() { p.VisitStatement(node.Body) })
	case *ProcedureCallStatementNode:
		p.line("ProcedureCall ['%s', %d arguments]", node.Callee.Text, len(node.Arguments))
		p.nested(func() {
			for _, arg := range node.Arguments {
				p.VisitExpression(arg)
			}
		})
	case *ReturnStatementNode:
		p.line("Return")
		p.nested(func() { p.VisitExpression(node.Value) })
	case *BreakStatementNode:
		p.line("Break")
	default:
		p.line("UnknownStatement (%s)", stmt.Literal())
	}
}

// VisitExpression renders one expression subtree.
func (p *PrintingVisitor) VisitExpression(expr ExpressionNode) {
	switch node := expr.(type) {
	case *LiteralExpressionNode:
		p.line("Literal [%s %s]", node.Value.Type, node.Value.Text)
	case *VariableExpressionNode:
		p.line("Variable [%s]", node.Name.Text)
	case *BinaryExpressionNode:
		p.line("Binary [%s]", node.Operation.Text)
		p.nested(func() {
			p.VisitExpression(node.Left)
			p.VisitExpression(node.Right)
		})
	case *ComparisonExpressionNode:
		p.line("Comparison [%s]", node.Operation.Text)
		p.nested(func() {
			p.VisitExpression(node.Left)
			p.VisitExpression(node.Right)
		})
	case *UnaryExpressionNode:
		p.line("Unary [%s]", node.Operation.Text)
		p.nested(func() { p.VisitExpression(node.Right) })
	case *AssignExpressionNode:
		p.line("Assign [%s]", node.Name.Text)
		p.nested(func() { p.VisitExpression(node.Value) })
	case *FunctionCallExpressionNode:
		p.line("FunctionCall ['%s', %d arguments]", node.Callee.Text, len(node.Arguments))
		p.nested(func() {
			for _, arg := range node.Arguments {
				p.VisitExpression(arg)
			}
		})
	default:
		p.line("UnknownExpression (%s)", expr.Literal())
	}
}

// nested runs a render step one indentation level deeper.
func (p *PrintingVisitor) nested(render func()) {
	p.Indent += INDENT_SIZE
	render()
	p.Indent -= INDENT_SIZE
}

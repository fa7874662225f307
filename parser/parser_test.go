/*
File    : LostRecord/parser/parser_test.go
Project : LostRecord narrative-language compiler
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
)

func TestParser_Parse_OperatorPrecedence(t *testing.T) {

	src := `1 plus 2 multiplied by 3 .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(statements))

	exprStmt, can := statements[0].(*ExpressionStatementNode)
	assert.True(t, can)

	// multiplication binds tighter: Binary(plus, 1, Binary(multiplied, 2, 3))
	plus, can := exprStmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "plus", plus.Operation.Text)

	left, can := plus.Left.(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "1", left.Value.Text)

	mul, can := plus.Right.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "multiplied", mul.Operation.Text)
	assert.Equal(t, "2", mul.Left.(*LiteralExpressionNode).Value.Text)
	assert.Equal(t, "3", mul.Right.(*LiteralExpressionNode).Value.Text)
}

func TestParser_Parse_UnaryBindsTighterThanAnd(t *testing.T) {

	src := `not a and b .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(statements))

	exprStmt := statements[0].(*ExpressionStatementNode)

	// Binary(and, Unary(not, a), b)
	and, can := exprStmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "and", and.Operation.Text)

	not, can := and.Left.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "not", not.Operation.Text)
	assert.Equal(t, "a", not.Right.(*VariableExpressionNode).Name.Text)

	assert.Equal(t, "b", and.Right.(*VariableExpressionNode).Name.Text)
}

func TestParser_Parse_AssignmentIsRightAssociative(t *testing.T) {

	src := `the value x continues as the value y continues as 5 .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(statements))

	exprStmt := statements[0].(*ExpressionStatementNode)

	// Assign(x, Assign(y, 5))
	outer, can := exprStmt.Expr.(*AssignExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "x", outer.Name.Text)

	inner, can := outer.Value.(*AssignExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "y", inner.Name.Text)
	assert.Equal(t, "5", inner.Value.(*LiteralExpressionNode).Value.Text)
}

func TestParser_Parse_FusedComparisonPhrases(t *testing.T) {

	tests := []struct {
		Src      string
		Expected string
	}{
		{`1 is equal to 2 .`, "is equal to"},
		{`a is greater than b .`, "is greater than"},
		{`a is less than b .`, "is less than"},
	}

	for _, test := range tests {
		par := NewParser(test.Src)
		statements := par.Parse()

		assert.False(t, par.HasErrors(), "src: %s", test.Src)
		assert.Equal(t, 1, len(statements), "src: %s", test.Src)

		exprStmt := statements[0].(*ExpressionStatementNode)
		cmp, can := exprStmt.Expr.(*ComparisonExpressionNode)
		assert.True(t, can, "src: %s", test.Src)
		assert.Equal(t, test.Expected, cmp.Operation.Text, "src: %s", test.Src)
	}
}

func TestParser_Parse_Declaration(t *testing.T) {

	src := `a value x, type int, begins at 3 .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(statements))

	decl, can := statements[0].(*DeclarationStatementNode)
	assert.True(t, can)
	assert.Equal(t, "x", decl.Name.Text)
	assert.Equal(t, "int", decl.VarType.Text)
	assert.True(t, decl.IsMutable)
	assert.Equal(t, "3", decl.Initializer.(*LiteralExpressionNode).Value.Text)

	src = `a value greeting, type string, is revealed as "hail" .`
	par = NewParser(src)
	statements = par.Parse()

	assert.False(t, par.HasErrors())
	decl = statements[0].(*DeclarationStatementNode)
	assert.Equal(t, "greeting", decl.Name.Text)
	assert.Equal(t, "string", decl.VarType.Text)
	assert.False(t, decl.IsMutable)
	assert.Equal(t, lexer.STRING_LIT, decl.Initializer.(*LiteralExpressionNode).Value.Type)
}

func TestParser_Parse_IfStatement(t *testing.T) {

	src := `if x is less than 2 is met, tell the following story: beginning of the story the story ends a line . end of the story.`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(statements))

	ifStmt, can := statements[0].(*IfStatementNode)
	assert.True(t, can)

	// the 'is met' terminator must not be folded into the comparison
	cmp, can := ifStmt.Condition.(*ComparisonExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "is less than", cmp.Operation.Text)

	block, can := ifStmt.ThenBranch.(*BlockStatementNode)
	assert.True(t, can)
	assert.Equal(t, 1, len(block.Statements))

	_, can = block.Statements[0].(*NewlineStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_WhileWithBreak(t *testing.T) {

	src := `while 1 is equal to 1 holds, tell the following story: beginning of the story the story ends at this moment . end of the story.`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(statements))

	whileStmt, can := statements[0].(*WhileStatementNode)
	assert.True(t, can)

	block := whileStmt.Body.(*BlockStatementNode)
	assert.Equal(t, 1, len(block.Statements))

	_, can = block.Statements[0].(*BreakStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_ProcedureDeclaration(t *testing.T) {

	src := `for procedure named 'id' accepting (n as int) and yielding int, tell the following story: beginning of the story the result shall be n . end of the story.`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(statements))

	proc, can := statements[0].(*ProcedureDeclStatementNode)
	assert.True(t, can)
	assert.Equal(t, "id", proc.Name.Text)
	assert.Equal(t, 1, len(proc.Params))
	assert.Equal(t, "n", proc.Params[0].Name.Text)
	assert.Equal(t, "int", proc.Params[0].Type.Text)
	assert.Equal(t, "int", proc.ReturnType.Text)

	block := proc.Body.(*BlockStatementNode)
	assert.Equal(t, 1, len(block.Statements))

	ret, can := block.Statements[0].(*ReturnStatementNode)
	assert.True(t, can)
	assert.Equal(t, "n", ret.Value.(*VariableExpressionNode).Name.Text)
}

func TestParser_Parse_ProcedureWithoutYield(t *testing.T) {

	src := `for procedure named 'greet' accepting (), tell the following story: beginning of the story the story ends a line . end of the story.`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	proc := statements[0].(*ProcedureDeclStatementNode)
	assert.Equal(t, 0, len(proc.Params))

	// no 'and yielding' clause: the return-type token stays zero-valued
	assert.Equal(t, "", proc.ReturnType.Text)
	assert.Equal(t, lexer.TokenType(""), proc.ReturnType.Type)
}

func TestParser_Parse_ProcedureCallStatement(t *testing.T) {

	src := `perform the story of 'id' using (7, x plus 1) .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	call, can := statements[0].(*ProcedureCallStatementNode)
	assert.True(t, can)
	assert.Equal(t, "id", call.Callee.Text)
	assert.Equal(t, 2, len(call.Arguments))

	_, can = call.Arguments[1].(*BinaryExpressionNode)
	assert.True(t, can)

	// empty argument lists are allowed
	src = `perform the story of 'greet' using () .`
	par = NewParser(src)
	statements = par.Parse()

	assert.False(t, par.HasErrors())
	call = statements[0].(*ProcedureCallStatementNode)
	assert.Equal(t, 0, len(call.Arguments))
}

func TestParser_Parse_FunctionCallExpression(t *testing.T) {

	src := `a value doubled, type int, begins at the story of 'double' using (21) .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	decl := statements[0].(*DeclarationStatementNode)

	call, can := decl.Initializer.(*FunctionCallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "double", call.Callee.Text)
	assert.Equal(t, 1, len(call.Arguments))
	assert.Equal(t, "21", call.Arguments[0].(*LiteralExpressionNode).Value.Text)
}

func TestParser_Parse_SynchronizeRecovers(t *testing.T) {

	// two bad statements, then a good one: each faulted statement yields
	// exactly one error and the good statement still parses
	src := `foo bar . baz qux . the story ends a line .`
	par := NewParser(src)
	statements := par.Parse()

	assert.True(t, par.HasErrors())
	assert.Equal(t, 2, len(par.GetErrors()))
	assert.Equal(t, 1, len(statements))

	_, can := statements[0].(*NewlineStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_UnterminatedBlock(t *testing.T) {

	src := `if 1 is met, tell the following story: beginning of the story the story ends a line .`
	par := NewParser(src)
	statements := par.Parse()

	assert.True(t, par.HasErrors())
	assert.Equal(t, 0, len(statements))
	assert.Contains(t, par.GetErrors()[0], "Unterminated block statement, missing 'end of the story'.")
}

func TestParser_Parse_ComparisonStopsBeforeMet(t *testing.T) {

	// 'is met' closes the if-condition, so the comparison rule must not
	// consume the 'is'
	src := `if done is met, tell the following story: beginning of the story the story ends a line . end of the story.`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	ifStmt := statements[0].(*IfStatementNode)

	_, can := ifStmt.Condition.(*VariableExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_MultiplicationConsumesBy(t *testing.T) {

	src := `8 divided by 2 .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())
	exprStmt := statements[0].(*ExpressionStatementNode)

	div, can := exprStmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	// only the head word is kept as the operator; 'by' is discarded
	assert.Equal(t, "divided", div.Operation.Text)
}

func TestPrintingVisitor_RendersTree(t *testing.T) {

	src := `a value x, type int, begins at 1 plus 2 .`
	par := NewParser(src)
	statements := par.Parse()

	assert.False(t, par.HasErrors())

	printer := &PrintingVisitor{}
	printer.VisitStatements(statements)
	out := printer.String()

	assert.Contains(t, out, "Declaration [x: int] (begins at)")
	assert.Contains(t, out, "Binary [plus]")
	assert.Contains(t, out, "Literal [INT_LITERAL 1]")
	assert.Contains(t, out, "Literal [INT_LITERAL 2]")
}

/*
File    : LostRecord/codegen/analysis.go
Project : LostRecord narrative-language compiler
*/
package codegen

import (
	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
	"github.com/Ashot-Petrosyan04/LostRecord/parser"
)

// countDeclarations counts the declaration statements reachable from the
// given statements through if-branches, while-bodies and blocks - but not
// through nested procedure declarations, whose bodies size their own
// frames. The count is deliberately conservative: declarations in
// disjoint branches each get their own slot, matching the monotonic
// offset allocator, so a frame sized from this count can never be too
// small.
func countDeclarations(statements []parser.StatementNode) int {
	count := 0
	for _, stmt := range statements {
		count += countDeclarationsIn(stmt)
	}
	return count
}

// countDeclarationsIn counts the declarations of a single statement
// subtree.
func countDeclarationsIn(stmt parser.StatementNode) int {
	switch node := stmt.(type) {
	case *parser.DeclarationStatementNode:
		return 1
	case *parser.IfStatementNode:
		return countDeclarationsIn(node.ThenBranch)
	case *parser.WhileStatementNode:
		return countDeclarationsIn(node.Body)
	case *parser.BlockStatementNode:
		return countDeclarations(node.Statements)
	}
	return 0
}

// findStringLiterals walks every statement and nested expression and
// interns each distinct string-literal body into gen.stringLiterals,
// preserving first-seen order. The index a body receives here is the
// number in its emitted str<i> rodata label, so the same body always
// shares one label no matter how often it appears.
func (gen *Generator) findStringLiterals(statements []parser.StatementNode) {
	gen.stringLiterals = make([]string, 0)
	for _, stmt := range statements {
		gen.findStringsInStatement(stmt)
	}
}

// findStringsInStatement descends into one statement subtree.
func (gen *Generator) findStringsInStatement(stmt parser.StatementNode) {
	switch node := stmt.(type) {
	case *parser.PrintStatementNode:
		gen.findStringsInExpression(node.Expr)
	case *parser.DeclarationStatementNode:
		gen.findStringsInExpression(node.Initializer)
	case *parser.ExpressionStatementNode:
		gen.findStringsInExpression(node.Expr)
	case *parser.IfStatementNode:
		gen.findStringsInExpression(node.Condition)
		gen.findStringsInStatement(node.ThenBranch)
	case *parser.WhileStatementNode:
		gen.findStringsInExpression(node.Condition)
		gen.findStringsInStatement(node.Body)
	case *parser.BlockStatementNode:
		for _, s := range node.Statements {
			gen.findStringsInStatement(s)
		}
	case *parser.ProcedureDeclStatementNode:
		gen.findStringsInStatement(node.Body)
	case *parser.ProcedureCallStatementNode:
		for _, arg := range node.Arguments {
			gen.findStringsInExpression(arg)
		}
	case *parser.ReturnStatementNode:
		gen.findStringsInExpression(node.Value)
	}
}

// findStringsInExpression descends into one expression subtree, interning
// any string literal it reaches.
func (gen *Generator) findStringsInExpression(expr parser.ExpressionNode) {
	switch node := expr.(type) {
	case *parser.LiteralExpressionNode:
		if node.Value.Type == lexer.STRING_LIT {
			gen.internString(node.Value.Literal)
		}
	case *parser.BinaryExpressionNode:
		gen.findStringsInExpression(node.Left)
		gen.findStringsInExpression(node.Right)
	case *parser.ComparisonExpressionNode:
		gen.findStringsInExpression(node.Left)
		gen.findStringsInExpression(node.Right)
	case *parser.AssignExpressionNode:
		gen.findStringsInExpression(node.Value)
	case *parser.FunctionCallExpressionNode:
		for _, arg := range node.Arguments {
			gen.findStringsInExpression(arg)
		}
	case *parser.UnaryExpressionNode:
		gen.findStringsInExpression(node.Right)
	}
}

// internString records a string body if it has not been seen yet.
func (gen *Generator) internString(value string) {
	for _, existing := range gen.stringLiterals {
		if existing == value {
			return
		}
	}
	gen.stringLiterals = append(gen.stringLiterals, value)
}

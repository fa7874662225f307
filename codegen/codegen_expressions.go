/*
File    : LostRecord/codegen/codegen_expressions.go
Project : LostRecord narrative-language compiler
*/
package codegen

import (
	"fmt"

	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
	"github.com/Ashot-Petrosyan04/LostRecord/parser"
)

// genExpression emits the assembly for a single expression node. Every
// expression leaves its result in rax.
func (gen *Generator) genExpression(expr parser.ExpressionNode) error {
	switch node := expr.(type) {
	case *parser.LiteralExpressionNode:
		return gen.genLiteral(node)
	case *parser.VariableExpressionNode:
		return gen.genVariable(node)
	case *parser.AssignExpressionNode:
		return gen.genAssign(node)
	case *parser.BinaryExpressionNode:
		return gen.genBinary(node)
	case *parser.ComparisonExpressionNode:
		return gen.genComparison(node)
	case *parser.UnaryExpressionNode:
		return gen.genUnary(node)
	case *parser.FunctionCallExpressionNode:
		return gen.genCall(node.Callee, node.Arguments)
	}

	return fmt.Errorf("Internal compiler error: unknown expression node %T.", expr)
}

// genLiteral loads a literal's value into rax. Integers load their digit
// string directly, booleans load 1 or 0, and strings load the address of
// their interned rodata label. Float literals survive scanning but have
// no lowering: nothing is emitted for them, and rax is left as-is.
func (gen *Generator) genLiteral(node *parser.LiteralExpressionNode) error {
	switch node.Value.Type {
	case lexer.INT_LIT:
		gen.emit("mov rax, " + node.Value.Literal)
	case lexer.BOOL_LIT:
		if node.Value.Text == "true" {
			gen.emit("mov rax, 1")
		} else {
			gen.emit("mov rax, 0")
		}
	case lexer.STRING_LIT:
		for i, literal := range gen.stringLiterals {
			if literal == node.Value.Literal {
				gen.emit(fmt.Sprintf("mov rax, str%d", i))
				return nil
			}
		}
		return fmt.Errorf("Internal compiler error: string literal not found.")
	}

	return nil
}

// genVariable loads a declared variable's slot into rax.
func (gen *Generator) genVariable(node *parser.VariableExpressionNode) error {
	info, ok := gen.findVariable(node.Name.Text)
	if !ok {
		return fmt.Errorf("Undeclared variable '%s'.", node.Name.Text)
	}

	gen.emit(fmt.Sprintf("mov rax, [rbp - %d]", info.Offset))

	return nil
}

// genAssign evaluates the value into rax and stores it to the target's
// slot. The assignment's own result stays in rax, which is what chained
// assignment relies on.
func (gen *Generator) genAssign(node *parser.AssignExpressionNode) error {
	info, ok := gen.findVariable(node.Name.Text)
	if !ok {
		return fmt.Errorf("Undeclared variable '%s'.", node.Name.Text)
	}
	if err := gen.genExpression(node.Value); err != nil {
		return err
	}
	gen.emit(fmt.Sprintf("mov [rbp - %d], rax", info.Offset))

	return nil
}

// genBinary evaluates the left operand, parks it on the machine stack
// while the right operand runs, then pops it into rbx. On arrival rax
// holds the right value and rbx the left one, which is why subtraction
// and division re-order their operands below.
func (gen *Generator) genBinary(node *parser.BinaryExpressionNode) error {
	if err := gen.genExpression(node.Left); err != nil {
		return err
	}
	gen.emit("push rax")
	if err := gen.genExpression(node.Right); err != nil {
		return err
	}
	gen.emit("pop rbx")

	switch node.Operation.Text {
	case "plus":
		gen.emit("add rax, rbx")
	case "minus":
		gen.emit("sub rbx, rax")
		gen.emit("mov rax, rbx")
	case "multiplied":
		gen.emit("imul rax, rbx")
	case "divided":
		gen.emit("mov r8, rax")
		gen.emit("mov rax, rbx")
		gen.emit("cqo")
		gen.emit("idiv r8")
	case "and":
		gen.emit("and rax, rbx")
	case "or":
		gen.emit("or rax, rbx")
	}

	return nil
}

// genComparison lowers a fused comparison phrase to a cmp followed by the
// matching SETcc on al and a zero-extension back to rax, so comparisons
// produce clean 0/1 values.
func (gen *Generator) genComparison(node *parser.ComparisonExpressionNode) error {
	if err := gen.genExpression(node.Left); err != nil {
		return err
	}
	gen.emit("push rax")
	if err := gen.genExpression(node.Right); err != nil {
		return err
	}
	gen.emit("pop rbx")

	gen.emit("cmp rbx, rax")

	var setInstruction string
	switch node.Operation.Text {
	case "is equal to":
		setInstruction = "sete"
	case "is greater than":
		setInstruction = "setg"
	case "is less than":
		setInstruction = "setl"
	default:
		return fmt.Errorf("Unsupported comparison operator.")
	}

	gen.emit(setInstruction + " al")
	gen.emit("movzx rax, al")

	return nil
}

// genUnary lowers 'not' as a single-bit flip. The operand is presumed to
// be a 0/1 boolean; no other unary operator exists.
func (gen *Generator) genUnary(node *parser.UnaryExpressionNode) error {
	if err := gen.genExpression(node.Right); err != nil {
		return err
	}
	if node.Operation.Text == "not" {
		gen.emit("xor rax, 1")
	}

	return nil
}

// genCall lowers both call forms: arguments are evaluated left to right,
// each result moving from rax straight into its convention register,
// followed by a call to the procedure's label. An argument expression
// that itself performs a call will clobber the registers loaded before
// it; argument expressions are expected to stay call-free.
func (gen *Generator) genCall(callee lexer.Token, arguments []parser.ExpressionNode) error {
	if len(arguments) > len(argRegisters) {
		return fmt.Errorf("More than 6 arguments are not supported.")
	}

	for i, arg := range arguments {
		if err := gen.genExpression(arg); err != nil {
			return err
		}
		gen.emit(fmt.Sprintf("mov %s, rax", argRegisters[i]))
	}

	gen.emit("call proc_" + callee.Text)

	return nil
}

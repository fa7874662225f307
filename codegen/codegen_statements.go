/*
File    : LostRecord/codegen/codegen_statements.go
Project : LostRecord narrative-language compiler
*/
package codegen

import (
	"fmt"

	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
	"github.com/Ashot-Petrosyan04/LostRecord/parser"
)

// genStatement emits the assembly for a single statement node.
func (gen *Generator) genStatement(stmt parser.StatementNode) error {
	switch node := stmt.(type) {
	case *parser.BlockStatementNode:
		return gen.genBlock(node)
	case *parser.IfStatementNode:
		return gen.genIf(node)
	case *parser.WhileStatementNode:
		return gen.genWhile(node)
	case *parser.DeclarationStatementNode:
		return gen.genDeclaration(node)
	case *parser.PrintStatementNode:
		return gen.genPrint(node)
	case *parser.NewlineStatementNode:
		gen.genNewline()
		return nil
	case *parser.ProcedureDeclStatementNode:
		return gen.genProcedureDecl(node)
	case *parser.ProcedureCallStatementNode:
		return gen.genCall(node.Callee, node.Arguments)
	case *parser.ReturnStatementNode:
		return gen.genReturn(node)
	case *parser.BreakStatementNode:
		return gen.genBreak()
	case *parser.ExpressionStatementNode:
		return gen.genExpression(node.Expr)
	}

	return fmt.Errorf("Internal compiler error: unknown statement node %T.", stmt)
}

// genBlock emits the block's children in order. No scope is pushed:
// declarations inside a block register in the enclosing frame's scope and
// keep their slots for the rest of the frame. Shadowing inside blocks is
// therefore impossible, and the frame pre-scan already counted these
// slots, so the frame is always large enough.
func (gen *Generator) genBlock(node *parser.BlockStatementNode) error {
	for _, stmt := range node.Statements {
		if err := gen.genStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// genIf lowers a conditional: the condition value lands in rax, zero
// skips the branch body.
func (gen *Generator) genIf(node *parser.IfStatementNode) error {
	endIfLabel := gen.newLabel()

	if err := gen.genExpression(node.Condition); err != nil {
		return err
	}

	gen.emit("cmp rax, 0")
	gen.emit("je " + endIfLabel)

	if err := gen.genStatement(node.ThenBranch); err != nil {
		return err
	}
	gen.emitLabel(endIfLabel)

	return nil
}

// genWhile lowers a loop. The end label doubles as the break target for
// the duration of the body, so breaks inside the body always leave the
// innermost loop.
func (gen *Generator) genWhile(node *parser.WhileStatementNode) error {
	startLabel := gen.newLabel()
	endLabel := gen.newLabel()

	gen.breakLabels = append(gen.breakLabels, endLabel)

	gen.emitLabel(startLabel)

	if err := gen.genExpression(node.Condition); err != nil {
		return err
	}

	gen.emit("cmp rax, 0")
	gen.emit("je " + endLabel)

	if err := gen.genStatement(node.Body); err != nil {
		return err
	}
	gen.emit("jmp " + startLabel)
	gen.emitLabel(endLabel)

	gen.breakLabels = gen.breakLabels[:len(gen.breakLabels)-1]

	return nil
}

// genDeclaration allocates the next 8-byte slot, registers the name in
// the innermost scope, and stores the initializer's value there.
// Redeclaring a name in the same scope is an error; re-using a name from
// an outer frame scope is not.
func (gen *Generator) genDeclaration(node *parser.DeclarationStatementNode) error {
	if _, exists := gen.currentScope()[node.Name.Text]; exists {
		return fmt.Errorf("Variable '%s' already declared in this scope.", node.Name.Text)
	}
	gen.stackOffset += 8
	gen.currentScope()[node.Name.Text] = VariableInfo{Offset: gen.stackOffset, Type: node.VarType.Text}

	if err := gen.genExpression(node.Initializer); err != nil {
		return err
	}
	gen.emit(fmt.Sprintf("mov [rbp - %d], rax", gen.stackOffset))

	return nil
}

// genPrint lowers the telling form. The operand's print type is decided
// from the AST shape alone: a string or bool literal names itself, a
// variable answers with its declared type, and everything else is
// treated as an integer. Strings are written with _strlen plus syscall 1;
// every other value goes through _print_integer.
func (gen *Generator) genPrint(node *parser.PrintStatementNode) error {
	exprType := "int"
	switch expr := node.Expr.(type) {
	case *parser.LiteralExpressionNode:
		if expr.Value.Type == lexer.STRING_LIT {
			exprType = "string"
		} else if expr.Value.Type == lexer.BOOL_LIT {
			exprType = "bool"
		}
	case *parser.VariableExpressionNode:
		info, ok := gen.findVariable(expr.Name.Text)
		if !ok {
			return fmt.Errorf("Undeclared variable '%s' in print statement.", expr.Name.Text)
		}
		exprType = info.Type
	}

	if err := gen.genExpression(node.Expr); err != nil {
		return err
	}

	if exprType == "string" {
		gen.emit("push rax")
		gen.emit("mov rdi, rax")
		gen.emit("call _strlen")
		gen.emit("mov rdx, rax")
		gen.emit("pop rsi")
		gen.emit("mov rax, 1")
		gen.emit("mov rdi, 1")
		gen.emit("syscall")
	} else {
		gen.emit("mov r11, 0")
		gen.emit("call _print_integer")
	}

	return nil
}

// genNewline writes the single newline byte held at the NL rodata label.
func (gen *Generator) genNewline() {
	gen.emit("mov rax, 1")
	gen.emit("mov rdi, 1")
	gen.emit("mov rsi, NL")
	gen.emit("mov rdx, 1")
	gen.emit("syscall")
}

// genProcedureDecl emits one procedure under its proc_<name> label. The
// frame reserves one slot per parameter plus one per declaration counted
// in the body; incoming arguments are spilled from the convention
// registers into the first parameter slots and registered in the
// procedure's scope.
func (gen *Generator) genProcedureDecl(node *parser.ProcedureDeclStatementNode) error {
	if len(node.Params) > len(argRegisters) {
		return fmt.Errorf("More than 6 arguments are not supported.")
	}

	gen.enterScope()
	gen.emitLabel("proc_" + node.Name.Text)
	gen.emit("push rbp")
	gen.emit("mov rbp, rsp")

	localStackSize := (len(node.Params) + countDeclarationsIn(node.Body)) * 8
	if localStackSize > 0 {
		alignedSize := (localStackSize + 15) &^ 15
		gen.emit(fmt.Sprintf("sub rsp, %d", alignedSize))
	}

	gen.stackOffset = 0
	for i, param := range node.Params {
		gen.stackOffset += 8
		gen.currentScope()[param.Name.Text] = VariableInfo{Offset: gen.stackOffset, Type: param.Type.Text}
		gen.emit(fmt.Sprintf("mov [rbp - %d], %s", gen.stackOffset, argRegisters[i]))
	}

	if err := gen.genStatement(node.Body); err != nil {
		return err
	}

	gen.emit("mov rsp, rbp")
	gen.emit("pop rbp")
	gen.emit("ret")
	gen.exitScope()

	return nil
}

// genReturn evaluates the yielded value into rax and emits the epilogue
// inline, so a return deep inside a body still unwinds the frame
// correctly.
func (gen *Generator) genReturn(node *parser.ReturnStatementNode) error {
	if err := gen.genExpression(node.Value); err != nil {
		return err
	}
	gen.emit("mov rsp, rbp")
	gen.emit("pop rbp")
	gen.emit("ret")

	return nil
}

// genBreak jumps to the innermost loop's end label. Outside a loop there
// is no such label, which is an error.
func (gen *Generator) genBreak() error {
	if len(gen.breakLabels) == 0 {
		return fmt.Errorf("'the story ends at this moment' can only be used inside a loop.")
	}
	gen.emit("jmp " + gen.breakLabels[len(gen.breakLabels)-1])

	return nil
}

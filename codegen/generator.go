/*
File    : LostRecord/codegen/generator.go
Project : LostRecord narrative-language compiler
*/

/*
Package codegen implements the x86-64 code generator for the LostRecord
narrative language.

The generator walks the parsed statement sequence twice. The first pass
interns every distinct string literal so each one gets a stable rodata
label. The second pass emits NASM-flavoured assembly for Linux: a rodata
section with the interned strings, a bss scratch buffer for integer
formatting, two helper routines (_print_integer and _strlen), one
'proc_<name>' routine per procedure declaration, and finally the _start
entry point, which exits through syscall 60.

Values live in 8-byte stack slots below rbp. A stack of scopes maps names
to slot offsets; a structural pre-scan of each frame's body counts the
declarations it will need so the prologue can reserve the whole frame,
16-byte aligned, up front. Expression results travel in rax, with the
operand stack used for the left side of binary operations.
*/
package codegen

import (
	"fmt"
	"io"
	"os"

	"github.com/Ashot-Petrosyan04/LostRecord/parser"
)

// argRegisters holds the System-V AMD64 integer argument registers in
// calling-convention order. Both call forms place their arguments here,
// and procedure prologues spill them to the frame from here.
var argRegisters = [6]string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// VariableInfo records where a declared variable lives and what type
// word it was declared with. The offset is the positive distance below
// rbp; the type text is consulted only when lowering print statements.
type VariableInfo struct {
	Offset int    // Slot distance below rbp, in bytes
	Type   string // Declared type word (int, bool, string)
}

// Generator holds the state of one code-generation run. A Generator is
// good for a single Generate call.
type Generator struct {
	Writer io.Writer // Assembly output destination (default: os.Stdout)

	stringLiterals []string                  // Interned string bodies, in first-seen order
	symbolScopes   []map[string]VariableInfo // Scope stack, innermost last
	stackOffset    int                       // Next slot distance below rbp for the current frame
	labelCounter   int                       // Monotonic counter behind newLabel
	breakLabels    []string                  // Exit labels of the enclosing loops, innermost last
}

// NewGenerator creates a Generator that writes assembly to standard
// output.
//
// Example:
//
//	gen := codegen.NewGenerator()
//	err := gen.Generate(statements)
func NewGenerator() *Generator {
	return &Generator{
		Writer: os.Stdout,
	}
}

// SetWriter redirects the generated assembly to the given writer. This is
// how the tests and the REPL capture output instead of streaming it to
// the console.
func (gen *Generator) SetWriter(w io.Writer) {
	gen.Writer = w
}

// emit writes one instruction line, indented four spaces.
func (gen *Generator) emit(code string) {
	fmt.Fprintf(gen.Writer, "    %s\n", code)
}

// emitLabel writes a label line in column zero.
func (gen *Generator) emitLabel(label string) {
	fmt.Fprintf(gen.Writer, "%s:\n", label)
}

// emitRaw writes one line verbatim, for section headers and banner
// comments.
func (gen *Generator) emitRaw(line string) {
	fmt.Fprintln(gen.Writer, line)
}

// newLabel returns the next jump label, L0, L1, L2, ...
func (gen *Generator) newLabel() string {
	label := fmt.Sprintf("L%d", gen.labelCounter)
	gen.labelCounter++
	return label
}

// Generate emits the complete assembly program for the given top-level
// statements. Output ordering is fixed: rodata, bss, text; inside text
// the helpers come first, then every procedure in source order, then
// _start. The first error stops emission; whatever was already written
// stays written.
func (gen *Generator) Generate(statements []parser.StatementNode) error {
	gen.findStringLiterals(statements)

	gen.emitRaw("section .rodata")
	gen.emitLabel("NL")
	gen.emit("db 10")
	for i, literal := range gen.stringLiterals {
		fmt.Fprintf(gen.Writer, "  str%d: db `%s`, 0\n", i, literal)
	}

	gen.emitRaw("\nsection .bss")
	gen.emitLabel("int_buffer")
	gen.emit("resb 21")

	gen.emitRaw("\nsection .text")
	gen.emitRaw("; --- Helper Functions ---")
	gen.emitPrintIntegerHelper()
	gen.emitStrlenHelper()

	gen.emitRaw("\n; --- Procedures ---")
	for _, stmt := range statements {
		if procDecl, ok := stmt.(*parser.ProcedureDeclStatementNode); ok {
			if err := gen.genProcedureDecl(procDecl); err != nil {
				return err
			}
		}
	}

	gen.emitRaw("\n; --- Main Program ---")
	gen.emitRaw("global _start")
	gen.emitLabel("_start")
	gen.enterScope()
	gen.stackOffset = 0
	gen.emit("push rbp")
	gen.emit("mov rbp, rsp")

	totalStackSize := countDeclarations(statements) * 8
	if totalStackSize > 0 {
		alignedSize := (totalStackSize + 15) &^ 15
		gen.emit(fmt.Sprintf("sub rsp, %d", alignedSize))
	}

	for _, stmt := range statements {
		if _, ok := stmt.(*parser.ProcedureDeclStatementNode); ok {
			continue
		}
		if err := gen.genStatement(stmt); err != nil {
			return err
		}
	}

	gen.emit("\n; Exit program")
	gen.emit("mov rsp, rbp")
	gen.emit("pop rbp")
	gen.emit("mov rax, 60")
	gen.emit("xor rdi, rdi")
	gen.emit("syscall")
	gen.exitScope()

	return nil
}

// emitPrintIntegerHelper writes the _print_integer routine. It expects
// the value in rax, renders its signed decimal form right-to-left into
// int_buffer (index 20 holds the terminating zero byte), prepends '-'
// when the r11 sign flag was set by the negative path, and writes the
// result to stdout with syscall 1.
func (gen *Generator) emitPrintIntegerHelper() {
	gen.emitLabel("_print_integer")
	gen.emit("mov rdi, int_buffer + 20")
	gen.emit("mov byte [rdi], 0")
	gen.emit("dec rdi")
	gen.emit("test rax, rax")
	gen.emit("jns .utoa_loop")
	gen.emit("neg rax")
	gen.emit("mov r11, 1")
	gen.emitLabel(".utoa_loop")
	gen.emit("mov rdx, 0")
	gen.emit("mov rbx, 10")
	gen.emit("div rbx")
	gen.emit("add dl, '0'")
	gen.emit("mov [rdi], dl")
	gen.emit("dec rdi")
	gen.emit("test rax, rax")
	gen.emit("jnz .utoa_loop")
	gen.emit("cmp r11, 1")
	gen.emit("jne .skip_minus")
	gen.emit("mov byte [rdi], '-'")
	gen.emit("dec rdi")
	gen.emitLabel(".skip_minus")
	gen.emit("inc rdi")
	gen.emit("mov rsi, rdi")
	gen.emit("mov rdx, int_buffer + 21")
	gen.emit("sub rdx, rsi")
	gen.emit("mov rax, 1")
	gen.emit("mov rdi, 1")
	gen.emit("syscall")
	gen.emit("ret")
}

// emitStrlenHelper writes the _strlen routine: pointer in rdi, byte count
// up to the terminating zero returned in rax.
func (gen *Generator) emitStrlenHelper() {
	gen.emitLabel("_strlen")
	gen.emit("xor rcx, rcx")
	gen.emitLabel(".strlen_loop")
	gen.emit("cmp byte [rdi + rcx], 0")
	gen.emit("je .strlen_end")
	gen.emit("inc rcx")
	gen.emit("jmp .strlen_loop")
	gen.emitLabel(".strlen_end")
	gen.emit("mov rax, rcx")
	gen.emit("ret")
}

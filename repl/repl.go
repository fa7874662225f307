/*
File    : LostRecord/repl/repl.go
Project : LostRecord narrative-language compiler

Package repl implements the interactive assembly explorer for the
LostRecord compiler. The REPL provides an environment where users can:
- Enter LostRecord statements line by line
- See the x86-64 assembly each line compiles to
- Toggle an AST dump with the /ast command
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and runs the full lexer-parser-generator pipeline on every input line.
Unlike file mode, each line compiles as a complete program, so the output
always shows the surrounding sections, helpers and _start scaffolding.
*/
package repl

import (
	"bytes"
	"io"
	"strings"

	"github.com/Ashot-Petrosyan04/LostRecord/codegen"
	"github.com/Ashot-Petrosyan04/LostRecord/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Generated assembly
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and the AST dump
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the interactive explorer instance.
// It encapsulates the configuration needed to run a session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the compiler
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user

	showAST bool // Whether /ast dumping is currently enabled
}

// NewRepl creates and initializes a new REPL instance with the visual
// elements the driver passes in.
func NewRepl(banner string, version string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This function is called when the REPL starts.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to the LostRecord assembly explorer!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter to see its assembly")
	cyanColor.Fprintf(writer, "%s\n", "Type '/ast' to toggle the AST dump, '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Compiles each entered line and shows the assembly
// 4. Continues until '.exit' or EOF (Ctrl+D)
//
// Parameters:
//
//	reader - Input source (kept for signature symmetry; readline owns the
//	         terminal in interactive use)
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if line == "/ast" {
			r.showAST = !r.showAST
			if r.showAST {
				cyanColor.Fprintln(writer, "AST dump enabled")
			} else {
				cyanColor.Fprintln(writer, "AST dump disabled")
			}
			continue
		}

		rl.SaveHistory(line)

		r.Execute(writer, line)
	}
}

// Execute compiles one input line and writes the result to the writer.
// Parse errors are shown in red and stop the line there; otherwise the
// optional AST dump appears in cyan, followed by the generated assembly
// in yellow. A generation error is shown in red in the driver's wording.
// Unlike file mode, the session continues after every kind of error.
func (r *Repl) Execute(writer io.Writer, line string) {
	par := parser.NewParser(line)
	statements := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	if r.showAST {
		printer := &parser.PrintingVisitor{}
		printer.VisitStatements(statements)
		cyanColor.Fprintf(writer, "%s", printer.String())
	}

	var asm bytes.Buffer
	gen := codegen.NewGenerator()
	gen.SetWriter(&asm)
	if err := gen.Generate(statements); err != nil {
		redColor.Fprintf(writer, "Runtime Error during code generation: %s\n", err.Error())
		return
	}

	yellowColor.Fprintf(writer, "%s", asm.String())
}

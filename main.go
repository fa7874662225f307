/*
File    : LostRecord/main.go
Project : LostRecord narrative-language compiler

Package main is the entry point for the LostRecord compiler.
It provides two modes of operation:
1. File Mode (default): Compile a LostRecord source file to x86-64 assembly
2. REPL Mode: Interactive assembly explorer for single statements

The compiler uses a lexer-parser-generator pipeline: the scanner turns the
narrative prose into tokens, the parser recognizes the spoken grammar
phrases, and the generator streams freestanding NASM-flavoured assembly
with a _start entry point to standard output.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Ashot-Petrosyan04/LostRecord/codegen"
	"github.com/Ashot-Petrosyan04/LostRecord/lexer"
	"github.com/Ashot-Petrosyan04/LostRecord/parser"
	"github.com/Ashot-Petrosyan04/LostRecord/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the LostRecord compiler
var VERSION = "v1.0.0"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "LostRecord >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
 _              _   ____                        _
| |    ___  ___| |_|  _ \ ___  ___ ___  _ __ __| |
| |   / _ \/ __| __| |_) / _ \/ __/ _ \| '__/ _' |
| |__| (_) \__ \ |_|  _ <  __/ (_| (_) | | | (_| |
|_____\___/|___/\__|_| \_\___|\___\___/|_|  \__,_|
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for driver output
// These colors are used to provide visual feedback:
// - redColor: Error messages and critical failures
// - yellowColor: Usage hints
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the LostRecord compiler.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	lostrecord <filename.lr>   - Compile the file, assembly on stdout
//	lostrecord repl            - Start the interactive assembly explorer
//	lostrecord --help          - Display help information
//	lostrecord --version       - Display version information
//
// Anything other than exactly one argument prints the usage line and
// exits with status 1.
func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s <filename.lr>\n", os.Args[0])
		os.Exit(1)
	}

	arg := os.Args[1]

	// Handle --help flag
	if arg == "--help" || arg == "-h" {
		showHelp()
		os.Exit(0)
	}

	// Handle --version flag
	if arg == "--version" || arg == "-v" {
		showVersion()
		os.Exit(0)
	}

	// REPL mode: interactive assembly explorer
	if arg == "repl" {
		repler := repl.NewRepl(BANNER, VERSION, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	// File mode: compile the file to stdout
	runFile(arg)
}

// showHelp displays the help information for the LostRecord compiler
func showHelp() {
	cyanColor.Println("LostRecord - A Narrative-Language Compiler for x86-64 Linux")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lostrecord <path-to-file>   Compile a LostRecord file (.lr)")
	yellowColor.Println("  lostrecord repl             Start the interactive assembly explorer")
	yellowColor.Println("  lostrecord --help           Display this help message")
	yellowColor.Println("  lostrecord --version        Display version information")
	cyanColor.Println("")
	cyanColor.Println("The generated assembly is written to standard output and can be")
	cyanColor.Println("assembled with nasm and linked with ld:")
	yellowColor.Println("  lostrecord tale.lr > tale.asm")
	yellowColor.Println("  nasm -f elf64 tale.asm -o tale.o && ld tale.o -o tale")
}

// showVersion displays the version information for the LostRecord compiler
func showVersion() {
	cyanColor.Println("LostRecord - A Narrative-Language Compiler")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile reads and compiles a LostRecord source file.
// It handles the complete compilation pipeline:
// 1. Read the file from disk
// 2. Scan, parse and generate, streaming assembly to standard output
// 3. Report any generation failure on standard error
//
// Error Handling:
//   - File read errors: reported on stderr; the process still exits 0 and
//     produces no assembly
//   - Lex/parse errors: reported on stderr as they occur; generation runs
//     over the statements that survived
//   - Generation errors: reported on stderr as one terminating line;
//     assembly already written stays written
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: Could not open file %s\n", fileName)
		return
	}

	if err := CompileSource(string(fileContent), os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "Runtime Error during code generation: %s\n", err.Error())
	}
}

// CompileSource runs the full lex-parse-generate pipeline over a source
// string, streaming the generated assembly to the given writer. The file
// driver, the REPL, and the end-to-end tests all share this path.
//
// Lex and parse diagnostics go to standard error as they occur; the
// returned error is non-nil only when code generation fails.
func CompileSource(source string, out io.Writer) error {
	lex := lexer.NewLexer(source)
	tokens := lex.ConsumeTokens()

	par := parser.NewParserFromTokens(tokens)
	statements := par.Parse()

	gen := codegen.NewGenerator()
	gen.SetWriter(out)
	return gen.Generate(statements)
}

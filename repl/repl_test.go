/*
File    : LostRecord/repl/repl_test.go
Project : LostRecord narrative-language compiler
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// newTestRepl builds a Repl with plain output so the assertions see the
// raw text rather than terminal color escapes.
func newTestRepl() *Repl {
	color.NoColor = true
	return NewRepl("banner", "v0.0.0-test", "----", "MIT", ">>> ")
}

func TestRepl_PrintBannerInfo(t *testing.T) {

	r := newTestRepl()

	var buf bytes.Buffer
	r.PrintBannerInfo(&buf)

	out := buf.String()
	assert.Contains(t, out, "banner")
	assert.Contains(t, out, "Version: v0.0.0-test | License: MIT")
	assert.Contains(t, out, "Welcome to the LostRecord assembly explorer!")
}

func TestRepl_Execute_ShowsAssembly(t *testing.T) {

	r := newTestRepl()

	var buf bytes.Buffer
	r.Execute(&buf, `the story tells: 42 .`)

	out := buf.String()
	assert.Contains(t, out, "section .rodata")
	assert.Contains(t, out, "mov rax, 42")
	assert.Contains(t, out, "global _start")
}

func TestRepl_Execute_ReportsParseErrors(t *testing.T) {

	r := newTestRepl()

	var buf bytes.Buffer
	r.Execute(&buf, `the story mumbles .`)

	out := buf.String()
	assert.Contains(t, out, "Parse Error")
	// a faulted line produces no assembly
	assert.NotContains(t, out, "section .rodata")
}

func TestRepl_Execute_ReportsGenerationErrors(t *testing.T) {

	r := newTestRepl()

	var buf bytes.Buffer
	r.Execute(&buf, `the story ends at this moment .`)

	out := buf.String()
	assert.Contains(t, out, "Runtime Error during code generation: 'the story ends at this moment' can only be used inside a loop.")
}

func TestRepl_Execute_AstToggle(t *testing.T) {

	r := newTestRepl()
	r.showAST = true

	var buf bytes.Buffer
	r.Execute(&buf, `a value x, type int, begins at 3 .`)

	out := buf.String()
	assert.Contains(t, out, "Declaration [x: int] (begins at)")
	assert.Contains(t, out, "section .rodata")
}

// Package printer turns a syntax tree back into source text.
//
// Output is normalized: two-space indentation, one statement per line and
// explicit semicolons. Parentheses from the source are kept, and more are
// added wherever operator precedence would otherwise change the tree, so
// re-parsing the output yields an equivalent tree.
package printer

import (
	"bytes"
	"fmt"
	"strings"

	"esfront/pkg/ast"
)

// Printer is responsible for transforming AST nodes into source code.
type Printer struct {
	indentLevel int
	buffer      bytes.Buffer
	// noIn is set while printing a for-statement head, where a bare `in`
	// operator would be read as a for-in.
	noIn bool
	// ambient is set inside a declared module, where members may not repeat
	// the declare keyword.
	ambient bool
}

// New creates a new printer.
func New() *Printer {
	return &Printer{}
}

// Print converts a program to source code.
func (p *Printer) Print(program *ast.Program) string {
	p.buffer.Reset()
	p.indentLevel = 0
	p.statements(program.Body)
	return p.buffer.String()
}

// PrintNode prints a single node: a statement, an expression, a pattern or
// a type. Statements end with a newline, the others do not.
func (p *Printer) PrintNode(n ast.Node) string {
	p.buffer.Reset()
	p.indentLevel = 0
	switch n := n.(type) {
	case *ast.Program:
		return p.Print(n)
	case ast.Statement:
		p.statements([]ast.Statement{n})
	case ast.Expression:
		p.expr(n, precSequence)
	case ast.Pattern:
		p.pattern(n)
	case ast.TSType:
		p.tsType(n, typePrecConditional)
	default:
		p.writef("/* unsupported node: %T */", n)
	}
	return p.buffer.String()
}

// Print is a shorthand for New().Print(program).
func Print(program *ast.Program) string {
	return New().Print(program)
}

// Helper methods

func (p *Printer) indent() {
	p.indentLevel++
}

func (p *Printer) dedent() {
	if p.indentLevel > 0 {
		p.indentLevel--
	}
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indentLevel; i++ {
		p.buffer.WriteString("  ")
	}
}

func (p *Printer) writeLine(s string) {
	p.writeIndent()
	p.buffer.WriteString(s)
	p.buffer.WriteString("\n")
}

func (p *Printer) write(s string) {
	p.buffer.WriteString(s)
}

// declare writes the declare keyword of an ambient declaration.
func (p *Printer) declare(declared bool) {
	if declared && !p.ambient {
		p.write("declare ")
	}
}

func (p *Printer) writef(format string, args ...interface{}) {
	fmt.Fprintf(&p.buffer, format, args...)
}

// capture runs emit against an empty buffer at the current indentation and
// returns what it wrote.
func (p *Printer) capture(emit func()) string {
	saved := p.buffer
	p.buffer = bytes.Buffer{}
	emit()
	out := p.buffer.String()
	p.buffer = saved
	return out
}

// list prints items separated by ", ".
func list[T any](p *Printer, items []T, emit func(T)) {
	for i, it := range items {
		if i > 0 {
			p.write(", ")
		}
		emit(it)
	}
}

// startsAmbiguously reports whether an expression statement would be read
// as something else when printed as is.
func startsAmbiguously(s string) bool {
	for _, prefix := range []string{"{", "function", "class", "let [", "async function"} {
		if prefix == "function" || prefix == "class" {
			if startsWithWord(s, prefix) {
				return true
			}
			continue
		}
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func isIdentPart(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c >= 0x80
}

// startsWithWord reports whether s begins with word as a whole identifier.
func startsWithWord(s, word string) bool {
	return strings.HasPrefix(s, word) && (len(s) == len(word) || !isIdentPart(s[len(word)]))
}

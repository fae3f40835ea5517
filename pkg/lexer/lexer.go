package lexer

import (
	"unicode/utf8"

	"esfront/pkg/errors"
	"esfront/pkg/source"
)

// Context is cross-token state driven by the parser. It survives from
// one token to the next and is captured by Fork together with State.
type Context struct {
	// braces holds one entry per open '{' or '${'. A true entry marks a
	// template substitution: its '}' resumes scanning the template.
	braces         []bool
	jsxString      bool // quotes start JSX attribute strings (no escapes)
	jsxTag         bool // identifiers may contain '-' and "/>" is one token
	highPriorityGT bool // '>' is never merged into '>=', '>>' or '>>>'
	strict         bool
}

// State is everything the scanner needs to resume. A copy of State with
// its brace stack cloned is a complete snapshot.
type State struct {
	pos       int // byte offset of the cursor
	line      int
	lineStart int // byte offset where the current line begins

	tok     Token
	scanned bool // tok is materialized for the cursor
	prevEnd source.Position

	// flags describing tok
	escaped         bool // identifier or keyword spelled with unicode escapes
	legacyOctal     bool // legacy octal number, or octal/8/9 escape in a string
	templateInvalid bool // template piece with an escape that has no cooked value

	err *errors.SyntaxError // first fatal lexical error, latched
	ctx Context
}

// Snapshot is a restorable copy of the lexer state.
type Snapshot struct {
	s State
}

// Lexer turns source text into tokens on demand. The current token is
// scanned on first access and stays put until Next is called, so the
// parser can switch scanning modes between tokens.
type Lexer struct {
	input string
	s     State

	// column cache, derived from input and never part of a snapshot
	colLineStart int
	colOffset    int
	colValue     int
}

// NewLexer creates a lexer positioned before the first token.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.s.line = 1
	l.s.prevEnd = source.Position{Line: 1, Column: 1}
	return l
}

// Input returns the complete source text.
func (l *Lexer) Input() string { return l.input }

// Slice returns the source text between two byte offsets.
func (l *Lexer) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(l.input) {
		to = len(l.input)
	}
	if from >= to {
		return ""
	}
	return l.input[from:to]
}

// --- current token ---

// Kind returns the type of the current token, scanning it if needed.
func (l *Lexer) Kind() TokenType {
	l.ensure()
	return l.s.tok.Type
}

// Token returns the current token.
func (l *Lexer) Token() Token {
	l.ensure()
	return l.s.tok
}

// Value returns the decoded value of the current token.
func (l *Lexer) Value() string {
	l.ensure()
	return l.s.tok.Value
}

// Literal returns the raw text of the current token.
func (l *Lexer) Literal() string {
	l.ensure()
	return l.s.tok.Literal
}

// StartPos returns where the current token begins.
func (l *Lexer) StartPos() source.Position {
	l.ensure()
	return l.s.tok.Start
}

// EndPos returns where the current token ends.
func (l *Lexer) EndPos() source.Position {
	l.ensure()
	return l.s.tok.End
}

// PrevEnd returns the end of the last consumed token.
func (l *Lexer) PrevEnd() source.Position { return l.s.prevEnd }

// NewlineBefore reports whether a line terminator precedes the current token.
func (l *Lexer) NewlineBefore() bool {
	l.ensure()
	return l.s.tok.NewlineBefore
}

// Escaped reports whether the current identifier used unicode escapes.
func (l *Lexer) Escaped() bool {
	l.ensure()
	return l.s.escaped
}

// LegacyOctal reports whether the current token is a legacy octal number
// or a string containing an octal, \8 or \9 escape.
func (l *Lexer) LegacyOctal() bool {
	l.ensure()
	return l.s.legacyOctal
}

// TemplateInvalidEscape reports whether the current template piece has
// an escape without a cooked value. Only tagged templates accept it.
func (l *Lexer) TemplateInvalidEscape() bool {
	l.ensure()
	return l.s.templateInvalid
}

// Err returns the latched fatal lexical error, if any.
func (l *Lexer) Err() error {
	if l.s.err == nil {
		return nil
	}
	return l.s.err
}

// Offset returns the absolute byte offset of the scanning cursor.
func (l *Lexer) Offset() int { return l.s.pos }

// Next consumes the current token.
func (l *Lexer) Next() {
	l.ensure()
	l.s.prevEnd = l.s.tok.End
	l.s.scanned = false
}

// Lookahead returns the token after the current one without consuming
// anything.
func (l *Lexer) Lookahead() Token {
	l.ensure()
	// A single scan pushes or pops at most one brace entry, so the saved
	// slice header still sees the original stack contents.
	saved := l.s
	l.Next()
	l.ensure()
	tok := l.s.tok
	l.s = saved
	return tok
}

// Fork captures the complete lexer state, including the context stack.
func (l *Lexer) Fork() Snapshot {
	s := l.s
	s.ctx.braces = cloneBraces(l.s.ctx.braces)
	return Snapshot{s: s}
}

// Restore rewinds the lexer to a snapshot. A snapshot can be restored
// more than once.
func (l *Lexer) Restore(snap Snapshot) {
	l.s = snap.s
	l.s.ctx.braces = cloneBraces(snap.s.ctx.braces)
}

func cloneBraces(b []bool) []bool {
	if b == nil {
		return nil
	}
	out := make([]bool, len(b))
	copy(out, b)
	return out
}

// --- context switches used by the parser ---

// SetJSXStringMode toggles JSX attribute string scanning and returns the
// previous setting.
func (l *Lexer) SetJSXStringMode(on bool) bool {
	prev := l.s.ctx.jsxString
	l.s.ctx.jsxString = on
	return prev
}

// SetJSXTagMode toggles JSX tag scanning (dashed names, "/>") and
// returns the previous setting.
func (l *Lexer) SetJSXTagMode(on bool) bool {
	prev := l.s.ctx.jsxTag
	l.s.ctx.jsxTag = on
	return prev
}

// SetHighPriorityGreaterThan makes '>' scan as a lone token and returns
// the previous setting.
func (l *Lexer) SetHighPriorityGreaterThan(on bool) bool {
	prev := l.s.ctx.highPriorityGT
	l.s.ctx.highPriorityGT = on
	return prev
}

// SetStrict tells the lexer whether the code being scanned is strict.
func (l *Lexer) SetStrict(on bool) { l.s.ctx.strict = on }

// Strict reports the strictness last set by the parser.
func (l *Lexer) Strict() bool { return l.s.ctx.strict }

// TemplateDepth returns how many template substitutions are open.
func (l *Lexer) TemplateDepth() int {
	n := 0
	for _, b := range l.s.ctx.braces {
		if b {
			n++
		}
	}
	return n
}

// ReLexGreaterThan splits a current '>=', '>>', '>>=', '>>>' or '>>>='
// token so that it is a lone '>'. The rest is scanned again by Next.
func (l *Lexer) ReLexGreaterThan() {
	l.ensure()
	l.splitFirst(GT, '>')
}

// ReLexLessThan splits a current '<=', '<<' or '<<=' token so that it is
// a lone '<'.
func (l *Lexer) ReLexLessThan() {
	l.ensure()
	l.splitFirst(LT, '<')
}

func (l *Lexer) splitFirst(typ TokenType, ch byte) {
	t := l.s.tok
	if t.Type == typ || len(t.Literal) < 2 || t.Literal[0] != ch {
		return
	}
	l.s.pos = t.Start.Offset + 1
	l.s.tok.Type = typ
	l.s.tok.Literal = string(ch)
	l.s.tok.Value = string(ch)
	l.s.tok.End = l.here()
}

// --- positions ---

func (l *Lexer) ensure() {
	if !l.s.scanned {
		l.scan()
	}
}

// here returns the position of the cursor.
func (l *Lexer) here() source.Position {
	return source.Position{
		Line:   l.s.line,
		Column: l.column(l.s.lineStart, l.s.pos) + 1,
		Offset: l.s.pos,
	}
}

// posAt returns the position of an offset on the current line.
func (l *Lexer) posAt(off int) source.Position {
	if off < l.s.lineStart {
		return l.s.tok.Start
	}
	return source.Position{
		Line:   l.s.line,
		Column: utf8.RuneCountInString(l.input[l.s.lineStart:off]) + 1,
		Offset: off,
	}
}

func (l *Lexer) column(lineStart, pos int) int {
	if l.colLineStart != lineStart || pos < l.colOffset {
		l.colLineStart, l.colOffset, l.colValue = lineStart, lineStart, 0
	}
	l.colValue += utf8.RuneCountInString(l.input[l.colOffset:pos])
	l.colOffset = pos
	return l.colValue
}

// fatal latches err and turns the current token into ILLEGAL.
func (l *Lexer) fatal(err *errors.SyntaxError) {
	if l.s.err == nil {
		l.s.err = err
	}
	l.s.tok.Type = ILLEGAL
	l.s.tok.Literal = ""
	l.s.tok.Value = ""
	l.s.tok.End = l.s.tok.Start
}

func (l *Lexer) errorAt(off int, format string, args ...interface{}) *errors.SyntaxError {
	return errors.NewFatalError(l.posAt(off), format, args...)
}

package lexer

import (
	"html"

	"esfront/pkg/errors"
)

// NextInJSXChildren consumes the current token and scans the next one as
// JSX child content: raw text up to the next '{' or '<', or one of those
// delimiters. "</" is only recognized here.
func (l *Lexer) NextInJSXChildren() {
	l.Next()
	l.s.scanned = true
	l.s.escaped = false
	l.s.legacyOctal = false
	l.s.templateInvalid = false
	if l.s.err != nil {
		l.s.tok = Token{Type: ILLEGAL, Start: l.s.err.Position, End: l.s.err.Position}
		return
	}
	l.s.tok = Token{Start: l.here()}
	if l.s.pos >= len(l.input) {
		l.finish(EOF)
		return
	}
	switch l.input[l.s.pos] {
	case '{':
		l.s.pos++
		l.s.ctx.braces = append(l.s.ctx.braces, false)
		l.finish(LBRACE)
	case '<':
		if l.peekByte(1) == '/' {
			l.s.pos += 2
			l.finish(JSX_CLOSE_START)
			return
		}
		l.s.pos++
		l.finish(LT)
	default:
		for l.s.pos < len(l.input) {
			if ch := l.input[l.s.pos]; ch == '{' || ch == '<' {
				break
			}
			if l.atLineTerminator() {
				l.consumeNewline()
				continue
			}
			l.s.pos++
		}
		l.finish(JSX_TEXT)
		l.s.tok.Value = html.UnescapeString(l.s.tok.Literal)
	}
}

// scanJSXString scans an attribute string: no escapes, and line breaks
// are part of the value.
func (l *Lexer) scanJSXString(quote byte) *errors.SyntaxError {
	l.s.pos++
	start := l.s.pos
	for {
		if l.s.pos >= len(l.input) {
			return errors.NewFatalError(l.s.tok.Start, errors.MsgUnterminatedString)
		}
		if l.input[l.s.pos] == quote {
			value := l.input[start:l.s.pos]
			l.s.pos++
			l.finish(STRING)
			l.s.tok.Value = html.UnescapeString(value)
			return nil
		}
		if l.atLineTerminator() {
			l.consumeNewline()
			continue
		}
		l.s.pos++
	}
}

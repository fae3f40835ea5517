package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"esfront/pkg/errors"
	"esfront/pkg/source"
)

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

// scan materializes the token at the cursor.
func (l *Lexer) scan() {
	l.s.scanned = true
	l.s.escaped = false
	l.s.legacyOctal = false
	l.s.templateInvalid = false
	if l.s.err != nil {
		l.s.tok = Token{Type: ILLEGAL, Start: l.s.err.Position, End: l.s.err.Position}
		return
	}
	newline, err := l.skipTrivia()
	l.s.tok = Token{Start: l.here(), NewlineBefore: newline}
	if err != nil {
		l.fatal(err)
		return
	}
	if l.s.pos >= len(l.input) {
		l.finish(EOF)
		return
	}
	if err := l.scanToken(); err != nil {
		l.fatal(err)
	}
}

// finish stamps the end position and raw text of the current token.
func (l *Lexer) finish(typ TokenType) {
	l.s.tok.Type = typ
	l.s.tok.End = l.here()
	l.s.tok.Literal = l.input[l.s.tok.Start.Offset:l.s.pos]
	l.s.tok.Value = l.s.tok.Literal
}

// skipTrivia skips whitespace and comments, reporting whether a line
// terminator was crossed.
func (l *Lexer) skipTrivia() (bool, *errors.SyntaxError) {
	newline := false
	if l.s.pos == 0 && strings.HasPrefix(l.input, "#!") {
		l.skipLineComment()
	}
	for l.s.pos < len(l.input) {
		ch := l.input[l.s.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f':
			l.s.pos++
		case ch == '\n' || ch == '\r':
			l.consumeNewline()
			newline = true
		case ch == '/' && l.peekByte(1) == '/':
			l.skipLineComment()
		case ch == '/' && l.peekByte(1) == '*':
			nl, err := l.skipBlockComment()
			if err != nil {
				return newline, err
			}
			newline = newline || nl
		case ch < utf8.RuneSelf:
			return newline, nil
		default:
			r, size := utf8.DecodeRuneInString(l.input[l.s.pos:])
			switch {
			case r == lineSeparator || r == paragraphSeparator:
				l.consumeNewline()
				newline = true
			case r == '\uFEFF' || r == '\u00A0' || unicode.Is(unicode.Zs, r):
				l.s.pos += size
			default:
				return newline, nil
			}
		}
	}
	return newline, nil
}

func (l *Lexer) skipLineComment() {
	for l.s.pos < len(l.input) && !l.atLineTerminator() {
		l.s.pos++
	}
}

func (l *Lexer) skipBlockComment() (bool, *errors.SyntaxError) {
	start := l.s.pos
	l.s.pos += 2
	newline := false
	for l.s.pos < len(l.input) {
		if l.input[l.s.pos] == '*' && l.peekByte(1) == '/' {
			l.s.pos += 2
			return newline, nil
		}
		if l.atLineTerminator() {
			l.consumeNewline()
			newline = true
			continue
		}
		l.s.pos++
	}
	return newline, errors.NewFatalError(l.startOf(start), errors.MsgUnterminatedComment)
}

// startOf returns the position of an offset that lies before the cursor,
// possibly on an earlier line.
func (l *Lexer) startOf(off int) source.Position {
	line, lineStart := 1, 0
	for i := 0; i < off; {
		switch {
		case l.input[i] == '\n':
			i++
		case l.input[i] == '\r':
			i++
			if i < off && l.input[i] == '\n' {
				i++
			}
		case strings.HasPrefix(l.input[i:], "\u2028"), strings.HasPrefix(l.input[i:], "\u2029"):
			i += 3
		default:
			i++
			continue
		}
		line++
		lineStart = i
	}
	return source.Position{
		Line:   line,
		Column: utf8.RuneCountInString(l.input[lineStart:off]) + 1,
		Offset: off,
	}
}

// atLineTerminator reports whether the cursor is on a line terminator.
func (l *Lexer) atLineTerminator() bool {
	if l.s.pos >= len(l.input) {
		return false
	}
	switch l.input[l.s.pos] {
	case '\n', '\r':
		return true
	case 0xE2:
		rest := l.input[l.s.pos:]
		return strings.HasPrefix(rest, "\u2028") || strings.HasPrefix(rest, "\u2029")
	}
	return false
}

// consumeNewline steps over the line terminator at the cursor.
func (l *Lexer) consumeNewline() {
	switch l.input[l.s.pos] {
	case '\r':
		l.s.pos++
		if l.s.pos < len(l.input) && l.input[l.s.pos] == '\n' {
			l.s.pos++
		}
	case '\n':
		l.s.pos++
	default:
		l.s.pos += 3
	}
	l.s.line++
	l.s.lineStart = l.s.pos
}

func (l *Lexer) peekByte(n int) byte {
	if l.s.pos+n < len(l.input) {
		return l.input[l.s.pos+n]
	}
	return 0
}

// punct consumes the first candidate that prefixes the input. Candidates
// are ordered longest first and are their own token types.
func (l *Lexer) punct(cands ...string) {
	rest := l.input[l.s.pos:]
	for _, c := range cands {
		if strings.HasPrefix(rest, c) {
			l.s.pos += len(c)
			l.finish(TokenType(c))
			return
		}
	}
}

func (l *Lexer) scanToken() *errors.SyntaxError {
	ch := l.input[l.s.pos]
	switch ch {
	case '{':
		l.s.pos++
		l.s.ctx.braces = append(l.s.ctx.braces, false)
		l.finish(LBRACE)
	case '}':
		if n := len(l.s.ctx.braces); n > 0 {
			inTemplate := l.s.ctx.braces[n-1]
			l.s.ctx.braces = l.s.ctx.braces[:n-1]
			if inTemplate {
				return l.scanTemplate(false)
			}
		}
		l.s.pos++
		l.finish(RBRACE)
	case '(', ')', '[', ']', ';', ',', ':', '~', '@':
		l.s.pos++
		l.finish(TokenType(string(ch)))
	case '.':
		if isDigit(l.peekByte(1)) {
			return l.scanNumber()
		}
		l.punct("...", ".")
	case '?':
		if l.peekByte(1) == '.' && !isDigit(l.peekByte(2)) {
			l.s.pos += 2
			l.finish(OPTIONAL)
			return nil
		}
		l.punct("??=", "??", "?")
	case '=':
		l.punct("===", "==", "=>", "=")
	case '!':
		l.punct("!==", "!=", "!")
	case '+':
		l.punct("++", "+=", "+")
	case '-':
		l.punct("--", "-=", "-")
	case '*':
		l.punct("**=", "**", "*=", "*")
	case '/':
		if l.s.ctx.jsxTag {
			l.punct("/>", "/")
			return nil
		}
		l.punct("/=", "/")
	case '%':
		l.punct("%=", "%")
	case '<':
		l.punct("<<=", "<<", "<=", "<")
	case '>':
		if l.s.ctx.highPriorityGT {
			l.punct(">")
			return nil
		}
		l.punct(">>>=", ">>>", ">>=", ">>", ">=", ">")
	case '&':
		l.punct("&&=", "&&", "&=", "&")
	case '|':
		l.punct("||=", "||", "|=", "|")
	case '^':
		l.punct("^=", "^")
	case '"', '\'':
		if l.s.ctx.jsxString {
			return l.scanJSXString(ch)
		}
		return l.scanString(ch)
	case '`':
		return l.scanTemplate(true)
	case '#':
		return l.scanPrivateName()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.scanNumber()
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.s.pos:])
		if ch == '\\' || isIdentifierStart(r) {
			return l.scanIdentifier()
		}
		return l.errorAt(l.s.pos, errors.MsgUnexpectedChar, string(r))
	}
	return nil
}

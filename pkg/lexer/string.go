package lexer

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"esfront/pkg/errors"
)

func (l *Lexer) scanString(quote byte) *errors.SyntaxError {
	l.s.pos++
	var sb strings.Builder
	chunk := l.s.pos
	for {
		if l.s.pos >= len(l.input) {
			return errors.NewFatalError(l.s.tok.Start, errors.MsgUnterminatedString)
		}
		switch ch := l.input[l.s.pos]; {
		case ch == quote:
			sb.WriteString(l.input[chunk:l.s.pos])
			l.s.pos++
			l.finish(STRING)
			l.s.tok.Value = sb.String()
			return nil
		case ch == '\\':
			sb.WriteString(l.input[chunk:l.s.pos])
			if err := l.readEscape(&sb, false); err != nil {
				return err
			}
			chunk = l.s.pos
		case ch == '\n' || ch == '\r':
			return errors.NewFatalError(l.s.tok.Start, errors.MsgUnterminatedString)
		default:
			l.s.pos++
		}
	}
}

// scanTemplate scans one template piece. head is true when the piece
// opens with '`' rather than the '}' closing a substitution.
func (l *Lexer) scanTemplate(head bool) *errors.SyntaxError {
	l.s.pos++
	var sb strings.Builder
	chunk := l.s.pos
	for {
		if l.s.pos >= len(l.input) {
			return errors.NewFatalError(l.s.tok.Start, errors.MsgUnterminatedTemplate)
		}
		ch := l.input[l.s.pos]
		switch {
		case ch == '`':
			sb.WriteString(l.input[chunk:l.s.pos])
			l.s.pos++
			if head {
				l.finishTemplate(TEMPLATE_STRING, &sb)
			} else {
				l.finishTemplate(TEMPLATE_TAIL, &sb)
			}
			return nil
		case ch == '$' && l.peekByte(1) == '{':
			sb.WriteString(l.input[chunk:l.s.pos])
			l.s.pos += 2
			l.s.ctx.braces = append(l.s.ctx.braces, true)
			if head {
				l.finishTemplate(TEMPLATE_HEAD, &sb)
			} else {
				l.finishTemplate(TEMPLATE_MIDDLE, &sb)
			}
			return nil
		case ch == '\\':
			sb.WriteString(l.input[chunk:l.s.pos])
			if err := l.readEscape(&sb, true); err != nil {
				return err
			}
			chunk = l.s.pos
		case ch == '\r':
			// cooked and raw values normalize CRLF and CR to LF
			sb.WriteString(l.input[chunk:l.s.pos])
			sb.WriteByte('\n')
			l.consumeNewline()
			chunk = l.s.pos
		case l.atLineTerminator():
			l.consumeNewline()
		default:
			l.s.pos++
		}
	}
}

func (l *Lexer) finishTemplate(typ TokenType, cooked *strings.Builder) {
	l.finish(typ)
	if l.s.templateInvalid {
		l.s.tok.Value = ""
		return
	}
	l.s.tok.Value = cooked.String()
}

// readEscape decodes the escape sequence at the cursor ('\' included)
// into sb. Inside templates malformed escapes only mark the piece as
// having no cooked value, since tagged templates may contain them.
func (l *Lexer) readEscape(sb *strings.Builder, inTemplate bool) *errors.SyntaxError {
	escStart := l.s.pos
	l.s.pos++
	if l.s.pos >= len(l.input) {
		return nil
	}
	ch := l.input[l.s.pos]
	switch ch {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '\r', '\n':
		// line continuation
		l.consumeNewline()
		return nil
	case 'x':
		l.s.pos++
		r, ok := l.readHex(2)
		if !ok {
			return l.badEscape(inTemplate, escStart, errors.MsgInvalidHexEscape)
		}
		sb.WriteRune(r)
		return nil
	case 'u':
		l.s.pos++
		r, ok := l.readUnicodeEscapeBody()
		if !ok {
			return l.badEscape(inTemplate, escStart, errors.MsgInvalidUnicodeEscape)
		}
		if utf16.IsSurrogate(r) && strings.HasPrefix(l.input[l.s.pos:], "\\u") {
			save := l.s.pos
			l.s.pos += 2
			if lo, ok := l.readUnicodeEscapeBody(); ok {
				if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
					sb.WriteRune(pair)
					return nil
				}
			}
			l.s.pos = save
		}
		sb.WriteRune(r)
		return nil
	case '0':
		if !isDigit(l.peekByte(1)) {
			sb.WriteByte(0)
			break
		}
		return l.readLegacyOctalEscape(sb, inTemplate, escStart)
	case '1', '2', '3', '4', '5', '6', '7':
		return l.readLegacyOctalEscape(sb, inTemplate, escStart)
	case '8', '9':
		if inTemplate {
			return l.badEscape(true, escStart, errors.MsgOctalEscapeTemplate)
		}
		l.s.legacyOctal = true
		sb.WriteByte(ch)
	default:
		if ch >= utf8.RuneSelf {
			if l.atLineTerminator() {
				l.consumeNewline()
				return nil
			}
			r, size := utf8.DecodeRuneInString(l.input[l.s.pos:])
			sb.WriteRune(r)
			l.s.pos += size
			return nil
		}
		sb.WriteByte(ch)
	}
	l.s.pos++
	return nil
}

func (l *Lexer) readLegacyOctalEscape(sb *strings.Builder, inTemplate bool, escStart int) *errors.SyntaxError {
	if inTemplate {
		l.s.pos++
		return l.badEscape(true, escStart, errors.MsgOctalEscapeTemplate)
	}
	max := 3
	if l.input[l.s.pos] > '3' {
		max = 2
	}
	var r rune
	for i := 0; i < max && l.s.pos < len(l.input) && isDigitForBase(l.input[l.s.pos], 8); i++ {
		r = r*8 + rune(l.input[l.s.pos]-'0')
		l.s.pos++
	}
	l.s.legacyOctal = true
	sb.WriteRune(r)
	return nil
}

func (l *Lexer) badEscape(inTemplate bool, at int, msg string) *errors.SyntaxError {
	if inTemplate {
		l.s.templateInvalid = true
		return nil
	}
	return l.errorAt(at, msg)
}

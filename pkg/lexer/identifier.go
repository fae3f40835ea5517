package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"esfront/pkg/errors"
)

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isDigitForBase(ch byte, base int) bool {
	switch base {
	case 2:
		return ch == '0' || ch == '1'
	case 8:
		return '0' <= ch && ch <= '7'
	case 16:
		return isHexDigit(ch)
	}
	return isDigit(ch)
}

func hexValue(ch byte) rune {
	switch {
	case isDigit(ch):
		return rune(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return rune(ch-'a') + 10
	default:
		return rune(ch-'A') + 10
	}
}

func isIdentifierStart(r rune) bool {
	switch {
	case r == '$' || r == '_':
		return true
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	case r < utf8.RuneSelf:
		return false
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isIdentifierPart(r rune) bool {
	if isIdentifierStart(r) || ('0' <= r && r <= '9') {
		return true
	}
	if r < utf8.RuneSelf {
		return false
	}
	return r == '\u200C' || r == '\u200D' ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

// IsIdentifier reports whether s is a valid IdentifierName without escapes.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentifierStart(r) || i > 0 && !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

func (l *Lexer) scanIdentifier() *errors.SyntaxError {
	name, escaped, err := l.readIdentifierName(l.s.ctx.jsxTag)
	if err != nil {
		return err
	}
	typ := LookupIdent(name)
	if typ != IDENT && escaped {
		if !softKeywords[typ] {
			return errors.NewFatalError(l.s.tok.Start, errors.MsgEscapedKeyword)
		}
		typ = IDENT
	}
	l.s.escaped = escaped
	l.finish(typ)
	l.s.tok.Value = name
	return nil
}

func (l *Lexer) scanPrivateName() *errors.SyntaxError {
	l.s.pos++
	r, _ := utf8.DecodeRuneInString(l.input[l.s.pos:])
	if l.s.pos >= len(l.input) || (r != '\\' && !isIdentifierStart(r)) {
		return l.errorAt(l.s.pos-1, errors.MsgUnexpectedChar, "#")
	}
	name, escaped, err := l.readIdentifierName(false)
	if err != nil {
		return err
	}
	l.s.escaped = escaped
	l.finish(PRIVATE_NAME)
	l.s.tok.Value = name
	return nil
}

// readIdentifierName reads an IdentifierName at the cursor, decoding
// \u escapes. allowDash admits '-' after the first character, as JSX
// names do.
func (l *Lexer) readIdentifierName(allowDash bool) (string, bool, *errors.SyntaxError) {
	start := l.s.pos
	var sb *strings.Builder
	first := true
	for l.s.pos < len(l.input) {
		ch := l.input[l.s.pos]
		if ch == '\\' {
			escStart := l.s.pos
			if l.peekByte(1) != 'u' {
				return "", false, l.errorAt(escStart, errors.MsgInvalidUnicodeEscape)
			}
			l.s.pos += 2
			r, ok := l.readUnicodeEscapeBody()
			if !ok || (first && !isIdentifierStart(r)) || (!first && !isIdentifierPart(r)) {
				return "", false, l.errorAt(escStart, errors.MsgInvalidUnicodeEscape)
			}
			if sb == nil {
				sb = &strings.Builder{}
				sb.WriteString(l.input[start:escStart])
			}
			sb.WriteRune(r)
			first = false
			continue
		}
		r, size := rune(ch), 1
		if ch >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(l.input[l.s.pos:])
		}
		if first && !isIdentifierStart(r) || !first && !isIdentifierPart(r) && !(allowDash && r == '-') {
			break
		}
		if sb != nil {
			sb.WriteString(l.input[l.s.pos : l.s.pos+size])
		}
		l.s.pos += size
		first = false
	}
	if sb == nil {
		return l.input[start:l.s.pos], false, nil
	}
	return sb.String(), true, nil
}

// readUnicodeEscapeBody reads the part of a \u escape after "\u": either
// four hex digits or a braced code point.
func (l *Lexer) readUnicodeEscapeBody() (rune, bool) {
	if l.s.pos < len(l.input) && l.input[l.s.pos] == '{' {
		l.s.pos++
		var r rune
		digits := 0
		for l.s.pos < len(l.input) && isHexDigit(l.input[l.s.pos]) {
			r = r*16 + hexValue(l.input[l.s.pos])
			if r > unicode.MaxRune {
				return 0, false
			}
			l.s.pos++
			digits++
		}
		if digits == 0 || l.s.pos >= len(l.input) || l.input[l.s.pos] != '}' {
			return 0, false
		}
		l.s.pos++
		return r, true
	}
	return l.readHex(4)
}

// readHex reads exactly n hex digits.
func (l *Lexer) readHex(n int) (rune, bool) {
	if l.s.pos+n > len(l.input) {
		return 0, false
	}
	var r rune
	for i := 0; i < n; i++ {
		ch := l.input[l.s.pos+i]
		if !isHexDigit(ch) {
			return 0, false
		}
		r = r*16 + hexValue(ch)
	}
	l.s.pos += n
	return r, true
}

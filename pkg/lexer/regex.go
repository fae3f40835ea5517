package lexer

import (
	"strings"
	"unicode/utf8"

	"esfront/pkg/errors"
)

const regexFlags = "dgimsuvy"

// ReadRegex rescans the current '/' or '/=' token as a regular
// expression literal. Only the parser knows whether a slash starts a
// regular expression, so this is never reached from the default scan.
func (l *Lexer) ReadRegex() (pattern, flags string, err error) {
	l.ensure()
	if l.s.err != nil {
		return "", "", l.s.err
	}
	tok := l.s.tok
	if tok.Type != SLASH && tok.Type != SLASH_ASSIGN {
		serr := errors.NewFatalError(tok.Start, errors.MsgUnexpectedTokenValue, tok.Literal)
		l.fatal(serr)
		return "", "", serr
	}
	pattern, flags, serr := l.scanRegex(tok.Start.Offset)
	if serr != nil {
		l.fatal(serr)
		return "", "", serr
	}
	return pattern, flags, nil
}

func (l *Lexer) scanRegex(start int) (string, string, *errors.SyntaxError) {
	l.s.pos = start + 1
	inClass := false
	for {
		if l.s.pos >= len(l.input) || l.atLineTerminator() {
			return "", "", errors.NewFatalError(l.s.tok.Start, errors.MsgUnterminatedRegExp)
		}
		ch := l.input[l.s.pos]
		if ch == '\\' {
			l.s.pos++
			if l.s.pos >= len(l.input) || l.atLineTerminator() {
				return "", "", errors.NewFatalError(l.s.tok.Start, errors.MsgUnterminatedRegExp)
			}
			_, size := utf8.DecodeRuneInString(l.input[l.s.pos:])
			l.s.pos += size
			continue
		}
		switch {
		case ch == '[':
			inClass = true
		case ch == ']':
			inClass = false
		case ch == '/' && !inClass:
			pattern := l.input[start+1 : l.s.pos]
			l.s.pos++
			flags, err := l.readRegexFlags()
			if err != nil {
				return "", "", err
			}
			l.finish(REGEX_LITERAL)
			l.s.tok.Value = pattern
			return pattern, flags, nil
		}
		_, size := utf8.DecodeRuneInString(l.input[l.s.pos:])
		l.s.pos += size
	}
}

func (l *Lexer) readRegexFlags() (string, *errors.SyntaxError) {
	start := l.s.pos
	for l.s.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.s.pos:])
		if r == '\\' {
			return "", l.errorAt(start, errors.MsgInvalidRegExpFlags)
		}
		if !isIdentifierPart(r) {
			break
		}
		l.s.pos += size
	}
	flags := l.input[start:l.s.pos]
	if !validRegexFlags(flags) {
		return "", l.errorAt(start, errors.MsgInvalidRegExpFlags)
	}
	return flags, nil
}

// validRegexFlags rejects unknown and repeated flags and the u+v pair.
func validRegexFlags(flags string) bool {
	seen := 0
	for i := 0; i < len(flags); i++ {
		idx := strings.IndexByte(regexFlags, flags[i])
		if idx < 0 || seen&(1<<idx) != 0 {
			return false
		}
		seen |= 1 << idx
	}
	return !(strings.ContainsRune(flags, 'u') && strings.ContainsRune(flags, 'v'))
}

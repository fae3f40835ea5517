package lexer

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"esfront/pkg/errors"
)

// scanNumber scans decimal, based (0x, 0o, 0b), legacy octal and BigInt
// literals starting at the cursor.
func (l *Lexer) scanNumber() *errors.SyntaxError {
	start := l.s.pos
	legacy := false

	if l.input[start] == '0' {
		base := 0
		switch l.peekByte(1) | 0x20 {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			l.s.pos += 2
			if err := l.readDigits(base, true); err != nil {
				return err
			}
			return l.finishNumber(false, false)
		}
		if next := l.peekByte(1); isDigit(next) || next == '_' {
			if next == '_' {
				return l.errorAt(start+1, errors.MsgNumericSeparatorLeading)
			}
			if l.s.ctx.strict {
				return l.errorAt(start, errors.MsgLegacyOctalStrict)
			}
			legacy = true
			l.s.legacyOctal = true
			l.s.pos++
			octal := true
			for l.s.pos < len(l.input) && isDigit(l.input[l.s.pos]) {
				if l.input[l.s.pos] >= '8' {
					octal = false
				}
				l.s.pos++
			}
			if l.peekByte(0) == '_' {
				return l.errorAt(l.s.pos, errors.MsgNumericSeparatorLeading)
			}
			if octal {
				return l.finishNumber(false, true)
			}
			// non-octal decimal such as 089 may carry a fraction
			return l.scanFraction(legacy)
		}
	}

	if l.input[start] != '.' {
		if err := l.readDigits(10, true); err != nil {
			return err
		}
	}
	return l.scanFraction(false)
}

// scanFraction scans the optional fraction and exponent of a decimal.
func (l *Lexer) scanFraction(legacy bool) *errors.SyntaxError {
	isFloat := false
	if l.peekByte(0) == '.' {
		l.s.pos++
		isFloat = true
		if err := l.readDigits(10, false); err != nil {
			return err
		}
	}
	if ch := l.peekByte(0); ch == 'e' || ch == 'E' {
		l.s.pos++
		if ch := l.peekByte(0); ch == '+' || ch == '-' {
			l.s.pos++
		}
		isFloat = true
		if err := l.readDigits(10, true); err != nil {
			return err
		}
	}
	return l.finishNumber(isFloat, legacy)
}

// finishNumber handles the BigInt suffix and rejects identifier
// characters glued to the literal.
func (l *Lexer) finishNumber(isFloat, legacy bool) *errors.SyntaxError {
	typ := NUMBER
	if l.peekByte(0) == 'n' {
		if isFloat || legacy {
			return l.errorAt(l.s.pos, errors.MsgInvalidBigInt)
		}
		l.s.pos++
		typ = BIGINT
	}
	if l.s.pos < len(l.input) {
		r, _ := utf8.DecodeRuneInString(l.input[l.s.pos:])
		if isIdentifierStart(r) || r == '\\' || ('0' <= r && r <= '9') {
			return l.errorAt(l.s.pos, errors.MsgIdentAfterNumber)
		}
	}
	l.finish(typ)
	return nil
}

// readDigits reads digits of the given base with '_' separators, which
// must sit between two digits.
func (l *Lexer) readDigits(base int, required bool) *errors.SyntaxError {
	start := l.s.pos
	lastSep := false
	for l.s.pos < len(l.input) {
		ch := l.input[l.s.pos]
		if ch == '_' {
			if l.s.pos == start || lastSep {
				return l.errorAt(l.s.pos, errors.MsgNumericSeparator)
			}
			lastSep = true
			l.s.pos++
			continue
		}
		if !isDigitForBase(ch, base) {
			break
		}
		lastSep = false
		l.s.pos++
	}
	if lastSep {
		return l.errorAt(l.s.pos-1, errors.MsgNumericSeparator)
	}
	if required && l.s.pos == start {
		return l.errorAt(l.s.pos, errors.MsgExpectedNumberInRadix, base)
	}
	return nil
}

// NumberValue computes the numeric value of a NUMBER token literal.
func NumberValue(raw string) float64 {
	s := strings.ReplaceAll(raw, "_", "")
	if len(s) > 1 && s[0] == '0' {
		switch s[1] | 0x20 {
		case 'x':
			return parseBase(s[2:], 16)
		case 'o':
			return parseBase(s[2:], 8)
		case 'b':
			return parseBase(s[2:], 2)
		}
		if strings.Trim(s, "01234567") == "" {
			return parseBase(s[1:], 8)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func parseBase(digits string, base int) float64 {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
		literals []string
	}{
		{
			name:     "Simple regex",
			input:    "/hello/",
			expected: []TokenType{REGEX_LITERAL, EOF},
			literals: []string{"/hello/", ""},
		},
		{
			name:     "Regex with flags",
			input:    "/world/gi",
			expected: []TokenType{REGEX_LITERAL, EOF},
			literals: []string{"/world/gi", ""},
		},
		{
			name:     "Slash inside class",
			input:    "/[/]+/m",
			expected: []TokenType{REGEX_LITERAL, EOF},
			literals: []string{"/[/]+/m", ""},
		},
		{
			name:     "Escaped slash",
			input:    `/a\/b/`,
			expected: []TokenType{REGEX_LITERAL, EOF},
			literals: []string{`/a\/b/`, ""},
		},
		{
			name:     "Assignment context",
			input:    "let x = /test/i;",
			expected: []TokenType{LET, IDENT, ASSIGN, REGEX_LITERAL, SEMICOLON, EOF},
			literals: []string{"let", "x", "=", "/test/i", ";", ""},
		},
		{
			name:     "Division vs regex - division",
			input:    "a / b / c",
			expected: []TokenType{IDENT, SLASH, IDENT, SLASH, IDENT, EOF},
			literals: []string{"a", "/", "b", "/", "c", ""},
		},
		{
			name:     "Division vs regex - regex after paren",
			input:    "(/pattern/)",
			expected: []TokenType{LPAREN, REGEX_LITERAL, RPAREN, EOF},
			literals: []string{"(", "/pattern/", ")", ""},
		},
		{
			name:     "Regex after function declaration",
			input:    "function f(){} /x/g",
			expected: []TokenType{FUNCTION, IDENT, LPAREN, RPAREN, LBRACE, RBRACE, REGEX_LITERAL, EOF},
			literals: []string{"function", "f", "(", ")", "{", "}", "/x/g", ""},
		},
		{
			name:     "Division after function expression",
			input:    "x = function(){} / 2",
			expected: []TokenType{IDENT, ASSIGN, FUNCTION, LPAREN, RPAREN, LBRACE, RBRACE, SLASH, NUMBER, EOF},
			literals: []string{"x", "=", "function", "(", ")", "{", "}", "/", "2", ""},
		},
		{
			name:     "Division after object literal",
			input:    "({}) / 1",
			expected: []TokenType{LPAREN, LBRACE, RBRACE, RPAREN, SLASH, NUMBER, EOF},
			literals: []string{"(", "{", "}", ")", "/", "1", ""},
		},
		{
			name:     "Regex after if header",
			input:    "if (a) /b/.test(c)",
			expected: []TokenType{IF, LPAREN, IDENT, RPAREN, REGEX_LITERAL, DOT, IDENT, LPAREN, IDENT, RPAREN, EOF},
			literals: []string{"if", "(", "a", ")", "/b/", ".", "test", "(", "c", ")", ""},
		},
		{
			name:     "Regex after block",
			input:    "{}\n/foo/",
			expected: []TokenType{LBRACE, RBRACE, REGEX_LITERAL, EOF},
			literals: []string{"{", "}", "/foo/", ""},
		},
		{
			name:     "Regex assign lookalike",
			input:    "x(/=/)",
			expected: []TokenType{IDENT, LPAREN, REGEX_LITERAL, RPAREN, EOF},
			literals: []string{"x", "(", "/=/", ")", ""},
		},
		{
			name:     "Template substitution",
			input:    "`${a}` / 2",
			expected: []TokenType{TEMPLATE_HEAD, IDENT, TEMPLATE_TAIL, SLASH, NUMBER, EOF},
			literals: []string{"`${", "a", "}`", "/", "2", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, toks, len(tt.expected))
			for i, expectedToken := range tt.expected {
				assert.Equalf(t, expectedToken, toks[i].Type, "test[%d] - tokentype wrong", i)
				assert.Equalf(t, tt.literals[i], toks[i].Literal, "test[%d] - literal wrong", i)
			}
		})
	}
}

func TestReadRegex(t *testing.T) {
	l := NewLexer("/a[/]b/gu;")
	require.Equal(t, SLASH, l.Kind())
	pattern, flags, err := l.ReadRegex()
	require.NoError(t, err)
	assert.Equal(t, "a[/]b", pattern)
	assert.Equal(t, "gu", flags)
	assert.Equal(t, REGEX_LITERAL, l.Kind())
	assert.Equal(t, "a[/]b", l.Value())
	l.Next()
	assert.Equal(t, SEMICOLON, l.Kind())
}

func TestReadRegexErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"/abc", "Unterminated regular expression"},
		{"/ab\nc/", "Unterminated regular expression"},
		{`/ab\`, "Unterminated regular expression"},
		{"/a/gg", "Invalid regular expression flags"},
		{"/a/uv", "Invalid regular expression flags"},
		{"/a/x", "Invalid regular expression flags"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			_, _, err := l.ReadRegex()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, ILLEGAL, l.Kind())
		})
	}
}

func TestValidRegexFlags(t *testing.T) {
	assert.True(t, validRegexFlags(""))
	assert.True(t, validRegexFlags("dgimsuy"))
	assert.True(t, validRegexFlags("v"))
	assert.False(t, validRegexFlags("gig"))
	assert.False(t, validRegexFlags("uv"))
}

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{""}},
		{"unix", "a\nb", []string{"a", "b"}},
		{"windows", "a\r\nb\r\n", []string{"a", "b", ""}},
		{"old mac", "a\rb", []string{"a", "b"}},
		{"separators", "a\u2028b\u2029c", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewInputSource(tt.input).Lines())
		})
	}
}

func TestLineOutOfRange(t *testing.T) {
	sf := FromFile("/tmp/app.js", "let a;\nlet b;")
	assert.Equal(t, "let b;", sf.Line(2))
	assert.Equal(t, "", sf.Line(0))
	assert.Equal(t, "", sf.Line(3))
	assert.Equal(t, "app.js", sf.Name)
	assert.Equal(t, "/tmp/app.js", sf.DisplayPath())
	assert.True(t, sf.IsFile())
}

func TestPosition(t *testing.T) {
	assert.False(t, NoPos.IsValid())
	assert.Equal(t, "-", NoPos.String())
	p := Position{Line: 3, Column: 7, Offset: 20}
	assert.Equal(t, "3:7", p.String())
	assert.True(t, Position{Offset: 1}.Before(p))
}

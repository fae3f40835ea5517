package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/source"
)

func pos(line, col, off int) source.Position {
	return source.Position{Line: line, Column: col, Offset: off}
}

func TestHandlerMarkRestore(t *testing.T) {
	h := NewHandler(source.NewInputSource("a b"), 0)
	h.Report("first", pos(1, 1, 0))
	mark := h.Mark()
	h.Report("second", pos(1, 3, 2))
	h.Reportf(pos(1, 3, 2), "third %d", 3)
	assert.Equal(t, 3, h.Len())

	h.Restore(mark)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "first", h.Errors()[0].Msg)

	// restoring to a later mark is a no-op
	h.Restore(Checkpoint{n: 10})
	assert.Equal(t, 1, h.Len())
}

func TestHandlerLimit(t *testing.T) {
	h := NewHandler(nil, 2)
	for i := 0; i < 5; i++ {
		h.Report("oops", pos(1, 1, 0))
	}
	require.Equal(t, 3, h.Len())
	assert.True(t, h.Exhausted())
	assert.Equal(t, "too many parse errors (limit: 2), stopping parser", h.Errors()[2].Msg)

	h.Restore(Checkpoint{n: 1})
	assert.False(t, h.Exhausted())
}

func TestFormatAll(t *testing.T) {
	src := source.NewInputSource("let a = 1;\nlet a = 2;")
	h := NewHandler(src, 0)
	assert.Nil(t, h.Err())

	h.Report("Identifier 'a' has already been declared", pos(2, 5, 15))
	expected := "[SyntaxError]: Identifier 'a' has already been declared (2,5)\n" +
		"2|let a = 2;\n" +
		" |    ^"
	assert.Equal(t, expected, h.FormatAll())

	err := h.Err()
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, expected, pe.Error())
	assert.Equal(t, 5, pe.First().Column)
}

func TestCaretPadding(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want string
	}{
		{"start", "abc", 1, ""},
		{"ascii", "abc", 3, "  "},
		{"tab", "\tx", 2, "\t"},
		{"wide", "漢字x", 3, "    "},
		{"past end", "ab", 5, "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, caretPadding(tt.line, tt.col))
		})
	}
}

func TestSyntaxError(t *testing.T) {
	err := NewFatalError(pos(4, 2, 30), "Unexpected token '%s'", ")")
	assert.True(t, err.Fatal)
	assert.Equal(t, "Syntax Error at 4:2: Unexpected token ')'", err.Error())
	assert.Equal(t, "Syntax", err.Kind())

	var se SourceError = err
	assert.Equal(t, 4, se.Pos().Line)
}

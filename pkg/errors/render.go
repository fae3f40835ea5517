package errors

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"esfront/pkg/source"
)

// Render formats diagnostics against their source text:
//
//	[SyntaxError]: <message> (<line>,<col>)
//	<line>|<source line>
//	     |   ^
func Render(src *source.SourceFile, diags []*SyntaxError) string {
	var sb strings.Builder
	DisplayErrors(&sb, src, diags)
	return strings.TrimRight(sb.String(), "\n")
}

// DisplayErrors writes every diagnostic to w in the Render format,
// separated by blank lines.
func DisplayErrors(w io.Writer, src *source.SourceFile, diags []*SyntaxError) {
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[SyntaxError]: %s (%d,%d)\n", d.Msg, d.Line, d.Column)
		if src == nil || d.Line < 1 || d.Line > len(src.Lines()) {
			continue
		}
		line := strings.TrimRight(src.Line(d.Line), "\r\n")
		num := strconv.Itoa(d.Line)
		fmt.Fprintf(w, "%s|%s\n", num, line)
		fmt.Fprintf(w, "%s|%s^\n", strings.Repeat(" ", len(num)), caretPadding(line, d.Column))
	}
}

// caretPadding builds the run of blanks that puts a caret under the
// 1-based rune column col of line. Tabs are kept so terminals expand them
// the same way on both rows; wide East Asian runes take two cells.
func caretPadding(line string, col int) string {
	var sb strings.Builder
	n := 1
	for _, r := range line {
		if n >= col {
			break
		}
		n++
		switch {
		case r == '\t':
			sb.WriteByte('\t')
		case isWide(r):
			sb.WriteString("  ")
		default:
			sb.WriteByte(' ')
		}
	}
	for ; n < col; n++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

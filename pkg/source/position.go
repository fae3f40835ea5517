package source

import "fmt"

// Position is a location in source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number (rune index within the line)
	Offset int // 0-based byte offset into the source
}

// NoPos is the zero Position. It never refers to real source text.
var NoPos = Position{}

// IsValid reports whether the position refers to source text.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p starts strictly before q.
func (p Position) Before(q Position) bool { return p.Offset < q.Offset }

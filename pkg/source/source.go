package source

import (
	"path/filepath"
	"strings"
)

// SourceFile represents a source file with its content and metadata
type SourceFile struct {
	Name    string   // Display name (e.g., "app.tsx", "<stdin>", "<input>")
	Path    string   // Full file path (empty for in-memory input)
	Content string   // The source text
	lines   []string // Cached split lines (lazy initialization)
}

// NewSourceFile creates a new source file
func NewSourceFile(name, path, content string) *SourceFile {
	return &SourceFile{
		Name:    name,
		Path:    path,
		Content: content,
	}
}

// NewInputSource wraps in-memory text handed to Parse or Tokenize.
func NewInputSource(content string) *SourceFile {
	return &SourceFile{
		Name:    "<input>",
		Content: content,
	}
}

// NewStdinSource creates a source file for stdin input
func NewStdinSource(content string) *SourceFile {
	return &SourceFile{
		Name:    "<stdin>",
		Content: content,
	}
}

// Lines returns the source split into lines (cached). Any of the
// ECMAScript line terminators ends a line; "\r\n" counts once.
func (sf *SourceFile) Lines() []string {
	if sf.lines == nil {
		sf.lines = splitLines(sf.Content)
	}
	return sf.lines
}

// Line returns the 1-based line n without its terminator, or "" when
// n is out of range.
func (sf *SourceFile) Line(n int) string {
	lines := sf.Lines()
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// DisplayPath returns the best path for display (prefers Path, falls back to Name)
func (sf *SourceFile) DisplayPath() string {
	if sf.Path != "" {
		return sf.Path
	}
	return sf.Name
}

// IsFile returns true if this represents an actual file (has a path)
func (sf *SourceFile) IsFile() bool {
	return sf.Path != ""
}

// FromFile creates a SourceFile from a file path and content
func FromFile(filePath, content string) *SourceFile {
	name := filepath.Base(filePath)
	return NewSourceFile(name, filePath, content)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\n':
			lines = append(lines, s[start:i])
			i++
			start = i
		case s[i] == '\r':
			lines = append(lines, s[start:i])
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
			start = i
		case strings.HasPrefix(s[i:], "\u2028"), strings.HasPrefix(s[i:], "\u2029"):
			lines = append(lines, s[start:i])
			i += 3
			start = i
		default:
			i++
		}
	}
	return append(lines, s[start:])
}

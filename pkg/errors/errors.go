package errors

import (
	"fmt"

	"esfront/pkg/source"
)

// SourceError is the interface implemented by all esfront diagnostics.
type SourceError interface {
	error
	Pos() source.Position
	Kind() string // "Syntax" for everything the front end reports
	// Message returns the specific error message without position info.
	Message() string
	Unwrap() error
}

// SyntaxError is a single diagnostic produced while lexing or parsing.
// Fatal errors abort the current parse attempt; the rest are queued on a
// Handler and reported together once parsing finishes.
type SyntaxError struct {
	source.Position
	Msg   string
	Fatal bool
	Cause error // Underlying cause, if any
}

// NewSyntaxError creates a recoverable diagnostic.
func NewSyntaxError(pos source.Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: sprintf(format, args...)}
}

// NewFatalError creates a diagnostic that unwinds the parse.
func NewFatalError(pos source.Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: sprintf(format, args...), Fatal: true}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
func (e *SyntaxError) Pos() source.Position { return e.Position }
func (e *SyntaxError) Kind() string          { return "Syntax" }
func (e *SyntaxError) Message() string       { return e.Msg }
func (e *SyntaxError) Unwrap() error         { return e.Cause }
func (e *SyntaxError) CausedBy(cause error) *SyntaxError {
	e.Cause = cause
	return e
}

// ParseError aggregates every diagnostic of a failed parse. Its Error
// text is the rendered report, one excerpt per diagnostic.
type ParseError struct {
	Source      *source.SourceFile
	Diagnostics []*SyntaxError
}

func (e *ParseError) Error() string {
	return Render(e.Source, e.Diagnostics)
}

// First returns the earliest reported diagnostic.
func (e *ParseError) First() *SyntaxError {
	if len(e.Diagnostics) == 0 {
		return nil
	}
	return e.Diagnostics[0]
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

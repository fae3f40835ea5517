package errors

import (
	"fmt"

	"esfront/pkg/source"
)

// DefaultMaxErrors bounds how many recoverable diagnostics a Handler
// keeps before it asks the parser to stop.
const DefaultMaxErrors = 1000

// Checkpoint is an opaque queue length captured by Mark.
type Checkpoint struct {
	n         int
	exhausted bool
}

// Handler queues recoverable diagnostics for one parse.
type Handler struct {
	src       *source.SourceFile
	diags     []*SyntaxError
	max       int
	exhausted bool
}

// NewHandler creates a Handler rendering against src. A non-positive max
// selects DefaultMaxErrors.
func NewHandler(src *source.SourceFile, max int) *Handler {
	if max <= 0 {
		max = DefaultMaxErrors
	}
	return &Handler{src: src, max: max}
}

// Report queues a recoverable diagnostic. Once the limit is reached a
// final "too many errors" entry is added and further reports are dropped;
// Exhausted then returns true.
func (h *Handler) Report(msg string, pos source.Position) {
	h.Add(&SyntaxError{Position: pos, Msg: msg})
}

// Reportf is Report with formatting.
func (h *Handler) Reportf(pos source.Position, format string, args ...interface{}) {
	h.Add(NewSyntaxError(pos, format, args...))
}

// Add queues an already built diagnostic.
func (h *Handler) Add(err *SyntaxError) {
	if h.exhausted {
		return
	}
	if len(h.diags) >= h.max {
		h.diags = append(h.diags, &SyntaxError{
			Position: err.Position,
			Msg:      fmt.Sprintf("too many parse errors (limit: %d), stopping parser", h.max),
		})
		h.exhausted = true
		return
	}
	h.diags = append(h.diags, err)
}

// HasErrors reports whether any diagnostic is queued.
func (h *Handler) HasErrors() bool { return len(h.diags) > 0 }

// Len returns the number of queued diagnostics.
func (h *Handler) Len() int { return len(h.diags) }

// Exhausted reports whether the error limit was hit.
func (h *Handler) Exhausted() bool { return h.exhausted }

// Errors returns the queued diagnostics in report order.
func (h *Handler) Errors() []*SyntaxError { return h.diags }

// Mark captures the current queue so a speculative parse can be undone.
func (h *Handler) Mark() Checkpoint {
	return Checkpoint{n: len(h.diags), exhausted: h.exhausted}
}

// Restore truncates the queue back to a Mark.
func (h *Handler) Restore(c Checkpoint) {
	if c.n < len(h.diags) {
		for i := c.n; i < len(h.diags); i++ {
			h.diags[i] = nil
		}
		h.diags = h.diags[:c.n]
	}
	h.exhausted = c.exhausted
}

// FormatAll renders every queued diagnostic with a source excerpt.
func (h *Handler) FormatAll() string {
	return Render(h.src, h.diags)
}

// Err returns a *ParseError holding the queue, or nil when it is empty.
func (h *Handler) Err() error {
	if !h.HasErrors() {
		return nil
	}
	diags := make([]*SyntaxError, len(h.diags))
	copy(diags, h.diags)
	return &ParseError{Source: h.src, Diagnostics: diags}
}

package scope

// LayerKind is the role of a strict-mode layer.
type LayerKind uint8

const (
	// LHSLayer wraps binding and assignment targets.
	LHSLayer LayerKind = iota
	// CaptureLayer wraps input that may turn out to be arrow parameters;
	// it collects candidates from the layers pushed above it.
	CaptureLayer
	// RHSLayer wraps values. It records nothing and stops merging.
	RHSLayer
)

// Layer is one frame of the strict-mode recorder.
type Layer struct {
	Kind       LayerKind
	Candidates []Candidate
}

// Count returns the number of candidates of kind k.
func (l Layer) Count(k CandidateKind) int {
	n := 0
	for _, c := range l.Candidates {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Strict records identifiers that are only errors in strict code, for
// constructs whose strictness is decided after they are read: the
// parameters of a function with a 'use strict' body, or an arrow
// parameter list seen first as a parenthesized expression.
type Strict struct {
	layers []Layer
}

// StrictSnapshot is the saved state of a Strict recorder. Candidate lists
// only grow by appending, so saving slice headers is exact.
type StrictSnapshot struct {
	layers []Layer
}

func NewStrict() *Strict {
	return &Strict{}
}

func (s *Strict) Snapshot() StrictSnapshot {
	return StrictSnapshot{layers: append([]Layer(nil), s.layers...)}
}

func (s *Strict) Restore(snap StrictSnapshot) {
	s.layers = append(s.layers[:0], snap.layers...)
}

func (s *Strict) Depth() int { return len(s.layers) }

func (s *Strict) EnterLHS()     { s.layers = append(s.layers, Layer{Kind: LHSLayer}) }
func (s *Strict) EnterRHS()     { s.layers = append(s.layers, Layer{Kind: RHSLayer}) }
func (s *Strict) EnterCapture() { s.layers = append(s.layers, Layer{Kind: CaptureLayer}) }

// Record stores a candidate in the innermost layer unless it is a
// right-hand-side layer.
func (s *Strict) Record(c Candidate) {
	switch c.Kind {
	case YieldIdentifier, EvalIdentifier, ArgumentsIdentifier, LetIdentifier, PreservedWordIdentifier:
	default:
		return
	}
	if len(s.layers) == 0 {
		return
	}
	top := &s.layers[len(s.layers)-1]
	if top.Kind == RHSLayer {
		return
	}
	top.Candidates = append(top.Candidates, c)
}

// InLHS reports whether the innermost layer is a left-hand-side layer.
func (s *Strict) InLHS() bool {
	return len(s.layers) > 0 && s.layers[len(s.layers)-1].Kind == LHSLayer
}

// Current returns a copy of the innermost layer.
func (s *Strict) Current() Layer {
	if len(s.layers) == 0 {
		return Layer{Kind: RHSLayer}
	}
	top := s.layers[len(s.layers)-1]
	top.Candidates = append([]Candidate(nil), top.Candidates...)
	return top
}

// Exit pops the innermost layer. Candidates of a non-RHS layer move to the
// closest capture layer below it, unless an RHS layer comes first.
func (s *Strict) Exit() {
	if len(s.layers) == 0 {
		return
	}
	src := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	if src.Kind == RHSLayer || len(src.Candidates) == 0 {
		return
	}
	for i := len(s.layers) - 1; i >= 0; i-- {
		switch s.layers[i].Kind {
		case CaptureLayer:
			s.layers[i].Candidates = append(s.layers[i].Candidates, src.Candidates...)
			return
		case RHSLayer:
			return
		}
	}
}

// Violates reports whether layer holds anything illegal in strict code.
func Violates(l Layer) bool {
	return l.Kind != RHSLayer && len(l.Candidates) > 0
}

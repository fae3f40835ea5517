package scope

// ArrowFrame collects await/yield uses inside input that may become the
// parameters of an (async) arrow function.
type ArrowFrame struct {
	blank      bool
	Candidates []Candidate
}

// HasError reports whether the frame holds an await or yield expression,
// or an await identifier. A bare yield identifier is tolerated.
func (f ArrowFrame) HasError() bool {
	for _, c := range f.Candidates {
		if c.Kind != YieldIdentifier {
			return true
		}
	}
	return false
}

// AsyncArrow is the async-arrow candidate recorder. Blank frames mark a
// function boundary: nothing is recorded in them and nothing merges
// through them.
type AsyncArrow struct {
	frames []ArrowFrame
}

// AsyncArrowSnapshot is the saved state of an AsyncArrow recorder.
type AsyncArrowSnapshot struct {
	frames []ArrowFrame
}

func NewAsyncArrow() *AsyncArrow {
	return &AsyncArrow{}
}

func (a *AsyncArrow) Snapshot() AsyncArrowSnapshot {
	return AsyncArrowSnapshot{frames: append([]ArrowFrame(nil), a.frames...)}
}

func (a *AsyncArrow) Restore(s AsyncArrowSnapshot) {
	a.frames = append(a.frames[:0], s.frames...)
}

func (a *AsyncArrow) Depth() int { return len(a.frames) }

func (a *AsyncArrow) Enter()      { a.frames = append(a.frames, ArrowFrame{}) }
func (a *AsyncArrow) EnterBlank() { a.frames = append(a.frames, ArrowFrame{blank: true}) }

// Record stores an await or yield candidate in the innermost frame.
func (a *AsyncArrow) Record(c Candidate) {
	switch c.Kind {
	case AwaitIdentifier, YieldIdentifier, AwaitExpressionInParameter, YieldExpressionInParameter:
	default:
		return
	}
	if len(a.frames) == 0 {
		return
	}
	top := &a.frames[len(a.frames)-1]
	if top.blank {
		return
	}
	top.Candidates = append(top.Candidates, c)
}

// Current returns a copy of the innermost frame; ok is false for a blank
// frame or an empty stack.
func (a *AsyncArrow) Current() (ArrowFrame, bool) {
	if len(a.frames) == 0 || a.frames[len(a.frames)-1].blank {
		return ArrowFrame{}, false
	}
	f := a.frames[len(a.frames)-1]
	f.Candidates = append([]Candidate(nil), f.Candidates...)
	return f, true
}

// Exit pops the innermost frame and merges its candidates into the frame
// below it, unless that one is blank.
func (a *AsyncArrow) Exit() {
	if len(a.frames) == 0 {
		return
	}
	src := a.frames[len(a.frames)-1]
	a.frames = a.frames[:len(a.frames)-1]
	if src.blank || len(src.Candidates) == 0 || len(a.frames) == 0 {
		return
	}
	dst := &a.frames[len(a.frames)-1]
	if dst.blank {
		return
	}
	dst.Candidates = append(dst.Candidates, src.Candidates...)
}

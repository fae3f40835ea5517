// Package scope holds the context stacks the parser maintains while it
// descends: lexical context, symbol bindings, strict-mode candidates and
// async-arrow candidates. The stacks only record and answer queries; the
// parser turns their answers into diagnostics.
package scope

type frameKind uint8

const (
	frameProgram frameKind = iota
	frameFunction
	frameArrow
	frameStaticBlock
	frameClass
	frameBlock
	frameCatch
	frameLoop
	frameSwitch
	frameLabel
)

// BlockType selects the kind of virtual scope pushed for break/continue
// bookkeeping.
type BlockType uint8

const (
	Loop BlockType = iota
	Switch
	Label
)

type frame struct {
	kind frameKind

	// function-like frames
	async     bool
	generator bool
	strict    bool
	inParams  bool
	simple    bool

	// label frames
	label string

	// class frames
	extends    bool
	inCtor     bool
	haveCtor   bool
	inDelete   bool
	inPropName bool
}

func (f *frame) functionLike() bool {
	return f.kind <= frameStaticBlock
}

// Lexical tracks where the parser currently is: which kind of function,
// inside a class, a loop or a labeled statement, and whether the code is
// strict. Frames hold no references, so a copy of the stack is a complete
// snapshot.
type Lexical struct {
	frames []frame
}

// LexicalSnapshot is the saved state of a Lexical stack.
type LexicalSnapshot struct {
	frames []frame
}

func NewLexical() *Lexical {
	return &Lexical{frames: make([]frame, 0, 16)}
}

func (l *Lexical) Snapshot() LexicalSnapshot {
	return LexicalSnapshot{frames: append([]frame(nil), l.frames...)}
}

func (l *Lexical) Restore(s LexicalSnapshot) {
	l.frames = append(l.frames[:0], s.frames...)
}

// Depth is the number of open frames.
func (l *Lexical) Depth() int { return len(l.frames) }

func (l *Lexical) top() *frame {
	if len(l.frames) == 0 {
		return nil
	}
	return &l.frames[len(l.frames)-1]
}

func (l *Lexical) push(f frame) { l.frames = append(l.frames, f) }

func (l *Lexical) pop() {
	if len(l.frames) > 0 {
		l.frames = l.frames[:len(l.frames)-1]
	}
}

// lastFunction returns the closest program, function or arrow frame.
func (l *Lexical) lastFunction() *frame {
	for i := len(l.frames) - 1; i >= 0; i-- {
		if k := l.frames[i].kind; k == frameProgram || k == frameFunction || k == frameArrow {
			return &l.frames[i]
		}
	}
	return nil
}

// lastFunctionOrClass returns the closest function-like or class frame,
// skipping skip of them first.
func (l *Lexical) lastFunctionOrClass(skip int) *frame {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := &l.frames[i]
		if f.functionLike() || f.kind == frameClass {
			if skip == 0 {
				return f
			}
			skip--
		}
	}
	return nil
}

func (l *Lexical) lastClass() *frame {
	for i := len(l.frames) - 1; i >= 0; i-- {
		if l.frames[i].kind == frameClass {
			return &l.frames[i]
		}
	}
	return nil
}

// --- Enter and exit ---

func (l *Lexical) EnterProgram(async, strict bool) {
	l.push(frame{kind: frameProgram, async: async, strict: strict, simple: true})
}

// EnterFunction pushes a function frame. Functions nested in a class or in
// strict code inherit strictness.
func (l *Lexical) EnterFunction(async, generator bool) {
	l.push(frame{kind: frameFunction, async: async, generator: generator, strict: l.InStrict(), simple: true})
}

// EnterArrowBody pushes the frame for an arrow function's parameters and body.
func (l *Lexical) EnterArrowBody(async bool) {
	l.push(frame{kind: frameArrow, async: async, strict: l.InStrict(), simple: true})
}

// EnterStaticBlock pushes the frame for a class static initialization block.
func (l *Lexical) EnterStaticBlock() {
	l.push(frame{kind: frameStaticBlock, strict: true, simple: true})
}

func (l *Lexical) EnterBlock() { l.push(frame{kind: frameBlock}) }

func (l *Lexical) EnterCatch() { l.push(frame{kind: frameCatch}) }

// EnterVirtual pushes a loop, switch or label frame. For labels it reports
// whether the label is already in use by an enclosing statement of the
// same function.
func (l *Lexical) EnterVirtual(t BlockType, label string) (duplicate bool) {
	switch t {
	case Loop:
		l.push(frame{kind: frameLoop})
	case Switch:
		l.push(frame{kind: frameSwitch})
	default:
		duplicate = l.labelExists(label)
		l.push(frame{kind: frameLabel, label: label})
	}
	return duplicate
}

func (l *Lexical) EnterClass(extends bool) {
	l.push(frame{kind: frameClass, extends: extends, strict: true})
}

// Exit pops the innermost frame of any kind.
func (l *Lexical) Exit() { l.pop() }

// --- Function attributes ---

func (l *Lexical) EnterParameters() {
	if f := l.lastFunction(); f != nil {
		f.inParams = true
	}
}

func (l *Lexical) ExitParameters() {
	if f := l.lastFunction(); f != nil {
		f.inParams = false
	}
}

// InParameters reports whether the innermost frame is a function whose
// parameter list is being parsed.
func (l *Lexical) InParameters() bool {
	f := l.top()
	return f != nil && (f.kind == frameFunction || f.kind == frameArrow) && f.inParams
}

func (l *Lexical) SetGenerator() {
	if f := l.lastFunction(); f != nil {
		f.generator = true
	}
}

// SetStrict marks the innermost function strict after its directive
// prologue was read.
func (l *Lexical) SetStrict() {
	if f := l.lastFunction(); f != nil {
		f.strict = true
	}
}

func (l *Lexical) SetNonSimpleParameters() {
	if f := l.lastFunction(); f != nil {
		f.simple = false
	}
}

func (l *Lexical) SimpleParameters() bool {
	f := l.lastFunction()
	return f == nil || f.simple
}

// --- Queries ---

// InStrict reports whether the current position is strict mode code.
// Class bodies are always strict.
func (l *Lexical) InStrict() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := &l.frames[i]
		if f.kind == frameClass {
			return true
		}
		if f.functionLike() {
			return f.strict
		}
	}
	return false
}

// AwaitAsExpression reports whether `await` starts an await expression.
// Computed keys of a class take the answer of the code around the class.
func (l *Lexical) AwaitAsExpression() bool {
	f := l.lastFunctionOrClass(0)
	if f == nil {
		return false
	}
	if f.kind == frameClass {
		if !f.inPropName {
			return false
		}
		if p := l.lastFunctionOrClass(1); p != nil && p.kind != frameClass {
			return p.async
		}
		return false
	}
	return f.async
}

// YieldAsExpression reports whether `yield` starts a yield expression.
func (l *Lexical) YieldAsExpression() bool {
	f := l.lastFunctionOrClass(0)
	if f == nil {
		return false
	}
	if f.kind == frameClass {
		if !f.inPropName {
			return false
		}
		if p := l.lastFunctionOrClass(1); p != nil && p.kind != frameClass {
			return p.generator
		}
		return false
	}
	return f.generator
}

// InStaticBlock reports whether the closest function-like frame is a class
// static block.
func (l *Lexical) InStaticBlock() bool {
	f := l.lastFunctionOrClass(0)
	return f != nil && f.kind == frameStaticBlock
}

// InGenerator reports whether the closest non-arrow function is a generator.
func (l *Lexical) InGenerator() bool {
	f := l.lastFunctionOrClass(0)
	return f != nil && f.kind == frameFunction && f.generator
}

// InAsync reports whether the closest function-like frame is async.
func (l *Lexical) InAsync() bool {
	f := l.lastFunctionOrClass(0)
	return f != nil && f.functionLike() && f.async
}

// ParentFunctionAsync reports whether the function enclosing the current
// one is async. Used for names of function declarations.
func (l *Lexical) ParentFunctionAsync() bool {
	p := l.lastFunctionOrClass(1)
	return p != nil && p.kind != frameClass && p.async
}

func (l *Lexical) ParentFunctionGenerator() bool {
	p := l.lastFunctionOrClass(1)
	return p != nil && p.kind != frameClass && p.generator
}

// IsTopLevel reports whether no ordinary function, class or static block
// encloses the current position. Arrows are transparent.
func (l *Lexical) IsTopLevel() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch l.frames[i].kind {
		case frameFunction, frameStaticBlock, frameClass:
			return false
		case frameProgram:
			return true
		}
	}
	return true
}

// DirectlyInFunction reports whether the innermost frame is a function
// body, which is where directive prologues live.
func (l *Lexical) DirectlyInFunction() bool {
	f := l.top()
	return f != nil && (f.kind == frameProgram || f.kind == frameFunction || f.kind == frameArrow)
}

// EnclosedInFunction reports whether the closest function-or-class frame is
// a function. Field initializers and static blocks are not.
func (l *Lexical) EnclosedInFunction() bool {
	f := l.lastFunctionOrClass(0)
	return f == nil || f.kind == frameProgram || f.kind == frameFunction || f.kind == frameArrow
}

// ReturnAllowed reports whether `return` may appear here.
func (l *Lexical) ReturnAllowed() bool {
	f := l.lastFunctionOrClass(0)
	return f != nil && (f.kind == frameFunction || f.kind == frameArrow)
}

// BreakAllowed reports whether an unlabeled break has a target.
func (l *Lexical) BreakAllowed() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch l.frames[i].kind {
		case frameLoop, frameSwitch:
			return true
		case frameBlock, frameCatch, frameLabel:
			continue
		default:
			return false
		}
	}
	return false
}

// ContinueAllowed reports whether an unlabeled continue has a target.
func (l *Lexical) ContinueAllowed() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch l.frames[i].kind {
		case frameLoop:
			return true
		case frameBlock, frameCatch, frameLabel, frameSwitch:
			continue
		default:
			return false
		}
	}
	return false
}

// LabelTarget looks up a label visible from the current position. loop is
// set when the labeled statement is an iteration statement, possibly
// through further labels.
func (l *Lexical) LabelTarget(name string) (found, loop bool) {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := &l.frames[i]
		if f.functionLike() || f.kind == frameClass {
			return false, false
		}
		if f.kind != frameLabel || f.label != name {
			continue
		}
		for j := i + 1; j < len(l.frames); j++ {
			switch l.frames[j].kind {
			case frameLabel:
				continue
			case frameLoop:
				return true, true
			}
			break
		}
		return true, false
	}
	return false, false
}

func (l *Lexical) labelExists(name string) bool {
	found, _ := l.LabelTarget(name)
	return found
}

// --- Class attributes ---

func (l *Lexical) InClass() bool { return l.lastClass() != nil }

// DirectlyInClass reports whether the innermost frame is a class body.
func (l *Lexical) DirectlyInClass() bool {
	f := l.top()
	return f != nil && f.kind == frameClass
}

func (l *Lexical) ClassExtends() bool {
	c := l.lastClass()
	return c != nil && c.extends
}

func (l *Lexical) setClassFlag(set func(*frame)) {
	if c := l.lastClass(); c != nil {
		set(c)
	}
}

func (l *Lexical) EnterPropertyName() { l.setClassFlag(func(c *frame) { c.inPropName = true }) }
func (l *Lexical) ExitPropertyName()  { l.setClassFlag(func(c *frame) { c.inPropName = false }) }
func (l *Lexical) EnterCtor()         { l.setClassFlag(func(c *frame) { c.inCtor = true }) }
func (l *Lexical) ExitCtor()          { l.setClassFlag(func(c *frame) { c.inCtor = false }) }
func (l *Lexical) EnterDelete()       { l.setClassFlag(func(c *frame) { c.inDelete = true }) }
func (l *Lexical) ExitDelete()        { l.setClassFlag(func(c *frame) { c.inDelete = false }) }

func (l *Lexical) InPropertyName() bool {
	c := l.lastClass()
	return c != nil && c.inPropName
}

func (l *Lexical) InCtor() bool {
	c := l.lastClass()
	return c != nil && c.inCtor
}

func (l *Lexical) InDelete() bool {
	c := l.lastClass()
	return c != nil && c.inDelete
}

// TestAndSetCtor records a constructor on the innermost class and reports
// whether one was already present.
func (l *Lexical) TestAndSetCtor() bool {
	c := l.lastClass()
	if c == nil {
		return false
	}
	had := c.haveCtor
	c.haveCtor = true
	return had
}

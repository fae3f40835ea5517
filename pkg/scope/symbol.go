package scope

import "esfront/pkg/source"

// SymbolKind is the declaration form that introduced a binding.
type SymbolKind uint8

const (
	SymVar SymbolKind = iota + 1
	SymLet
	SymConst
	SymClass
	SymFunction
	// SymGenFunction covers generator and async function declarations,
	// which never merge with another declaration of the same name.
	SymGenFunction
	SymCatchParam
	SymCatchPattern
)

func (k SymbolKind) lexical() bool {
	return k == SymLet || k == SymConst || k == SymClass
}

type symbolFrameKind uint8

const (
	symProgram symbolFrameKind = iota
	symFunction
	symBlock
	symClass
)

// PrivateKind distinguishes accessor halves, which may share a name.
type PrivateKind uint8

const (
	PrivateOther PrivateKind = iota
	PrivateGet
	PrivateSet
	PrivateStaticGet
	PrivateStaticSet
)

// NameRef is a name at a source position.
type NameRef struct {
	Name string
	Pos  source.Position
}

type symbolFrame struct {
	kind    symbolFrameKind
	symbols map[string]SymbolKind

	// function frames
	params    map[string]bool
	dupParams []NameRef

	// program frame
	exports      map[string]source.Position
	localExports []NameRef
	haveDefault  bool

	// class frames
	defined    map[string][]PrivateKind
	undefined  []NameRef
	duplicates []NameRef
}

func (f *symbolFrame) declaratable() bool { return f.kind != symClass }

// Symbol records declared names per scope and detects redeclarations,
// duplicate parameters, exports and private names.
type Symbol struct {
	frames []*symbolFrame
	module bool

	// undo holds one entry per change made while a snapshot is open.
	undo []func()
	open int
}

// SymbolSnapshot marks a point that Restore rolls back to.
type SymbolSnapshot struct {
	depth int
	mark  int
}

// NewSymbol creates a recorder. In module code duplicate top-level
// function declarations are errors.
func NewSymbol(module bool) *Symbol {
	return &Symbol{module: module}
}

// Depth is the number of open frames.
func (s *Symbol) Depth() int { return len(s.frames) }

// Snapshot starts journaling changes. Every snapshot must be ended with
// either Restore or Commit, innermost first.
func (s *Symbol) Snapshot() SymbolSnapshot {
	s.open++
	return SymbolSnapshot{depth: len(s.frames), mark: len(s.undo)}
}

// Restore undoes every change made since snap was taken, including names
// recorded in frames that were already open.
func (s *Symbol) Restore(snap SymbolSnapshot) {
	for i := len(s.undo) - 1; i >= snap.mark; i-- {
		s.undo[i]()
	}
	s.undo = s.undo[:snap.mark]
	if snap.depth < len(s.frames) {
		s.frames = s.frames[:snap.depth]
	}
	s.end()
}

// Commit keeps the changes made since snap. They stay in the journal while
// an enclosing snapshot is still open.
func (s *Symbol) Commit(snap SymbolSnapshot) { s.end() }

func (s *Symbol) end() {
	if s.open > 0 {
		s.open--
	}
	if s.open == 0 {
		s.undo = s.undo[:0]
	}
}

func (s *Symbol) record(fn func()) {
	if s.open > 0 {
		s.undo = append(s.undo, fn)
	}
}

// bind adds a name that is not yet in f.
func (s *Symbol) bind(f *symbolFrame, name string, kind SymbolKind) {
	f.symbols[name] = kind
	s.record(func() { delete(f.symbols, name) })
}

func (s *Symbol) appendRef(list *[]NameRef, ref NameRef) {
	n := len(*list)
	*list = append(*list, ref)
	s.record(func() { *list = (*list)[:n] })
}

func (s *Symbol) push(kind symbolFrameKind) *symbolFrame {
	f := &symbolFrame{kind: kind}
	if kind != symClass {
		f.symbols = map[string]SymbolKind{}
	}
	s.frames = append(s.frames, f)
	s.record(func() { s.frames = s.frames[:len(s.frames)-1] })
	return f
}

func (s *Symbol) EnterProgram() {
	f := s.push(symProgram)
	f.exports = map[string]source.Position{}
}

func (s *Symbol) EnterFunction() {
	f := s.push(symFunction)
	f.params = map[string]bool{}
}

func (s *Symbol) EnterBlock() { s.push(symBlock) }

func (s *Symbol) EnterClass() {
	f := s.push(symClass)
	f.defined = map[string][]PrivateKind{}
}

// ExitFunction pops a function frame and returns its duplicate parameters.
func (s *Symbol) ExitFunction() []NameRef {
	f := s.pop()
	if f == nil {
		return nil
	}
	return f.dupParams
}

// Exit pops a program or block frame.
func (s *Symbol) Exit() { s.pop() }

func (s *Symbol) pop() *symbolFrame {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.record(func() { s.frames = append(s.frames, f) })
	return f
}

func (s *Symbol) current() *symbolFrame {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].declaratable() {
			return s.frames[i]
		}
	}
	return nil
}

func (s *Symbol) functional() *symbolFrame {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if k := s.frames[i].kind; k == symFunction || k == symProgram {
			return s.frames[i]
		}
	}
	return nil
}

func (s *Symbol) program() *symbolFrame {
	if len(s.frames) == 0 || s.frames[0].kind != symProgram {
		return nil
	}
	return s.frames[0]
}

// --- Declarations ---

// DeclareParam records a parameter name. Duplicates are kept and returned
// when the function exits; whether they are errors depends on strictness
// and the shape of the parameter list, which is only known later.
func (s *Symbol) DeclareParam(name string, pos source.Position) {
	f := s.functional()
	if f == nil || f.kind != symFunction {
		return
	}
	if f.params[name] {
		s.appendRef(&f.dupParams, NameRef{name, pos})
		return
	}
	f.params[name] = true
	s.record(func() { delete(f.params, name) })
}

// DeclareVar records a var binding in every scope up to the closest
// function, so that a lexical binding of the same name in any of them
// conflicts. It reports false on a redeclaration.
func (s *Symbol) DeclareVar(name string) bool {
	ok := true
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if !f.declaratable() {
			continue
		}
		ok = s.insertVar(f, name) && ok
		if f.kind != symBlock {
			break
		}
	}
	return ok
}

func (s *Symbol) insertVar(f *symbolFrame, name string) bool {
	prev, exists := f.symbols[name]
	if !exists {
		s.bind(f, name, SymVar)
		return true
	}
	switch prev {
	case SymVar, SymCatchParam:
		return true
	case SymFunction, SymGenFunction:
		return f.kind != symBlock
	}
	return false
}

// DeclareLexical records a let, const or class binding in the current
// scope. It reports false on a redeclaration, including a clash with a
// parameter of the enclosing function body.
func (s *Symbol) DeclareLexical(name string, kind SymbolKind) bool {
	f := s.current()
	if f == nil {
		return true
	}
	if f.kind == symFunction && f.params[name] {
		return false
	}
	if _, exists := f.symbols[name]; exists {
		return false
	}
	s.bind(f, name, kind)
	return true
}

// DeclareCatchParam records a catch clause binding. Simple identifier
// parameters may be redeclared with var.
func (s *Symbol) DeclareCatchParam(name string, simple bool) bool {
	f := s.current()
	if f == nil {
		return true
	}
	if _, exists := f.symbols[name]; exists {
		return false
	}
	if simple {
		s.bind(f, name, SymCatchParam)
	} else {
		s.bind(f, name, SymCatchPattern)
	}
	return true
}

// DeclareFunction records a function declaration. Function declarations
// are var-like at the top of a function body and lexical inside blocks and
// at module top level; duplicates of plain functions in sloppy blocks are
// tolerated.
func (s *Symbol) DeclareFunction(name string, generatorOrAsync, strict bool) bool {
	f := s.current()
	if f == nil {
		return true
	}
	kind := SymFunction
	if generatorOrAsync {
		kind = SymGenFunction
	}
	prev, exists := f.symbols[name]
	if !exists {
		s.bind(f, name, kind)
		return true
	}
	switch prev {
	case SymVar:
		return f.kind != symBlock
	case SymFunction, SymGenFunction:
		if f.kind == symBlock {
			return !strict && prev == SymFunction && kind == SymFunction
		}
		return !(f.kind == symProgram && s.module)
	}
	return false
}

// Declared reports whether name is bound in the current scope.
func (s *Symbol) Declared(name string) bool {
	f := s.current()
	if f == nil {
		return false
	}
	_, ok := f.symbols[name]
	return ok
}

// --- Exports ---

// DeclareExport records an exported name. It returns the position of the
// earlier export and false when the name was already exported.
func (s *Symbol) DeclareExport(name string, pos source.Position) (source.Position, bool) {
	p := s.program()
	if p == nil {
		return source.NoPos, true
	}
	if prev, dup := p.exports[name]; dup {
		return prev, false
	}
	p.exports[name] = pos
	s.record(func() { delete(p.exports, name) })
	return pos, true
}

// ExportLocal remembers a local name referenced by `export { name }`; it
// must be declared somewhere at the top level by the end of the program.
func (s *Symbol) ExportLocal(name string, pos source.Position) {
	if p := s.program(); p != nil {
		s.appendRef(&p.localExports, NameRef{name, pos})
	}
}

// UndefinedExports lists exported local names without a top-level binding.
func (s *Symbol) UndefinedExports() []NameRef {
	p := s.program()
	if p == nil {
		return nil
	}
	var out []NameRef
	for _, ref := range p.localExports {
		if _, ok := p.symbols[ref.Name]; !ok {
			out = append(out, ref)
		}
	}
	return out
}

// TestAndSetDefaultExport reports whether a default export already exists
// and marks one as present.
func (s *Symbol) TestAndSetDefaultExport() bool {
	p := s.program()
	if p == nil {
		return false
	}
	had := p.haveDefault
	p.haveDefault = true
	s.record(func() { p.haveDefault = had })
	return had
}

// --- Private names ---

func (s *Symbol) lastClass(skip int) *symbolFrame {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].kind == symClass {
			if skip == 0 {
				return s.frames[i]
			}
			skip--
		}
	}
	return nil
}

func privateClash(kinds []PrivateKind, k PrivateKind) bool {
	if len(kinds) == 0 {
		return false
	}
	if len(kinds) > 1 {
		return true
	}
	switch {
	case k == PrivateGet && kinds[0] == PrivateSet,
		k == PrivateSet && kinds[0] == PrivateGet,
		k == PrivateStaticGet && kinds[0] == PrivateStaticSet,
		k == PrivateStaticSet && kinds[0] == PrivateStaticGet:
		return false
	}
	return true
}

// DefinePrivateName records a #name member of the innermost class. It
// reports false when the name is already defined, unless the two
// definitions form a getter/setter pair of the same placement.
func (s *Symbol) DefinePrivateName(name string, pos source.Position, kind PrivateKind) bool {
	c := s.lastClass(0)
	if c == nil {
		return true
	}
	prev, had := c.defined[name]
	dup := privateClash(prev, kind)
	if dup {
		s.appendRef(&c.duplicates, NameRef{name, pos})
	}
	c.defined[name] = append(prev, kind)
	undefined := c.undefined
	kept := make([]NameRef, 0, len(undefined))
	for _, ref := range undefined {
		if ref.Name != name {
			kept = append(kept, ref)
		}
	}
	c.undefined = kept
	s.record(func() {
		if had {
			c.defined[name] = prev
		} else {
			delete(c.defined, name)
		}
		c.undefined = undefined
	})
	return !dup
}

// UsePrivateName records a reference to #name. It reports false when no
// class encloses the reference at all.
func (s *Symbol) UsePrivateName(name string, pos source.Position) bool {
	var inner *symbolFrame
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.kind != symClass {
			continue
		}
		if inner == nil {
			inner = f
		}
		if _, ok := f.defined[name]; ok {
			return true
		}
	}
	if inner == nil {
		return false
	}
	s.appendRef(&inner.undefined, NameRef{name, pos})
	return true
}

// ExitClass pops a class frame. It returns the duplicate private names of
// the class, and the references that no class defines. References still
// open in a nested class move to the enclosing class, which may define
// them later.
func (s *Symbol) ExitClass() (duplicates, undefined []NameRef) {
	c := s.pop()
	if c == nil || c.kind != symClass {
		return nil, nil
	}
	parent := s.lastClass(0)
	if parent == nil {
		return c.duplicates, c.undefined
	}
	for _, ref := range c.undefined {
		if _, ok := parent.defined[ref.Name]; !ok {
			s.appendRef(&parent.undefined, ref)
		}
	}
	return c.duplicates, nil
}

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/source"
)

func at(line, col int) source.Position {
	return source.Position{Line: line, Column: col, Offset: col - 1}
}

func TestRedeclarations(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Symbol) bool
		ok   bool
	}{
		{"var var", func(s *Symbol) bool { s.DeclareVar("a"); return s.DeclareVar("a") }, true},
		{"let let", func(s *Symbol) bool { s.DeclareLexical("a", SymLet); return s.DeclareLexical("a", SymLet) }, false},
		{"var let", func(s *Symbol) bool { s.DeclareVar("a"); return s.DeclareLexical("a", SymLet) }, false},
		{"let var", func(s *Symbol) bool { s.DeclareLexical("a", SymConst); return s.DeclareVar("a") }, false},
		{"function var", func(s *Symbol) bool { s.DeclareFunction("a", false, false); return s.DeclareVar("a") }, true},
		{"var function", func(s *Symbol) bool { s.DeclareVar("a"); return s.DeclareFunction("a", false, false) }, true},
		{"class function", func(s *Symbol) bool {
			s.DeclareLexical("a", SymClass)
			return s.DeclareFunction("a", false, false)
		}, false},
		{"function function", func(s *Symbol) bool {
			s.DeclareFunction("a", false, false)
			return s.DeclareFunction("a", false, false)
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSymbol(false)
			s.EnterProgram()
			assert.Equal(t, tt.ok, tt.run(s))
		})
	}
}

func TestVarHoistsThroughBlocks(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	s.EnterBlock()
	require.True(t, s.DeclareLexical("x", SymLet))
	s.EnterBlock()
	assert.False(t, s.DeclareVar("x"), "var x conflicts with the enclosing let x")
	s.Exit()
	s.Exit()

	s.EnterBlock()
	require.True(t, s.DeclareVar("y"))
	s.Exit()
	assert.False(t, s.DeclareLexical("y", SymLet), "var y was hoisted to the program")
}

func TestVarStopsAtFunction(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	s.DeclareLexical("x", SymLet)
	s.EnterFunction()
	assert.True(t, s.DeclareVar("x"))
	s.ExitFunction()
}

func TestBlockFunctions(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	s.EnterBlock()
	require.True(t, s.DeclareFunction("f", false, false))
	assert.True(t, s.DeclareFunction("f", false, false), "sloppy block duplicates are tolerated")
	assert.False(t, s.DeclareFunction("f", false, true), "strict block duplicates are not")
	assert.False(t, s.DeclareFunction("f", true, false), "generators never merge")
	assert.False(t, s.DeclareVar("f"))
}

func TestModuleTopLevelFunctions(t *testing.T) {
	s := NewSymbol(true)
	s.EnterProgram()
	require.True(t, s.DeclareFunction("f", false, true))
	assert.False(t, s.DeclareFunction("f", false, true))
}

func TestParams(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	s.EnterFunction()
	s.DeclareParam("a", at(1, 12))
	s.DeclareParam("b", at(1, 14))
	s.DeclareParam("a", at(1, 16))
	assert.False(t, s.DeclareLexical("b", SymLet), "let clashes with a parameter")
	assert.True(t, s.DeclareVar("b"), "var may redeclare a parameter")

	dups := s.ExitFunction()
	require.Len(t, dups, 1)
	assert.Equal(t, "a", dups[0].Name)
	assert.Equal(t, 16, dups[0].Pos.Column)
}

func TestCatchParams(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	s.EnterBlock()
	require.True(t, s.DeclareCatchParam("e", true))
	assert.True(t, s.DeclareVar("e"), "var may redeclare a simple catch parameter")
	assert.False(t, s.DeclareLexical("e", SymLet))
	s.Exit()

	s.EnterBlock()
	require.True(t, s.DeclareCatchParam("p", false))
	assert.False(t, s.DeclareVar("p"), "var may not redeclare a destructured catch parameter")
	assert.False(t, s.DeclareFunction("p", false, false))
}

func TestExports(t *testing.T) {
	s := NewSymbol(true)
	s.EnterProgram()

	_, ok := s.DeclareExport("a", at(1, 1))
	require.True(t, ok)
	prev, ok := s.DeclareExport("a", at(2, 1))
	assert.False(t, ok)
	assert.Equal(t, 1, prev.Line)

	assert.False(t, s.TestAndSetDefaultExport())
	assert.True(t, s.TestAndSetDefaultExport())

	s.DeclareVar("x")
	s.ExportLocal("x", at(3, 10))
	s.ExportLocal("missing", at(3, 13))
	s.EnterBlock()
	s.DeclareLexical("inner", SymLet)
	s.Exit()
	s.ExportLocal("inner", at(4, 10))

	undef := s.UndefinedExports()
	require.Len(t, undef, 2)
	assert.Equal(t, "missing", undef[0].Name)
	assert.Equal(t, "inner", undef[1].Name)
}

func TestPrivateNames(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	assert.False(t, s.UsePrivateName("x", at(1, 1)), "no class")

	s.EnterClass()
	assert.True(t, s.UsePrivateName("late", at(1, 5)))
	assert.True(t, s.DefinePrivateName("a", at(1, 10), PrivateGet))
	assert.True(t, s.DefinePrivateName("a", at(1, 20), PrivateSet), "accessor pair")
	assert.False(t, s.DefinePrivateName("a", at(1, 30), PrivateOther))
	assert.False(t, s.DefinePrivateName("b", at(1, 40), PrivateStaticGet) && s.DefinePrivateName("b", at(1, 50), PrivateSet))
	assert.True(t, s.DefinePrivateName("late", at(1, 60), PrivateOther))

	dups, undef := s.ExitClass()
	assert.Len(t, dups, 2)
	assert.Empty(t, undef)
}

func TestPrivateNamesNested(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	s.EnterClass()
	s.EnterClass()
	s.UsePrivateName("outer", at(2, 1))
	s.UsePrivateName("nowhere", at(2, 9))
	_, undef := s.ExitClass()
	assert.Empty(t, undef, "the enclosing class may still define them")

	s.DefinePrivateName("outer", at(3, 1), PrivateOther)
	_, undef = s.ExitClass()
	require.Len(t, undef, 1)
	assert.Equal(t, "nowhere", undef[0].Name)
}

func TestSymbolRestore(t *testing.T) {
	s := NewSymbol(true)
	s.EnterProgram()
	require.True(t, s.DeclareLexical("a", SymLet))

	snap := s.Snapshot()
	assert.True(t, s.DeclareLexical("b", SymLet))
	assert.True(t, s.DeclareVar("c"))
	s.DeclareExport("b", at(1, 1))
	s.ExportLocal("c", at(1, 5))
	assert.False(t, s.TestAndSetDefaultExport())
	s.EnterFunction()
	s.DeclareParam("x", at(2, 1))
	s.EnterBlock()
	s.Restore(snap)

	assert.Equal(t, 1, s.Depth())
	assert.True(t, s.Declared("a"))
	assert.False(t, s.Declared("b"))
	assert.True(t, s.DeclareLexical("b", SymConst))
	assert.True(t, s.DeclareLexical("c", SymLet))
	_, ok := s.DeclareExport("b", at(3, 1))
	assert.True(t, ok)
	assert.Empty(t, s.UndefinedExports())
	assert.False(t, s.TestAndSetDefaultExport())
}

func TestSymbolRestoreNested(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	outer := s.Snapshot()
	s.DeclareVar("kept")
	inner := s.Snapshot()
	s.DeclareVar("dropped")
	s.Restore(inner)
	assert.True(t, s.Declared("kept"))
	assert.False(t, s.Declared("dropped"))

	inner = s.Snapshot()
	s.DeclareVar("committed")
	s.Commit(inner)
	s.Restore(outer)
	assert.False(t, s.Declared("kept"))
	assert.False(t, s.Declared("committed"))

	// Nothing is journaled without an open snapshot.
	s.DeclareVar("plain")
	assert.Empty(t, s.undo)
}

func TestSymbolRestorePrivateNames(t *testing.T) {
	s := NewSymbol(false)
	s.EnterProgram()
	s.EnterClass()
	s.UsePrivateName("x", at(1, 1))

	snap := s.Snapshot()
	s.DefinePrivateName("x", at(2, 1), PrivateOther)
	s.DefinePrivateName("x", at(3, 1), PrivateOther)
	s.ExitClass()
	s.Restore(snap)

	dups, undef := s.ExitClass()
	assert.Empty(t, dups)
	require.Len(t, undef, 1)
	assert.Equal(t, "x", undef[0].Name)
}

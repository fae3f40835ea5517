package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictInheritance(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	assert.False(t, l.InStrict())

	l.EnterFunction(false, false)
	assert.False(t, l.InStrict())
	l.SetStrict()
	assert.True(t, l.InStrict())

	l.EnterFunction(false, false)
	assert.True(t, l.InStrict(), "nested function inherits strictness")
	l.Exit()
	l.Exit()
	assert.False(t, l.InStrict())

	l.EnterClass(false)
	assert.True(t, l.InStrict(), "class bodies are strict")
	l.EnterFunction(false, false)
	assert.True(t, l.InStrict())
	l.Exit()
	l.Exit()

	l.EnterBlock()
	assert.False(t, l.InStrict())
}

func TestModuleProgramIsStrict(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, true)
	l.EnterArrowBody(false)
	assert.True(t, l.InStrict())
}

func TestAwaitYieldContext(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	assert.False(t, l.AwaitAsExpression())

	l.EnterFunction(true, true)
	assert.True(t, l.AwaitAsExpression())
	assert.True(t, l.YieldAsExpression())
	assert.True(t, l.InGenerator())

	l.EnterBlock()
	assert.True(t, l.AwaitAsExpression(), "blocks are transparent")

	l.EnterArrowBody(false)
	assert.False(t, l.AwaitAsExpression())
	assert.False(t, l.YieldAsExpression())
	l.Exit()

	l.EnterClass(false)
	assert.False(t, l.AwaitAsExpression())
	l.EnterPropertyName()
	assert.True(t, l.AwaitAsExpression(), "computed keys see the outer function")
	assert.True(t, l.YieldAsExpression())
	l.ExitPropertyName()
	l.EnterStaticBlock()
	assert.True(t, l.InStaticBlock())
	assert.False(t, l.AwaitAsExpression())
}

func TestParameters(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	l.EnterFunction(false, false)
	assert.False(t, l.InParameters())
	l.EnterParameters()
	assert.True(t, l.InParameters())
	l.EnterBlock()
	assert.False(t, l.InParameters())
	l.Exit()
	l.ExitParameters()
	assert.False(t, l.InParameters())

	assert.True(t, l.SimpleParameters())
	l.SetNonSimpleParameters()
	assert.False(t, l.SimpleParameters())
}

func TestBreakContinueLabels(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	assert.False(t, l.BreakAllowed())
	assert.False(t, l.ContinueAllowed())

	// outer: while (x) { inner: { ... } }
	require.False(t, l.EnterVirtual(Label, "outer"))
	l.EnterVirtual(Loop, "")
	l.EnterBlock()
	require.False(t, l.EnterVirtual(Label, "inner"))
	l.EnterBlock()

	assert.True(t, l.BreakAllowed())
	assert.True(t, l.ContinueAllowed())

	found, loop := l.LabelTarget("outer")
	assert.True(t, found)
	assert.True(t, loop)

	found, loop = l.LabelTarget("inner")
	assert.True(t, found)
	assert.False(t, loop, "inner labels a block")

	assert.True(t, l.EnterVirtual(Label, "outer"), "duplicate label")
	l.Exit()

	l.EnterFunction(false, false)
	found, _ = l.LabelTarget("outer")
	assert.False(t, found, "labels do not cross functions")
	assert.False(t, l.BreakAllowed())
	assert.False(t, l.EnterVirtual(Label, "outer"))
}

func TestSwitchAllowsBreakOnly(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	l.EnterVirtual(Switch, "")
	assert.True(t, l.BreakAllowed())
	assert.False(t, l.ContinueAllowed())
}

func TestReturnAndTopLevel(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	assert.False(t, l.ReturnAllowed())
	assert.True(t, l.IsTopLevel())

	l.EnterArrowBody(false)
	assert.True(t, l.ReturnAllowed())
	assert.True(t, l.IsTopLevel(), "arrows are transparent to new.target")
	l.Exit()

	l.EnterFunction(false, false)
	assert.True(t, l.ReturnAllowed())
	assert.False(t, l.IsTopLevel())
	l.Exit()

	l.EnterClass(false)
	assert.False(t, l.EnclosedInFunction())
	assert.False(t, l.ReturnAllowed())
	l.EnterFunction(false, false)
	assert.True(t, l.EnclosedInFunction())
}

func TestClassFlags(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	assert.False(t, l.InClass())

	l.EnterClass(true)
	assert.True(t, l.DirectlyInClass())
	assert.True(t, l.ClassExtends())
	assert.False(t, l.TestAndSetCtor())
	assert.True(t, l.TestAndSetCtor())

	l.EnterCtor()
	l.EnterFunction(false, false)
	assert.True(t, l.InCtor())
	assert.False(t, l.DirectlyInClass())
	l.Exit()
	l.ExitCtor()
	assert.False(t, l.InCtor())

	l.EnterDelete()
	assert.True(t, l.InDelete())
	l.ExitDelete()
	assert.False(t, l.InDelete())
}

func TestParentFunction(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	l.EnterFunction(true, false)
	l.EnterFunction(false, true)
	assert.True(t, l.ParentFunctionAsync())
	assert.False(t, l.ParentFunctionGenerator())
}

func TestLexicalSnapshot(t *testing.T) {
	l := NewLexical()
	l.EnterProgram(false, false)
	l.EnterFunction(false, false)
	snap := l.Snapshot()

	l.EnterParameters()
	l.EnterBlock()
	l.EnterBlock()
	l.SetStrict()
	require.Equal(t, 4, l.Depth())

	l.Restore(snap)
	assert.Equal(t, 2, l.Depth())
	assert.False(t, l.InParameters())
	assert.False(t, l.InStrict())
}

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(k CandidateKind, col int) Candidate {
	return Candidate{Kind: k, Pos: at(1, col)}
}

func TestStrictRecordsOnlyInNonRHS(t *testing.T) {
	s := NewStrict()
	s.EnterRHS()
	s.Record(cand(EvalIdentifier, 1))
	assert.False(t, Violates(s.Current()))

	s.EnterLHS()
	assert.True(t, s.InLHS())
	s.Record(cand(EvalIdentifier, 2))
	s.Record(cand(AwaitIdentifier, 3))
	cur := s.Current()
	assert.True(t, Violates(cur))
	assert.Equal(t, 1, cur.Count(EvalIdentifier))
	assert.Equal(t, 0, cur.Count(AwaitIdentifier), "await is not a strict-mode candidate")
}

func TestStrictMergesIntoCapture(t *testing.T) {
	s := NewStrict()
	s.EnterRHS()
	s.EnterCapture()
	s.EnterLHS()
	s.Record(cand(ArgumentsIdentifier, 4))
	s.Exit()

	s.EnterRHS()
	s.Record(cand(LetIdentifier, 9))
	s.Exit()

	cur := s.Current()
	require.Equal(t, CaptureLayer, cur.Kind)
	require.Len(t, cur.Candidates, 1)
	assert.Equal(t, ArgumentsIdentifier, cur.Candidates[0].Kind)

	s.Exit()
	assert.False(t, Violates(s.Current()), "RHS layer stops the merge")
}

func TestStrictMergeStopsAtRHS(t *testing.T) {
	s := NewStrict()
	s.EnterCapture()
	s.EnterRHS()
	s.EnterLHS()
	s.Record(cand(YieldIdentifier, 1))
	s.Exit()
	s.Exit()
	assert.Empty(t, s.Current().Candidates)
}

func TestStrictSnapshotIsExact(t *testing.T) {
	s := NewStrict()
	s.EnterCapture()
	s.Record(cand(EvalIdentifier, 1))
	snap := s.Snapshot()

	s.Record(cand(EvalIdentifier, 2))
	s.EnterLHS()
	s.Record(cand(LetIdentifier, 3))
	s.Exit()
	require.Len(t, s.Current().Candidates, 3)

	s.Restore(snap)
	assert.Equal(t, 1, s.Depth())
	assert.Len(t, s.Current().Candidates, 1)

	s.Record(cand(YieldIdentifier, 4))
	cur := s.Current()
	require.Len(t, cur.Candidates, 2)
	assert.Equal(t, YieldIdentifier, cur.Candidates[1].Kind)
}

func TestAsyncArrowBlankFrames(t *testing.T) {
	a := NewAsyncArrow()
	a.Enter()
	a.EnterBlank()
	a.Record(cand(AwaitIdentifier, 1))
	_, ok := a.Current()
	assert.False(t, ok)
	a.Exit()

	f, ok := a.Current()
	require.True(t, ok)
	assert.Empty(t, f.Candidates, "nothing crosses a function boundary")
}

func TestAsyncArrowMerge(t *testing.T) {
	a := NewAsyncArrow()
	a.Enter()
	a.Enter()
	a.Record(cand(YieldIdentifier, 2))
	f, _ := a.Current()
	assert.False(t, f.HasError(), "yield identifiers are tolerated")

	a.Record(cand(AwaitExpressionInParameter, 5))
	f, _ = a.Current()
	assert.True(t, f.HasError())
	a.Exit()

	outer, ok := a.Current()
	require.True(t, ok)
	assert.Len(t, outer.Candidates, 2)

	a.Record(cand(EvalIdentifier, 7))
	outer, _ = a.Current()
	assert.Len(t, outer.Candidates, 2, "eval is not an async-arrow candidate")
}

func TestAsyncArrowSnapshot(t *testing.T) {
	a := NewAsyncArrow()
	a.Enter()
	snap := a.Snapshot()
	a.Record(cand(AwaitIdentifier, 1))
	a.EnterBlank()
	a.Restore(snap)
	f, ok := a.Current()
	require.True(t, ok)
	assert.Empty(t, f.Candidates)
	assert.Equal(t, 1, a.Depth())
}

func TestCandidateKindString(t *testing.T) {
	assert.Equal(t, "eval identifier", EvalIdentifier.String())
	assert.Equal(t, "unknown", CandidateKind(99).String())
}

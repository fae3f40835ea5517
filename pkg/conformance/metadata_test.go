package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const negativeHeader = `// Copyright (C) 2016 the V8 project authors. All rights reserved.
/*---
esid: sec-let-and-const-declarations
description: >
  Redeclaration of a lexical binding.
negative:
  phase: parse
  type: SyntaxError
flags: [onlyStrict]
features: [let, class-fields-public]
---*/

$DONOTEVALUATE();
let a; let a;
`

func TestParseMetadata(t *testing.T) {
	meta, err := ParseMetadata(negativeHeader)
	require.NoError(t, err)
	assert.Equal(t, "Redeclaration of a lexical binding.\n", meta.Description)
	require.NotNil(t, meta.Negative)
	assert.Equal(t, PhaseParse, meta.Negative.Phase)
	assert.Equal(t, "SyntaxError", meta.Negative.Type)
	assert.Equal(t, []string{"onlyStrict"}, meta.Flags)
	assert.Equal(t, []string{"let", "class-fields-public"}, meta.Features)
	assert.True(t, meta.HasFlag(FlagOnlyStrict))
	assert.False(t, meta.HasFlag(FlagModule))
	assert.True(t, meta.ExpectsSyntaxError())
}

func TestParseMetadataWithoutFrontMatter(t *testing.T) {
	meta, err := ParseMetadata("var x = 1;")
	require.NoError(t, err)
	assert.Nil(t, meta.Negative)
	assert.False(t, meta.ExpectsSyntaxError())
	assert.Equal(t, []bool{false, true}, meta.StrictModes())

	meta, err = ParseMetadata("/*--- unterminated")
	require.NoError(t, err)
	assert.Empty(t, meta.Flags)
}

func TestParseMetadataInvalid(t *testing.T) {
	_, err := ParseMetadata("/*---\nflags: [module\n---*/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding front-matter")
}

func TestExpectsSyntaxError(t *testing.T) {
	for phase, want := range map[string]bool{
		PhaseParse:      true,
		PhaseEarly:      true,
		PhaseResolution: false,
		PhaseRuntime:    false,
	} {
		meta := &Metadata{Negative: &Negative{Phase: phase, Type: "SyntaxError"}}
		assert.Equal(t, want, meta.ExpectsSyntaxError(), phase)
	}
}

func TestStrictModes(t *testing.T) {
	tests := []struct {
		flags []string
		want  []bool
	}{
		{nil, []bool{false, true}},
		{[]string{FlagOnlyStrict}, []bool{true}},
		{[]string{FlagNoStrict}, []bool{false}},
		{[]string{FlagRaw}, []bool{false}},
		{[]string{FlagModule}, []bool{false}},
		{[]string{"async", FlagOnlyStrict}, []bool{true}},
	}
	for _, tt := range tests {
		meta := &Metadata{Flags: tt.flags}
		assert.Equal(t, tt.want, meta.StrictModes(), "flags %v", tt.flags)
	}
}

package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
)

func classBody(t *testing.T, input string) []ast.Node {
	t.Helper()
	prog := parse(t, input, scriptConfig)
	require.Len(t, prog.Body, 1)
	decl, ok := prog.Body[0].(*ast.ClassDeclaration)
	require.True(t, ok, "statement is %T", prog.Body[0])
	return decl.Body.Body
}

func TestClassMembers(t *testing.T) {
	body := classBody(t, `class A extends B {
  static x = 1;
  #y;
  constructor(a) { super(a); }
  get v() { return this.#y; }
  set v(n) { this.#y = n; }
  static async *gen() {}
  [key]() {}
  static { init(); }
  'quoted'() {}
  static = 2;
  async
  plain() {}
}`)
	require.Len(t, body, 12)

	field := body[0].(*ast.PropertyDefinition)
	assert.True(t, field.Static)
	assert.NotNil(t, field.Value)

	private := body[1].(*ast.PropertyDefinition)
	assert.Equal(t, "y", private.Key.(*ast.PrivateName).Name)

	ctor := body[2].(*ast.MethodDefinition)
	assert.Equal(t, ast.MethodConstructor, ctor.MethodKind)

	assert.Equal(t, ast.MethodGet, body[3].(*ast.MethodDefinition).MethodKind)
	assert.Equal(t, ast.MethodSet, body[4].(*ast.MethodDefinition).MethodKind)

	gen := body[5].(*ast.MethodDefinition)
	assert.True(t, gen.Static)
	assert.True(t, gen.Value.Async)
	assert.True(t, gen.Value.Generator)

	assert.True(t, body[6].(*ast.MethodDefinition).Computed)
	assert.IsType(t, &ast.StaticBlock{}, body[7])

	// a field named static
	staticField := body[9].(*ast.PropertyDefinition)
	assert.False(t, staticField.Static)
	assert.Equal(t, "static", staticField.Key.(*ast.Identifier).Name)

	// async followed by a newline is a field
	asyncField := body[10].(*ast.PropertyDefinition)
	assert.Equal(t, "async", asyncField.Key.(*ast.Identifier).Name)
	assert.IsType(t, &ast.MethodDefinition{}, body[11])
}

func TestClassExpression(t *testing.T) {
	e := expr(t, "(class Named { m() {} })", scriptConfig)
	cls, ok := e.(*ast.ClassExpression)
	require.True(t, ok, "expression is %T", e)
	assert.Equal(t, "Named", cls.ID.Name)
	assert.Len(t, cls.Body.Body, 1)
}

func TestClassErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"class A { constructor() {} constructor() {} }", errors.MsgDuplicateConstructor},
		{"class A { static prototype() {} }", errors.MsgStaticPrototype},
		{"class A { constructor = 1 }", errors.MsgFieldConstructor},
		{"class A { #constructor() {} }", errors.MsgPrivateConstructor},
		{"class A { get constructor() {} }", fmt.Sprintf(errors.MsgConstructorKind, "n accessor")},
		{"class A { *constructor() {} }", fmt.Sprintf(errors.MsgConstructorKind, " generator")},
		{"class A { #a; #a; }", fmt.Sprintf(errors.MsgDuplicatePrivateName, "a")},
		{"class A { m() { this.#b } }", fmt.Sprintf(errors.MsgUndefinedPrivateName, "b")},
		{"class A { m() { delete this.#a } #a }", errors.MsgPrivateDelete},
		{"class A { constructor() { super() } }", errors.MsgSuperCall},
		{"class A { x = arguments }", errors.MsgArgumentsInField},
		{"class A { static { await } }", errors.MsgAwaitAsIdentifier},
		{"class A { m() { with (a) {} } }", errors.MsgWithStrict},
		{"class let {}", errors.MsgLetInLexicalBinding},
		{"class A {} class A {}", fmt.Sprintf(errors.MsgDuplicateDeclaration, "A")},
	}
	for _, tt := range tests {
		assertError(t, tt.input, scriptConfig, tt.want)
	}
}

func TestPrivateNames(t *testing.T) {
	// accessor pairs share a name and usage may precede declaration
	classBody(t, "class A { m() { return this.#p } get #p() {} set #p(v) {} }")
	classBody(t, "class A { static get #p() {} static set #p(v) {} }")
	classBody(t, "class A { #x; has(o) { return #x in o } }")

	// inner classes see outer private names
	classBody(t, "class A { #x; m() { return class { n(o) { return o.#x } } } }")

	assertError(t, "class A { get #p() {} static set #p(v) {} }", scriptConfig,
		fmt.Sprintf(errors.MsgDuplicatePrivateName, "p"))
	assertError(t, "this.#x", scriptConfig, fmt.Sprintf(errors.MsgUndefinedPrivateName, "x"))
}

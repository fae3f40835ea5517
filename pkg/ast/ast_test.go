package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/source"
)

func pos(off int) source.Position {
	return source.Position{Line: 1, Column: off + 1, Offset: off}
}

func ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Program", KindProgram.String())
	assert.Equal(t, "ArrowFunctionExpression", KindArrowFunctionExpression.String())
	assert.Equal(t, "TSInstantiationExpression", KindTSInstantiationExpression.String())
	assert.Equal(t, "Invalid", Kind(60000).String())

	for k := KindProgram; k < kindCount; k++ {
		assert.NotEqual(t, "Invalid", k.String(), "kind %d has no name", k)
	}
}

func TestChildrenOrder(t *testing.T) {
	// a + f(b, ...c)
	call := &CallExpression{
		Callee:    ident("f"),
		Arguments: []Expression{ident("b"), &SpreadElement{Argument: ident("c")}},
	}
	bin := &BinaryExpression{Operator: "+", Left: ident("a"), Right: call}

	kids := Children(bin)
	require.Len(t, kids, 2)
	assert.Equal(t, "a", kids[0].(*Identifier).Name)
	assert.Same(t, call, kids[1])

	kids = Children(call)
	require.Len(t, kids, 3)
	assert.Equal(t, KindSpreadElement, kids[2].Kind())
}

func TestChildrenSkipsHolesAndNil(t *testing.T) {
	arr := &ArrayExpression{Elements: []Expression{ident("a"), nil, ident("b")}}
	assert.Len(t, Children(arr), 2)

	ret := &ReturnStatement{}
	assert.Empty(t, Children(ret))
}

func TestChildrenEmbeddedFunction(t *testing.T) {
	fn := &FunctionDeclaration{Function: Function{
		ID:     ident("f"),
		Params: []Pattern{ident("x"), &AssignmentPattern{Left: ident("y"), Right: &NumericLiteral{Value: 1, Raw: "1"}}},
		Body:   &BlockStatement{},
	}}
	kids := Children(fn)
	require.Len(t, kids, 4)
	assert.Equal(t, KindIdentifier, kids[0].Kind())
	assert.Equal(t, KindAssignmentPattern, kids[2].Kind())
	assert.Equal(t, KindBlockStatement, kids[3].Kind())
}

func TestInspectCounts(t *testing.T) {
	prog := &Program{Body: []Statement{
		&VariableDeclaration{DeclKind: DeclLet, Declarations: []*VariableDeclarator{
			{ID: &ObjectPattern{Properties: []Pattern{
				&PatternProperty{Key: ident("a"), Value: ident("a"), Shorthand: true},
				&RestElement{Argument: ident("rest")},
			}}, Init: ident("obj")},
		}},
		&ExpressionStatement{Expression: &TemplateLiteral{
			Quasis:      []*TemplateElement{{Raw: "x"}, {Raw: "", Tail: true}},
			Expressions: []Expression{ident("y")},
		}},
	}}

	counts := map[Kind]int{}
	Inspect(prog, func(n Node) bool {
		if n != nil {
			counts[n.Kind()]++
		}
		return true
	})
	assert.Equal(t, 5, counts[KindIdentifier])
	assert.Equal(t, 2, counts[KindTemplateElement])
	assert.Equal(t, 1, counts[KindRestElement])
}

func TestInspectPrune(t *testing.T) {
	fn := &FunctionExpression{Function: Function{
		Params: []Pattern{ident("inner")},
		Body:   &BlockStatement{},
	}}
	seq := &SequenceExpression{Expressions: []Expression{ident("outer"), fn}}

	var names []string
	Inspect(seq, func(n Node) bool {
		if id, ok := n.(*Identifier); ok {
			names = append(names, id.Name)
		}
		_, isFn := n.(*FunctionExpression)
		return !isFn
	})
	assert.Equal(t, []string{"outer"}, names)
}

func TestBoundNames(t *testing.T) {
	// [a, , {b, c: [d = 1]}, ...e]
	p := &ArrayPattern{Elements: []Pattern{
		ident("a"),
		nil,
		&ObjectPattern{Properties: []Pattern{
			&PatternProperty{Key: ident("b"), Value: ident("b"), Shorthand: true},
			&PatternProperty{Key: ident("c"), Value: &ArrayPattern{Elements: []Pattern{
				&AssignmentPattern{Left: ident("d"), Right: &NumericLiteral{Value: 1}},
			}}},
		}},
		&RestElement{Argument: ident("e")},
	}}

	var names []string
	for _, id := range BoundNames(p, nil) {
		names = append(names, id.Name)
	}
	assert.Equal(t, []string{"a", "b", "d", "e"}, names)
}

func TestIsSimpleParameterList(t *testing.T) {
	assert.True(t, IsSimpleParameterList(nil))
	assert.True(t, IsSimpleParameterList([]Pattern{ident("a"), ident("b")}))
	assert.False(t, IsSimpleParameterList([]Pattern{ident("a"), &RestElement{Argument: ident("b")}}))
	assert.False(t, IsSimpleParameterList([]Pattern{&AssignmentPattern{Left: ident("a")}}))
}

func TestParenthesized(t *testing.T) {
	var e Expression = ident("x")
	assert.False(t, e.Parenthesized())
	e.SetParenthesized(true)
	assert.True(t, e.Parenthesized())
}

func TestNames(t *testing.T) {
	member := &JSXMemberExpression{
		Object:   &JSXMemberExpression{Object: &JSXIdentifier{Name: "a"}, Property: &JSXIdentifier{Name: "b"}},
		Property: &JSXIdentifier{Name: "c"},
	}
	assert.Equal(t, "a.b.c", JSXName(member))
	assert.Equal(t, "svg:rect", JSXName(&JSXNamespacedName{
		Namespace: &JSXIdentifier{Name: "svg"},
		Name:      &JSXIdentifier{Name: "rect"},
	}))

	assert.Equal(t, "x", ModuleExportName(ident("x")))
	assert.Equal(t, "a-b", ModuleExportName(&StringLiteral{Value: "a-b", Raw: `"a-b"`}))
}

func TestArenaPointersStayValid(t *testing.T) {
	a := NewArena()
	var ids []*Identifier
	for i := 0; i < slabSize*3; i++ {
		ids = append(ids, a.NewIdentifier("x", pos(i), pos(i+1)))
	}
	ids[0].Name = "first"
	for i, id := range ids {
		assert.Equal(t, i, id.Start().Offset)
	}
	assert.Equal(t, "first", ids[0].Name)
	assert.NotSame(t, ids[0], ids[1])

	a.Reset()
	n := a.NewNumericLiteral(1.5, "1.5", pos(0), pos(3))
	assert.Equal(t, 1.5, n.Value)
	assert.Equal(t, "first", ids[0].Name)
}

func TestNilArena(t *testing.T) {
	var a *Arena
	id := a.NewIdentifier("y", pos(0), pos(1))
	assert.Equal(t, "y", id.Name)
	assert.NotNil(t, a.NewCallExpression())
	assert.NotNil(t, a.NewBlockStatement())
}

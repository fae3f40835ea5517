package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
)

func jsxElement(t *testing.T, input string, cfg Config) *ast.JSXElement {
	t.Helper()
	e := expr(t, input, cfg)
	el, ok := e.(*ast.JSXElement)
	require.True(t, ok, "expression is %T", e)
	return el
}

func TestJSXElement(t *testing.T) {
	el := jsxElement(t, `<div className="a &amp; b" {...rest} hidden>Hello &amp; {name}<br/></div>;`, jsxConfig)
	assert.Equal(t, "div", ast.JSXName(el.Opening.Name))
	assert.False(t, el.Opening.SelfClosing)
	require.NotNil(t, el.Closing)
	assert.Equal(t, "div", ast.JSXName(el.Closing.Name))

	require.Len(t, el.Opening.Attributes, 3)
	class := el.Opening.Attributes[0].(*ast.JSXAttribute)
	assert.Equal(t, "className", ast.JSXName(class.Name))
	assert.Equal(t, "a & b", class.Value.(*ast.StringLiteral).Value)
	assert.IsType(t, &ast.JSXSpreadAttribute{}, el.Opening.Attributes[1])
	assert.Nil(t, el.Opening.Attributes[2].(*ast.JSXAttribute).Value)

	require.Len(t, el.Children, 3)
	text := el.Children[0].(*ast.JSXText)
	assert.Equal(t, "Hello & ", text.Value)
	assert.Equal(t, "Hello &amp; ", text.Raw)
	container := el.Children[1].(*ast.JSXExpressionContainer)
	assert.Equal(t, "name", container.Expression.(*ast.Identifier).Name)
	br := el.Children[2].(*ast.JSXElement)
	assert.True(t, br.Opening.SelfClosing)
	assert.Nil(t, br.Closing)
}

func TestJSXNames(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"<svg:rect />", "svg:rect"},
		{"<Foo.Bar.Baz />", "Foo.Bar.Baz"},
		{"<data-item />", "data-item"},
	}
	for _, tt := range tests {
		el := jsxElement(t, tt.input, jsxConfig)
		assert.Equal(t, tt.name, ast.JSXName(el.Opening.Name))
	}
}

func TestJSXFragmentAndNesting(t *testing.T) {
	e := expr(t, "<><a>{cond ? <b /> : <c>text</c>}</a>{...items}</>", jsxConfig)
	frag, ok := e.(*ast.JSXFragment)
	require.True(t, ok, "expression is %T", e)
	require.Len(t, frag.Children, 2)
	a := frag.Children[0].(*ast.JSXElement)
	cond := a.Children[0].(*ast.JSXExpressionContainer).Expression.(*ast.ConditionalExpression)
	assert.IsType(t, &ast.JSXElement{}, cond.Consequent)
	assert.IsType(t, &ast.JSXElement{}, cond.Alternate)
	assert.IsType(t, &ast.JSXSpreadChild{}, frag.Children[1])

	e = expr(t, "<a>{/* comment */}</a>", jsxConfig)
	child := e.(*ast.JSXElement).Children[0].(*ast.JSXExpressionContainer)
	assert.IsType(t, &ast.JSXEmptyExpression{}, child.Expression)
}

func TestJSXAttributeValues(t *testing.T) {
	el := jsxElement(t, `<a onClick={() => go(1)} icon=<Icon /> label='x' />`, jsxConfig)
	require.Len(t, el.Opening.Attributes, 3)
	click := el.Opening.Attributes[0].(*ast.JSXAttribute).Value.(*ast.JSXExpressionContainer)
	assert.IsType(t, &ast.ArrowFunctionExpression{}, click.Expression)
	assert.IsType(t, &ast.JSXElement{}, el.Opening.Attributes[1].(*ast.JSXAttribute).Value)
}

func TestJSXAfterExpression(t *testing.T) {
	// the comparison operators keep working next to JSX
	prog := parse(t, "const x = a < b;\nconst y = <p>{a > b}</p>;", jsxConfig)
	assert.Len(t, prog.Body, 2)

	e := expr(t, "f(<a />, <b />)", jsxConfig)
	assert.Len(t, e.(*ast.CallExpression).Arguments, 2)
}

func TestJSXErrors(t *testing.T) {
	msgs := parseErrors(t, "<a></b>", jsxConfig)
	assert.Equal(t, fmt.Sprintf(errors.MsgJSXUnclosed, "a"), msgs[len(msgs)-1])

	msgs = parseErrors(t, "<a>text", jsxConfig)
	assert.Equal(t, errors.MsgJSXUnterminated, msgs[len(msgs)-1])

	msgs = parseErrors(t, "<a /><b />", jsxConfig)
	assert.Equal(t, errors.MsgJSXAdjacent, msgs[len(msgs)-1])

	assertError(t, "<a b={} />", jsxConfig, errors.MsgJSXEmptyAttribute)

	// without the plugin '<' is an operator
	parseErrors(t, "<a />", moduleConfig)
}

func TestTSXGenericArrow(t *testing.T) {
	e := expr(t, "<T,>(x: T) => x", tsxConfig)
	arrow, ok := e.(*ast.ArrowFunctionExpression)
	require.True(t, ok, "expression is %T", e)
	require.Len(t, arrow.TypeParameters, 1)
	assert.Equal(t, "T", arrow.TypeParameters[0].Name)

	e = expr(t, "<T extends object>(x: T) => x", tsxConfig)
	assert.IsType(t, &ast.ArrowFunctionExpression{}, e)

	el := jsxElement(t, "<Select<string> value={v} />", tsxConfig)
	assert.Len(t, el.Opening.TypeArguments, 1)
}

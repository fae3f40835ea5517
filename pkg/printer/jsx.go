package printer

import (
	"esfront/pkg/ast"
)

func (p *Printer) jsxElement(e *ast.JSXElement) {
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	o := e.Opening
	p.write("<" + ast.JSXName(o.Name))
	p.typeArguments(o.TypeArguments)
	for _, a := range o.Attributes {
		p.write(" ")
		p.jsxAttribute(a)
	}
	if o.SelfClosing {
		p.write(" />")
		return
	}
	p.write(">")
	p.jsxChildren(e.Children)
	p.write("</" + ast.JSXName(o.Name) + ">")
}

func (p *Printer) jsxFragment(f *ast.JSXFragment) {
	saved := p.noIn
	p.noIn = false
	p.write("<>")
	p.jsxChildren(f.Children)
	p.write("</>")
	p.noIn = saved
}

func (p *Printer) jsxAttribute(attr ast.Node) {
	switch a := attr.(type) {
	case *ast.JSXSpreadAttribute:
		p.write("{...")
		p.expr(a.Argument, precAssign)
		p.write("}")
	case *ast.JSXAttribute:
		p.write(ast.JSXName(a.Name))
		if a.Value == nil {
			return
		}
		p.write("=")
		switch v := a.Value.(type) {
		case *ast.StringLiteral:
			p.write(v.Raw)
		case ast.Expression:
			p.exprInner(v)
		default:
			p.jsxChild(v)
		}
	}
}

// jsxChildren prints children exactly where they were, since whitespace
// in text is significant.
func (p *Printer) jsxChildren(children []ast.Node) {
	for _, c := range children {
		p.jsxChild(c)
	}
}

func (p *Printer) jsxChild(child ast.Node) {
	switch c := child.(type) {
	case *ast.JSXText:
		p.write(c.Raw)
	case *ast.JSXExpressionContainer:
		p.write("{")
		if _, empty := c.Expression.(*ast.JSXEmptyExpression); !empty {
			p.expr(c.Expression, precSequence)
		}
		p.write("}")
	case *ast.JSXSpreadChild:
		p.write("{...")
		p.expr(c.Expression, precAssign)
		p.write("}")
	case *ast.JSXElement:
		p.jsxElement(c)
	case *ast.JSXFragment:
		p.jsxFragment(c)
	}
}

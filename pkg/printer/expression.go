package printer

import (
	"strings"

	"esfront/pkg/ast"
)

// Expression precedence, lowest first. An operand printed where a higher
// level is required gets parentheses.
const (
	precSequence = iota
	precAssign
	precConditional
	precNullish
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precUpdate
	precNew // new without arguments
	precCall
	precPrimary
)

var binaryPrec = map[string]int{
	"??": precNullish, "||": precOr, "&&": precAnd,
	"|": precBitOr, "^": precBitXor, "&": precBitAnd,
	"==": precEquality, "!=": precEquality, "===": precEquality, "!==": precEquality,
	"<": precRelational, ">": precRelational, "<=": precRelational, ">=": precRelational,
	"instanceof": precRelational, "in": precRelational,
	"<<": precShift, ">>": precShift, ">>>": precShift,
	"+": precAdditive, "-": precAdditive,
	"*": precMultiplicative, "/": precMultiplicative, "%": precMultiplicative,
	"**": precExponent,
}

func precedence(e ast.Expression) int {
	switch e := e.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignmentExpression, *ast.ArrowFunctionExpression, *ast.YieldExpression:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.LogicalExpression:
		return binaryPrec[e.Operator]
	case *ast.BinaryExpression:
		return binaryPrec[e.Operator]
	case *ast.TSAsExpression, *ast.TSSatisfiesExpression:
		return precRelational
	case *ast.UnaryExpression, *ast.AwaitExpression, *ast.TSTypeAssertion:
		return precUnary
	case *ast.UpdateExpression:
		return precUpdate
	case *ast.NewExpression:
		if e.Arguments == nil {
			return precNew
		}
		return precCall
	case *ast.CallExpression, *ast.MemberExpression, *ast.ChainExpression,
		*ast.TaggedTemplateExpression, *ast.TSNonNullExpression,
		*ast.TSInstantiationExpression, *ast.ImportExpression, *ast.MetaProperty:
		return precCall
	}
	return precPrimary
}

// expr prints e, wrapped in parentheses when it was written that way or
// when its precedence is below min.
func (p *Printer) expr(e ast.Expression, min int) {
	if e.Parenthesized() || precedence(e) < min || p.noIn && isInOperator(e) {
		saved := p.noIn
		p.noIn = false
		p.write("(")
		p.exprInner(e)
		p.write(")")
		p.noIn = saved
		return
	}
	p.exprInner(e)
}

func isInOperator(e ast.Expression) bool {
	b, ok := e.(*ast.BinaryExpression)
	return ok && b.Operator == "in"
}

func (p *Printer) exprInner(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		p.write(e.Name)
	case *ast.PrivateName:
		p.write("#" + e.Name)
	case *ast.ThisExpression:
		p.write("this")
	case *ast.Super:
		p.write("super")
	case *ast.NullLiteral:
		p.write("null")
	case *ast.BooleanLiteral:
		p.writef("%t", e.Value)
	case *ast.NumericLiteral:
		p.write(e.Raw)
	case *ast.BigIntLiteral:
		p.write(e.Raw)
	case *ast.StringLiteral:
		p.write(e.Raw)
	case *ast.RegExpLiteral:
		p.write("/" + e.Pattern + "/" + e.Flags)
	case *ast.TemplateLiteral:
		p.template(e.Quasis, func(i int) { p.expr(e.Expressions[i], precSequence) })
	case *ast.TaggedTemplateExpression:
		p.callee(e.Tag)
		p.typeArguments(e.TypeArguments)
		p.exprInner(e.Quasi)
	case *ast.ArrayExpression:
		p.write("[")
		for i, el := range e.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el != nil {
				p.expr(el, precAssign)
			}
		}
		if n := len(e.Elements); n > 0 && e.Elements[n-1] == nil {
			p.write(",")
		}
		p.write("]")
	case *ast.ObjectExpression:
		p.object(e)
	case *ast.FunctionExpression:
		p.function(&e.Function)
	case *ast.ArrowFunctionExpression:
		p.arrow(e)
	case *ast.ClassExpression:
		p.class(&e.Class)
	case *ast.UnaryExpression:
		p.write(e.Operator)
		if needsSpaceAfterUnary(e.Operator, e.Argument) {
			p.write(" ")
		}
		p.expr(e.Argument, precUnary)
	case *ast.UpdateExpression:
		if e.Prefix {
			p.write(e.Operator)
			if needsSpaceAfterUnary(e.Operator, e.Argument) {
				p.write(" ")
			}
			p.expr(e.Argument, precUnary)
		} else {
			p.expr(e.Argument, precNew)
			p.write(e.Operator)
		}
	case *ast.BinaryExpression:
		p.binary(e.Operator, e.Left, e.Right)
	case *ast.LogicalExpression:
		p.binary(e.Operator, e.Left, e.Right)
	case *ast.AssignmentExpression:
		p.pattern(e.Left)
		p.write(" " + e.Operator + " ")
		p.expr(e.Right, precAssign)
	case *ast.ConditionalExpression:
		p.expr(e.Test, precNullish)
		p.write(" ? ")
		saved := p.noIn
		p.noIn = false
		p.expr(e.Consequent, precAssign)
		p.noIn = saved
		p.write(" : ")
		p.expr(e.Alternate, precAssign)
	case *ast.CallExpression:
		p.callee(e.Callee)
		if e.Optional {
			p.write("?.")
		}
		p.typeArguments(e.TypeArguments)
		p.arguments(e.Arguments)
	case *ast.NewExpression:
		p.write("new ")
		p.newCallee(e.Callee)
		p.typeArguments(e.TypeArguments)
		if e.Arguments != nil {
			p.arguments(e.Arguments)
		}
	case *ast.MemberExpression:
		p.member(e)
	case *ast.ChainExpression:
		p.exprInner(e.Expression)
	case *ast.SequenceExpression:
		list(p, e.Expressions, func(x ast.Expression) { p.expr(x, precAssign) })
	case *ast.YieldExpression:
		p.write("yield")
		if e.Delegate {
			p.write("*")
		}
		if e.Argument != nil {
			p.write(" ")
			p.expr(e.Argument, precAssign)
		}
	case *ast.AwaitExpression:
		p.write("await ")
		p.expr(e.Argument, precUnary)
	case *ast.SpreadElement:
		p.write("...")
		p.expr(e.Argument, precAssign)
	case *ast.MetaProperty:
		p.write(e.Meta.Name + "." + e.Property.Name)
	case *ast.ImportExpression:
		p.write("import(")
		p.expr(e.Source, precAssign)
		if e.Options != nil {
			p.write(", ")
			p.expr(e.Options, precAssign)
		}
		p.write(")")
	case *ast.JSXElement:
		p.jsxElement(e)
	case *ast.JSXFragment:
		p.jsxFragment(e)
	case *ast.JSXEmptyExpression:
	default:
		if !p.tsExpression(expr) {
			p.writef("/* unsupported expression: %T */", e)
		}
	}
}

// needsSpaceAfterUnary keeps `- -a`, `+ ++a` and `typeof a` apart.
func needsSpaceAfterUnary(op string, arg ast.Expression) bool {
	if op[0] >= 'a' && op[0] <= 'z' {
		return true
	}
	if arg.Parenthesized() {
		return false
	}
	switch a := arg.(type) {
	case *ast.UnaryExpression:
		return a.Operator[0] == op[0]
	case *ast.UpdateExpression:
		return a.Prefix && a.Operator[0] == op[0]
	}
	return false
}

func (p *Printer) binary(op string, left, right ast.Expression) {
	prec := binaryPrec[op]
	lmin, rmin := prec, prec+1
	if op == "**" {
		lmin, rmin = precUpdate, prec
	}
	p.operand(op, left, lmin)
	p.write(" " + op + " ")
	p.operand(op, right, rmin)
}

// operand prints one side of a binary operator. ?? may not be mixed with
// || or && without parentheses.
func (p *Printer) operand(op string, e ast.Expression, min int) {
	if l, ok := e.(*ast.LogicalExpression); ok && !l.Parenthesized() {
		mixed := op == "??" && l.Operator != "??" || (op == "||" || op == "&&") && l.Operator == "??"
		if mixed {
			p.write("(")
			p.exprInner(e)
			p.write(")")
			return
		}
	}
	p.expr(e, min)
}

// callee prints the object of a call, member access or tagged template.
// `new A` without arguments keeps its own parentheses there.
func (p *Printer) callee(e ast.Expression) {
	if n, ok := e.(*ast.NewExpression); ok && n.Arguments == nil && !n.Parenthesized() {
		p.write("(")
		p.exprInner(e)
		p.write(")")
		return
	}
	if n, ok := e.(*ast.NumericLiteral); ok && !n.Parenthesized() && isPlainInteger(n.Raw) {
		p.write("(" + n.Raw + ")")
		return
	}
	p.expr(e, precCall)
}

func isPlainInteger(raw string) bool {
	return !strings.ContainsAny(raw, ".eExXoObBn")
}

// newCallee prints the callee of new, which may not contain a call outside
// parentheses.
func (p *Printer) newCallee(e ast.Expression) {
	if containsCall(e) && !e.Parenthesized() {
		p.write("(")
		p.exprInner(e)
		p.write(")")
		return
	}
	p.expr(e, precNew)
}

func containsCall(e ast.Expression) bool {
	for {
		if e.Parenthesized() {
			return false
		}
		switch n := e.(type) {
		case *ast.CallExpression, *ast.ChainExpression:
			return true
		case *ast.MemberExpression:
			e = n.Object
		case *ast.TaggedTemplateExpression:
			e = n.Tag
		case *ast.TSNonNullExpression:
			e = n.Expression
		default:
			return false
		}
	}
}

func (p *Printer) member(m *ast.MemberExpression) {
	p.callee(m.Object)
	switch {
	case m.Computed:
		if m.Optional {
			p.write("?.")
		}
		p.write("[")
		p.expr(m.Property, precSequence)
		p.write("]")
	case m.Optional:
		p.write("?.")
		p.expr(m.Property, precPrimary)
	default:
		p.write(".")
		p.expr(m.Property, precPrimary)
	}
}

func (p *Printer) arguments(args []ast.Expression) {
	saved := p.noIn
	p.noIn = false
	p.write("(")
	list(p, args, func(a ast.Expression) { p.expr(a, precAssign) })
	p.write(")")
	p.noIn = saved
}

// template prints the quasis of a template literal, calling hole for each
// substitution.
func (p *Printer) template(quasis []*ast.TemplateElement, hole func(int)) {
	p.write("`")
	for i, q := range quasis {
		p.write(q.Raw)
		if i < len(quasis)-1 {
			p.write("${")
			hole(i)
			p.write("}")
		}
	}
	p.write("`")
}

func (p *Printer) object(o *ast.ObjectExpression) {
	if len(o.Properties) == 0 {
		p.write("{}")
		return
	}
	saved := p.noIn
	p.noIn = false
	p.write("{")
	list(p, o.Properties, func(n ast.Node) {
		switch prop := n.(type) {
		case *ast.Property:
			p.property(prop)
		case *ast.SpreadElement:
			p.exprInner(prop)
		case *ast.CoverInitializedName:
			p.write(prop.Key.Name + " = ")
			p.expr(prop.Value, precAssign)
		}
	})
	p.write("}")
	p.noIn = saved
}

func (p *Printer) property(prop *ast.Property) {
	switch {
	case prop.Shorthand:
		p.expr(prop.Value, precAssign)
	case prop.Method || prop.PropKind != ast.PropertyInit:
		fn := prop.Value.(*ast.FunctionExpression)
		p.method(prop.Key, prop.Computed, prop.PropKind, fn, false)
	default:
		p.propertyKey(prop.Key, prop.Computed)
		p.write(": ")
		p.expr(prop.Value, precAssign)
	}
}

func (p *Printer) arrow(a *ast.ArrowFunctionExpression) {
	if a.Async {
		p.write("async ")
	}
	// A lone unconstrained `<T>` would open an element in a .tsx file.
	if tps := a.TypeParameters; len(tps) == 1 && tps[0].Constraint == nil && !tps[0].Const {
		text := p.capture(func() { p.typeParameters(tps) })
		p.write(strings.TrimSuffix(text, ">") + ",>")
		p.signature(nil, a.Params, a.ReturnType)
	} else {
		p.signature(a.TypeParameters, a.Params, a.ReturnType)
	}
	p.write(" => ")
	if !a.ExpressionBody {
		p.block(a.Body.(*ast.BlockStatement).Body)
		return
	}
	body := a.Body.(ast.Expression)
	text := p.capture(func() { p.expr(body, precAssign) })
	if strings.HasPrefix(text, "{") {
		text = "(" + text + ")"
	}
	p.write(text)
}

// --- Patterns ---

func (p *Printer) pattern(pat ast.Pattern) {
	switch n := pat.(type) {
	case *ast.Identifier:
		if n.Parenthesized() {
			p.write("(" + n.Name + ")")
		} else {
			p.write(n.Name)
		}
		if n.Optional {
			p.write("?")
		}
		p.typeAnnotation(n.TypeAnnotation)
	case *ast.ObjectPattern:
		p.write("{")
		list(p, n.Properties, p.pattern)
		p.write("}")
		if n.Optional {
			p.write("?")
		}
		p.typeAnnotation(n.TypeAnnotation)
	case *ast.PatternProperty:
		if n.Shorthand {
			p.pattern(n.Value)
			return
		}
		p.propertyKey(n.Key, n.Computed)
		p.write(": ")
		p.pattern(n.Value)
	case *ast.ArrayPattern:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el != nil {
				p.pattern(el)
			}
		}
		if k := len(n.Elements); k > 0 && n.Elements[k-1] == nil {
			p.write(",")
		}
		p.write("]")
		if n.Optional {
			p.write("?")
		}
		p.typeAnnotation(n.TypeAnnotation)
	case *ast.AssignmentPattern:
		p.pattern(n.Left)
		p.write(" = ")
		p.expr(n.Right, precAssign)
	case *ast.RestElement:
		p.write("...")
		p.pattern(n.Argument)
		p.typeAnnotation(n.TypeAnnotation)
	case *ast.TSParameterProperty:
		p.modifiers(n.Modifiers, false)
		p.pattern(n.Parameter)
	case ast.Expression:
		p.expr(n, precNew)
	default:
		p.writef("/* unsupported pattern: %T */", n)
	}
}

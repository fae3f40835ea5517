package printer

import (
	"esfront/pkg/ast"
)

// Type precedence, lowest first.
const (
	typePrecConditional = iota // conditional, function and constructor types
	typePrecUnion
	typePrecIntersection
	typePrecOperator // keyof, unique, readonly, infer
	typePrecPostfix  // T[], T[K]
	typePrecPrimary
)

func typePrecedence(t ast.TSType) int {
	switch t.(type) {
	case *ast.TSConditionalType, *ast.TSFunctionType, *ast.TSConstructorType, *ast.TSTypePredicate:
		return typePrecConditional
	case *ast.TSUnionType:
		return typePrecUnion
	case *ast.TSIntersectionType:
		return typePrecIntersection
	case *ast.TSTypeOperator, *ast.TSInferType:
		return typePrecOperator
	case *ast.TSArrayType, *ast.TSIndexedAccessType:
		return typePrecPostfix
	}
	return typePrecPrimary
}

func (p *Printer) typeAnnotation(t ast.TSType) {
	if t == nil {
		return
	}
	p.write(": ")
	p.tsType(t, typePrecConditional)
}

func (p *Printer) tsType(t ast.TSType, min int) {
	if typePrecedence(t) < min {
		p.write("(")
		p.tsTypeInner(t)
		p.write(")")
		return
	}
	p.tsTypeInner(t)
}

func (p *Printer) tsTypeInner(typ ast.TSType) {
	switch t := typ.(type) {
	case *ast.TSKeywordType:
		p.write(t.Name)
	case *ast.TSThisType:
		p.write("this")
	case *ast.TSTypeReference:
		p.entityName(t.TypeName)
		p.typeArguments(t.TypeArguments)
	case *ast.TSArrayType:
		p.tsType(t.ElementType, typePrecPostfix)
		p.write("[]")
	case *ast.TSIndexedAccessType:
		p.tsType(t.ObjectType, typePrecPostfix)
		p.write("[")
		p.tsType(t.IndexType, typePrecConditional)
		p.write("]")
	case *ast.TSTupleType:
		p.write("[")
		list(p, t.ElementTypes, func(el ast.TSType) { p.tsType(el, typePrecConditional) })
		p.write("]")
	case *ast.TSNamedTupleMember:
		p.write(t.Label.Name)
		if t.Optional {
			p.write("?")
		}
		p.write(": ")
		p.tsType(t.ElementType, typePrecConditional)
	case *ast.TSOptionalType:
		p.tsType(t.TypeAnnotation, typePrecPostfix)
		p.write("?")
	case *ast.TSRestType:
		p.write("...")
		p.tsType(t.TypeAnnotation, typePrecPostfix)
	case *ast.TSUnionType:
		p.typeList(t.Types, " | ", typePrecIntersection)
	case *ast.TSIntersectionType:
		p.typeList(t.Types, " & ", typePrecOperator)
	case *ast.TSConditionalType:
		p.tsType(t.CheckType, typePrecUnion)
		p.write(" extends ")
		p.tsType(t.ExtendsType, typePrecUnion)
		p.write(" ? ")
		p.tsType(t.TrueType, typePrecConditional)
		p.write(" : ")
		p.tsType(t.FalseType, typePrecConditional)
	case *ast.TSInferType:
		p.write("infer " + t.TypeParameter.Name)
		if t.TypeParameter.Constraint != nil {
			p.write(" extends ")
			p.tsType(t.TypeParameter.Constraint, typePrecUnion)
		}
	case *ast.TSFunctionType:
		p.signature(t.TypeParameters, t.Params, nil)
		p.write(" => ")
		p.tsType(t.ReturnType, typePrecConditional)
	case *ast.TSConstructorType:
		if t.Abstract {
			p.write("abstract ")
		}
		p.write("new ")
		p.signature(t.TypeParameters, t.Params, nil)
		p.write(" => ")
		p.tsType(t.ReturnType, typePrecConditional)
	case *ast.TSTypeLiteral:
		p.typeMembers(t.Members)
	case *ast.TSTypeOperator:
		p.write(t.Operator + " ")
		p.tsType(t.TypeAnnotation, typePrecOperator)
	case *ast.TSTypeQuery:
		p.write("typeof ")
		p.entityName(t.ExprName)
		p.typeArguments(t.TypeArguments)
	case *ast.TSLiteralType:
		p.expr(t.Literal, precUnary)
	case *ast.TSTemplateLiteralType:
		p.template(t.Quasis, func(i int) { p.tsType(t.Types[i], typePrecConditional) })
	case *ast.TSMappedType:
		p.mappedType(t)
	case *ast.TSTypePredicate:
		if t.Asserts {
			p.write("asserts ")
		}
		p.entityName(t.ParameterName)
		if t.TypeAnnotation != nil {
			p.write(" is ")
			p.tsType(t.TypeAnnotation, typePrecConditional)
		}
	default:
		p.writef("/* unsupported type: %T */", t)
	}
}

func (p *Printer) typeList(types []ast.TSType, sep string, min int) {
	for i, t := range types {
		if i > 0 {
			p.write(sep)
		}
		p.tsType(t, min)
	}
}

// entityName prints an identifier, a qualified name or `this`.
func (p *Printer) entityName(n ast.Node) {
	switch n := n.(type) {
	case *ast.Identifier:
		p.write(n.Name)
	case *ast.TSQualifiedName:
		p.entityName(n.Left)
		p.write("." + n.Right.Name)
	case *ast.TSThisType:
		p.write("this")
	case ast.TSType:
		p.tsType(n, typePrecPrimary)
	}
}

func (p *Printer) mappedType(t *ast.TSMappedType) {
	p.write("{ ")
	switch t.Readonly {
	case "true":
		p.write("readonly ")
	case "+", "-":
		p.write(t.Readonly + "readonly ")
	}
	p.write("[" + t.TypeParameter.Name + " in ")
	p.tsType(t.TypeParameter.Constraint, typePrecConditional)
	if t.NameType != nil {
		p.write(" as ")
		p.tsType(t.NameType, typePrecConditional)
	}
	p.write("]")
	switch t.Optional {
	case "true":
		p.write("?")
	case "+", "-":
		p.write(t.Optional + "?")
	}
	if t.TypeAnnotation != nil {
		p.write(": ")
		p.tsType(t.TypeAnnotation, typePrecConditional)
	}
	p.write(" }")
}

// typeMembers prints the braces of a type literal or interface body.
func (p *Printer) typeMembers(members []ast.Node) {
	if len(members) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for _, m := range members {
		p.typeMember(m)
		p.write("; ")
	}
	p.write("}")
}

func (p *Printer) typeMember(member ast.Node) {
	switch m := member.(type) {
	case *ast.TSPropertySignature:
		if m.Readonly {
			p.write("readonly ")
		}
		p.propertyKey(m.Key, m.Computed)
		if m.Optional {
			p.write("?")
		}
		p.typeAnnotation(m.TypeAnnotation)
	case *ast.TSMethodSignature:
		if m.MethodKind == ast.MethodGet || m.MethodKind == ast.MethodSet {
			p.write(m.MethodKind + " ")
		}
		p.propertyKey(m.Key, m.Computed)
		if m.Optional {
			p.write("?")
		}
		p.signature(m.TypeParameters, m.Params, m.ReturnType)
	case *ast.TSCallSignatureDeclaration:
		p.signature(m.TypeParameters, m.Params, m.ReturnType)
	case *ast.TSConstructSignatureDeclaration:
		p.write("new ")
		p.signature(m.TypeParameters, m.Params, m.ReturnType)
	case *ast.TSIndexSignature:
		p.indexSignature(m)
	default:
		p.writef("/* unsupported type member: %T */", m)
	}
}

func (p *Printer) indexSignature(s *ast.TSIndexSignature) {
	if s.Static {
		p.write("static ")
	}
	if s.Readonly {
		p.write("readonly ")
	}
	p.write("[")
	list(p, s.Parameters, func(id *ast.Identifier) { p.pattern(id) })
	p.write("]")
	p.typeAnnotation(s.TypeAnnotation)
}

func (p *Printer) typeParameters(tps []*ast.TSTypeParameter) {
	if tps == nil {
		return
	}
	p.write("<")
	list(p, tps, func(tp *ast.TSTypeParameter) {
		if tp.Const {
			p.write("const ")
		}
		if tp.In {
			p.write("in ")
		}
		if tp.Out {
			p.write("out ")
		}
		p.write(tp.Name)
		if tp.Constraint != nil {
			p.write(" extends ")
			p.tsType(tp.Constraint, typePrecConditional)
		}
		if tp.Default != nil {
			p.write(" = ")
			p.tsType(tp.Default, typePrecConditional)
		}
	})
	p.write(">")
}

func (p *Printer) typeArguments(args []ast.TSType) {
	if args == nil {
		return
	}
	p.write("<")
	list(p, args, func(t ast.TSType) { p.tsType(t, typePrecConditional) })
	p.write(">")
}

func (p *Printer) heritage(h *ast.TSExpressionWithTypeArguments) {
	p.expr(h.Expression, precCall)
	p.typeArguments(h.TypeArguments)
}

// tsExpression prints the TypeScript expression forms. It reports false
// for anything else.
func (p *Printer) tsExpression(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.TSAsExpression:
		p.expr(e.Expression, precRelational)
		p.write(" as ")
		p.tsType(e.TypeAnnotation, typePrecConditional)
	case *ast.TSSatisfiesExpression:
		p.expr(e.Expression, precRelational)
		p.write(" satisfies ")
		p.tsType(e.TypeAnnotation, typePrecConditional)
	case *ast.TSNonNullExpression:
		p.callee(e.Expression)
		p.write("!")
	case *ast.TSTypeAssertion:
		p.write("<")
		p.tsType(e.TypeAnnotation, typePrecConditional)
		p.write(">")
		p.expr(e.Expression, precUnary)
	case *ast.TSInstantiationExpression:
		p.callee(e.Expression)
		p.typeArguments(e.TypeArguments)
	default:
		return false
	}
	return true
}

// tsStatement prints the TypeScript declaration forms. It reports false
// for anything else.
func (p *Printer) tsStatement(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.TSTypeAliasDeclaration:
		p.declare(s.Declare)
		p.write("type " + s.ID.Name)
		p.typeParameters(s.TypeParameters)
		p.write(" = ")
		p.tsType(s.TypeAnnotation, typePrecConditional)
		p.write(";")
	case *ast.TSInterfaceDeclaration:
		p.declare(s.Declare)
		p.write("interface " + s.ID.Name)
		p.typeParameters(s.TypeParameters)
		if len(s.Extends) > 0 {
			p.write(" extends ")
			list(p, s.Extends, p.heritage)
		}
		p.write(" ")
		p.interfaceBody(s.Body.Body)
	case *ast.TSEnumDeclaration:
		p.declare(s.Declare)
		if s.Const {
			p.write("const ")
		}
		p.write("enum " + s.ID.Name + " {")
		list(p, s.Members, func(m *ast.TSEnumMember) {
			p.expr(m.ID, precPrimary)
			if m.Initializer != nil {
				p.write(" = ")
				p.expr(m.Initializer, precAssign)
			}
		})
		p.write("}")
	case *ast.TSModuleDeclaration:
		p.moduleDeclaration(s)
	case *ast.TSDeclareFunction:
		p.declare(s.Declare)
		p.function(&s.Function)
	case *ast.TSExportAssignment:
		p.write("export = ")
		p.expr(s.Expression, precAssign)
		p.write(";")
	case *ast.TSImportEqualsDeclaration:
		if s.IsExport {
			p.write("export ")
		}
		p.write("import ")
		if s.TypeOnly {
			p.write("type ")
		}
		p.write(s.ID.Name + " = ")
		if ext, ok := s.ModuleReference.(*ast.TSExternalModuleReference); ok {
			p.write("require(" + ext.Expression.Raw + ")")
		} else {
			p.entityName(s.ModuleReference)
		}
		p.write(";")
	default:
		return false
	}
	return true
}

func (p *Printer) interfaceBody(members []ast.Node) {
	if len(members) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent()
	for _, m := range members {
		p.writeIndent()
		p.typeMember(m)
		p.write(";\n")
	}
	p.dedent()
	p.writeIndent()
	p.write("}")
}

func (p *Printer) moduleDeclaration(s *ast.TSModuleDeclaration) {
	p.declare(s.Declare)
	if s.ModuleKind == "global" {
		p.write("global")
	} else {
		p.write(s.ModuleKind + " ")
		p.expr(s.ID, precPrimary)
	}
	body := s.Body
	for {
		nested, ok := body.(*ast.TSModuleDeclaration)
		if !ok {
			break
		}
		p.write(".")
		p.expr(nested.ID, precPrimary)
		body = nested.Body
	}
	switch b := body.(type) {
	case *ast.TSModuleBlock:
		saved := p.ambient
		p.ambient = p.ambient || s.Declare
		p.write(" ")
		p.block(b.Body)
		p.ambient = saved
	default:
		p.write(";")
	}
}

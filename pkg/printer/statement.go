package printer

import (
	"esfront/pkg/ast"
)

// statements prints a statement list, one per line.
func (p *Printer) statements(list []ast.Statement) {
	for _, s := range list {
		p.writeIndent()
		p.statement(s)
		p.write("\n")
	}
}

// block prints `{ ... }` without a trailing newline.
func (p *Printer) block(body []ast.Statement) {
	if len(body) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent()
	p.statements(body)
	p.dedent()
	p.writeIndent()
	p.write("}")
}

// body prints the statement controlled by if, a loop, with or a label.
func (p *Printer) body(s ast.Statement) {
	p.write(" ")
	p.statement(s)
}

// statement prints s without leading indentation or trailing newline.
func (p *Printer) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		p.expressionStatement(s)
	case *ast.BlockStatement:
		p.block(s.Body)
	case *ast.EmptyStatement:
		p.write(";")
	case *ast.DebuggerStatement:
		p.write("debugger;")
	case *ast.WithStatement:
		p.write("with (")
		p.expr(s.Object, precSequence)
		p.write(")")
		p.body(s.Body)
	case *ast.ReturnStatement:
		p.write("return")
		if s.Argument != nil {
			p.write(" ")
			p.expr(s.Argument, precSequence)
		}
		p.write(";")
	case *ast.ThrowStatement:
		p.write("throw ")
		p.expr(s.Argument, precSequence)
		p.write(";")
	case *ast.LabeledStatement:
		p.write(s.Label.Name + ":")
		p.body(s.Body)
	case *ast.BreakStatement:
		p.jump("break", s.Label)
	case *ast.ContinueStatement:
		p.jump("continue", s.Label)
	case *ast.IfStatement:
		p.ifStatement(s)
	case *ast.SwitchStatement:
		p.switchStatement(s)
	case *ast.TryStatement:
		p.tryStatement(s)
	case *ast.WhileStatement:
		p.write("while (")
		p.expr(s.Test, precSequence)
		p.write(")")
		p.body(s.Body)
	case *ast.DoWhileStatement:
		p.write("do")
		p.body(s.Body)
		p.write(" while (")
		p.expr(s.Test, precSequence)
		p.write(");")
	case *ast.ForStatement:
		p.forStatement(s)
	case *ast.ForInStatement:
		p.write("for (")
		p.forLeft(s.Left)
		p.write(" in ")
		p.expr(s.Right, precSequence)
		p.write(")")
		p.body(s.Body)
	case *ast.ForOfStatement:
		p.write("for ")
		if s.Await {
			p.write("await ")
		}
		p.write("(")
		p.forLeft(s.Left)
		p.write(" of ")
		p.expr(s.Right, precAssign)
		p.write(")")
		p.body(s.Body)
	case *ast.VariableDeclaration:
		p.variableDeclaration(s)
		p.write(";")
	case *ast.FunctionDeclaration:
		p.function(&s.Function)
	case *ast.ClassDeclaration:
		p.class(&s.Class)
	case *ast.ImportDeclaration:
		p.importDeclaration(s)
	case *ast.ExportNamedDeclaration:
		p.exportNamed(s)
	case *ast.ExportDefaultDeclaration:
		p.exportDefault(s)
	case *ast.ExportAllDeclaration:
		p.exportAll(s)
	default:
		if !p.tsStatement(stmt) {
			p.writef("/* unsupported statement: %T */", s)
		}
	}
}

func (p *Printer) expressionStatement(s *ast.ExpressionStatement) {
	text := p.capture(func() { p.expr(s.Expression, precSequence) })
	if startsAmbiguously(text) {
		text = "(" + text + ")"
	}
	p.write(text + ";")
}

func (p *Printer) jump(keyword string, label *ast.Identifier) {
	p.write(keyword)
	if label != nil {
		p.write(" " + label.Name)
	}
	p.write(";")
}

func (p *Printer) ifStatement(s *ast.IfStatement) {
	p.write("if (")
	p.expr(s.Test, precSequence)
	p.write(")")
	cons := s.Consequent
	if s.Alternate != nil && danglingIf(cons) {
		cons = &ast.BlockStatement{Body: []ast.Statement{cons}}
	}
	p.body(cons)
	if s.Alternate != nil {
		p.write(" else")
		p.body(s.Alternate)
	}
}

// danglingIf reports whether an else printed after s would attach to an
// if statement inside it.
func danglingIf(s ast.Statement) bool {
	switch s := s.(type) {
	case *ast.IfStatement:
		if s.Alternate == nil {
			return true
		}
		return danglingIf(s.Alternate)
	case *ast.LabeledStatement:
		return danglingIf(s.Body)
	case *ast.WhileStatement:
		return danglingIf(s.Body)
	case *ast.WithStatement:
		return danglingIf(s.Body)
	case *ast.ForStatement:
		return danglingIf(s.Body)
	case *ast.ForInStatement:
		return danglingIf(s.Body)
	case *ast.ForOfStatement:
		return danglingIf(s.Body)
	}
	return false
}

func (p *Printer) switchStatement(s *ast.SwitchStatement) {
	p.write("switch (")
	p.expr(s.Discriminant, precSequence)
	p.write(") {\n")
	p.indent()
	for _, c := range s.Cases {
		p.writeIndent()
		if c.Test != nil {
			p.write("case ")
			p.expr(c.Test, precSequence)
			p.write(":\n")
		} else {
			p.write("default:\n")
		}
		p.indent()
		p.statements(c.Consequent)
		p.dedent()
	}
	p.dedent()
	p.writeIndent()
	p.write("}")
}

func (p *Printer) tryStatement(s *ast.TryStatement) {
	p.write("try ")
	p.block(s.Block.Body)
	if h := s.Handler; h != nil {
		p.write(" catch ")
		if h.Param != nil {
			p.write("(")
			p.pattern(h.Param)
			p.write(") ")
		}
		p.block(h.Body.Body)
	}
	if s.Finalizer != nil {
		p.write(" finally ")
		p.block(s.Finalizer.Body)
	}
}

func (p *Printer) forStatement(s *ast.ForStatement) {
	p.write("for (")
	p.noIn = true
	switch init := s.Init.(type) {
	case *ast.VariableDeclaration:
		p.variableDeclaration(init)
	case ast.Expression:
		p.forInitExpression(init)
	}
	p.noIn = false
	p.write(";")
	if s.Test != nil {
		p.write(" ")
		p.expr(s.Test, precSequence)
	}
	p.write(";")
	if s.Update != nil {
		p.write(" ")
		p.expr(s.Update, precSequence)
	}
	p.write(")")
	p.body(s.Body)
}

// forInitExpression keeps an expression starting with `let` from being
// read as a declaration in a for head.
func (p *Printer) forInitExpression(e ast.Expression) {
	text := p.capture(func() { p.expr(e, precSequence) })
	if startsWithWord(text, "let") {
		text = "(" + text + ")"
	}
	p.write(text)
}

func (p *Printer) forLeft(left ast.Node) {
	switch l := left.(type) {
	case *ast.VariableDeclaration:
		p.variableDeclaration(l)
	case ast.Pattern:
		text := p.capture(func() { p.pattern(l) })
		if startsWithWord(text, "let") || startsWithWord(text, "async") {
			text = "(" + text + ")"
		}
		p.write(text)
	}
}

func (p *Printer) variableDeclaration(d *ast.VariableDeclaration) {
	p.declare(d.Declare)
	p.write(d.DeclKind + " ")
	list(p, d.Declarations, func(v *ast.VariableDeclarator) {
		p.bindingTarget(v.ID, v.Definite)
		if v.Init != nil {
			p.write(" = ")
			p.expr(v.Init, precAssign)
		}
	})
}

// bindingTarget prints a declared pattern; definite adds the `!` of
// `let x!: T`.
func (p *Printer) bindingTarget(target ast.Pattern, definite bool) {
	id, ok := target.(*ast.Identifier)
	if !ok || !definite {
		p.pattern(target)
		return
	}
	p.write(id.Name + "!")
	p.typeAnnotation(id.TypeAnnotation)
}

// --- Functions and classes ---

// function prints a function declaration or expression.
func (p *Printer) function(fn *ast.Function) {
	if fn.Async {
		p.write("async ")
	}
	p.write("function")
	if fn.Generator {
		p.write("*")
	}
	if fn.ID != nil {
		p.write(" " + fn.ID.Name)
	}
	p.signature(fn.TypeParameters, fn.Params, fn.ReturnType)
	if fn.Body == nil {
		p.write(";")
		return
	}
	p.write(" ")
	p.block(fn.Body.Body)
}

// signature prints `<T>(params): R`.
func (p *Printer) signature(tps []*ast.TSTypeParameter, params []ast.Pattern, ret ast.TSType) {
	p.typeParameters(tps)
	p.write("(")
	list(p, params, p.pattern)
	p.write(")")
	if ret != nil {
		p.write(": ")
		p.tsType(ret, typePrecConditional)
	}
}

func (p *Printer) class(c *ast.Class) {
	p.declare(c.Declare)
	if c.Abstract {
		p.write("abstract ")
	}
	p.write("class")
	if c.ID != nil {
		p.write(" " + c.ID.Name)
	}
	p.typeParameters(c.TypeParameters)
	if c.SuperClass != nil {
		p.write(" extends ")
		p.expr(c.SuperClass, precNew)
		p.typeArguments(c.SuperTypeArguments)
	}
	if len(c.Implements) > 0 {
		p.write(" implements ")
		list(p, c.Implements, p.heritage)
	}
	p.write(" ")
	if len(c.Body.Body) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent()
	for _, m := range c.Body.Body {
		p.writeIndent()
		p.classMember(m)
		p.write("\n")
	}
	p.dedent()
	p.writeIndent()
	p.write("}")
}

func (p *Printer) modifiers(m ast.Modifiers, static bool) {
	if m.Declare {
		p.write("declare ")
	}
	if m.Accessibility != "" {
		p.write(m.Accessibility + " ")
	}
	if static {
		p.write("static ")
	}
	if m.Abstract {
		p.write("abstract ")
	}
	if m.Override {
		p.write("override ")
	}
	if m.Readonly {
		p.write("readonly ")
	}
}

func (p *Printer) classMember(member ast.Node) {
	switch m := member.(type) {
	case *ast.MethodDefinition:
		p.modifiers(m.Modifiers, m.Static)
		kind := m.MethodKind
		if kind == ast.MethodConstructor {
			kind = ast.MethodMethod
		}
		p.method(m.Key, m.Computed, kind, m.Value, m.Optional)
	case *ast.PropertyDefinition:
		p.modifiers(m.Modifiers, m.Static)
		p.propertyKey(m.Key, m.Computed)
		if m.Optional {
			p.write("?")
		}
		if m.Definite {
			p.write("!")
		}
		p.typeAnnotation(m.TypeAnnotation)
		if m.Value != nil {
			p.write(" = ")
			p.expr(m.Value, precAssign)
		}
		p.write(";")
	case *ast.StaticBlock:
		p.write("static ")
		p.block(m.Body)
	case *ast.TSIndexSignature:
		p.indexSignature(m)
		p.write(";")
	default:
		p.writef("/* unsupported class member: %T */", m)
	}
}

// method prints a class or object method after its modifiers.
func (p *Printer) method(key ast.Expression, computed bool, kind string, fn *ast.FunctionExpression, optional bool) {
	if fn.Async {
		p.write("async ")
	}
	if fn.Generator {
		p.write("*")
	}
	if kind == ast.MethodGet || kind == ast.MethodSet {
		p.write(kind + " ")
	}
	p.propertyKey(key, computed)
	if optional {
		p.write("?")
	}
	p.signature(fn.TypeParameters, fn.Params, fn.ReturnType)
	if fn.Body == nil {
		p.write(";")
		return
	}
	p.write(" ")
	p.block(fn.Body.Body)
}

func (p *Printer) propertyKey(key ast.Expression, computed bool) {
	if computed {
		p.write("[")
		p.expr(key, precAssign)
		p.write("]")
		return
	}
	p.expr(key, precPrimary)
}

// --- Modules ---

func (p *Printer) importDeclaration(d *ast.ImportDeclaration) {
	p.write("import ")
	if d.TypeOnly {
		p.write("type ")
	}
	if len(d.Specifiers) > 0 {
		var named []*ast.ImportSpecifier
		first := true
		sep := func() {
			if !first {
				p.write(", ")
			}
			first = false
		}
		for _, s := range d.Specifiers {
			switch s := s.(type) {
			case *ast.ImportDefaultSpecifier:
				sep()
				p.write(s.Local.Name)
			case *ast.ImportNamespaceSpecifier:
				sep()
				p.write("* as " + s.Local.Name)
			case *ast.ImportSpecifier:
				named = append(named, s)
			}
		}
		if named != nil {
			sep()
			p.write("{")
			list(p, named, func(s *ast.ImportSpecifier) {
				if s.TypeOnly {
					p.write("type ")
				}
				if id, ok := s.Imported.(*ast.Identifier); !ok || id.Name != s.Local.Name {
					p.expr(s.Imported, precPrimary)
					p.write(" as ")
				}
				p.write(s.Local.Name)
			})
			p.write("}")
		}
		p.write(" from ")
	}
	p.write(d.Source.Raw)
	p.attributes(d.Attributes)
	p.write(";")
}

func (p *Printer) attributes(attrs []*ast.ImportAttribute) {
	if len(attrs) == 0 {
		return
	}
	p.write(" with {")
	list(p, attrs, func(a *ast.ImportAttribute) {
		p.expr(a.Key, precPrimary)
		p.write(": " + a.Value.Raw)
	})
	p.write("}")
}

func (p *Printer) exportNamed(d *ast.ExportNamedDeclaration) {
	p.write("export ")
	if d.Declaration != nil {
		p.statement(d.Declaration)
		return
	}
	if d.TypeOnly {
		p.write("type ")
	}
	p.write("{")
	list(p, d.Specifiers, func(s *ast.ExportSpecifier) {
		if s.TypeOnly {
			p.write("type ")
		}
		p.expr(s.Local, precPrimary)
		if ast.ModuleExportName(s.Local) != ast.ModuleExportName(s.Exported) || s.Local.Kind() != s.Exported.Kind() {
			p.write(" as ")
			p.expr(s.Exported, precPrimary)
		}
	})
	p.write("}")
	if d.Source != nil {
		p.write(" from " + d.Source.Raw)
		p.attributes(d.Attributes)
	}
	p.write(";")
}

func (p *Printer) exportDefault(d *ast.ExportDefaultDeclaration) {
	p.write("export default ")
	switch decl := d.Declaration.(type) {
	case ast.Statement:
		p.statement(decl)
	case ast.Expression:
		text := p.capture(func() { p.expr(decl, precAssign) })
		if startsAmbiguously(text) {
			text = "(" + text + ")"
		}
		p.write(text + ";")
	}
}

func (p *Printer) exportAll(d *ast.ExportAllDeclaration) {
	p.write("export ")
	if d.TypeOnly {
		p.write("type ")
	}
	p.write("*")
	if d.Exported != nil {
		p.write(" as ")
		p.expr(d.Exported, precPrimary)
	}
	p.write(" from " + d.Source.Raw)
	p.attributes(d.Attributes)
	p.write(";")
}

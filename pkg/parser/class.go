package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/scope"
	"esfront/pkg/source"
)

// parseClassDeclaration parses `class Name ... { body }`. The name may be
// left out in a default export.
func (p *Parser) parseClassDeclaration(start source.Position, defaultExport bool) (ast.Statement, error) {
	decl := &ast.ClassDeclaration{}
	if err := p.parseClass(&decl.Class, !defaultExport); err != nil {
		return nil, err
	}
	if decl.ID != nil {
		p.declare(decl.ID, bindClass)
	}
	return finish(p, decl, start), nil
}

func (p *Parser) parseClassExpression(start source.Position) (ast.Expression, error) {
	expr := &ast.ClassExpression{}
	if err := p.parseClass(&expr.Class, false); err != nil {
		return nil, err
	}
	return finish(p, expr, start), nil
}

// parseClass parses everything from the class keyword on. The name and
// the heritage are strict code, like the body.
func (p *Parser) parseClass(c *ast.Class, requireName bool) error {
	p.nextToken()
	outerStrict := p.lexical.InStrict()
	p.l.SetStrict(true)
	if p.isIdentifierToken() && !(p.ts && p.isContextual("implements")) {
		id, err := p.parseIdentifier()
		if err != nil {
			return err
		}
		p.checkClassName(id)
		c.ID = id
	} else if requireName {
		return p.unexpected()
	}
	if p.ts && p.cur() == lexer.LT {
		tps, err := p.tsParseTypeParameters()
		if err != nil {
			return err
		}
		c.TypeParameters = tps
	}
	if p.eat(lexer.EXTENDS) {
		super, err := p.parseExprSubscripts()
		if err != nil {
			return err
		}
		c.SuperClass = super
		if p.ts && p.cur() == lexer.LT {
			targs, err := p.tsParseTypeArguments()
			if err != nil {
				return err
			}
			c.SuperTypeArguments = targs
		}
	}
	if p.ts && p.eatContextual("implements") {
		list, err := p.tsParseHeritageList()
		if err != nil {
			return err
		}
		c.Implements = list
	}
	body, err := p.parseClassBody(c.SuperClass != nil)
	if err != nil {
		return err
	}
	c.Body = body
	p.l.SetStrict(outerStrict)
	return nil
}

// checkClassName applies the strict-mode binding rules to a class name.
func (p *Parser) checkClassName(id *ast.Identifier) {
	if p.ctx.inType {
		return
	}
	switch {
	case id.Name == "eval" || id.Name == "arguments":
		p.errs.Report(errors.MsgStrictEvalArguments, id.Start())
	case id.Name == "yield":
		p.errs.Report(errors.MsgYieldAsIdentifier, id.Start())
	case id.Name == "let":
		p.errs.Report(errors.MsgLetInLexicalBinding, id.Start())
	case strictReserved[id.Name]:
		p.errs.Report(errors.MsgUnexpectedStrictWord, id.Start())
	case id.Name == "await" && p.awaitReserved():
		p.errs.Report(errors.MsgAwaitAsIdentifier, id.Start())
	}
}

func (p *Parser) parseClassBody(extends bool) (*ast.ClassBody, error) {
	start := p.startPos()
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	p.enterClassScope(extends)
	body := &ast.ClassBody{}
	for p.cur() != lexer.RBRACE {
		if p.eat(lexer.SEMICOLON) {
			continue
		}
		if p.cur() == lexer.EOF || p.cur() == lexer.ILLEGAL {
			return nil, p.unexpected()
		}
		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		body.Body = append(body.Body, member)
	}
	p.exitClassScope()
	p.nextToken()
	return finish(p, body, start), nil
}

// isModifier reports whether the current token is the given modifier
// word rather than a member named after it.
func (p *Parser) isModifier(static bool) bool {
	if p.cur() != lexer.IDENT || p.l.Escaped() {
		return false
	}
	next := p.peek()
	if next.Type == lexer.ASTERISK || isPropertyNameStart(next.Type) {
		return static || !next.NewlineBefore
	}
	return static && next.Type == lexer.LBRACE
}

// memberName returns the static name of a class member key, or "" when the
// key is computed.
func memberName(key ast.Expression, computed bool) string {
	if computed {
		return ""
	}
	return propertyKeyName(key)
}

func (p *Parser) parseClassMember() (ast.Node, error) {
	start := p.startPos()
	var mods ast.Modifiers
	static := false
	seen := map[string]bool{}
modifiers:
	for p.cur() == lexer.IDENT {
		word := p.l.Literal()
		switch word {
		case "static":
			if !p.isModifier(true) {
				break modifiers
			}
			if p.peekTokenIs(lexer.LBRACE) && len(seen) == 0 {
				return p.parseStaticBlock(start)
			}
			static = true
		case "public", "private", "protected", "abstract", "override", "readonly", "declare":
			if !p.ts || !p.isModifier(false) {
				break modifiers
			}
			switch word {
			case "abstract":
				mods.Abstract = true
			case "override":
				mods.Override = true
			case "readonly":
				mods.Readonly = true
			case "declare":
				mods.Declare = true
			default:
				if mods.Accessibility != "" && mods.Accessibility != word {
					p.report(p.startPos(), errors.MsgTSAccessibilityHere, word)
				}
				mods.Accessibility = word
			}
		default:
			break modifiers
		}
		if seen[word] {
			p.report(p.startPos(), errors.MsgTSDuplicateModifier, word)
		}
		seen[word] = true
		p.nextToken()
	}

	if p.ts && p.cur() == lexer.LBRACKET && p.tsIsIndexSignature() {
		return p.tsParseIndexSignature(start, mods.Readonly, static)
	}

	async, generator := false, false
	kind := ast.MethodMethod
	if p.isContextual("async") {
		if next := p.peek(); !next.NewlineBefore && (isPropertyNameStart(next.Type) || next.Type == lexer.ASTERISK) {
			async = true
			p.nextToken()
		}
	}
	if p.cur() == lexer.ASTERISK {
		generator = true
		p.nextToken()
	}
	if !async && !generator && (p.isContextual("get") || p.isContextual("set")) && isPropertyNameStart(p.peek().Type) {
		kind = p.l.Value()
		p.nextToken()
	}

	p.lexical.EnterPropertyName()
	key, computed, err := p.parseClassKey()
	if err != nil {
		return nil, err
	}
	p.lexical.ExitPropertyName()
	private, _ := key.(*ast.PrivateName)
	name := memberName(key, computed)
	if private != nil {
		name = ""
		if private.Name == "constructor" {
			p.errs.Report(errors.MsgPrivateConstructor, private.Start())
		}
	}
	if static && name == "prototype" {
		p.errs.Report(errors.MsgStaticPrototype, key.Start())
	}
	if p.ts && p.cur() == lexer.QUESTION {
		mods.Optional = true
		p.nextToken()
	}

	if p.cur() == lexer.LPAREN || (p.ts && p.cur() == lexer.LT) || async || generator || kind != ast.MethodMethod {
		md, err := p.parseClassMethod(key, name, kind, async, generator, static, computed, mods)
		if err != nil {
			return nil, err
		}
		if private != nil && md.Value.Body != nil {
			p.definePrivate(private, md.MethodKind, static)
		}
		return finish(p, md, start), nil
	}

	if name == "constructor" {
		p.errs.Report(errors.MsgFieldConstructor, key.Start())
	}
	field := &ast.PropertyDefinition{Key: key, Computed: computed, Static: static, Modifiers: mods}
	if p.ts && p.cur() == lexer.BANG && !p.l.NewlineBefore() {
		p.nextToken()
		field.Definite = true
	}
	if p.ts && p.cur() == lexer.COLON {
		ann, err := p.tsParseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		field.TypeAnnotation = ann
	}
	if p.eat(lexer.ASSIGN) {
		p.pushSuper(true, false)
		p.pushIn(false)
		value, err := p.parseMaybeAssign()
		p.popIn()
		if err != nil {
			return nil, err
		}
		p.popSuper()
		field.Value = value
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	if private != nil {
		p.definePrivate(private, ast.MethodMethod, static)
	}
	return finish(p, field, start), nil
}

// parseClassKey parses a property name, private names included.
func (p *Parser) parseClassKey() (ast.Expression, bool, error) {
	if p.cur() == lexer.PRIVATE_NAME {
		start := p.startPos()
		name := p.l.Value()
		p.nextToken()
		return finish(p, &ast.PrivateName{Name: name}, start), false, nil
	}
	return p.parsePropertyName()
}

func (p *Parser) parseClassMethod(key ast.Expression, name, kind string, async, generator, static, computed bool, mods ast.Modifiers) (*ast.MethodDefinition, error) {
	isCtor := !static && name == "constructor"
	if isCtor {
		switch {
		case kind != ast.MethodMethod:
			p.report(key.Start(), errors.MsgConstructorKind, "n accessor")
		case generator:
			p.report(key.Start(), errors.MsgConstructorKind, " generator")
		case async:
			p.report(key.Start(), errors.MsgConstructorKind, "n async method")
		}
		p.lexical.EnterCtor()
	}
	fn, err := p.parseMethod(async, generator, isCtor && p.lexical.ClassExtends(), p.ts)
	if err != nil {
		return nil, err
	}
	if isCtor {
		p.lexical.ExitCtor()
		if fn.Body != nil && p.lexical.TestAndSetCtor() {
			p.errs.Report(errors.MsgDuplicateConstructor, key.Start())
		}
		if kind == ast.MethodMethod {
			kind = ast.MethodConstructor
		}
	}
	if kind == ast.MethodGet || kind == ast.MethodSet {
		p.checkAccessorParams(kind, fn)
	}
	if mods.Abstract && fn.Body != nil {
		p.report(key.Start(), errors.MsgTSAbstractWithBody, name)
	}
	return &ast.MethodDefinition{
		Key:        key,
		Value:      fn,
		MethodKind: kind,
		Computed:   computed,
		Static:     static,
		Modifiers:  mods,
	}, nil
}

// definePrivate declares #name in the innermost class. Getters and
// setters of the same placement may share a name.
func (p *Parser) definePrivate(name *ast.PrivateName, kind string, static bool) {
	pk := scope.PrivateOther
	switch {
	case kind == ast.MethodGet && static:
		pk = scope.PrivateStaticGet
	case kind == ast.MethodSet && static:
		pk = scope.PrivateStaticSet
	case kind == ast.MethodGet:
		pk = scope.PrivateGet
	case kind == ast.MethodSet:
		pk = scope.PrivateSet
	}
	p.symbols.DefinePrivateName(name.Name, name.Start(), pk)
}

// parseStaticBlock parses `static { ... }`. The block has its own var
// scope and is strict code where await is reserved.
func (p *Parser) parseStaticBlock(start source.Position) (*ast.StaticBlock, error) {
	p.nextToken() // static
	p.nextToken() // {
	p.lexical.EnterStaticBlock()
	p.symbols.EnterFunction()
	p.pushSuper(true, false)
	body, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	p.popSuper()
	p.symbols.ExitFunction()
	p.lexical.Exit()
	p.nextToken()
	return finish(p, &ast.StaticBlock{Body: body}, start), nil
}

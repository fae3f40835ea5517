package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/source"
)

// parseImport parses an import declaration from the import keyword.
func (p *Parser) parseImport() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	decl := &ast.ImportDeclaration{}
	if p.cur() != lexer.STRING {
		if p.ts && p.isContextual("type") {
			if next := p.peek(); next.Type == lexer.LBRACE || next.Type == lexer.ASTERISK ||
				(isIdentifierType(next.Type) && next.Literal != "from") {
				decl.TypeOnly = true
				p.nextToken()
			}
		}
		if p.ts && p.isIdentifierToken() && p.peekTokenIs(lexer.ASSIGN) {
			return p.tsParseImportEquals(start, false, decl.TypeOnly)
		}
		if err := p.parseImportClause(decl); err != nil {
			return nil, err
		}
		if err := p.expectContextual("from"); err != nil {
			return nil, err
		}
		if p.cur() != lexer.STRING {
			return nil, p.unexpected()
		}
	}
	src, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}
	decl.Source = src
	if decl.Attributes, err = p.parseImportAttributes(); err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, decl, start), nil
}

// parseImportClause parses the default, namespace and named bindings of
// an import. Every imported name is an immutable lexical binding.
func (p *Parser) parseImportClause(decl *ast.ImportDeclaration) error {
	if p.isIdentifierToken() {
		start := p.startPos()
		local, err := p.parseBindingIdentifier(true)
		if err != nil {
			return err
		}
		p.declare(local, bindConst)
		decl.Specifiers = append(decl.Specifiers, finish(p, &ast.ImportDefaultSpecifier{Local: local}, start))
		if !p.eat(lexer.COMMA) {
			return nil
		}
	}
	switch p.cur() {
	case lexer.ASTERISK:
		start := p.startPos()
		p.nextToken()
		if err := p.expectContextual("as"); err != nil {
			return err
		}
		local, err := p.parseBindingIdentifier(true)
		if err != nil {
			return err
		}
		p.declare(local, bindConst)
		decl.Specifiers = append(decl.Specifiers, finish(p, &ast.ImportNamespaceSpecifier{Local: local}, start))
		return nil
	case lexer.LBRACE:
		p.nextToken()
		for p.cur() != lexer.RBRACE {
			spec, err := p.parseImportSpecifier()
			if err != nil {
				return err
			}
			decl.Specifiers = append(decl.Specifiers, spec)
			if p.cur() != lexer.RBRACE {
				if err := p.expect(lexer.COMMA); err != nil {
					return err
				}
			}
		}
		p.nextToken()
		return nil
	}
	return p.unexpected()
}

func (p *Parser) parseImportSpecifier() (*ast.ImportSpecifier, error) {
	start := p.startPos()
	spec := &ast.ImportSpecifier{}
	if p.ts && p.isContextual("type") {
		if next := p.peek(); next.Type == lexer.STRING || (lexer.IsIdentifierName(next.Type) && next.Literal != "as") {
			spec.TypeOnly = true
			p.nextToken()
		}
	}
	tok := p.l.Token()
	imported, err := p.parseModuleExportName()
	if err != nil {
		return nil, err
	}
	spec.Imported = imported
	if p.eatContextual("as") {
		local, err := p.parseBindingIdentifier(true)
		if err != nil {
			return nil, err
		}
		spec.Local = local
	} else {
		id, ok := imported.(*ast.Identifier)
		if !ok {
			return nil, p.unexpected()
		}
		if !isIdentifierType(tok.Type) {
			return nil, p.fatal(tok.Start, errors.MsgUnexpectedReserved)
		}
		p.checkBindingIdentifier(id.Name, id.Start(), true)
		spec.Local = p.arena.NewIdentifier(id.Name, id.Start(), id.End())
	}
	p.declare(spec.Local, bindConst)
	return finish(p, spec, start), nil
}

// parseModuleExportName parses an IdentifierName or a string literal.
func (p *Parser) parseModuleExportName() (ast.Expression, error) {
	if p.cur() == lexer.STRING {
		return p.parseStringLiteral()
	}
	return p.parseIdentifierName()
}

// parseImportAttributes parses `with { key: "value" }` after a module
// specifier; the legacy `assert` keyword is accepted as well.
func (p *Parser) parseImportAttributes() ([]*ast.ImportAttribute, error) {
	if p.cur() != lexer.WITH && !(p.isContextual("assert") && !p.l.NewlineBefore()) {
		return nil, nil
	}
	if !p.cfg.ImportAttributes() {
		p.errs.Report(errors.MsgImportAttributesDisabled, p.startPos())
	}
	p.nextToken()
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	attrs := []*ast.ImportAttribute{}
	seen := map[string]bool{}
	for p.cur() != lexer.RBRACE {
		start := p.startPos()
		key, err := p.parseModuleExportName()
		if err != nil {
			return nil, err
		}
		name := ast.ModuleExportName(key)
		if seen[name] {
			p.report(start, errors.MsgDuplicateImportAttribute, name)
		}
		seen[name] = true
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		if p.cur() != lexer.STRING {
			return nil, p.unexpected()
		}
		value, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, finish(p, &ast.ImportAttribute{Key: key, Value: value}, start))
		if p.cur() != lexer.RBRACE {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return attrs, nil
}

// parseExport parses an export declaration from the export keyword.
func (p *Parser) parseExport() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	switch {
	case p.cur() == lexer.ASTERISK:
		return p.parseExportAll(start, false)
	case p.cur() == lexer.DEFAULT:
		return p.parseExportDefault(start)
	case p.cur() == lexer.LBRACE:
		return p.parseExportNamed(start, false)
	case p.ts && p.isContextual("type") && p.peekTokenIs(lexer.LBRACE):
		p.nextToken()
		return p.parseExportNamed(start, true)
	case p.ts && p.isContextual("type") && p.peekTokenIs(lexer.ASTERISK):
		p.nextToken()
		return p.parseExportAll(start, true)
	case p.ts && p.cur() == lexer.ASSIGN:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.semicolon(); err != nil {
			return nil, err
		}
		return finish(p, &ast.TSExportAssignment{Expression: expr}, start), nil
	case p.ts && p.cur() == lexer.IMPORT:
		p.nextToken()
		typeOnly := false
		if p.isContextual("type") && isIdentifierType(p.peek().Type) {
			typeOnly = true
			p.nextToken()
		}
		return p.tsParseImportEquals(start, true, typeOnly)
	}
	if !p.isExportableDeclaration() {
		return nil, p.unexpected()
	}
	decl, err := p.parseStatementListItem(false)
	if err != nil {
		return nil, err
	}
	p.declareExportedBindings(decl)
	return finish(p, &ast.ExportNamedDeclaration{Declaration: decl, Specifiers: []*ast.ExportSpecifier{}}, start), nil
}

// isExportableDeclaration reports whether the current token starts a
// declaration that `export` may prefix.
func (p *Parser) isExportableDeclaration() bool {
	switch p.cur() {
	case lexer.VAR, lexer.LET, lexer.CONST, lexer.FUNCTION, lexer.CLASS:
		return true
	case lexer.ENUM:
		return p.ts
	case lexer.IDENT:
		if p.isAsyncFunction() {
			return true
		}
		if !p.ts || p.l.Escaped() {
			return false
		}
		switch p.l.Literal() {
		case "interface", "type", "declare", "abstract", "namespace", "module", "enum":
			return isIdentifierType(p.peek().Type) || p.peek().Type == lexer.STRING || p.peek().Type == lexer.CLASS ||
				lexer.IsIdentifierName(p.peek().Type)
		}
	}
	return false
}

// declareExportedBindings records the names a declaration exports.
func (p *Parser) declareExportedBindings(decl ast.Statement) {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		for _, v := range d.Declarations {
			for _, id := range ast.BoundNames(v.ID, nil) {
				p.declareExport(id.Name, id.Start())
			}
		}
	case *ast.FunctionDeclaration:
		p.declareExport(d.ID.Name, d.ID.Start())
	case *ast.ClassDeclaration:
		p.declareExport(d.ID.Name, d.ID.Start())
	case *ast.TSEnumDeclaration:
		p.declareExport(d.ID.Name, d.ID.Start())
	}
}

func (p *Parser) parseExportAll(start source.Position, typeOnly bool) (ast.Statement, error) {
	p.nextToken() // '*'
	decl := &ast.ExportAllDeclaration{TypeOnly: typeOnly}
	if p.eatContextual("as") {
		exported, err := p.parseModuleExportName()
		if err != nil {
			return nil, err
		}
		p.declareExport(ast.ModuleExportName(exported), exported.Start())
		decl.Exported = exported
	}
	if err := p.expectContextual("from"); err != nil {
		return nil, err
	}
	if p.cur() != lexer.STRING {
		return nil, p.unexpected()
	}
	src, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}
	decl.Source = src
	if decl.Attributes, err = p.parseImportAttributes(); err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, decl, start), nil
}

// parseExportNamed parses `export { a, b as c } [from "m"]`. Without a
// source every local must be a declared top-level name.
func (p *Parser) parseExportNamed(start source.Position, typeOnly bool) (ast.Statement, error) {
	p.nextToken() // '{'
	decl := &ast.ExportNamedDeclaration{TypeOnly: typeOnly, Specifiers: []*ast.ExportSpecifier{}}
	var locals []lexer.Token
	for p.cur() != lexer.RBRACE {
		sstart := p.startPos()
		spec := &ast.ExportSpecifier{}
		if p.ts && p.isContextual("type") {
			if next := p.peek(); next.Type == lexer.STRING || (lexer.IsIdentifierName(next.Type) && next.Literal != "as") {
				spec.TypeOnly = true
				p.nextToken()
			}
		}
		tok := p.l.Token()
		local, err := p.parseModuleExportName()
		if err != nil {
			return nil, err
		}
		spec.Local, spec.Exported = local, local
		if p.eatContextual("as") {
			exported, err := p.parseModuleExportName()
			if err != nil {
				return nil, err
			}
			spec.Exported = exported
		}
		decl.Specifiers = append(decl.Specifiers, finish(p, spec, sstart))
		locals = append(locals, tok)
		if p.cur() != lexer.RBRACE {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()

	if p.eatContextual("from") {
		if p.cur() != lexer.STRING {
			return nil, p.unexpected()
		}
		src, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		decl.Source = src
		if decl.Attributes, err = p.parseImportAttributes(); err != nil {
			return nil, err
		}
	}
	for i, spec := range decl.Specifiers {
		p.declareExport(ast.ModuleExportName(spec.Exported), spec.Exported.Start())
		if decl.Source != nil {
			continue
		}
		tok := locals[i]
		switch {
		case tok.Type == lexer.STRING:
			p.errs.Report(errors.MsgStringExportNoFrom, tok.Start)
		case !isIdentifierType(tok.Type):
			p.errs.Report(errors.MsgUnexpectedReserved, tok.Start)
		default:
			p.checkIdentifierReference(tok.Value, tok.Start)
			// type-only names are not value bindings
			if !p.ts {
				p.symbols.ExportLocal(tok.Value, tok.Start)
			}
		}
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, decl, start), nil
}

func (p *Parser) parseExportDefault(start source.Position) (ast.Statement, error) {
	p.declareExport("default", p.startPos())
	p.nextToken()
	dstart := p.startPos()
	var decl ast.Node
	var err error
	switch {
	case p.cur() == lexer.FUNCTION:
		decl, err = p.parseFunctionDeclaration(dstart, false, true)
	case p.isAsyncFunction():
		p.nextToken()
		decl, err = p.parseFunctionDeclaration(dstart, true, true)
	case p.cur() == lexer.CLASS:
		decl, err = p.parseClassDeclaration(dstart, true)
	case p.ts && p.isContextual("abstract") && p.peekTokenIs(lexer.CLASS) && !p.peek().NewlineBefore:
		p.nextToken()
		var cls ast.Statement
		if cls, err = p.parseClassDeclaration(dstart, true); err == nil {
			c := cls.(*ast.ClassDeclaration)
			c.Abstract = true
			c.SetLoc(dstart, c.End())
			decl = c
		}
	case p.ts && p.isContextual("interface") && isIdentifierType(p.peek().Type):
		decl, err = p.tsParseInterface(dstart, false)
	default:
		var expr ast.Expression
		if expr, err = p.parseMaybeAssign(); err == nil {
			err = p.semicolon()
			decl = expr
		}
	}
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.ExportDefaultDeclaration{Declaration: decl}, start), nil
}

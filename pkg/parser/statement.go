package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/scope"
	"esfront/pkg/source"
)

// stmtContext says where a statement appears, which decides whether
// declarations may stand there.
type stmtContext uint8

const (
	ctxList   stmtContext = iota // statement list
	ctxIf                        // body of if or else
	ctxLabel                     // labeled statement inside a statement list
	ctxNested                    // body of a loop or with, or a label inside one
)

func (p *Parser) parseProgram() (*ast.Program, error) {
	p.enterProgram()
	prog := &ast.Program{SourceType: p.cfg.SourceType}
	body, _, err := p.parseBody(lexer.EOF, true)
	if err != nil {
		return nil, err
	}
	end := p.startPos()
	p.exitProgram()
	prog.Body = body
	prog.SetLoc(source.Position{Line: 1, Column: 1, Offset: 0}, end)
	return prog, nil
}

// parseBody reads a directive prologue and the statements that follow it
// up to end. It reports whether a 'use strict' directive was found.
func (p *Parser) parseBody(end lexer.TokenType, topLevel bool) ([]ast.Statement, bool, error) {
	var body []ast.Statement
	useStrict := false
	prologue := true
	// directives with legacy octal escapes seen before 'use strict'
	var octals []source.Position
	for p.cur() != end {
		if p.cur() == lexer.EOF || p.cur() == lexer.ILLEGAL {
			return nil, false, p.unexpected()
		}
		if prologue && p.cur() != lexer.STRING {
			prologue = false
		}
		if !prologue {
			stmt, err := p.parseStatementListItem(topLevel)
			if err != nil {
				return nil, false, err
			}
			body = append(body, stmt)
			continue
		}
		tokStart, raw, octal := p.startPos(), p.l.Literal(), p.l.LegacyOctal()
		stmt, err := p.parseStatementListItem(topLevel)
		if err != nil {
			return nil, false, err
		}
		body = append(body, stmt)
		es, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			prologue = false
			continue
		}
		lit, ok := es.Expression.(*ast.StringLiteral)
		if !ok || lit.Parenthesized() {
			prologue = false
			continue
		}
		es.Directive = raw[1 : len(raw)-1]
		if octal {
			octals = append(octals, tokStart)
		}
		if es.Directive != "use strict" || useStrict {
			continue
		}
		useStrict = true
		if !p.lexical.SimpleParameters() {
			p.errs.Report(errors.MsgUseStrictNonSimple, tokStart)
		}
		if !p.lexical.InStrict() {
			for _, pos := range octals {
				p.errs.Report(errors.MsgOctalEscapeStrict, pos)
			}
		}
		octals = nil
		p.setFunctionStrict()
	}
	return body, useStrict, nil
}

// parseStatementList reads statements up to a closing brace without
// consuming it.
func (p *Parser) parseStatementList() ([]ast.Statement, error) {
	var body []ast.Statement
	for p.cur() != lexer.RBRACE {
		if p.cur() == lexer.EOF || p.cur() == lexer.ILLEGAL {
			return nil, p.unexpected()
		}
		stmt, err := p.parseStatementListItem(false)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

// parseStatementListItem parses a statement or a declaration.
func (p *Parser) parseStatementListItem(topLevel bool) (ast.Statement, error) {
	start := p.startPos()
	switch p.cur() {
	case lexer.FUNCTION:
		return p.parseFunctionDeclaration(start, false, false)
	case lexer.CLASS:
		return p.parseClassDeclaration(start, false)
	case lexer.CONST:
		if p.ts && p.peekTokenIs(lexer.ENUM) {
			p.nextToken()
			return p.tsParseEnum(start, true, false)
		}
		return p.parseVarStatement(ast.DeclConst)
	case lexer.LET:
		if p.isLetDeclaration() {
			return p.parseVarStatement(ast.DeclLet)
		}
	case lexer.IMPORT:
		if next := p.peek().Type; next == lexer.LPAREN || next == lexer.DOT {
			break
		}
		if err := p.checkModuleItem(topLevel); err != nil {
			return nil, err
		}
		return p.parseImport()
	case lexer.EXPORT:
		if err := p.checkModuleItem(topLevel); err != nil {
			return nil, err
		}
		return p.parseExport()
	case lexer.ENUM:
		if p.ts {
			return p.tsParseEnum(start, false, false)
		}
	case lexer.IDENT:
		if p.isAsyncFunction() {
			p.nextToken()
			return p.parseFunctionDeclaration(start, true, false)
		}
		if p.ts {
			if decl, ok, err := p.tsParseDeclarationStatement(); ok || err != nil {
				return decl, err
			}
		}
	}
	return p.parseStatement(ctxList)
}

func (p *Parser) checkModuleItem(topLevel bool) error {
	if p.ctx.inModuleBlock {
		return nil
	}
	if !p.cfg.Module() {
		return p.fatal(p.startPos(), errors.MsgImportExportOutsideModule)
	}
	if !topLevel {
		return p.fatal(p.startPos(), errors.MsgImportExportNotTopLevel)
	}
	return nil
}

// isLetDeclaration reports whether the current `let` starts a lexical
// declaration rather than naming a variable.
func (p *Parser) isLetDeclaration() bool {
	if p.lexical.InStrict() {
		return true
	}
	next := p.peek()
	switch next.Type {
	case lexer.LBRACKET, lexer.LBRACE:
		return true
	}
	return isIdentifierType(next.Type)
}

// isAsyncFunction reports whether the current token is `async` directly
// followed by `function` on the same line.
func (p *Parser) isAsyncFunction() bool {
	if !p.isContextual("async") {
		return false
	}
	next := p.peek()
	return next.Type == lexer.FUNCTION && !next.NewlineBefore
}

// parseStatement parses a statement in a position where only some
// declarations, or none, are allowed.
func (p *Parser) parseStatement(sc stmtContext) (ast.Statement, error) {
	start := p.startPos()
	switch p.cur() {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.SEMICOLON:
		p.nextToken()
		return finish(p, &ast.EmptyStatement{}, start), nil
	case lexer.VAR:
		return p.parseVarStatement(ast.DeclVar)
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.DO:
		return p.parseDoWhileStatement()
	case lexer.CONTINUE, lexer.BREAK:
		return p.parseBreakContinue()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.WITH:
		return p.parseWithStatement()
	case lexer.SWITCH:
		return p.parseSwitchStatement()
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.DEBUGGER:
		p.nextToken()
		if err := p.semicolon(); err != nil {
			return nil, err
		}
		return finish(p, &ast.DebuggerStatement{}, start), nil
	case lexer.FUNCTION:
		return p.parseFunctionInStatement(sc, start, false)
	case lexer.CLASS:
		p.errs.Report(errors.MsgClassInSingleStmt, start)
		return p.parseClassDeclaration(start, false)
	case lexer.CONST:
		p.errs.Report(errors.MsgLexicalInSingleStmt, start)
		return p.parseVarStatement(ast.DeclConst)
	case lexer.LET:
		if next := p.peek(); next.Type == lexer.LBRACKET ||
			(p.lexical.InStrict() && (isIdentifierType(next.Type) || next.Type == lexer.LBRACE)) {
			p.errs.Report(errors.MsgLexicalInSingleStmt, start)
			return p.parseVarStatement(ast.DeclLet)
		}
	case lexer.IMPORT:
		if next := p.peek().Type; next != lexer.LPAREN && next != lexer.DOT {
			return nil, p.fatal(start, errors.MsgImportExportNotTopLevel)
		}
	case lexer.EXPORT:
		return nil, p.fatal(start, errors.MsgImportExportNotTopLevel)
	case lexer.IDENT:
		if p.isAsyncFunction() {
			p.nextToken()
			return p.parseFunctionInStatement(sc, start, true)
		}
	}
	if p.isIdentifierToken() && p.peekTokenIs(lexer.COLON) {
		return p.parseLabeledStatement(sc)
	}
	return p.parseExpressionStatement()
}

// parseFunctionInStatement handles a function declaration used as the
// body of if, a label or a loop. Only plain functions in sloppy if and
// label bodies are accepted; the if case gets a scope of its own.
func (p *Parser) parseFunctionInStatement(sc stmtContext, start source.Position, async bool) (ast.Statement, error) {
	generator := p.peekTokenIs(lexer.ASTERISK)
	switch {
	case async || generator:
		p.errs.Report(errors.MsgAsyncOrGenInSingleStmt, start)
	case p.lexical.InStrict() || sc == ctxNested:
		p.errs.Report(errors.MsgFunctionInSingleStmt, start)
	}
	if sc != ctxIf {
		return p.parseFunctionDeclaration(start, async, false)
	}
	p.enterBlock()
	decl, err := p.parseFunctionDeclaration(start, async, false)
	if err != nil {
		return nil, err
	}
	p.exitBlock()
	return decl, nil
}

func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	start := p.startPos()
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	p.enterBlock()
	body, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	p.exitBlock()
	p.nextToken()
	block := p.arena.NewBlockStatement()
	block.Body = body
	return finish(p, block, start), nil
}

func (p *Parser) parseVarStatement(kind string) (ast.Statement, error) {
	start := p.startPos()
	decl, err := p.parseVar(kind, false)
	if err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, decl, start), nil
}

// parseVar parses `var|let|const` and its declarators. In a for header
// the missing-initializer checks are left to the caller, which knows
// whether `in` or `of` follows.
func (p *Parser) parseVar(kind string, inFor bool) (*ast.VariableDeclaration, error) {
	start := p.startPos()
	p.nextToken()
	decl := &ast.VariableDeclaration{DeclKind: kind}
	bind := bindingForDecl(kind)
	for {
		dstart := p.startPos()
		id, err := p.parseBindingTarget(kind != ast.DeclVar)
		if err != nil {
			return nil, err
		}
		d := p.arena.NewVariableDeclarator()
		d.ID = id
		if p.ts {
			if p.cur() == lexer.BANG && !p.l.NewlineBefore() {
				p.nextToken()
				d.Definite = true
			}
			if err := p.tsParseBindingAnnotation(id); err != nil {
				return nil, err
			}
		}
		p.declarePattern(id, bind)
		if p.eat(lexer.ASSIGN) {
			init, err := p.parseMaybeAssign()
			if err != nil {
				return nil, err
			}
			d.Init = init
		} else if !inFor || !(p.cur() == lexer.IN || p.isContextual("of")) {
			_, simple := id.(*ast.Identifier)
			switch {
			case kind == ast.DeclConst && !p.ctx.inType && !p.ambient():
				p.errs.Report(errors.MsgConstWithoutInit, p.lastEnd())
			case !simple:
				p.errs.Report(errors.MsgDestructuringNoInit, p.lastEnd())
			}
		}
		decl.Declarations = append(decl.Declarations, finish(p, d, dstart))
		if !p.eat(lexer.COMMA) {
			break
		}
	}
	return finish(p, decl, start), nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	test, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	cons, err := p.parseStatement(ctxIf)
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Test: test, Consequent: cons}
	if p.eat(lexer.ELSE) {
		alt, err := p.parseStatement(ctxIf)
		if err != nil {
			return nil, err
		}
		stmt.Alternate = alt
	}
	return finish(p, stmt, start), nil
}

// parseParenExpression parses `( Expression )`.
func (p *Parser) parseParenExpression() (ast.Expression, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.pushIn(false)
	expr, err := p.parseExpression()
	p.popIn()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseLoopBody parses the body of an iteration statement inside a loop
// frame, which break and continue resolve against.
func (p *Parser) parseLoopBody() (ast.Statement, error) {
	p.lexical.EnterVirtual(scope.Loop, "")
	body, err := p.parseStatement(ctxNested)
	if err != nil {
		return nil, err
	}
	p.lexical.Exit()
	return body, nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	test, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.WhileStatement{Test: test, Body: body}, start), nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.WHILE); err != nil {
		return nil, err
	}
	test, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	// a semicolon is always inserted after do-while
	p.eat(lexer.SEMICOLON)
	return finish(p, &ast.DoWhileStatement{Body: body, Test: test}, start), nil
}

func (p *Parser) parseForStatement() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	isAwait := false
	if p.cur() == lexer.AWAIT {
		if !p.lexical.AwaitAsExpression() {
			p.errs.Report(errors.MsgForAwaitOutsideAsync, p.startPos())
		}
		isAwait = true
		p.nextToken()
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.lexical.EnterVirtual(scope.Loop, "")
	p.enterBlock()
	stmt, err := p.parseForRest(start, isAwait)
	if err != nil {
		return nil, err
	}
	p.exitBlock()
	p.lexical.Exit()
	return stmt, nil
}

func (p *Parser) isLetInFor() bool {
	if p.cur() != lexer.LET {
		return false
	}
	if p.lexical.InStrict() {
		return true
	}
	next := p.peek().Type
	return next == lexer.LBRACKET || next == lexer.LBRACE || isIdentifierType(next)
}

func (p *Parser) parseForRest(start source.Position, isAwait bool) (ast.Statement, error) {
	if p.cur() == lexer.SEMICOLON {
		if isAwait {
			p.errs.Report(errors.MsgForAwaitNotOf, start)
		}
		return p.parseFor(start, nil)
	}
	if kind, ok := p.forDeclarationKind(); ok {
		p.pushIn(true)
		decl, err := p.parseVar(kind, true)
		p.popIn()
		if err != nil {
			return nil, err
		}
		if p.cur() == lexer.IN || p.isContextual("of") {
			p.checkForInOfDeclaration(decl)
			return p.parseForInOf(start, decl, isAwait)
		}
		if isAwait {
			p.errs.Report(errors.MsgForAwaitNotOf, start)
		}
		return p.parseFor(start, decl)
	}

	startsWithLet := p.cur() == lexer.LET
	startsWithAsync := p.isContextual("async")
	initStart := p.startPos()
	var init ast.Expression
	if startsWithAsync && p.asyncOfHead() {
		id, err := p.parseIdentifierReference()
		if err != nil {
			return nil, err
		}
		init = id
	} else {
		p.pushIn(true)
		expr, err := p.parseExpression()
		p.popIn()
		if err != nil {
			return nil, err
		}
		init = expr
	}
	if p.cur() == lexer.IN || p.isContextual("of") {
		isOf := p.cur() != lexer.IN
		if isOf && startsWithLet {
			p.errs.Report(errors.MsgForOfLet, initStart)
		}
		if id, ok := init.(*ast.Identifier); ok && isOf && startsWithAsync && !isAwait && !id.Parenthesized() {
			p.errs.Report(errors.MsgForOfAsync, initStart)
		}
		target := p.toForTarget(init)
		return p.parseForInOf(start, target, isAwait)
	}
	if isAwait {
		p.errs.Report(errors.MsgForAwaitNotOf, start)
	}
	return p.parseFor(start, init)
}

// asyncOfHead reports whether the head starts with `async of` that is not
// the arrow `async of => ...`.
func (p *Parser) asyncOfHead() bool {
	next := p.peek()
	if next.Type != lexer.IDENT || next.Value != "of" || next.Literal != "of" || next.NewlineBefore {
		return false
	}
	snap := p.l.Fork()
	p.l.Next()
	p.l.Next()
	arrow := p.l.Kind() == lexer.ARROW
	p.l.Restore(snap)
	return !arrow
}

func (p *Parser) forDeclarationKind() (string, bool) {
	switch {
	case p.cur() == lexer.VAR:
		return ast.DeclVar, true
	case p.cur() == lexer.CONST:
		return ast.DeclConst, true
	case p.isLetInFor():
		return ast.DeclLet, true
	}
	return "", false
}

// checkForInOfDeclaration applies the single-binding and no-initializer
// rules to the declaration of a for-in or for-of head. A sloppy `var`
// with a plain identifier may keep its initializer in for-in.
func (p *Parser) checkForInOfDeclaration(decl *ast.VariableDeclaration) {
	op := "in"
	if p.cur() != lexer.IN {
		op = "of"
	}
	if len(decl.Declarations) != 1 {
		p.report(decl.Start(), errors.MsgForInOfMultiple, op)
		return
	}
	d := decl.Declarations[0]
	if d.Init == nil {
		return
	}
	_, simple := d.ID.(*ast.Identifier)
	if op == "in" && decl.DeclKind == ast.DeclVar && simple && !p.lexical.InStrict() {
		return
	}
	p.report(d.Start(), errors.MsgForInOfInit, op)
}

// toForTarget turns the expression read as a for-in/of head into an
// assignment target.
func (p *Parser) toForTarget(init ast.Expression) ast.Node {
	switch init.(type) {
	case *ast.ObjectExpression, *ast.ArrayExpression:
		if !init.Parenthesized() {
			return p.toPattern(init, false)
		}
	}
	if !p.isSimpleAssignTarget(init) {
		p.errs.Report(errors.MsgInvalidForTarget, init.Start())
	}
	if id, ok := init.(*ast.Identifier); ok {
		p.checkPatternIdentifier(id)
	}
	return init
}

func (p *Parser) parseFor(start source.Position, init ast.Node) (ast.Statement, error) {
	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	stmt := &ast.ForStatement{Init: init}
	if p.cur() != lexer.SEMICOLON {
		test, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Test = test
	}
	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	if p.cur() != lexer.RPAREN {
		update, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Update = update
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(ctxNested)
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return finish(p, stmt, start), nil
}

func (p *Parser) parseForInOf(start source.Position, left ast.Node, isAwait bool) (ast.Statement, error) {
	isOf := p.cur() != lexer.IN
	if !isOf && isAwait {
		p.errs.Report(errors.MsgForAwaitNotOf, start)
	}
	p.nextToken()
	var right ast.Expression
	var err error
	if isOf {
		right, err = p.parseMaybeAssign()
	} else {
		right, err = p.parseExpression()
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(ctxNested)
	if err != nil {
		return nil, err
	}
	if isOf {
		return finish(p, &ast.ForOfStatement{Left: left, Right: right, Body: body, Await: isAwait}, start), nil
	}
	return finish(p, &ast.ForInStatement{Left: left, Right: right, Body: body}, start), nil
}

func (p *Parser) parseBreakContinue() (ast.Statement, error) {
	start := p.startPos()
	isBreak := p.cur() == lexer.BREAK
	p.nextToken()
	var label *ast.Identifier
	if !p.canInsertSemicolon() && p.isIdentifierToken() {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		p.checkReserved(id.Name, id.Start())
		label = id
	}
	switch {
	case label != nil:
		found, loop := p.lexical.LabelTarget(label.Name)
		if !found {
			p.report(label.Start(), errors.MsgUndefinedLabel, label.Name)
		} else if !isBreak && !loop {
			p.report(start, errors.MsgIllegalContinueTo, label.Name)
		}
	case isBreak && !p.lexical.BreakAllowed():
		p.errs.Report(errors.MsgIllegalBreak, start)
	case !isBreak && !p.lexical.ContinueAllowed():
		p.errs.Report(errors.MsgIllegalContinue, start)
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	if isBreak {
		return finish(p, &ast.BreakStatement{Label: label}, start), nil
	}
	return finish(p, &ast.ContinueStatement{Label: label}, start), nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	start := p.startPos()
	if !p.lexical.ReturnAllowed() && !p.cfg.AllowReturnOutsideFunction {
		p.errs.Report(errors.MsgIllegalReturn, start)
	}
	p.nextToken()
	stmt := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Argument = arg
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, stmt, start), nil
}

func (p *Parser) parseWithStatement() (ast.Statement, error) {
	start := p.startPos()
	if p.lexical.InStrict() {
		p.errs.Report(errors.MsgWithStrict, start)
	}
	p.nextToken()
	obj, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement(ctxNested)
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.WithStatement{Object: obj, Body: body}, start), nil
}

func (p *Parser) parseSwitchStatement() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	disc, err := p.parseParenExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	p.lexical.EnterVirtual(scope.Switch, "")
	p.enterBlock()
	stmt := &ast.SwitchStatement{Discriminant: disc}
	sawDefault := false
	for p.cur() != lexer.RBRACE {
		cstart := p.startPos()
		c := &ast.SwitchCase{}
		switch p.cur() {
		case lexer.CASE:
			p.nextToken()
			test, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			c.Test = test
		case lexer.DEFAULT:
			if sawDefault {
				p.errs.Report(errors.MsgMultipleDefaults, cstart)
			}
			sawDefault = true
			p.nextToken()
		default:
			return nil, p.unexpected()
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		for p.cur() != lexer.CASE && p.cur() != lexer.DEFAULT && p.cur() != lexer.RBRACE {
			if p.cur() == lexer.EOF || p.cur() == lexer.ILLEGAL {
				return nil, p.unexpected()
			}
			s, err := p.parseStatementListItem(false)
			if err != nil {
				return nil, err
			}
			c.Consequent = append(c.Consequent, s)
		}
		stmt.Cases = append(stmt.Cases, finish(p, c, cstart))
	}
	p.exitBlock()
	p.lexical.Exit()
	p.nextToken()
	return finish(p, stmt, start), nil
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	if p.l.NewlineBefore() {
		return nil, p.fatal(p.lastEnd(), errors.MsgNewlineAfterThrow)
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, &ast.ThrowStatement{Argument: arg}, start), nil
}

func (p *Parser) parseTryStatement() (ast.Statement, error) {
	start := p.startPos()
	p.nextToken()
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.TryStatement{Block: block}
	if p.cur() == lexer.CATCH {
		handler, err := p.parseCatchClause()
		if err != nil {
			return nil, err
		}
		stmt.Handler = handler
	}
	if p.eat(lexer.FINALLY) {
		fin, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Finalizer = fin
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		return nil, p.fatal(p.startPos(), errors.MsgMissingCatchFinally)
	}
	return finish(p, stmt, start), nil
}

// parseCatchClause parses the parameter and body of a catch clause in a
// single scope, so that the body cannot redeclare the parameter
// lexically.
func (p *Parser) parseCatchClause() (*ast.CatchClause, error) {
	start := p.startPos()
	p.nextToken()
	p.lexical.EnterCatch()
	p.symbols.EnterBlock()
	clause := &ast.CatchClause{}
	if p.eat(lexer.LPAREN) {
		param, err := p.parseBindingTarget(false)
		if err != nil {
			return nil, err
		}
		if p.ts {
			if err := p.tsParseBindingAnnotation(param); err != nil {
				return nil, err
			}
		}
		if _, simple := param.(*ast.Identifier); simple {
			p.declarePattern(param, bindCatchParam)
		} else {
			p.declarePattern(param, bindCatchPattern)
		}
		clause.Param = param
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}
	bstart := p.startPos()
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	p.nextToken()
	block := p.arena.NewBlockStatement()
	block.Body = body
	clause.Body = finish(p, block, bstart)
	p.symbols.Exit()
	p.lexical.Exit()
	return finish(p, clause, start), nil
}

func (p *Parser) parseLabeledStatement(sc stmtContext) (ast.Statement, error) {
	start := p.startPos()
	label, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.checkReserved(label.Name, label.Start())
	p.nextToken() // ':'
	if p.lexical.EnterVirtual(scope.Label, label.Name) {
		p.report(label.Start(), errors.MsgDuplicateLabel, label.Name)
	}
	inner := ctxLabel
	if sc == ctxIf || sc == ctxNested {
		inner = ctxNested
	}
	body, err := p.parseStatement(inner)
	if err != nil {
		return nil, err
	}
	p.lexical.Exit()
	return finish(p, &ast.LabeledStatement{Label: label, Body: body}, start), nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	start := p.startPos()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.ts {
		if id, ok := expr.(*ast.Identifier); ok && !id.Parenthesized() {
			if decl, ok, err := p.tsParseExpressionStatementDeclaration(id); ok || err != nil {
				return decl, err
			}
		}
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	stmt := p.arena.NewExpressionStatement()
	stmt.Expression = expr
	return finish(p, stmt, start), nil
}

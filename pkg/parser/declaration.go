package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/scope"
	"esfront/pkg/source"
)

// parseFunctionDeclaration parses a function declaration from the
// `function` keyword; start is the position of `async` when present. The
// name may be left out in a default export. In TypeScript a declaration
// without a body is an overload signature.
func (p *Parser) parseFunctionDeclaration(start source.Position, async, defaultExport bool) (ast.Statement, error) {
	p.nextToken()
	generator := p.eat(lexer.ASTERISK)
	fn := ast.Function{Async: async, Generator: generator}
	if !defaultExport || p.isIdentifierToken() {
		id, err := p.parseBindingIdentifier(false)
		if err != nil {
			return nil, err
		}
		fn.ID = id
	}
	wasStrict := p.lexical.InStrict()
	p.enterFunctionScope(async, generator)
	p.pushSuper(false, false)
	hasBody, err := p.parseFunctionRest(&fn, p.ts)
	if err != nil {
		return nil, err
	}
	p.popSuper()
	p.closeFunctionScope(&fn, wasStrict, false)
	if !hasBody {
		return finish(p, &ast.TSDeclareFunction{Function: fn, Declare: p.ambient()}, start), nil
	}
	if fn.ID != nil {
		p.declareFunction(fn.ID, async || generator)
	}
	return finish(p, &ast.FunctionDeclaration{Function: fn}, start), nil
}

// parseFunctionExpression parses a function expression. Its name belongs
// to the function itself, so it is read inside the new scope.
func (p *Parser) parseFunctionExpression(start source.Position, async bool) (ast.Expression, error) {
	p.nextToken()
	generator := p.eat(lexer.ASTERISK)
	fn := ast.Function{Async: async, Generator: generator}
	wasStrict := p.lexical.InStrict()
	p.enterFunctionScope(async, generator)
	if p.isIdentifierToken() {
		id, err := p.parseBindingIdentifier(false)
		if err != nil {
			return nil, err
		}
		fn.ID = id
	}
	p.pushSuper(false, false)
	if _, err := p.parseFunctionRest(&fn, false); err != nil {
		return nil, err
	}
	p.popSuper()
	p.closeFunctionScope(&fn, wasStrict, false)
	return finish(p, &ast.FunctionExpression{Function: fn}, start), nil
}

// closeFunctionScope exits the scope of fn. A name that was accepted in
// sloppy code is checked again when the body itself turned strict.
func (p *Parser) closeFunctionScope(fn *ast.Function, wasStrict, force bool) {
	strict := p.lexical.InStrict()
	p.exitFunctionScope(force)
	if fn.ID != nil && strict && !wasStrict {
		p.recheckStrictName(fn.ID)
	}
}

func (p *Parser) recheckStrictName(id *ast.Identifier) {
	switch {
	case id.Name == "eval" || id.Name == "arguments":
		p.errs.Report(errors.MsgStrictEvalArguments, id.Start())
	case id.Name == "yield":
		p.errs.Report(errors.MsgYieldAsIdentifier, id.Start())
	case id.Name == "let" || strictReserved[id.Name]:
		p.errs.Report(errors.MsgUnexpectedStrictWord, id.Start())
	}
}

// parseFunctionRest parses type parameters, parameters, return type and
// body of a function whose scope is open. It reports whether a body was
// present; without bodyOptional one is required.
func (p *Parser) parseFunctionRest(fn *ast.Function, bodyOptional bool) (bool, error) {
	if p.ts && p.cur() == lexer.LT {
		tps, err := p.tsParseTypeParameters()
		if err != nil {
			return false, err
		}
		fn.TypeParameters = tps
	}
	params, layer, err := p.parseFormalParameters()
	if err != nil {
		return false, err
	}
	fn.Params = params
	if p.ts && p.cur() == lexer.COLON {
		rt, err := p.tsParseReturnType()
		if err != nil {
			return false, err
		}
		fn.ReturnType = rt
	}
	if bodyOptional && p.cur() != lexer.LBRACE {
		return false, p.semicolon()
	}
	body, useStrict, err := p.parseFunctionBodyBlock()
	if err != nil {
		return false, err
	}
	if useStrict {
		p.reportStrictLayer(layer)
	}
	fn.Body = body
	return true, nil
}

// parseFormalParameters parses `(params)` and declares the names in the
// open function scope. The returned layer holds the candidates that
// become errors if the body has a 'use strict' directive.
func (p *Parser) parseFormalParameters() ([]ast.Pattern, scope.Layer, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, scope.Layer{}, err
	}
	p.strict.EnterCapture()
	p.lexical.EnterParameters()
	p.pushIn(false)
	params := []ast.Pattern{}
	for p.cur() != lexer.RPAREN {
		param, err := p.parseFormalParameter(len(params))
		if err != nil {
			return nil, scope.Layer{}, err
		}
		params = append(params, param)
		if _, rest := param.(*ast.RestElement); rest {
			break
		}
		if p.cur() != lexer.RPAREN {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, scope.Layer{}, err
			}
		}
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, scope.Layer{}, err
	}
	p.popIn()
	p.lexical.ExitParameters()
	layer := p.strict.Current()
	p.strict.Exit()

	if !ast.IsSimpleParameterList(params) {
		p.lexical.SetNonSimpleParameters()
	}
	for i, param := range params {
		if i == 0 && isThisParam(param) {
			continue
		}
		p.declarePattern(param, bindParam)
	}
	return params, layer, nil
}

// isThisParam reports whether param is the TypeScript `this` parameter,
// which declares no binding.
func isThisParam(param ast.Pattern) bool {
	id, ok := param.(*ast.Identifier)
	return ok && id.Name == "this"
}

func (p *Parser) parseFormalParameter(index int) (ast.Pattern, error) {
	start := p.startPos()
	var mods ast.Modifiers
	hasMods := false
	if p.ts {
		var err error
		if mods, hasMods, err = p.tsParseParameterModifiers(); err != nil {
			return nil, err
		}
	}
	if p.cur() == lexer.SPREAD {
		return p.parseRestParameter()
	}
	if p.ts && index == 0 && p.cur() == lexer.THIS {
		tok := p.l.Token()
		p.nextToken()
		id := p.arena.NewIdentifier("this", tok.Start, tok.End)
		if err := p.tsParseBindingAnnotation(id); err != nil {
			return nil, err
		}
		return id, nil
	}
	target, err := p.parseBindingTarget(false)
	if err != nil {
		return nil, err
	}
	if p.ts {
		if p.cur() == lexer.QUESTION {
			p.nextToken()
			tsMarkOptional(target)
		}
		if err := p.tsParseBindingAnnotation(target); err != nil {
			return nil, err
		}
	}
	param := target
	if p.eat(lexer.ASSIGN) {
		right, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		param = finish(p, &ast.AssignmentPattern{Left: target, Right: right}, start)
	}
	if !hasMods {
		return param, nil
	}
	if _, ok := target.(*ast.Identifier); !ok {
		p.errs.Report(errors.MsgTSParamPropertyPattern, target.Start())
	}
	return finish(p, &ast.TSParameterProperty{Parameter: param, Modifiers: mods}, start), nil
}

// parseRestParameter parses `...target`, which must close the list.
func (p *Parser) parseRestParameter() (*ast.RestElement, error) {
	start := p.startPos()
	p.nextToken()
	arg, err := p.parseBindingTarget(false)
	if err != nil {
		return nil, err
	}
	rest := &ast.RestElement{Argument: arg}
	if p.ts {
		if p.cur() == lexer.QUESTION {
			p.errs.Report(errors.MsgTSOptionalAfterRest, p.startPos())
			p.nextToken()
		}
		if p.cur() == lexer.COLON {
			ann, err := p.tsParseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			rest.TypeAnnotation = ann
		}
	}
	switch p.cur() {
	case lexer.ASSIGN:
		return nil, p.fatal(p.startPos(), errors.MsgRestInit)
	case lexer.COMMA:
		if p.peekTokenIs(lexer.RPAREN) {
			return nil, p.fatal(p.startPos(), errors.MsgRestTrailingComma)
		}
		return nil, p.fatal(start, errors.MsgRestNotLast)
	}
	return finish(p, rest, start), nil
}

// parseFunctionBodyBlock parses the braces and statements of a function
// body whose scope is open. It reports whether the body has a
// 'use strict' directive.
func (p *Parser) parseFunctionBodyBlock() (*ast.BlockStatement, bool, error) {
	start := p.startPos()
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, false, err
	}
	p.pushIn(false)
	body, useStrict, err := p.parseBody(lexer.RBRACE, false)
	p.popIn()
	if err != nil {
		return nil, false, err
	}
	p.nextToken()
	block := p.arena.NewBlockStatement()
	block.Body = body
	return finish(p, block, start), useStrict, nil
}

// parseMethod parses the parameters and body of an object or class
// method, starting at `(` or at its type parameters. Method parameters
// may never repeat. superCall allows super() in derived constructors;
// allowNoBody accepts TypeScript signatures without a body.
func (p *Parser) parseMethod(async, generator, superCall, allowNoBody bool) (*ast.FunctionExpression, error) {
	start := p.startPos()
	fn := &ast.FunctionExpression{Function: ast.Function{Async: async, Generator: generator}}
	p.enterFunctionScope(async, generator)
	p.pushSuper(true, superCall)
	if _, err := p.parseFunctionRest(&fn.Function, allowNoBody); err != nil {
		return nil, err
	}
	p.popSuper()
	p.exitFunctionScope(true)
	return finish(p, fn, start), nil
}

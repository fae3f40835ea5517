package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/scope"
	"esfront/pkg/source"
)

// parseExpression parses a comma-separated Expression.
func (p *Parser) parseExpression() (ast.Expression, error) {
	start := p.startPos()
	expr, err := p.parseMaybeAssign()
	if err != nil {
		return nil, err
	}
	if p.cur() != lexer.COMMA {
		return expr, nil
	}
	seq := &ast.SequenceExpression{Expressions: []ast.Expression{expr}}
	for p.eat(lexer.COMMA) {
		e, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		seq.Expressions = append(seq.Expressions, e)
	}
	return finish(p, seq, start), nil
}

// parseMaybeAssign parses an AssignmentExpression, including arrow
// functions and yield.
func (p *Parser) parseMaybeAssign() (ast.Expression, error) {
	if p.cur() == lexer.YIELD && p.lexical.YieldAsExpression() {
		return p.parseYield()
	}
	start := p.startPos()
	p.ctx.potentialArrowAt = start.Offset
	if p.ts && p.cur() == lexer.LT {
		if arrow, ok := tryParse(p, func() (ast.Expression, error) {
			return p.tsParseGenericArrow(start, false)
		}); ok {
			return arrow, nil
		}
	}
	left, err := p.parseMaybeConditional()
	if err != nil {
		return nil, err
	}
	if arrow, ok := left.(*ast.ArrowFunctionExpression); ok && !arrow.Parenthesized() {
		return left, nil
	}
	if !lexer.IsAssignOp(p.cur()) {
		return left, nil
	}
	op := string(p.cur())
	var target ast.Pattern
	if op == "=" {
		target = p.toPattern(left, false)
	} else {
		if !p.isSimpleAssignTarget(left) {
			p.errs.Report(errors.MsgInvalidAssignTarget, left.Start())
		}
		target = p.toPattern(left, false)
	}
	p.nextToken()
	right, err := p.parseMaybeAssign()
	if err != nil {
		return nil, err
	}
	a := p.arena.NewAssignmentExpression()
	a.Operator, a.Left, a.Right = op, target, right
	return finish(p, a, start), nil
}

func (p *Parser) parseMaybeConditional() (ast.Expression, error) {
	start := p.startPos()
	expr, err := p.parseExprOps()
	if err != nil {
		return nil, err
	}
	if p.cur() != lexer.QUESTION {
		return expr, nil
	}
	if arrow, ok := expr.(*ast.ArrowFunctionExpression); ok && !arrow.Parenthesized() {
		return expr, nil
	}
	p.nextToken()
	p.pushIn(false)
	cons, err := p.parseMaybeAssign()
	p.popIn()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	alt, err := p.parseMaybeAssign()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.ConditionalExpression{Test: expr, Consequent: cons, Alternate: alt}, start), nil
}

func (p *Parser) parseExprOps() (ast.Expression, error) {
	start := p.startPos()
	expr, err := p.parseMaybeUnary()
	if err != nil {
		return nil, err
	}
	if arrow, ok := expr.(*ast.ArrowFunctionExpression); ok && !arrow.Parenthesized() {
		return expr, nil
	}
	return p.parseExprOp(expr, start, -1)
}

const (
	precLogicalAND = 2
	precRelational = 7
)

// binaryPrecedence returns the binding power of a binary operator token,
// or 0 when the token does not continue a binary expression.
func (p *Parser) binaryPrecedence(t lexer.TokenType) int {
	switch t {
	case lexer.COALESCE, lexer.LOGICAL_OR:
		return 1
	case lexer.LOGICAL_AND:
		return precLogicalAND
	case lexer.PIPE:
		return 3
	case lexer.BITWISE_XOR:
		return 4
	case lexer.BITWISE_AND:
		return 5
	case lexer.EQ, lexer.NOT_EQ, lexer.STRICT_EQ, lexer.STRICT_NOT_EQ:
		return 6
	case lexer.LT, lexer.GT, lexer.LE, lexer.GE, lexer.INSTANCEOF:
		return precRelational
	case lexer.IN:
		if p.noIn() {
			return 0
		}
		return precRelational
	case lexer.LEFT_SHIFT, lexer.RIGHT_SHIFT, lexer.UNSIGNED_RIGHT_SHIFT:
		return 8
	case lexer.PLUS, lexer.MINUS:
		return 9
	case lexer.ASTERISK, lexer.SLASH, lexer.REMAINDER:
		return 10
	case lexer.EXPONENT:
		return 11
	}
	return 0
}

func operatorString(t lexer.TokenType) string {
	if name := lexer.KeywordName(t); name != "" {
		return name
	}
	return string(t)
}

// parseExprOp climbs binary operators whose precedence is above minPrec.
// `**` is right-associative. `??` binds its right operand at the level of
// `&&` so that mixing it with `||` or `&&` is detected.
func (p *Parser) parseExprOp(left ast.Expression, leftStart source.Position, minPrec int) (ast.Expression, error) {
	for {
		if p.ts && precRelational > minPrec && !p.l.NewlineBefore() &&
			(p.isContextual("as") || p.isContextual("satisfies")) {
			expr, err := p.tsParseAsExpression(left, leftStart)
			if err != nil {
				return nil, err
			}
			left = expr
			continue
		}
		op := p.cur()
		prec := p.binaryPrecedence(op)
		if prec == 0 || prec <= minPrec {
			return left, nil
		}
		if pn, ok := left.(*ast.PrivateName); ok && op != lexer.IN {
			p.report(pn.Start(), errors.MsgPrivateNameAlone, pn.Name, pn.Name)
		}
		if op == lexer.EXPONENT && !left.Parenthesized() {
			switch left.(type) {
			case *ast.UnaryExpression, *ast.AwaitExpression:
				p.errs.Report(errors.MsgExponentUnary, left.Start())
			}
		}
		logical := op == lexer.LOGICAL_OR || op == lexer.LOGICAL_AND
		coalesce := op == lexer.COALESCE
		if coalesce {
			prec = precLogicalAND
		}
		p.nextToken()
		rightStart := p.startPos()
		right, err := p.parseMaybeUnary()
		if err != nil {
			return nil, err
		}
		if pn, ok := right.(*ast.PrivateName); ok && !pn.Parenthesized() {
			p.errs.Report(errors.MsgOptionalChainPrivateIn, pn.Start())
		}
		rightMin := prec
		if op == lexer.EXPONENT {
			rightMin = prec - 1
		}
		right, err = p.parseExprOp(right, rightStart, rightMin)
		if err != nil {
			return nil, err
		}
		left = p.buildBinary(left, right, operatorString(op), logical || coalesce, leftStart)
		next := p.cur()
		if (logical && next == lexer.COALESCE) || (coalesce && (next == lexer.LOGICAL_OR || next == lexer.LOGICAL_AND)) {
			p.errs.Report(errors.MsgNullishMixed, p.startPos())
		}
	}
}

func (p *Parser) buildBinary(left, right ast.Expression, op string, logical bool, start source.Position) ast.Expression {
	if logical {
		return finish(p, &ast.LogicalExpression{Operator: op, Left: left, Right: right}, start)
	}
	b := p.arena.NewBinaryExpression()
	b.Operator, b.Left, b.Right = op, left, right
	return finish(p, b, start)
}

// isAwaitExpression reports whether the current `await` starts an await
// expression.
func (p *Parser) isAwaitExpression() bool {
	return p.cur() == lexer.AWAIT && p.lexical.AwaitAsExpression()
}

func (p *Parser) parseMaybeUnary() (ast.Expression, error) {
	start := p.startPos()
	switch p.cur() {
	case lexer.AWAIT:
		if p.isAwaitExpression() {
			return p.parseAwait()
		}
	case lexer.BANG, lexer.BITWISE_NOT, lexer.PLUS, lexer.MINUS,
		lexer.TYPEOF, lexer.VOID, lexer.DELETE:
		op := operatorString(p.cur())
		p.nextToken()
		arg, err := p.parseMaybeUnary()
		if err != nil {
			return nil, err
		}
		if op == "delete" {
			p.checkDelete(arg)
		}
		return finish(p, &ast.UnaryExpression{Operator: op, Argument: arg}, start), nil
	case lexer.INC, lexer.DEC:
		op := string(p.cur())
		p.nextToken()
		arg, err := p.parseMaybeUnary()
		if err != nil {
			return nil, err
		}
		p.checkUpdateTarget(arg, "prefix")
		return finish(p, &ast.UpdateExpression{Operator: op, Prefix: true, Argument: arg}, start), nil
	case lexer.LT:
		if p.ts && !p.jsx {
			return p.tsParseTypeAssertion()
		}
	}
	expr, err := p.parseExprSubscripts()
	if err != nil {
		return nil, err
	}
	for (p.cur() == lexer.INC || p.cur() == lexer.DEC) && !p.l.NewlineBefore() {
		if arrow, ok := expr.(*ast.ArrowFunctionExpression); ok && !arrow.Parenthesized() {
			break
		}
		p.checkUpdateTarget(expr, "postfix")
		op := string(p.cur())
		p.nextToken()
		expr = finish(p, &ast.UpdateExpression{Operator: op, Argument: expr}, start)
	}
	return expr, nil
}

func (p *Parser) checkDelete(arg ast.Expression) {
	switch n := arg.(type) {
	case *ast.Identifier:
		if p.lexical.InStrict() {
			p.errs.Report(errors.MsgDeleteIdentifierStrict, n.Start())
		}
	case *ast.MemberExpression:
		if _, ok := n.Property.(*ast.PrivateName); ok {
			p.errs.Report(errors.MsgPrivateDelete, n.Start())
		}
	case *ast.ChainExpression:
		if m, ok := n.Expression.(*ast.MemberExpression); ok {
			if _, ok := m.Property.(*ast.PrivateName); ok {
				p.errs.Report(errors.MsgPrivateDelete, n.Start())
			}
		}
	}
}

func (p *Parser) checkUpdateTarget(arg ast.Expression, fix string) {
	if !p.isSimpleAssignTarget(arg) {
		p.report(arg.Start(), errors.MsgInvalidUpdateTarget, fix)
		return
	}
	if id, ok := arg.(*ast.Identifier); ok {
		p.checkPatternIdentifier(id)
	}
}

// isSimpleAssignTarget reports whether e may stand on the left of a
// compound assignment or be updated with ++ and --.
func (p *Parser) isSimpleAssignTarget(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	case *ast.TSAsExpression:
		return p.isSimpleAssignTarget(n.Expression)
	case *ast.TSSatisfiesExpression:
		return p.isSimpleAssignTarget(n.Expression)
	case *ast.TSNonNullExpression:
		return p.isSimpleAssignTarget(n.Expression)
	case *ast.TSTypeAssertion:
		return p.isSimpleAssignTarget(n.Expression)
	}
	return false
}

func (p *Parser) parseAwait() (ast.Expression, error) {
	start := p.startPos()
	if p.lexical.InParameters() {
		p.errs.Report(errors.MsgAwaitInParams, start)
	} else {
		p.record(scope.AwaitExpressionInParameter, start)
	}
	p.nextToken()
	arg, err := p.parseMaybeUnary()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.AwaitExpression{Argument: arg}, start), nil
}

func (p *Parser) parseYield() (ast.Expression, error) {
	start := p.startPos()
	if p.lexical.InParameters() {
		p.errs.Report(errors.MsgYieldInParams, start)
	} else {
		p.record(scope.YieldExpressionInParameter, start)
	}
	p.nextToken()
	y := &ast.YieldExpression{}
	if p.l.NewlineBefore() {
		return finish(p, y, start), nil
	}
	y.Delegate = p.eat(lexer.ASTERISK)
	switch p.cur() {
	case lexer.SEMICOLON, lexer.EOF, lexer.RBRACE, lexer.RPAREN, lexer.RBRACKET,
		lexer.COLON, lexer.COMMA, lexer.TEMPLATE_MIDDLE, lexer.TEMPLATE_TAIL:
		if !y.Delegate {
			return finish(p, y, start), nil
		}
	}
	arg, err := p.parseMaybeAssign()
	if err != nil {
		return nil, err
	}
	y.Argument = arg
	return finish(p, y, start), nil
}

func (p *Parser) parseExprSubscripts() (ast.Expression, error) {
	start := p.startPos()
	expr, err := p.parseExprAtom()
	if err != nil {
		return nil, err
	}
	if arrow, ok := expr.(*ast.ArrowFunctionExpression); ok && !arrow.Parenthesized() {
		return expr, nil
	}
	return p.parseSubscripts(expr, start, false)
}

// isAsyncArrowCallee reports whether base is an `async` identifier at the
// start of an AssignmentExpression, directly followed by '(' on the same
// line, so that the call may turn out to be an async arrow head.
func (p *Parser) isAsyncArrowCallee(base ast.Expression, start source.Position) bool {
	id, ok := base.(*ast.Identifier)
	if !ok || id.Name != "async" || id.Parenthesized() {
		return false
	}
	return start.Offset == p.ctx.potentialArrowAt &&
		id.End().Offset-id.Start().Offset == len("async") &&
		!p.l.NewlineBefore()
}

// parseSubscripts reads member accesses, calls, tagged templates and
// optional chains following base. With noCalls set it stops at the first
// argument list, as for the callee of new.
func (p *Parser) parseSubscripts(base ast.Expression, start source.Position, noCalls bool) (ast.Expression, error) {
	chained := false
	expr := base
	for {
		switch p.cur() {
		case lexer.OPTIONAL:
			if noCalls {
				return nil, p.fatal(p.startPos(), errors.MsgOptionalChainNew)
			}
			chained = true
			p.nextToken()
			next, err := p.parseOptionalLink(expr, start)
			if err != nil {
				return nil, err
			}
			expr = next
		case lexer.DOT:
			p.nextToken()
			prop, err := p.parseMemberProperty()
			if err != nil {
				return nil, err
			}
			m := p.arena.NewMemberExpression()
			m.Object, m.Property = expr, prop
			expr = finish(p, m, start)
		case lexer.LBRACKET:
			p.nextToken()
			p.pushIn(false)
			prop, err := p.parseExpression()
			p.popIn()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			m := p.arena.NewMemberExpression()
			m.Object, m.Property, m.Computed = expr, prop, true
			expr = finish(p, m, start)
		case lexer.BANG:
			if !p.ts || p.l.NewlineBefore() {
				return p.endChain(expr, start, chained), nil
			}
			p.nextToken()
			expr = finish(p, &ast.TSNonNullExpression{Expression: expr}, start)
		case lexer.LT, lexer.LEFT_SHIFT:
			if !p.ts || p.l.NewlineBefore() {
				return p.endChain(expr, start, chained), nil
			}
			next, ok, err := p.tsParseSubscriptTypeArguments(expr, start, noCalls)
			if err != nil {
				return nil, err
			}
			if !ok {
				return p.endChain(expr, start, chained), nil
			}
			expr = next
		case lexer.LPAREN:
			if noCalls {
				return p.endChain(expr, start, chained), nil
			}
			if !chained && p.isAsyncArrowCallee(expr, start) {
				return p.parseAsyncCallOrArrow(expr, start)
			}
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			call := p.arena.NewCallExpression()
			call.Callee, call.Arguments = expr, args
			expr = finish(p, call, start)
		case lexer.TEMPLATE_STRING, lexer.TEMPLATE_HEAD:
			if chained {
				return nil, p.fatal(p.startPos(), errors.MsgTaggedTemplateChain)
			}
			quasi, err := p.parseTemplate(true)
			if err != nil {
				return nil, err
			}
			expr = finish(p, &ast.TaggedTemplateExpression{Tag: expr, Quasi: quasi}, start)
		default:
			return p.endChain(expr, start, chained), nil
		}
	}
}

func (p *Parser) endChain(expr ast.Expression, start source.Position, chained bool) ast.Expression {
	if !chained {
		return expr
	}
	return finish(p, &ast.ChainExpression{Expression: expr}, start)
}

// parseOptionalLink parses what follows `?.`: a call, a computed member
// or a property name.
func (p *Parser) parseOptionalLink(expr ast.Expression, start source.Position) (ast.Expression, error) {
	switch p.cur() {
	case lexer.LPAREN:
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		call := p.arena.NewCallExpression()
		call.Callee, call.Arguments, call.Optional = expr, args, true
		return finish(p, call, start), nil
	case lexer.LT:
		if p.ts {
			targs, err := p.tsParseTypeArguments()
			if err != nil {
				return nil, err
			}
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			call := p.arena.NewCallExpression()
			call.Callee, call.Arguments, call.TypeArguments, call.Optional = expr, args, targs, true
			return finish(p, call, start), nil
		}
	case lexer.LBRACKET:
		p.nextToken()
		p.pushIn(false)
		prop, err := p.parseExpression()
		p.popIn()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		m := p.arena.NewMemberExpression()
		m.Object, m.Property, m.Computed, m.Optional = expr, prop, true, true
		return finish(p, m, start), nil
	case lexer.TEMPLATE_STRING, lexer.TEMPLATE_HEAD:
		return nil, p.fatal(p.startPos(), errors.MsgTaggedTemplateChain)
	}
	prop, err := p.parseMemberProperty()
	if err != nil {
		return nil, err
	}
	m := p.arena.NewMemberExpression()
	m.Object, m.Property, m.Optional = expr, prop, true
	return finish(p, m, start), nil
}

// parseMemberProperty parses the name after '.' or '?.': any
// IdentifierName or a private name.
func (p *Parser) parseMemberProperty() (ast.Expression, error) {
	if p.cur() == lexer.PRIVATE_NAME {
		return p.parsePrivateNameRef()
	}
	return p.parseIdentifierName()
}

// parsePrivateNameRef parses a reference to #name, which an enclosing
// class must define.
func (p *Parser) parsePrivateNameRef() (*ast.PrivateName, error) {
	tok := p.l.Token()
	p.nextToken()
	if !p.symbols.UsePrivateName(tok.Value, tok.Start) {
		p.report(tok.Start, errors.MsgUndefinedPrivateName, tok.Value)
	}
	pn := &ast.PrivateName{Name: tok.Value}
	pn.SetLoc(tok.Start, tok.End)
	return pn, nil
}

// parseArguments parses a call argument list. A trailing comma is
// allowed.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	args, _, err := p.parseArgumentList()
	return args, err
}

// parseArgumentList parses `( args )` and also returns the position of a
// comma that directly follows a spread argument, for callers that may
// reinterpret the list as parameters.
func (p *Parser) parseArgumentList() ([]ast.Expression, *source.Position, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, nil, err
	}
	p.pushIn(false)
	args := []ast.Expression{}
	var restComma *source.Position
	for p.cur() != lexer.RPAREN {
		start := p.startPos()
		var arg ast.Expression
		var err error
		if p.eat(lexer.SPREAD) {
			var inner ast.Expression
			inner, err = p.parseMaybeAssign()
			if err == nil {
				arg = finish(p, &ast.SpreadElement{Argument: inner}, start)
				if p.cur() == lexer.COMMA && restComma == nil {
					pos := p.startPos()
					restComma = &pos
				}
			}
		} else {
			arg, err = p.parseMaybeAssign()
		}
		if err != nil {
			return nil, nil, err
		}
		args = append(args, arg)
		if p.cur() != lexer.RPAREN {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, nil, err
			}
		}
	}
	p.nextToken()
	p.popIn()
	return args, restComma, nil
}

// parseAsyncCallOrArrow parses `async(...)`, which is an async arrow head
// when `=>` follows and a call otherwise.
func (p *Parser) parseAsyncCallOrArrow(callee ast.Expression, start source.Position) (ast.Expression, error) {
	if p.ts {
		if arrow, ok := tryParse(p, func() (ast.Expression, error) {
			return p.tsParseParenArrow(start, true)
		}); ok {
			return arrow, nil
		}
	}
	capture := p.beginArrowCapture()
	args, restComma, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	if p.cur() == lexer.ARROW {
		if p.l.NewlineBefore() {
			p.errs.Report(errors.MsgNewlineBeforeArrow, p.startPos())
		}
		if restComma != nil && len(args) > 0 {
			if _, ok := args[len(args)-1].(*ast.SpreadElement); ok {
				p.errs.Report(errors.MsgRestTrailingComma, *restComma)
			}
		}
		params := p.toParams(args)
		layer, frame := p.takeArrowCapture(capture)
		p.reportArrowFrame(frame, true)
		return p.parseArrowFunction(start, params, true, layer)
	}
	p.endArrowCapture()
	call := p.arena.NewCallExpression()
	call.Callee, call.Arguments = callee, args
	return p.parseSubscripts(finish(p, call, start), start, false)
}

// arrowCapture holds the recorder state from before input that may turn
// out to be arrow parameters.
type arrowCapture struct {
	strict scope.StrictSnapshot
	arrows scope.AsyncArrowSnapshot
}

func (p *Parser) beginArrowCapture() arrowCapture {
	c := arrowCapture{strict: p.strict.Snapshot(), arrows: p.arrows.Snapshot()}
	p.strict.EnterCapture()
	p.arrows.Enter()
	return c
}

// takeArrowCapture ends a capture whose input became arrow parameters. It
// returns what was collected and rewinds the recorders, so nothing merges
// into the enclosing layers.
func (p *Parser) takeArrowCapture(c arrowCapture) (scope.Layer, scope.ArrowFrame) {
	layer := p.strict.Current()
	frame, _ := p.arrows.Current()
	p.strict.Restore(c.strict)
	p.arrows.Restore(c.arrows)
	return layer, frame
}

// endArrowCapture ends a capture whose input stayed an expression; its
// candidates move to the enclosing layers.
func (p *Parser) endArrowCapture() {
	p.strict.Exit()
	p.arrows.Exit()
}

// parseArrowFunction parses `=> body` for parameters that were already
// converted. layer holds the strict-mode candidates of the parameters.
func (p *Parser) parseArrowFunction(start source.Position, params []ast.Pattern, async bool, layer scope.Layer) (*ast.ArrowFunctionExpression, error) {
	arrow := &ast.ArrowFunctionExpression{Params: params, Async: async}
	if err := p.parseArrowBody(arrow, layer); err != nil {
		return nil, err
	}
	return finish(p, arrow, start), nil
}

func (p *Parser) parseArrowBody(arrow *ast.ArrowFunctionExpression, layer scope.Layer) error {
	p.enterArrowScope(arrow.Async)
	if !ast.IsSimpleParameterList(arrow.Params) {
		p.lexical.SetNonSimpleParameters()
	}
	for _, prm := range arrow.Params {
		p.declarePattern(prm, bindParam)
	}
	if err := p.expect(lexer.ARROW); err != nil {
		return err
	}
	if p.cur() == lexer.LBRACE {
		p.pushIn(false)
		body, useStrict, err := p.parseFunctionBodyBlock()
		p.popIn()
		if err != nil {
			return err
		}
		if useStrict {
			p.reportStrictLayer(layer)
		}
		arrow.Body = body
	} else {
		body, err := p.parseMaybeAssign()
		if err != nil {
			return err
		}
		arrow.Body = body
		arrow.ExpressionBody = true
	}
	p.exitArrowScope()
	return nil
}

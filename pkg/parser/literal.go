package parser

import (
	"strings"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/source"
)

// parseExprAtom parses a PrimaryExpression, plus new and import forms.
func (p *Parser) parseExprAtom() (ast.Expression, error) {
	start := p.startPos()
	switch p.cur() {
	case lexer.THIS:
		p.nextToken()
		return finish(p, &ast.ThisExpression{}, start), nil
	case lexer.SUPER:
		return p.parseSuper()
	case lexer.NULL:
		p.nextToken()
		return finish(p, &ast.NullLiteral{}, start), nil
	case lexer.TRUE, lexer.FALSE:
		value := p.cur() == lexer.TRUE
		p.nextToken()
		return finish(p, &ast.BooleanLiteral{Value: value}, start), nil
	case lexer.NUMBER:
		return p.parseNumericLiteral()
	case lexer.BIGINT:
		return p.parseBigIntLiteral()
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.TEMPLATE_STRING, lexer.TEMPLATE_HEAD:
		return p.parseTemplate(false)
	case lexer.SLASH, lexer.SLASH_ASSIGN:
		return p.parseRegExp()
	case lexer.LPAREN:
		return p.parseParenAndDistinguish()
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.LBRACE:
		return p.parseObjectLiteral()
	case lexer.FUNCTION:
		return p.parseFunctionExpression(start, false)
	case lexer.CLASS:
		return p.parseClassExpression(start)
	case lexer.NEW:
		return p.parseNew()
	case lexer.IMPORT:
		return p.parseImportExpression()
	case lexer.PRIVATE_NAME:
		if !p.peekTokenIs(lexer.IN) {
			name := p.l.Value()
			return nil, p.fatal(start, errors.MsgPrivateNameAlone, name, name)
		}
		return p.parsePrivateNameRef()
	case lexer.LT:
		if p.jsx {
			return p.parseJSXElementOrFragment()
		}
	case lexer.IDENT, lexer.LET, lexer.YIELD, lexer.AWAIT:
		return p.parseIdentifierAtom()
	}
	return nil, p.unexpected()
}

// parseIdentifierAtom parses an identifier reference, or the arrow
// function or async function it starts.
func (p *Parser) parseIdentifierAtom() (ast.Expression, error) {
	start := p.startPos()
	canArrow := start.Offset == p.ctx.potentialArrowAt
	if p.isContextual("async") {
		next := p.peek()
		if next.Type == lexer.FUNCTION && !next.NewlineBefore {
			p.nextToken()
			return p.parseFunctionExpression(start, true)
		}
		if canArrow && isIdentifierType(next.Type) && !next.NewlineBefore {
			p.nextToken()
			return p.parseIdentifierArrow(start, true)
		}
		if p.ts && canArrow && next.Type == lexer.LT && !next.NewlineBefore {
			if arrow, ok := tryParse(p, func() (ast.Expression, error) {
				p.nextToken()
				return p.tsParseGenericArrow(start, true)
			}); ok {
				return arrow, nil
			}
		}
	}
	if canArrow && p.peekTokenIs(lexer.ARROW) {
		return p.parseIdentifierArrow(start, false)
	}
	return p.parseIdentifierReference()
}

// parseIdentifierArrow parses `x => body` and `async x => body`.
func (p *Parser) parseIdentifierArrow(start source.Position, async bool) (ast.Expression, error) {
	capture := p.beginArrowCapture()
	id, err := p.parseIdentifierReference()
	if err != nil {
		return nil, err
	}
	p.checkPatternIdentifier(id)
	if p.cur() != lexer.ARROW {
		return nil, p.unexpected()
	}
	if p.l.NewlineBefore() {
		p.errs.Report(errors.MsgNewlineBeforeArrow, p.startPos())
	}
	layer, frame := p.takeArrowCapture(capture)
	p.reportArrowFrame(frame, async)
	return p.parseArrowFunction(start, []ast.Pattern{id}, async, layer)
}

func (p *Parser) parseNumericLiteral() (*ast.NumericLiteral, error) {
	tok := p.l.Token()
	if p.l.LegacyOctal() && p.lexical.InStrict() {
		p.errs.Report(errors.MsgLegacyOctalStrict, tok.Start)
	}
	p.nextToken()
	return p.arena.NewNumericLiteral(lexer.NumberValue(tok.Literal), tok.Literal, tok.Start, tok.End), nil
}

func (p *Parser) parseBigIntLiteral() (*ast.BigIntLiteral, error) {
	tok := p.l.Token()
	p.nextToken()
	digits := strings.ReplaceAll(strings.TrimSuffix(tok.Literal, "n"), "_", "")
	n := &ast.BigIntLiteral{Value: digits, Raw: tok.Literal}
	n.SetLoc(tok.Start, tok.End)
	return n, nil
}

func (p *Parser) parseStringLiteral() (*ast.StringLiteral, error) {
	tok := p.l.Token()
	if p.l.LegacyOctal() && p.lexical.InStrict() {
		p.errs.Report(errors.MsgOctalEscapeStrict, tok.Start)
	}
	p.nextToken()
	return p.arena.NewStringLiteral(tok.Value, tok.Literal, tok.Start, tok.End), nil
}

// templateRaw strips the delimiters from a template token and normalizes
// line terminators as the raw value requires.
func templateRaw(tok lexer.Token) string {
	raw := tok.Literal
	if len(raw) > 0 {
		raw = raw[1:]
	}
	switch tok.Type {
	case lexer.TEMPLATE_HEAD, lexer.TEMPLATE_MIDDLE:
		raw = strings.TrimSuffix(raw, "${")
	default:
		raw = strings.TrimSuffix(raw, "`")
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.ReplaceAll(raw, "\r", "\n")
}

// parseTemplate parses a template literal. Malformed escapes are only
// allowed in tagged templates, where the cooked value is left undefined.
func (p *Parser) parseTemplate(tagged bool) (*ast.TemplateLiteral, error) {
	start := p.startPos()
	tl := &ast.TemplateLiteral{}
	for {
		tok := p.l.Token()
		invalid := p.l.TemplateInvalidEscape()
		if invalid && !tagged {
			p.errs.Report(errors.MsgTemplateEscape, tok.Start)
		}
		el := &ast.TemplateElement{Raw: templateRaw(tok), Cooked: tok.Value, Invalid: invalid}
		el.Tail = tok.Type == lexer.TEMPLATE_STRING || tok.Type == lexer.TEMPLATE_TAIL
		el.SetLoc(tok.Start, tok.End)
		tl.Quasis = append(tl.Quasis, el)
		p.nextToken()
		if el.Tail {
			break
		}
		p.pushIn(false)
		expr, err := p.parseExpression()
		p.popIn()
		if err != nil {
			return nil, err
		}
		tl.Expressions = append(tl.Expressions, expr)
		if p.cur() != lexer.TEMPLATE_MIDDLE && p.cur() != lexer.TEMPLATE_TAIL {
			return nil, p.unexpected()
		}
	}
	return finish(p, tl, start), nil
}

func (p *Parser) parseRegExp() (ast.Expression, error) {
	start := p.startPos()
	pattern, flags, err := p.l.ReadRegex()
	if err != nil {
		return nil, err
	}
	p.nextToken()
	if p.cfg.ValidateRegExp {
		p.validateRegExp(pattern, flags, start)
	}
	return finish(p, &ast.RegExpLiteral{Pattern: pattern, Flags: flags}, start), nil
}

// validateRegExp compiles a pattern with an ECMAScript-compatible engine.
// Patterns using the u or v flags are left alone: their syntax is a
// superset the engine does not model.
func (p *Parser) validateRegExp(pattern, flags string, pos source.Position) {
	if strings.ContainsAny(flags, "uv") {
		return
	}
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		}
	}
	if _, err := regexp2.Compile(pattern, opts); err != nil {
		p.log.Debug("regular expression rejected",
			zap.String("pattern", pattern), zap.String("flags", flags), zap.Error(err))
		p.report(pos, errors.MsgInvalidRegExp, pattern, err.Error())
	}
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	start := p.startPos()
	p.nextToken()
	p.pushIn(false)
	arr := &ast.ArrayExpression{}
	for p.cur() != lexer.RBRACKET {
		if p.cur() == lexer.COMMA {
			p.nextToken()
			arr.Elements = append(arr.Elements, nil)
			continue
		}
		el, err := p.parseSpreadOrAssign(start)
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, el)
		if p.cur() != lexer.RBRACKET {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	p.popIn()
	return finish(p, arr, start), nil
}

// parseSpreadOrAssign parses an element of an array or object literal. A
// spread followed by a trailing comma is noted for the literal starting at
// owner, since that is an error once the literal becomes a pattern.
func (p *Parser) parseSpreadOrAssign(owner source.Position) (ast.Expression, error) {
	if p.cur() != lexer.SPREAD {
		return p.parseMaybeAssign()
	}
	start := p.startPos()
	p.nextToken()
	arg, err := p.parseMaybeAssign()
	if err != nil {
		return nil, err
	}
	if p.cur() == lexer.COMMA {
		if next := p.peek().Type; next == lexer.RBRACKET || next == lexer.RBRACE {
			p.ctx.restCommas[owner.Offset] = p.startPos()
		}
	}
	return finish(p, &ast.SpreadElement{Argument: arg}, start), nil
}

func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	start := p.startPos()
	p.nextToken()
	p.pushIn(false)
	obj := &ast.ObjectExpression{}
	sawProto := false
	for p.cur() != lexer.RBRACE {
		var member ast.Node
		var err error
		if p.cur() == lexer.SPREAD {
			member, err = p.parseSpreadOrAssign(start)
		} else {
			member, err = p.parseObjectMember()
		}
		if err != nil {
			return nil, err
		}
		if prop, ok := member.(*ast.Property); ok && isProtoInit(prop) {
			if _, seen := p.ctx.protoDups[start.Offset]; sawProto && !seen {
				p.ctx.protoDups[start.Offset] = prop.Key.Start()
			}
			sawProto = true
		}
		obj.Properties = append(obj.Properties, member)
		if p.cur() != lexer.RBRACE {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	p.popIn()
	return finish(p, obj, start), nil
}

// isProtoInit reports whether prop is a `__proto__: value` entry, which
// may appear only once in an object literal.
func isProtoInit(prop *ast.Property) bool {
	if prop.Computed || prop.Shorthand || prop.Method || prop.PropKind != ast.PropertyInit {
		return false
	}
	switch k := prop.Key.(type) {
	case *ast.Identifier:
		return k.Name == "__proto__"
	case *ast.StringLiteral:
		return k.Value == "__proto__"
	}
	return false
}

func isPropertyNameStart(t lexer.TokenType) bool {
	switch t {
	case lexer.STRING, lexer.NUMBER, lexer.BIGINT, lexer.LBRACKET, lexer.PRIVATE_NAME:
		return true
	}
	return lexer.IsIdentifierName(t)
}

// parsePropertyName parses a literal, identifier or computed key.
func (p *Parser) parsePropertyName() (ast.Expression, bool, error) {
	switch p.cur() {
	case lexer.STRING:
		s, err := p.parseStringLiteral()
		return s, false, err
	case lexer.NUMBER:
		n, err := p.parseNumericLiteral()
		return n, false, err
	case lexer.BIGINT:
		n, err := p.parseBigIntLiteral()
		return n, false, err
	case lexer.LBRACKET:
		p.nextToken()
		p.pushIn(false)
		key, err := p.parseMaybeAssign()
		p.popIn()
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, false, err
		}
		return key, true, nil
	}
	id, err := p.parseIdentifierName()
	return id, false, err
}

// propertyKeyName returns the static name of a non-computed key.
func propertyKeyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	}
	return ""
}

func (p *Parser) parseObjectMember() (ast.Node, error) {
	start := p.startPos()
	async, generator := false, false
	kind := ast.PropertyInit
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
	keyTok := p.l.Token()
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	if async || generator || kind != ast.PropertyInit || p.cur() == lexer.LPAREN || (p.ts && p.cur() == lexer.LT) {
		fn, err := p.parseMethod(async, generator, false, false)
		if err != nil {
			return nil, err
		}
		p.checkAccessorParams(kind, fn)
		prop := p.arena.NewProperty()
		prop.Key, prop.Value, prop.PropKind = key, fn, kind
		prop.Computed, prop.Method = computed, kind == ast.PropertyInit
		return finish(p, prop, start), nil
	}
	if p.eat(lexer.COLON) {
		value, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		prop := p.arena.NewProperty()
		prop.Key, prop.Value, prop.PropKind, prop.Computed = key, value, kind, computed
		return finish(p, prop, start), nil
	}
	id, ok := key.(*ast.Identifier)
	if computed || !ok || !isIdentifierType(keyTok.Type) {
		return nil, p.fatal(keyTok.Start, errors.MsgUnexpectedTokenValue, keyTok.Literal)
	}
	p.checkIdentifierReference(id.Name, id.Start())
	if p.cur() == lexer.ASSIGN {
		p.nextToken()
		value, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		p.ctx.coverInits[start.Offset] = start
		return finish(p, &ast.CoverInitializedName{Key: id, Value: value}, start), nil
	}
	prop := p.arena.NewProperty()
	prop.Key, prop.Value, prop.PropKind, prop.Shorthand = id, id, kind, true
	return finish(p, prop, start), nil
}

// checkAccessorParams enforces the parameter counts of getters and
// setters. A TypeScript `this` parameter does not count.
func (p *Parser) checkAccessorParams(kind string, fn *ast.FunctionExpression) {
	params := fn.Params
	if len(params) > 0 {
		if id, ok := params[0].(*ast.Identifier); ok && id.Name == "this" {
			params = params[1:]
		}
	}
	switch kind {
	case ast.PropertyGet:
		if len(params) != 0 {
			p.errs.Report(errors.MsgGetterParams, fn.Start())
		}
	case ast.PropertySet:
		if len(params) != 1 {
			p.errs.Report(errors.MsgSetterParams, fn.Start())
		} else if _, rest := params[0].(*ast.RestElement); rest {
			p.errs.Report(errors.MsgSetterRest, params[0].Start())
		}
	}
}

// parseParenAndDistinguish parses a parenthesized expression or, when
// `=>` follows, the parameter list of an arrow function.
func (p *Parser) parseParenAndDistinguish() (ast.Expression, error) {
	start := p.startPos()
	canArrow := start.Offset == p.ctx.potentialArrowAt
	if p.ts && canArrow {
		if arrow, ok := tryParse(p, func() (ast.Expression, error) {
			return p.tsParseParenArrow(start, false)
		}); ok {
			return arrow, nil
		}
	}
	capture := p.beginArrowCapture()
	p.nextToken()
	if p.cur() == lexer.COMMA {
		return nil, p.fatal(p.startPos(), errors.MsgLeadingComma)
	}
	p.pushIn(false)
	var exprs []ast.Expression
	var spread *ast.SpreadElement
	var trailing *source.Position
	for p.cur() != lexer.RPAREN {
		if p.cur() == lexer.SPREAD {
			sstart := p.startPos()
			p.nextToken()
			arg, err := p.parseMaybeAssign()
			if err != nil {
				return nil, err
			}
			spread = finish(p, &ast.SpreadElement{Argument: arg}, sstart)
			exprs = append(exprs, spread)
			if p.cur() == lexer.COMMA {
				if p.peekTokenIs(lexer.RPAREN) {
					return nil, p.fatal(p.startPos(), errors.MsgRestTrailingComma)
				}
				return nil, p.fatal(spread.Start(), errors.MsgRestNotLast)
			}
			break
		}
		e, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.cur() != lexer.RPAREN {
			comma := p.startPos()
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
			if p.cur() == lexer.RPAREN {
				trailing = &comma
			}
		}
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.popIn()

	if canArrow && p.cur() == lexer.ARROW {
		if p.l.NewlineBefore() {
			p.errs.Report(errors.MsgNewlineBeforeArrow, p.startPos())
		}
		params := p.toParams(exprs)
		layer, frame := p.takeArrowCapture(capture)
		p.reportArrowFrame(frame, false)
		return p.parseArrowFunction(start, params, false, layer)
	}
	p.endArrowCapture()

	switch {
	case len(exprs) == 0:
		return nil, p.fatal(start, errors.MsgEmptyParens)
	case spread != nil:
		return nil, p.fatal(spread.Start(), errors.MsgSpreadInParens)
	case trailing != nil:
		p.errs.Report(errors.MsgTrailingCommaParens, *trailing)
	}
	if len(exprs) == 1 {
		exprs[0].SetParenthesized(true)
		return exprs[0], nil
	}
	seq := &ast.SequenceExpression{Expressions: exprs}
	seq.SetLoc(exprs[0].Start(), exprs[len(exprs)-1].End())
	seq.SetParenthesized(true)
	return seq, nil
}

func (p *Parser) parseSuper() (ast.Expression, error) {
	start := p.startPos()
	p.nextToken()
	flags := p.superAllowed()
	switch p.cur() {
	case lexer.LPAREN:
		if !flags.call {
			p.errs.Report(errors.MsgSuperCall, start)
		}
	case lexer.DOT, lexer.LBRACKET:
		if !flags.property {
			p.errs.Report(errors.MsgSuperProperty, start)
		}
	default:
		return nil, p.fatal(start, errors.MsgSuperAlone)
	}
	return finish(p, &ast.Super{}, start), nil
}

// parseMetaProperty reads `.name` after meta and checks the name.
func (p *Parser) parseMetaProperty(metaTok lexer.Token, name string) (*ast.MetaProperty, error) {
	p.nextToken() // '.'
	propTok := p.l.Token()
	if !isContextualToken(propTok, name) {
		return nil, p.fatal(propTok.Start, errors.MsgInvalidMetaProperty, metaTok.Literal, metaTok.Literal, name)
	}
	p.nextToken()
	mp := &ast.MetaProperty{
		Meta:     p.arena.NewIdentifier(metaTok.Literal, metaTok.Start, metaTok.End),
		Property: p.arena.NewIdentifier(name, propTok.Start, propTok.End),
	}
	return finish(p, mp, metaTok.Start), nil
}

func (p *Parser) parseNew() (ast.Expression, error) {
	start := p.startPos()
	metaTok := p.l.Token()
	p.nextToken()
	if p.cur() == lexer.DOT {
		mp, err := p.parseMetaProperty(metaTok, "target")
		if err != nil {
			return nil, err
		}
		if p.lexical.IsTopLevel() && !p.cfg.AllowNewTargetOutsideFunction {
			p.errs.Report(errors.MsgNewTargetOutside, start)
		}
		return mp, nil
	}
	if p.cur() == lexer.IMPORT {
		return nil, p.unexpected()
	}
	calleeStart := p.startPos()
	callee, err := p.parseExprAtom()
	if err != nil {
		return nil, err
	}
	callee, err = p.parseSubscripts(callee, calleeStart, true)
	if err != nil {
		return nil, err
	}
	ne := &ast.NewExpression{Callee: callee}
	if p.ts && p.cur() == lexer.LT {
		if targs, ok := tryParse(p, p.tsParseTypeArguments); ok {
			ne.TypeArguments = targs
		}
	}
	if p.cur() == lexer.LPAREN {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		if args == nil {
			args = []ast.Expression{}
		}
		ne.Arguments = args
	}
	return finish(p, ne, start), nil
}

// parseImportExpression parses import.meta and import(source, options).
func (p *Parser) parseImportExpression() (ast.Expression, error) {
	start := p.startPos()
	metaTok := p.l.Token()
	p.nextToken()
	if p.cur() == lexer.DOT {
		mp, err := p.parseMetaProperty(metaTok, "meta")
		if err != nil {
			return nil, err
		}
		if !p.cfg.Module() {
			p.errs.Report(errors.MsgImportMetaOutside, start)
		}
		return mp, nil
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	p.pushIn(false)
	ie := &ast.ImportExpression{}
	args := 0
	for p.cur() != lexer.RPAREN {
		if p.cur() == lexer.SPREAD {
			return nil, p.fatal(p.startPos(), errors.MsgImportCallSpread)
		}
		if args == 2 {
			return nil, p.fatal(p.startPos(), errors.MsgImportCallArity)
		}
		arg, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		if args == 0 {
			ie.Source = arg
		} else {
			ie.Options = arg
		}
		args++
		if p.cur() != lexer.RPAREN {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	if args == 0 {
		return nil, p.fatal(p.startPos(), errors.MsgImportCallArity)
	}
	p.nextToken()
	p.popIn()
	return finish(p, ie, start), nil
}

package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/source"
)

// tsInType runs fn with binding checks switched off, as they are for every
// name that only exists at the type level.
func tsInType[T any](p *Parser, fn func() (T, error)) (T, error) {
	saved := p.ctx.inType
	p.ctx.inType = true
	v, err := fn()
	p.ctx.inType = saved
	return v, err
}

// ambient reports whether the parser is under a `declare` modifier.
func (p *Parser) ambient() bool { return p.ctx.inAmbient }

// tsExpectGT consumes the '>' closing a type parameter or argument list.
// A '>>' or '>=' the lexer combined is split first.
func (p *Parser) tsExpectGT() error {
	p.l.ReLexGreaterThan()
	return p.expect(lexer.GT)
}

var tsKeywordTypes = map[string]bool{
	"any":       true,
	"unknown":   true,
	"number":    true,
	"bigint":    true,
	"boolean":   true,
	"string":    true,
	"symbol":    true,
	"object":    true,
	"never":     true,
	"undefined": true,
}

// --- annotations ---

// tsParseTypeAnnotation parses `: Type`.
func (p *Parser) tsParseTypeAnnotation() (ast.TSType, error) {
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	return p.tsParseType()
}

// tsParseBindingAnnotation attaches an optional `: Type` to a binding
// target and extends its span over the annotation.
func (p *Parser) tsParseBindingAnnotation(pat ast.Pattern) error {
	if p.cur() != lexer.COLON {
		return nil
	}
	ann, err := p.tsParseTypeAnnotation()
	if err != nil {
		return err
	}
	switch n := pat.(type) {
	case *ast.Identifier:
		n.TypeAnnotation = ann
	case *ast.ObjectPattern:
		n.TypeAnnotation = ann
	case *ast.ArrayPattern:
		n.TypeAnnotation = ann
	case *ast.RestElement:
		n.TypeAnnotation = ann
	default:
		return p.fatal(ann.Start(), errors.MsgUnexpectedToken)
	}
	if s, ok := pat.(ast.Spanner); ok {
		s.SetLoc(pat.Start(), p.lastEnd())
	}
	return nil
}

func tsMarkOptional(pat ast.Pattern) {
	switch n := pat.(type) {
	case *ast.Identifier:
		n.Optional = true
	case *ast.ObjectPattern:
		n.Optional = true
	case *ast.ArrayPattern:
		n.Optional = true
	}
}

// tsParseReturnType parses `: Type` after a parameter list, where a type
// predicate is allowed as well.
func (p *Parser) tsParseReturnType() (ast.TSType, error) {
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	return p.tsParseTypeOrPredicate()
}

// tsParseTypeOrPredicate parses a type, `x is T`, `asserts x` or
// `asserts x is T`.
func (p *Parser) tsParseTypeOrPredicate() (ast.TSType, error) {
	return tsInType(p, func() (ast.TSType, error) {
		start := p.startPos()
		asserts := false
		if p.isContextual("asserts") {
			if next := p.peek(); !next.NewlineBefore && (isIdentifierType(next.Type) || next.Type == lexer.THIS) {
				asserts = true
				p.nextToken()
			}
		}
		if !asserts && !p.tsPredicateFollows() {
			return p.tsParseType()
		}
		var name ast.Node
		if p.cur() == lexer.THIS {
			thisStart := p.startPos()
			p.nextToken()
			name = finish(p, &ast.TSThisType{}, thisStart)
		} else {
			id, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			name = id
		}
		pred := &ast.TSTypePredicate{ParameterName: name, Asserts: asserts}
		if p.isContextual("is") && !p.l.NewlineBefore() {
			p.nextToken()
			t, err := p.tsParseType()
			if err != nil {
				return nil, err
			}
			pred.TypeAnnotation = t
		}
		return finish(p, pred, start), nil
	})
}

// tsPredicateFollows reports whether the current name starts `name is T`.
func (p *Parser) tsPredicateFollows() bool {
	if !p.isIdentifierToken() && p.cur() != lexer.THIS {
		return false
	}
	next := p.peek()
	return isContextualToken(next, "is") && !next.NewlineBefore
}

// --- type parameters and arguments ---

// tsParseTypeParameters parses `<T extends C = D, ...>`.
func (p *Parser) tsParseTypeParameters() ([]*ast.TSTypeParameter, error) {
	return tsInType(p, func() ([]*ast.TSTypeParameter, error) {
		p.l.ReLexLessThan()
		if err := p.expect(lexer.LT); err != nil {
			return nil, err
		}
		if p.cur() == lexer.GT {
			p.errs.Report(errors.MsgTSEmptyTypeParameters, p.startPos())
		}
		tps := []*ast.TSTypeParameter{}
		for p.cur() != lexer.GT {
			tp, err := p.tsParseTypeParameter()
			if err != nil {
				return nil, err
			}
			tps = append(tps, tp)
			p.l.ReLexGreaterThan()
			if p.cur() != lexer.GT {
				if err := p.expect(lexer.COMMA); err != nil {
					return nil, err
				}
			}
		}
		return tps, p.tsExpectGT()
	})
}

func (p *Parser) tsParseTypeParameter() (*ast.TSTypeParameter, error) {
	start := p.startPos()
	tp := &ast.TSTypeParameter{}
modifiers:
	for {
		next := p.peek()
		if !isIdentifierType(next.Type) && next.Type != lexer.IN && next.Type != lexer.CONST {
			break
		}
		switch {
		case p.cur() == lexer.CONST:
			tp.Const = true
		case p.cur() == lexer.IN:
			tp.In = true
		case p.isContextual("out"):
			tp.Out = true
		default:
			break modifiers
		}
		p.nextToken()
	}
	if !p.isIdentifierToken() {
		return nil, p.unexpected()
	}
	tp.Name = p.l.Value()
	p.nextToken()
	if p.eat(lexer.EXTENDS) {
		c, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		tp.Constraint = c
	}
	if p.eat(lexer.ASSIGN) {
		d, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		tp.Default = d
	}
	return finish(p, tp, start), nil
}

// tsParseTypeArguments parses `<A, B>`. The current token may be a '<<'
// the lexer combined.
func (p *Parser) tsParseTypeArguments() ([]ast.TSType, error) {
	return tsInType(p, func() ([]ast.TSType, error) {
		p.l.ReLexLessThan()
		if err := p.expect(lexer.LT); err != nil {
			return nil, err
		}
		args := []ast.TSType{}
		p.l.ReLexGreaterThan()
		if p.cur() == lexer.GT {
			p.errs.Report(errors.MsgTSEmptyTypeArguments, p.startPos())
		}
		for p.cur() != lexer.GT {
			t, err := p.tsParseType()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
			p.l.ReLexGreaterThan()
			if p.cur() != lexer.GT {
				if err := p.expect(lexer.COMMA); err != nil {
					return nil, err
				}
			}
		}
		return args, p.tsExpectGT()
	})
}

// tsParseHeritageList parses the names after `implements` or an interface's
// `extends`.
func (p *Parser) tsParseHeritageList() ([]*ast.TSExpressionWithTypeArguments, error) {
	list := []*ast.TSExpressionWithTypeArguments{}
	for {
		start := p.startPos()
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		var expr ast.Expression = id
		for p.eat(lexer.DOT) {
			prop, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}
			m := p.arena.NewMemberExpression()
			m.Object, m.Property = expr, prop
			expr = finish(p, m, start)
		}
		h := &ast.TSExpressionWithTypeArguments{Expression: expr}
		if p.cur() == lexer.LT {
			if h.TypeArguments, err = p.tsParseTypeArguments(); err != nil {
				return nil, err
			}
		}
		list = append(list, finish(p, h, start))
		if !p.eat(lexer.COMMA) {
			return list, nil
		}
	}
}

// --- types ---

// tsParseType parses a complete type, conditional types included.
func (p *Parser) tsParseType() (ast.TSType, error) {
	return tsInType(p, func() (ast.TSType, error) {
		start := p.startPos()
		check, err := p.tsParseNonConditionalType()
		if err != nil {
			return nil, err
		}
		if p.cur() != lexer.EXTENDS || p.l.NewlineBefore() {
			return check, nil
		}
		p.nextToken()
		ext, err := p.tsParseNonConditionalType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.QUESTION); err != nil {
			return nil, err
		}
		t, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		f, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.TSConditionalType{CheckType: check, ExtendsType: ext, TrueType: t, FalseType: f}, start), nil
	})
}

func (p *Parser) tsParseNonConditionalType() (ast.TSType, error) {
	start := p.startPos()
	switch {
	case p.cur() == lexer.LT:
		return p.tsParseFunctionType(start, false, false)
	case p.cur() == lexer.LPAREN:
		if fn, ok := tryParse(p, func() (ast.TSType, error) {
			return p.tsParseFunctionType(start, false, false)
		}); ok {
			return fn, nil
		}
	case p.cur() == lexer.NEW:
		return p.tsParseFunctionType(start, true, false)
	case p.isContextual("abstract") && p.peekTokenIs(lexer.NEW):
		p.nextToken()
		return p.tsParseFunctionType(start, true, true)
	}
	return p.tsParseUnionType()
}

// tsParseFunctionType parses `<T>(params) => R`, optionally behind `new`.
func (p *Parser) tsParseFunctionType(start source.Position, ctor, abstract bool) (ast.TSType, error) {
	if ctor {
		p.nextToken() // new
	}
	var tps []*ast.TSTypeParameter
	var err error
	if p.cur() == lexer.LT {
		if tps, err = p.tsParseTypeParameters(); err != nil {
			return nil, err
		}
	}
	params, err := p.tsParseSignatureParams()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ARROW); err != nil {
		return nil, err
	}
	ret, err := p.tsParseTypeOrPredicate()
	if err != nil {
		return nil, err
	}
	if ctor {
		return finish(p, &ast.TSConstructorType{TypeParameters: tps, Params: params, ReturnType: ret, Abstract: abstract}, start), nil
	}
	return finish(p, &ast.TSFunctionType{TypeParameters: tps, Params: params, ReturnType: ret}, start), nil
}

// tsParseSignatureParams parses the parameter list of a signature, which
// opens no scope and declares nothing.
func (p *Parser) tsParseSignatureParams() ([]ast.Pattern, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	params := []ast.Pattern{}
	for p.cur() != lexer.RPAREN {
		param, err := p.parseFormalParameter(len(params))
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if _, rest := param.(*ast.RestElement); rest {
			break
		}
		if p.cur() != lexer.RPAREN {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	return params, p.expect(lexer.RPAREN)
}

// tsParseSignature parses type parameters, parameters and an optional
// return type of a call, construct or method signature.
func (p *Parser) tsParseSignature() ([]*ast.TSTypeParameter, []ast.Pattern, ast.TSType, error) {
	var tps []*ast.TSTypeParameter
	var err error
	if p.cur() == lexer.LT {
		if tps, err = p.tsParseTypeParameters(); err != nil {
			return nil, nil, nil, err
		}
	}
	params, err := p.tsParseSignatureParams()
	if err != nil {
		return nil, nil, nil, err
	}
	var ret ast.TSType
	if p.cur() == lexer.COLON {
		if ret, err = p.tsParseReturnType(); err != nil {
			return nil, nil, nil, err
		}
	}
	return tps, params, ret, nil
}

func (p *Parser) tsParseUnionType() (ast.TSType, error) {
	return p.tsParseListType(lexer.PIPE, p.tsParseIntersectionType, func(types []ast.TSType) ast.Spanner {
		return &ast.TSUnionType{Types: types}
	})
}

func (p *Parser) tsParseIntersectionType() (ast.TSType, error) {
	return p.tsParseListType(lexer.BITWISE_AND, p.tsParseTypeOperator, func(types []ast.TSType) ast.Spanner {
		return &ast.TSIntersectionType{Types: types}
	})
}

// tsParseListType parses operands separated by sep, with an optional
// leading sep. A single operand is returned as is.
func (p *Parser) tsParseListType(sep lexer.TokenType, operand func() (ast.TSType, error), build func([]ast.TSType) ast.Spanner) (ast.TSType, error) {
	start := p.startPos()
	p.eat(sep)
	first, err := operand()
	if err != nil {
		return nil, err
	}
	if p.cur() != sep {
		return first, nil
	}
	types := []ast.TSType{first}
	for p.eat(sep) {
		t, err := operand()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return finish(p, build(types), start).(ast.TSType), nil
}

// tsTypeEnds reports whether t cannot start a type, so that a word in
// front of it is a type name rather than an operator.
func tsTypeEnds(t lexer.TokenType) bool {
	switch t {
	case lexer.COMMA, lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE, lexer.GT, lexer.SEMICOLON,
		lexer.ASSIGN, lexer.PIPE, lexer.BITWISE_AND, lexer.QUESTION, lexer.COLON, lexer.EOF,
		lexer.EXTENDS, lexer.DOT, lexer.ARROW:
		return true
	}
	return false
}

// tsParseTypeOperator parses keyof, unique, readonly and infer.
func (p *Parser) tsParseTypeOperator() (ast.TSType, error) {
	start := p.startPos()
	if p.cur() == lexer.IDENT && !p.l.Escaped() {
		switch word := p.l.Value(); word {
		case "keyof", "unique", "readonly":
			if tsTypeEnds(p.peek().Type) {
				break
			}
			p.nextToken()
			t, err := p.tsParseTypeOperator()
			if err != nil {
				return nil, err
			}
			return finish(p, &ast.TSTypeOperator{Operator: word, TypeAnnotation: t}, start), nil
		case "infer":
			if !isIdentifierType(p.peek().Type) {
				break
			}
			p.nextToken()
			tpStart := p.startPos()
			tp := &ast.TSTypeParameter{Name: p.l.Value()}
			p.nextToken()
			if p.cur() == lexer.EXTENDS {
				if c, ok := tryParse(p, p.tsParseInferConstraint); ok {
					tp.Constraint = c
				}
			}
			finish(p, tp, tpStart)
			return finish(p, &ast.TSInferType{TypeParameter: tp}, start), nil
		}
	}
	return p.tsParsePostfixType()
}

// tsParseInferConstraint parses `extends C` after `infer U`. It fails when
// the clause is really the extends of a conditional type.
func (p *Parser) tsParseInferConstraint() (ast.TSType, error) {
	p.nextToken()
	c, err := p.tsParseNonConditionalType()
	if err != nil {
		return nil, err
	}
	if p.cur() == lexer.QUESTION {
		return nil, p.unexpected()
	}
	return c, nil
}

// tsParsePostfixType parses T[] and T[K] suffixes.
func (p *Parser) tsParsePostfixType() (ast.TSType, error) {
	start := p.startPos()
	t, err := p.tsParsePrimaryType()
	if err != nil {
		return nil, err
	}
	for p.cur() == lexer.LBRACKET && !p.l.NewlineBefore() {
		p.nextToken()
		if p.eat(lexer.RBRACKET) {
			t = finish(p, &ast.TSArrayType{ElementType: t}, start)
			continue
		}
		idx, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		t = finish(p, &ast.TSIndexedAccessType{ObjectType: t, IndexType: idx}, start)
	}
	return t, nil
}

func (p *Parser) tsParsePrimaryType() (ast.TSType, error) {
	start := p.startPos()
	switch p.cur() {
	case lexer.IDENT:
		if name := p.l.Value(); tsKeywordTypes[name] && !p.l.Escaped() && !p.peekTokenIs(lexer.DOT) {
			p.nextToken()
			return finish(p, &ast.TSKeywordType{Name: name}, start), nil
		}
		return p.tsParseTypeReference()
	case lexer.LET, lexer.YIELD, lexer.AWAIT:
		return p.tsParseTypeReference()
	case lexer.VOID:
		p.nextToken()
		return finish(p, &ast.TSKeywordType{Name: "void"}, start), nil
	case lexer.NULL:
		p.nextToken()
		return finish(p, &ast.TSKeywordType{Name: "null"}, start), nil
	case lexer.THIS:
		p.nextToken()
		return finish(p, &ast.TSThisType{}, start), nil
	case lexer.TYPEOF:
		return p.tsParseTypeQuery()
	case lexer.STRING, lexer.NUMBER, lexer.BIGINT, lexer.TRUE, lexer.FALSE:
		lit, err := p.tsParseLiteral()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.TSLiteralType{Literal: lit}, start), nil
	case lexer.MINUS:
		if next := p.peek().Type; next != lexer.NUMBER && next != lexer.BIGINT {
			break
		}
		p.nextToken()
		lit, err := p.tsParseLiteral()
		if err != nil {
			return nil, err
		}
		neg := finish(p, &ast.UnaryExpression{Operator: "-", Argument: lit}, start)
		return finish(p, &ast.TSLiteralType{Literal: neg}, start), nil
	case lexer.TEMPLATE_STRING:
		tl, err := p.parseTemplate(false)
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.TSLiteralType{Literal: tl}, start), nil
	case lexer.TEMPLATE_HEAD:
		return p.tsParseTemplateLiteralType()
	case lexer.LBRACE:
		if next := p.peek(); next.Type == lexer.LBRACKET || next.Type == lexer.PLUS ||
			next.Type == lexer.MINUS || isContextualToken(next, "readonly") {
			if m, ok := tryParse(p, p.tsParseMappedType); ok {
				return m, nil
			}
		}
		members, err := p.tsParseObjectTypeMembers()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.TSTypeLiteral{Members: members}, start), nil
	case lexer.LBRACKET:
		return p.tsParseTupleType()
	case lexer.LPAREN:
		p.nextToken()
		t, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		return t, p.expect(lexer.RPAREN)
	}
	if err := p.l.Err(); err != nil {
		return nil, err
	}
	return nil, p.fatal(start, errors.MsgTSTypeExpected)
}

func (p *Parser) tsParseLiteral() (ast.Expression, error) {
	switch p.cur() {
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.NUMBER:
		return p.parseNumericLiteral()
	case lexer.BIGINT:
		return p.parseBigIntLiteral()
	case lexer.TRUE, lexer.FALSE:
		start := p.startPos()
		value := p.cur() == lexer.TRUE
		p.nextToken()
		return finish(p, &ast.BooleanLiteral{Value: value}, start), nil
	}
	return nil, p.unexpected()
}

// tsParseEntityName parses a, a.b.c or this.a in type position.
func (p *Parser) tsParseEntityName() (ast.Node, error) {
	start := p.startPos()
	var name ast.Node
	if p.cur() == lexer.THIS {
		tok := p.l.Token()
		p.nextToken()
		name = p.arena.NewIdentifier("this", tok.Start, tok.End)
	} else {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		name = id
	}
	for p.eat(lexer.DOT) {
		right, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		name = finish(p, &ast.TSQualifiedName{Left: name, Right: right}, start)
	}
	return name, nil
}

func (p *Parser) tsParseTypeReference() (ast.TSType, error) {
	start := p.startPos()
	name, err := p.tsParseEntityName()
	if err != nil {
		return nil, err
	}
	ref := &ast.TSTypeReference{TypeName: name}
	if (p.cur() == lexer.LT || p.cur() == lexer.LEFT_SHIFT) && !p.l.NewlineBefore() {
		if ref.TypeArguments, err = p.tsParseTypeArguments(); err != nil {
			return nil, err
		}
	}
	return finish(p, ref, start), nil
}

// tsParseTypeQuery parses `typeof name<Args>`.
func (p *Parser) tsParseTypeQuery() (ast.TSType, error) {
	start := p.startPos()
	p.nextToken()
	name, err := p.tsParseEntityName()
	if err != nil {
		return nil, err
	}
	q := &ast.TSTypeQuery{ExprName: name}
	if p.cur() == lexer.LT && !p.l.NewlineBefore() {
		if q.TypeArguments, err = p.tsParseTypeArguments(); err != nil {
			return nil, err
		}
	}
	return finish(p, q, start), nil
}

func (p *Parser) tsParseTemplateLiteralType() (ast.TSType, error) {
	start := p.startPos()
	t := &ast.TSTemplateLiteralType{}
	for {
		tok := p.l.Token()
		invalid := p.l.TemplateInvalidEscape()
		if invalid {
			p.errs.Report(errors.MsgTemplateEscape, tok.Start)
		}
		el := &ast.TemplateElement{Raw: templateRaw(tok), Cooked: tok.Value, Invalid: invalid}
		el.Tail = tok.Type == lexer.TEMPLATE_TAIL
		el.SetLoc(tok.Start, tok.End)
		t.Quasis = append(t.Quasis, el)
		p.nextToken()
		if el.Tail {
			return finish(p, t, start), nil
		}
		typ, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		t.Types = append(t.Types, typ)
		if p.cur() != lexer.TEMPLATE_MIDDLE && p.cur() != lexer.TEMPLATE_TAIL {
			return nil, p.unexpected()
		}
	}
}

// tsParseMappedType parses `{ readonly [K in T as N]?: V }`.
func (p *Parser) tsParseMappedType() (ast.TSType, error) {
	start := p.startPos()
	p.nextToken() // '{'
	m := &ast.TSMappedType{}
	switch {
	case p.cur() == lexer.PLUS || p.cur() == lexer.MINUS:
		m.Readonly = string(p.cur())
		p.nextToken()
		if err := p.expectContextual("readonly"); err != nil {
			return nil, err
		}
	case p.eatContextual("readonly"):
		m.Readonly = "true"
	}
	if err := p.expect(lexer.LBRACKET); err != nil {
		return nil, err
	}
	tpStart := p.startPos()
	if !p.isIdentifierToken() {
		return nil, p.unexpected()
	}
	tp := &ast.TSTypeParameter{Name: p.l.Value()}
	p.nextToken()
	if err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	c, err := p.tsParseType()
	if err != nil {
		return nil, err
	}
	tp.Constraint = c
	m.TypeParameter = finish(p, tp, tpStart)
	if p.eatContextual("as") {
		if m.NameType, err = p.tsParseType(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	switch {
	case p.cur() == lexer.PLUS || p.cur() == lexer.MINUS:
		m.Optional = string(p.cur())
		p.nextToken()
		if err := p.expect(lexer.QUESTION); err != nil {
			return nil, err
		}
	case p.eat(lexer.QUESTION):
		m.Optional = "true"
	}
	if p.cur() == lexer.COLON {
		if m.TypeAnnotation, err = p.tsParseTypeAnnotation(); err != nil {
			return nil, err
		}
	}
	if !p.eat(lexer.SEMICOLON) {
		p.eat(lexer.COMMA)
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return finish(p, m, start), nil
}

func (p *Parser) tsParseTupleType() (ast.TSType, error) {
	start := p.startPos()
	p.nextToken() // '['
	tuple := &ast.TSTupleType{ElementTypes: []ast.TSType{}}
	for p.cur() != lexer.RBRACKET {
		el, err := p.tsParseTupleElement()
		if err != nil {
			return nil, err
		}
		tuple.ElementTypes = append(tuple.ElementTypes, el)
		if p.cur() != lexer.RBRACKET {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	p.nextToken()
	return finish(p, tuple, start), nil
}

func (p *Parser) tsParseTupleElement() (ast.TSType, error) {
	start := p.startPos()
	rest := p.eat(lexer.SPREAD)
	elStart := p.startPos()
	var el ast.TSType
	if p.tsIsNamedTupleMember() {
		label, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		optional := p.eat(lexer.QUESTION)
		t, err := p.tsParseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		el = finish(p, &ast.TSNamedTupleMember{Label: label, ElementType: t, Optional: optional}, elStart)
	} else {
		t, err := p.tsParseType()
		if err != nil {
			return nil, err
		}
		el = t
		if p.cur() == lexer.QUESTION {
			p.nextToken()
			el = finish(p, &ast.TSOptionalType{TypeAnnotation: t}, elStart)
		}
	}
	if rest {
		return finish(p, &ast.TSRestType{TypeAnnotation: el}, start), nil
	}
	return el, nil
}

// tsIsNamedTupleMember reports whether a `name:` or `name?:` label starts
// the current tuple element.
func (p *Parser) tsIsNamedTupleMember() bool {
	if !lexer.IsIdentifierName(p.cur()) {
		return false
	}
	snap := p.l.Fork()
	defer p.l.Restore(snap)
	p.nextToken()
	p.eat(lexer.QUESTION)
	return p.cur() == lexer.COLON
}

// tsParseObjectTypeMembers parses the braces of a type literal or
// interface body. Members are separated by ';', ',' or a line break.
func (p *Parser) tsParseObjectTypeMembers() ([]ast.Node, error) {
	return tsInType(p, func() ([]ast.Node, error) {
		if err := p.expect(lexer.LBRACE); err != nil {
			return nil, err
		}
		members := []ast.Node{}
		for p.cur() != lexer.RBRACE {
			m, err := p.tsParseTypeMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
			if !p.eat(lexer.SEMICOLON) && !p.eat(lexer.COMMA) &&
				p.cur() != lexer.RBRACE && !p.l.NewlineBefore() {
				return nil, p.unexpected()
			}
		}
		p.nextToken()
		return members, nil
	})
}

func (p *Parser) tsParseTypeMember() (ast.Node, error) {
	start := p.startPos()
	if p.cur() == lexer.LPAREN || p.cur() == lexer.LT {
		tps, params, ret, err := p.tsParseSignature()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.TSCallSignatureDeclaration{TypeParameters: tps, Params: params, ReturnType: ret}, start), nil
	}
	if p.cur() == lexer.NEW {
		if next := p.peek().Type; next == lexer.LPAREN || next == lexer.LT {
			p.nextToken()
			tps, params, ret, err := p.tsParseSignature()
			if err != nil {
				return nil, err
			}
			return finish(p, &ast.TSConstructSignatureDeclaration{TypeParameters: tps, Params: params, ReturnType: ret}, start), nil
		}
	}
	readonly := false
	if p.isContextual("readonly") {
		if next := p.peek(); !next.NewlineBefore && isPropertyNameStart(next.Type) {
			readonly = true
			p.nextToken()
		}
	}
	if p.cur() == lexer.LBRACKET && p.tsIsIndexSignature() {
		return p.tsParseIndexSignature(start, readonly, false)
	}
	kind := ast.MethodMethod
	if p.isContextual("get") || p.isContextual("set") {
		if next := p.peek(); isPropertyNameStart(next.Type) {
			kind = p.l.Value()
			p.nextToken()
		}
	}
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	optional := p.eat(lexer.QUESTION)
	if kind != ast.MethodMethod || p.cur() == lexer.LPAREN || p.cur() == lexer.LT {
		tps, params, ret, err := p.tsParseSignature()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.TSMethodSignature{
			Key:            key,
			MethodKind:     kind,
			TypeParameters: tps,
			Params:         params,
			ReturnType:     ret,
			Computed:       computed,
			Optional:       optional,
		}, start), nil
	}
	prop := &ast.TSPropertySignature{Key: key, Computed: computed, Optional: optional, Readonly: readonly}
	if p.cur() == lexer.COLON {
		if prop.TypeAnnotation, err = p.tsParseTypeAnnotation(); err != nil {
			return nil, err
		}
	}
	return finish(p, prop, start), nil
}

// tsIsIndexSignature reports whether the current '[' opens `[name: T]`
// rather than a computed key.
func (p *Parser) tsIsIndexSignature() bool {
	snap := p.l.Fork()
	defer p.l.Restore(snap)
	p.nextToken()
	if !lexer.IsIdentifierName(p.cur()) {
		return false
	}
	p.nextToken()
	return p.cur() == lexer.COLON || p.cur() == lexer.COMMA
}

// tsParseIndexSignature parses `[key: K]: V` with '[' current.
func (p *Parser) tsParseIndexSignature(start source.Position, readonly, static bool) (*ast.TSIndexSignature, error) {
	return tsInType(p, func() (*ast.TSIndexSignature, error) {
		p.nextToken() // '['
		sig := &ast.TSIndexSignature{Parameters: []*ast.Identifier{}, Readonly: readonly, Static: static}
		for p.cur() != lexer.RBRACKET {
			id, err := p.parseIdentifierName()
			if err != nil {
				return nil, err
			}
			if err := p.tsParseBindingAnnotation(id); err != nil {
				return nil, err
			}
			sig.Parameters = append(sig.Parameters, id)
			if p.cur() != lexer.RBRACKET {
				if err := p.expect(lexer.COMMA); err != nil {
					return nil, err
				}
			}
		}
		if len(sig.Parameters) != 1 {
			p.errs.Report(errors.MsgTSIndexSignatureParams, start)
		}
		p.nextToken()
		if p.cur() == lexer.COLON {
			ann, err := p.tsParseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			sig.TypeAnnotation = ann
		}
		return finish(p, sig, start), nil
	})
}

// tsParseParameterModifiers reads accessibility, readonly and override in
// front of a constructor parameter.
func (p *Parser) tsParseParameterModifiers() (ast.Modifiers, bool, error) {
	var mods ast.Modifiers
	found := false
	for p.cur() == lexer.IDENT && !p.l.Escaped() {
		word := p.l.Value()
		switch word {
		case "public", "private", "protected", "readonly", "override":
		default:
			return mods, found, nil
		}
		next := p.peek()
		if next.NewlineBefore || !(isIdentifierType(next.Type) || next.Type == lexer.LBRACE || next.Type == lexer.LBRACKET) {
			return mods, found, nil
		}
		pos := p.startPos()
		switch word {
		case "readonly":
			if mods.Readonly {
				p.report(pos, errors.MsgTSDuplicateModifier, word)
			}
			mods.Readonly = true
		case "override":
			if mods.Override {
				p.report(pos, errors.MsgTSDuplicateModifier, word)
			}
			mods.Override = true
		default:
			if mods.Accessibility != "" {
				p.report(pos, errors.MsgTSAccessibilityHere, word)
			}
			mods.Accessibility = word
		}
		if !p.ctx.inType && !p.lexical.InCtor() {
			p.report(pos, errors.MsgTSAccessibilityHere, word)
		}
		found = true
		p.nextToken()
	}
	return mods, found, nil
}

// --- expressions ---

// tsParseAsExpression parses `as T`, `as const` or `satisfies T` after
// left.
func (p *Parser) tsParseAsExpression(left ast.Expression, start source.Position) (ast.Expression, error) {
	satisfies := p.isContextual("satisfies")
	p.nextToken()
	var t ast.TSType
	if !satisfies && p.cur() == lexer.CONST {
		tok := p.l.Token()
		p.nextToken()
		t = finish(p, &ast.TSTypeReference{TypeName: p.arena.NewIdentifier("const", tok.Start, tok.End)}, tok.Start)
	} else {
		var err error
		if t, err = p.tsParseType(); err != nil {
			return nil, err
		}
	}
	if satisfies {
		return finish(p, &ast.TSSatisfiesExpression{Expression: left, TypeAnnotation: t}, start), nil
	}
	return finish(p, &ast.TSAsExpression{Expression: left, TypeAnnotation: t}, start), nil
}

// tsParseTypeAssertion parses `<T>expr`, which only exists outside JSX.
func (p *Parser) tsParseTypeAssertion() (ast.Expression, error) {
	start := p.startPos()
	p.nextToken() // '<'
	var t ast.TSType
	if p.cur() == lexer.CONST {
		tok := p.l.Token()
		p.nextToken()
		t = finish(p, &ast.TSTypeReference{TypeName: p.arena.NewIdentifier("const", tok.Start, tok.End)}, tok.Start)
	} else {
		var err error
		if t, err = p.tsParseType(); err != nil {
			return nil, err
		}
	}
	if err := p.tsExpectGT(); err != nil {
		return nil, err
	}
	expr, err := p.parseMaybeUnary()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.TSTypeAssertion{TypeAnnotation: t, Expression: expr}, start), nil
}

// tsParseGenericArrow parses `<T>(params): R => body`. In JSX files a
// single unconstrained parameter needs a trailing comma, since `<T>`
// opens an element there.
func (p *Parser) tsParseGenericArrow(start source.Position, async bool) (ast.Expression, error) {
	if p.jsx && !p.tsGenericArrowInJSX() {
		return nil, p.unexpected()
	}
	tps, err := p.tsParseTypeParameters()
	if err != nil {
		return nil, err
	}
	if p.cur() != lexer.LPAREN {
		return nil, p.unexpected()
	}
	arrow := &ast.ArrowFunctionExpression{Async: async, TypeParameters: tps}
	return p.tsParseArrowFromParams(arrow, start)
}

func (p *Parser) tsGenericArrowInJSX() bool {
	snap := p.l.Fork()
	defer p.l.Restore(snap)
	p.nextToken()
	if p.cur() == lexer.CONST {
		return true
	}
	p.nextToken()
	return p.cur() == lexer.COMMA || p.cur() == lexer.EXTENDS
}

// tsParseParenArrow parses `(params): R => body` with '(' current. It
// fails unless the input is an arrow function, leaving the caller to
// parse a parenthesized expression or a call.
func (p *Parser) tsParseParenArrow(start source.Position, async bool) (ast.Expression, error) {
	return p.tsParseArrowFromParams(&ast.ArrowFunctionExpression{Async: async}, start)
}

// tsParseArrowFromParams reads the parameters as real parameters rather
// than through the expression cover grammar, so that annotations and
// optional markers are accepted.
func (p *Parser) tsParseArrowFromParams(arrow *ast.ArrowFunctionExpression, start source.Position) (ast.Expression, error) {
	p.enterArrowScope(arrow.Async)
	params, layer, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	if p.cur() == lexer.COLON {
		if arrow.ReturnType, err = p.tsParseReturnType(); err != nil {
			return nil, err
		}
	}
	if p.cur() != lexer.ARROW || p.l.NewlineBefore() {
		return nil, p.unexpected()
	}
	// parseArrowBody opens the scope again and declares the parameters.
	p.symbols.ExitFunction()
	p.lexical.Exit()
	arrow.Params = params
	if err := p.parseArrowBody(arrow, layer); err != nil {
		return nil, err
	}
	return finish(p, arrow, start), nil
}

// tsParseSubscriptTypeArguments parses `<T>` after an expression when it
// is followed by a call, a template or something that cannot continue a
// relational expression. ok is false when the '<' is an operator.
func (p *Parser) tsParseSubscriptTypeArguments(expr ast.Expression, start source.Position, noCalls bool) (ast.Expression, bool, error) {
	if noCalls {
		return expr, false, nil
	}
	next, ok := tryParse(p, func() (ast.Expression, error) {
		targs, err := p.tsParseTypeArguments()
		if err != nil {
			return nil, err
		}
		switch p.cur() {
		case lexer.LPAREN:
			if p.l.NewlineBefore() {
				break
			}
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			call := p.arena.NewCallExpression()
			call.Callee, call.Arguments, call.TypeArguments = expr, args, targs
			return finish(p, call, start), nil
		case lexer.TEMPLATE_STRING, lexer.TEMPLATE_HEAD:
			quasi, err := p.parseTemplate(true)
			if err != nil {
				return nil, err
			}
			return finish(p, &ast.TaggedTemplateExpression{Tag: expr, TypeArguments: targs, Quasi: quasi}, start), nil
		}
		if !p.tsCanFollowTypeArguments() {
			return nil, p.unexpected()
		}
		return finish(p, &ast.TSInstantiationExpression{Expression: expr, TypeArguments: targs}, start), nil
	})
	if !ok {
		return expr, false, nil
	}
	return next, true, nil
}

// tsCanFollowTypeArguments reports whether the current token ends an
// instantiation expression such as `f<T>;`. A token that could begin an
// operand means the '<' was a comparison.
func (p *Parser) tsCanFollowTypeArguments() bool {
	if p.l.NewlineBefore() {
		return true
	}
	switch p.cur() {
	case lexer.EOF, lexer.SEMICOLON, lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE, lexer.COMMA,
		lexer.COLON, lexer.DOT, lexer.OPTIONAL, lexer.QUESTION:
		return true
	case lexer.PLUS, lexer.MINUS, lexer.LT:
		return false
	}
	return lexer.IsAssignOp(p.cur()) || p.binaryPrecedence(p.cur()) > 0
}

// --- declarations ---

// tsDeclarationFollows reports whether word, followed by next, starts a
// TypeScript declaration rather than an expression.
func (p *Parser) tsDeclarationFollows(word string, next lexer.Token) bool {
	if next.NewlineBefore {
		return false
	}
	switch word {
	case "interface", "type", "namespace":
		return isIdentifierType(next.Type)
	case "module":
		return isIdentifierType(next.Type) || next.Type == lexer.STRING
	case "abstract":
		return next.Type == lexer.CLASS
	case "global":
		return p.ctx.inAmbient && next.Type == lexer.LBRACE
	case "declare":
		switch next.Type {
		case lexer.VAR, lexer.LET, lexer.CONST, lexer.FUNCTION, lexer.CLASS, lexer.ENUM:
			return true
		case lexer.IDENT:
			switch next.Literal {
			case "namespace", "module", "global", "interface", "type", "abstract":
				return true
			}
		}
	}
	return false
}

// tsParseDeclarationStatement parses a declaration introduced by a
// contextual word. ok is false when the word is an ordinary identifier.
func (p *Parser) tsParseDeclarationStatement() (ast.Statement, bool, error) {
	if p.l.Escaped() {
		return nil, false, nil
	}
	word := p.l.Value()
	if !p.tsDeclarationFollows(word, p.peek()) {
		return nil, false, nil
	}
	start := p.startPos()
	p.nextToken()
	stmt, err := p.tsParseDeclarationRest(word, start, false)
	return stmt, true, err
}

// tsParseExpressionStatementDeclaration handles a declaration word that
// was already read as an identifier expression in statement position.
func (p *Parser) tsParseExpressionStatementDeclaration(id *ast.Identifier) (ast.Statement, bool, error) {
	if id.End().Offset-id.Start().Offset != len(id.Name) || !p.tsDeclarationFollows(id.Name, p.l.Token()) {
		return nil, false, nil
	}
	stmt, err := p.tsParseDeclarationRest(id.Name, id.Start(), false)
	return stmt, true, err
}

// tsParseDeclarationRest continues after the word that introduced a
// declaration.
func (p *Parser) tsParseDeclarationRest(word string, start source.Position, declare bool) (ast.Statement, error) {
	switch word {
	case "interface":
		return p.tsParseInterfaceRest(start, declare)
	case "type":
		return p.tsParseTypeAlias(start, declare)
	case "namespace", "module":
		if word == "module" && p.cur() == lexer.STRING {
			return p.tsParseAmbientModule(start, declare)
		}
		return p.tsParseNamespace(start, word, declare)
	case "global":
		end := p.lastEnd()
		begin := source.Position{Line: end.Line, Column: end.Column - len(word), Offset: end.Offset - len(word)}
		id := p.arena.NewIdentifier(word, begin, end)
		body, err := p.tsParseModuleBlock()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.TSModuleDeclaration{ID: id, Body: body, ModuleKind: "global", Declare: declare}, start), nil
	case "abstract":
		stmt, err := p.parseClassDeclaration(start, false)
		if err != nil {
			return nil, err
		}
		c := stmt.(*ast.ClassDeclaration)
		c.Abstract = true
		c.Declare = declare
		return c, nil
	case "declare":
		return p.tsParseDeclare(start)
	}
	return nil, p.unexpected()
}

// tsParseDeclare parses what follows `declare`. Everything under it is
// ambient: bodies and initializers may be left out.
func (p *Parser) tsParseDeclare(start source.Position) (ast.Statement, error) {
	if p.ctx.inAmbient {
		p.errs.Report(errors.MsgTSDeclareHere, start)
	}
	saved := p.ctx.inAmbient
	p.ctx.inAmbient = true
	stmt, err := p.tsParseAmbientDeclaration(start)
	p.ctx.inAmbient = saved
	return stmt, err
}

func (p *Parser) tsParseAmbientDeclaration(start source.Position) (ast.Statement, error) {
	switch p.cur() {
	case lexer.VAR, lexer.LET, lexer.CONST:
		if p.cur() == lexer.CONST && p.peekTokenIs(lexer.ENUM) {
			p.nextToken()
			return p.tsParseEnum(start, true, true)
		}
		kind := ast.DeclVar
		switch p.cur() {
		case lexer.LET:
			kind = ast.DeclLet
		case lexer.CONST:
			kind = ast.DeclConst
		}
		stmt, err := p.parseVarStatement(kind)
		if err != nil {
			return nil, err
		}
		decl := stmt.(*ast.VariableDeclaration)
		decl.Declare = true
		decl.SetLoc(start, decl.End())
		return decl, nil
	case lexer.FUNCTION:
		stmt, err := p.parseFunctionDeclaration(start, false, false)
		if err != nil {
			return nil, err
		}
		if _, body := stmt.(*ast.FunctionDeclaration); body {
			p.errs.Report(errors.MsgTSAmbientBody, start)
		}
		return stmt, nil
	case lexer.CLASS:
		stmt, err := p.parseClassDeclaration(start, false)
		if err != nil {
			return nil, err
		}
		stmt.(*ast.ClassDeclaration).Declare = true
		return stmt, nil
	case lexer.ENUM:
		return p.tsParseEnum(start, false, true)
	case lexer.IDENT:
		word := p.l.Value()
		if !p.l.Escaped() && p.tsDeclarationFollows(word, p.peek()) {
			p.nextToken()
			return p.tsParseDeclarationRest(word, start, true)
		}
	}
	return nil, p.unexpected()
}

// tsParseInterface parses an interface declaration with `interface`
// current.
func (p *Parser) tsParseInterface(start source.Position, declare bool) (ast.Statement, error) {
	p.nextToken()
	return p.tsParseInterfaceRest(start, declare)
}

func (p *Parser) tsParseInterfaceRest(start source.Position, declare bool) (ast.Statement, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	decl := &ast.TSInterfaceDeclaration{ID: id, Declare: declare}
	if p.cur() == lexer.LT {
		if decl.TypeParameters, err = p.tsParseTypeParameters(); err != nil {
			return nil, err
		}
	}
	if p.eat(lexer.EXTENDS) {
		if decl.Extends, err = p.tsParseHeritageList(); err != nil {
			return nil, err
		}
	}
	bodyStart := p.startPos()
	members, err := p.tsParseObjectTypeMembers()
	if err != nil {
		return nil, err
	}
	decl.Body = finish(p, &ast.TSInterfaceBody{Body: members}, bodyStart)
	return finish(p, decl, start), nil
}

func (p *Parser) tsParseTypeAlias(start source.Position, declare bool) (ast.Statement, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	decl := &ast.TSTypeAliasDeclaration{ID: id, Declare: declare}
	if p.cur() == lexer.LT {
		if decl.TypeParameters, err = p.tsParseTypeParameters(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	if decl.TypeAnnotation, err = p.tsParseType(); err != nil {
		return nil, err
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, decl, start), nil
}

// tsParseEnum parses an enum declaration with `enum` current. Enums may
// merge with each other, so the name is not declared as a lexical binding.
func (p *Parser) tsParseEnum(start source.Position, isConst, declare bool) (ast.Statement, error) {
	p.nextToken()
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.checkClassName(id)
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	decl := &ast.TSEnumDeclaration{ID: id, Members: []*ast.TSEnumMember{}, Const: isConst, Declare: declare}
	for p.cur() != lexer.RBRACE {
		mstart := p.startPos()
		var name ast.Expression
		switch {
		case p.cur() == lexer.STRING:
			if name, err = p.parseStringLiteral(); err != nil {
				return nil, err
			}
		case lexer.IsIdentifierName(p.cur()):
			if name, err = p.parseIdentifierName(); err != nil {
				return nil, err
			}
		default:
			return nil, p.unexpected()
		}
		m := &ast.TSEnumMember{ID: name}
		if p.eat(lexer.ASSIGN) {
			if m.Initializer, err = p.parseMaybeAssign(); err != nil {
				return nil, err
			}
		}
		decl.Members = append(decl.Members, finish(p, m, mstart))
		switch p.cur() {
		case lexer.COMMA:
			p.nextToken()
		case lexer.RBRACE:
		default:
			return nil, p.fatal(p.startPos(), errors.MsgTSEnumMemberName)
		}
	}
	p.nextToken()
	return finish(p, decl, start), nil
}

// tsParseNamespace parses `namespace A.B { ... }` after the keyword.
// Dotted names nest one declaration per segment.
func (p *Parser) tsParseNamespace(start source.Position, kind string, declare bool) (ast.Statement, error) {
	return p.tsParseNamespaceSegment(start, kind, declare)
}

func (p *Parser) tsParseNamespaceSegment(start source.Position, kind string, declare bool) (*ast.TSModuleDeclaration, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	decl := &ast.TSModuleDeclaration{ID: id, ModuleKind: kind, Declare: declare}
	if p.eat(lexer.DOT) {
		inner, err := p.tsParseNamespaceSegment(p.startPos(), kind, false)
		if err != nil {
			return nil, err
		}
		decl.Body = inner
	} else {
		body, err := p.tsParseModuleBlock()
		if err != nil {
			return nil, err
		}
		decl.Body = body
	}
	return finish(p, decl, start), nil
}

// tsParseAmbientModule parses `module "name" { ... }` or the shorthand
// `module "name";`.
func (p *Parser) tsParseAmbientModule(start source.Position, declare bool) (ast.Statement, error) {
	name, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}
	decl := &ast.TSModuleDeclaration{ID: name, ModuleKind: "module", Declare: declare}
	if p.cur() != lexer.LBRACE {
		if err := p.semicolon(); err != nil {
			return nil, err
		}
		return finish(p, decl, start), nil
	}
	body, err := p.tsParseModuleBlock()
	if err != nil {
		return nil, err
	}
	decl.Body = body
	return finish(p, decl, start), nil
}

// tsParseModuleBlock parses the body of a namespace or ambient module. It
// is a var scope of its own and may contain import and export.
func (p *Parser) tsParseModuleBlock() (*ast.TSModuleBlock, error) {
	start := p.startPos()
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	saved := p.ctx.inModuleBlock
	p.ctx.inModuleBlock = true
	p.lexical.EnterBlock()
	p.symbols.EnterFunction()
	block := &ast.TSModuleBlock{Body: []ast.Statement{}}
	for p.cur() != lexer.RBRACE {
		if p.cur() == lexer.EOF {
			return nil, p.unexpected()
		}
		stmt, err := p.parseStatementListItem(false)
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}
	p.symbols.ExitFunction()
	p.lexical.Exit()
	p.ctx.inModuleBlock = saved
	p.nextToken()
	return finish(p, block, start), nil
}

// tsParseImportEquals parses `x = require("m")` or `x = A.B` after
// `import` and an optional `type`.
func (p *Parser) tsParseImportEquals(start source.Position, isExport, typeOnly bool) (ast.Statement, error) {
	id, err := p.parseBindingIdentifier(true)
	if err != nil {
		return nil, err
	}
	p.declare(id, bindConst)
	if isExport {
		p.declareExport(id.Name, id.Start())
	}
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	decl := &ast.TSImportEqualsDeclaration{ID: id, IsExport: isExport, TypeOnly: typeOnly}
	if p.isContextual("require") && p.peekTokenIs(lexer.LPAREN) {
		rstart := p.startPos()
		p.nextToken()
		p.nextToken()
		if p.cur() != lexer.STRING {
			return nil, p.unexpected()
		}
		src, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		decl.ModuleReference = finish(p, &ast.TSExternalModuleReference{Expression: src}, rstart)
	} else {
		ref, err := tsInType(p, p.tsParseEntityName)
		if err != nil {
			return nil, err
		}
		decl.ModuleReference = ref
	}
	if err := p.semicolon(); err != nil {
		return nil, err
	}
	return finish(p, decl, start), nil
}

package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
)

// --- binding patterns read directly ---

// parseBindingTarget parses a BindingIdentifier or a destructuring
// pattern. lexicalDecl is passed down to every name bound.
func (p *Parser) parseBindingTarget(lexicalDecl bool) (ast.Pattern, error) {
	switch p.cur() {
	case lexer.LBRACKET:
		return p.parseArrayPattern(lexicalDecl)
	case lexer.LBRACE:
		return p.parseObjectPattern(lexicalDecl)
	}
	return p.parseBindingIdentifier(lexicalDecl)
}

// parseBindingElement parses a binding target with an optional default.
func (p *Parser) parseBindingElement(lexicalDecl bool) (ast.Pattern, error) {
	start := p.startPos()
	left, err := p.parseBindingTarget(lexicalDecl)
	if err != nil {
		return nil, err
	}
	if !p.eat(lexer.ASSIGN) {
		return left, nil
	}
	right, err := p.parseMaybeAssign()
	if err != nil {
		return nil, err
	}
	return finish(p, &ast.AssignmentPattern{Left: left, Right: right}, start), nil
}

func (p *Parser) parseRestBinding(lexicalDecl bool) (*ast.RestElement, error) {
	start := p.startPos()
	p.nextToken()
	arg, err := p.parseBindingTarget(lexicalDecl)
	if err != nil {
		return nil, err
	}
	rest := &ast.RestElement{Argument: arg}
	if p.cur() == lexer.ASSIGN {
		return nil, p.fatal(p.startPos(), errors.MsgRestInit)
	}
	if p.cur() == lexer.COMMA {
		return nil, p.fatal(p.startPos(), errors.MsgRestTrailingComma)
	}
	return finish(p, rest, start), nil
}

func (p *Parser) parseArrayPattern(lexicalDecl bool) (ast.Pattern, error) {
	start := p.startPos()
	p.nextToken()
	pat := &ast.ArrayPattern{}
	for p.cur() != lexer.RBRACKET {
		if p.cur() == lexer.COMMA {
			p.nextToken()
			pat.Elements = append(pat.Elements, nil)
			continue
		}
		if p.cur() == lexer.SPREAD {
			rest, err := p.parseRestBinding(lexicalDecl)
			if err != nil {
				return nil, err
			}
			pat.Elements = append(pat.Elements, rest)
			break
		}
		el, err := p.parseBindingElement(lexicalDecl)
		if err != nil {
			return nil, err
		}
		pat.Elements = append(pat.Elements, el)
		if p.cur() != lexer.RBRACKET {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return finish(p, pat, start), nil
}

func (p *Parser) parseObjectPattern(lexicalDecl bool) (ast.Pattern, error) {
	start := p.startPos()
	p.nextToken()
	pat := &ast.ObjectPattern{}
	for p.cur() != lexer.RBRACE {
		if p.cur() == lexer.SPREAD {
			if next := p.peek().Type; next == lexer.LBRACE || next == lexer.LBRACKET {
				p.errs.Report(errors.MsgObjectRestBinding, p.peek().Start)
			}
			rest, err := p.parseRestBinding(lexicalDecl)
			if err != nil {
				return nil, err
			}
			pat.Properties = append(pat.Properties, rest)
			break
		}
		prop, err := p.parseBindingProperty(lexicalDecl)
		if err != nil {
			return nil, err
		}
		pat.Properties = append(pat.Properties, prop)
		if p.cur() != lexer.RBRACE {
			if err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return finish(p, pat, start), nil
}

func (p *Parser) parseBindingProperty(lexicalDecl bool) (*ast.PatternProperty, error) {
	start := p.startPos()
	keyTok := p.l.Token()
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	prop := &ast.PatternProperty{Key: key, Computed: computed}
	if p.eat(lexer.COLON) {
		value, err := p.parseBindingElement(lexicalDecl)
		if err != nil {
			return nil, err
		}
		prop.Value = value
		return finish(p, prop, start), nil
	}
	id, ok := key.(*ast.Identifier)
	if computed || !ok || !isIdentifierType(keyTok.Type) {
		return nil, p.fatal(keyTok.Start, errors.MsgUnexpectedTokenValue, keyTok.Literal)
	}
	p.checkBindingIdentifier(id.Name, id.Start(), lexicalDecl)
	prop.Shorthand = true
	prop.Value = id
	if p.eat(lexer.ASSIGN) {
		right, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		prop.Value = finish(p, &ast.AssignmentPattern{Left: id, Right: right}, start)
	}
	return finish(p, prop, start), nil
}

// --- cover grammar ---

// checkPatternIdentifier applies the rules for a name that is assigned or
// bound after it was read as a reference. Everything else was checked
// when the reference was parsed.
func (p *Parser) checkPatternIdentifier(id *ast.Identifier) {
	if id.Name == "eval" || id.Name == "arguments" {
		p.checkEvalArguments(id.Name, id.Start())
	}
}

// toPattern reinterprets an expression as an assignment target, or as a
// binding pattern when binding is set (arrow parameters). Invalid targets
// are reported and replaced by a placeholder so that parsing goes on.
func (p *Parser) toPattern(e ast.Expression, binding bool) ast.Pattern {
	switch n := e.(type) {
	case *ast.Identifier:
		if binding && n.Parenthesized() {
			p.errs.Report(errors.MsgInvalidParenPattern, n.Start())
		}
		p.checkPatternIdentifier(n)
		return n
	case *ast.MemberExpression:
		if binding {
			p.errs.Report(errors.MsgBindingMember, n.Start())
		}
		return n
	case *ast.ChainExpression:
		p.errs.Report(errors.MsgOptionalChainAssign, n.Start())
		return invalidPattern(n)
	case *ast.ObjectExpression:
		if n.Parenthesized() {
			p.errs.Report(errors.MsgInvalidParenPattern, n.Start())
		}
		return p.objectToPattern(n, binding)
	case *ast.ArrayExpression:
		if n.Parenthesized() {
			p.errs.Report(errors.MsgInvalidParenPattern, n.Start())
		}
		return p.arrayToPattern(n, binding)
	case *ast.AssignmentExpression:
		if n.Parenthesized() {
			p.errs.Report(errors.MsgInvalidParenPattern, n.Start())
		}
		if n.Operator != "=" {
			p.errs.Report(errors.MsgInvalidAssignTarget, n.Start())
		}
		if binding {
			p.checkBindingTargets(n.Left)
		}
		ap := &ast.AssignmentPattern{Left: n.Left, Right: n.Right}
		ap.SetLoc(n.Start(), n.End())
		return ap
	case *ast.TSAsExpression, *ast.TSSatisfiesExpression, *ast.TSNonNullExpression, *ast.TSTypeAssertion:
		if binding || !p.isSimpleAssignTarget(e) {
			p.errs.Report(errors.MsgInvalidAssignTarget, e.Start())
		}
		return e.(ast.Pattern)
	}
	p.errs.Report(errors.MsgInvalidAssignTarget, e.Start())
	return invalidPattern(e)
}

// invalidPattern stands in for a target that was already reported.
func invalidPattern(e ast.Expression) ast.Pattern {
	id := &ast.Identifier{}
	id.SetLoc(e.Start(), e.End())
	return id
}

// checkBindingTargets reports the parts of an assignment target that are
// not allowed once it turns out to be a binding.
func (p *Parser) checkBindingTargets(pat ast.Pattern) {
	switch n := pat.(type) {
	case *ast.Identifier:
		if n.Parenthesized() {
			p.errs.Report(errors.MsgInvalidParenPattern, n.Start())
		}
	case *ast.MemberExpression:
		p.errs.Report(errors.MsgBindingMember, n.Start())
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			p.checkBindingTargets(prop)
		}
	case *ast.PatternProperty:
		p.checkBindingTargets(n.Value)
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				p.checkBindingTargets(el)
			}
		}
	case *ast.AssignmentPattern:
		p.checkBindingTargets(n.Left)
	case *ast.RestElement:
		p.checkBindingTargets(n.Argument)
	case *ast.TSAsExpression, *ast.TSSatisfiesExpression, *ast.TSNonNullExpression, *ast.TSTypeAssertion:
		p.errs.Report(errors.MsgInvalidAssignTarget, n.Start())
	}
}

func (p *Parser) objectToPattern(obj *ast.ObjectExpression, binding bool) *ast.ObjectPattern {
	pat := &ast.ObjectPattern{}
	pat.SetLoc(obj.Start(), obj.End())
	off := obj.Start().Offset
	delete(p.ctx.protoDups, off)
	restComma, hasRestComma := p.ctx.restCommas[off]
	delete(p.ctx.restCommas, off)
	last := len(obj.Properties) - 1
	for i, prop := range obj.Properties {
		switch n := prop.(type) {
		case *ast.Property:
			if n.PropKind != ast.PropertyInit || n.Method {
				p.errs.Report(errors.MsgInvalidAssignTarget, n.Start())
				continue
			}
			pp := &ast.PatternProperty{
				Key:       n.Key,
				Value:     p.toPattern(n.Value, binding),
				Computed:  n.Computed,
				Shorthand: n.Shorthand,
			}
			pp.SetLoc(n.Start(), n.End())
			pat.Properties = append(pat.Properties, pp)
		case *ast.CoverInitializedName:
			delete(p.ctx.coverInits, n.Start().Offset)
			p.checkPatternIdentifier(n.Key)
			ap := &ast.AssignmentPattern{Left: n.Key, Right: n.Value}
			ap.SetLoc(n.Start(), n.End())
			pp := &ast.PatternProperty{Key: n.Key, Value: ap, Shorthand: true}
			pp.SetLoc(n.Start(), n.End())
			pat.Properties = append(pat.Properties, pp)
		case *ast.SpreadElement:
			if i != last {
				p.errs.Report(errors.MsgRestNotLast, n.Start())
			} else if hasRestComma {
				p.errs.Report(errors.MsgRestTrailingComma, restComma)
			}
			var arg ast.Pattern
			id, isIdent := n.Argument.(*ast.Identifier)
			switch {
			case binding && isIdent && !id.Parenthesized():
				arg = p.toPattern(id, true)
			case binding:
				p.errs.Report(errors.MsgObjectRestBinding, n.Argument.Start())
				arg = invalidPattern(n.Argument)
			case p.isSimpleAssignTarget(n.Argument):
				arg = p.toPattern(n.Argument, false)
			default:
				p.errs.Report(errors.MsgInvalidAssignTarget, n.Argument.Start())
				arg = invalidPattern(n.Argument)
			}
			rest := &ast.RestElement{Argument: arg}
			rest.SetLoc(n.Start(), n.End())
			pat.Properties = append(pat.Properties, rest)
		}
	}
	return pat
}

func (p *Parser) arrayToPattern(arr *ast.ArrayExpression, binding bool) *ast.ArrayPattern {
	pat := &ast.ArrayPattern{}
	pat.SetLoc(arr.Start(), arr.End())
	off := arr.Start().Offset
	restComma, hasRestComma := p.ctx.restCommas[off]
	delete(p.ctx.restCommas, off)
	last := len(arr.Elements) - 1
	for i, el := range arr.Elements {
		if el == nil {
			pat.Elements = append(pat.Elements, nil)
			continue
		}
		sp, ok := el.(*ast.SpreadElement)
		if !ok {
			pat.Elements = append(pat.Elements, p.toPattern(el, binding))
			continue
		}
		if i != last {
			p.errs.Report(errors.MsgRestNotLast, sp.Start())
		} else if hasRestComma {
			p.errs.Report(errors.MsgRestTrailingComma, restComma)
		}
		pat.Elements = append(pat.Elements, p.spreadToRest(sp, binding))
	}
	return pat
}

func (p *Parser) spreadToRest(sp *ast.SpreadElement, binding bool) *ast.RestElement {
	if a, ok := sp.Argument.(*ast.AssignmentExpression); ok && !a.Parenthesized() {
		p.errs.Report(errors.MsgRestInit, a.Start())
	}
	rest := &ast.RestElement{Argument: p.toPattern(sp.Argument, binding)}
	rest.SetLoc(sp.Start(), sp.End())
	return rest
}

// toParams converts the expressions read inside parentheses or call
// arguments into arrow parameters.
func (p *Parser) toParams(exprs []ast.Expression) []ast.Pattern {
	params := make([]ast.Pattern, 0, len(exprs))
	for i, e := range exprs {
		if sp, ok := e.(*ast.SpreadElement); ok {
			if i != len(exprs)-1 {
				p.errs.Report(errors.MsgRestNotLast, sp.Start())
			}
			params = append(params, p.spreadToRest(sp, true))
			continue
		}
		params = append(params, p.toPattern(e, true))
	}
	return params
}

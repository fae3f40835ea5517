package parser

import (
	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/source"
)

// The lexer scans lazily, so a mode must be set before the token it
// applies to is consumed into place. jsxModes saves the three JSX
// switches so they can be put back.
type jsxModes struct {
	tag, str, gt bool
}

func (p *Parser) setJSXModes(m jsxModes) jsxModes {
	return jsxModes{
		tag: p.l.SetJSXTagMode(m.tag),
		str: p.l.SetJSXStringMode(m.str),
		gt:  p.l.SetHighPriorityGreaterThan(m.gt),
	}
}

var (
	tagModes    = jsxModes{tag: true, str: true, gt: true}
	normalModes = jsxModes{}
)

// parseJSXElementOrFragment parses a JSX element in expression position.
func (p *Parser) parseJSXElementOrFragment() (ast.Expression, error) {
	el, err := p.parseJSXElement(false)
	if err != nil {
		return nil, err
	}
	if p.cur() == lexer.LT {
		return nil, p.fatal(p.startPos(), errors.MsgJSXAdjacent)
	}
	return el, nil
}

// parseJSXElement parses an element or fragment whose '<' is current.
// With nested set the token after it is scanned as child content.
func (p *Parser) parseJSXElement(nested bool) (ast.Expression, error) {
	start := p.startPos()
	outer := p.setJSXModes(tagModes)
	p.nextToken() // '<'

	if p.cur() == lexer.GT {
		children, err := p.parseJSXChildren()
		if err != nil {
			return nil, err
		}
		p.setJSXModes(tagModes)
		p.nextToken() // '</'
		if p.cur() != lexer.GT {
			return nil, p.fatal(p.startPos(), errors.MsgJSXUnclosed, "")
		}
		p.finishJSXTag(outer, nested)
		return finish(p, &ast.JSXFragment{Children: children}, start), nil
	}

	opening, err := p.parseJSXOpeningElement(start)
	if err != nil {
		return nil, err
	}
	el := &ast.JSXElement{Opening: opening, Children: []ast.Node{}}
	if opening.SelfClosing {
		p.finishJSXTag(outer, nested)
		opening.SetLoc(start, p.lastEnd())
		return finish(p, el, start), nil
	}
	opening.SetLoc(start, p.l.EndPos())
	if el.Children, err = p.parseJSXChildren(); err != nil {
		return nil, err
	}
	cstart := p.startPos()
	p.setJSXModes(tagModes)
	p.nextToken() // '</'
	name, err := p.parseJSXElementName()
	if err != nil {
		return nil, err
	}
	if ast.JSXName(name) != ast.JSXName(opening.Name) {
		return nil, p.fatal(name.Start(), errors.MsgJSXUnclosed, ast.JSXName(opening.Name))
	}
	if p.cur() != lexer.GT {
		return nil, p.unexpected()
	}
	closingEnd := p.l.EndPos()
	p.finishJSXTag(outer, nested)
	closing := &ast.JSXClosingElement{Name: name}
	closing.SetLoc(cstart, closingEnd)
	el.Closing = closing
	return finish(p, el, start), nil
}

// finishJSXTag consumes the '>' or '/>' ending a construct and scans the
// next token in the right mode.
func (p *Parser) finishJSXTag(outer jsxModes, nested bool) {
	p.setJSXModes(outer)
	if nested {
		p.setJSXModes(normalModes)
		p.l.NextInJSXChildren()
		return
	}
	p.nextToken()
}

// parseJSXOpeningElement parses the name and attributes after '<'. It
// stops on the closing '>' or consumes nothing after '/>'.
func (p *Parser) parseJSXOpeningElement(start source.Position) (*ast.JSXOpeningElement, error) {
	name, err := p.parseJSXElementName()
	if err != nil {
		return nil, err
	}
	opening := &ast.JSXOpeningElement{Name: name, Attributes: []ast.Node{}}
	if p.ts && p.cur() == lexer.LT {
		targs, err := p.tsParseTypeArguments()
		if err != nil {
			return nil, err
		}
		opening.TypeArguments = targs
	}
	for p.cur() != lexer.GT && p.cur() != lexer.JSX_SELF_CLOSING {
		attr, err := p.parseJSXAttribute()
		if err != nil {
			return nil, err
		}
		opening.Attributes = append(opening.Attributes, attr)
	}
	opening.SelfClosing = p.cur() == lexer.JSX_SELF_CLOSING
	return opening, nil
}

func (p *Parser) parseJSXIdentifier() (*ast.JSXIdentifier, error) {
	if !lexer.IsIdentifierName(p.cur()) {
		return nil, p.unexpected()
	}
	tok := p.l.Token()
	p.nextToken()
	id := &ast.JSXIdentifier{Name: tok.Value}
	id.SetLoc(tok.Start, tok.End)
	return id, nil
}

// parseJSXElementName parses a, a:b or a.b.c.
func (p *Parser) parseJSXElementName() (ast.Node, error) {
	start := p.startPos()
	id, err := p.parseJSXIdentifier()
	if err != nil {
		return nil, err
	}
	if p.eat(lexer.COLON) {
		name, err := p.parseJSXIdentifier()
		if err != nil {
			return nil, err
		}
		return finish(p, &ast.JSXNamespacedName{Namespace: id, Name: name}, start), nil
	}
	var obj ast.Node = id
	for p.eat(lexer.DOT) {
		prop, err := p.parseJSXIdentifier()
		if err != nil {
			return nil, err
		}
		obj = finish(p, &ast.JSXMemberExpression{Object: obj, Property: prop}, start)
	}
	return obj, nil
}

func (p *Parser) parseJSXAttribute() (ast.Node, error) {
	start := p.startPos()
	if p.cur() == lexer.LBRACE {
		container, err := p.parseJSXExpressionContainer(false, true)
		if err != nil {
			return nil, err
		}
		p.nextToken() // '}'
		spread, ok := container.(*ast.JSXSpreadChild)
		if !ok {
			return nil, p.fatal(container.Start(), errors.MsgUnexpectedToken)
		}
		return finish(p, &ast.JSXSpreadAttribute{Argument: spread.Expression}, start), nil
	}
	id, err := p.parseJSXIdentifier()
	if err != nil {
		return nil, err
	}
	var name ast.Node = id
	if p.eat(lexer.COLON) {
		local, err := p.parseJSXIdentifier()
		if err != nil {
			return nil, err
		}
		name = finish(p, &ast.JSXNamespacedName{Namespace: id, Name: local}, start)
	}
	attr := &ast.JSXAttribute{Name: name}
	if !p.eat(lexer.ASSIGN) {
		return finish(p, attr, start), nil
	}
	switch p.cur() {
	case lexer.STRING:
		tok := p.l.Token()
		p.nextToken()
		attr.Value = p.arena.NewStringLiteral(tok.Value, tok.Literal, tok.Start, tok.End)
	case lexer.LBRACE:
		container, err := p.parseJSXExpressionContainer(false, false)
		if err != nil {
			return nil, err
		}
		if c, ok := container.(*ast.JSXExpressionContainer); ok {
			if _, empty := c.Expression.(*ast.JSXEmptyExpression); empty {
				p.errs.Report(errors.MsgJSXEmptyAttribute, c.Start())
			}
		}
		p.nextToken() // '}'
		attr.Value = container
	case lexer.LT:
		el, err := p.parseJSXElement(false)
		if err != nil {
			return nil, err
		}
		attr.Value = el
	default:
		return nil, p.unexpected()
	}
	return finish(p, attr, start), nil
}

// parseJSXExpressionContainer parses `{expr}`, `{}` or `{...expr}` whose
// '{' is current. The '}' is left current so that the caller decides how
// the token after it is scanned.
func (p *Parser) parseJSXExpressionContainer(inChildren, allowSpread bool) (ast.Node, error) {
	start := p.startPos()
	saved := p.setJSXModes(normalModes)
	p.nextToken() // '{'
	var node ast.Node
	switch {
	case p.cur() == lexer.RBRACE:
		empty := &ast.JSXEmptyExpression{}
		empty.SetLoc(p.lastEnd(), p.startPos())
		node = &ast.JSXExpressionContainer{Expression: empty}
	case p.cur() == lexer.SPREAD && (allowSpread || inChildren):
		p.nextToken()
		expr, err := p.parseMaybeAssign()
		if err != nil {
			return nil, err
		}
		node = &ast.JSXSpreadChild{Expression: expr}
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node = &ast.JSXExpressionContainer{Expression: expr}
	}
	if p.cur() != lexer.RBRACE {
		return nil, p.unexpected()
	}
	end := p.l.EndPos()
	p.setJSXModes(saved)
	node.(ast.Spanner).SetLoc(start, end)
	return node, nil
}

// parseJSXChildren consumes the '>' of an opening tag and reads children
// up to the '</' of the closing tag, which is left current.
func (p *Parser) parseJSXChildren() ([]ast.Node, error) {
	p.setJSXModes(normalModes)
	p.l.NextInJSXChildren()
	children := []ast.Node{}
	for {
		switch p.cur() {
		case lexer.JSX_CLOSE_START:
			return children, nil
		case lexer.JSX_TEXT:
			tok := p.l.Token()
			text := &ast.JSXText{Value: tok.Value, Raw: tok.Literal}
			text.SetLoc(tok.Start, tok.End)
			children = append(children, text)
			p.l.NextInJSXChildren()
		case lexer.LBRACE:
			child, err := p.parseJSXExpressionContainer(true, false)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			p.l.NextInJSXChildren()
		case lexer.LT:
			el, err := p.parseJSXElement(true)
			if err != nil {
				return nil, err
			}
			children = append(children, el)
		case lexer.EOF:
			return nil, p.fatal(p.startPos(), errors.MsgJSXUnterminated)
		default:
			return nil, p.unexpected()
		}
	}
}

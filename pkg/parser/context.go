package parser

import (
	"sort"

	"go.uber.org/zap"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/scope"
	"esfront/pkg/source"
)

// --- scope entry and exit ---

func (p *Parser) enterProgram() {
	p.symbols.EnterProgram()
	p.lexical.EnterProgram(p.cfg.AllowAwaitOutsideFunction || p.cfg.Module(), p.cfg.Module())
	p.l.SetStrict(p.cfg.Module())
	p.pushSuper(false, false)
}

func (p *Parser) exitProgram() {
	if !p.cfg.AllowUndeclaredExports {
		for _, ref := range p.symbols.UndefinedExports() {
			p.report(ref.Pos, errors.MsgExportNotDefined, ref.Name)
		}
	}
	for _, pos := range sortedOffsets(p.ctx.coverInits) {
		p.errs.Report(errors.MsgShorthandInit, pos)
	}
	for _, pos := range sortedOffsets(p.ctx.protoDups) {
		p.errs.Report(errors.MsgDuplicateProto, pos)
	}
	p.popSuper()
	p.symbols.Exit()
	p.lexical.Exit()
}

// enterFunctionScope opens the frames of an ordinary function, method or
// accessor. Strictness is inherited until the body's directives are read.
func (p *Parser) enterFunctionScope(async, generator bool) {
	p.arrows.EnterBlank()
	p.strict.EnterRHS()
	p.symbols.EnterFunction()
	p.lexical.EnterFunction(async, generator)
	p.l.SetStrict(p.lexical.InStrict())
}

// exitFunctionScope closes the frames opened by enterFunctionScope.
// Duplicate parameters are errors in strict code, with non-simple lists,
// and for methods, which pass force.
func (p *Parser) exitFunctionScope(force bool) {
	simple := p.lexical.SimpleParameters()
	strict := p.lexical.InStrict()
	dups := p.symbols.ExitFunction()
	if !simple || strict || force {
		for _, d := range dups {
			p.errs.Report(errors.MsgDuplicateParam, d.Pos)
		}
	}
	p.arrows.Exit()
	p.strict.Exit()
	p.lexical.Exit()
	p.l.SetStrict(p.lexical.InStrict())
}

func (p *Parser) enterArrowScope(async bool) {
	p.lexical.EnterArrowBody(async)
	p.symbols.EnterFunction()
}

// exitArrowScope closes an arrow function. Arrow parameters may never be
// duplicated.
func (p *Parser) exitArrowScope() {
	for _, d := range p.symbols.ExitFunction() {
		p.errs.Report(errors.MsgDuplicateParam, d.Pos)
	}
	p.lexical.Exit()
	p.l.SetStrict(p.lexical.InStrict())
}

func (p *Parser) enterBlock() {
	p.lexical.EnterBlock()
	p.symbols.EnterBlock()
}

func (p *Parser) exitBlock() {
	p.symbols.Exit()
	p.lexical.Exit()
}

func (p *Parser) enterClassScope(extends bool) {
	p.lexical.EnterClass(extends)
	p.arrows.Enter()
	p.symbols.EnterClass()
	p.l.SetStrict(true)
}

func (p *Parser) exitClassScope() {
	dups, undef := p.symbols.ExitClass()
	for _, d := range dups {
		p.report(d.Pos, errors.MsgDuplicatePrivateName, d.Name)
	}
	for _, u := range undef {
		p.report(u.Pos, errors.MsgUndefinedPrivateName, u.Name)
	}
	if len(dups)+len(undef) > 0 {
		p.log.Debug("class scope closed with errors",
			zap.Int("duplicates", len(dups)), zap.Int("undefined", len(undef)))
	}
	p.arrows.Exit()
	p.lexical.Exit()
	p.l.SetStrict(p.lexical.InStrict())
}

// setFunctionStrict applies a 'use strict' directive to the innermost
// function. Literals scanned before the directive took effect are checked
// when they are parsed.
func (p *Parser) setFunctionStrict() {
	p.lexical.SetStrict()
	p.l.SetStrict(true)
}

// --- candidates ---

// record hands a candidate to the strict-mode and async-arrow recorders;
// each keeps the kinds it cares about.
func (p *Parser) record(kind scope.CandidateKind, pos source.Position) {
	c := scope.Candidate{Kind: kind, Pos: pos}
	p.strict.Record(c)
	p.arrows.Record(c)
}

// reportStrictLayer raises the candidates of a layer whose code turned
// out to be strict.
func (p *Parser) reportStrictLayer(l scope.Layer) {
	if !scope.Violates(l) {
		return
	}
	for _, c := range l.Candidates {
		switch c.Kind {
		case scope.EvalIdentifier, scope.ArgumentsIdentifier:
			p.errs.Report(errors.MsgStrictEvalArguments, c.Pos)
		case scope.YieldIdentifier:
			p.errs.Report(errors.MsgYieldAsIdentifier, c.Pos)
		case scope.LetIdentifier, scope.PreservedWordIdentifier:
			p.errs.Report(errors.MsgUnexpectedStrictWord, c.Pos)
		}
	}
}

// reportArrowFrame raises the candidates collected while reading what
// became the parameters of an arrow function.
func (p *Parser) reportArrowFrame(f scope.ArrowFrame, async bool) {
	for _, c := range f.Candidates {
		switch c.Kind {
		case scope.AwaitExpressionInParameter:
			p.errs.Report(errors.MsgAwaitInParams, c.Pos)
		case scope.YieldExpressionInParameter:
			p.errs.Report(errors.MsgYieldInParams, c.Pos)
		case scope.AwaitIdentifier:
			if async {
				p.errs.Report(errors.MsgAwaitInAsyncParams, c.Pos)
			}
		}
	}
}

// --- identifiers ---

var strictReserved = map[string]bool{
	"implements": true,
	"interface":  true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
}

// isIdentifierToken reports whether the current token can name a binding
// or reference in some context. let, yield and await are keywords of the
// lexer but only reserved depending on where they appear.
func (p *Parser) isIdentifierToken() bool {
	return isIdentifierType(p.cur())
}

func isIdentifierType(t lexer.TokenType) bool {
	switch t {
	case lexer.IDENT, lexer.LET, lexer.YIELD, lexer.AWAIT:
		return true
	}
	return false
}

func (p *Parser) awaitReserved() bool {
	return p.lexical.AwaitAsExpression() || p.cfg.Module() || p.lexical.InStaticBlock()
}

// checkReserved validates the names whose status depends on the context:
// yield, await, let and the strict-mode reserved words.
func (p *Parser) checkReserved(name string, pos source.Position) {
	switch name {
	case "yield":
		if p.lexical.YieldAsExpression() || p.lexical.InStrict() {
			p.errs.Report(errors.MsgYieldAsIdentifier, pos)
		} else {
			p.record(scope.YieldIdentifier, pos)
		}
	case "await":
		if p.awaitReserved() {
			p.errs.Report(errors.MsgAwaitAsIdentifier, pos)
		} else {
			p.record(scope.AwaitIdentifier, pos)
		}
	case "let":
		if p.lexical.InStrict() {
			p.errs.Report(errors.MsgUnexpectedStrictWord, pos)
		} else {
			p.record(scope.LetIdentifier, pos)
		}
	default:
		if strictReserved[name] {
			if p.lexical.InStrict() {
				p.errs.Report(errors.MsgUnexpectedStrictWord, pos)
			} else {
				p.record(scope.PreservedWordIdentifier, pos)
			}
		}
	}
}

func (p *Parser) checkIdentifierReference(name string, pos source.Position) {
	if p.ctx.inType {
		return
	}
	if name == "arguments" && p.lexical.InClass() && !p.lexical.EnclosedInFunction() {
		p.errs.Report(errors.MsgArgumentsInField, pos)
		return
	}
	p.checkReserved(name, pos)
}

// checkBindingIdentifier validates a declared name. lexicalDecl is set for
// let, const and class bindings, which may not be called let.
func (p *Parser) checkBindingIdentifier(name string, pos source.Position, lexicalDecl bool) {
	if p.ctx.inType {
		return
	}
	switch name {
	case "eval", "arguments":
		p.checkEvalArguments(name, pos)
	case "let":
		if lexicalDecl {
			p.errs.Report(errors.MsgLetInLexicalBinding, pos)
			return
		}
		p.checkReserved(name, pos)
	default:
		p.checkReserved(name, pos)
	}
}

func (p *Parser) checkEvalArguments(name string, pos source.Position) {
	if p.lexical.InStrict() {
		p.errs.Report(errors.MsgStrictEvalArguments, pos)
		return
	}
	if name == "eval" {
		p.record(scope.EvalIdentifier, pos)
	} else {
		p.record(scope.ArgumentsIdentifier, pos)
	}
}

// parseIdentifier reads an identifier in reference or binding position.
// Binding names are validated by the caller, which knows the kind of
// declaration.
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	if !p.isIdentifierToken() {
		return nil, p.unexpected()
	}
	tok := p.l.Token()
	p.nextToken()
	return p.arena.NewIdentifier(tok.Value, tok.Start, tok.End), nil
}

func (p *Parser) parseIdentifierReference() (*ast.Identifier, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.checkIdentifierReference(id.Name, id.Start())
	return id, nil
}

func (p *Parser) parseBindingIdentifier(lexicalDecl bool) (*ast.Identifier, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.checkBindingIdentifier(id.Name, id.Start(), lexicalDecl)
	return id, nil
}

// parseIdentifierName accepts any IdentifierName, reserved words included,
// as used after '.' and for property keys.
func (p *Parser) parseIdentifierName() (*ast.Identifier, error) {
	if !lexer.IsIdentifierName(p.cur()) {
		return nil, p.unexpected()
	}
	tok := p.l.Token()
	p.nextToken()
	return p.arena.NewIdentifier(tok.Value, tok.Start, tok.End), nil
}

// --- declarations ---

type bindingKind uint8

const (
	bindVar bindingKind = iota
	bindLet
	bindConst
	bindClass
	bindParam
	bindCatchParam
	bindCatchPattern
	bindNone
)

func bindingForDecl(kind string) bindingKind {
	switch kind {
	case ast.DeclLet:
		return bindLet
	case ast.DeclConst:
		return bindConst
	}
	return bindVar
}

func (p *Parser) declare(id *ast.Identifier, kind bindingKind) {
	if p.ctx.inType {
		return
	}
	ok := true
	switch kind {
	case bindVar:
		ok = p.symbols.DeclareVar(id.Name)
	case bindLet:
		ok = p.symbols.DeclareLexical(id.Name, scope.SymLet)
	case bindConst:
		ok = p.symbols.DeclareLexical(id.Name, scope.SymConst)
	case bindClass:
		ok = p.symbols.DeclareLexical(id.Name, scope.SymClass)
	case bindParam:
		p.symbols.DeclareParam(id.Name, id.Start())
	case bindCatchParam:
		ok = p.symbols.DeclareCatchParam(id.Name, true)
	case bindCatchPattern:
		ok = p.symbols.DeclareCatchParam(id.Name, false)
	}
	if !ok {
		p.report(id.Start(), errors.MsgDuplicateDeclaration, id.Name)
	}
}

// declarePattern declares every name bound by a pattern.
func (p *Parser) declarePattern(pat ast.Pattern, kind bindingKind) {
	if kind == bindNone {
		return
	}
	for _, id := range ast.BoundNames(pat, nil) {
		p.declare(id, kind)
	}
}

func (p *Parser) declareFunction(id *ast.Identifier, generatorOrAsync bool) {
	if p.ctx.inType {
		return
	}
	if !p.symbols.DeclareFunction(id.Name, generatorOrAsync, p.lexical.InStrict()) {
		p.report(id.Start(), errors.MsgDuplicateDeclaration, id.Name)
	}
}

func (p *Parser) declareExport(name string, pos source.Position) {
	if p.ctx.inModuleBlock {
		return
	}
	if _, ok := p.symbols.DeclareExport(name, pos); !ok {
		p.report(pos, errors.MsgDuplicateExport, name)
	}
}

// sortedOffsets returns the positions of an offset-keyed set in source
// order.
func sortedOffsets(m map[int]source.Position) []source.Position {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]source.Position, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

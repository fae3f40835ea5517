// Package parser implements a recursive-descent parser for JavaScript with
// optional JSX and TypeScript syntax. It drives the lexer token by token,
// maintains the scope recorders of package scope and produces a tree of
// package ast.
package parser

import (
	"fmt"

	"go.uber.org/zap"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/scope"
	"esfront/pkg/source"
)

// Source types.
const (
	SourceScript = "script"
	SourceModule = "module"
)

// Plugin names accepted in Config.Plugins.
const (
	PluginJSX              = "jsx"
	PluginTypeScript       = "typescript"
	PluginImportAttributes = "importAttributes"
)

// Config selects the grammar and relaxes some early errors.
type Config struct {
	SourceType                    string   `yaml:"sourceType"`
	AllowReturnOutsideFunction    bool     `yaml:"allowReturnOutsideFunction"`
	AllowAwaitOutsideFunction     bool     `yaml:"allowAwaitOutsideFunction"`
	AllowNewTargetOutsideFunction bool     `yaml:"allowNewTargetOutsideFunction"`
	AllowUndeclaredExports        bool     `yaml:"allowUndeclaredExports"`
	Plugins                       []string `yaml:"plugins"`
	// ValidateRegExp compiles regular expression literals and reports
	// patterns the engine rejects.
	ValidateRegExp bool `yaml:"validateRegExp"`
	MaxErrors      int  `yaml:"maxErrors"`

	Logger *zap.Logger `yaml:"-"`
}

func (c Config) hasPlugin(name string) bool {
	for _, p := range c.Plugins {
		if p == name {
			return true
		}
	}
	return false
}

func (c Config) JSX() bool              { return c.hasPlugin(PluginJSX) }
func (c Config) TypeScript() bool       { return c.hasPlugin(PluginTypeScript) }
func (c Config) ImportAttributes() bool { return c.hasPlugin(PluginImportAttributes) }

// Module reports whether the source is parsed as an ES module.
func (c Config) Module() bool { return c.SourceType == SourceModule }

// Validate rejects unknown source types and plugins.
func (c Config) Validate() error {
	switch c.SourceType {
	case "", SourceScript, SourceModule:
	default:
		return fmt.Errorf("unknown source type %q", c.SourceType)
	}
	for _, p := range c.Plugins {
		switch p {
		case PluginJSX, PluginTypeScript, PluginImportAttributes:
		default:
			return fmt.Errorf("unknown plugin %q", p)
		}
	}
	return nil
}

// Parser holds the state of one parse. It is not safe for concurrent use
// and is not reusable.
type Parser struct {
	l     *lexer.Lexer
	src   *source.SourceFile
	cfg   Config
	errs  *errors.Handler
	arena *ast.Arena
	log   *zap.Logger

	lexical *scope.Lexical
	symbols *scope.Symbol
	strict  *scope.Strict
	arrows  *scope.AsyncArrow

	ts  bool
	jsx bool

	ctx parseContext
}

// superFlags tells whether super properties and super calls are allowed
// in the function being parsed.
type superFlags struct {
	property bool
	call     bool
}

// parseContext is parser state that is neither lexer nor scope state. It
// is copied into every speculative snapshot.
type parseContext struct {
	// noIn is a stack; a true top means `in` is not a binary operator.
	noIn []bool
	// super is a stack pushed by functions and methods; arrows inherit.
	super []superFlags

	// shorthand initializers ({a = 1}) waiting to be turned into patterns,
	// keyed by offset
	coverInits map[int]source.Position
	// object literals with a duplicate __proto__, keyed by start offset
	protoDups map[int]source.Position
	// array and object literals whose rest element has a trailing comma
	restCommas map[int]source.Position

	// offset of the token starting the current AssignmentExpression; only
	// there can an arrow function begin
	potentialArrowAt int

	// inType suppresses binding checks inside type annotations
	inType bool
	// inAmbient is set under `declare`, where bodies and initializers
	// are not required
	inAmbient bool
	// inModuleBlock is set inside namespace and ambient module bodies,
	// whose exports do not belong to the enclosing module
	inModuleBlock bool
}

func (c parseContext) clone() parseContext {
	out := c
	out.noIn = append([]bool(nil), c.noIn...)
	out.super = append([]superFlags(nil), c.super...)
	out.coverInits = cloneOffsets(c.coverInits)
	out.protoDups = cloneOffsets(c.protoDups)
	out.restCommas = cloneOffsets(c.restCommas)
	return out
}

func cloneOffsets(m map[int]source.Position) map[int]source.Position {
	out := make(map[int]source.Position, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// NewParser creates a parser for src.
func NewParser(src *source.SourceFile, cfg Config) *Parser {
	if cfg.SourceType == "" {
		cfg.SourceType = SourceScript
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{
		l:       lexer.NewLexer(src.Content),
		src:     src,
		cfg:     cfg,
		errs:    errors.NewHandler(src, cfg.MaxErrors),
		arena:   ast.NewArena(),
		log:     log.Named("parser"),
		lexical: scope.NewLexical(),
		symbols: scope.NewSymbol(cfg.Module()),
		strict:  scope.NewStrict(),
		arrows:  scope.NewAsyncArrow(),
		ts:      cfg.TypeScript(),
		jsx:     cfg.JSX(),
	}
	p.ctx = parseContext{
		coverInits: map[int]source.Position{},
		protoDups:  map[int]source.Position{},
		restCommas: map[int]source.Position{},
	}
	return p
}

// ParseProgram parses the whole input. When anything was reported the
// error is an *errors.ParseError listing every diagnostic, the fatal one
// last, and the program is nil.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog, err := p.parseProgram()
	if err != nil {
		p.log.Debug("parse aborted", zap.Error(err))
		var serr *errors.SyntaxError
		if e, ok := err.(*errors.SyntaxError); ok {
			serr = e
		} else {
			serr = errors.NewFatalError(p.l.StartPos(), "%s", err.Error()).CausedBy(err)
		}
		p.errs.Add(serr)
		return nil, p.errs.Err()
	}
	if err := p.errs.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}

// Errors returns the recoverable diagnostics reported so far.
func (p *Parser) Errors() []*errors.SyntaxError { return p.errs.Errors() }

// --- tokens ---

func (p *Parser) cur() lexer.TokenType { return p.l.Kind() }

func (p *Parser) curTokenIs(t lexer.TokenType) bool { return p.l.Kind() == t }

func (p *Parser) peek() lexer.Token { return p.l.Lookahead() }

func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.l.Lookahead().Type == t }

func (p *Parser) nextToken() { p.l.Next() }

func (p *Parser) startPos() source.Position { return p.l.StartPos() }

func (p *Parser) lastEnd() source.Position { return p.l.PrevEnd() }

// eat consumes the current token if it has type t.
func (p *Parser) eat(t lexer.TokenType) bool {
	if p.cur() == t {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes a token of type t or fails.
func (p *Parser) expect(t lexer.TokenType) error {
	if p.cur() != t {
		return p.expectError(t)
	}
	p.nextToken()
	return nil
}

func (p *Parser) expectError(t lexer.TokenType) error {
	if err := p.l.Err(); err != nil {
		return err
	}
	if p.cur() == lexer.EOF {
		return errors.NewFatalError(p.startPos(), errors.MsgUnexpectedEOF)
	}
	return errors.NewFatalError(p.startPos(), errors.MsgExpectedToken, tokenName(t), p.describe())
}

// unexpected builds the fatal error for the current token. A latched
// lexical error takes precedence.
func (p *Parser) unexpected() error {
	if err := p.l.Err(); err != nil {
		return err
	}
	if p.cur() == lexer.EOF {
		return errors.NewFatalError(p.startPos(), errors.MsgUnexpectedEOF)
	}
	return errors.NewFatalError(p.startPos(), errors.MsgUnexpectedTokenValue, p.l.Literal())
}

func (p *Parser) fatal(pos source.Position, format string, args ...interface{}) error {
	return errors.NewFatalError(pos, format, args...)
}

func (p *Parser) describe() string {
	if lit := p.l.Literal(); lit != "" {
		return "'" + lit + "'"
	}
	return string(p.cur())
}

func tokenName(t lexer.TokenType) string {
	if name := lexer.KeywordName(t); name != "" {
		return "'" + name + "'"
	}
	switch t {
	case lexer.IDENT:
		return "identifier"
	case lexer.STRING:
		return "string"
	}
	return "'" + string(t) + "'"
}

// report queues a recoverable diagnostic.
func (p *Parser) report(pos source.Position, format string, args ...interface{}) {
	p.errs.Reportf(pos, format, args...)
}

// isContextual reports whether the current token is the unescaped
// contextual keyword name, which the lexer hands out as an identifier.
func (p *Parser) isContextual(name string) bool {
	return p.cur() == lexer.IDENT && p.l.Value() == name && !p.l.Escaped()
}

func (p *Parser) eatContextual(name string) bool {
	if p.isContextual(name) {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) expectContextual(name string) error {
	if !p.isContextual(name) {
		if p.cur() == lexer.IDENT && p.l.Value() == name {
			return p.fatal(p.startPos(), errors.MsgEscapedKeyword)
		}
		if err := p.l.Err(); err != nil {
			return err
		}
		return p.fatal(p.startPos(), errors.MsgExpectedToken, "'"+name+"'", p.describe())
	}
	p.nextToken()
	return nil
}

func isContextualToken(tok lexer.Token, name string) bool {
	return tok.Type == lexer.IDENT && tok.Value == name && tok.Literal == name
}

// finish stamps the span from start to the end of the last consumed token.
func finish[N ast.Spanner](p *Parser, n N, start source.Position) N {
	n.SetLoc(start, p.lastEnd())
	return n
}

// --- automatic semicolon insertion ---

type semiState int

const (
	semiExisted semiState = iota
	semiInsertable
	semiNotExisted
)

func (p *Parser) semiState() semiState {
	switch p.cur() {
	case lexer.SEMICOLON:
		return semiExisted
	case lexer.RBRACE, lexer.EOF:
		return semiInsertable
	}
	if p.l.NewlineBefore() {
		return semiInsertable
	}
	return semiNotExisted
}

// semicolon ends a statement: it eats an explicit ';', accepts an
// inserted one, and otherwise reports the missing semicolon and goes on
// as if it were there.
func (p *Parser) semicolon() error {
	switch p.semiState() {
	case semiExisted:
		p.nextToken()
	case semiNotExisted:
		if p.cur() == lexer.ILLEGAL {
			return p.unexpected()
		}
		p.errs.Report(errors.MsgMissingSemicolon, p.lastEnd())
	}
	return nil
}

// canInsertSemicolon is the restricted-production check used after
// return, throw, break, continue and yield.
func (p *Parser) canInsertSemicolon() bool {
	return p.semiState() != semiNotExisted
}

// --- speculative parsing ---

type snapshot struct {
	lex     lexer.Snapshot
	mark    errors.Checkpoint
	ctx     parseContext
	lexical scope.LexicalSnapshot
	strict  scope.StrictSnapshot
	arrows  scope.AsyncArrowSnapshot
	symbols scope.SymbolSnapshot
	offset  int
}

func (p *Parser) snapshot() snapshot {
	return snapshot{
		lex:     p.l.Fork(),
		mark:    p.errs.Mark(),
		ctx:     p.ctx.clone(),
		lexical: p.lexical.Snapshot(),
		strict:  p.strict.Snapshot(),
		arrows:  p.arrows.Snapshot(),
		symbols: p.symbols.Snapshot(),
		offset:  p.startPos().Offset,
	}
}

func (p *Parser) restore(s snapshot) {
	p.l.Restore(s.lex)
	p.errs.Restore(s.mark)
	p.ctx = s.ctx.clone()
	p.lexical.Restore(s.lexical)
	p.strict.Restore(s.strict)
	p.arrows.Restore(s.arrows)
	p.symbols.Restore(s.symbols)
}

// tryParse runs fn speculatively. When fn fails every piece of parser
// state is rolled back to where it was and ok is false.
func tryParse[T any](p *Parser, fn func() (T, error)) (T, bool) {
	snap := p.snapshot()
	p.log.Debug("speculative parse", zap.Int("offset", snap.offset))
	v, err := fn()
	if err != nil {
		p.restore(snap)
		p.log.Debug("speculative parse aborted",
			zap.Int("offset", snap.offset), zap.Error(err))
		var zero T
		return zero, false
	}
	p.symbols.Commit(snap.symbols)
	return v, true
}

// --- context stacks ---

func (p *Parser) pushIn(disallow bool) { p.ctx.noIn = append(p.ctx.noIn, disallow) }

func (p *Parser) popIn() { p.ctx.noIn = p.ctx.noIn[:len(p.ctx.noIn)-1] }

// noIn reports whether `in` is currently excluded from binary operators.
func (p *Parser) noIn() bool {
	return len(p.ctx.noIn) > 0 && p.ctx.noIn[len(p.ctx.noIn)-1]
}

func (p *Parser) pushSuper(property, call bool) {
	p.ctx.super = append(p.ctx.super, superFlags{property: property, call: call})
}

func (p *Parser) popSuper() { p.ctx.super = p.ctx.super[:len(p.ctx.super)-1] }

func (p *Parser) superAllowed() superFlags {
	if len(p.ctx.super) == 0 {
		return superFlags{}
	}
	return p.ctx.super[len(p.ctx.super)-1]
}

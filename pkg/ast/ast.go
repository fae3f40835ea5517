// Package ast declares the syntax tree produced by the parser.
//
// Nodes carry start and end positions and no parent pointers. Anything
// that needs the enclosing context receives it explicitly while walking.
package ast

import "esfront/pkg/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Start() source.Position
	End() source.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	Parenthesized() bool
	SetParenthesized(bool)
	exprNode()
}

// Statement is a statement, declaration or module item.
type Statement interface {
	Node
	stmtNode()
}

// Pattern is a binding or assignment target: identifiers, member
// expressions (assignment only) and destructuring patterns.
type Pattern interface {
	Node
	patternNode()
}

// TSType is a type annotation node.
type TSType interface {
	Node
	typeNode()
}

// Loc is the source span of a node.
type Loc struct {
	From source.Position
	To   source.Position
}

func (l *Loc) Start() source.Position { return l.From }
func (l *Loc) End() source.Position   { return l.To }

// SetLoc replaces the span of a node.
func (l *Loc) SetLoc(from, to source.Position) {
	l.From, l.To = from, to
}

// Span builds a Loc.
func Span(from, to source.Position) Loc { return Loc{From: from, To: to} }

// Expr is embedded by every expression node.
type Expr struct {
	Loc
	// Parens records that the expression was written inside parentheses,
	// which matters for cover grammar and operator mixing checks.
	Parens bool
}

func (e *Expr) Parenthesized() bool { return e.Parens }

func (e *Expr) SetParenthesized(p bool) { e.Parens = p }

func (*Expr) exprNode() {}

// Stmt is embedded by every statement node.
type Stmt struct {
	Loc
}

func (*Stmt) stmtNode() {}

// Program is the root of every tree.
type Program struct {
	Loc
	SourceType string // "script" or "module"
	Body       []Statement
}

func (*Program) Kind() Kind { return KindProgram }

// Spanner is implemented by nodes whose span can be rewritten.
type Spanner interface {
	SetLoc(from, to source.Position)
}

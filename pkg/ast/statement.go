package ast

// --- Statements ---

// ExpressionStatement wraps an expression. Directive holds the raw text
// of a directive prologue entry such as 'use strict'.
type ExpressionStatement struct {
	Stmt
	Expression Expression
	Directive  string
}

func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }

type BlockStatement struct {
	Stmt
	Body []Statement
}

func (*BlockStatement) Kind() Kind { return KindBlockStatement }

type EmptyStatement struct{ Stmt }

func (*EmptyStatement) Kind() Kind { return KindEmptyStatement }

type DebuggerStatement struct{ Stmt }

func (*DebuggerStatement) Kind() Kind { return KindDebuggerStatement }

type WithStatement struct {
	Stmt
	Object Expression
	Body   Statement
}

func (*WithStatement) Kind() Kind { return KindWithStatement }

type ReturnStatement struct {
	Stmt
	Argument Expression
}

func (*ReturnStatement) Kind() Kind { return KindReturnStatement }

type LabeledStatement struct {
	Stmt
	Label *Identifier
	Body  Statement
}

func (*LabeledStatement) Kind() Kind { return KindLabeledStatement }

type BreakStatement struct {
	Stmt
	Label *Identifier
}

func (*BreakStatement) Kind() Kind { return KindBreakStatement }

type ContinueStatement struct {
	Stmt
	Label *Identifier
}

func (*ContinueStatement) Kind() Kind { return KindContinueStatement }

type IfStatement struct {
	Stmt
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (*IfStatement) Kind() Kind { return KindIfStatement }

type SwitchStatement struct {
	Stmt
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*SwitchStatement) Kind() Kind { return KindSwitchStatement }

// SwitchCase has a nil Test for the default clause.
type SwitchCase struct {
	Loc
	Test       Expression
	Consequent []Statement
}

func (*SwitchCase) Kind() Kind { return KindSwitchCase }

type ThrowStatement struct {
	Stmt
	Argument Expression
}

func (*ThrowStatement) Kind() Kind { return KindThrowStatement }

type TryStatement struct {
	Stmt
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (*TryStatement) Kind() Kind { return KindTryStatement }

// CatchClause has a nil Param for `catch { }`.
type CatchClause struct {
	Loc
	Param Pattern
	Body  *BlockStatement
}

func (*CatchClause) Kind() Kind { return KindCatchClause }

// --- Loops ---

type WhileStatement struct {
	Stmt
	Test Expression
	Body Statement
}

func (*WhileStatement) Kind() Kind { return KindWhileStatement }

type DoWhileStatement struct {
	Stmt
	Body Statement
	Test Expression
}

func (*DoWhileStatement) Kind() Kind { return KindDoWhileStatement }

// ForStatement Init is a *VariableDeclaration, an Expression or nil.
type ForStatement struct {
	Stmt
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (*ForStatement) Kind() Kind { return KindForStatement }

// ForInStatement Left is a *VariableDeclaration or a Pattern.
type ForInStatement struct {
	Stmt
	Left  Node
	Right Expression
	Body  Statement
}

func (*ForInStatement) Kind() Kind { return KindForInStatement }

// ForOfStatement Left is a *VariableDeclaration or a Pattern.
type ForOfStatement struct {
	Stmt
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

func (*ForOfStatement) Kind() Kind { return KindForOfStatement }

// --- Declarations ---

// VariableDeclaration kinds.
const (
	DeclVar   = "var"
	DeclLet   = "let"
	DeclConst = "const"
)

type VariableDeclaration struct {
	Stmt
	DeclKind     string
	Declarations []*VariableDeclarator
	Declare      bool
}

func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

type VariableDeclarator struct {
	Loc
	ID       Pattern
	Init     Expression
	Definite bool
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }

// FunctionDeclaration has a nil ID only as `export default function () {}`.
type FunctionDeclaration struct {
	Stmt
	Function
}

func (*FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }

type ClassDeclaration struct {
	Stmt
	Class
}

func (*ClassDeclaration) Kind() Kind { return KindClassDeclaration }

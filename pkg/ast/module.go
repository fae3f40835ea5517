package ast

// --- Imports ---

// ImportDeclaration specifiers are *ImportDefaultSpecifier,
// *ImportNamespaceSpecifier or *ImportSpecifier.
type ImportDeclaration struct {
	Stmt
	Specifiers []Node
	Source     *StringLiteral
	Attributes []*ImportAttribute
	TypeOnly   bool
}

func (*ImportDeclaration) Kind() Kind { return KindImportDeclaration }

// ImportSpecifier Imported is an *Identifier or a *StringLiteral.
type ImportSpecifier struct {
	Loc
	Imported Expression
	Local    *Identifier
	TypeOnly bool
}

func (*ImportSpecifier) Kind() Kind { return KindImportSpecifier }

type ImportDefaultSpecifier struct {
	Loc
	Local *Identifier
}

func (*ImportDefaultSpecifier) Kind() Kind { return KindImportDefaultSpecifier }

type ImportNamespaceSpecifier struct {
	Loc
	Local *Identifier
}

func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }

// ImportAttribute is one entry of `with { type: "json" }`.
type ImportAttribute struct {
	Loc
	Key   Expression
	Value *StringLiteral
}

func (*ImportAttribute) Kind() Kind { return KindImportAttribute }

// --- Exports ---

type ExportNamedDeclaration struct {
	Stmt
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral
	Attributes  []*ImportAttribute
	TypeOnly    bool
}

func (*ExportNamedDeclaration) Kind() Kind { return KindExportNamedDeclaration }

// ExportSpecifier Local and Exported are *Identifier or *StringLiteral.
type ExportSpecifier struct {
	Loc
	Local    Expression
	Exported Expression
	TypeOnly bool
}

func (*ExportSpecifier) Kind() Kind { return KindExportSpecifier }

// ExportDefaultDeclaration Declaration is a function or class declaration,
// a TS interface, or an Expression.
type ExportDefaultDeclaration struct {
	Stmt
	Declaration Node
}

func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }

// ExportAllDeclaration is export * from "m" or export * as ns from "m".
type ExportAllDeclaration struct {
	Stmt
	Exported   Expression
	Source     *StringLiteral
	Attributes []*ImportAttribute
	TypeOnly   bool
}

func (*ExportAllDeclaration) Kind() Kind { return KindExportAllDeclaration }

// ModuleExportName returns the name of an *Identifier or *StringLiteral.
func ModuleExportName(e Expression) string {
	switch n := e.(type) {
	case *Identifier:
		return n.Name
	case *StringLiteral:
		return n.Value
	}
	return ""
}

package ast

// --- Type nodes ---

// TSKeywordType is a predefined type such as number, string or unknown.
type TSKeywordType struct {
	Loc
	Name string
}

func (*TSKeywordType) Kind() Kind { return KindTSKeywordType }
func (*TSKeywordType) typeNode()  {}

type TSThisType struct{ Loc }

func (*TSThisType) Kind() Kind { return KindTSThisType }
func (*TSThisType) typeNode()  {}

// TSTypeReference TypeName is an *Identifier or *TSQualifiedName.
type TSTypeReference struct {
	Loc
	TypeName      Node
	TypeArguments []TSType
}

func (*TSTypeReference) Kind() Kind { return KindTSTypeReference }
func (*TSTypeReference) typeNode()  {}

// TSQualifiedName is left.right in type position.
type TSQualifiedName struct {
	Loc
	Left  Node
	Right *Identifier
}

func (*TSQualifiedName) Kind() Kind { return KindTSQualifiedName }

type TSArrayType struct {
	Loc
	ElementType TSType
}

func (*TSArrayType) Kind() Kind { return KindTSArrayType }
func (*TSArrayType) typeNode()  {}

// TSIndexedAccessType is T[K]
type TSIndexedAccessType struct {
	Loc
	ObjectType TSType
	IndexType  TSType
}

func (*TSIndexedAccessType) Kind() Kind { return KindTSIndexedAccessType }
func (*TSIndexedAccessType) typeNode()  {}

type TSTupleType struct {
	Loc
	ElementTypes []TSType
}

func (*TSTupleType) Kind() Kind { return KindTSTupleType }
func (*TSTupleType) typeNode()  {}

// TSNamedTupleMember is label?: T inside a tuple.
type TSNamedTupleMember struct {
	Loc
	Label       *Identifier
	ElementType TSType
	Optional    bool
}

func (*TSNamedTupleMember) Kind() Kind { return KindTSNamedTupleMember }
func (*TSNamedTupleMember) typeNode()  {}

// TSOptionalType is T? inside a tuple.
type TSOptionalType struct {
	Loc
	TypeAnnotation TSType
}

func (*TSOptionalType) Kind() Kind { return KindTSOptionalType }
func (*TSOptionalType) typeNode()  {}

// TSRestType is ...T inside a tuple.
type TSRestType struct {
	Loc
	TypeAnnotation TSType
}

func (*TSRestType) Kind() Kind { return KindTSRestType }
func (*TSRestType) typeNode()  {}

type TSUnionType struct {
	Loc
	Types []TSType
}

func (*TSUnionType) Kind() Kind { return KindTSUnionType }
func (*TSUnionType) typeNode()  {}

type TSIntersectionType struct {
	Loc
	Types []TSType
}

func (*TSIntersectionType) Kind() Kind { return KindTSIntersectionType }
func (*TSIntersectionType) typeNode()  {}

// TSConditionalType is C extends E ? T : F
type TSConditionalType struct {
	Loc
	CheckType   TSType
	ExtendsType TSType
	TrueType    TSType
	FalseType   TSType
}

func (*TSConditionalType) Kind() Kind { return KindTSConditionalType }
func (*TSConditionalType) typeNode()  {}

// TSInferType is infer U, only valid in a conditional extends clause.
type TSInferType struct {
	Loc
	TypeParameter *TSTypeParameter
}

func (*TSInferType) Kind() Kind { return KindTSInferType }
func (*TSInferType) typeNode()  {}

// TSFunctionType is <T>(a: T) => R
type TSFunctionType struct {
	Loc
	TypeParameters []*TSTypeParameter
	Params         []Pattern
	ReturnType     TSType
}

func (*TSFunctionType) Kind() Kind { return KindTSFunctionType }
func (*TSFunctionType) typeNode()  {}

// TSConstructorType is new (a: T) => R
type TSConstructorType struct {
	Loc
	TypeParameters []*TSTypeParameter
	Params         []Pattern
	ReturnType     TSType
	Abstract       bool
}

func (*TSConstructorType) Kind() Kind { return KindTSConstructorType }
func (*TSConstructorType) typeNode()  {}

// TSTypeLiteral is an object type: { a: T; m(): void }
type TSTypeLiteral struct {
	Loc
	Members []Node
}

func (*TSTypeLiteral) Kind() Kind { return KindTSTypeLiteral }
func (*TSTypeLiteral) typeNode()  {}

type TSPropertySignature struct {
	Loc
	Key            Expression
	TypeAnnotation TSType
	Computed       bool
	Optional       bool
	Readonly       bool
}

func (*TSPropertySignature) Kind() Kind { return KindTSPropertySignature }

type TSMethodSignature struct {
	Loc
	Key            Expression
	MethodKind     string
	TypeParameters []*TSTypeParameter
	Params         []Pattern
	ReturnType     TSType
	Computed       bool
	Optional       bool
}

func (*TSMethodSignature) Kind() Kind { return KindTSMethodSignature }

type TSCallSignatureDeclaration struct {
	Loc
	TypeParameters []*TSTypeParameter
	Params         []Pattern
	ReturnType     TSType
}

func (*TSCallSignatureDeclaration) Kind() Kind { return KindTSCallSignatureDeclaration }

type TSConstructSignatureDeclaration struct {
	Loc
	TypeParameters []*TSTypeParameter
	Params         []Pattern
	ReturnType     TSType
}

func (*TSConstructSignatureDeclaration) Kind() Kind { return KindTSConstructSignatureDeclaration }

// TSIndexSignature is [key: K]: V
type TSIndexSignature struct {
	Loc
	Parameters     []*Identifier
	TypeAnnotation TSType
	Readonly       bool
	Static         bool
}

func (*TSIndexSignature) Kind() Kind { return KindTSIndexSignature }

// TSTypeOperator is keyof T, unique symbol or readonly T[].
type TSTypeOperator struct {
	Loc
	Operator       string
	TypeAnnotation TSType
}

func (*TSTypeOperator) Kind() Kind { return KindTSTypeOperator }
func (*TSTypeOperator) typeNode()  {}

// TSTypeQuery is typeof x.y in type position.
type TSTypeQuery struct {
	Loc
	ExprName      Node
	TypeArguments []TSType
}

func (*TSTypeQuery) Kind() Kind { return KindTSTypeQuery }
func (*TSTypeQuery) typeNode()  {}

// TSLiteralType Literal is a string, numeric, bigint, boolean, negated
// numeric literal (UnaryExpression) or a TemplateLiteral without
// substitutions.
type TSLiteralType struct {
	Loc
	Literal Expression
}

func (*TSLiteralType) Kind() Kind { return KindTSLiteralType }
func (*TSLiteralType) typeNode()  {}

// TSTemplateLiteralType is `prefix${T}suffix` in type position.
type TSTemplateLiteralType struct {
	Loc
	Quasis []*TemplateElement
	Types  []TSType
}

func (*TSTemplateLiteralType) Kind() Kind { return KindTSTemplateLiteralType }
func (*TSTemplateLiteralType) typeNode()  {}

// TSMappedType is { readonly [K in T as N]?: V }. Readonly and Optional
// are "", "+", "-" or "true".
type TSMappedType struct {
	Loc
	TypeParameter  *TSTypeParameter
	NameType       TSType
	TypeAnnotation TSType
	Readonly       string
	Optional       string
}

func (*TSMappedType) Kind() Kind { return KindTSMappedType }
func (*TSMappedType) typeNode()  {}

// TSTypePredicate is x is T, asserts x or asserts x is T. ParameterName
// is an *Identifier or *TSThisType.
type TSTypePredicate struct {
	Loc
	ParameterName  Node
	TypeAnnotation TSType
	Asserts        bool
}

func (*TSTypePredicate) Kind() Kind { return KindTSTypePredicate }
func (*TSTypePredicate) typeNode()  {}

type TSTypeParameter struct {
	Loc
	Name       string
	Constraint TSType
	Default    TSType
	In         bool
	Out        bool
	Const      bool
}

func (*TSTypeParameter) Kind() Kind { return KindTSTypeParameter }

// TSExpressionWithTypeArguments is a heritage clause entry: extends A<T>
type TSExpressionWithTypeArguments struct {
	Loc
	Expression    Expression
	TypeArguments []TSType
}

func (*TSExpressionWithTypeArguments) Kind() Kind { return KindTSExpressionWithTypeArguments }

// --- Type-level declarations ---

type TSTypeAliasDeclaration struct {
	Stmt
	ID             *Identifier
	TypeParameters []*TSTypeParameter
	TypeAnnotation TSType
	Declare        bool
}

func (*TSTypeAliasDeclaration) Kind() Kind { return KindTSTypeAliasDeclaration }

type TSInterfaceDeclaration struct {
	Stmt
	ID             *Identifier
	TypeParameters []*TSTypeParameter
	Extends        []*TSExpressionWithTypeArguments
	Body           *TSInterfaceBody
	Declare        bool
}

func (*TSInterfaceDeclaration) Kind() Kind { return KindTSInterfaceDeclaration }

type TSInterfaceBody struct {
	Loc
	Body []Node
}

func (*TSInterfaceBody) Kind() Kind { return KindTSInterfaceBody }

type TSEnumDeclaration struct {
	Stmt
	ID      *Identifier
	Members []*TSEnumMember
	Const   bool
	Declare bool
}

func (*TSEnumDeclaration) Kind() Kind { return KindTSEnumDeclaration }

// TSEnumMember ID is an *Identifier or *StringLiteral.
type TSEnumMember struct {
	Loc
	ID          Expression
	Initializer Expression
}

func (*TSEnumMember) Kind() Kind { return KindTSEnumMember }

// TSModuleDeclaration covers namespace N {}, module "m" {} and
// declare global {}. Body is a *TSModuleBlock, a nested
// *TSModuleDeclaration for a.b.c, or nil for an ambient shorthand.
type TSModuleDeclaration struct {
	Stmt
	ID         Expression
	Body       Node
	ModuleKind string
	Declare    bool
}

func (*TSModuleDeclaration) Kind() Kind { return KindTSModuleDeclaration }

type TSModuleBlock struct {
	Loc
	Body []Statement
}

func (*TSModuleBlock) Kind() Kind { return KindTSModuleBlock }

// TSDeclareFunction is a function signature without a body: overloads and
// declare function.
type TSDeclareFunction struct {
	Stmt
	Function
	Declare bool
}

func (*TSDeclareFunction) Kind() Kind { return KindTSDeclareFunction }

// TSExportAssignment is export = expr
type TSExportAssignment struct {
	Stmt
	Expression Expression
}

func (*TSExportAssignment) Kind() Kind { return KindTSExportAssignment }

// TSImportEqualsDeclaration is import x = require("m") or import x = A.B.
type TSImportEqualsDeclaration struct {
	Stmt
	ID              *Identifier
	ModuleReference Node
	IsExport        bool
	TypeOnly        bool
}

func (*TSImportEqualsDeclaration) Kind() Kind { return KindTSImportEqualsDeclaration }

type TSExternalModuleReference struct {
	Loc
	Expression *StringLiteral
}

func (*TSExternalModuleReference) Kind() Kind { return KindTSExternalModuleReference }

// --- Type-level expressions ---

// TSAsExpression is expr as T
type TSAsExpression struct {
	Expr
	Expression     Expression
	TypeAnnotation TSType
}

func (*TSAsExpression) Kind() Kind   { return KindTSAsExpression }
func (*TSAsExpression) patternNode() {}

// TSSatisfiesExpression is expr satisfies T
type TSSatisfiesExpression struct {
	Expr
	Expression     Expression
	TypeAnnotation TSType
}

func (*TSSatisfiesExpression) Kind() Kind   { return KindTSSatisfiesExpression }
func (*TSSatisfiesExpression) patternNode() {}

// TSNonNullExpression is expr!
type TSNonNullExpression struct {
	Expr
	Expression Expression
}

func (*TSNonNullExpression) Kind() Kind   { return KindTSNonNullExpression }
func (*TSNonNullExpression) patternNode() {}

// TSTypeAssertion is <T>expr
type TSTypeAssertion struct {
	Expr
	TypeAnnotation TSType
	Expression     Expression
}

func (*TSTypeAssertion) Kind() Kind   { return KindTSTypeAssertion }
func (*TSTypeAssertion) patternNode() {}

// TSInstantiationExpression is expr<T> not followed by a call.
type TSInstantiationExpression struct {
	Expr
	Expression    Expression
	TypeArguments []TSType
}

func (*TSInstantiationExpression) Kind() Kind { return KindTSInstantiationExpression }

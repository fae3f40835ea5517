package ast

// --- Identifiers and primary expressions ---

// Identifier is a name reference or a binding name.
// In binding position it may carry a type annotation and an optional marker.
type Identifier struct {
	Expr
	Name           string
	TypeAnnotation TSType
	Optional       bool
}

func (*Identifier) Kind() Kind   { return KindIdentifier }
func (*Identifier) patternNode() {}

// PrivateName is a class private member name: #x
type PrivateName struct {
	Expr
	Name string
}

func (*PrivateName) Kind() Kind { return KindPrivateName }

type ThisExpression struct{ Expr }

func (*ThisExpression) Kind() Kind { return KindThisExpression }

// Super is the `super` keyword as a call callee or member object.
type Super struct{ Expr }

func (*Super) Kind() Kind { return KindSuper }

// --- Literals ---

type NullLiteral struct{ Expr }

func (*NullLiteral) Kind() Kind { return KindNullLiteral }

type BooleanLiteral struct {
	Expr
	Value bool
}

func (*BooleanLiteral) Kind() Kind { return KindBooleanLiteral }

// NumericLiteral keeps the raw spelling next to the decoded value.
type NumericLiteral struct {
	Expr
	Value float64
	Raw   string
}

func (*NumericLiteral) Kind() Kind { return KindNumericLiteral }

// BigIntLiteral stores the digits without the trailing `n`.
type BigIntLiteral struct {
	Expr
	Value string
	Raw   string
}

func (*BigIntLiteral) Kind() Kind { return KindBigIntLiteral }

type StringLiteral struct {
	Expr
	Value string
	Raw   string
}

func (*StringLiteral) Kind() Kind { return KindStringLiteral }

// RegExpLiteral is /pattern/flags
type RegExpLiteral struct {
	Expr
	Pattern string
	Flags   string
}

func (*RegExpLiteral) Kind() Kind { return KindRegExpLiteral }

// TemplateLiteral holds len(Expressions)+1 quasis.
// `a${b}c` has quasis "a", "c" and one expression.
type TemplateLiteral struct {
	Expr
	Quasis      []*TemplateElement
	Expressions []Expression
}

func (*TemplateLiteral) Kind() Kind { return KindTemplateLiteral }

// TemplateElement is one literal chunk of a template.
// Invalid is set when the chunk contains a malformed escape, which is only
// legal in a tagged template; Cooked is empty in that case.
type TemplateElement struct {
	Loc
	Raw     string
	Cooked  string
	Invalid bool
	Tail    bool
}

func (*TemplateElement) Kind() Kind { return KindTemplateElement }

// TaggedTemplateExpression is tag`quasi`
type TaggedTemplateExpression struct {
	Expr
	Tag           Expression
	TypeArguments []TSType
	Quasi         *TemplateLiteral
}

func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }

// --- Array and object literals ---

// ArrayExpression elements are nil for holes: [a, , b]
type ArrayExpression struct {
	Expr
	Elements []Expression
}

func (*ArrayExpression) Kind() Kind { return KindArrayExpression }

// ObjectExpression properties are *Property, *SpreadElement or
// *CoverInitializedName.
type ObjectExpression struct {
	Expr
	Properties []Node
}

func (*ObjectExpression) Kind() Kind { return KindObjectExpression }

// Property kinds.
const (
	PropertyInit = "init"
	PropertyGet  = "get"
	PropertySet  = "set"
)

// Property is an object literal member.
type Property struct {
	Loc
	Key       Expression
	Value     Expression
	PropKind  string
	Computed  bool
	Shorthand bool
	Method    bool
}

func (*Property) Kind() Kind { return KindProperty }

// CoverInitializedName is the shorthand `{a = 1}` form. It is only legal
// when the enclosing object literal is reinterpreted as a pattern.
type CoverInitializedName struct {
	Loc
	Key   *Identifier
	Value Expression
}

func (*CoverInitializedName) Kind() Kind { return KindCoverInitializedName }

// --- Functions and classes ---

// Function is shared by function declarations, expressions and methods.
type Function struct {
	ID             *Identifier
	Params         []Pattern
	Body           *BlockStatement
	Generator      bool
	Async          bool
	TypeParameters []*TSTypeParameter
	ReturnType     TSType
}

type FunctionExpression struct {
	Expr
	Function
}

func (*FunctionExpression) Kind() Kind { return KindFunctionExpression }

// ArrowFunctionExpression body is an Expression when ExpressionBody is set,
// a *BlockStatement otherwise.
type ArrowFunctionExpression struct {
	Expr
	Params         []Pattern
	Body           Node
	Async          bool
	ExpressionBody bool
	TypeParameters []*TSTypeParameter
	ReturnType     TSType
}

func (*ArrowFunctionExpression) Kind() Kind { return KindArrowFunctionExpression }

// Class is shared by class declarations and expressions.
type Class struct {
	ID                 *Identifier
	TypeParameters     []*TSTypeParameter
	SuperClass         Expression
	SuperTypeArguments []TSType
	Implements         []*TSExpressionWithTypeArguments
	Body               *ClassBody
	Abstract           bool
	Declare            bool
}

type ClassExpression struct {
	Expr
	Class
}

func (*ClassExpression) Kind() Kind { return KindClassExpression }

// ClassBody members are *MethodDefinition, *PropertyDefinition,
// *StaticBlock or *TSIndexSignature.
type ClassBody struct {
	Loc
	Body []Node
}

func (*ClassBody) Kind() Kind { return KindClassBody }

// Method kinds.
const (
	MethodConstructor = "constructor"
	MethodMethod      = "method"
	MethodGet         = "get"
	MethodSet         = "set"
)

// Modifiers are the TypeScript member modifiers.
type Modifiers struct {
	Accessibility string // "", "public", "private", "protected"
	Abstract      bool
	Override      bool
	Readonly      bool
	Declare       bool
	Optional      bool
}

type MethodDefinition struct {
	Loc
	Key        Expression
	Value      *FunctionExpression
	MethodKind string
	Computed   bool
	Static     bool
	Modifiers
}

func (*MethodDefinition) Kind() Kind { return KindMethodDefinition }

// PropertyDefinition is a class field.
type PropertyDefinition struct {
	Loc
	Key            Expression
	Value          Expression
	TypeAnnotation TSType
	Computed       bool
	Static         bool
	Definite       bool
	Modifiers
}

func (*PropertyDefinition) Kind() Kind { return KindPropertyDefinition }

// StaticBlock is static { ... } inside a class body.
type StaticBlock struct {
	Loc
	Body []Statement
}

func (*StaticBlock) Kind() Kind { return KindStaticBlock }

// --- Operators ---

// UnaryExpression covers - + ! ~ typeof void delete.
type UnaryExpression struct {
	Expr
	Operator string
	Argument Expression
}

func (*UnaryExpression) Kind() Kind { return KindUnaryExpression }

// UpdateExpression is ++x, --x, x++ or x--.
type UpdateExpression struct {
	Expr
	Operator string
	Prefix   bool
	Argument Expression
}

func (*UpdateExpression) Kind() Kind { return KindUpdateExpression }

type BinaryExpression struct {
	Expr
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) Kind() Kind { return KindBinaryExpression }

// LogicalExpression is && || or ??.
type LogicalExpression struct {
	Expr
	Operator string
	Left     Expression
	Right    Expression
}

func (*LogicalExpression) Kind() Kind { return KindLogicalExpression }

type AssignmentExpression struct {
	Expr
	Operator string
	Left     Pattern
	Right    Expression
}

func (*AssignmentExpression) Kind() Kind { return KindAssignmentExpression }

// ConditionalExpression is test ? consequent : alternate
type ConditionalExpression struct {
	Expr
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (*ConditionalExpression) Kind() Kind { return KindConditionalExpression }

// --- Calls and members ---

type CallExpression struct {
	Expr
	Callee        Expression
	TypeArguments []TSType
	Arguments     []Expression
	Optional      bool
}

func (*CallExpression) Kind() Kind { return KindCallExpression }

// NewExpression arguments are nil when written without parentheses.
type NewExpression struct {
	Expr
	Callee        Expression
	TypeArguments []TSType
	Arguments     []Expression
}

func (*NewExpression) Kind() Kind { return KindNewExpression }

// MemberExpression is object.property, object[property] or the optional
// variants. Property is a *PrivateName for object.#x.
type MemberExpression struct {
	Expr
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (*MemberExpression) Kind() Kind   { return KindMemberExpression }
func (*MemberExpression) patternNode() {}

// ChainExpression wraps an optional chain: a?.b.c
type ChainExpression struct {
	Expr
	Expression Expression
}

func (*ChainExpression) Kind() Kind { return KindChainExpression }

type SequenceExpression struct {
	Expr
	Expressions []Expression
}

func (*SequenceExpression) Kind() Kind { return KindSequenceExpression }

// --- Generators, async, spread ---

type YieldExpression struct {
	Expr
	Argument Expression
	Delegate bool
}

func (*YieldExpression) Kind() Kind { return KindYieldExpression }

type AwaitExpression struct {
	Expr
	Argument Expression
}

func (*AwaitExpression) Kind() Kind { return KindAwaitExpression }

// SpreadElement is ...argument in arrays, calls and object literals.
type SpreadElement struct {
	Expr
	Argument Expression
}

func (*SpreadElement) Kind() Kind { return KindSpreadElement }

// MetaProperty is new.target or import.meta.
type MetaProperty struct {
	Expr
	Meta     *Identifier
	Property *Identifier
}

func (*MetaProperty) Kind() Kind { return KindMetaProperty }

// ImportExpression is import(source) or import(source, options).
type ImportExpression struct {
	Expr
	Source  Expression
	Options Expression
}

func (*ImportExpression) Kind() Kind { return KindImportExpression }

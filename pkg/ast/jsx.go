package ast

// --- JSX ---

// JSXElement children are *JSXText, *JSXExpressionContainer,
// *JSXSpreadChild, *JSXElement or *JSXFragment.
type JSXElement struct {
	Expr
	Opening  *JSXOpeningElement
	Children []Node
	Closing  *JSXClosingElement
}

func (*JSXElement) Kind() Kind { return KindJSXElement }

// JSXFragment is <>children</>
type JSXFragment struct {
	Expr
	Children []Node
}

func (*JSXFragment) Kind() Kind { return KindJSXFragment }

// JSXOpeningElement Name is a *JSXIdentifier, *JSXNamespacedName or
// *JSXMemberExpression. Attributes are *JSXAttribute or *JSXSpreadAttribute.
type JSXOpeningElement struct {
	Loc
	Name          Node
	TypeArguments []TSType
	Attributes    []Node
	SelfClosing   bool
}

func (*JSXOpeningElement) Kind() Kind { return KindJSXOpeningElement }

type JSXClosingElement struct {
	Loc
	Name Node
}

func (*JSXClosingElement) Kind() Kind { return KindJSXClosingElement }

// JSXAttribute Value is nil, a *StringLiteral, a *JSXExpressionContainer,
// a *JSXElement or a *JSXFragment.
type JSXAttribute struct {
	Loc
	Name  Node
	Value Node
}

func (*JSXAttribute) Kind() Kind { return KindJSXAttribute }

type JSXSpreadAttribute struct {
	Loc
	Argument Expression
}

func (*JSXSpreadAttribute) Kind() Kind { return KindJSXSpreadAttribute }

// JSXIdentifier may contain dashes: data-id
type JSXIdentifier struct {
	Loc
	Name string
}

func (*JSXIdentifier) Kind() Kind { return KindJSXIdentifier }

// JSXNamespacedName is ns:name
type JSXNamespacedName struct {
	Loc
	Namespace *JSXIdentifier
	Name      *JSXIdentifier
}

func (*JSXNamespacedName) Kind() Kind { return KindJSXNamespacedName }

// JSXMemberExpression Object is a *JSXIdentifier or *JSXMemberExpression.
type JSXMemberExpression struct {
	Loc
	Object   Node
	Property *JSXIdentifier
}

func (*JSXMemberExpression) Kind() Kind { return KindJSXMemberExpression }

// JSXExpressionContainer holds a *JSXEmptyExpression for `{}`.
type JSXExpressionContainer struct {
	Loc
	Expression Expression
}

func (*JSXExpressionContainer) Kind() Kind { return KindJSXExpressionContainer }

type JSXEmptyExpression struct{ Expr }

func (*JSXEmptyExpression) Kind() Kind { return KindJSXEmptyExpression }

// JSXSpreadChild is {...children}
type JSXSpreadChild struct {
	Loc
	Expression Expression
}

func (*JSXSpreadChild) Kind() Kind { return KindJSXSpreadChild }

// JSXText keeps the raw text and the entity-decoded value.
type JSXText struct {
	Loc
	Value string
	Raw   string
}

func (*JSXText) Kind() Kind { return KindJSXText }

// JSXName renders an element name the way it is written.
func JSXName(n Node) string {
	switch n := n.(type) {
	case *JSXIdentifier:
		return n.Name
	case *JSXNamespacedName:
		return n.Namespace.Name + ":" + n.Name.Name
	case *JSXMemberExpression:
		return JSXName(n.Object) + "." + n.Property.Name
	}
	return ""
}

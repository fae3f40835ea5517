package ast

// --- Destructuring patterns ---

// ObjectPattern properties are *PatternProperty or a trailing *RestElement.
type ObjectPattern struct {
	Loc
	Properties     []Pattern
	TypeAnnotation TSType
	Optional       bool
}

func (*ObjectPattern) Kind() Kind   { return KindObjectPattern }
func (*ObjectPattern) patternNode() {}

// PatternProperty is key: value inside an object pattern. Shorthand
// properties reuse the key identifier as the value.
type PatternProperty struct {
	Loc
	Key       Expression
	Value     Pattern
	Computed  bool
	Shorthand bool
}

func (*PatternProperty) Kind() Kind   { return KindPatternProperty }
func (*PatternProperty) patternNode() {}

// ArrayPattern elements are nil for holes.
type ArrayPattern struct {
	Loc
	Elements       []Pattern
	TypeAnnotation TSType
	Optional       bool
}

func (*ArrayPattern) Kind() Kind   { return KindArrayPattern }
func (*ArrayPattern) patternNode() {}

// AssignmentPattern is a target with a default: left = right
type AssignmentPattern struct {
	Loc
	Left  Pattern
	Right Expression
}

func (*AssignmentPattern) Kind() Kind   { return KindAssignmentPattern }
func (*AssignmentPattern) patternNode() {}

// RestElement is ...argument in patterns and parameter lists.
type RestElement struct {
	Loc
	Argument       Pattern
	TypeAnnotation TSType
}

func (*RestElement) Kind() Kind   { return KindRestElement }
func (*RestElement) patternNode() {}

// TSParameterProperty is a constructor parameter with an accessibility or
// readonly modifier: constructor(private x: number)
type TSParameterProperty struct {
	Loc
	Parameter Pattern
	Modifiers
}

func (*TSParameterProperty) Kind() Kind   { return KindTSParameterProperty }
func (*TSParameterProperty) patternNode() {}

// BoundNames appends the identifiers bound by a pattern to names.
func BoundNames(p Pattern, names []*Identifier) []*Identifier {
	switch n := p.(type) {
	case *Identifier:
		names = append(names, n)
	case *ObjectPattern:
		for _, prop := range n.Properties {
			names = BoundNames(prop, names)
		}
	case *PatternProperty:
		names = BoundNames(n.Value, names)
	case *ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				names = BoundNames(el, names)
			}
		}
	case *AssignmentPattern:
		names = BoundNames(n.Left, names)
	case *RestElement:
		names = BoundNames(n.Argument, names)
	case *TSParameterProperty:
		names = BoundNames(n.Parameter, names)
	}
	return names
}

// IsSimpleParameterList reports whether every parameter is a plain
// identifier without default, rest or destructuring.
func IsSimpleParameterList(params []Pattern) bool {
	for _, p := range params {
		if _, ok := p.(*Identifier); !ok {
			return false
		}
	}
	return true
}

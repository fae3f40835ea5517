package ast

import "esfront/pkg/source"

const slabSize = 256

// slab hands out pointers into fixed-capacity chunks. A full chunk is
// never grown, so pointers already handed out stay valid.
type slab[T any] struct {
	chunk []T
}

func (s *slab[T]) alloc() *T {
	if len(s.chunk) == cap(s.chunk) {
		s.chunk = make([]T, 0, slabSize)
	}
	s.chunk = s.chunk[:len(s.chunk)+1]
	return &s.chunk[len(s.chunk)-1]
}

// Arena provides chunked allocation for the most frequent node shapes.
// Nodes are allocated in batches, reducing GC pressure on large inputs.
// A nil *Arena is valid and falls back to plain allocation.
type Arena struct {
	identifiers slab[Identifier]
	numbers     slab[NumericLiteral]
	strings     slab[StringLiteral]
	members     slab[MemberExpression]
	calls       slab[CallExpression]
	binaries    slab[BinaryExpression]
	properties  slab[Property]
	exprStmts   slab[ExpressionStatement]
	blocks      slab[BlockStatement]
	declarators slab[VariableDeclarator]
	assignments slab[AssignmentExpression]
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Reset drops every chunk. Nodes allocated before Reset remain valid
// until the caller releases them; the arena simply stops sharing chunks
// with the previous parse.
func (a *Arena) Reset() {
	*a = Arena{}
}

func (a *Arena) NewIdentifier(name string, from, to source.Position) *Identifier {
	var n *Identifier
	if a == nil {
		n = &Identifier{}
	} else {
		n = a.identifiers.alloc()
	}
	n.Name = name
	n.From, n.To = from, to
	return n
}

func (a *Arena) NewNumericLiteral(value float64, raw string, from, to source.Position) *NumericLiteral {
	var n *NumericLiteral
	if a == nil {
		n = &NumericLiteral{}
	} else {
		n = a.numbers.alloc()
	}
	n.Value, n.Raw = value, raw
	n.From, n.To = from, to
	return n
}

func (a *Arena) NewStringLiteral(value, raw string, from, to source.Position) *StringLiteral {
	var n *StringLiteral
	if a == nil {
		n = &StringLiteral{}
	} else {
		n = a.strings.alloc()
	}
	n.Value, n.Raw = value, raw
	n.From, n.To = from, to
	return n
}

func (a *Arena) NewMemberExpression() *MemberExpression {
	if a == nil {
		return &MemberExpression{}
	}
	return a.members.alloc()
}

func (a *Arena) NewCallExpression() *CallExpression {
	if a == nil {
		return &CallExpression{}
	}
	return a.calls.alloc()
}

func (a *Arena) NewBinaryExpression() *BinaryExpression {
	if a == nil {
		return &BinaryExpression{}
	}
	return a.binaries.alloc()
}

func (a *Arena) NewProperty() *Property {
	if a == nil {
		return &Property{}
	}
	return a.properties.alloc()
}

func (a *Arena) NewExpressionStatement() *ExpressionStatement {
	if a == nil {
		return &ExpressionStatement{}
	}
	return a.exprStmts.alloc()
}

func (a *Arena) NewBlockStatement() *BlockStatement {
	if a == nil {
		return &BlockStatement{}
	}
	return a.blocks.alloc()
}

func (a *Arena) NewVariableDeclarator() *VariableDeclarator {
	if a == nil {
		return &VariableDeclarator{}
	}
	return a.declarators.alloc()
}

func (a *Arena) NewAssignmentExpression() *AssignmentExpression {
	if a == nil {
		return &AssignmentExpression{}
	}
	return a.assignments.alloc()
}

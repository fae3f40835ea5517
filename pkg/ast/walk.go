package ast

import (
	"reflect"
	"sync"
)

// Visitor is called for each node reached by Walk. If Visit returns a
// non-nil visitor w, Walk visits the children of node with w and then
// calls w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order, children in field order.
func Walk(v Visitor, node Node) {
	if isNil(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node in pre-order. Returning false prunes the
// subtree. f is called with nil after the children of a node are done.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

var (
	nodeType  = reflect.TypeOf((*Node)(nil)).Elem()
	fieldsMu  sync.RWMutex
	fieldPlan = map[reflect.Type][][]int{}
)

// Children returns the direct child nodes of n in field order, skipping
// nil fields and holes.
func Children(n Node) []Node {
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	var out []Node
	for _, idx := range childFields(v.Type()) {
		f := v.FieldByIndex(idx)
		switch f.Kind() {
		case reflect.Slice:
			for i := 0; i < f.Len(); i++ {
				if c, ok := asNode(f.Index(i)); ok {
					out = append(out, c)
				}
			}
		default:
			if c, ok := asNode(f); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func asNode(v reflect.Value) (Node, bool) {
	if (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil, false
	}
	n, ok := v.Interface().(Node)
	return n, ok && !isNil(n)
}

// childFields lists the field index paths of a node struct that can hold
// children, descending into embedded structs such as Function and Class.
func childFields(t reflect.Type) [][]int {
	fieldsMu.RLock()
	plan, ok := fieldPlan[t]
	fieldsMu.RUnlock()
	if ok {
		return plan
	}
	plan = collectFields(t, nil)
	fieldsMu.Lock()
	fieldPlan[t] = plan
	fieldsMu.Unlock()
	return plan
}

func collectFields(t reflect.Type, prefix []int) [][]int {
	var plan [][]int
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		ft := sf.Type
		switch {
		case sf.Anonymous && ft.Kind() == reflect.Struct:
			plan = append(plan, collectFields(ft, idx)...)
		case !sf.IsExported():
		case holdsNode(ft):
			plan = append(plan, idx)
		case ft.Kind() == reflect.Slice && holdsNode(ft.Elem()):
			plan = append(plan, idx)
		}
	}
	return plan
}

func holdsNode(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return t.Implements(nodeType)
	case reflect.Ptr:
		return t.Implements(nodeType)
	}
	return false
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node *Node) (w Visitor)
}

// Walk traverses a tree in depth-first order, visiting the child slots
// A, B, C and D in turn. List chains are walked through their B slots.
func Walk(v Visitor, node *Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range node.Children() {
		if c != nil {
			Walk(v, c)
		}
	}
	v.Visit(nil)
}

type inspector func(*Node) bool

func (f inspector) Visit(node *Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order, calling f for each
// node and then f(nil) after its children. Children are skipped when f
// returns false.
func Inspect(node *Node, f func(*Node) bool) {
	Walk(inspector(f), node)
}

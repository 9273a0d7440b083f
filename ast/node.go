package ast

// Node is a single syntax tree node. All nodes share one shape; Kind
// decides which of the child slots and payload fields are meaningful.
//
// List cells are nodes of kind List holding the element in A and the next
// cell in B. The Parent of a list cell is its predecessor cell (or the
// node owning the list, for the head), not the logical container.
type Node struct {
	Kind       Kind
	A, B, C, D *Node

	Text   string
	Number float64
	Line   int

	// Parent is a non-owning back reference set when the node is attached
	// as a child.
	Parent *Node

	// Jumps and CaseJump are scratch space for a later compilation pass.
	Jumps    *JumpList
	CaseJump int

	next *Node // arena ownership chain
}

// JumpKind distinguishes pending jump instructions.
type JumpKind int

const (
	JumpBreak JumpKind = iota
	JumpContinue
)

// JumpList is a singly linked list of jump instructions owned by a Node.
type JumpList struct {
	Kind JumpKind
	Inst int
	Next *JumpList
}

// AddJump prepends a jump record to the node's jump list.
func (n *Node) AddJump(kind JumpKind, inst int) {
	n.Jumps = &JumpList{Kind: kind, Inst: inst, Next: n.Jumps}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.A == nil && n.B == nil && n.C == nil && n.D == nil
}

// Children returns the four child slots in order.
func (n *Node) Children() [4]*Node {
	return [4]*Node{n.A, n.B, n.C, n.D}
}

// SetNumber turns n into a numeric literal in place, dropping its
// children. The detached subtrees stay owned by their arena.
func (n *Node) SetNumber(v float64) {
	n.Kind = ExpNumber
	n.Number = v
	n.A, n.B, n.C, n.D = nil, nil, nil, nil
}

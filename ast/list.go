package ast

// Link fixes up the parent pointers of a freshly built list chain: each
// cell's Parent is set to the cell before it. The head keeps whatever
// parent it has. Link returns head.
func Link(head *Node) *Node {
	prev := head
	for n := head; n != nil && n.Kind == List; n = n.B {
		if n != head {
			n.Parent = prev
		}
		prev = n
	}
	return head
}

// Items returns the elements of a list chain in order.
func Items(head *Node) []*Node {
	var out []*Node
	for n := head; n != nil; n = n.B {
		out = append(out, n.A)
	}
	return out
}

// Count returns the number of cells in a list chain.
func Count(head *Node) int {
	i := 0
	for n := head; n != nil; n = n.B {
		i++
	}
	return i
}

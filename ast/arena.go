package ast

// slab hands out pointers into pre-allocated chunks of T. When a chunk
// fills up, a new chunk 1.5x the size of the previous one is allocated.
type slab[T any] struct {
	chunks [][]T
	cur    []T
	index  int
	size   int
}

func newSlab[T any](size int) *slab[T] {
	return &slab[T]{size: size}
}

func (s *slab[T]) make() *T {
	if s.index == len(s.cur) {
		s.grow()
	}
	p := &s.cur[s.index]
	s.index++
	return p
}

func (s *slab[T]) grow() {
	if s.cur != nil {
		s.chunks = append(s.chunks, s.cur)
		s.size += s.size >> 1
	}
	s.cur = make([]T, s.size)
	s.index = 0
}

// reset drops every chunk except the current one, which is zeroed and
// reused.
func (s *slab[T]) reset() {
	s.chunks = nil
	clear(s.cur[:s.index])
	s.index = 0
}

const defaultChunk = 256

// Arena owns every node it creates. Nodes are threaded on an ownership
// chain that is independent of the tree shape, so reshaping the tree
// (folding, label rewriting) never affects what the arena frees. Nodes are
// only ever released all at once.
type Arena struct {
	// Line is stamped on every node created.
	Line int

	nodes     *slab[Node]
	head      *Node
	live      int
	allocated int
}

func NewArena() *Arena {
	return &Arena{nodes: newSlab[Node](defaultChunk)}
}

// New allocates a node of the given kind, sets the parent of every
// non-nil child to it and records it on the ownership chain.
func (a *Arena) New(kind Kind, ca, cb, cc, cd *Node) *Node {
	if a.nodes == nil {
		a.nodes = newSlab[Node](defaultChunk)
	}
	n := a.nodes.make()
	n.Kind = kind
	n.Line = a.Line
	n.A, n.B, n.C, n.D = ca, cb, cc, cd
	for _, c := range [4]*Node{ca, cb, cc, cd} {
		if c != nil {
			c.Parent = n
		}
	}
	n.next = a.head
	a.head = n
	a.live++
	a.allocated++
	return n
}

// NewText allocates a leaf carrying a string payload.
func (a *Arena) NewText(kind Kind, text string) *Node {
	n := a.New(kind, nil, nil, nil, nil)
	n.Text = text
	return n
}

// NewNumber allocates a leaf carrying a numeric payload.
func (a *Arena) NewNumber(kind Kind, v float64) *Node {
	n := a.New(kind, nil, nil, nil, nil)
	n.Number = v
	return n
}

// Len returns the number of nodes currently owned.
func (a *Arena) Len() int { return a.live }

// Allocated returns the number of nodes created over the arena's lifetime.
func (a *Arena) Allocated() int { return a.allocated }

// Release walks the ownership chain once, dropping each node's jump list
// and then the node itself, and returns the number of nodes reclaimed.
// Every node previously returned by the arena is invalid afterwards.
// Calling Release on an empty arena is a no-op.
func (a *Arena) Release() int {
	freed := 0
	for n := a.head; n != nil; {
		next := n.next
		for j := n.Jumps; j != nil; {
			jn := j.Next
			j.Next = nil
			j = jn
		}
		*n = Node{}
		freed++
		n = next
	}
	a.head = nil
	a.live = 0
	if a.nodes != nil {
		a.nodes.reset()
	}
	return freed
}

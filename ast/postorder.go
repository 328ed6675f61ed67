package ast

import "git.sr.ht/~mango/egg/pkg/stack"

// Postorder yields every node index of a tree exactly once, each node after
// all of its descendants.  The order is computed up front; a Postorder can
// only be drained once.
type Postorder struct {
	order []int
	next  int
}

type postFrame struct {
	node  int // Node whose children are being visited
	child int // Position of the next child to descend into
}

// Postorder returns the postorder traversal of a.  Children are visited left
// to right.  The traversal uses an explicit stack, so its depth is not bound
// by the depth of the tree.
func (a *Ast) Postorder() (*Postorder, error) {
	if _, err := a.Root(); err != nil {
		return nil, err
	}

	order := make([]int, 0, len(a.Nodes))
	seen := make([]bool, len(a.Nodes))
	seen[0] = true

	s := stack.New[postFrame](16)
	s.Push(postFrame{node: 0})
	for s.Len() > 0 {
		f := s.Peek()
		children := a.Nodes[f.node].Children
		if f.child == len(children) {
			order = append(order, f.node)
			s.Pop()
			continue
		}

		c := children[f.child]
		f.child++
		if c < 0 || c >= len(a.Nodes) {
			return nil, IndexError(c)
		}
		if seen[c] {
			return nil, ErrNotTree
		}
		seen[c] = true
		s.Push(postFrame{node: c})
	}

	return &Postorder{order: order}, nil
}

// Next returns the next node index, or false once every node was returned.
func (p *Postorder) Next() (int, bool) {
	if p.next >= len(p.order) {
		return 0, false
	}
	i := p.order[p.next]
	p.next++
	return i, true
}

// Rest drains the traversal and returns the indices not yet returned by
// Next.
func (p *Postorder) Rest() []int {
	xs := append([]int(nil), p.order[p.next:]...)
	p.next = len(p.order)
	return xs
}

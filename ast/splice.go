package ast

import "git.sr.ht/~mango/egg/grammar"

// HangChild appends every node of child to a and makes the root of child the
// last child of the root of a.  The root of child must not be a placeholder.
func (a *Ast) HangChild(child *Ast) error {
	r, err := child.Root()
	if err != nil {
		return err
	}
	if r.Symbol == grammar.Placeholder {
		return ErrReceivedPlaceholder
	}
	if _, err := a.Root(); err != nil {
		return err
	}

	n := len(a.Nodes)
	a.Nodes[0].Children = append(a.Nodes[0].Children, n)
	a.appendShifted(child.Nodes, n)
	return nil
}

// HangFromPlaceholder appends every node of child except its root to a, and
// appends the children of that root to the children of the root of a.  The
// root of child must be a placeholder.
func (a *Ast) HangFromPlaceholder(child *Ast) error {
	r, err := child.Root()
	if err != nil {
		return err
	}
	if r.Symbol != grammar.Placeholder {
		return ErrExpectedPlaceholder
	}
	if _, err := a.Root(); err != nil {
		return err
	}

	// Dropping the child’s root moves every other node down by one
	n := len(a.Nodes) - 1
	for _, c := range r.Children {
		a.Nodes[0].Children = append(a.Nodes[0].Children, c+n)
	}
	a.appendShifted(child.Nodes[1:], n)
	return nil
}

// AddChild appends node to a as the last child of the root.
func (a *Ast) AddChild(node Node) error {
	if _, err := a.Root(); err != nil {
		return err
	}
	n := len(a.Nodes)
	a.Nodes[0].Children = append(a.Nodes[0].Children, n)
	a.Nodes = append(a.Nodes, node)
	return nil
}

func (a *Ast) appendShifted(nodes []Node, offset int) {
	for _, node := range nodes {
		if node.Children != nil {
			xs := make([]int, len(node.Children))
			for i, c := range node.Children {
				xs[i] = c + offset
			}
			node.Children = xs
		}
		a.Nodes = append(a.Nodes, node)
	}
}

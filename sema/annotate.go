// Package sema runs the semantic passes over parsed syntax trees.
package sema

import (
	"errors"
	"fmt"

	"git.sr.ht/~mango/egg/ast"
	"git.sr.ht/~mango/egg/grammar"
)

var ErrPlaceholder = errors.New("placeholder node in syntax tree")

// MissingChildError is returned when a node lacks a child whose value the
// node reads.
type MissingChildError struct {
	Node   int
	Symbol grammar.Symbol
	Child  int
}

func (e MissingChildError) Error() string {
	return fmt.Sprintf("%s node %d has no child %d", e.Symbol, e.Node, e.Child)
}

// Annotate assigns every node of tree its own memory id and marks the nodes
// whose values are read by their parent as not discarded.  Nodes are visited
// in postorder, so a node is annotated only after all of its children.
func Annotate(tree *ast.Ast) error {
	p, err := tree.Postorder()
	if err != nil {
		return err
	}

	for {
		i, ok := p.Next()
		if !ok {
			return nil
		}

		n := &tree.Nodes[i]
		n.Annotations.MemID = i

		switch n.Symbol {
		case grammar.Placeholder:
			return ErrPlaceholder
		case grammar.ExecChain, grammar.Exec, grammar.RedirectTarget:
			for _, c := range n.Children {
				tree.Nodes[c].Annotations.Discard = false
			}
		case grammar.PipeExec, grammar.RedirectExec:
			// The operator token is not a value
			if len(n.Children) < 2 {
				return MissingChildError{Node: i, Symbol: n.Symbol, Child: 1}
			}
			tree.Nodes[n.Children[1]].Annotations.Discard = false
		}
	}
}

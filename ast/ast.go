package ast

import "git.sr.ht/~mango/egg/grammar"

// NoToken is the token index of every node that is not a leaf.
const NoToken = -1

// NoID marks an annotation id that has not been assigned.
const NoID = -1

// Ast is a syntax tree stored as a flat arena of nodes.  Node 0 is the root
// and every other node is the child of exactly one node.
type Ast struct {
	Nodes []Node
}

// Node is a single node of a syntax tree.  Children holds arena indices in
// order.  Token is an index into the token stream the tree was parsed from; it
// is set if and only if the node is a leaf of kind grammar.Leaf.
type Node struct {
	Symbol      grammar.Symbol
	Children    []int
	Token       int
	Annotations Annotations
}

// Annotations is the per-node payload filled in by semantic passes.
type Annotations struct {
	MemID   int  // Id of the value the node evaluates to
	TypeID  int  // Id of the type of that value
	Discard bool // The value is never read
}

func NewAnnotations() Annotations {
	return Annotations{
		MemID:   NoID,
		TypeID:  NoID,
		Discard: true,
	}
}

// NewNode returns a childless node without a token.
func NewNode(sym grammar.Symbol) Node {
	return Node{
		Symbol:      sym,
		Token:       NoToken,
		Annotations: NewAnnotations(),
	}
}

// NewLeaf returns a leaf node bound to the token at index tok.
func NewLeaf(tok int) Node {
	n := NewNode(grammar.Leaf)
	n.Token = tok
	return n
}

func (n *Node) IsLeaf() bool {
	return n.Symbol == grammar.Leaf
}

// New returns a tree with a single node.
func New(sym grammar.Symbol) *Ast {
	return &Ast{Nodes: []Node{NewNode(sym)}}
}

// Placeholder returns a tree with a single placeholder node.
func Placeholder() *Ast {
	return New(grammar.Placeholder)
}

func (a *Ast) Len() int {
	return len(a.Nodes)
}

// Root returns the root of the tree.
func (a *Ast) Root() (*Node, error) {
	if len(a.Nodes) == 0 {
		return nil, ErrNoRoot
	}
	return &a.Nodes[0], nil
}

// Node returns the node at index i.  The node may be modified in place
// through the returned pointer, which is valid until nodes are added to a.
func (a *Ast) Node(i int) (*Node, error) {
	if i < 0 || i >= len(a.Nodes) {
		return nil, IndexError(i)
	}
	return &a.Nodes[i], nil
}

package ast

import (
	"testing"

	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/lexer"
	"git.sr.ht/~mango/egg/source"
)

const exampleInput = "a a | b | c > d\nsay \"hi\" >> file_name\n"

func node(sym grammar.Symbol, children ...int) Node {
	n := NewNode(sym)
	n.Children = children
	return n
}

// exampleAst returns the syntax tree of exampleInput.
func exampleAst() *Ast {
	return &Ast{Nodes: []Node{
		node(grammar.Program, 1, 19),
		node(grammar.ExecChain, 2, 5),
		node(grammar.Exec, 3, 4),
		NewLeaf(0),
		NewLeaf(1),
		node(grammar.PipeExec, 6, 7),
		NewLeaf(2),
		node(grammar.ExecChain, 8, 10),
		node(grammar.Exec, 9),
		NewLeaf(3),
		node(grammar.PipeExec, 11, 12),
		NewLeaf(4),
		node(grammar.ExecChain, 13, 15),
		node(grammar.Exec, 14),
		NewLeaf(5),
		node(grammar.RedirectExec, 16, 17),
		NewLeaf(6),
		node(grammar.RedirectTarget, 18),
		NewLeaf(7),
		node(grammar.ExecChain, 20, 23),
		node(grammar.Exec, 21, 22),
		NewLeaf(9),
		NewLeaf(10),
		node(grammar.RedirectExec, 24, 25),
		NewLeaf(11),
		node(grammar.RedirectTarget, 26),
		NewLeaf(12),
	}}
}

func exampleTokens(t *testing.T) ([]lexer.Token, *source.Manager) {
	t.Helper()
	m := source.NewManager()
	toks, err := lexer.Default().Tokenize(m.Add("example", exampleInput))
	if err != nil {
		t.Fatalf("Expected example to tokenize but got %s", err)
	}
	return toks, m
}

func assertInts(t *testing.T, xs, ys []int) {
	t.Helper()
	if len(xs) != len(ys) {
		t.Fatalf("Expected %v but got %v", xs, ys)
	}
	for i := range xs {
		if xs[i] != ys[i] {
			t.Fatalf("Expected %v but got %v (differs at %d)", xs, ys, i)
		}
	}
}

package sema

import (
	"errors"
	"testing"

	"git.sr.ht/~mango/egg/ast"
	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/lexer"
	"git.sr.ht/~mango/egg/parser"
	"git.sr.ht/~mango/egg/source"
)

func parse(t *testing.T, s string) *ast.Ast {
	t.Helper()
	m := source.NewManager()
	xs, err := lexer.Default().Tokenize(m.Add("test", s))
	if err != nil {
		t.Fatal(err)
	}
	a, err := parser.Parse(parser.Shell(), xs)
	if err != nil {
		t.Fatalf("Expected %q to parse but got %s", s, err)
	}
	return a
}

func TestAnnotate(t *testing.T) {
	a := parse(t, "a a | b > c\n")
	if err := Annotate(a); err != nil {
		t.Fatalf("Expected annotation to succeed but got %s", err)
	}

	for i, n := range a.Nodes {
		if n.Annotations.MemID != i {
			t.Fatalf("Expected node %d to have memory id %d but got %d",
				i, i, n.Annotations.MemID)
		}
		if n.Annotations.TypeID != ast.NoID {
			t.Fatalf("Expected node %d to have no type id", i)
		}
	}

	kept := map[int]bool{}
	for _, n := range a.Nodes {
		switch n.Symbol {
		case grammar.ExecChain, grammar.Exec, grammar.RedirectTarget:
			for _, c := range n.Children {
				kept[c] = true
			}
		case grammar.PipeExec, grammar.RedirectExec:
			kept[n.Children[1]] = true
		}
	}
	for i, n := range a.Nodes {
		if n.Annotations.Discard == kept[i] {
			t.Fatalf("Expected node %d (%s) to have discard %t but got %t",
				i, n.Symbol, !kept[i], n.Annotations.Discard)
		}
	}

	// The root and the operator tokens are never read
	if !a.Nodes[0].Annotations.Discard {
		t.Fatalf("Expected root to be discarded")
	}
	for i, n := range a.Nodes {
		if n.Symbol != grammar.PipeExec && n.Symbol != grammar.RedirectExec {
			continue
		}
		if op := n.Children[0]; !a.Nodes[op].Annotations.Discard {
			t.Fatalf("Expected operator of node %d to be discarded", i)
		}
	}
}

func TestAnnotatePlaceholder(t *testing.T) {
	a := ast.New(grammar.Program)
	a.HangChild(ast.New(grammar.Exec))
	a.Nodes[1].Symbol = grammar.Placeholder
	if err := Annotate(a); !errors.Is(err, ErrPlaceholder) {
		t.Fatalf("Expected ErrPlaceholder but got %v", err)
	}
}

func TestAnnotateMissingChild(t *testing.T) {
	a := ast.New(grammar.Program)
	pipe := ast.New(grammar.PipeExec)
	pipe.AddChild(ast.NewLeaf(0))
	a.HangChild(pipe)

	var me MissingChildError
	if err := Annotate(a); !errors.As(err, &me) {
		t.Fatalf("Expected MissingChildError but got %v", err)
	}
	if me.Node != 1 || me.Symbol != grammar.PipeExec || me.Child != 1 {
		t.Fatalf("Unexpected error %+v", me)
	}
}

func TestAnnotateEmpty(t *testing.T) {
	if err := Annotate(&ast.Ast{}); !errors.Is(err, ast.ErrNoRoot) {
		t.Fatalf("Expected ErrNoRoot but got %v", err)
	}
}

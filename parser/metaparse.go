package parser

import (
	"git.sr.ht/~mango/egg/ast"
	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/lexer"
)

type state struct {
	grammar  *grammar.Grammar
	tokens   []lexer.Token
	maxDepth int
	depth    int
}

// match is a successful match of a block.  head is the index of the first
// token after the match.  Every block yields a tree rooted at a placeholder;
// the placeholder only gets a symbol once the tree is claimed by a rule.
type match struct {
	head int
	tree *ast.Ast
}

// A nil match with a nil error means the block did not match at head.
// Errors are never recovered from; they abort the whole parse.

// rule matches the rule of target at head and claims the result for target.
func (s *state) rule(target grammar.Symbol, head int) (*match, error) {
	r, ok := s.grammar.Rule(target)
	if !ok {
		return nil, NoRuleError{target}
	}
	if s.maxDepth > 0 && s.depth >= s.maxDepth {
		return nil, DepthError{Symbol: target, MaxDepth: s.maxDepth, Index: head}
	}

	s.depth++
	m, err := s.block(r, r.Root(), head)
	s.depth--
	if m == nil || err != nil {
		return nil, err
	}

	root, err := m.tree.Root()
	if err != nil {
		return nil, err
	}
	root.Symbol = target
	return m, nil
}

func (s *state) block(r grammar.Rule, id, head int) (*match, error) {
	b, err := r.Block(id)
	if err != nil {
		return nil, err
	}

	switch b.Kind {
	case grammar.BlockTerminal:
		return s.terminal(b.Lexeme, head)
	case grammar.BlockNonterminal:
		return s.nonterminal(b.Symbol, head)
	case grammar.BlockSequence:
		return s.sequence(r, b.Children, head)
	case grammar.BlockChoice:
		return s.choice(r, b.Children, head)
	case grammar.BlockOptional:
		return s.optional(r, b.Children[0], head)
	case grammar.BlockZeroOrMore:
		m, _, err := s.repeat(r, b.Children[0], head)
		return m, err
	case grammar.BlockOneOrMore:
		m, n, err := s.repeat(r, b.Children[0], head)
		if n == 0 {
			return nil, err
		}
		return m, err
	case grammar.BlockDiscard:
		return s.discard(r, b.Children[0], head)
	}
	panic("unreachable")
}

func (s *state) terminal(l grammar.Lexeme, head int) (*match, error) {
	if head >= len(s.tokens) || s.tokens[head].Kind != l {
		return nil, nil
	}

	tree := ast.Placeholder()
	if err := tree.AddChild(ast.NewLeaf(head)); err != nil {
		return nil, err
	}
	return &match{head + 1, tree}, nil
}

func (s *state) nonterminal(sym grammar.Symbol, head int) (*match, error) {
	m, err := s.rule(sym, head)
	if m == nil || err != nil {
		return nil, err
	}

	tree := ast.Placeholder()
	if err := tree.HangChild(m.tree); err != nil {
		return nil, err
	}
	m.tree = tree
	return m, nil
}

// sequence matches every block of ids in order.  The subtrees of the blocks
// become siblings; nothing is kept if any block fails.
func (s *state) sequence(r grammar.Rule, ids []int, head int) (*match, error) {
	acc := &match{head, ast.Placeholder()}

	for _, id := range ids {
		m, err := s.block(r, id, acc.head)
		if m == nil || err != nil {
			return nil, err
		}
		if err := acc.tree.HangFromPlaceholder(m.tree); err != nil {
			return nil, err
		}
		acc.head = m.head
	}
	return acc, nil
}

// choice returns the match of the first block of ids that matches at head.
// Once a block matches the others are never tried, even if whatever follows
// the choice fails.
func (s *state) choice(r grammar.Rule, ids []int, head int) (*match, error) {
	for _, id := range ids {
		if m, err := s.block(r, id, head); m != nil || err != nil {
			return m, err
		}
	}
	return nil, nil
}

func (s *state) optional(r grammar.Rule, id, head int) (*match, error) {
	m, err := s.block(r, id, head)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return &match{head, ast.Placeholder()}, nil
	}
	return m, nil
}

// repeat matches the block id as often as it can and flattens the matches
// like sequence does.  It also returns the number of matches, which may be
// positive even if every match produced an empty subtree.  Repetition stops
// after a match that consumes no tokens, since it would match forever.
func (s *state) repeat(r grammar.Rule, id, head int) (*match, int, error) {
	acc := &match{head, ast.Placeholder()}

	for n := 0; ; n++ {
		m, err := s.block(r, id, acc.head)
		if err != nil {
			return nil, n, err
		}
		if m == nil {
			return acc, n, nil
		}
		if err := acc.tree.HangFromPlaceholder(m.tree); err != nil {
			return nil, n, err
		}
		if m.head == acc.head {
			return acc, n + 1, nil
		}
		acc.head = m.head
	}
}

// discard matches the block id but throws its subtree away.
func (s *state) discard(r grammar.Rule, id, head int) (*match, error) {
	m, err := s.block(r, id, head)
	if m == nil || err != nil {
		return nil, err
	}
	m.tree = ast.Placeholder()
	return m, nil
}

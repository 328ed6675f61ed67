package parser

import (
	"git.sr.ht/~mango/egg/ast"
	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/lexer"
)

// Parser builds syntax trees by interpreting a grammar over a token stream.
// A Parser holds no state between calls to Parse.
type Parser struct {
	Grammar *grammar.Grammar

	// MaxDepth limits how deeply nonterminals may nest.  Every element of a
	// pipeline nests one level deeper, so very long inputs need a high limit.
	// Zero means no limit.
	MaxDepth int
}

func New(g *grammar.Grammar) *Parser {
	return &Parser{Grammar: g}
}

// Parse parses tokens with the grammar g.  See (*Parser).Parse.
func Parse(g *grammar.Grammar, tokens []lexer.Token) (*ast.Ast, error) {
	return New(g).Parse(tokens)
}

// Parse matches the entry symbol of the grammar against tokens.  It succeeds
// only if every token is consumed, in which case the root of the returned
// tree has the entry symbol.
func (p *Parser) Parse(tokens []lexer.Token) (*ast.Ast, error) {
	s := state{
		grammar:  p.Grammar,
		tokens:   tokens,
		maxDepth: p.MaxDepth,
	}

	m, err := s.rule(p.Grammar.Entry(), 0)
	switch {
	case err != nil:
		return nil, err
	case m == nil:
		return nil, ErrNoMatch
	case m.head < len(tokens):
		return nil, UnexpectedTokenError{Token: tokens[m.head], Index: m.head}
	case m.head > len(tokens):
		return nil, ErrHeadPastEnd
	}
	return m.tree, nil
}

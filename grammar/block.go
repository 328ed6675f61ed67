package grammar

import "fmt"

type BlockKind int

const (
	BlockTerminal    BlockKind = iota // Match a single token
	BlockNonterminal                  // Match the rule of another symbol
	BlockSequence                     // Match all children in order
	BlockChoice                       // Match the first child that matches
	BlockOptional                     // Match the child zero or one times
	BlockZeroOrMore                   // Match the child as often as possible
	BlockOneOrMore                    // Like BlockZeroOrMore but at least once
	BlockDiscard                      // Match the child but drop its subtree
)

// Block is a node in the arena of a Rule.  Children holds the arena ids of
// the operands of composite blocks; unary blocks have exactly one.  Lexeme is
// only meaningful for BlockTerminal and Symbol only for BlockNonterminal.
type Block struct {
	Kind     BlockKind
	Lexeme   Lexeme
	Symbol   Symbol
	Children []int
}

func (b Block) String() string {
	switch b.Kind {
	case BlockTerminal:
		return fmt.Sprintf("Terminal<%s>", b.Lexeme)
	case BlockNonterminal:
		return fmt.Sprintf("Nonterminal<%s>", b.Symbol)
	case BlockSequence:
		return "Sequence"
	case BlockChoice:
		return "Choice"
	case BlockOptional:
		return "Optional"
	case BlockZeroOrMore:
		return "ZeroOrMore"
	case BlockOneOrMore:
		return "OneOrMore"
	case BlockDiscard:
		return "Discard"
	}
	panic("unreachable")
}

// IndexError is returned when a block id is not in the arena of a rule.
type IndexError int

func (e IndexError) Error() string {
	return fmt.Sprintf("block %d is out of bounds", int(e))
}

package parser

import (
	"errors"
	"fmt"

	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/lexer"
)

var (
	// ErrNoMatch is returned when the entry symbol matches nothing
	ErrNoMatch = errors.New("could not parse program")

	// ErrHeadPastEnd is returned if a match consumed more tokens than exist
	ErrHeadPastEnd = errors.New("parser head advanced past the last token")
)

// NoRuleError is returned when the parser reaches a symbol without a rule.
// It is a bug in the grammar, not in the input.
type NoRuleError struct {
	Symbol grammar.Symbol
}

func (e NoRuleError) Error() string {
	return fmt.Sprintf("tried to build symbol %s which has no rule", e.Symbol)
}

// UnexpectedTokenError is returned when the entry symbol matched but stopped
// before the end of the input.  Token is the first token not consumed.
type UnexpectedTokenError struct {
	Token lexer.Token
	Index int
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s token at offset %d", e.Token.Kind,
		e.Token.Span.Start)
}

// DepthError is returned when nonterminals nest deeper than the parser
// allows.
type DepthError struct {
	Symbol   grammar.Symbol // The symbol that could not be entered
	MaxDepth int
	Index    int // Index of the token the symbol would have started at
}

func (e DepthError) Error() string {
	return fmt.Sprintf("%s at token %d exceeds the maximum nesting depth of %d",
		e.Symbol, e.Index, e.MaxDepth)
}

package ast

import (
	"errors"
	"fmt"
)

var (
	ErrNoRoot              = errors.New("syntax tree has no root node")
	ErrLexemeMissingToken  = errors.New("leaf node is missing its token")
	ErrTokenOutOfBounds    = errors.New("leaf node token is out of bounds")
	ErrExpectedPlaceholder = errors.New("expected a placeholder rooted subtree")
	ErrReceivedPlaceholder = errors.New("received a placeholder rooted subtree")
	ErrNotTree             = errors.New("syntax tree node has more than one parent")
)

// IndexError is returned for a node index that is not in the arena.
type IndexError int

func (e IndexError) Error() string {
	return fmt.Sprintf("syntax tree node %d is out of bounds", int(e))
}

package lexer

import (
	"fmt"

	"git.sr.ht/~mango/egg/source"
)

// TokenizeError is returned when no pattern matches at a position that is
// not blank.
type TokenizeError struct {
	Loc source.Location
}

func (e TokenizeError) Error() string {
	return fmt.Sprintf("could not create a token at offset %d", e.Loc.Offset)
}

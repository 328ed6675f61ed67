package lexer

import (
	"regexp"

	"git.sr.ht/~mango/egg/grammar"
)

// Pattern matches the text of one kind of token.
type Pattern struct {
	Kind grammar.Lexeme
	Expr *regexp.Regexp
}

// MustCompile returns a pattern for kind that matches expr anchored at the
// current position.  It panics if expr is not a valid regular expression.
func MustCompile(kind grammar.Lexeme, expr string) Pattern {
	return Pattern{
		Kind: kind,
		Expr: regexp.MustCompile(`^(?:` + expr + `)`),
	}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

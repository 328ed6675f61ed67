package lexer

import (
	"fmt"

	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/source"
)

// Token is a single terminal of the source.  Its text is not stored; it is
// resolved through the span when needed.
type Token struct {
	Kind grammar.Lexeme
	Span source.Span
}

// Maximum length of a literal before truncation in diagnostics
const maxStrLen = 20

func (t Token) String() string {
	return fmt.Sprintf("%s %d–%d", t.Kind, t.Span.Start, t.Span.End)
}

// Text returns the source text of the token.
func (t Token) Text(files *source.Manager) (string, error) {
	return files.Text(t.Span)
}

// Describe returns a short description of the token for use in diagnostics.
func (t Token) Describe(files *source.Manager) string {
	if t.Kind == grammar.LineEnd {
		return "end of statement"
	}

	s, err := t.Text(files)
	if err != nil {
		return t.Kind.String()
	}
	if len(s) > maxStrLen {
		return fmt.Sprintf("‘%.*s…’", maxStrLen, s)
	}
	return "‘" + s + "’"
}

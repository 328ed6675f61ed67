package grammar

// Lexeme is the kind of a terminal produced by the tokenizer.  The literal
// text of a terminal lives in the source file, not in the grammar.
type Lexeme int

const (
	Literal        Lexeme = iota // A quoted or unquoted word
	Pipe                         // The ‘|’ operator
	Redirect                     // The ‘>’ operator
	RedirectAppend               // The ‘>>’ operator
	LineEnd                      // A newline or semicolon
)

func (l Lexeme) String() string {
	switch l {
	case Literal:
		return "Literal"
	case Pipe:
		return "Pipe"
	case Redirect:
		return "Redirect"
	case RedirectAppend:
		return "RedirectAppend"
	case LineEnd:
		return "LineEnd"
	}
	panic("unreachable")
}

package grammar

// Symbol is the kind of a syntax tree node.
type Symbol int

const (
	Program Symbol = iota
	ExecChain
	Exec
	PipeExec
	RedirectExec
	RedirectTarget

	// Leaf wraps a single token in the syntax tree
	Leaf

	// Placeholder tags a subtree that has not yet been claimed as the match
	// of a nonterminal.  It never appears in a finished tree.
	Placeholder
)

func (s Symbol) String() string {
	switch s {
	case Program:
		return "Program"
	case ExecChain:
		return "ExecChain"
	case Exec:
		return "Exec"
	case PipeExec:
		return "PipeExec"
	case RedirectExec:
		return "RedirectExec"
	case RedirectTarget:
		return "RedirectTarget"
	case Leaf:
		return "Leaf"
	case Placeholder:
		return "Placeholder"
	}
	panic("unreachable")
}

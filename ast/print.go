package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/lexer"
	"git.sr.ht/~mango/egg/pkg/stack"
	"git.sr.ht/~mango/egg/source"
)

type printFrame struct {
	node, depth int
}

// Fprint writes the tree to w as an indented list, one node per line and
// children after their parent.  Leaves are written as the kind of their token
// followed by its quoted text, one level deeper.  tokens must be the token
// stream the tree was parsed from.
func (a *Ast) Fprint(w io.Writer, tokens []lexer.Token, files *source.Manager) error {
	if _, err := a.Root(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}

	s := stack.New[printFrame](len(a.Nodes))
	s.Push(printFrame{0, 0})
	for s.Len() > 0 {
		f := s.Pop()
		node, err := a.Node(f.node)
		if err != nil {
			return err
		}

		indent := strings.Repeat("  ", f.depth) + "- "
		switch {
		case node.Symbol == grammar.Leaf:
			if node.Token == NoToken {
				return ErrLexemeMissingToken
			}
			if node.Token < 0 || node.Token >= len(tokens) {
				return ErrTokenOutOfBounds
			}
			tok := tokens[node.Token]
			text, err := tok.Text(files)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s%s:\n  %s%s\n", indent, tok.Kind,
				indent, strconv.Quote(text))
			if err != nil {
				return err
			}
		case len(node.Children) == 0:
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, node.Symbol); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s%s:\n", indent, node.Symbol); err != nil {
				return err
			}
		}

		for i := len(node.Children) - 1; i >= 0; i-- {
			s.Push(printFrame{node.Children[i], f.depth + 1})
		}
	}
	return nil
}

// Format returns the output of Fprint as a string.
func (a *Ast) Format(tokens []lexer.Token, files *source.Manager) (string, error) {
	sb := strings.Builder{}
	if err := a.Fprint(&sb, tokens, files); err != nil {
		return "", err
	}
	return sb.String(), nil
}

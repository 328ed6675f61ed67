package grammar

import (
	"fmt"
	"strings"

	"git.sr.ht/~mango/egg/pkg/stack"
)

// Rule is the production of a single nonterminal, stored as a tree of blocks
// in a flat arena.  Rules are values: the combinators below never modify
// their operands, they return a new rule with a fresh arena.
type Rule struct {
	blocks []Block
	root   int
}

// Tok returns a rule matching a single token of kind l.
func Tok(l Lexeme) Rule {
	return from(Block{Kind: BlockTerminal, Lexeme: l})
}

// Sym returns a rule matching the rule of the nonterminal s.
func Sym(s Symbol) Rule {
	return from(Block{Kind: BlockNonterminal, Symbol: s})
}

// OneOf returns a rule matching the first of rs that matches.  Unlike Or it
// always builds a new choice, even if one of rs is a choice itself.
func OneOf(rs ...Rule) Rule {
	var r Rule
	ids := make([]int, 0, len(rs))
	for _, x := range rs {
		ids = append(ids, r.splice(x))
	}
	r.root = r.push(Block{Kind: BlockChoice, Children: ids})
	return r
}

func from(b Block) Rule {
	return Rule{blocks: []Block{b}}
}

// Root returns the arena id of the root block.
func (r Rule) Root() int {
	return r.root
}

// Len returns the number of blocks in the arena.
func (r Rule) Len() int {
	return len(r.blocks)
}

// Block returns the block with the given arena id.  The children of the
// returned block must not be modified.
func (r Rule) Block(id int) (Block, error) {
	if id < 0 || id >= len(r.blocks) {
		return Block{}, IndexError(id)
	}
	return r.blocks[id], nil
}

// Then matches r followed by o.  Sequences are flattened: if either root is
// already a sequence the other root joins it instead of nesting.
func (r Rule) Then(o Rule) Rule {
	return r.join(o, BlockSequence)
}

// Or matches r, or o if r fails.  Choices are flattened like in Then.
func (r Rule) Or(o Rule) Rule {
	return r.join(o, BlockChoice)
}

// ThenOneOf matches r followed by a new choice over rs.
func (r Rule) ThenOneOf(rs ...Rule) Rule {
	return r.Then(OneOf(rs...))
}

func (r Rule) ThenTok(l Lexeme) Rule { return r.Then(Tok(l)) }
func (r Rule) ThenSym(s Symbol) Rule { return r.Then(Sym(s)) }
func (r Rule) OrTok(l Lexeme) Rule   { return r.Or(Tok(l)) }
func (r Rule) OrSym(s Symbol) Rule   { return r.Or(Sym(s)) }

func (r Rule) ThenMaybe(o Rule) Rule { return r.Then(o.Maybe()) }
func (r Rule) ThenStar(o Rule) Rule  { return r.Then(o.Star()) }
func (r Rule) ThenPlus(o Rule) Rule  { return r.Then(o.Plus()) }

// Maybe matches r zero or one times.
func (r Rule) Maybe() Rule { return r.wrap(BlockOptional) }

// Star matches r zero or more times.
func (r Rule) Star() Rule { return r.wrap(BlockZeroOrMore) }

// Plus matches r one or more times.
func (r Rule) Plus() Rule { return r.wrap(BlockOneOrMore) }

// Discard matches r but leaves no trace of the match in the syntax tree.
func (r Rule) Discard() Rule { return r.wrap(BlockDiscard) }

func (r Rule) wrap(k BlockKind) Rule {
	r = r.clone()
	r.root = r.push(Block{Kind: k, Children: []int{r.root}})
	return r
}

func (r Rule) join(o Rule, k BlockKind) Rule {
	r = r.clone()
	oroot := r.splice(o)

	switch {
	case r.blocks[r.root].Kind == k:
		r.blocks[r.root].Children = append(r.blocks[r.root].Children, oroot)
	case r.blocks[oroot].Kind == k:
		xs := r.blocks[oroot].Children
		r.blocks[oroot].Children = append([]int{r.root}, xs...)
		r.root = oroot
	default:
		r.root = r.push(Block{Kind: k, Children: []int{r.root, oroot}})
	}
	return r
}

// splice appends the arena of o to the arena of r, shifting every id in it by
// the old length of r’s arena.  It returns the new id of o’s root.
func (r *Rule) splice(o Rule) int {
	n := len(r.blocks)
	for _, b := range o.blocks {
		b.Children = shift(b.Children, n)
		r.blocks = append(r.blocks, b)
	}
	return o.root + n
}

func (r *Rule) push(b Block) int {
	r.blocks = append(r.blocks, b)
	return len(r.blocks) - 1
}

func (r Rule) clone() Rule {
	bs := make([]Block, len(r.blocks), len(r.blocks)+2)
	for i, b := range r.blocks {
		b.Children = shift(b.Children, 0)
		bs[i] = b
	}
	return Rule{blocks: bs, root: r.root}
}

func shift(xs []int, n int) []int {
	if xs == nil {
		return nil
	}
	ys := make([]int, len(xs))
	for i, x := range xs {
		ys[i] = x + n
	}
	return ys
}

type frame struct {
	id, depth int
}

// String renders the rule as an indented tree, one block per line.
func (r Rule) String() string {
	sb := strings.Builder{}
	sb.WriteString("---\n")
	if len(r.blocks) == 0 {
		return sb.String()
	}

	s := stack.New[frame](len(r.blocks))
	s.Push(frame{r.root, 0})
	for s.Len() > 0 {
		f := s.Pop()
		b := r.blocks[f.id]
		fmt.Fprintf(&sb, "%s- %s\n", strings.Repeat("  ", f.depth), b)
		for i := len(b.Children) - 1; i >= 0; i-- {
			s.Push(frame{b.Children[i], f.depth + 1})
		}
	}
	return sb.String()
}

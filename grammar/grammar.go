package grammar

import (
	"errors"
	"fmt"
	"sort"
)

// Grammar maps every nonterminal to its rule and names the symbol parsing
// starts from.  A grammar is not modified after it is built.
type Grammar struct {
	entry Symbol
	rules map[Symbol]Rule
}

// UndefinedError reports a symbol that is used but has no rule.
type UndefinedError struct {
	Symbol Symbol // The symbol without a rule
	From   Symbol // The rule referencing it
	Entry  bool   // Symbol is the entry of the grammar
}

func (e UndefinedError) Error() string {
	if e.Entry {
		return fmt.Sprintf("entry symbol %s has no rule", e.Symbol)
	}
	return fmt.Sprintf("rule %s references %s which has no rule",
		e.From, e.Symbol)
}

func New(entry Symbol, rules map[Symbol]Rule) *Grammar {
	g := &Grammar{
		entry: entry,
		rules: make(map[Symbol]Rule, len(rules)),
	}
	for s, r := range rules {
		g.rules[s] = r
	}
	return g
}

func (g *Grammar) Entry() Symbol {
	return g.entry
}

func (g *Grammar) Rule(s Symbol) (Rule, bool) {
	r, ok := g.rules[s]
	return r, ok
}

// Symbols returns the symbols that have a rule in ascending order.
func (g *Grammar) Symbols() []Symbol {
	xs := make([]Symbol, 0, len(g.rules))
	for s := range g.rules {
		xs = append(xs, s)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	return xs
}

// Validate checks that the entry symbol and every symbol referenced by a
// nonterminal block has a rule.  Parsing does not require a valid grammar;
// an undefined symbol is only an error once the parser reaches it.
func (g *Grammar) Validate() error {
	var errs []error
	if _, ok := g.rules[g.entry]; !ok {
		errs = append(errs, UndefinedError{Symbol: g.entry, Entry: true})
	}
	for _, s := range g.Symbols() {
		for _, b := range g.rules[s].blocks {
			if b.Kind != BlockNonterminal {
				continue
			}
			if _, ok := g.rules[b.Symbol]; !ok {
				errs = append(errs, UndefinedError{Symbol: b.Symbol, From: s})
			}
		}
	}
	return errors.Join(errs...)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"git.sr.ht/~mango/egg/lexer"
	"git.sr.ht/~mango/egg/log"
	"git.sr.ht/~mango/egg/parser"
	"git.sr.ht/~mango/egg/sema"
	"git.sr.ht/~mango/egg/source"
)

// mode selects what a session prints for every input.
type mode uint

const (
	modeTokens mode = 1 << iota
	modeTree
	modeGrammar
)

// session holds everything that outlives a single input: the source files
// read so far, the tokenizer, and the parser.
type session struct {
	out    io.Writer
	mode   mode
	files  *source.Manager
	lexer  *lexer.Lexer
	parser *parser.Parser
}

func newSession(out io.Writer, m mode) *session {
	return &session{
		out:    out,
		mode:   m,
		files:  source.NewManager(),
		lexer:  lexer.Default(),
		parser: parser.New(parser.Shell()),
	}
}

// run tokenizes and parses f and prints whatever the mode of s asks for.
func (s *session) run(f *source.File) error {
	toks, err := s.lexer.Tokenize(f)
	if err != nil {
		return err
	}
	if s.mode&modeTokens != 0 {
		if err := s.printTokens(toks); err != nil {
			return err
		}
	}
	if s.mode&modeTree == 0 {
		return nil
	}

	tree, err := s.parser.Parse(toks)
	if err != nil {
		return err
	}
	if err := sema.Annotate(tree); err != nil {
		return err
	}
	return tree.Fprint(s.out, toks, s.files)
}

func (s *session) printTokens(toks []lexer.Token) error {
	for _, t := range toks {
		pos, err := s.files.Position(t.Span.Loc())
		if err != nil {
			return err
		}
		text, err := t.Text(s.files)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(s.out, "%s\t%s\t%s\n", pos, t.Kind, strconv.Quote(text))
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *session) printGrammar() error {
	g := s.parser.Grammar
	if err := g.Validate(); err != nil {
		return err
	}
	for _, sym := range g.Symbols() {
		r, _ := g.Rule(sym)
		if _, err := fmt.Fprintf(s.out, "# %s\n%s", sym, r); err != nil {
			return err
		}
	}
	return nil
}

// report logs err, pointing at the offending position of the source when the
// error carries one.
func (s *session) report(err error) {
	var (
		te lexer.TokenizeError
		ue parser.UnexpectedTokenError
	)

	switch {
	case errors.As(err, &te):
		log.Diag(s.files, te.Loc, "unexpected character")
	case errors.As(err, &ue):
		log.Diag(s.files, ue.Token.Span.Loc(), "syntax error: unexpected %s",
			ue.Token.Describe(s.files))
	case errors.Is(err, parser.ErrNoMatch):
		log.Err("syntax error: %s", err)
	default:
		log.Err("%s", err)
	}
}

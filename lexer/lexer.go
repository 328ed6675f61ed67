package lexer

import (
	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/source"
)

// Lexer splits source files into tokens using longest match over an ordered
// list of patterns.  When two patterns match the same length, the one added
// first wins.
type Lexer struct {
	patterns []Pattern
}

type scanner struct {
	file  *source.File // The file to lex
	start int          // The start of the current token in file
	pos   int          // The pos of the cursor in file
	out   []Token      // Tokens emitted so far
}

func New(patterns ...Pattern) *Lexer {
	return &Lexer{patterns: patterns}
}

// Default returns a lexer for the shell.
func Default() *Lexer {
	return New(DefaultPatterns()...)
}

// Tokenize returns the tokens of f in order.  Spaces and tabs between tokens
// are skipped.
func (l *Lexer) Tokenize(f *source.File) ([]Token, error) {
	s := scanner{file: f}

	for {
		s.skipBlanks()
		if s.pos >= len(f.Contents) {
			return s.out, nil
		}

		kind, n, ok := l.longest(f.Contents[s.pos:])
		if !ok {
			return nil, s.errorf()
		}
		s.pos += n
		s.emit(kind)
	}
}

// longest returns the kind and length of the longest match at the start of
// input.  A later pattern only replaces the current best on a strictly longer
// match.
func (l *Lexer) longest(input string) (grammar.Lexeme, int, bool) {
	var kind grammar.Lexeme
	best := 0

	for _, p := range l.patterns {
		loc := p.Expr.FindStringIndex(input)
		if loc == nil || loc[0] != 0 {
			continue
		}
		if n := loc[1]; n > best {
			kind, best = p.Kind, n
		}
	}

	return kind, best, best > 0
}

func (s *scanner) skipBlanks() {
	for s.pos < len(s.file.Contents) && isBlank(s.file.Contents[s.pos]) {
		s.pos++
	}
	s.start = s.pos
}

func (s *scanner) emit(k grammar.Lexeme) {
	s.out = append(s.out, Token{
		Kind: k,
		Span: source.Span{
			FileID: s.file.ID,
			Start:  s.start,
			End:    s.pos - 1,
		},
	})
	s.start = s.pos
}

func (s *scanner) errorf() error {
	return TokenizeError{source.Location{
		FileID: s.file.ID,
		Offset: s.pos,
	}}
}

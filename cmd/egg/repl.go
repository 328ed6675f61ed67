package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"git.sr.ht/~mango/egg/grammar"
	"git.sr.ht/~mango/egg/lexer"
	"git.sr.ht/~mango/egg/log"
	"git.sr.ht/~mango/egg/source"
)

const (
	historyFile = ".egg_history"
	promptMain  = "$ "
	promptCont  = "> "
)

func runRepl(s *session) {
	log.CrashOnError = false

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		saveHistory(ln, histPath)
		ln.Close()
		os.Exit(1)
	}()

	for n := 1; ; n++ {
		src, err := readInput(ln, s.lexer)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stderr, "^D")
			saveHistory(ln, histPath)
			return
		case err != nil:
			log.Err("%s", err)
			saveHistory(ln, histPath)
			return
		}

		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		f := s.files.Add(fmt.Sprintf("<stdin:%d>", n), src)
		if err := s.run(f); err != nil {
			s.report(err)
		}
	}
}

func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
}

// readInput reads lines until they form an input that is not obviously cut
// short.
func readInput(ln *liner.State, l *lexer.Lexer) (string, error) {
	var (
		sb  strings.Builder
		sep string
	)
	for {
		prompt := promptMain
		if sb.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", err
		}

		sb.WriteString(sep)
		sb.WriteString(line)

		var more bool
		if sep, more = pending(l, sb.String()); !more {
			return sb.String(), nil
		}
	}
}

// pending reports whether src ends inside a quoted string or with an operator
// still waiting for its operand.  If it does, sep is the text that joins src
// to the next line: a newline inside quotes, a space after an operator.
func pending(l *lexer.Lexer, src string) (sep string, more bool) {
	f := source.NewFile(-1, "", src)
	toks, err := l.Tokenize(f)

	var te lexer.TokenizeError
	if errors.As(err, &te) {
		if strings.ContainsRune("'\"`", rune(f.Contents[te.Loc.Offset])) {
			return "\n", true
		}
		return "", false
	}
	if err != nil {
		return "", false
	}

	for i := len(toks) - 1; i >= 0; i-- {
		switch toks[i].Kind {
		case grammar.LineEnd:
			continue
		case grammar.Pipe, grammar.Redirect, grammar.RedirectAppend:
			return " ", true
		}
		break
	}
	return "", false
}

package main

import (
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/egg/log"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-agit] [file ...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s -h\n", os.Args[0])
}

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "aghit")
	if err != nil {
		log.Err("%s", err)
		usage()
		os.Exit(1)
	}

	var m mode
	interactive := false
	for _, o := range opts {
		switch o.Option {
		case 'a':
			m |= modeTree
		case 'g':
			m |= modeGrammar
		case 'h':
			usage()
			os.Exit(0)
		case 'i':
			interactive = true
		case 't':
			m |= modeTokens
		}
	}
	if m == 0 {
		m = modeTree
	}

	s := newSession(os.Stdout, m)
	if m&modeGrammar != 0 {
		if err := s.printGrammar(); err != nil {
			die(err)
		}
	}

	args := os.Args[optind:]
	for _, name := range args {
		runFile(s, name)
	}

	if len(args) == 0 && m&modeGrammar == 0 || interactive {
		runRepl(s)
	}
}

func runFile(s *session, name string) {
	f, err := s.files.Load(name)
	if err != nil {
		die(err)
	}
	if err := s.run(f); err != nil {
		s.report(err)
		os.Exit(1)
	}
}

func die(e error) {
	log.CrashOnError = true
	log.Err("%s", e)
}

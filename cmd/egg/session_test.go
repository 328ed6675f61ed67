package main

import (
	"errors"
	"strings"
	"testing"

	"git.sr.ht/~mango/egg/lexer"
	"git.sr.ht/~mango/egg/parser"
)

func TestRunTree(t *testing.T) {
	var sb strings.Builder
	s := newSession(&sb, modeTree)
	if err := s.run(s.files.Add("test", "ls | wc")); err != nil {
		t.Fatalf("Expected input to run but got %s", err)
	}

	want := `---
- Program:
  - ExecChain:
    - Exec:
      - Literal:
        - "ls"
    - PipeExec:
      - Pipe:
        - "|"
      - ExecChain:
        - Exec:
          - Literal:
            - "wc"
`
	if sb.String() != want {
		t.Fatalf("Expected\n%s\nbut got\n%s", want, sb.String())
	}
}

func TestRunTokens(t *testing.T) {
	var sb strings.Builder
	s := newSession(&sb, modeTokens)
	if err := s.run(s.files.Add("test", "a >> b\n")); err != nil {
		t.Fatal(err)
	}

	want := "test:1:1\tLiteral\t\"a\"\n" +
		"test:1:3\tRedirectAppend\t\">>\"\n" +
		"test:1:6\tLiteral\t\"b\"\n" +
		"test:1:7\tLineEnd\t\"\\n\"\n"
	if sb.String() != want {
		t.Fatalf("Expected %q but got %q", want, sb.String())
	}
}

func TestRunErrors(t *testing.T) {
	var sb strings.Builder
	s := newSession(&sb, modeTree)

	var te lexer.TokenizeError
	if err := s.run(s.files.Add("bad", "ls 'oops\n")); !errors.As(err, &te) {
		t.Fatalf("Expected TokenizeError but got %v", err)
	}

	var ue parser.UnexpectedTokenError
	if err := s.run(s.files.Add("bad", "ls |\n")); !errors.As(err, &ue) {
		t.Fatalf("Expected UnexpectedTokenError but got %v", err)
	}

	if sb.Len() != 0 {
		t.Fatalf("Expected no output on failure but got %q", sb.String())
	}
}

func TestPrintGrammar(t *testing.T) {
	var sb strings.Builder
	s := newSession(&sb, modeGrammar)
	if err := s.printGrammar(); err != nil {
		t.Fatal(err)
	}
	for _, sym := range []string{"Program", "ExecChain", "Exec", "PipeExec",
		"RedirectExec", "RedirectTarget"} {
		if !strings.Contains(sb.String(), "# "+sym+"\n") {
			t.Fatalf("Expected rule for %s in\n%s", sym, sb.String())
		}
	}
}

func TestPending(t *testing.T) {
	tests := []struct {
		src  string
		sep  string
		more bool
	}{
		{"ls", "", false},
		{"ls | wc", "", false},
		{"ls |", " ", true},
		{"ls >", " ", true},
		{"ls >> ;", " ", true},
		{"echo 'a", "\n", true},
		{"echo \"a", "\n", true},
		{"echo 'a'", "", false},
		{"", "", false},
	}

	l := lexer.Default()
	for _, tc := range tests {
		sep, more := pending(l, tc.src)
		if sep != tc.sep || more != tc.more {
			t.Fatalf("Expected (%q, %t) for %q but got (%q, %t)",
				tc.sep, tc.more, tc.src, sep, more)
		}
	}
}

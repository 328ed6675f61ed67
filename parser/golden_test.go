package parser

import (
	"os"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"git.sr.ht/~mango/egg/lexer"
	"git.sr.ht/~mango/egg/source"
)

type goldenCase struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Tokens []any  `yaml:"tokens"`
	Tree   any    `yaml:"tree"`
	Fails  bool   `yaml:"fails"`
}

func loadGolden(t *testing.T, path string) []goldenCase {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var cases []goldenCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("Failed to decode %s: %s", path, err)
	}
	if len(cases) == 0 {
		t.Fatalf("No cases in %s", path)
	}
	return cases
}

func TestGolden(t *testing.T) {
	g := Shell()

	for _, tc := range loadGolden(t, "testdata/shell.yaml") {
		t.Run(tc.Name, func(t *testing.T) {
			m := source.NewManager()
			xs, err := lexer.Default().Tokenize(m.Add(tc.Name, tc.Input))
			if err != nil {
				t.Fatalf("Expected %q to tokenize but got %s", tc.Input, err)
			}

			a, err := Parse(g, xs)
			if tc.Fails {
				if err == nil {
					t.Fatalf("Expected %q to be rejected", tc.Input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected %q to parse but got %s", tc.Input, err)
			}
			assertTree(t, a, len(xs))

			if tc.Tokens != nil {
				toks := make([]any, len(xs))
				for i, x := range xs {
					s, err := x.Text(m)
					if err != nil {
						t.Fatal(err)
					}
					toks[i] = map[string]any{x.Kind.String(): s}
				}
				if !reflect.DeepEqual(toks, tc.Tokens) {
					t.Fatalf("Expected tokens %v but got %v", tc.Tokens, toks)
				}
			}

			s, err := a.Format(xs, m)
			if err != nil {
				t.Fatal(err)
			}
			var got any
			if err := yaml.Unmarshal([]byte(s), &got); err != nil {
				t.Fatalf("Output is not valid YAML: %s\n%s", err, s)
			}
			if !reflect.DeepEqual(got, tc.Tree) {
				want, _ := yaml.Marshal(tc.Tree)
				t.Fatalf("Expected tree\n%s\nbut got\n%s", want, s)
			}
		})
	}
}

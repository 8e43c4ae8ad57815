package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// decls returns each top-level function and variable of src keyed by name,
// rendered without formatting.
func decls(t *testing.T, name string, src []byte) map[string]string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	m := make(map[string]string)
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			m[decl.Name.Name] = types.ExprString(decl.Type)
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				spec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, id := range spec.Names {
					var v string
					if i < len(spec.Values) {
						v = types.ExprString(spec.Values[i])
					}
					m[id.Name] = v
				}
			}
		}
	}
	return m
}

func TestGenerateMatchesCommitted(t *testing.T) {
	path := filepath.Join("..", "..", "stubs_gen.go")
	committed, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	got, err := generate(path, table)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(got), header) {
		t.Errorf("generated source lacks the generated-code header")
	}
	if diff := cmp.Diff(decls(t, "committed", committed), decls(t, "generated", got)); diff != "" {
		t.Errorf("stubs_gen.go is stale, run go generate:\n--- committed\n+++ generated\n%s", diff)
	}
}

func TestParams(t *testing.T) {
	for _, test := range []struct {
		entry entry
		want  string
	}{
		{
			entry: entry{Params: []param{{"a", "uint32"}}},
			want:  "a uint32",
		},
		{
			entry: entry{Params: []param{{"a", "*T"}, {"b", "*T"}, {"c", "uint32"}}},
			want:  "a, b *T, c uint32",
		},
		{
			entry: entry{Params: []param{{"a", "T"}, {"b", "U"}, {"c", "T"}}},
			want:  "a T, b U, c T",
		},
	} {
		if got := params(test.entry); got != test.want {
			t.Errorf("params(%v) = %q want %q", test.entry.Params, got, test.want)
		}
	}
}

func TestTableUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range table {
		if seen[e.Name] {
			t.Errorf("duplicate entry %s", e.Name)
		}
		seen[e.Name] = true
		if len(e.Params) == 0 {
			t.Errorf("%s has no parameters", e.Name)
		}
	}
}

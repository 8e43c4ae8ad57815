// Command stubgen writes the forwarding entry points of package atshim.
//
// Each entry point obtains its bound function through a proc, returns
// ExecutableLoadError when the library is unavailable and otherwise
// forwards its arguments unchanged.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/pflag"
	"golang.org/x/tools/imports"
)

const header = "// Code generated by stubgen. DO NOT EDIT.\n\n"

var stubs = template.Must(template.New("stubs").Funcs(template.FuncMap{
	"signature": signature,
	"params":    params,
	"args":      args,
}).Parse(`package atshim

var (
{{- range .}}
	proc{{.Name}} = newProc[func({{signature .}}) Status]("{{.Name}}")
{{- end}}
)

var procs = []binder{
{{- range .}}
	proc{{.Name}},
{{- end}}
}
{{range .}}
// {{.Name}} {{.Doc}}
func {{.Name}}({{params .}}) Status {
	fn, ok := proc{{.Name}}.get()
	if !ok {
		return ExecutableLoadError
	}
	return fn({{args .}})
}
{{end}}`))

func signature(e entry) string {
	types := make([]string, len(e.Params))
	for i, p := range e.Params {
		types[i] = p.Type
	}
	return strings.Join(types, ", ")
}

func params(e entry) string {
	var b strings.Builder
	for i, p := range e.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if i == len(e.Params)-1 || e.Params[i+1].Type != p.Type {
			b.WriteString(" " + p.Type)
		}
	}
	return b.String()
}

func args(e entry) string {
	names := make([]string, len(e.Params))
	for i, p := range e.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// generate renders entries and formats the result as a Go source file.
func generate(filename string, entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := stubs.Execute(&buf, entries); err != nil {
		return nil, fmt.Errorf("stubgen: execute template: %w", err)
	}
	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("stubgen: format %s: %w", filename, err)
	}
	return src, nil
}

func main() {
	out := pflag.StringP("output", "o", "stubs_gen.go", "file to write")
	pflag.Parse()

	src, err := generate(*out, table)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

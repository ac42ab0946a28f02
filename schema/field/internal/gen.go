// gen is a codegen cmd for generating the numeric field builders from template.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	buf, err := os.ReadFile("internal/numeric.tmpl")
	if err != nil {
		log.Fatal("reading template file:", err)
	}
	titleCaser := cases.Title(language.English)
	numTmpl := template.Must(template.New("numeric").
		Funcs(template.FuncMap{"title": titleCaser.String}).
		Parse(string(buf)))
	b := &bytes.Buffer{}
	if err = numTmpl.Execute(b, struct {
		Numerics []string
	}{
		Numerics: []string{
			"int",
			"int8",
			"int16",
			"int32",
			"int64",
			"uint",
			"uint8",
			"uint16",
			"uint32",
			"uint64",
			"float32",
			"float64",
		},
	}); err != nil {
		log.Fatal("executing template:", err)
	}
	out, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatal("formatting output:", err)
	}
	if err := os.WriteFile("numeric.go", out, 0o644); err != nil {
		log.Fatal("writing go file:", err)
	}
}

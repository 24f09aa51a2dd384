package main

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// Output files, relative to the module root.
const (
	sysFile   = "sys/constants_gen.go"
	enumFile  = "enums_gen.go"
	flagsFile = "flags_gen.go"
)

var funcs = template.FuncMap{
	"hex": func(v uint32) string { return fmt.Sprintf("%#x", v) },
}

var sysTmpl = template.Must(template.New("sys").Funcs(funcs).Parse(`// Code generated by fna3dgen from constants.yaml. DO NOT EDIT.

package sys
{{range .Sets}}
// {{.TypeName}} is {{.C}}.
type {{.TypeName}} = uint32

// {{.C}} values.
const (
{{- $s := .}}{{range .Values}}
	{{$s.GoName .}} {{$s.TypeName}} = {{$s.Literal .Value}} // {{.C}}
{{- end}}
)
{{end}}`))

var enumTmpl = template.Must(template.New("enums").Funcs(funcs).Parse(`// Code generated by fna3dgen from sys/constants.yaml. DO NOT EDIT.

package fna3d

import "github.com/gogpu/fna3d/sys"
{{range .}}{{$s := .}}{{$t := .TypeName}}{{$r := .Receiver}}
// {{$t}} mirrors {{.C}}.
// {{.Doc}}
type {{$t}} uint32

// {{$t}} variants.
const (
{{- range .Values}}
	{{$s.GoName .}} = {{$t}}(sys.{{$s.GoName .}})
{{- end}}
)

var {{.NamesVar}} = [...]string{
{{- range .Values}}
	{{$s.GoName .}}: "{{.Label}}",
{{- end}}
}

// {{$t}}FromRaw converts a raw {{.C}}. Values FNA3D does not
// declare fail with *UnknownVariantError.
func {{$t}}FromRaw(v uint32) ({{$t}}, error) {
	return enumFromRaw[{{$t}}]("{{$t}}", v, {{.NamesVar}}[:])
}

// Raw returns the {{.C}} value.
func ({{$r}} {{$t}}) Raw() uint32 { return uint32({{$r}}) }

// IsValid reports whether {{$r}} is a declared variant.
func ({{$r}} {{$t}}) IsValid() bool { return enumValid(uint32({{$r}}), {{.NamesVar}}[:]) }

// String returns the variant name.
func ({{$r}} {{$t}}) String() string { return enumString("{{$t}}", uint32({{$r}}), {{.NamesVar}}[:]) }

// {{$t}}Values returns every variant in declaration order.
func {{$t}}Values() []{{$t}} {
	return []{{$t}}{
{{- range .Values}}
		{{$s.GoName .}},
{{- end}}
	}
}
{{end}}`))

var flagsTmpl = template.Must(template.New("flags").Funcs(funcs).Parse(`// Code generated by fna3dgen from sys/constants.yaml. DO NOT EDIT.

package fna3d

import "github.com/gogpu/fna3d/sys"
{{range .}}{{$s := .}}{{$t := .TypeName}}{{$r := .Receiver}}{{$k := .KnownConst}}
// {{$t}} mirrors {{.C}}.
// {{.Doc}}
//
// {{$t}}FromRaw preserves bits this package does not declare.
type {{$t}} uint32

// {{$t}} flags.
const (
{{- range .Values}}
	{{$s.GoName .}} = {{$t}}(sys.{{$s.GoName .}})
{{- end}}
)

// {{$k}} is the union of every declared single-bit flag.
const {{$k}} {{$t}} = {{hex .KnownMask}}

var {{.NamesVar}} = []flagName{
{{- range .Values}}
	{uint32({{$s.GoName .}}), "{{.Label}}"},
{{- end}}
}

// {{$t}}FromRaw converts a raw {{.C}}. Every bit is kept.
func {{$t}}FromRaw(v uint32) {{$t}} { return {{$t}}(v) }

// Raw returns the {{.C}} value.
func ({{$r}} {{$t}}) Raw() uint32 { return uint32({{$r}}) }

// Contains reports whether every bit of f is set in {{$r}}.
func ({{$r}} {{$t}}) Contains(f {{$t}}) bool { return {{$r}}&f == f }

// Union returns {{$r}} | f.
func ({{$r}} {{$t}}) Union(f {{$t}}) {{$t}} { return {{$r}} | f }

// Intersect returns {{$r}} & f.
func ({{$r}} {{$t}}) Intersect(f {{$t}}) {{$t}} { return {{$r}} & f }

// Difference returns the bits of {{$r}} that are not in f.
func ({{$r}} {{$t}}) Difference(f {{$t}}) {{$t}} { return {{$r}} &^ f }

// Toggle returns {{$r}} ^ f.
func ({{$r}} {{$t}}) Toggle(f {{$t}}) {{$t}} { return {{$r}} ^ f }

// IsEmpty reports whether no bit is set.
func ({{$r}} {{$t}}) IsEmpty() bool { return {{$r}} == 0 }

// Known returns the declared bits of {{$r}}.
func ({{$r}} {{$t}}) Known() {{$t}} { return {{$r}} & {{$k}} }

// Unknown returns the bits of {{$r}} this package does not declare.
func ({{$r}} {{$t}}) Unknown() {{$t}} { return {{$r}} &^ {{$k}} }

// String returns the flag names joined by "|".
func ({{$r}} {{$t}}) String() string { return flagString(uint32({{$r}}), {{.NamesVar}}) }

// {{$t}}Flags returns every single-bit flag in declaration order.
func {{$t}}Flags() []{{$t}} {
	return []{{$t}}{
{{- range .SingleBits}}
		{{$s.GoName .}},
{{- end}}
	}
}
{{end}}`))

// generate renders every output file of t, keyed by its path relative to
// the module root. Each file is gofmt'ed.
func generate(t *table) (map[string][]byte, error) {
	jobs := []struct {
		path string
		tmpl *template.Template
		data any
	}{
		{sysFile, sysTmpl, t},
		{enumFile, enumTmpl, t.enums()},
		{flagsFile, flagsTmpl, t.flags()},
	}

	out := make(map[string][]byte, len(jobs))
	for _, j := range jobs {
		var buf bytes.Buffer
		if err := j.tmpl.Execute(&buf, j.data); err != nil {
			return nil, fmt.Errorf("render %s: %w", j.path, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", j.path, err)
		}
		out[j.path] = src
	}
	return out, nil
}

/*
 * Copyright 2014 Canonical Ltd.
 *
 * Authors:
 * Sergio Schvezov: sergio.schvezov@cannical.com
 *
 * This file is part of mmwrapper.
 *
 * mmwrapper is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; version 3.
 *
 * mmwrapper is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package enumgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"regexp"
	"strconv"
	"strings"
	"text/template"
	"unicode"
)

var literalSuffixRe = regexp.MustCompile(`\b(0[xX][0-9A-Fa-f]+|[0-9]+)[uUlL]+\b`)

type memberView struct {
	GoName string
	Value  string
	Nick   string
	Doc    string
}

type enumView struct {
	CName    string
	GoName   string
	BaseType string
	VarName  string
	Flags    bool
	DocLines []string
	Members  []memberView
}

type fileView struct {
	Package string
	Source  string
	Enums   []enumView
}

var fileTemplate = template.Must(template.New("enums").Parse(`// Code generated by mm-enumgen; DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}
{{range .Enums}}
// {{.GoName}} mirrors {{.CName}}.
{{- range .DocLines}}
//{{if .}} {{.}}{{end}}
{{- end}}
type {{.GoName}} {{.BaseType}}
{{$type := .GoName}}
const (
{{- range .Members}}
{{- if .Doc}}
	// {{.Doc}}
{{- end}}
	{{.GoName}} {{$type}} = {{.Value}}
{{- end}}
)

var {{.VarName}} = []enumName{
{{- range .Members}}
	{int64({{.GoName}}), {{printf "%q" .Nick}}},
{{- end}}
}

func (v {{.GoName}}) String() string {
	return {{if .Flags}}flagString{{else}}valueString{{end}}(int64(v), {{.VarName}}, "{{.GoName}}")
}

// MarshalYAML encodes {{.GoName}} by name.
func (v {{.GoName}}) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// Parse{{.GoName}} returns the {{.GoName}} named by s{{if .Flags}}, a "|" separated list of nicknames{{end}}.
func Parse{{.GoName}}(s string) ({{.GoName}}, error) {
	v, err := parseEnum(s, {{.VarName}}, "{{.GoName}}", {{.Flags}})
	return {{.GoName}}(v), err
}
{{end -}}
`))

// Options controls the generated file.
type Options struct {
	Package string
	// Source is recorded in the file header when set.
	Source string
}

// Render writes the Go declarations for the enums in h to w. The output is
// formatted with go/format.
func Render(w io.Writer, h *Header, opts Options) error {
	if opts.Package == "" {
		opts.Package = "mm"
	}
	view := fileView{Package: opts.Package, Source: opts.Source}
	for _, e := range h.Enums {
		view.Enums = append(view.Enums, newEnumView(e))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated code does not parse: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func newEnumView(e *Enum) enumView {
	goName := GoTypeName(e.Name)
	v := enumView{
		CName:    e.Name,
		GoName:   goName,
		BaseType: "uint32",
		VarName:  lowerFirst(goName) + "Names",
		Flags:    e.Flags,
	}
	if e.Signed() {
		v.BaseType = "int32"
	}
	if e.Doc != "" {
		v.DocLines = append(v.DocLines, "")
		v.DocLines = append(v.DocLines, strings.Split(rewriteRefs(e.Doc), "\n")...)
	}
	if e.Since != "" {
		v.DocLines = append(v.DocLines, "", "Since: "+e.Since)
	}

	nicks := Nicknames(e)
	for i, m := range e.Members {
		value := strconv.FormatInt(m.Value, 10)
		if m.Expr != "" {
			value = goExpr(m.Expr)
		}
		v.Members = append(v.Members, memberView{
			GoName: GoMemberName(m.Name),
			Value:  value,
			Nick:   nicks[i],
			Doc:    rewriteRefs(oneLine(m.Doc)),
		})
	}
	return v
}

// goExpr rewrites the enumerator references of a C initializer to Go names.
func goExpr(expr string) string {
	fields := strings.FieldsFunc(expr, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	for _, f := range fields {
		if strings.HasPrefix(f, "MM_") {
			expr = strings.ReplaceAll(expr, f, GoMemberName(f))
		}
	}
	return literalSuffixRe.ReplaceAllString(expr, "$1")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

package render

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"unwrapgen/internal/decl"
	"unwrapgen/internal/typexpr"
)

// GoFileData holds the data for the Go output template.
type GoFileData struct {
	PackageName string
	Source      string
	Decls       []string
}

var goFileTemplate = template.Must(template.New("gofile").Parse(`// Code generated by unwrapgen. DO NOT EDIT.
{{if .Source}}// Source: {{.Source}}
{{end}}
package {{.PackageName}}
{{range .Decls}}
{{.}}
{{end}}
`))

// GoFile renders the declarations as a formatted Go file. When formatting
// fails the unformatted source is returned alongside the error.
func GoFile(pkg, source string, decls []*decl.Container) ([]byte, error) {
	data := GoFileData{PackageName: pkg, Source: source}
	for _, c := range decls {
		data.Decls = append(data.Decls, GoDecl(c))
	}

	var buf bytes.Buffer
	if err := goFileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

// GoDecl renders one declaration as Go. Structs become struct types; enums
// become a sealed interface implemented by one struct per variant.
func GoDecl(c *decl.Container) string {
	var sb strings.Builder

	writeComments(&sb, "", c.Annotations)

	typeParams := goTypeParams(c.Generics)

	if c.Kind != decl.KindEnum {
		sb.WriteString("type " + c.Name + typeParams + " ")
		writeGoStruct(&sb, c.Fields)
		sb.WriteByte('\n')

		return sb.String()
	}

	marker := "is" + c.Name
	fmt.Fprintf(&sb, "type %s interface {\n\t%s()\n}\n", c.Name, marker)

	for _, v := range c.Variants {
		name := c.Name + v.Name

		sb.WriteByte('\n')
		writeComments(&sb, "", v.Annotations)
		sb.WriteString("type " + name + " ")
		writeGoStruct(&sb, v.Fields)
		fmt.Fprintf(&sb, "\n\nfunc (%s) %s() {}\n", name, marker)
	}

	return sb.String()
}

// goTypeParams brackets a generic parameter list, constraining bare
// parameters with any.
func goTypeParams(generics string) string {
	if strings.TrimSpace(generics) == "" {
		return ""
	}

	params := strings.Split(generics, ",")
	for i, p := range params {
		p = strings.TrimSpace(p)
		if !strings.ContainsAny(p, " \t") {
			p += " any"
		}

		params[i] = p
	}

	return "[" + strings.Join(params, ", ") + "]"
}

func writeGoStruct(sb *strings.Builder, fields []*decl.Field) {
	if len(fields) == 0 {
		sb.WriteString("struct{}")
		return
	}

	sb.WriteString("struct {\n")

	for i, f := range fields {
		writeComments(sb, "\t", f.Annotations)
		sb.WriteString("\t" + goField(f, i))

		if f.Tag != "" {
			sb.WriteString(" `" + f.Tag + "`")
		}

		sb.WriteByte('\n')
	}

	sb.WriteString("}")
}

// goField renders a field. Positional fields holding a plain named type
// are embedded; other positional fields are named F<index>.
func goField(f *decl.Field, index int) string {
	typ := GoType(f.Type)

	if !f.IsPositional() {
		return goIdent(f.Name) + " " + typ
	}

	if f.Type.Kind == typexpr.KindNamed && len(f.Type.Args) == 0 {
		return typ
	}

	return "F" + strconv.Itoa(index) + " " + typ
}

// goIdent turns snake_case field names into exported Go names.
func goIdent(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}

	var sb strings.Builder

	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}

		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}

	return sb.String()
}

func writeComments(sb *strings.Builder, prefix string, annotations []string) {
	for _, a := range annotations {
		if !strings.HasPrefix(a, "//") {
			a = "// " + a
		}

		sb.WriteString(prefix + a + "\n")
	}
}

// GoType renders a type expression with Go syntax: qualified names keep
// their last two segments, generic arguments use brackets and the unit type
// is struct{}.
func GoType(e *typexpr.Expr) string {
	switch e.Kind {
	case typexpr.KindNamed:
		path := e.Path
		if len(path) > 2 {
			path = path[len(path)-2:]
		}

		s := strings.Join(path, ".")
		if len(e.Args) == 0 {
			return s
		}

		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = GoType(a)
		}

		return s + "[" + strings.Join(args, ", ") + "]"
	case typexpr.KindTuple:
		if e.IsUnit() {
			return "struct{}"
		}

		fields := make([]string, len(e.Elems))
		for i, el := range e.Elems {
			fields[i] = fmt.Sprintf("F%d %s", i, GoType(el))
		}

		return "struct{ " + strings.Join(fields, "; ") + " }"
	default:
		return e.Raw
	}
}

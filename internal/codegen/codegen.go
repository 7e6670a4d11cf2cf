// Package codegen renders a compiled unit table as Go source: one dimension
// marker type, one unit.Unit and one unit quantity per declared unit, plus
// statically typed product and quotient helpers between declared units.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/uom/internal/ir"
	"github.com/roach88/uom/unit"
)

// Default import paths of the runtime packages referenced by generated code.
const (
	DefaultQuantityImport = "github.com/roach88/uom/quantity"
	DefaultUnitImport     = "github.com/roach88/uom/unit"
)

// Options controls code generation.
type Options struct {
	Package        string // overrides Table.Package when set
	QuantityImport string
	UnitImport     string
	Helpers        bool // emit Mul/Div/Recip helpers
}

// DefaultOptions returns the options used by unitgen generate.
func DefaultOptions() Options {
	return Options{
		QuantityImport: DefaultQuantityImport,
		UnitImport:     DefaultUnitImport,
		Helpers:        true,
	}
}

// GenerateError reports a table that cannot be rendered as valid Go.
type GenerateError struct {
	Unit    string
	Message string
}

func (e *GenerateError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("generate %s: %s", e.Unit, e.Message)
	}
	return "generate: " + e.Message
}

type unitData struct {
	Name      string
	Words     string
	Ident     string
	Dimension string
	Symbol    string
	Doc       string
	Rendered  string
	GoUnit    string
}

type helperData struct {
	Name   string
	Doc    string
	Params string
	Result string
	Body   string
}

type fileData struct {
	Source         string
	Package        string
	QuantityImport string
	UnitImport     string
	Units          []unitData
	Helpers        []helperData
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"{{.QuantityImport}}"
	"{{.UnitImport}}"
)
{{range .Units}}
// {{.Dimension}} is the dimension of {{.Words}} ({{.Symbol}}).
{{- if .Doc}}
// {{.Doc}}
{{- end}}
type {{.Dimension}} struct{}

// Unit returns {{.Rendered}}.
func ({{.Dimension}}) Unit() unit.Unit { return {{.Ident}}Unit }

// {{.Ident}}Unit is {{.Rendered}}.
var {{.Ident}}Unit = {{.GoUnit}}

// {{.Ident}} is one {{.Words}}.
var {{.Ident}} = quantity.New[{{.Dimension}}](1)
{{end}}
{{- range .Helpers}}
// {{.Name}} {{.Doc}}
func {{.Name}}({{.Params}}) quantity.Quantity[{{.Result}}] {
	return {{.Body}}
}
{{end}}`))

// Generate renders t as a formatted Go source file.
func Generate(t *ir.Table, opts Options) ([]byte, error) {
	data, err := buildFileData(t, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("generate: executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generate: formatting output: %w", err)
	}
	return src, nil
}

func buildFileData(t *ir.Table, opts Options) (*fileData, error) {
	pkg := t.Package
	if opts.Package != "" {
		pkg = opts.Package
	}
	if pkg == "" {
		return nil, &GenerateError{Message: "package name is required"}
	}
	if !token.IsIdentifier(pkg) {
		return nil, &GenerateError{Message: fmt.Sprintf("%q is not a valid Go package name", pkg)}
	}
	if len(t.Units) == 0 {
		return nil, &GenerateError{Message: "table has no units"}
	}

	data := &fileData{
		Source:         sourceName(t.Source),
		Package:        pkg,
		QuantityImport: opts.QuantityImport,
		UnitImport:     opts.UnitImport,
	}
	if data.QuantityImport == "" {
		data.QuantityImport = DefaultQuantityImport
	}
	if data.UnitImport == "" {
		data.UnitImport = DefaultUnitImport
	}

	idents := newIdentSet()
	for _, d := range t.Units {
		ident := Ident(d.Name)
		u := unitData{
			Name:      d.Name,
			Words:     strings.ReplaceAll(d.Name, "_", " "),
			Ident:     ident,
			Dimension: d.Dimension,
			Symbol:    d.Symbol,
			Doc:       d.Doc,
			Rendered:  d.Unit.String(),
			GoUnit:    goUnit(d),
		}
		for _, id := range []string{u.Dimension, u.Ident, u.Ident + "Unit"} {
			if err := idents.add(id, d.Name); err != nil {
				return nil, err
			}
		}
		data.Units = append(data.Units, u)
	}

	if opts.Helpers {
		helpers := buildHelpers(t)
		for _, h := range helpers {
			if err := idents.add(h.Name, ""); err != nil {
				return nil, err
			}
		}
		data.Helpers = helpers
	}

	return data, nil
}

// HelperNames returns the names of the Mul, Div and Recip helpers that
// Generate emits for t, in output order.
func HelperNames(t *ir.Table) []string {
	helpers := buildHelpers(t)
	names := make([]string, len(helpers))
	for i, h := range helpers {
		names[i] = h.Name
	}
	return names
}

// buildHelpers enumerates products, quotients and reciprocals of declared
// units that land on another declared unit. Products are emitted once per
// unordered pair, in declaration order.
func buildHelpers(t *ir.Table) []helperData {
	var muls, divs, recips []helperData

	for i, a := range t.Units {
		for j, b := range t.Units {
			if j >= i {
				if c, ok := findResult(t, func() unit.Unit { return a.Unit.Mul(b.Unit) }); ok {
					muls = append(muls, helperData{
						Name:   "Mul" + a.Dimension + b.Dimension,
						Doc:    fmt.Sprintf("multiplies %s by %s.", article(a.Dimension), article(b.Dimension)),
						Params: fmt.Sprintf("a quantity.Quantity[%s], b quantity.Quantity[%s]", a.Dimension, b.Dimension),
						Result: c.Dimension,
						Body:   fmt.Sprintf("quantity.As[%s](quantity.Mul(a, b))", c.Dimension),
					})
				}
			}
			if i != j {
				if c, ok := findResult(t, func() unit.Unit { return a.Unit.Div(b.Unit) }); ok {
					divs = append(divs, helperData{
						Name:   "Div" + a.Dimension + b.Dimension,
						Doc:    fmt.Sprintf("divides %s by %s.", article(a.Dimension), article(b.Dimension)),
						Params: fmt.Sprintf("a quantity.Quantity[%s], b quantity.Quantity[%s]", a.Dimension, b.Dimension),
						Result: c.Dimension,
						Body:   fmt.Sprintf("quantity.As[%s](quantity.Div(a, b))", c.Dimension),
					})
				}
			}
		}
		if c, ok := findResult(t, a.Unit.Inv); ok {
			recips = append(recips, helperData{
				Name:   "Recip" + a.Dimension,
				Doc:    fmt.Sprintf("returns k divided by %s.", article(a.Dimension)),
				Params: fmt.Sprintf("k float64, q quantity.Quantity[%s]", a.Dimension),
				Result: c.Dimension,
				Body:   fmt.Sprintf("quantity.As[%s](quantity.Recip(k, q))", c.Dimension),
			})
		}
	}

	out := append(muls, divs...)
	return append(out, recips...)
}

// findResult returns the declared unit equal to the result of op. A result
// that overflows an exponent cannot be declared, so it matches nothing.
func findResult(t *ir.Table, op func() unit.Unit) (ir.UnitDef, bool) {
	u, err := unit.Try(op)
	if err != nil {
		return ir.UnitDef{}, false
	}
	return t.FindByUnit(u)
}

// article prefixes word with "a" or "an".
func article(word string) string {
	if word != "" && strings.ContainsRune("AEIOU", rune(word[0])) {
		return "an " + word
	}
	return "a " + word
}

// Ident converts a lower_snake_case unit name to an exported Go identifier:
// "metre_per_second" becomes "MetrePerSecond".
func Ident(name string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' }) {
		b.WriteString(title.String(part))
	}
	return b.String()
}

// goUnit renders the unit.Unit expression for d. Base units use unit.Of.
func goUnit(d ir.UnitDef) string {
	for _, b := range unit.Bases {
		if d.Unit == unit.Of(b) {
			return "unit.Of(unit." + cases.Title(language.Und).String(b.Quantity()) + ")"
		}
	}
	return d.Unit.GoString()
}

func sourceName(source string) string {
	if source == "" {
		return "unit table"
	}
	return filepath.Base(source)
}

type identSet map[string]string

func newIdentSet() identSet { return make(identSet) }

func (s identSet) add(id, owner string) error {
	if !token.IsIdentifier(id) || !token.IsExported(id) {
		return &GenerateError{Unit: owner, Message: fmt.Sprintf("%q is not an exported Go identifier", id)}
	}
	if prev, ok := s[id]; ok {
		msg := fmt.Sprintf("identifier %s is declared twice", id)
		if prev != "" {
			msg += " (first by " + prev + ")"
		}
		return &GenerateError{Unit: owner, Message: msg}
	}
	s[id] = owner
	return nil
}

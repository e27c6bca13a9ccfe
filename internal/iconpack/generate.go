package iconpack

import (
	"bytes"
	"go/format"
	"strconv"
	"text/template"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/pkg/icons"
)

// Icon is one generated constant.
type Icon struct {
	// File is the SVG file stem.
	File string

	// Const is the Go constant name.
	Const string

	// SymbolID is the sprite symbol id.
	SymbolID string

	// Path is the inner SVG markup.
	Path string
}

// GeneratedPack is the generator input for one pack.
type GeneratedPack struct {
	Name    string
	Type    string
	Stroked bool
	Icons   []Icon
}

// Var returns the prefix of the pack's unexported tables.
func (p GeneratedPack) Var() string {
	return lowerFirst(p.Type)
}

// SymbolID returns the sprite symbol id of an icon.
func SymbolID(pack, icon string) string {
	return icons.SymbolPrefix + Kebab(pack) + "-" + Kebab(icon)
}

var funcs = template.FuncMap{
	"quote":  strconv.Quote,
	"symbol": icons.Symbol,
}

var fileTemplate = template.Must(template.New("icons").Funcs(funcs).Parse(`// Code generated by viewy icons gen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .Packs}}
	"strconv"
{{end}}
	"github.com/viewy-dev/viewy/pkg/icons"
{{- if .Packs}}
	"github.com/viewy-dev/viewy/pkg/node"
{{- end}}
)
{{range .Packs}}{{$p := .}}
// {{.Type}} is the {{.Name}} icon pack.
type {{.Type}} int

const (
{{- range $i, $icon := .Icons}}
	// {{.Const}} is {{.File}}.svg.
	{{.Const}}{{if eq $i 0}} {{$p.Type}} = iota{{end}}
{{- end}}
)

var {{.Var}}Paths = [...]string{
{{- range .Icons}}
	{{.Const}}: {{quote .Path}},
{{- end}}
}

var {{.Var}}SymbolIDs = [...]string{
{{- range .Icons}}
	{{.Const}}: {{quote .SymbolID}},
{{- end}}
}

var {{.Var}}Names = [...]string{
{{- range .Icons}}
	{{.Const}}: {{quote .Const}},
{{- end}}
}

func (i {{.Type}}) valid() bool {
	return i >= 0 && int(i) < len({{.Var}}Names)
}

// Path returns the inner SVG markup of the icon.
func (i {{.Type}}) Path() string {
	if !i.valid() {
		return ""
	}
	return {{.Var}}Paths[i]
}

// SymbolID returns the sprite symbol id of the icon.
func (i {{.Type}}) SymbolID() string {
	if !i.valid() {
		return ""
	}
	return {{.Var}}SymbolIDs[i]
}

// Configure sets the {{if .Stroked}}stroked{{else}}filled{{end}} defaults of the pack.
func (i {{.Type}}) Configure(n *node.Node) {
	icons.{{if .Stroked}}ConfigureStroked{{else}}ConfigureFilled{{end}}(n)
}

func (i {{.Type}}) String() string {
	if !i.valid() {
		return "{{.Type}}(" + strconv.Itoa(int(i)) + ")"
	}
	return {{.Var}}Names[i]
}

// All{{.Type}} returns every icon of the pack.
func All{{.Type}}() []{{.Type}} {
	return []{{.Type}}{
{{- range .Icons}}
		{{.Const}},
{{- end}}
	}
}
{{end}}
var symbols = map[string]string{
{{- range .Packs}}
{{- range .Icons}}
	{{quote .SymbolID}}: {{quote (symbol .SymbolID .Path)}},
{{- end}}
{{- end}}
}

// SymbolByID returns the sprite symbol of a generated icon.
func SymbolByID(id string) (string, bool) {
	s, ok := symbols[id]
	return s, ok
}

func init() {
	icons.RegisterLookup(SymbolByID)
}
`))

// Generate renders the Go file for packs and formats it with gofmt.
func Generate(pkg string, packs []GeneratedPack) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Package string
		Packs   []GeneratedPack
	}{pkg, packs}

	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.New("E207").Wrap(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.New("E207").
			WithDetail("the generated source does not parse").
			Wrap(err)
	}
	return src, nil
}

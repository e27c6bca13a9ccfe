package assets

import (
	"sync"
	"time"

	"github.com/bep/godartsass/v2"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

// Transpiler compiles SCSS source to CSS.
type Transpiler interface {
	Transpile(scss string) (string, error)
}

// TranspilerFunc adapts a function to Transpiler.
type TranspilerFunc func(scss string) (string, error)

// Transpile implements Transpiler.
func (f TranspilerFunc) Transpile(scss string) (string, error) {
	return f(scss)
}

// DartSass compiles SCSS with the embedded Dart Sass protocol. The sass
// binary is started on first use and reused until Close.
type DartSass struct {
	opts godartsass.Options

	once sync.Once
	t    *godartsass.Transpiler
	err  error
}

// NewDartSass returns a transpiler running binary. An empty binary means
// "sass" from PATH.
func NewDartSass(binary string) *DartSass {
	return &DartSass{opts: godartsass.Options{
		DartSassEmbeddedFilename: binary,
		Timeout:                  30 * time.Second,
	}}
}

// Transpile implements Transpiler with compressed output.
func (d *DartSass) Transpile(scss string) (string, error) {
	d.once.Do(func() {
		d.t, d.err = godartsass.Start(d.opts)
	})
	if d.err != nil {
		return "", d.err
	}

	res, err := d.t.Execute(godartsass.Args{
		Source:       scss,
		OutputStyle:  godartsass.OutputStyleCompressed,
		SourceSyntax: godartsass.SourceSyntaxSCSS,
	})
	if err != nil {
		return "", err
	}
	return res.CSS, nil
}

// Close stops the sass process.
func (d *DartSass) Close() error {
	if d.t == nil {
		return nil
	}
	return d.t.Close()
}

var (
	defaultSassOnce sync.Once
	defaultSass     *DartSass
)

// DefaultTranspiler returns the shared Dart Sass transpiler.
func DefaultTranspiler() Transpiler {
	defaultSassOnce.Do(func() {
		defaultSass = NewDartSass("")
	})
	return defaultSass
}

// =============================================================================
// Minification
// =============================================================================

// Minifier shrinks a source of the given media type.
type Minifier interface {
	Minify(mediatype, src string) (string, error)
}

type minifier struct {
	m *minify.M
}

// NewMinifier returns a minifier for CSSMediaType and JSMediaType.
func NewMinifier() Minifier {
	m := minify.New()
	m.AddFunc(CSSMediaType, css.Minify)
	m.AddFunc(JSMediaType, js.Minify)
	return &minifier{m: m}
}

func (m *minifier) Minify(mediatype, src string) (string, error) {
	return m.m.String(mediatype, src)
}

package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/widget"
)

const (
	// StylesheetName is the logical name of the compiled stylesheet.
	StylesheetName = "app.css"

	// ScriptName is the logical name of the compiled script.
	ScriptName = "app.js"

	// CSSMediaType is the content type of the stylesheet.
	CSSMediaType = "text/css"

	// JSMediaType is the content type of the script.
	JSMediaType = "application/javascript"
)

// Assets is the compiled stylesheet and script. It is a plain value and
// safe to copy and share.
type Assets struct {
	CSS     string
	JS      string
	CSSETag string
	JSETag  string
}

// File is one servable asset.
type File struct {
	Name        string
	Content     string
	ContentType string
	ETag        string
}

// Lookup returns the asset served under name, "app.css" or "app.js".
func (a Assets) Lookup(name string) (File, bool) {
	switch name {
	case StylesheetName:
		return File{Name: name, Content: a.CSS, ContentType: CSSMediaType + "; charset=utf-8", ETag: a.CSSETag}, true
	case ScriptName:
		return File{Name: name, Content: a.JS, ContentType: JSMediaType + "; charset=utf-8", ETag: a.JSETag}, true
	}
	return File{}, false
}

// ETag returns a strong entity tag for content.
func ETag(content string) string {
	sum := sha256.Sum256([]byte(content))
	return strconv.Quote(hex.EncodeToString(sum[:]))
}

// Fingerprint returns name with the first eight hex digits of the content
// hash inserted before the extension: app.css becomes app.1f2e3d4c.css.
func Fingerprint(name, content string) string {
	sum := sha256.Sum256([]byte(content))
	hash := hex.EncodeToString(sum[:4])
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i] + "." + hash + name[i:]
	}
	return name + "." + hash
}

// =============================================================================
// Compilation
// =============================================================================

// Option configures Compile.
type Option func(*compiler)

type compiler struct {
	transpiler    Transpiler
	minifier      Minifier
	registrations []widget.Registration
	useRegistry   bool
	log           *logger.Logger
}

// WithTranspiler replaces the default Dart Sass transpiler.
func WithTranspiler(t Transpiler) Option {
	return func(c *compiler) {
		c.transpiler = t
	}
}

// WithMinifier replaces the script minifier. Nil disables minification.
func WithMinifier(m Minifier) Option {
	return func(c *compiler) {
		c.minifier = m
	}
}

// WithRegistrations compiles regs instead of the process-wide widget
// registry.
func WithRegistrations(regs []widget.Registration) Option {
	return func(c *compiler) {
		c.registrations = regs
		c.useRegistry = false
	}
}

// WithLogger sets the logger receiving compilation failures.
func WithLogger(l *logger.Logger) Option {
	return func(c *compiler) {
		c.log = l
	}
}

// Compile builds the assets for cfg. A nil cfg uses the defaults.
func Compile(cfg *config.Config, opts ...Option) Assets {
	c := &compiler{
		transpiler:  DefaultTranspiler(),
		minifier:    NewMinifier(),
		useRegistry: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Default()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	regs := c.registrations
	if c.useRegistry {
		regs = widget.Registrations()
	}

	css := c.stylesheet(cfg, regs)
	js := c.script(regs)
	return Assets{
		CSS:     css,
		JS:      js,
		CSSETag: ETag(css),
		JSETag:  ETag(js),
	}
}

func (c *compiler) stylesheet(cfg *config.Config, regs []widget.Registration) string {
	src := StylesheetSource(cfg, regs)
	if c.transpiler == nil {
		return src
	}
	css, err := c.transpiler.Transpile(src)
	if err != nil {
		c.log.Warn(errors.New("E301").Wrap(err), "serving the uncompiled stylesheet")
		return src
	}
	return css
}

func (c *compiler) script(regs []widget.Registration) string {
	src := ScriptSource(regs)
	if c.minifier == nil {
		return src
	}
	js, err := c.minifier.Minify(JSMediaType, src)
	if err != nil {
		c.log.Warn(errors.New("E302").WithField("asset", ScriptName).Wrap(err), "serving the unminified script")
		return src
	}
	return js
}

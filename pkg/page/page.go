package page

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/icons"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/theme"
)

// ContentPlaceholder is the comment standing in for the content in
// LayoutOnly mode.
const ContentPlaceholder = "VIEWY_CONTENT"

const tracerName = "github.com/viewy-dev/viewy/pkg/page"

// Layout wraps the content with a site-wide shell.
type Layout func(content *node.Node) *node.Node

// Identity is the default layout.
func Identity(content *node.Node) *node.Node {
	return content
}

// Page is a document under construction. Its With methods modify the page
// and return it.
type Page struct {
	title   string
	content node.Noder
	layout  Layout
	theme   theme.Theme
	config  *config.Config
	baseURL string
	assets  assets.Resolver
	log     *logger.Logger
	tracer  trace.Tracer
}

// WithTitle starts a page. The base URL defaults to the BASE_URL
// environment variable.
func WithTitle(title string) *Page {
	return &Page{
		title:   title,
		layout:  Identity,
		theme:   theme.Auto,
		baseURL: strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		assets:  assets.NewPassthroughResolver("/"),
	}
}

// WithConfig sets the configuration providing the favicons.
func (p *Page) WithConfig(cfg *config.Config) *Page {
	p.config = cfg
	return p
}

// WithTheme sets the body theme.
func (p *Page) WithTheme(t theme.Theme) *Page {
	p.theme = t
	return p
}

// WithContent sets the content.
func (p *Page) WithContent(content node.Noder) *Page {
	p.content = content
	return p
}

// WithLayout sets the layout. Nil restores the identity layout.
func (p *Page) WithLayout(l Layout) *Page {
	if l == nil {
		l = Identity
	}
	p.layout = l
	return p
}

// WithBaseURL sets the prefix of asset and favicon URLs.
func (p *Page) WithBaseURL(base string) *Page {
	p.baseURL = strings.TrimRight(base, "/")
	return p
}

// WithAssets sets the resolver of app.css and app.js, for example one
// built from a fingerprint manifest.
func (p *Page) WithAssets(r assets.Resolver) *Page {
	if r != nil {
		p.assets = r
	}
	return p
}

// WithLogger sets the logger receiving recovered layout failures.
func (p *Page) WithLogger(l *logger.Logger) *Page {
	p.log = l
	return p
}

// WithTracer sets the tracer of CompileContext.
func (p *Page) WithTracer(t trace.Tracer) *Page {
	p.tracer = t
	return p
}

// Title returns the page title.
func (p *Page) Title() string {
	return p.title
}

// Compile renders the page.
func (p *Page) Compile(mode RenderMode) string {
	return p.CompileContext(context.Background(), mode)
}

// CompileContext renders the page inside a span. It never panics: a
// failing layout is logged and the content is rendered without it.
func (p *Page) CompileContext(ctx context.Context, mode RenderMode) string {
	tracer := p.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	_, span := tracer.Start(ctx, "page.Compile", trace.WithAttributes(
		attribute.String("viewy.render_mode", mode.String()),
		attribute.String("viewy.page_title", p.title),
		attribute.String("viewy.theme", p.theme.String()),
	))
	defer span.End()

	var out string
	switch mode {
	case ContentOnly:
		out = p.body(p.contentNode(), span)
	case LayoutOnly:
		root := p.applyLayout(node.NewComment(ContentPlaceholder), span)
		out = p.document(p.body(root, span))
	default:
		root := p.applyLayout(p.contentNode(), span)
		out = p.document(p.body(root, span))
	}

	span.SetAttributes(attribute.Int("viewy.html_bytes", len(out)))
	return out
}

func (p *Page) logger() *logger.Logger {
	if p.log != nil {
		return p.log
	}
	return logger.Default()
}

func (p *Page) contentNode() *node.Node {
	if p.content == nil {
		return node.Default()
	}
	if n := p.content.ToNode(); n != nil {
		return n
	}
	return node.Default()
}

// applyLayout calls the layout once, falling back to content when it
// panics or returns nil.
func (p *Page) applyLayout(content *node.Node, span trace.Span) (root *node.Node) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("layout panic: %v", r)
			p.logger().WithField("title", p.title).Error(err, "rendering page without its layout")
			span.RecordError(err)
			span.SetStatus(codes.Error, "layout panic")
			root = content
		}
	}()

	root = p.layout(content)
	if root == nil {
		root = content
	}
	return root
}

// body renders root preceded by the icon sprite and followed by the hoisted
// root nodes.
func (p *Page) body(root *node.Node, span trace.Span) string {
	hoisted := node.CollectRootNodes(root)
	ids := node.CollectAttr(icons.IDAttr, append([]*node.Node{root}, hoisted...)...)
	sprite := icons.Sprite(ids)

	span.SetAttributes(
		attribute.Int("viewy.icons", len(ids)),
		attribute.Int("viewy.root_nodes", len(hoisted)),
	)

	var b strings.Builder
	b.WriteString(sprite)
	b.WriteString(root.String())
	for _, n := range hoisted {
		b.WriteString(n.String())
	}
	return b.String()
}

// document wraps body in the HTML skeleton.
func (p *Page) document(body string) string {
	var b strings.Builder
	b.WriteString("<!doctype html><html><head>")
	b.WriteString("<title>" + node.EscapeText(p.title) + "</title>")
	if p.config != nil {
		for _, f := range p.config.App.Favicons {
			b.WriteString(`<link rel="` + node.EscapeText(f.Rel) + `" href="` + node.EscapeText(p.baseURL+f.Href) + `">`)
		}
	}
	b.WriteString(`<link rel="stylesheet" href="` + node.EscapeText(p.baseURL+p.assets.Asset(assets.StylesheetName)) + `">`)
	b.WriteString(`<script src="` + node.EscapeText(p.baseURL+p.assets.Asset(assets.ScriptName)) + `"></script>`)
	b.WriteString(`<meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0, user-scalable=no">`)
	b.WriteString(`</head><body class="` + p.theme.BodyClass() + `">`)
	b.WriteString(body)
	b.WriteString("</body></html>")
	return b.String()
}

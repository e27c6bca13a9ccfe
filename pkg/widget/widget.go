package widget

import "github.com/viewy-dev/viewy/pkg/node"

// Widget is a value that owns one node and converts into it.
type Widget interface {
	node.Noder

	// WidgetName returns the stable name used as the style registry key.
	WidgetName() string
}

// Renderer is implemented by widgets that finalize their node before it is
// consumed: adding classes, building children, setting text.
type Renderer interface {
	Render()
}

// Base owns a widget's node and remembers the concrete widget so that
// capability methods can return it.
type Base[W any] struct {
	node     *node.Node
	self     W
	name     string
	rendered bool
	overlays []Overlay
}

// Capability is a mixin that can be bound to a widget base.
type Capability[W any] interface {
	bind(b *Base[W])
}

// Init binds the widget to its node and capabilities. It must be called by
// the widget constructor before any modifier is used.
func (b *Base[W]) Init(self W, name string, n *node.Node, caps ...Capability[W]) {
	if n == nil {
		n = node.Default()
	}
	b.node = n
	b.self = self
	b.name = name
	for _, c := range caps {
		c.bind(b)
	}
}

// Node returns the widget's node for direct mutation.
func (b *Base[W]) Node() *node.Node {
	return b.node
}

// Self returns the concrete widget.
func (b *Base[W]) Self() W {
	return b.self
}

// WidgetName implements Widget.
func (b *Base[W]) WidgetName() string {
	return b.name
}

// Rendered reports whether ToNode has already finalized the widget.
func (b *Base[W]) Rendered() bool {
	return b.rendered
}

// ToNode renders the widget once, hoists its attached overlays and returns
// its node.
func (b *Base[W]) ToNode() *node.Node {
	if !b.rendered {
		b.rendered = true
		if r, ok := any(b.self).(Renderer); ok {
			r.Render()
		}
	}
	b.hoistOverlays()
	return b.node
}

// hoistOverlays points pending overlays at the widget's id, converts them
// and adds them as root nodes.
func (b *Base[W]) hoistOverlays() {
	if len(b.overlays) == 0 {
		return
	}
	id, ok := b.node.Attr("id")
	if !ok || id == "" {
		id = node.NewID()
		b.node.SetAttr("id", id)
	}
	for _, o := range b.overlays {
		o.AttachTo(id)
		b.node.AddRootNode(o.ToNode())
	}
	b.overlays = nil
}

// mixin is embedded by every capability.
type mixin[W any] struct {
	base *Base[W]
}

func (m *mixin[W]) bind(b *Base[W]) {
	m.base = b
}

func (m *mixin[W]) n() *node.Node {
	return m.base.node
}

func (m *mixin[W]) self() W {
	return m.base.self
}

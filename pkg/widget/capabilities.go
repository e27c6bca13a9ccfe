package widget

import (
	"strconv"
	"strings"

	"github.com/viewy-dev/viewy/pkg/node"
)

// =============================================================================
// Classable
// =============================================================================

// Classable adds and removes classes.
type Classable[W any] struct{ mixin[W] }

// AddClass adds a class to the widget's node.
func (c *Classable[W]) AddClass(class string) W {
	c.n().AddClass(class)
	return c.self()
}

// RemoveClass removes a class from the widget's node.
func (c *Classable[W]) RemoveClass(class string) W {
	c.n().RemoveClass(class)
	return c.self()
}

// =============================================================================
// Attributable
// =============================================================================

// Attributable sets and removes attributes. The class and style keys are
// managed by the renderer and cannot be set.
type Attributable[W any] struct{ mixin[W] }

// SetAttr sets an attribute.
func (a *Attributable[W]) SetAttr(key, value string) W {
	a.n().SetAttr(key, value)
	return a.self()
}

// UnsetAttr removes an attribute.
func (a *Attributable[W]) UnsetAttr(key string) W {
	a.n().UnsetAttr(key)
	return a.self()
}

// ID sets the id attribute.
func (a *Attributable[W]) ID(id string) W {
	a.n().SetAttr("id", id)
	return a.self()
}

// =============================================================================
// Appendable
// =============================================================================

// Appendable manages children.
type Appendable[W any] struct{ mixin[W] }

// AppendChild converts c to a node and appends it.
func (a *Appendable[W]) AppendChild(c node.Noder) W {
	a.n().AppendChild(c)
	return a.self()
}

// PrependChild converts c to a node and inserts it first.
func (a *Appendable[W]) PrependChild(c node.Noder) W {
	a.n().PrependChild(c)
	return a.self()
}

// SetChildren replaces all children.
func (a *Appendable[W]) SetChildren(children ...node.Noder) W {
	n := a.n()
	n.Children = nil
	for _, c := range children {
		n.AppendChild(c)
	}
	return a.self()
}

// =============================================================================
// Colorable
// =============================================================================

// Colorable writes color properties. Values are any CSS color, including
// the palette variables such as "var(--accent)".
type Colorable[W any] struct{ mixin[W] }

// Color sets the foreground color.
func (c *Colorable[W]) Color(css string) W {
	c.n().SetStyle("color", css)
	return c.self()
}

// BackgroundColor sets the background color.
func (c *Colorable[W]) BackgroundColor(css string) W {
	c.n().SetStyle("background-color", css)
	return c.self()
}

// BorderColor sets the border color.
func (c *Colorable[W]) BorderColor(css string) W {
	c.n().SetStyle("border-color", css)
	return c.self()
}

// Opacity sets the opacity, clamped to [0, 1].
func (c *Colorable[W]) Opacity(value float64) W {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	c.n().SetStyle("opacity", strconv.FormatFloat(value, 'f', -1, 64))
	return c.self()
}

// =============================================================================
// Paddingable / Marginable
// =============================================================================

// spacing joins pixel values as a CSS shorthand of rem values.
func spacing(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Sp(v)
	}
	return strings.Join(parts, " ")
}

// Paddingable writes padding. Pixel values are converted with Sp.
type Paddingable[W any] struct{ mixin[W] }

// Padding writes the padding shorthand from one to four pixel values.
func (p *Paddingable[W]) Padding(values ...int) W {
	if len(values) > 0 {
		p.n().SetStyle("padding", spacing(values))
	}
	return p.self()
}

// PaddingTop sets the top padding.
func (p *Paddingable[W]) PaddingTop(px int) W {
	p.n().SetStyle("padding-top", Sp(px))
	return p.self()
}

// PaddingRight sets the right padding.
func (p *Paddingable[W]) PaddingRight(px int) W {
	p.n().SetStyle("padding-right", Sp(px))
	return p.self()
}

// PaddingBottom sets the bottom padding.
func (p *Paddingable[W]) PaddingBottom(px int) W {
	p.n().SetStyle("padding-bottom", Sp(px))
	return p.self()
}

// PaddingLeft sets the left padding.
func (p *Paddingable[W]) PaddingLeft(px int) W {
	p.n().SetStyle("padding-left", Sp(px))
	return p.self()
}

// Marginable writes margins. Pixel values are converted with Sp.
type Marginable[W any] struct{ mixin[W] }

// Margin writes the margin shorthand from one to four pixel values.
func (m *Marginable[W]) Margin(values ...int) W {
	if len(values) > 0 {
		m.n().SetStyle("margin", spacing(values))
	}
	return m.self()
}

// MarginTop sets the top margin.
func (m *Marginable[W]) MarginTop(px int) W {
	m.n().SetStyle("margin-top", Sp(px))
	return m.self()
}

// MarginRight sets the right margin.
func (m *Marginable[W]) MarginRight(px int) W {
	m.n().SetStyle("margin-right", Sp(px))
	return m.self()
}

// MarginBottom sets the bottom margin.
func (m *Marginable[W]) MarginBottom(px int) W {
	m.n().SetStyle("margin-bottom", Sp(px))
	return m.self()
}

// MarginLeft sets the left margin.
func (m *Marginable[W]) MarginLeft(px int) W {
	m.n().SetStyle("margin-left", Sp(px))
	return m.self()
}

// =============================================================================
// Dimensionable
// =============================================================================

// Dimensionable writes sizes. Values are CSS lengths such as "100%" or
// the result of Sp.
type Dimensionable[W any] struct{ mixin[W] }

// Width sets the width.
func (d *Dimensionable[W]) Width(css string) W {
	d.n().SetStyle("width", css)
	return d.self()
}

// Height sets the height.
func (d *Dimensionable[W]) Height(css string) W {
	d.n().SetStyle("height", css)
	return d.self()
}

// MinWidth sets the minimum width.
func (d *Dimensionable[W]) MinWidth(css string) W {
	d.n().SetStyle("min-width", css)
	return d.self()
}

// MinHeight sets the minimum height.
func (d *Dimensionable[W]) MinHeight(css string) W {
	d.n().SetStyle("min-height", css)
	return d.self()
}

// MaxWidth sets the maximum width.
func (d *Dimensionable[W]) MaxWidth(css string) W {
	d.n().SetStyle("max-width", css)
	return d.self()
}

// MaxHeight sets the maximum height.
func (d *Dimensionable[W]) MaxHeight(css string) W {
	d.n().SetStyle("max-height", css)
	return d.self()
}

// =============================================================================
// Borderable
// =============================================================================

// Borderable writes borders. Values are CSS border shorthands such as
// "1px solid var(--surface)".
type Borderable[W any] struct{ mixin[W] }

// Border sets all borders.
func (b *Borderable[W]) Border(css string) W {
	b.n().SetStyle("border", css)
	return b.self()
}

// BorderTop sets the top border.
func (b *Borderable[W]) BorderTop(css string) W {
	b.n().SetStyle("border-top", css)
	return b.self()
}

// BorderRight sets the right border.
func (b *Borderable[W]) BorderRight(css string) W {
	b.n().SetStyle("border-right", css)
	return b.self()
}

// BorderBottom sets the bottom border.
func (b *Borderable[W]) BorderBottom(css string) W {
	b.n().SetStyle("border-bottom", css)
	return b.self()
}

// BorderLeft sets the left border.
func (b *Borderable[W]) BorderLeft(css string) W {
	b.n().SetStyle("border-left", css)
	return b.self()
}

// CornerRadius sets the border radius in pixels.
func (b *Borderable[W]) CornerRadius(px int) W {
	b.n().SetStyle("border-radius", Sp(px))
	return b.self()
}

// =============================================================================
// Positionable
// =============================================================================

// Position is a CSS position scheme.
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// String returns the CSS keyword for the position.
func (p Position) String() string {
	switch p {
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	case PositionFixed:
		return "fixed"
	default:
		return "static"
	}
}

// Positionable sets the position scheme.
type Positionable[W any] struct{ mixin[W] }

// Position sets the CSS position.
func (p *Positionable[W]) Position(pos Position) W {
	p.n().SetStyle("position", pos.String())
	return p.self()
}

// StickyToTop makes the widget stick to the top of its scroll container.
func (p *Positionable[W]) StickyToTop(px int) W {
	p.n().SetStyle("position", "sticky").SetStyle("top", Sp(px))
	return p.self()
}

// StickyToBottom makes the widget stick to the bottom of its scroll container.
func (p *Positionable[W]) StickyToBottom(px int) W {
	p.n().SetStyle("position", "sticky").SetStyle("bottom", Sp(px))
	return p.self()
}

package widget

import "github.com/viewy-dev/viewy/pkg/node"

// Overlay is a widget that floats above the page and points back at the
// element that opens it, such as a popover or a popup.
type Overlay interface {
	node.Noder

	// AttachTo records the id of the opener element.
	AttachTo(id string)
}

// attach marks the widget as the opener of o. The overlay is converted and
// hoisted to the document root when the widget is, reusing an existing id
// attribute.
func attach[W any](m *mixin[W], o Overlay, openerClass string) {
	if o == nil {
		return
	}
	m.n().AddClass(openerClass)
	m.base.overlays = append(m.base.overlays, o)
	if m.base.rendered {
		m.base.hoistOverlays()
	}
}

// Popoverable opens a popover anchored to the widget.
type Popoverable[W any] struct{ mixin[W] }

// Popover attaches a popover that opens from this widget.
func (p *Popoverable[W]) Popover(o Overlay) W {
	attach(&p.mixin, o, "popover--opener")
	return p.self()
}

// Popupable opens a modal popup from the widget.
type Popupable[W any] struct{ mixin[W] }

// Popup attaches a popup that opens from this widget.
func (p *Popupable[W]) Popup(o Overlay) W {
	attach(&p.mixin, o, "popup--opener")
	return p.self()
}

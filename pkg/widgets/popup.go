package widgets

import (
	"github.com/viewy-dev/viewy/pkg/icons/lucide"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// Popup is a modal window opened from another widget. Attach it with the
// Popup modifier of the opener; it is rendered at the document root.
// Children go into the window content.
type Popup struct {
	widget.Base[*Popup]
	widget.Attributable[*Popup]

	content  *node.Node
	controls bool
}

// NewPopup creates an empty popup.
func NewPopup() *Popup {
	p := &Popup{content: node.Default()}
	p.Init(p, "Popup", node.Default(), &p.Attributable)
	return p
}

// AppendChild adds a child to the window content.
func (p *Popup) AppendChild(c node.Noder) *Popup {
	p.content.AppendChild(c)
	return p
}

// SetChildren replaces the window content.
func (p *Popup) SetChildren(children ...node.Noder) *Popup {
	p.content.Children = nil
	for _, c := range children {
		p.content.AppendChild(c)
	}
	return p
}

// WindowControls shows a close button in the window bar.
func (p *Popup) WindowControls() *Popup {
	p.controls = true
	return p
}

// AttachTo implements widget.Overlay.
func (p *Popup) AttachTo(id string) {
	p.Node().SetAttr("data-attach-to", id)
}

func (p *Popup) Render() {
	bar := node.Default().AddClass("popup__window__window-bar")
	if p.controls {
		bar.AppendChild(NewButton("", ButtonFlat).Icon(lucide.X).ClosePopup())
	}
	p.content.AddClass("popup__window__window-content")

	p.Node().
		AddClass("popup").
		AppendChild(node.Default().
			AddClass("popup__window").
			AppendChild(bar).
			AppendChild(p.content))
}

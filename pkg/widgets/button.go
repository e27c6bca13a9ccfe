package widgets

import (
	"github.com/viewy-dev/viewy/pkg/icons"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// ButtonStyle is the emphasis level of a button.
type ButtonStyle uint8

const (
	ButtonLink ButtonStyle = iota
	ButtonFlat
	ButtonOutlined
	ButtonFilled
)

func (s ButtonStyle) String() string {
	switch s {
	case ButtonFlat:
		return "flat"
	case ButtonOutlined:
		return "outlined"
	case ButtonFilled:
		return "filled"
	default:
		return "link"
	}
}

// Button performs an action when pressed. Binding Navigate with OnClick
// turns it into a link.
type Button struct {
	widget.Base[*Button]
	widget.Classable[*Button]
	widget.Attributable[*Button]
	widget.Colorable[*Button]
	widget.Paddingable[*Button]
	widget.Marginable[*Button]
	widget.Dimensionable[*Button]
	widget.Popoverable[*Button]
	widget.Popupable[*Button]
	widget.Actionable[*Button]

	label string
	style ButtonStyle
	icon  icons.IconPack
}

// NewButton creates a button. An empty label makes an icon-only button.
func NewButton(label string, style ButtonStyle) *Button {
	b := &Button{label: label, style: style}
	b.Init(b, "Button", node.New("button"),
		&b.Classable, &b.Attributable, &b.Colorable, &b.Paddingable,
		&b.Marginable, &b.Dimensionable, &b.Popoverable, &b.Popupable,
		&b.Actionable,
	)
	return b
}

// Icon shows an icon before the label.
func (b *Button) Icon(pack icons.IconPack) *Button {
	b.icon = pack
	return b
}

// Reverse puts the icon after the label.
func (b *Button) Reverse() *Button {
	b.Node().AddClass("button--reversed")
	return b
}

// Destructive switches to the destructive color variant.
func (b *Button) Destructive() *Button {
	b.Node().AddClass("button--" + b.style.String() + "--destructive")
	return b
}

// Disabled disables the button.
func (b *Button) Disabled() *Button {
	b.Node().SetAttr("disabled", "disabled")
	return b
}

// ClosePopup makes the button close the popup it is in.
func (b *Button) ClosePopup() *Button {
	b.Node().AddClass("popup__window-controls")
	return b
}

// AttachToForm makes the button submit the form with the given id.
func (b *Button) AttachToForm(formID string) *Button {
	b.Node().SetAttr("form", formID).SetAttr("type", "submit")
	return b
}

// AttachToFileInput makes the button open the file input with the given
// name.
func (b *Button) AttachToFileInput(name string) *Button {
	b.Node().SetAttr("data-input-file", "file-input-"+name)
	return b
}

func (b *Button) Render() {
	n := b.Node()
	n.AddClass("button").AddClass("button--" + b.style.String())

	if b.icon == nil {
		n.SetText(node.EscapeText(b.label))
		return
	}
	n.AppendChild(NewIcon(b.icon).Size(16))
	if b.label != "" {
		n.AppendChild(node.New("span").AddClass("button__label").SetText(node.EscapeText(b.label)))
	}
}

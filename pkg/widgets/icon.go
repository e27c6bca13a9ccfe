package widgets

import (
	"strconv"

	"github.com/viewy-dev/viewy/pkg/icons"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

const (
	defaultIconSize        = 24
	defaultIconStrokeWidth = 3
)

// Icon draws one icon of a generated pack by referencing its sprite symbol.
type Icon struct {
	widget.Base[*Icon]
	widget.Classable[*Icon]
	widget.Attributable[*Icon]
	widget.Colorable[*Icon]
	widget.Marginable[*Icon]
	widget.Dimensionable[*Icon]

	pack        icons.IconPack
	size        int
	strokeWidth int
}

// NewIcon creates a 24px icon.
func NewIcon(pack icons.IconPack) *Icon {
	i := &Icon{pack: pack, size: defaultIconSize, strokeWidth: defaultIconStrokeWidth}
	i.Init(i, "Icon", node.New("svg"),
		&i.Classable, &i.Attributable, &i.Colorable,
		&i.Marginable, &i.Dimensionable,
	)
	return i
}

// Size sets the width and height in pixels.
func (i *Icon) Size(px int) *Icon {
	i.size = px
	return i
}

// StrokeWidth sets the stroke width of outline icons.
func (i *Icon) StrokeWidth(w int) *Icon {
	i.strokeWidth = w
	return i
}

func (i *Icon) Render() {
	n := i.Node()
	if i.pack == nil {
		return
	}
	i.pack.Configure(n)

	size := widget.Sp(i.size)
	id := i.pack.SymbolID()
	n.AddClass("icon").
		SetAttr("xmlns", "http://www.w3.org/2000/svg").
		SetAttr("width", size).
		SetAttr("height", size).
		SetAttr("viewBox", icons.ViewBox).
		SetAttr(icons.IDAttr, id).
		SetAttr("aria-hidden", "true").
		SetAttr("stroke-width", strconv.Itoa(i.strokeWidth)).
		SetAttr("stroke-linecap", "round").
		SetAttr("stroke-linejoin", "round").
		SetStyle("min-height", size).
		SetStyle("min-width", size).
		SetText(`<use href="#` + id + `"></use>`)
}

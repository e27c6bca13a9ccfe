package widgets

import (
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// View is a generic block container.
type View struct {
	widget.Base[*View]
	widget.Classable[*View]
	widget.Attributable[*View]
	widget.Appendable[*View]
	widget.Colorable[*View]
	widget.Paddingable[*View]
	widget.Marginable[*View]
	widget.Dimensionable[*View]
	widget.Borderable[*View]
	widget.Positionable[*View]
	widget.Popoverable[*View]
	widget.Popupable[*View]
	widget.Actionable[*View]
}

// NewView creates an empty view.
func NewView() *View {
	v := &View{}
	v.Init(v, "View", node.Default(),
		&v.Classable, &v.Attributable, &v.Appendable, &v.Colorable,
		&v.Paddingable, &v.Marginable, &v.Dimensionable, &v.Borderable,
		&v.Positionable, &v.Popoverable, &v.Popupable, &v.Actionable,
	)
	return v
}

func (v *View) Render() {
	v.Node().AddClass("view")
}

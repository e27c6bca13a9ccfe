package widgets

import (
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// Placement is where a popover opens relative to its opener.
type Placement uint8

const (
	PlacementAuto Placement = iota
	PlacementTopStart
	PlacementTop
	PlacementTopEnd
	PlacementRightStart
	PlacementRight
	PlacementRightEnd
	PlacementBottomStart
	PlacementBottom
	PlacementBottomEnd
	PlacementLeftStart
	PlacementLeft
	PlacementLeftEnd
)

var placementNames = [...]string{
	PlacementAuto:        "auto",
	PlacementTopStart:    "top-start",
	PlacementTop:         "top",
	PlacementTopEnd:      "top-end",
	PlacementRightStart:  "right-start",
	PlacementRight:       "right",
	PlacementRightEnd:    "right-end",
	PlacementBottomStart: "bottom-start",
	PlacementBottom:      "bottom",
	PlacementBottomEnd:   "bottom-end",
	PlacementLeftStart:   "left-start",
	PlacementLeft:        "left",
	PlacementLeftEnd:     "left-end",
}

func (p Placement) String() string {
	if int(p) < len(placementNames) {
		return placementNames[p]
	}
	return "auto"
}

// Popover is a floating panel opened from another widget. Attach it with
// the Popover modifier of the opener; it is rendered at the document root.
type Popover struct {
	widget.Base[*Popover]
	widget.Classable[*Popover]
	widget.Attributable[*Popover]
	widget.Appendable[*Popover]
	widget.Colorable[*Popover]
	widget.Paddingable[*Popover]
	widget.Dimensionable[*Popover]

	placement Placement
	hideArrow bool
}

// NewPopover creates an empty popover.
func NewPopover() *Popover {
	p := &Popover{}
	p.Init(p, "Popover", node.Default(),
		&p.Classable, &p.Attributable, &p.Appendable, &p.Colorable,
		&p.Paddingable, &p.Dimensionable,
	)
	return p
}

// Placement sets the preferred side.
func (p *Popover) Placement(pl Placement) *Popover {
	p.placement = pl
	return p
}

// HideArrow removes the arrow pointing at the opener.
func (p *Popover) HideArrow() *Popover {
	p.hideArrow = true
	return p
}

// AttachTo implements widget.Overlay.
func (p *Popover) AttachTo(id string) {
	p.Node().SetAttr("data-attach-to", id)
}

func (p *Popover) Render() {
	n := p.Node()
	n.AddClass("popover").SetAttr("data-placement", p.placement.String())
	if !p.hideArrow {
		n.AppendChild(node.Default().AddClass("arrow").SetAttr("data-popper-arrow", "true"))
	}
}

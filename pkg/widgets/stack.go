package widgets

import (
	"strings"

	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// Alignment is the cross-axis alignment of a stack.
type Alignment uint8

const (
	AlignStretch Alignment = iota
	AlignStart
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "stretch"
	}
}

// stacking holds the modifiers shared by VStack and HStack.
type stacking[W any] struct {
	base *widget.Base[W]
}

// Gap sets the gap between children from one or two pixel values.
func (s *stacking[W]) Gap(px ...int) W {
	if len(px) > 0 {
		parts := make([]string, len(px))
		for i, v := range px {
			parts[i] = widget.Sp(v)
		}
		s.base.Node().SetStyle("grid-gap", strings.Join(parts, " "))
	}
	return s.base.Self()
}

// JustifyContent sets the main-axis distribution, e.g. "space-between".
func (s *stacking[W]) JustifyContent(css string) W {
	s.base.Node().SetStyle("justify-content", css)
	return s.base.Self()
}

// FlexWrap lets children wrap onto several lines.
func (s *stacking[W]) FlexWrap() W {
	s.base.Node().SetStyle("flex-wrap", "wrap")
	return s.base.Self()
}

func initStack(n *node.Node, direction string, align Alignment) {
	n.AddClass("stack").
		AddClass("stack--" + direction).
		AddClass("stack--align-" + align.String())
}

// VStack lays its children out in a column.
type VStack struct {
	widget.Base[*VStack]
	widget.Classable[*VStack]
	widget.Attributable[*VStack]
	widget.Appendable[*VStack]
	widget.Colorable[*VStack]
	widget.Paddingable[*VStack]
	widget.Marginable[*VStack]
	widget.Dimensionable[*VStack]
	widget.Borderable[*VStack]
	widget.Positionable[*VStack]
	stacking[*VStack]
}

// NewVStack creates a vertical stack.
func NewVStack(align Alignment) *VStack {
	s := &VStack{}
	s.Init(s, "VStack", node.Default(),
		&s.Classable, &s.Attributable, &s.Appendable, &s.Colorable,
		&s.Paddingable, &s.Marginable, &s.Dimensionable, &s.Borderable,
		&s.Positionable,
	)
	s.stacking.base = &s.Base
	initStack(s.Node(), "vertical", align)
	return s
}

// HStack lays its children out in a row.
type HStack struct {
	widget.Base[*HStack]
	widget.Classable[*HStack]
	widget.Attributable[*HStack]
	widget.Appendable[*HStack]
	widget.Colorable[*HStack]
	widget.Paddingable[*HStack]
	widget.Marginable[*HStack]
	widget.Dimensionable[*HStack]
	widget.Borderable[*HStack]
	widget.Positionable[*HStack]
	stacking[*HStack]
}

// NewHStack creates a horizontal stack.
func NewHStack(align Alignment) *HStack {
	s := &HStack{}
	s.Init(s, "HStack", node.Default(),
		&s.Classable, &s.Attributable, &s.Appendable, &s.Colorable,
		&s.Paddingable, &s.Marginable, &s.Dimensionable, &s.Borderable,
		&s.Positionable,
	)
	s.stacking.base = &s.Base
	initStack(s.Node(), "horizontal", align)
	return s
}

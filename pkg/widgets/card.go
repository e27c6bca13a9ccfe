package widgets

import (
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// CardStyle is the surface treatment of a Card.
type CardStyle uint8

const (
	CardOutlined CardStyle = iota
	CardFilled
	CardOutlinedRaised
	CardFilledRaised
)

func (s CardStyle) String() string {
	switch s {
	case CardFilled:
		return "filled"
	case CardOutlinedRaised:
		return "outlined-raised"
	case CardFilledRaised:
		return "filled-raised"
	default:
		return "outlined"
	}
}

// Card is a container drawn as a surface.
type Card struct {
	widget.Base[*Card]
	widget.Classable[*Card]
	widget.Attributable[*Card]
	widget.Appendable[*Card]
	widget.Colorable[*Card]
	widget.Paddingable[*Card]
	widget.Marginable[*Card]
	widget.Dimensionable[*Card]
	widget.Borderable[*Card]
	widget.Popoverable[*Card]
	widget.Popupable[*Card]
	widget.Actionable[*Card]

	style CardStyle
}

// NewCard creates an empty card.
func NewCard(style CardStyle) *Card {
	c := &Card{style: style}
	c.Init(c, "Card", node.Default(),
		&c.Classable, &c.Attributable, &c.Appendable, &c.Colorable,
		&c.Paddingable, &c.Marginable, &c.Dimensionable, &c.Borderable,
		&c.Popoverable, &c.Popupable, &c.Actionable,
	)
	return c
}

func (c *Card) Render() {
	c.Node().AddClass("card").AddClass("card--" + c.style.String())
}

package widgets

import (
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// TextStyle is the typographic role of a Text.
type TextStyle uint8

const (
	TextLargeTitle TextStyle = iota
	TextH1
	TextH2
	TextH3
	TextHeadline
	TextSubtitle1
	TextSubtitle2
	TextSubtitle3
	TextBody
	TextArticle
	TextLabel
	TextOverline
	TextCaption
)

var textStyleNames = [...]string{
	TextLargeTitle: "largetitle",
	TextH1:         "h1",
	TextH2:         "h2",
	TextH3:         "h3",
	TextHeadline:   "headline",
	TextSubtitle1:  "subtitle1",
	TextSubtitle2:  "subtitle2",
	TextSubtitle3:  "subtitle3",
	TextBody:       "body",
	TextArticle:    "article",
	TextLabel:      "label",
	TextOverline:   "overline",
	TextCaption:    "caption",
}

// String returns the class suffix of the style.
func (s TextStyle) String() string {
	if int(s) < len(textStyleNames) {
		return textStyleNames[s]
	}
	return "body"
}

// tag returns the element used for the style. Headings keep their
// semantics, everything else is a paragraph.
func (s TextStyle) tag() string {
	switch s {
	case TextH1:
		return "h1"
	case TextH2:
		return "h2"
	case TextH3:
		return "h3"
	default:
		return "p"
	}
}

// Text is a run of escaped text.
type Text struct {
	widget.Base[*Text]
	widget.Classable[*Text]
	widget.Attributable[*Text]
	widget.Colorable[*Text]
	widget.Paddingable[*Text]
	widget.Marginable[*Text]
	widget.Dimensionable[*Text]

	content string
	style   TextStyle
}

// NewText creates a text with the given content and style.
func NewText(content string, style TextStyle) *Text {
	t := &Text{content: content, style: style}
	t.Init(t, "Text", node.New(style.tag()),
		&t.Classable, &t.Attributable, &t.Colorable,
		&t.Paddingable, &t.Marginable, &t.Dimensionable,
	)
	return t
}

func (t *Text) Render() {
	t.Node().
		AddClass("text").
		AddClass("text--" + t.style.String()).
		SetText(node.EscapeText(t.content))
}

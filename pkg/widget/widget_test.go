package widget

import (
	"strings"
	"testing"

	"github.com/viewy-dev/viewy/pkg/node"
)

// box declares every capability so each modifier can be exercised.
type box struct {
	Base[*box]
	Classable[*box]
	Attributable[*box]
	Appendable[*box]
	Colorable[*box]
	Paddingable[*box]
	Marginable[*box]
	Dimensionable[*box]
	Borderable[*box]
	Positionable[*box]
	Popoverable[*box]
	Popupable[*box]
	Actionable[*box]

	renders int
}

func newBox() *box {
	b := &box{}
	b.Init(b, "Box", node.Default(),
		&b.Classable, &b.Attributable, &b.Appendable, &b.Colorable,
		&b.Paddingable, &b.Marginable, &b.Dimensionable, &b.Borderable,
		&b.Positionable, &b.Popoverable, &b.Popupable, &b.Actionable,
	)
	return b
}

func (b *box) Render() {
	b.renders++
	b.Node().AddClass("box")
}

// overlay is a minimal Overlay used by the opener tests.
type overlay struct {
	Base[*overlay]
	attachedTo string
	tone       string
}

func newOverlay() *overlay {
	o := &overlay{}
	o.Init(o, "Overlay", node.Default())
	return o
}

func (o *overlay) AttachTo(id string) {
	o.attachedTo = id
}

func (o *overlay) Render() {
	o.Node().AddClass("overlay").SetAttr("data-attach-to", o.attachedTo)
	if o.tone != "" {
		o.Node().SetAttr("data-tone", o.tone)
	}
}

func TestToNodeRendersOnce(t *testing.T) {
	b := newBox()
	first := b.ToNode()
	second := b.ToNode()

	if first != second {
		t.Error("ToNode should return the same node")
	}
	if b.renders != 1 {
		t.Errorf("Render called %d times, want 1", b.renders)
	}
	if !b.Rendered() {
		t.Error("Rendered() = false after ToNode")
	}
	if b.WidgetName() != "Box" {
		t.Errorf("WidgetName() = %q, want %q", b.WidgetName(), "Box")
	}
}

func TestModifiersChainAndRender(t *testing.T) {
	tests := []struct {
		name  string
		apply func(b *box) *box
		want  string
	}{
		{"AddClass", func(b *box) *box { return b.AddClass("x") }, `class="x box"`},
		{"SetAttr", func(b *box) *box { return b.SetAttr("role", "note") }, `role="note"`},
		{"ID", func(b *box) *box { return b.ID("main") }, `id="main"`},
		{"Color", func(b *box) *box { return b.Color("red") }, "color: red;"},
		{"BackgroundColor", func(b *box) *box { return b.BackgroundColor("var(--surface)") }, "background-color: var(--surface);"},
		{"BorderColor", func(b *box) *box { return b.BorderColor("blue") }, "border-color: blue;"},
		{"Opacity", func(b *box) *box { return b.Opacity(0.5) }, "opacity: 0.5;"},
		{"OpacityClamped", func(b *box) *box { return b.Opacity(3) }, "opacity: 1;"},
		{"Padding", func(b *box) *box { return b.Padding(8, 16) }, "padding: 0.5rem 1rem;"},
		{"PaddingTop", func(b *box) *box { return b.PaddingTop(16) }, "padding-top: 1rem;"},
		{"PaddingRight", func(b *box) *box { return b.PaddingRight(16) }, "padding-right: 1rem;"},
		{"PaddingBottom", func(b *box) *box { return b.PaddingBottom(16) }, "padding-bottom: 1rem;"},
		{"PaddingLeft", func(b *box) *box { return b.PaddingLeft(16) }, "padding-left: 1rem;"},
		{"Margin", func(b *box) *box { return b.Margin(0) }, "margin: 0rem;"},
		{"MarginTop", func(b *box) *box { return b.MarginTop(32) }, "margin-top: 2rem;"},
		{"MarginRight", func(b *box) *box { return b.MarginRight(32) }, "margin-right: 2rem;"},
		{"MarginBottom", func(b *box) *box { return b.MarginBottom(32) }, "margin-bottom: 2rem;"},
		{"MarginLeft", func(b *box) *box { return b.MarginLeft(32) }, "margin-left: 2rem;"},
		{"Width", func(b *box) *box { return b.Width("100%") }, "width: 100%;"},
		{"Height", func(b *box) *box { return b.Height("2rem") }, "height: 2rem;"},
		{"MinWidth", func(b *box) *box { return b.MinWidth("1rem") }, "min-width: 1rem;"},
		{"MinHeight", func(b *box) *box { return b.MinHeight("1rem") }, "min-height: 1rem;"},
		{"MaxWidth", func(b *box) *box { return b.MaxWidth("10rem") }, "max-width: 10rem;"},
		{"MaxHeight", func(b *box) *box { return b.MaxHeight("10rem") }, "max-height: 10rem;"},
		{"Border", func(b *box) *box { return b.Border("1px solid red") }, "border: 1px solid red;"},
		{"BorderTop", func(b *box) *box { return b.BorderTop("none") }, "border-top: none;"},
		{"BorderRight", func(b *box) *box { return b.BorderRight("none") }, "border-right: none;"},
		{"BorderBottom", func(b *box) *box { return b.BorderBottom("none") }, "border-bottom: none;"},
		{"BorderLeft", func(b *box) *box { return b.BorderLeft("none") }, "border-left: none;"},
		{"CornerRadius", func(b *box) *box { return b.CornerRadius(8) }, "border-radius: 0.5rem;"},
		{"Position", func(b *box) *box { return b.Position(PositionAbsolute) }, "position: absolute;"},
		{"StickyToTop", func(b *box) *box { return b.StickyToTop(0) }, "position: sticky; top: 0rem;"},
		{"StickyToBottom", func(b *box) *box { return b.StickyToBottom(0) }, "position: sticky; bottom: 0rem;"},
		{"AppendChild", func(b *box) *box { return b.AppendChild(node.New("p")) }, "<p></p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBox()
			if got := tt.apply(b); got != b {
				t.Fatal("modifier should return the widget")
			}
			html := b.ToNode().String()
			if !strings.Contains(html, tt.want) {
				t.Errorf("rendered %q, want it to contain %q", html, tt.want)
			}
		})
	}
}

func TestRemoveClassAndUnsetAttr(t *testing.T) {
	b := newBox().AddClass("x").RemoveClass("x").SetAttr("k", "v").UnsetAttr("k")
	html := b.ToNode().String()
	if strings.Contains(html, `"x`) || strings.Contains(html, "k=") {
		t.Errorf("got %q", html)
	}
}

func TestSetChildrenAndPrepend(t *testing.T) {
	b := newBox().
		AppendChild(node.New("old")).
		SetChildren(node.New("a"), node.New("b")).
		PrependChild(node.New("first"))

	got := b.ToNode().String()
	want := `<div class="box"><first></first><a></a><b></b></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPopoverOpener(t *testing.T) {
	o := newOverlay()
	b := newBox().Popover(o)
	n := b.ToNode()

	id, ok := n.Attr("id")
	if !ok || id == "" {
		t.Fatal("opener should carry an id")
	}
	if !n.HasClass("popover--opener") {
		t.Errorf("missing popover--opener class: %v", n.Classes())
	}
	roots := n.RootNodes()
	if len(roots) != 1 {
		t.Fatalf("len(RootNodes()) = %d, want 1", len(roots))
	}
	if got, _ := roots[0].Attr("data-attach-to"); got != id {
		t.Errorf("data-attach-to = %q, want %q", got, id)
	}
}

func TestPopupOpenerReusesID(t *testing.T) {
	o := newOverlay()
	b := newBox().ID("settings").Popup(o)
	n := b.ToNode()

	if got, _ := n.Attr("id"); got != "settings" {
		t.Errorf("id = %q, want %q", got, "settings")
	}
	if !n.HasClass("popup--opener") {
		t.Errorf("missing popup--opener class: %v", n.Classes())
	}
	if o.attachedTo != "settings" {
		t.Errorf("attached to %q, want %q", o.attachedTo, "settings")
	}
}

func TestOverlayConvertedWithOpener(t *testing.T) {
	o := newOverlay()
	b := newBox().Popover(o)
	o.tone = "dark"
	b.ID("late")

	if o.Rendered() {
		t.Fatal("overlay rendered before its opener")
	}
	roots := b.ToNode().RootNodes()
	if len(roots) != 1 {
		t.Fatalf("len(RootNodes()) = %d, want 1", len(roots))
	}
	if got, _ := roots[0].Attr("data-tone"); got != "dark" {
		t.Errorf("data-tone = %q, want dark", got)
	}
	if got, _ := roots[0].Attr("data-attach-to"); got != "late" {
		t.Errorf("data-attach-to = %q, want late", got)
	}
	if again := b.ToNode().RootNodes(); len(again) != 1 {
		t.Errorf("second ToNode hoisted %d overlays, want 1", len(again))
	}
}

func TestOverlayAttachedAfterRender(t *testing.T) {
	b := newBox()
	n := b.ToNode()
	b.Popup(newOverlay())

	if len(n.RootNodes()) != 1 {
		t.Errorf("len(RootNodes()) = %d, want 1", len(n.RootNodes()))
	}
	if !n.HasClass("popup--opener") {
		t.Errorf("missing popup--opener class: %v", n.Classes())
	}
}

func TestActions(t *testing.T) {
	tests := []struct {
		name   string
		apply  func(b *box) *box
		checks map[string]string
		tag    string
	}{
		{
			name:   "navigate",
			apply:  func(b *box) *box { return b.OnClick(Navigate("/home")) },
			checks: map[string]string{"href": "/home"},
			tag:    "a",
		},
		{
			name:   "open popup",
			apply:  func(b *box) *box { return b.OnClick(OpenPopup("/dialog", true)) },
			checks: map[string]string{"data-v-on-click": "open_popup", "data-v-url": "/dialog", "data-v-display-window-controls": "true"},
			tag:    "div",
		},
		{
			name:   "open popover",
			apply:  func(b *box) *box { return b.OnDoubleClick(OpenPopover("/menu")) },
			checks: map[string]string{"data-v-on-dblclick": "open_popover", "data-v-url": "/menu"},
			tag:    "div",
		},
		{
			name:   "close",
			apply:  func(b *box) *box { return b.OnClick(CloseParentWindow()) },
			checks: map[string]string{"data-v-on-click": "close_parent_window"},
			tag:    "div",
		},
		{
			name:   "submit",
			apply:  func(b *box) *box { return b.OnChange(SubmitForm("search")) },
			checks: map[string]string{"data-v-on-change": "submit_form", "data-v-form": "search"},
			tag:    "div",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.apply(newBox()).ToNode()
			if n.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", n.Tag, tt.tag)
			}
			for k, want := range tt.checks {
				if got, _ := n.Attr(k); got != want {
					t.Errorf("Attr(%q) = %q, want %q", k, got, want)
				}
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	tests := map[Position]string{
		PositionStatic:   "static",
		PositionRelative: "relative",
		PositionAbsolute: "absolute",
		PositionFixed:    "fixed",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Position(%d).String() = %q, want %q", p, got, want)
		}
	}
}

package widgets

import (
	"strings"
	"testing"

	"github.com/viewy-dev/viewy/pkg/icons/lucide"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/page"
)

func TestPageWithButton(t *testing.T) {
	html := page.WithTitle("T").
		WithBaseURL("").
		WithContent(NewButton("Click", ButtonFilled)).
		Compile(page.Complete)

	for _, want := range []string{
		"<title>T</title>",
		`<link rel="stylesheet" href="/app.css">`,
		">Click<",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output does not contain %q", want)
		}
	}

	buttons := findAll(parseDocument(t, html), byTag("button"))
	if len(buttons) != 1 || !hasClass(buttons[0], "button") || !hasClass(buttons[0], "button--filled") {
		t.Errorf("expected one button with classes button and button--filled")
	}
}

func TestPageWithStackKeepsOrder(t *testing.T) {
	html := page.WithTitle("X").
		WithContent(NewVStack(AlignStretch).
			AppendChild(NewText("A", TextBody)).
			AppendChild(NewText("B", TextBody))).
		Compile(page.Complete)

	a, b := strings.Index(html, ">A<"), strings.Index(html, ">B<")
	if a < 0 || b < 0 || a > b {
		t.Errorf("A at %d, B at %d", a, b)
	}

	stacks := findAll(parseDocument(t, html), byClass("stack"))
	if len(stacks) != 1 {
		t.Fatalf("found %d stacks", len(stacks))
	}
	for _, c := range []string{"stack--vertical", "stack--align-stretch"} {
		if !hasClass(stacks[0], c) {
			t.Errorf("stack is missing class %q", c)
		}
	}
}

func TestSharedIconSymbolIsEmittedOnce(t *testing.T) {
	card := NewCard(CardFilled).
		AppendChild(NewIcon(lucide.Check)).
		AppendChild(NewIcon(lucide.Check))

	html := page.WithTitle("Icons").WithContent(card).Compile(page.Complete)

	if got := strings.Count(html, `<symbol id="v-icon-lucide-check"`); got != 1 {
		t.Errorf("symbol count = %d, want 1", got)
	}
	if got := strings.Count(html, `<use href="#v-icon-lucide-check"></use>`); got != 2 {
		t.Errorf("use count = %d, want 2", got)
	}
	if strings.Index(html, "<symbol") > strings.Index(html, `class="card`) {
		t.Error("sprite should precede the card")
	}
}

func TestPopoverIsHoistedToBody(t *testing.T) {
	html := page.WithTitle("P").
		WithContent(NewView().AppendChild(
			NewButton("More", ButtonFlat).
				Popover(NewPopover().AppendChild(NewText("Hi", TextBody))))).
		Compile(page.Complete)

	body := parseDocument(t, html)

	var top []string
	for _, c := range elementChildren(body) {
		if hasClass(c, "popover") {
			top = append(top, "popover")
		}
	}
	if len(top) != 1 {
		t.Fatalf("found %d popovers at body level, want 1", len(top))
	}
	if got := len(findAll(body, byClass("popover"))); got != 1 {
		t.Errorf("popover rendered %d times", got)
	}

	button := findAll(body, byTag("button"))[0]
	if !hasClass(button, "popover--opener") {
		t.Error("button is missing popover--opener")
	}
	id, ok := attr(button, "id")
	popover := findAll(body, byClass("popover"))[0]
	attached, _ := attr(popover, "data-attach-to")
	if !ok || id == "" || id != attached {
		t.Errorf("button id %q, popover data-attach-to %q", id, attached)
	}
}

func TestLayoutOnlyPlaceholder(t *testing.T) {
	wrap := func(c *node.Node) *node.Node {
		return NewVStack(AlignStretch).
			AppendChild(NewText("Header", TextH1)).
			AppendChild(c).
			ToNode()
	}
	html := page.WithTitle("L").
		WithContent(NewView()).
		WithLayout(wrap).
		Compile(page.LayoutOnly)

	if got := strings.Count(html, "<!--VIEWY_CONTENT-->"); got != 1 {
		t.Fatalf("placeholder count = %d, want 1", got)
	}
	if strings.Index(html, ">Header<") > strings.Index(html, "<!--VIEWY_CONTENT-->") {
		t.Error("header should precede the placeholder")
	}
	if strings.Contains(html, `class="view"`) {
		t.Error("content rendered in LayoutOnly mode")
	}
}

func TestMultipleSegmentedPicker(t *testing.T) {
	p := NewPicker("tags", "", PickerSegmented).
		Multiple().
		AppendOption(NewPickerOption("Go", "go").WithSelected(true)).
		AppendOption(NewPickerOption("Rust", "rust"))

	root := parseFragment(t, render(p))
	inputs := findAll(root, byInputType("checkbox"))
	if len(inputs) != 2 {
		t.Fatalf("found %d checkboxes, want 2", len(inputs))
	}

	checked := 0
	for i, in := range inputs {
		if name, _ := attr(in, "name"); name != "tags" {
			t.Errorf("input %d name = %q", i, name)
		}
		if v, ok := attr(in, "checked"); ok {
			if v != "checked" {
				t.Errorf("checked = %q", v)
			}
			checked++
		}
	}
	if v, _ := attr(inputs[0], "value"); v != "go" {
		t.Errorf("first value = %q", v)
	}
	if v, _ := attr(inputs[1], "value"); v != "rust" {
		t.Errorf("second value = %q", v)
	}
	if checked != 1 {
		t.Errorf("%d inputs checked, want 1", checked)
	}
}

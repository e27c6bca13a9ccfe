package widgets

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/viewy-dev/viewy/pkg/icons/lucide"
)

func TestPickerRadioSelectsByValue(t *testing.T) {
	p := NewPicker("size", "m", PickerRadioGroup).
		Label("Size").
		Required().
		AttachToForm("order").
		AppendOption(NewPickerOption("Small", "s").WithSelected(true)).
		AppendOption(NewPickerOption("Medium", "m"))

	root := parseFragment(t, render(p))
	inputs := findAll(root, byInputType("radio"))
	if len(inputs) != 2 {
		t.Fatalf("found %d radios, want 2", len(inputs))
	}

	var checked []string
	for _, in := range inputs {
		if _, ok := attr(in, "checked"); ok {
			v, _ := attr(in, "value")
			checked = append(checked, v)
		}
		if v, _ := attr(in, "form"); v != "order" {
			t.Errorf("form = %q, want order", v)
		}
		if _, ok := attr(in, "required"); !ok {
			t.Error("input should be required")
		}
	}
	if diff := cmp.Diff([]string{"m"}, checked); diff != "" {
		t.Errorf("checked values mismatch (-want +got):\n%s", diff)
	}

	groups := findAll(root, byClass("picker__groups"))
	if len(groups) != 1 {
		t.Fatalf("found %d group containers", len(groups))
	}
	if role, _ := attr(groups[0], "role"); role != "radiogroup" {
		t.Errorf("role = %q, want radiogroup", role)
	}
	labels := findAll(root, byClass("picker__label"))
	if len(labels) != 1 {
		t.Fatalf("found %d labels", len(labels))
	}
	labelID, _ := attr(labels[0], "id")
	if got, _ := attr(groups[0], "aria-labelledby"); got != labelID {
		t.Errorf("aria-labelledby = %q, want %q", got, labelID)
	}
}

func TestPickerLabelsPointAtInputs(t *testing.T) {
	p := NewPicker("view", "", PickerSegmented).
		AppendOption(NewPickerOption("List", "list").WithIcon(lucide.Menu)).
		AppendGroup("More", NewPickerOption("Grid", "grid"), NewPickerOption("Board", "board"))

	root := parseFragment(t, render(p))
	inputs := findAll(root, byTag("input"))
	labels := findAll(root, byClass("picker__item-label"))
	if len(inputs) != 3 || len(labels) != 3 {
		t.Fatalf("found %d inputs and %d labels", len(inputs), len(labels))
	}
	for i := range inputs {
		id, _ := attr(inputs[i], "id")
		if !strings.HasSuffix(id, "-option-"+string(rune('0'+i))) {
			t.Errorf("input %d id = %q", i, id)
		}
		if got, _ := attr(labels[i], "for"); got != id {
			t.Errorf("label %d for = %q, want %q", i, got, id)
		}
	}

	legends := findAll(root, byTag("legend"))
	if len(legends) != 1 || legends[0].FirstChild.Data != "More" {
		t.Errorf("expected one legend for the named group")
	}
	if len(findAll(root, byClass("picker__item-icon"))) != 1 {
		t.Error("expected one option icon")
	}
}

func TestPickerModifiers(t *testing.T) {
	n := NewPicker("x", "", PickerSegmented).Vertical().Disabled(true).SubmitOnChange(true).
		AppendOption(NewPickerOption("A", "a")).
		ToNode()
	for _, c := range []string{"picker", "picker--segmented", "picker--segmented--vertical", "picker--disabled"} {
		if !n.HasClass(c) {
			t.Errorf("missing class %q in %v", c, n.Classes())
		}
	}
	html := n.String()
	for _, want := range []string{`data-auto-submit="true"`, `disabled="disabled"`, `aria-disabled="true"`} {
		if !strings.Contains(html, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestRadioGroupIgnoresSegmentedModifiers(t *testing.T) {
	n := NewPicker("x", "", PickerRadioGroup).Multiple().Vertical().
		AppendOption(NewPickerOption("A", "a")).
		ToNode()
	if n.HasClass("picker--segmented--vertical") {
		t.Error("radio group should not become vertical segmented")
	}
	if strings.Contains(n.String(), `type="checkbox"`) {
		t.Error("radio group should not allow multiple selection")
	}
}

func TestSelect(t *testing.T) {
	s := NewSelect("country", "fr").
		Label("Country").
		AppendOption(NewSelectOption("Belgium", "be")).
		AppendGroup("Europe", NewSelectOption("France", "fr"), NewSelectOption("Spain", "es"))

	root := parseFragment(t, render(s))

	field := findAll(root, byClass("select__field"))
	if len(field) != 1 {
		t.Fatalf("found %d hidden fields", len(field))
	}
	if v, _ := attr(field[0], "value"); v != "fr" {
		t.Errorf("field value = %q, want fr", v)
	}

	value := findAll(root, byClass("select__value"))[0]
	if value.FirstChild == nil || value.FirstChild.Data != "France" {
		t.Error("trigger should display the selected label")
	}

	options := findAll(root, byClass("select__option"))
	if len(options) != 3 {
		t.Fatalf("found %d options, want 3", len(options))
	}
	selected := findAll(root, byClass("is-selected"))
	if len(selected) != 1 {
		t.Fatalf("found %d selected options", len(selected))
	}
	if v, _ := attr(selected[0], "data-index"); v != "1" {
		t.Errorf("selected index = %q, want 1", v)
	}
	selectedID, _ := attr(selected[0], "id")
	listbox := findAll(root, byClass("select__listbox"))[0]
	if got, _ := attr(listbox, "aria-activedescendant"); got != selectedID {
		t.Errorf("aria-activedescendant = %q, want %q", got, selectedID)
	}
	if len(findAll(root, byClass("select__group"))) != 1 {
		t.Error("expected one group")
	}
	if len(findAll(root, byClass("select__search"))) != 1 {
		t.Error("search field should be shown by default")
	}
}

func TestSelectFallsBackToSelectedFlagAndPlaceholder(t *testing.T) {
	flagged := NewSelect("c", "").
		AppendOption(NewSelectOption("A", "a")).
		AppendOption(NewSelectOption("B", "b").WithSelected(true))
	root := parseFragment(t, render(flagged))
	if v, _ := attr(findAll(root, byClass("select__field"))[0], "value"); v != "b" {
		t.Errorf("field value = %q, want b", v)
	}

	empty := NewSelect("c", "").Placeholder("Pick one").Searchable(false).
		AppendOption(NewSelectOption("A", "a"))
	root = parseFragment(t, render(empty))
	if got := findAll(root, byClass("select__value"))[0].FirstChild.Data; got != "Pick one" {
		t.Errorf("placeholder = %q", got)
	}
	if len(findAll(root, byClass("is-selected"))) != 0 {
		t.Error("nothing should be selected")
	}
	if len(findAll(root, byClass("select__search"))) != 0 {
		t.Error("search field should be hidden")
	}
}

func TestSelectDisabled(t *testing.T) {
	n := NewSelect("c", "").Disabled(true).Required().SubmitOnChange(true).ToNode()
	if !n.HasClass("select--disabled") {
		t.Error("missing select--disabled")
	}
	html := n.String()
	for _, want := range []string{`aria-disabled="true"`, `aria-required="true"`, `data-auto-submit="true"`, `required="required"`} {
		if !strings.Contains(html, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

package widgets

import (
	"strconv"

	"github.com/viewy-dev/viewy/pkg/icons"
	"github.com/viewy-dev/viewy/pkg/icons/lucide"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// DefaultSelectPlaceholder is shown while nothing is selected.
const DefaultSelectPlaceholder = "Select an option"

// SelectOption is one entry of a Select.
type SelectOption struct {
	Label    string
	Value    string
	Icon     icons.IconPack
	Selected bool
}

// NewSelectOption creates an unselected option.
func NewSelectOption(label, value string) SelectOption {
	return SelectOption{Label: label, Value: value}
}

// WithIcon returns the option with an icon before its label.
func (o SelectOption) WithIcon(pack icons.IconPack) SelectOption {
	o.Icon = pack
	return o
}

// WithSelected returns the option marked as selected.
func (o SelectOption) WithSelected(selected bool) SelectOption {
	o.Selected = selected
	return o
}

// SelectGroup is a labelled set of options.
type SelectGroup struct {
	Label   string
	Options []SelectOption
}

// Select is a searchable dropdown backed by a hidden input.
type Select struct {
	widget.Base[*Select]
	widget.Classable[*Select]
	widget.Attributable[*Select]
	widget.Marginable[*Select]
	widget.Dimensionable[*Select]

	name        string
	value       string
	label       string
	placeholder string
	options     []SelectOption
	groups      []SelectGroup
	disabled    bool
	autoSubmit  bool
	required    bool
	searchable  bool
	form        string
}

// NewSelect creates a searchable select for the field name.
func NewSelect(name, value string) *Select {
	s := &Select{
		name:        name,
		value:       value,
		placeholder: DefaultSelectPlaceholder,
		searchable:  true,
	}
	s.Init(s, "Select", node.Default(),
		&s.Classable, &s.Attributable, &s.Marginable, &s.Dimensionable,
	)
	return s
}

// Label sets the visible label.
func (s *Select) Label(label string) *Select {
	s.label = label
	return s
}

// Placeholder sets the text shown while nothing is selected.
func (s *Select) Placeholder(text string) *Select {
	s.placeholder = text
	return s
}

// Required marks the field as required.
func (s *Select) Required() *Select {
	s.required = true
	return s
}

// SubmitOnChange submits the owning form when the selection changes.
func (s *Select) SubmitOnChange(submit bool) *Select {
	s.autoSubmit = submit
	return s
}

// Searchable shows or hides the search field of the panel.
func (s *Select) Searchable(searchable bool) *Select {
	s.searchable = searchable
	return s
}

// AttachToForm binds the field to the form with the given id.
func (s *Select) AttachToForm(formID string) *Select {
	s.form = formID
	return s
}

// Disabled disables the select.
func (s *Select) Disabled(disabled bool) *Select {
	s.disabled = disabled
	return s
}

// AppendOption adds an ungrouped option.
func (s *Select) AppendOption(o SelectOption) *Select {
	s.options = append(s.options, o)
	return s
}

// AppendGroup adds a labelled group of options.
func (s *Select) AppendGroup(label string, options ...SelectOption) *Select {
	s.groups = append(s.groups, SelectGroup{Label: label, Options: options})
	return s
}

// all returns every option in display order.
func (s *Select) all() []SelectOption {
	out := append([]SelectOption(nil), s.options...)
	for _, g := range s.groups {
		out = append(out, g.Options...)
	}
	return out
}

// selected resolves the selected option: the one matching the value, else
// the first marked Selected.
func (s *Select) selected() (SelectOption, bool) {
	all := s.all()
	for _, o := range all {
		if o.Value == s.value {
			return o, true
		}
	}
	for _, o := range all {
		if o.Selected {
			return o, true
		}
	}
	return SelectOption{}, false
}

func (s *Select) option(o SelectOption, id string, selected bool, index int) *node.Node {
	n := node.New("button").
		AddClass("select__option").
		SetAttr("type", "button").
		SetAttr("role", "option").
		SetAttr("tabindex", "-1").
		SetAttr("data-value", o.Value).
		SetAttr("data-label", o.Label).
		SetAttr("data-index", strconv.Itoa(index)).
		SetAttr("id", id).
		SetAttr("aria-selected", strconv.FormatBool(selected))
	if selected {
		n.AddClass("is-selected")
	}

	iconSlot := node.New("span").
		AddClass("select__option-icon").
		SetAttr("aria-hidden", "true")
	if o.Icon != nil {
		iconSlot.AppendChild(NewIcon(o.Icon).Size(16))
	}

	return n.
		AppendChild(iconSlot).
		AppendChild(node.New("span").
			AddClass("select__option-label").
			SetText(node.EscapeText(o.Label))).
		AppendChild(NewIcon(lucide.Check).Size(16).AddClass("select__check"))
}

func (s *Select) Render() {
	n := s.Node().AddClass("select").SetAttr("data-v-select", "true")
	if s.disabled {
		n.AddClass("select--disabled")
	}

	id := "select-" + node.NewID()
	labelID := id + "-label"
	triggerID := id + "-trigger"
	valueID := id + "-value"
	listboxID := id + "-listbox"

	if s.label != "" {
		n.AppendChild(node.New("label").
			AddClass("select__label").
			SetAttr("id", labelID).
			SetAttr("for", triggerID).
			SetText(node.EscapeText(s.label)))
	}

	value, display := s.value, s.placeholder
	if o, ok := s.selected(); ok {
		value, display = o.Value, o.Label
	}

	field := node.NewSelfClosing("input").
		AddClass("select__field").
		SetAttr("type", "hidden").
		SetAttr("name", s.name).
		SetAttr("value", value)
	if s.form != "" {
		field.SetAttr("form", s.form)
	}
	if s.autoSubmit {
		field.SetAttr("data-auto-submit", "true")
	}
	if s.required {
		field.SetAttr("required", "required")
	}
	n.AppendChild(field)

	trigger := node.New("button").
		AddClass("select__trigger").
		SetAttr("type", "button").
		SetAttr("id", triggerID).
		SetAttr("role", "combobox").
		SetAttr("aria-haspopup", "listbox").
		SetAttr("aria-expanded", "false").
		SetAttr("aria-controls", listboxID).
		SetAttr("aria-live", "polite").
		SetAttr("data-v-select-trigger", "true")
	if s.label != "" {
		trigger.SetAttr("aria-labelledby", labelID+" "+valueID)
	}
	if s.required {
		trigger.SetAttr("aria-required", "true")
	}
	if s.disabled {
		trigger.SetAttr("disabled", "disabled").SetAttr("aria-disabled", "true")
	}
	trigger.
		AppendChild(node.New("span").
			AddClass("select__value").
			SetAttr("id", valueID).
			SetText(node.EscapeText(display))).
		AppendChild(NewIcon(lucide.ChevronDown).Size(16).AddClass("select__chevron"))
	n.AppendChild(trigger)

	panel := node.Default().
		AddClass("select__panel").
		SetAttr("id", id+"-panel").
		SetAttr("data-v-select-panel", "true").
		SetAttr("hidden", "hidden")
	if s.searchable {
		panel.AppendChild(node.NewSelfClosing("input").
			AddClass("select__search").
			SetAttr("id", id+"-search").
			SetAttr("type", "search").
			SetAttr("placeholder", "Search").
			SetAttr("autocomplete", "off").
			SetAttr("spellcheck", "false"))
	}

	listbox := node.Default().
		AddClass("select__listbox").
		SetAttr("id", listboxID).
		SetAttr("role", "listbox").
		SetAttr("tabindex", "-1")

	index := 0
	activeID := ""
	add := func(parent *node.Node, o SelectOption) {
		optionID := id + "-option-" + strconv.Itoa(index)
		isSelected := value != "" && o.Value == value
		if isSelected {
			activeID = optionID
		}
		parent.AppendChild(s.option(o, optionID, isSelected, index))
		index++
	}

	for _, o := range s.options {
		add(listbox, o)
	}
	for _, g := range s.groups {
		group := node.Default().
			AddClass("select__group").
			SetAttr("role", "group").
			SetAttr("aria-label", g.Label).
			AppendChild(node.Default().
				AddClass("select__group-label").
				SetText(node.EscapeText(g.Label)))
		for _, o := range g.Options {
			add(group, o)
		}
		listbox.AppendChild(group)
	}
	if activeID != "" {
		listbox.SetAttr("aria-activedescendant", activeID)
	}

	n.AppendChild(panel.AppendChild(listbox))
}

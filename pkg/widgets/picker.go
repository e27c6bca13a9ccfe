package widgets

import (
	"strconv"

	"github.com/viewy-dev/viewy/pkg/icons"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// PickerStyle is the presentation of a Picker.
type PickerStyle uint8

const (
	PickerSegmented PickerStyle = iota
	PickerRadioGroup
)

// PickerOption is one choice of a Picker.
type PickerOption struct {
	Label    string
	Value    string
	Icon     icons.IconPack
	Selected bool
}

// NewPickerOption creates an unselected option.
func NewPickerOption(label, value string) PickerOption {
	return PickerOption{Label: label, Value: value}
}

// WithIcon returns the option with an icon before its label.
func (o PickerOption) WithIcon(pack icons.IconPack) PickerOption {
	o.Icon = pack
	return o
}

// WithSelected returns the option marked as selected.
func (o PickerOption) WithSelected(selected bool) PickerOption {
	o.Selected = selected
	return o
}

// PickerGroup is a labelled set of options.
type PickerGroup struct {
	Label   string
	Options []PickerOption
}

// Picker is a set of radio buttons or, for multiple segmented pickers,
// checkboxes, sharing one field name.
type Picker struct {
	widget.Base[*Picker]
	widget.Classable[*Picker]
	widget.Attributable[*Picker]
	widget.Marginable[*Picker]
	widget.Dimensionable[*Picker]

	style      PickerStyle
	name       string
	value      string
	label      string
	options    []PickerOption
	groups     []PickerGroup
	disabled   bool
	autoSubmit bool
	required   bool
	multiple   bool
	vertical   bool
	form       string
}

// NewPicker creates a picker for the field name. A non-empty value selects
// the option with that value; otherwise options marked Selected are.
func NewPicker(name, value string, style PickerStyle) *Picker {
	p := &Picker{name: name, value: value, style: style}
	p.Init(p, "Picker", node.Default(),
		&p.Classable, &p.Attributable, &p.Marginable, &p.Dimensionable,
	)
	return p
}

// Label sets the visible label.
func (p *Picker) Label(label string) *Picker {
	p.label = label
	return p
}

// Required marks the field as required.
func (p *Picker) Required() *Picker {
	p.required = true
	return p
}

// SubmitOnChange submits the owning form when the selection changes.
func (p *Picker) SubmitOnChange(submit bool) *Picker {
	p.autoSubmit = submit
	return p
}

// Multiple allows several options to be selected. Only segmented pickers
// support it.
func (p *Picker) Multiple() *Picker {
	if p.style == PickerSegmented {
		p.multiple = true
	}
	return p
}

// Vertical stacks the segments. Only segmented pickers support it.
func (p *Picker) Vertical() *Picker {
	if p.style == PickerSegmented {
		p.vertical = true
	}
	return p
}

// AttachToForm binds the inputs to the form with the given id.
func (p *Picker) AttachToForm(formID string) *Picker {
	p.form = formID
	return p
}

// Disabled disables every option.
func (p *Picker) Disabled(disabled bool) *Picker {
	p.disabled = disabled
	return p
}

// AppendOption adds an ungrouped option.
func (p *Picker) AppendOption(o PickerOption) *Picker {
	p.options = append(p.options, o)
	return p
}

// AppendGroup adds a labelled group of options.
func (p *Picker) AppendGroup(label string, options ...PickerOption) *Picker {
	p.groups = append(p.groups, PickerGroup{Label: label, Options: options})
	return p
}

func (p *Picker) isSelected(o PickerOption) bool {
	if !p.multiple && p.value != "" {
		return p.value == o.Value
	}
	return o.Selected
}

func (p *Picker) item(pickerID string, o PickerOption, index int) *node.Node {
	inputID := pickerID + "-option-" + strconv.Itoa(index)

	kind := "radio"
	if p.multiple {
		kind = "checkbox"
	}
	input := node.NewSelfClosing("input").
		AddClass("picker__item-input").
		SetAttr("id", inputID).
		SetAttr("name", p.name).
		SetAttr("value", o.Value).
		SetAttr("type", kind)
	if p.isSelected(o) {
		input.SetAttr("checked", "checked")
	}
	if p.required {
		input.SetAttr("required", "required")
	}
	if p.autoSubmit {
		input.SetAttr("data-auto-submit", "true")
	}
	if p.disabled {
		input.SetAttr("disabled", "disabled")
	}
	if p.form != "" {
		input.SetAttr("form", p.form)
	}

	label := node.New("label").
		AddClass("picker__item-label").
		SetAttr("for", inputID)
	if o.Icon != nil {
		label.AppendChild(node.New("span").
			AddClass("picker__item-icon").
			SetAttr("aria-hidden", "true").
			AppendChild(NewIcon(o.Icon).Size(16)))
	}
	label.AppendChild(node.New("span").
		AddClass("picker__item-text").
		SetText(node.EscapeText(o.Label)))

	return node.Default().
		AddClass("picker__item").
		AppendChild(input).
		AppendChild(label)
}

func (p *Picker) group(pickerID, legend string, options []PickerOption, index *int) *node.Node {
	g := node.New("fieldset").AddClass("picker__group")
	if p.disabled {
		g.SetAttr("disabled", "disabled")
	}
	if legend != "" {
		g.AppendChild(node.New("legend").
			AddClass("picker__group-legend").
			SetText(node.EscapeText(legend)))
	}

	list := node.Default().AddClass("picker__options")
	for _, o := range options {
		list.AppendChild(p.item(pickerID, o, *index))
		*index++
	}
	return g.AppendChild(list)
}

func (p *Picker) Render() {
	n := p.Node().AddClass("picker").SetAttr("data-v-picker", "true")
	switch p.style {
	case PickerSegmented:
		n.AddClass("picker--segmented")
		if p.vertical {
			n.AddClass("picker--segmented--vertical")
		}
	case PickerRadioGroup:
		n.AddClass("picker--radiogroup")
	}
	if p.disabled {
		n.AddClass("picker--disabled")
	}

	pickerID := "picker-" + node.NewID()
	labelID := pickerID + "-label"

	if p.label != "" {
		n.AppendChild(node.New("p").
			AddClass("picker__label").
			SetAttr("id", labelID).
			SetText(node.EscapeText(p.label)))
	}

	role := "radiogroup"
	if p.multiple {
		role = "group"
	}
	groups := node.Default().AddClass("picker__groups").SetAttr("role", role)
	if p.label != "" {
		groups.SetAttr("aria-labelledby", labelID)
	}
	if p.disabled {
		groups.SetAttr("aria-disabled", "true")
	}

	index := 0
	if len(p.options) > 0 {
		groups.AppendChild(p.group(pickerID, "", p.options, &index))
	}
	for _, g := range p.groups {
		groups.AppendChild(p.group(pickerID, g.Label, g.Options, &index))
	}
	n.AppendChild(groups)
}

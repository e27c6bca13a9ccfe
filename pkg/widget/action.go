package widget

import "github.com/viewy-dev/viewy/pkg/node"

type actionKind uint8

const (
	actionNavigate actionKind = iota
	actionOpenPopup
	actionOpenPopover
	actionCloseParentWindow
	actionSubmitForm
)

// Action describes what the client script does when an event fires on a
// widget. Actions are written as data attributes read by app.js.
type Action struct {
	kind     actionKind
	url      string
	form     string
	controls bool
}

// Navigate turns the widget into a link to url.
func Navigate(url string) Action {
	return Action{kind: actionNavigate, url: url}
}

// OpenPopup loads url into a popup window.
func OpenPopup(url string, displayWindowControls bool) Action {
	return Action{kind: actionOpenPopup, url: url, controls: displayWindowControls}
}

// OpenPopover loads url into a popover anchored to the widget.
func OpenPopover(url string) Action {
	return Action{kind: actionOpenPopover, url: url}
}

// CloseParentWindow closes the popup or popover containing the widget.
func CloseParentWindow() Action {
	return Action{kind: actionCloseParentWindow}
}

// SubmitForm submits the form with the given id.
func SubmitForm(formID string) Action {
	return Action{kind: actionSubmitForm, form: formID}
}

// Apply writes the attributes for the action bound to event ("click",
// "dblclick", "change", ...).
func (a Action) Apply(event string, n *node.Node) {
	on := "data-v-on-" + event
	switch a.kind {
	case actionNavigate:
		n.SetTag("a")
		n.SetAttr("href", a.url)
	case actionOpenPopup:
		n.SetAttr(on, "open_popup").
			SetAttr("data-v-target-popup", "popup_"+shortID()).
			SetAttr("data-v-display-window-controls", boolString(a.controls)).
			SetAttr("data-v-url", a.url)
	case actionOpenPopover:
		n.SetAttr(on, "open_popover").
			SetAttr("data-v-target-popover", "popover_"+shortID()).
			SetAttr("data-v-url", a.url)
	case actionCloseParentWindow:
		n.SetAttr(on, "close_parent_window")
	case actionSubmitForm:
		n.SetAttr(on, "submit_form").
			SetAttr("data-v-form", a.form)
	}
}

func shortID() string {
	return node.NewID()[:8]
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Actionable binds actions to pointer and input events.
type Actionable[W any] struct{ mixin[W] }

// OnClick binds an action to the click event.
func (a *Actionable[W]) OnClick(action Action) W {
	action.Apply("click", a.n())
	return a.self()
}

// OnDoubleClick binds an action to the dblclick event.
func (a *Actionable[W]) OnDoubleClick(action Action) W {
	action.Apply("dblclick", a.n())
	return a.self()
}

// OnChange binds an action to the change event.
func (a *Actionable[W]) OnChange(action Action) W {
	action.Apply("change", a.n())
	return a.self()
}

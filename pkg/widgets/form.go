package widgets

import (
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// FormMethod is the HTTP method of a form submission.
type FormMethod uint8

const (
	FormGet FormMethod = iota
	FormPost
)

// Form groups inputs submitted to action. Inputs elsewhere in the page
// join it through their form attribute.
type Form struct {
	widget.Base[*Form]
	widget.Classable[*Form]
	widget.Attributable[*Form]
	widget.Appendable[*Form]
	widget.Paddingable[*Form]
	widget.Marginable[*Form]
	widget.Dimensionable[*Form]

	method FormMethod
	action string
}

// NewForm creates a form posting or getting action.
func NewForm(method FormMethod, action string) *Form {
	f := &Form{method: method, action: action}
	f.Init(f, "Form", node.New("form"),
		&f.Classable, &f.Attributable, &f.Appendable,
		&f.Paddingable, &f.Marginable, &f.Dimensionable,
	)
	return f
}

func (f *Form) Render() {
	n := f.Node()
	// GET is the browser default and needs no attribute.
	if f.method == FormPost {
		n.SetAttr("method", "POST")
	}
	n.AddClass("form").SetAttr("action", f.action)
}

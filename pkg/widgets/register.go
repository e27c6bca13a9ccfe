package widgets

import (
	"embed"

	"github.com/viewy-dev/viewy/pkg/widget"
)

//go:embed styles/*.scss
var styles embed.FS

// registered lists the widget stylesheets in bundle order. Names are the
// registry keys; each has a styles/<file>.scss.
var registered = []struct{ name, file string }{
	{"Stack", "stack"},
	{"Text", "text"},
	{"Card", "card"},
	{"Icon", "icon"},
	{"Button", "button"},
	{"Form", "form"},
	{"Popover", "popover"},
	{"Popup", "popup"},
	{"Picker", "picker"},
	{"Select", "select"},
	{"TabContainer", "tabs"},
}

func init() {
	for _, r := range registered {
		data, err := styles.ReadFile("styles/" + r.file + ".scss")
		if err != nil {
			panic("widgets: missing stylesheet " + r.file)
		}
		widget.Register(widget.Registration{Name: r.name, Style: string(data)})
	}
}

package widgets

import (
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// Tab is one entry of a TabContainer. Its content is loaded from URL in
// ContentOnly mode when the tab is selected.
type Tab struct {
	Label string
	URL   string
}

// TabContainer shows a row of tabs above a content panel.
type TabContainer struct {
	widget.Base[*TabContainer]
	widget.Classable[*TabContainer]
	widget.Attributable[*TabContainer]
	widget.Marginable[*TabContainer]
	widget.Dimensionable[*TabContainer]

	tabs        []Tab
	keepMounted bool
}

// NewTabContainer creates a container without tabs.
func NewTabContainer() *TabContainer {
	t := &TabContainer{}
	t.Init(t, "TabContainer", node.Default(),
		&t.Classable, &t.Attributable, &t.Marginable, &t.Dimensionable,
	)
	return t
}

// AddTab appends a tab.
func (t *TabContainer) AddTab(label, url string) *TabContainer {
	t.tabs = append(t.tabs, Tab{Label: label, URL: url})
	return t
}

// KeepContentMounted keeps the content of visited tabs in the page
// instead of reloading it.
func (t *TabContainer) KeepContentMounted() *TabContainer {
	t.keepMounted = true
	return t
}

func (t *TabContainer) Render() {
	n := t.Node().AddClass("tab-container")
	if t.keepMounted {
		n.SetAttr("data-keep-content-mounted", "true")
	}

	buttons := node.Default().AddClass("tab-container__button-container")
	for _, tab := range t.tabs {
		buttons.AppendChild(node.New("button").
			AddClass("tab-container__button-container__tab").
			SetAttr("data-v-url", tab.URL).
			SetText(node.EscapeText(tab.Label)))
	}
	n.AppendChild(buttons).
		AppendChild(node.Default().AddClass("tab-container__tab-content"))
}

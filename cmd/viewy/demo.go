package main

import (
	"net/http"

	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/icons/lucide"
	"github.com/viewy-dev/viewy/pkg/node"
	"github.com/viewy-dev/viewy/pkg/page"
	"github.com/viewy-dev/viewy/pkg/widget"
	"github.com/viewy-dev/viewy/pkg/widgets"
)

// The demo site served by "viewy serve" and printed by "viewy render".

const (
	demoOverviewURL = "/demo/overview"
	demoFormsURL    = "/demo/forms"
	demoDialogURL   = "/demo/dialog"
)

// demoLayout frames content with the navigation bar.
func demoLayout(cfg *config.Config) page.Layout {
	return func(content *node.Node) *node.Node {
		menu := widgets.NewPopover().
			Placement(widgets.PlacementBottomEnd).
			AppendChild(widgets.NewVStack(widgets.AlignStretch).
				Gap(4).
				AppendChild(widgets.NewButton("Overview", widgets.ButtonFlat).OnClick(widget.Navigate("/"))).
				AppendChild(widgets.NewButton("About", widgets.ButtonFlat).OnClick(widget.OpenPopup(demoDialogURL, true))))

		bar := widgets.NewHStack(widgets.AlignCenter).
			Gap(12).
			JustifyContent("space-between").
			Padding(12, 24).
			StickyToTop(0).
			AppendChild(widgets.NewText(cfg.App.Name, widgets.TextH3)).
			AppendChild(widgets.NewButton("", widgets.ButtonFlat).Icon(lucide.Menu).Popover(menu))

		return widgets.NewVStack(widgets.AlignStretch).
			AppendChild(bar).
			AppendChild(widgets.NewView().Padding(24).MaxWidth("60rem").AppendChild(content)).
			ToNode()
	}
}

// demoHome is the landing page content.
func demoHome() node.Noder {
	tabs := widgets.NewTabContainer().
		AddTab("Overview", demoOverviewURL).
		AddTab("Forms", demoFormsURL).
		KeepContentMounted()

	return widgets.NewVStack(widgets.AlignStretch).
		Gap(24).
		AppendChild(widgets.NewText("Widgets", widgets.TextLargeTitle)).
		AppendChild(widgets.NewText("Everything on this page is rendered on the server.", widgets.TextBody)).
		AppendChild(tabs)
}

func demoOverview() node.Noder {
	return widgets.NewHStack(widgets.AlignStart).
		Gap(16).
		FlexWrap().
		AppendChild(demoCard("Outlined", widgets.CardOutlined)).
		AppendChild(demoCard("Filled", widgets.CardFilled)).
		AppendChild(demoCard("Raised", widgets.CardFilledRaised))
}

func demoCard(title string, style widgets.CardStyle) *widgets.Card {
	return widgets.NewCard(style).
		Padding(16).
		MinWidth("12rem").
		AppendChild(widgets.NewVStack(widgets.AlignStart).
			Gap(8).
			AppendChild(widgets.NewText(title, widgets.TextH3)).
			AppendChild(widgets.NewButton("Open", widgets.ButtonFilled).Icon(lucide.ChevronRight).Reverse().
				OnClick(widget.OpenPopup(demoDialogURL, true))))
}

func demoForms() node.Noder {
	form := widgets.NewForm(widgets.FormGet, "/").ID("search")

	size := widgets.NewPicker("size", "m", widgets.PickerSegmented).
		Label("Size").
		AttachToForm("search").
		AppendOption(widgets.NewPickerOption("Small", "s")).
		AppendOption(widgets.NewPickerOption("Medium", "m")).
		AppendOption(widgets.NewPickerOption("Large", "l"))

	fruit := widgets.NewSelect("fruit", "").
		Label("Fruit").
		AttachToForm("search").
		AppendGroup("Citrus",
			widgets.NewSelectOption("Lemon", "lemon"),
			widgets.NewSelectOption("Orange", "orange"),
		).
		AppendOption(widgets.NewSelectOption("Apple", "apple"))

	return form.AppendChild(widgets.NewVStack(widgets.AlignStart).
		Gap(16).
		AppendChild(size).
		AppendChild(fruit).
		AppendChild(widgets.NewButton("Search", widgets.ButtonFilled).Icon(lucide.Search).AttachToForm("search")))
}

func demoDialog() node.Noder {
	return widgets.NewVStack(widgets.AlignStart).
		Gap(12).
		Padding(16).
		AppendChild(widgets.NewText("About", widgets.TextH2)).
		AppendChild(widgets.NewText("A Viewy demo.", widgets.TextBody)).
		AppendChild(widgets.NewButton("Close", widgets.ButtonOutlined).OnClick(widget.CloseParentWindow()))
}

// demoRoute is one page of the demo site.
type demoRoute struct {
	path    string
	title   string
	content func() node.Noder
}

var demoRoutes = []demoRoute{
	{"/", "Home", demoHome},
	{demoOverviewURL, "Overview", demoOverview},
	{demoFormsURL, "Forms", demoForms},
	{demoDialogURL, "About", demoDialog},
}

// demoPage builds the page of route for the configuration returned by cfg.
func demoPage(cfg func() *config.Config, route demoRoute) func(*http.Request) *page.Page {
	return func(*http.Request) *page.Page {
		c := cfg()
		return page.WithTitle(route.title + " · " + c.App.Name).
			WithConfig(c).
			WithLayout(demoLayout(c)).
			WithContent(route.content())
	}
}

// Package widgets is the catalog of ready-made Viewy widgets.
//
// Every widget is built with a constructor, configured through chainable
// modifiers and converted to a node by the page:
//
//	widgets.NewVStack(widgets.AlignStretch).
//		Gap(12).
//		AppendChild(widgets.NewText("Settings", widgets.TextH1)).
//		AppendChild(widgets.NewButton("Save", widgets.ButtonFilled).AttachToForm("settings"))
//
// Importing the package registers the stylesheet of each widget with the
// default widget registry, so the asset compiler bundles it into app.css.
//
// Labels given to widgets are plain text and are escaped. Icons are drawn
// from the sprite the page builds from the icons referenced in the tree.
package widgets

// Package page composes a widget tree into an HTML response.
//
// A Page holds the content, an optional layout and the theme, and renders
// in one of three modes:
//
//	html := page.WithTitle("Home").
//		WithContent(widgets.NewButton("Save", widgets.ButtonFilled)).
//		WithLayout(shell).
//		Compile(page.Complete)
//
// Complete wraps the layouted content in the document skeleton. ContentOnly
// returns the bare content for partial updates. LayoutOnly renders the
// shell around a <!--VIEWY_CONTENT--> placeholder so it can be cached on
// its own.
//
// In every mode the icons referenced by the rendered tree are gathered into
// one sprite placed before the content, and overlays registered as root
// nodes are hoisted after it.
package page

// Package config loads the application and theme settings of a viewy
// project.
//
// Settings are layered: built-in defaults, then Viewy.toml, then
// viewy.toml, then VIEWY_* environment variables. A typical file:
//
//	[app]
//	name = "Viewy showcase"
//	favicons = [
//	    { rel = "shortcut icon", href = "/assets/favicon.svg" },
//	]
//
//	[colors]
//	accent = { light = "#0052cc", dark = "#3385ff" }
//	background = { light = "#ffffff", dark = "#121212" }
//
//	[shapes]
//	border-radius = 8
//	spacing-factor = 4
//
// Environment variables are split on "_" and matched against the TOML keys,
// so VIEWY_COLORS_ACCENT_LIGHT overrides colors.accent.light and
// VIEWY_SHAPES_BORDER-RADIUS (or VIEWY_SHAPES_BORDERRADIUS) overrides
// shapes.border-radius.
//
// Colors that cannot be parsed fall back to their default with a warning.
// Any other invalid value is reported as an error.
package config

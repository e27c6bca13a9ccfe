// Package theme derives the CSS palette of a viewy application from its
// configured colors.
package theme

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/viewy-dev/viewy/pkg/config"
)

// Theme selects the color scheme of a page.
type Theme uint8

const (
	Auto Theme = iota
	Light
	Dark
)

// String returns "auto", "light" or "dark".
func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "auto"
	}
}

// Parse reads a theme name, case-insensitively.
func Parse(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return Auto, true
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Auto, false
}

// ColorScheme returns the CSS color-scheme value of the theme.
func (t Theme) ColorScheme() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "light dark"
	}
}

// BodyClass returns the class put on <body> for the theme.
func (t Theme) BodyClass() string {
	return "app-themes--" + t.String()
}

// All returns every theme.
func All() []Theme {
	return []Theme{Auto, Light, Dark}
}

// =============================================================================
// Color helpers
// =============================================================================

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// toColorful drops the alpha channel.
func toColorful(h config.HexColor) colorful.Color {
	rgba := h.RGBA()
	return colorful.Color{
		R: float64(rgba[0]) / 255,
		G: float64(rgba[1]) / 255,
		B: float64(rgba[2]) / 255,
	}
}

// Luminance returns the relative luminance of the color in [0, 1].
func Luminance(h config.HexColor) float64 {
	r, g, b := toColorful(h).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastColor returns opaque black for light colors and opaque white for
// dark ones.
func ContrastColor(h config.HexColor) config.HexColor {
	if Luminance(h) > 0.5 {
		return "#000000ff"
	}
	return "#ffffffff"
}

// HardenColor flattens a translucent color onto white and returns the
// opaque "#rrggbb" result.
func HardenColor(h config.HexColor) string {
	alpha := h.Alpha()
	return toColorful(h).BlendRgb(white, 1-alpha).Clamped().Hex()
}

// blend mixes two colors in RGB and returns "#rrggbb".
func blend(a, b config.HexColor, t float64) config.HexColor {
	return config.HexColor(toColorful(a).BlendRgb(toColorful(b), t).Clamped().Hex())
}

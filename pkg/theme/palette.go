package theme

import (
	"strings"

	"github.com/viewy-dev/viewy/pkg/config"
)

// Token is a CSS custom property with a value per scheme.
type Token struct {
	Name  string
	Light config.HexColor
	Dark  config.HexColor
}

// Value returns the light-dark() expression of the token.
func (t Token) Value() string {
	return "light-dark(" + t.Light.String() + ", " + t.Dark.String() + ")"
}

// scheme holds the configured colors of one side of the palette.
type scheme struct {
	accent, background, surface, destructive, success, warning config.HexColor
}

// derive computes the tokens of one scheme, in palette order.
func (s scheme) derive() []config.HexColor {
	onSurface := ContrastColor(s.surface)
	surfaceDim := blend(s.surface, "#000000", 0.05)
	surfaceBright := blend(s.surface, "#ffffff", 0.05)

	return []config.HexColor{
		s.accent,
		ContrastColor(s.accent),
		s.background,
		ContrastColor(s.background),
		surfaceDim,
		s.surface,
		surfaceBright,
		onSurface,
		blend(surfaceDim, s.accent, 0.12),
		blend(s.surface, s.accent, 0.12),
		blend(surfaceBright, s.accent, 0.12),
		blend(s.surface, onSurface, 0.12),
		s.success,
		blend(s.background, s.success, 0.15),
		s.destructive,
		blend(s.background, s.destructive, 0.15),
		s.warning,
		blend(s.background, s.warning, 0.15),
	}
}

// tokenNames lists the palette custom properties.
var tokenNames = []string{
	"--accent",
	"--on-accent",
	"--background",
	"--on-background",
	"--surface-dim",
	"--surface",
	"--surface-bright",
	"--on-surface",
	"--accentuated-surface-dim",
	"--accentuated-surface",
	"--accentuated-surface-bright",
	"--border",
	"--success",
	"--success-surface",
	"--destructive",
	"--destructive-surface",
	"--warning",
	"--warning-surface",
}

// Palette derives the palette tokens from the configured colors.
func Palette(colors config.Colors) []Token {
	light := scheme{
		accent:      colors.Accent.Light,
		background:  colors.Background.Light,
		surface:     colors.Surface.Light,
		destructive: colors.Destructive.Light,
		success:     colors.Success.Light,
		warning:     colors.Warning.Light,
	}.derive()
	dark := scheme{
		accent:      colors.Accent.Dark,
		background:  colors.Background.Dark,
		surface:     colors.Surface.Dark,
		destructive: colors.Destructive.Dark,
		success:     colors.Success.Dark,
		warning:     colors.Warning.Dark,
	}.derive()

	tokens := make([]Token, len(tokenNames))
	for i, name := range tokenNames {
		tokens[i] = Token{Name: name, Light: light[i], Dark: dark[i]}
	}
	return tokens
}

// PaletteCSS returns the :root rule declaring the palette for the default
// theme, followed by one rule per body theme class that pins the scheme.
func PaletteCSS(colors config.Colors, def Theme) string {
	var b strings.Builder
	b.WriteString(":root {\n  color-scheme: ")
	b.WriteString(def.ColorScheme())
	b.WriteString(";\n")
	for _, t := range Palette(colors) {
		b.WriteString("  ")
		b.WriteString(t.Name)
		b.WriteString(": ")
		b.WriteString(t.Value())
		b.WriteString(";\n")
	}
	b.WriteString("}\n")

	for _, t := range All() {
		b.WriteString(".")
		b.WriteString(t.BodyClass())
		b.WriteString(" {\n  color-scheme: ")
		b.WriteString(t.ColorScheme())
		b.WriteString(";\n}\n")
	}
	return b.String()
}

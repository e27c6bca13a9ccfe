package theme

import (
	"strings"
	"testing"

	"github.com/viewy-dev/viewy/pkg/config"
)

func TestThemeStrings(t *testing.T) {
	tests := []struct {
		theme  Theme
		name   string
		scheme string
		class  string
	}{
		{Auto, "auto", "light dark", "app-themes--auto"},
		{Light, "light", "light", "app-themes--light"},
		{Dark, "dark", "dark", "app-themes--dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.theme.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.theme.ColorScheme(); got != tt.scheme {
				t.Errorf("ColorScheme() = %q, want %q", got, tt.scheme)
			}
			if got := tt.theme.BodyClass(); got != tt.class {
				t.Errorf("BodyClass() = %q, want %q", got, tt.class)
			}
			parsed, ok := Parse(strings.ToUpper(tt.name))
			if !ok || parsed != tt.theme {
				t.Errorf("Parse(%q) = %v, %v", tt.name, parsed, ok)
			}
		})
	}

	if _, ok := Parse("sepia"); ok {
		t.Error("Parse(sepia) should fail")
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		in   config.HexColor
		want config.HexColor
	}{
		{"#ffffff", "#000000ff"},
		{"#000000", "#ffffffff"},
		{"#0052cc", "#ffffffff"},
		{"#3DA144", "#ffffffff"},
		{"#FFB073", "#000000ff"},
		{"#efefef", "#000000ff"},
		{"#121212", "#ffffffff"},
	}
	for _, tt := range tests {
		if got := ContrastColor(tt.in); got != tt.want {
			t.Errorf("ContrastColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLuminanceBounds(t *testing.T) {
	if l := Luminance("#000000"); l != 0 {
		t.Errorf("Luminance(black) = %v, want 0", l)
	}
	if l := Luminance("#ffffff"); l < 0.999 || l > 1.001 {
		t.Errorf("Luminance(white) = %v, want 1", l)
	}
}

func TestHardenColor(t *testing.T) {
	tests := []struct {
		in   config.HexColor
		want string
	}{
		{"#123456", "#123456"},
		{"#ff000080", "#ff7f7f"},
		{"#00000000", "#ffffff"},
	}
	for _, tt := range tests {
		if got := HardenColor(tt.in); got != tt.want {
			t.Errorf("HardenColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	tokens := Palette(config.DefaultColors())
	if len(tokens) != len(tokenNames) {
		t.Fatalf("len(Palette()) = %d, want %d", len(tokens), len(tokenNames))
	}

	byName := make(map[string]Token, len(tokens))
	for _, tok := range tokens {
		byName[tok.Name] = tok
		if !tok.Light.Valid() || !tok.Dark.Valid() {
			t.Errorf("token %s has an invalid color: %+v", tok.Name, tok)
		}
	}

	accent := byName["--accent"]
	if got := accent.Value(); got != "light-dark(#0052ccff, #3385ffff)" {
		t.Errorf("--accent = %q", got)
	}
	if got := byName["--on-background"].Light; got != "#000000ff" {
		t.Errorf("--on-background light = %q, want black", got)
	}
	if got := byName["--on-background"].Dark; got != "#ffffffff" {
		t.Errorf("--on-background dark = %q, want white", got)
	}
}

func TestPaletteCSS(t *testing.T) {
	css := PaletteCSS(config.DefaultColors(), Auto)

	for _, want := range []string{
		":root {\n  color-scheme: light dark;\n",
		"  --accent: light-dark(#0052ccff, #3385ffff);\n",
		"  --warning-surface: light-dark(",
		".app-themes--light {\n  color-scheme: light;\n}\n",
		".app-themes--dark {\n  color-scheme: dark;\n}\n",
		".app-themes--auto {\n  color-scheme: light dark;\n}\n",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("PaletteCSS missing %q in:\n%s", want, css)
		}
	}

	if !strings.HasPrefix(PaletteCSS(config.DefaultColors(), Dark), ":root {\n  color-scheme: dark;") {
		t.Error("default theme should set the root color scheme")
	}
}

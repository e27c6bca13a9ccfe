package assets

import (
	"embed"
	"strconv"
	"strings"

	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/theme"
	"github.com/viewy-dev/viewy/pkg/widget"
)

//go:embed styles/*.scss scripts/*.js
var fragments embed.FS

// Built-in stylesheet fragments, in output order.
var builtinStyles = []string{
	"luminance",
	"sizing",
	"typography",
	"commons",
	"view",
}

// Built-in script fragments, in output order. index must come first: it
// declares the action dispatcher the others register with.
var builtinScripts = []string{
	"index",
	"popover",
	"popup",
	"form",
	"menu",
	"table",
	"file-input",
	"picker",
	"tabs",
	"select",
}

func fragment(path string) string {
	data, err := fragments.ReadFile(path)
	if err != nil {
		panic("assets: missing embedded fragment " + path)
	}
	return string(data)
}

// Header returns the SCSS prelude declaring the configuration variables
// and the sp and scale functions.
func Header(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString("@use \"sass:math\";\n@use \"sass:color\";\n\n")

	b.WriteString("$border-radius: " + widget.Sp(cfg.Shapes.BorderRadius) + ";\n")
	b.WriteString("$spacing-factor: " + strconv.Itoa(cfg.Shapes.SpacingFactor) + ";\n")

	for _, role := range cfg.Colors.Roles() {
		light := config.HexColor(theme.HardenColor(role.Color.Light))
		dark := config.HexColor(theme.HardenColor(role.Color.Dark))
		b.WriteString("$" + role.Name + "-light: " + light.Hex() + ";\n")
		b.WriteString("$" + role.Name + "-dark: " + dark.Hex() + ";\n")
		b.WriteString("$on-" + role.Name + "-light: " + theme.ContrastColor(light).Hex() + ";\n")
		b.WriteString("$on-" + role.Name + "-dark: " + theme.ContrastColor(dark).Hex() + ";\n")
	}

	b.WriteString(`
@function sp($px) {
  @return math.div($px, 16) * 1rem;
}

@function scale($k) {
  @return math.div(math.ceil(math.pow($k, math.sqrt($spacing-factor))), 16) * 1rem;
}
`)
	return b.String()
}

// StylesheetSource concatenates the SCSS fragments in compilation order:
// header, palette, built-ins, then each registration.
func StylesheetSource(cfg *config.Config, regs []widget.Registration) string {
	var b strings.Builder
	b.WriteString(Header(cfg))
	b.WriteString("\n")
	b.WriteString(theme.PaletteCSS(cfg.Colors, theme.Auto))
	for _, name := range builtinStyles {
		b.WriteString("\n")
		b.WriteString(fragment("styles/" + name + ".scss"))
	}
	for _, reg := range regs {
		if reg.Style == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(reg.Style)
	}
	return b.String()
}

// ScriptSource concatenates the built-in scripts and the registration
// scripts.
func ScriptSource(regs []widget.Registration) string {
	var b strings.Builder
	for _, name := range builtinScripts {
		b.WriteString(fragment("scripts/" + name + ".js"))
		b.WriteString("\n")
	}
	for _, reg := range regs {
		if reg.Script == "" {
			continue
		}
		b.WriteString(reg.Script)
		b.WriteString("\n")
	}
	return b.String()
}

package config

import (
	"encoding/hex"
	"strings"
)

const (
	// FileName is the preferred configuration file name.
	FileName = "viewy.toml"

	// LegacyIconsFileName holds icon packs in older projects.
	LegacyIconsFileName = "viewy-icons.toml"

	// EnvPrefix starts every environment override.
	EnvPrefix = "VIEWY_"

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultOutput is the default asset output directory.
	DefaultOutput = "dist"
)

// FileNames lists the configuration files in the order they are merged.
var FileNames = []string{"Viewy.toml", FileName}

// Config is the complete viewy.toml configuration.
type Config struct {
	App    App    `toml:"app"`
	Colors Colors `toml:"colors"`
	Shapes Shapes `toml:"shapes"`
	Server Server `toml:"server"`
	Assets Assets `toml:"assets"`

	// dir is the directory the configuration was loaded from.
	dir string

	// files are the files that contributed, in merge order.
	files []string
}

// App holds general application settings.
type App struct {
	Name     string    `toml:"name" validate:"required"`
	Favicons []Favicon `toml:"favicons" validate:"dive"`
}

// Favicon is a <link> emitted in the page head.
type Favicon struct {
	Rel  string `toml:"rel" validate:"required"`
	Href string `toml:"href" validate:"required"`
}

// Colors holds the semantic palette.
type Colors struct {
	Accent      ThemedColor `toml:"accent"`
	Background  ThemedColor `toml:"background"`
	Surface     ThemedColor `toml:"surface"`
	Destructive ThemedColor `toml:"destructive"`
	Success     ThemedColor `toml:"success"`
	Warning     ThemedColor `toml:"warning"`
}

// Role is a named palette entry.
type Role struct {
	Name  string
	Color *ThemedColor
}

// Roles returns the palette entries in declaration order.
func (c *Colors) Roles() []Role {
	return []Role{
		{"accent", &c.Accent},
		{"background", &c.Background},
		{"surface", &c.Surface},
		{"destructive", &c.Destructive},
		{"success", &c.Success},
		{"warning", &c.Warning},
	}
}

// ThemedColor is a color with a light and a dark variant.
type ThemedColor struct {
	Light HexColor `toml:"light" validate:"hexcolor8"`
	Dark  HexColor `toml:"dark" validate:"hexcolor8"`
}

// Shapes holds the geometry of the theme.
type Shapes struct {
	BorderRadius  int `toml:"border-radius" validate:"gte=0,lte=64"`
	SpacingFactor int `toml:"spacing-factor" validate:"gte=1,lte=16"`
}

// Server holds development server settings.
type Server struct {
	Host string `toml:"host"`
	Port int    `toml:"port" validate:"gte=0,lte=65535"`
}

// Assets holds asset build and publish settings.
type Assets struct {
	Output string `toml:"output"`
	Bucket string `toml:"bucket"`
	Prefix string `toml:"prefix"`
	Region string `toml:"region"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App: App{
			Name: "My Viewy App",
		},
		Colors: DefaultColors(),
		Shapes: Shapes{
			BorderRadius:  8,
			SpacingFactor: 4,
		},
		Server: Server{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Assets: Assets{
			Output: DefaultOutput,
		},
	}
}

// DefaultColors returns the built-in palette.
func DefaultColors() Colors {
	return Colors{
		Accent:      ThemedColor{Light: "#0052cc", Dark: "#3385ff"},
		Background:  ThemedColor{Light: "#ffffff", Dark: "#121212"},
		Surface:     ThemedColor{Light: "#efefef", Dark: "#181818"},
		Destructive: ThemedColor{Light: "#C70039", Dark: "#ff0048"},
		Success:     ThemedColor{Light: "#3DA144", Dark: "#3DA144"},
		Warning:     ThemedColor{Light: "#DF7B5E", Dark: "#FFB073"},
	}
}

// Dir returns the directory the configuration was loaded from.
func (c *Config) Dir() string {
	return c.dir
}

// Files returns the files that contributed to the configuration.
func (c *Config) Files() []string {
	return append([]string(nil), c.files...)
}

// =============================================================================
// HexColor
// =============================================================================

// HexColor is a color written as "#rrggbb" or "#rrggbbaa". Short values are
// padded with "f", so "#000" reads as "#000fffff".
type HexColor string

// RGBA returns the color components. An unparsable color is all zeros.
func (h HexColor) RGBA() [4]uint8 {
	var out [4]uint8
	s := strings.ReplaceAll(strings.TrimSpace(string(h)), "#", "")
	if len(s) < 8 {
		s += strings.Repeat("f", 8-len(s))
	}
	if len(s) != 8 {
		return out
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return out
	}
	copy(out[:], b)
	return out
}

// Valid reports whether the color parses.
func (h HexColor) Valid() bool {
	s := strings.ReplaceAll(strings.TrimSpace(string(h)), "#", "")
	if s == "" || len(s) > 8 {
		return false
	}
	s += strings.Repeat("f", 8-len(s))
	_, err := hex.DecodeString(s)
	return err == nil
}

// String returns the normalized "#rrggbbaa" form.
func (h HexColor) String() string {
	rgba := h.RGBA()
	return "#" + hex.EncodeToString(rgba[:])
}

// Hex returns the normalized "#rrggbb" form without alpha.
func (h HexColor) Hex() string {
	rgba := h.RGBA()
	return "#" + hex.EncodeToString(rgba[:3])
}

// Alpha returns the alpha component in [0, 1].
func (h HexColor) Alpha() float64 {
	return float64(h.RGBA()[3]) / 255
}

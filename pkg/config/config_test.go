package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewy-dev/viewy/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "My Viewy App", cfg.App.Name)
	assert.Equal(t, 8, cfg.Shapes.BorderRadius)
	assert.Equal(t, 4, cfg.Shapes.SpacingFactor)
	assert.Equal(t, HexColor("#0052cc"), cfg.Colors.Accent.Light)
	assert.Equal(t, HexColor("#3385ff"), cfg.Colors.Accent.Dark)
	assert.Equal(t, HexColor("#DF7B5E"), cfg.Colors.Warning.Light)
	assert.Equal(t, HexColor("#FFB073"), cfg.Colors.Warning.Dark)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFiles(t *testing.T) {
	cfg, err := load(t.TempDir(), nil)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.App, cfg.App)
	assert.Equal(t, want.Colors, cfg.Colors)
	assert.Equal(t, want.Shapes, cfg.Shapes)
	assert.Empty(t, cfg.Files())
}

func TestLoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Viewy.toml", `
[app]
name = "Showcase"
favicons = [
    { rel = "shortcut icon", href = "/assets/favicon.svg" },
]

[shapes]
border-radius = 4
`)
	writeFile(t, dir, "viewy.toml", `
[colors]
accent = { light = "#112233" }

[shapes]
spacing-factor = 6
`)

	cfg, err := load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "Showcase", cfg.App.Name)
	assert.Equal(t, []Favicon{{Rel: "shortcut icon", Href: "/assets/favicon.svg"}}, cfg.App.Favicons)
	assert.Equal(t, 4, cfg.Shapes.BorderRadius)
	assert.Equal(t, 6, cfg.Shapes.SpacingFactor)
	assert.Equal(t, HexColor("#112233"), cfg.Colors.Accent.Light)
	assert.Equal(t, HexColor("#3385ff"), cfg.Colors.Accent.Dark, "keys absent from the file keep their default")
	assert.Len(t, cfg.Files(), 2)
	assert.Equal(t, dir, cfg.Dir())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   []string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "app name",
			env:  []string{"VIEWY_APP_NAME=From env"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "From env", cfg.App.Name)
			},
		},
		{
			name: "nested color",
			env:  []string{"VIEWY_COLORS_ACCENT_LIGHT=#abcdef"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, HexColor("#abcdef"), cfg.Colors.Accent.Light)
			},
		},
		{
			name: "dashed key",
			env:  []string{"VIEWY_SHAPES_BORDER-RADIUS=12"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 12, cfg.Shapes.BorderRadius)
			},
		},
		{
			name: "dashed key written without dash",
			env:  []string{"VIEWY_SHAPES_SPACINGFACTOR=2"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2, cfg.Shapes.SpacingFactor)
			},
		},
		{
			name: "unknown keys and other variables are ignored",
			env:  []string{"VIEWY_NOPE=1", "HOME=/root", "VIEWY_APP_UNKNOWN_DEEP=x"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "My Viewy App", cfg.App.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load(t.TempDir(), tt.env)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadEnvironmentWinsOverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "viewy.toml", "[server]\nport = 4000\n")

	cfg, err := load(dir, []string{"VIEWY_SERVER_PORT=5000"})
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoadEnvironmentErrors(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"not a number", "VIEWY_SHAPES_BORDER-RADIUS=round"},
		{"not a scalar", "VIEWY_APP_FAVICONS=x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t.TempDir(), []string{tt.env})
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, "E104"), "got %v", err)
		})
	}
}

func TestInvalidColorFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "viewy.toml", `
[colors]
surface = { light = "not a color", dark = "#202020" }
`)

	cfg, err := load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, HexColor("#efefef"), cfg.Colors.Surface.Light)
	assert.Equal(t, HexColor("#202020"), cfg.Colors.Surface.Dark)
}

func TestLoadValidationError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "viewy.toml", "[shapes]\nspacing-factor = 0\n")

	_, err := load(dir, nil)
	require.Error(t, err)
	require.True(t, errors.HasCode(err, "E103"), "got %v", err)

	var ve *errors.ViewyError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "shapes.spacing-factor", ve.Fields["key"])
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "viewy.toml", "[app]\nname = \n")

	_, err := load(dir, nil)
	require.Error(t, err)
	require.True(t, errors.HasCode(err, "E102"), "got %v", err)

	var ve *errors.ViewyError
	require.ErrorAs(t, err, &ve)
	require.NotNil(t, ve.Location)
	assert.Equal(t, path, ve.Location.File)
	assert.Greater(t, ve.Location.Line, 0)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "[app]\nname = \"Custom\"\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.App.Name)
	assert.Equal(t, []string{path}, cfg.Files())

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.HasCode(err, "E101"), "got %v", err)
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, root, LegacyIconsFileName, "[icons]\n")

	got, ok := FindRoot(nested)
	require.True(t, ok)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in        HexColor
		wantValid bool
		wantRGBA  [4]uint8
		wantStr   string
	}{
		{"#0052cc", true, [4]uint8{0x00, 0x52, 0xcc, 0xff}, "#0052ccff"},
		{"#C70039 ", true, [4]uint8{0xc7, 0x00, 0x39, 0xff}, "#c70039ff"},
		{"#11223344", true, [4]uint8{0x11, 0x22, 0x33, 0x44}, "#11223344"},
		{"#000", true, [4]uint8{0x00, 0x0f, 0xff, 0xff}, "#000fffff"},
		{"zzz", false, [4]uint8{}, "#00000000"},
		{"#1122334455", false, [4]uint8{}, "#00000000"},
		{"", false, [4]uint8{0xff, 0xff, 0xff, 0xff}, "#ffffffff"},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.wantValid, tt.in.Valid())
			if diff := cmp.Diff(tt.wantRGBA, tt.in.RGBA()); diff != "" {
				t.Errorf("RGBA() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantStr, tt.in.String())
		})
	}

	assert.Equal(t, "#0052cc", HexColor("#0052CC80").Hex())
	assert.InDelta(t, 128.0/255, HexColor("#0052cc80").Alpha(), 1e-9)
}

func TestRoles(t *testing.T) {
	colors := DefaultColors()
	var names []string
	for _, r := range colors.Roles() {
		names = append(names, r.Name)
	}
	want := []string{"accent", "background", "surface", "destructive", "success", "warning"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Roles() mismatch (-want +got):\n%s", diff)
	}

	colors.Roles()[0].Color.Light = "#000000"
	assert.Equal(t, HexColor("#000000"), colors.Accent.Light, "roles point into the palette")
}

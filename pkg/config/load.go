package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/internal/logger"
)

// Load merges the defaults, the configuration files in dir and the process
// environment.
func Load(dir string) (*Config, error) {
	return load(dir, os.Environ())
}

func load(dir string, environ []string) (*Config, error) {
	cfg := Default()
	cfg.dir = dir

	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		found, err := DecodeFile(path, cfg)
		if err != nil {
			return nil, err
		}
		if found {
			cfg.files = append(cfg.files, path)
		}
	}

	if err := applyEnv(cfg, environ); err != nil {
		return nil, err
	}

	cfg.sanitizeColors()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads a single configuration file over the defaults. Environment
// overrides are not applied.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.dir = filepath.Dir(path)

	found, err := DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("E101").
			WithField("path", path).
			Wrap(fs.ErrNotExist)
	}
	cfg.files = []string{path}

	cfg.sanitizeColors()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeFile decodes the TOML file at path into v. Keys absent from the
// file leave v untouched. A missing file is not an error and reports false.
func DecodeFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.New("E101").WithField("path", path).Wrap(err)
	}

	if _, err := toml.Decode(string(data), v); err != nil {
		ve := errors.New("E102").WithField("path", path).Wrap(err)
		var perr toml.ParseError
		if stderrors.As(err, &perr) && perr.Position.Line > 0 {
			ve.WithLocation(path, perr.Position.Line, 0)
			ve.WithDetail(perr.Message)
		}
		return true, ve
	}
	return true, nil
}

// FindRoot walks up from start to the nearest directory holding one of the
// configuration files. When none is found, start is returned with false.
func FindRoot(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return start, false
	}
	names := append(append([]string(nil), FileNames...), LegacyIconsFileName)
	for {
		for _, name := range names {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, false
		}
		dir = parent
	}
}

// sanitizeColors replaces unparsable colors with their defaults.
func (c *Config) sanitizeColors() {
	defaults := DefaultColors()
	fallback := defaults.Roles()
	for i, role := range c.Colors.Roles() {
		def := fallback[i].Color
		if !role.Color.Light.Valid() {
			warnColor(role.Name+".light", role.Color.Light, def.Light)
			role.Color.Light = def.Light
		}
		if !role.Color.Dark.Valid() {
			warnColor(role.Name+".dark", role.Color.Dark, def.Dark)
			role.Color.Dark = def.Dark
		}
	}
}

func warnColor(key string, got, def HexColor) {
	logger.Default().
		WithFields(map[string]any{"key": "colors." + key, "value": string(got), "default": string(def)}).
		Warn(nil, "invalid color, using default")
}

// =============================================================================
// Environment overrides
// =============================================================================

// applyEnv applies VIEWY_* variables. Variables that match no key are
// ignored.
func applyEnv(cfg *Config, environ []string) error {
	root := reflect.ValueOf(cfg).Elem()
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		path := strings.Split(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_")
		if err := setPath(root, path, value); err != nil {
			return errors.New("E104").
				WithField("variable", key).
				WithSuggestion("Only text, number and boolean settings can be set from the environment").
				Wrap(err)
		}
	}
	return nil
}

func setPath(v reflect.Value, path []string, value string) error {
	if len(path) == 0 {
		return setScalar(v, value)
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	field, ok := fieldByKey(v, path[0])
	if !ok {
		return nil
	}
	return setPath(field, path[1:], value)
}

// fieldByKey finds the field whose TOML key is key, ignoring dashes.
func fieldByKey(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			continue
		}
		if name == key || strings.ReplaceAll(name, "-", "") == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func setScalar(v reflect.Value, value string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("cannot set %s from a string", v.Type())
	}
	return nil
}

package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/viewy-dev/viewy/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator, configured to report TOML
// key names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(sf reflect.StructField) string {
			name, _, _ := strings.Cut(sf.Tag.Get("toml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("hexcolor8", func(fl validator.FieldLevel) bool {
			return HexColor(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		key := tomlKey(fe)
		return errors.New("E103").
			WithField("key", key).
			WithDetail(key + " failed the '" + fe.Tag() + "' rule").
			Wrap(err)
	}
	return errors.New("E103").Wrap(err)
}

// tomlKey turns "Config.shapes.border-radius" into "shapes.border-radius".
func tomlKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

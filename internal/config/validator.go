package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
	shoperrors "github.com/alexisbeaulieu97/cookieshop/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return catalog.Category(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, err := theme.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a configuration against its schema.
func Validate(cfg *Config) error {
	if cfg == nil {
		return shoperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := toSnake(ve.StructField())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return shoperrors.NewValidationError(field, msg, err)
	}

	return shoperrors.NewValidationError("config", err.Error(), err)
}

// toSnake maps a Go field name such as "LogLevel" to its config key "log_level".
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

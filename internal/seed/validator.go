package seed

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
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

		_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
			price, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
			if err != nil {
				return false
			}
			return !price.IsNegative()
		})

		validateInst = v
	})

	return validateInst
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return shoperrors.NewValidationError(field, msg, err)
	}

	return shoperrors.NewValidationError("seed", err.Error(), err)
}

// yamlishFieldName turns "Document.Items[1].Price" into "items[1].price".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}

// Package validation checks domain structs against their `validate` tags
// and turns validator failures into one readable error.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
			return domain.Unit(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Struct validates v and wraps any failure in sentinel so callers can match
// it with errors.Is.
func Struct(v any, sentinel error) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return fmt.Errorf("%w: %s", sentinel, Describe(verrs))
}

// Describe flattens validation errors into "Field: rule" pairs.
func Describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s (got %v)", fe.Namespace(), rule, fe.Value()))
	}
	return strings.Join(parts, "; ")
}

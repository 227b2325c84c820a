package config

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	boarderrors "github.com/alexisbeaulieu97/bingoboard/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		// A card pattern is formatted with the card's index, so it needs exactly one %d verb.
		_ = v.RegisterValidation("card_pattern", func(fl validator.FieldLevel) bool {
			pattern := fl.Field().String()
			return strings.Count(pattern, "%d") == 1 && strings.Count(pattern, "%") == 1
		})

		validateInst = v
	})

	return validateInst
}

// Validator exposes the shared instance so hosts can validate their own input structs.
func Validator() *validator.Validate {
	return validatorInstance()
}

// Validate checks the configuration against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return boarderrors.NewValidationError("config", "configuration is nil", nil)
	}

	return ConvertValidationError(validatorInstance().Struct(cfg))
}

// ConvertValidationError turns validator output into a ValidationError naming
// the first offending field by its yaml path.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		return boarderrors.NewValidationError(field, describe(fe), err)
	}

	return boarderrors.NewValidationError("config", err.Error(), err)
}

func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "card_pattern":
		return "must contain exactly one %d verb"
	default:
		return "failed validation for tag '" + fe.Tag() + "'"
	}
}

package validator

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a struct field to a human-readable validation message.
type FieldErrors map[string]string

// String renders the messages sorted by field, so error text is
// deterministic.
func (fe FieldErrors) String() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors translates a Validate error into per-field messages. A non-nil
// error that is not a validation error yields an empty map.
func (v *Validator) FieldErrors(err error) FieldErrors {
	fieldErrors := make(FieldErrors)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				fieldErrors[e.Field()] = "is required"
			case "min":
				fieldErrors[e.Field()] = "must be at least " + e.Param() + " characters"
			case "max":
				fieldErrors[e.Field()] = "must be at most " + e.Param() + " characters"
			case "gte":
				fieldErrors[e.Field()] = "must be greater than or equal to " + e.Param()
			case "lte":
				fieldErrors[e.Field()] = "must be less than or equal to " + e.Param()
			case "oneof":
				fieldErrors[e.Field()] = "must be one of: " + e.Param()
			default:
				fieldErrors[e.Field()] = "is invalid"
			}
		}
	}

	return fieldErrors
}

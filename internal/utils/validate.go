package utils

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"clubmanager/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator checks request structs against their `validate` tags and
// reports failures as validation errors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

type ValidatorOption func(*validator.Validate)

// WithValuerTypes validates the given driver.Valuer types by their stored
// value, so a zero value counts as missing for `required`.
func WithValuerTypes(types ...any) ValidatorOption {
	return func(v *validator.Validate) {
		v.RegisterCustomTypeFunc(valuerValue, types...)
	}
}

// WithEnum registers tag as a validation accepting only the given values.
func WithEnum(tag string, values ...string) ValidatorOption {
	allowed := make(map[string]struct{}, len(values))
	for _, value := range values {
		allowed[value] = struct{}{}
	}
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			_, ok := allowed[fl.Field().String()]
			return ok
		})
	}
}

func NewValidator(opts ...ValidatorOption) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	for _, opt := range opts {
		opt(v)
	}

	return &Validator{validate: v}
}

func valuerValue(field reflect.Value) any {
	valuer, ok := field.Interface().(driver.Valuer)
	if !ok {
		return nil
	}
	value, err := valuer.Value()
	if err != nil {
		return nil
	}
	return value
}

func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok || d.IsZero() {
		return nil
	}
	return d.InexactFloat64()
}

// Struct validates s. The returned error is an *apperrors.Error of kind
// validation with one entry per failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Validation(err.Error(), nil)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = describe(fe)
	}

	return apperrors.Validation(summarize(fields), fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("is not a valid %s", fe.Tag())
	}
}

func summarize(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+fields[name])
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

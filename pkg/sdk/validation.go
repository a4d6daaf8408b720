package sdk

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON field names so details match the request body.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateStruct returns field name to reason, or nil when v is valid.
func validateStruct(v any) map[string]string {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"body": err.Error()}
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = reason(fe)
	}
	return details
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func (r CredentialsRequest) Validate() map[string]string      { return validateStruct(r) }
func (r UpdatePasswordRequest) Validate() map[string]string   { return validateStruct(r) }
func (r SearchByNameRequest) Validate() map[string]string     { return validateStruct(r) }
func (r SearchByYearRequest) Validate() map[string]string     { return validateStruct(r) }
func (r SearchByLanguageRequest) Validate() map[string]string { return validateStruct(r) }
func (r SearchByDirectorRequest) Validate() map[string]string { return validateStruct(r) }
func (r SearchByGenreRequest) Validate() map[string]string    { return validateStruct(r) }
func (r FavoriteRequest) Validate() map[string]string         { return validateStruct(r) }

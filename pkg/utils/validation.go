package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so errors match the wire contract
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct returns one message per failing field, in Spanish to match
// the API's user-facing language
func ValidateStruct(data interface{}) []string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []string
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors = append(errors, getErrorMessage(err))
		}
	}

	return errors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", err.Field())
	case "email":
		return fmt.Sprintf("El campo %s debe ser un correo electrónico válido", err.Field())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("El campo %s debe tener como máximo %s caracteres", err.Field(), err.Param())
	default:
		return fmt.Sprintf("El campo %s es inválido", err.Field())
	}
}

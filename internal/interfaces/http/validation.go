package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores usan el nombre JSON del campo (o el del query string), que es el que conoce el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("business_category", func(fl validator.FieldLevel) bool {
		return entity.IsValidBusinessCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("business_status", func(fl validator.FieldLevel) bool {
		return entity.IsValidBusinessStatus(fl.Field().String())
	})
	return v
}

// validateStruct aplica las etiquetas validate del DTO y devuelve un *domain.ValidationError
// con un mensaje por campo.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	verr := domain.NewValidationError()
	for _, fe := range ves {
		verr.Add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return verr.OrNil()
}

// fieldPath quita el nombre del struct raíz: "CreateBusinessRequest.location.state" -> "location.state".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "business_category":
		return "Category must be one of: " + strings.Join(entity.BusinessCategories, ", ")
	case "business_status":
		return "Status must be one of: " + strings.Join(entity.BusinessStatuses, ", ")
	}
	return "Invalid value"
}

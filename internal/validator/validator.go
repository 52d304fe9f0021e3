package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("ticket_type", validateTicketType)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

func validateTicketType(fl validator.FieldLevel) bool {
	ticketType, ok := fl.Field().Interface().(api.TicketType)
	if !ok {
		return false
	}

	return domain.TicketType(ticketType).Valid()
}

// FieldPath returns the JSON path of the failing field without the root struct name,
// e.g. tickets[0].count.
func FieldPath(err validator.FieldError) string {
	_, path, found := strings.Cut(err.Namespace(), ".")
	if !found {
		return err.Field()
	}

	return path
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "ticket_type":
		return "must be one of ADULT, CHILD or INFANT"
	default:
		return "is invalid"
	}
}

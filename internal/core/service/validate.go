package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// inputValidator is shared by all services. The validator caches struct
// metadata, so a single instance suffices.
var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	// "required" rejects the empty string but accepts whitespace; titles must
	// hold at least one non-space character.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// firstViolation validates form and converts the first violation into a
// field-attributed validation fault. Struct fields are checked in declaration
// order, so the field order of the form type is the reporting order. Returns
// nil when the form is valid.
func firstViolation(form any) error {
	err := inputValidator.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return domain.Validation(err.Error(), nil)
	}
	fe := ve[0]
	return domain.FieldViolation(strings.ToLower(fe.Field()), fieldMessage(fe))
}

// fieldMessage converts a single ValidationError into a human-readable
// message.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be %s characters or fewer", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

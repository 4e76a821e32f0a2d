// Package validation runs struct-tag validation and reports the first
// failing field with a client-facing message.
package validation

import (
	"errors"

	"catalog/pkg/httperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("nonzero_decimal", nonzeroDecimal)
	return v
}

// nonzeroDecimal fails a string field holding a zero decimal ("0", "0.00").
// Non-numeric text passes and is left to the numeric tag.
func nonzeroDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return true
	}
	return !d.IsZero()
}

// Messages maps "Field.tag" (struct field name, validator tag) to the message
// returned to the client.
type Messages map[string]string

// Struct validates req. Fields are checked in declaration order, so the order
// of the struct decides which message wins when several fields are invalid.
func Struct(req any, code string, messages Messages) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return httperror.InternalServerError(code+".validation_error", "Internal server error", err)
	}

	first := ve[0]
	message, ok := messages[first.StructField()+"."+first.Tag()]
	if !ok {
		message = "Validation failed for the request"
	}

	return httperror.BadRequest(code+".validation_failed", message, ve.Error())
}

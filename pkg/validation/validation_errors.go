package validation

import (
	"strings"

	"go-sirius-backend/pkg/i18n"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated rule, keyed by the JSON field name with a
// localized human-readable reason. The frontend renders these inline.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldMessageIDs maps struct field names to their localized reason strings.
var fieldMessageIDs = map[string]string{
	"Name":    "contact.form.nameError",
	"Email":   "contact.form.emailError",
	"Message": "contact.form.messageError",
	"Consent": "contact.form.consentError",
}

// FormatValidationErrors converts validator.ValidationErrors into one
// localized FieldError per violated field.
func FormatValidationErrors(err error, loc *i18n.Locale) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Malformed JSON or a type mismatch, not a rule violation
		return []FieldError{{Field: "", Message: loc.T("contact.form.invalid")}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		msg := loc.T("contact.form.invalid")
		if id, found := fieldMessageIDs[e.Field()]; found {
			msg = loc.T(id)
		}
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(e.Field()),
			Message: msg,
		})
	}
	return fieldErrors
}

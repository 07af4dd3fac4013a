package domain

import (
	"context"

	"go-sirius-backend/pkg/i18n"
)

// ContactRequest represents a contact form submission.
// Values are validated as received; no trimming happens before length checks.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,valid_name,no_emoji"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
	Consent bool   `json:"consent" binding:"eq=true"`
}

// DeliveryResult is the uniform outcome of one delivery attempt. Every
// failure mode collapses to this shape; Message is already localized.
type DeliveryResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage attempts exactly one delivery of a validated
	// submission. It always returns a result and never panics; failures
	// are logged server-side and reported generically.
	SendContactMessage(ctx context.Context, loc *i18n.Locale, req *ContactRequest) *DeliveryResult
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"go-sirius-backend/internal/domain"
	"go-sirius-backend/pkg/i18n"
	"go-sirius-backend/pkg/logger"
	"go-sirius-backend/pkg/mail"
)

type contactUsecase struct {
	mailer mail.Sender
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer mail.Sender) domain.ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
	}
}

// SendContactMessage guards the submission, fails fast on missing provider
// credentials and attempts exactly one delivery. Every outcome collapses to
// the two-field DeliveryResult; failure specifics only reach the server log.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, loc *i18n.Locale, req *domain.ContactRequest) *domain.DeliveryResult {
	// Guard against direct misuse; the HTTP boundary has already validated.
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return &domain.DeliveryResult{
			Success: false,
			Message: loc.T("contact.form.required"),
		}
	}

	// Credential fail-fast: refuse before any network activity.
	if !uc.mailer.IsConfigured() {
		logger.Log.Error("contact delivery refused: mail provider credentials are not configured")
		return &domain.DeliveryResult{
			Success: false,
			Message: loc.T("contact.form.serverError"),
		}
	}

	data := mail.ContactEmailData{
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: req.Email,
		Message:     req.Message,
	}

	if err := uc.mailer.SendContactEmail(ctx, data); err != nil {
		// Categories stay internal; the user sees one generic failure text.
		switch {
		case errors.Is(err, mail.ErrNotConfigured):
			logger.Log.Error("contact delivery failed: provider not configured", "error", err)
		case errors.Is(err, mail.ErrTokenExchange):
			logger.Log.Error("contact delivery failed: token exchange", "error", err)
		default:
			logger.Log.Error("contact delivery failed: send", "error", err)
		}
		return &domain.DeliveryResult{
			Success: false,
			Message: loc.T("contact.form.failure"),
		}
	}

	return &domain.DeliveryResult{
		Success: true,
		Message: loc.T("contact.form.success"),
	}
}

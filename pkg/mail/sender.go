package mail

import (
	"context"
	"errors"
)

// Failure categories for server-side diagnostics. The user-facing result
// never distinguishes them.
var (
	ErrNotConfigured = errors.New("mail: sender is not configured")
	ErrTokenExchange = errors.New("mail: token exchange failed")
	ErrSend          = errors.New("mail: send failed")
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// Sender delivers contact form submissions to the site inbox.
// This abstraction allows substituting the provider in tests.
type Sender interface {
	// SendContactEmail sends exactly one email for the given submission.
	SendContactEmail(ctx context.Context, data ContactEmailData) error
	// IsConfigured reports whether the provider credentials are present.
	IsConfigured() bool
}

package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"go-sirius-backend/config"
	"html/template"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// The sender and recipient mailboxes are fixed properties of the site,
// not deployment configuration. Replies go to the submitter via Reply-To.
const (
	senderAddress    = "MnOadmin@sirius-sc.vn"
	recipientAddress = "infor@sirius-sc.vn"
)

const mimeBoundary = "boundary_sirius_contact"

// GmailSender delivers contact emails through the Gmail API, authenticating
// as the fixed sender mailbox with an OAuth2 refresh-token grant.
type GmailSender struct {
	clientID     string
	clientSecret string
	refreshToken string
}

// NewGmailSender creates a Gmail-backed sender from the OAuth2 credentials
// in the application config.
func NewGmailSender(cfg *config.Config) *GmailSender {
	return &GmailSender{
		clientID:     cfg.OAuthClientID,
		clientSecret: cfg.OAuthClientSecret,
		refreshToken: cfg.OAuthRefreshToken,
	}
}

// IsConfigured checks that all three OAuth2 credentials are present.
func (g *GmailSender) IsConfigured() bool {
	return g.clientID != "" && g.clientSecret != "" && g.refreshToken != ""
}

// contactEmailTemplate is the HTML body for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0F141C; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0F141C; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New inquiry from the Sirius Semiconductors website</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.SenderName}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value"><a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a></div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.MessageHTML}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Sirius Semiconductors contact form.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

type contactEmailBody struct {
	SenderName  string
	SenderEmail string
	MessageHTML template.HTML
}

// SendContactEmail exchanges the refresh token for a short-lived access token,
// composes the message and submits it via the Gmail API. Exactly one send is
// attempted; there is no retry.
func (g *GmailSender) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	if !g.IsConfigured() {
		return ErrNotConfigured
	}

	// Step 1: OAuth2 refresh-token grant against Google's token endpoint
	oauthCfg := &oauth2.Config{
		ClientID:     g.clientID,
		ClientSecret: g.clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: g.refreshToken})

	token, err := tokenSource.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrTokenExchange)
	}

	// Step 2: compose the MIME message
	raw, err := composeMessage(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	// Step 3: submit as the fixed sender mailbox
	svc, err := gmail.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(token, tokenSource)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	gmailMsg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}
	if _, err := svc.Users.Messages.Send("me", gmailMsg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	return nil
}

// composeMessage builds the raw multipart/alternative MIME message:
// From is the fixed sender formatted with the submitter's display name,
// To is the fixed site inbox and Reply-To is the submitter's own address.
func composeMessage(data ContactEmailData) ([]byte, error) {
	subject := fmt.Sprintf("New inquiry from %s", data.SenderName)

	textBody := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", data.SenderName, data.SenderEmail, data.Message)

	htmlBody, err := renderHTMLBody(data)
	if err != nil {
		return nil, err
	}

	headersAndParts := []string{
		fmt.Sprintf("From: %q <%s>", data.SenderName, senderAddress),
		"To: " + recipientAddress,
		"Reply-To: " + data.SenderEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: multipart/alternative; boundary=" + mimeBoundary,
		"",
		"--" + mimeBoundary,
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Transfer-Encoding: 8bit",
		"",
		textBody,
		"",
		"--" + mimeBoundary,
		"Content-Type: text/html; charset=UTF-8",
		"Content-Transfer-Encoding: 8bit",
		"",
		htmlBody,
		"",
		"--" + mimeBoundary + "--",
	}

	return []byte(strings.Join(headersAndParts, "\r\n")), nil
}

// renderHTMLBody executes the HTML template. The message is escaped first and
// its newlines converted to <br> so formatting survives in the HTML part.
func renderHTMLBody(data ContactEmailData) (string, error) {
	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	escaped := template.HTMLEscapeString(data.Message)
	body := contactEmailBody{
		SenderName:  data.SenderName,
		SenderEmail: data.SenderEmail,
		MessageHTML: template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, body); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return buf.String(), nil
}

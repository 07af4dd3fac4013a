package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-sirius-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeMessageAddressing(t *testing.T) {
	raw, err := composeMessage(ContactEmailData{
		SenderName:  "Jane Doe",
		SenderEmail: "jane@example.com",
		Message:     "Hello, I am interested in your IP blocks.",
	})
	require.NoError(t, err)

	msg := string(raw)
	// From and To are the fixed site addresses; Reply-To is the submitter's
	// own address so replies reach them, not the relay mailbox.
	assert.Contains(t, msg, `From: "Jane Doe" <MnOadmin@sirius-sc.vn>`)
	assert.Contains(t, msg, "To: infor@sirius-sc.vn")
	assert.Contains(t, msg, "Reply-To: jane@example.com")
	assert.Contains(t, msg, "Subject: New inquiry from Jane Doe")
	assert.Contains(t, msg, "Content-Type: multipart/alternative; boundary="+mimeBoundary)
}

func TestComposeMessageBodies(t *testing.T) {
	raw, err := composeMessage(ContactEmailData{
		SenderName:  "Jane Doe",
		SenderEmail: "jane@example.com",
		Message:     "first line\nsecond line",
	})
	require.NoError(t, err)

	msg := string(raw)
	// Plain text part keeps the raw newline, HTML part converts it
	assert.Contains(t, msg, "Message: first line\nsecond line")
	assert.Contains(t, msg, "first line<br>second line")
	assert.Equal(t, 2, strings.Count(msg, "--"+mimeBoundary+"\r\n"))
	assert.Contains(t, msg, "--"+mimeBoundary+"--")
}

func TestComposeMessageEscapesHTML(t *testing.T) {
	raw, err := composeMessage(ContactEmailData{
		SenderName:  "Jane Doe",
		SenderEmail: "jane@example.com",
		Message:     "<script>alert(1)</script> and more text",
	})
	require.NoError(t, err)

	msg := string(raw)
	assert.NotContains(t, msg, "<script>alert(1)</script></div>")
	assert.Contains(t, msg, "&lt;script&gt;")
}

func TestIsConfigured(t *testing.T) {
	cases := []struct {
		name       string
		cfg        config.Config
		configured bool
	}{
		{
			name: "all credentials present",
			cfg: config.Config{
				OAuthClientID:     "id",
				OAuthClientSecret: "secret",
				OAuthRefreshToken: "token",
			},
			configured: true,
		},
		{
			name: "missing client id",
			cfg: config.Config{
				OAuthClientSecret: "secret",
				OAuthRefreshToken: "token",
			},
		},
		{
			name: "missing client secret",
			cfg: config.Config{
				OAuthClientID:     "id",
				OAuthRefreshToken: "token",
			},
		},
		{
			name: "missing refresh token",
			cfg: config.Config{
				OAuthClientID:     "id",
				OAuthClientSecret: "secret",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := NewGmailSender(&tc.cfg)
			assert.Equal(t, tc.configured, sender.IsConfigured())
		})
	}
}

func TestSendRefusedWhenNotConfigured(t *testing.T) {
	sender := NewGmailSender(&config.Config{})

	err := sender.SendContactEmail(context.Background(), ContactEmailData{
		SenderName:  "Jane Doe",
		SenderEmail: "jane@example.com",
		Message:     "Hello, I am interested in your IP blocks.",
	})

	assert.True(t, errors.Is(err, ErrNotConfigured))
}

package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"flightops360/hangar/internal/logging"
)

// GmailSender sends mail through the Gmail API as the account that granted
// the refresh token.
type GmailSender struct {
	service *gmail.Service
	from    string
}

// GmailTokenSource turns a stored refresh token into an oauth2 token source
// limited to sending mail.
func GmailTokenSource(ctx context.Context, clientID, clientSecret, refreshToken string) oauth2.TokenSource {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	// An expired token forces a refresh on first use.
	return cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken, Expiry: time.Now()})
}

func NewGmailSender(ctx context.Context, ts oauth2.TokenSource, from string, opts ...option.ClientOption) (*GmailSender, error) {
	opts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &GmailSender{service: svc, from: from}, nil
}

func (s *GmailSender) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = s.from
	}
	raw := base64.URLEncoding.EncodeToString(Raw(msg))
	sent, err := s.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		logging.Error("gmail send failed", "to", msg.To, "error", err)
		return fmt.Errorf("gmail send failed: %w", err)
	}
	logging.Info("email sent", "to", msg.To, "subject", msg.Subject, "messageId", sent.Id)
	return nil
}

// NewSender returns a GmailSender when credentials are present and a
// LoggingSender otherwise.
func NewSender(ctx context.Context, clientID, clientSecret, refreshToken, from string) (Sender, error) {
	if clientID == "" || clientSecret == "" || refreshToken == "" {
		logging.Warn("gmail credentials not configured, using logging email sender")
		return &LoggingSender{From: from}, nil
	}
	return NewGmailSender(ctx, GmailTokenSource(ctx, clientID, clientSecret, refreshToken), from)
}

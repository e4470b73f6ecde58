// Package mailer delivers outbound email such as quotes sent to clients.
package mailer

import (
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"flightops360/hangar/internal/logging"
)

// Message is one plain-text email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Raw renders msg as an RFC 5322 message with a UTF-8 plain-text body.
func Raw(msg Message) []byte {
	var b strings.Builder
	if msg.From != "" {
		fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	}
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// LoggingSender writes messages to the log instead of delivering them. It
// is used when no mail account is configured.
type LoggingSender struct {
	From string
}

func (s *LoggingSender) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = s.From
	}
	logging.Info("email not delivered, no mail account configured",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

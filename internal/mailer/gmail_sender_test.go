package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"flightops360/hangar/internal/logging"
)

func TestRaw(t *testing.T) {
	raw := string(Raw(Message{
		From:    "ops@example.com",
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Quote Q-1001",
		Body:    "line one\nline two",
	}))

	assert.Contains(t, raw, "From: ops@example.com\r\n")
	assert.Contains(t, raw, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, raw, "Subject: Quote Q-1001\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\nline one\r\nline two"))
}

func TestGmailSender_Send(t *testing.T) {
	logging.SetLogger(zap.NewNop())

	var got struct {
		Raw string `json:"raw"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/users/me/messages/send"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test"})
	sender, err := NewGmailSender(ctx, ts, "ops@example.com", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	err = sender.Send(ctx, Message{To: []string{"client@example.com"}, Subject: "Hello", Body: "Body"})
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(got.Raw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "From: ops@example.com")
	assert.Contains(t, string(decoded), "To: client@example.com")
}

func TestNewSender_FallsBackToLogging(t *testing.T) {
	logging.SetLogger(zap.NewNop())

	s, err := NewSender(context.Background(), "", "", "", "ops@example.com")
	require.NoError(t, err)
	_, ok := s.(*LoggingSender)
	assert.True(t, ok)
	assert.NoError(t, s.Send(context.Background(), Message{To: []string{"x@example.com"}}))
}

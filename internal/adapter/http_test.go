package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openscilab/lab-auth-keeper/internal/config"
	"github.com/openscilab/lab-auth-keeper/internal/crypto"
	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmail() models.Email {
	return models.Email{
		To:       models.EmailAddress{Username: "rincewind", Email: "r@uu.example.org"},
		From:     models.EmailAddress{Email: "do-not-reply@uu.example.org"},
		Subject:  "Account created",
		HTMLBody: "<p>welcome</p>",
	}
}

func newEmailAdapter(t *testing.T, serviceURL string, envelope crypto.EnvelopeService) EmailSender {
	t.Helper()
	sender, err := NewHTTPEmailAdapter(config.Email{
		ServiceURL:     serviceURL,
		RequestTimeout: 15 * time.Second,
	}, envelope, logger.Nop())
	require.NoError(t, err)
	return sender
}

func TestSendEmail_SealsAndPosts(t *testing.T) {
	envelope := crypto.NewEnvelopeService("deployment_secret")

	var received sealedMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := newEmailAdapter(t, srv.URL, envelope)

	require.NoError(t, sender.SendEmail(context.Background(), testEmail()))

	// the message must travel sealed and unseal to the original
	require.NotEmpty(t, received.Data)
	var unsealed models.Email
	require.NoError(t, envelope.Open(received.Data, &unsealed))
	assert.Equal(t, testEmail(), unsealed)
}

func TestSendEmail_OpaquePayload(t *testing.T) {
	envelope := crypto.NewEnvelopeService("deployment_secret")

	var rawBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg sealedMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		rawBody = []byte(msg.Data)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := newEmailAdapter(t, srv.URL, envelope)
	require.NoError(t, sender.SendEmail(context.Background(), testEmail()))

	assert.NotContains(t, string(rawBody), "rincewind")
	assert.NotContains(t, string(rawBody), "uu.example.org")
}

func TestSendEmail_MapsErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"internal error", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			envelope := crypto.NewEnvelopeService("deployment_secret")
			sender := newEmailAdapter(t, srv.URL, envelope)

			err := sender.SendEmail(context.Background(), testEmail())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewHTTPEmailAdapter_InvalidURL(t *testing.T) {
	envelope := crypto.NewEnvelopeService("deployment_secret")

	_, err := NewHTTPEmailAdapter(config.Email{ServiceURL: ""}, envelope, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{"scheme added", "127.0.0.1:8025", "http://127.0.0.1:8025", false},
		{"trailing slash trimmed", "http://mail.local/", "http://mail.local", false},
		{"kept as is", "https://mail.local/user/email", "https://mail.local/user/email", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

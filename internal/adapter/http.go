package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/openscilab/lab-auth-keeper/internal/config"
	"github.com/openscilab/lab-auth-keeper/internal/crypto"
	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/utils"
	"github.com/openscilab/lab-auth-keeper/models"
)

// sealedMessage is the wire form accepted by the email service: the whole
// message travels as one opaque envelope string.
type sealedMessage struct {
	Data string `json:"data"`
}

type httpEmailAdapter struct {
	client   *utils.HTTPClient
	envelope crypto.EnvelopeService

	logger *logger.Logger
}

// NewHTTPEmailAdapter constructs an HTTP implementation of [EmailSender].
// It normalises and validates the base URL from cfg.ServiceURL and bounds
// every request with cfg.RequestTimeout.
//
// Returns an error if cfg.ServiceURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPEmailAdapter(cfg config.Email, envelope crypto.EnvelopeService, logger *logger.Logger) (EmailSender, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid email service address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpEmailAdapter{client: client, envelope: envelope, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendEmail implements [EmailSender]. It seals the message with the
// deployment envelope and POSTs it to POST /send on the email service.
// Returns a mapped sentinel error on a non-2xx response.
func (h *httpEmailAdapter) SendEmail(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	sealed, err := h.envelope.Seal(email)
	if err != nil {
		log.Err(err).Str("func", "*httpEmailAdapter.SendEmail").Msg("failed to seal email payload")
		return fmt.Errorf("seal email payload: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sealedMessage{Data: sealed}).
		Post("/send")
	if err != nil {
		log.Err(err).Str("func", "*httpEmailAdapter.SendEmail").Msg("email service request failed")
		return fmt.Errorf("email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "*httpEmailAdapter.SendEmail").
			Int("status", resp.StatusCode()).
			Msg("email service returned an error")
		return err
	}

	return nil
}

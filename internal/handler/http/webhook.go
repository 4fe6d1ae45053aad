package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/models"
)

// maxWebhookBody bounds the deauthorization webhook body. The payload is
// a short digest-protected blob; anything larger is hostile.
const maxWebhookBody = 64 << 10

// deauthorize handles the peer-service webhook revoking an account's
// login permission. The body is the digest-protected wire form produced
// with the shared deployment key; a bad digest is answered 401 without
// touching any account.
func (h *Handler) deauthorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "unreadable request body", http.StatusBadRequest)
		return
	}

	var payload models.DeauthorizationPayload
	if err := h.services.Webhook.Decode(strings.TrimSpace(string(body)), &payload); err != nil {
		log.Warn().Err(err).Msg("webhook digest verification failed")
		http.Error(w, "invalid webhook signature", http.StatusUnauthorized)
		return
	}

	if err := h.services.Auth.Deauthorize(ctx, payload); err != nil {
		log.Err(err).Msg("deauthorization failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

package http

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/models"
)

const resetPasswordForm = `<!DOCTYPE html>
<html>
<body>
<h3>Choose a new password</h3>
<form method="post">
  <input type="password" name="new_password" placeholder="new password" required>
  <button type="submit">Reset password</button>
</form>
</body>
</html>`

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// confirmSignup consumes the self-approval link from the signup email.
func (h *Handler) confirmSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")
	username, err := h.services.Auth.RedeemSelfApproval(ctx, token)
	if err != nil {
		log.Err(err).Msg("self-approval rejected")
		respondError(w, err)
		return
	}

	writeHTML(w, http.StatusOK, fmt.Sprintf(
		"<p>Account <b>%s</b> is now authorized. You can log in.</p>",
		html.EscapeString(username)))
}

// confirmPasswordForm renders the form behind the emailed reset link.
// The token is only verified on submit.
func (h *Handler) confirmPasswordForm(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, resetPasswordForm)
}

// confirmPassword consumes the password-reset link. The replacement
// password arrives either as JSON or as the submitted form field.
func (h *Handler) confirmPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ResetPasswordRequest
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	} else {
		request.NewPassword = r.FormValue("new_password")
	}

	token := chi.URLParam(r, "token")
	username, err := h.services.Auth.RedeemPasswordReset(ctx, token, request.NewPassword)
	if err != nil {
		log.Err(err).Msg("password reset rejected")
		respondError(w, err)
		return
	}

	writeHTML(w, http.StatusOK, fmt.Sprintf(
		"<p>Password for <b>%s</b> has been updated.</p>",
		html.EscapeString(username)))
}

// confirmMFAReset consumes the MFA-reset link and clears the enrollment.
func (h *Handler) confirmMFAReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")
	username, err := h.services.Auth.RedeemMFAReset(ctx, token)
	if err != nil {
		log.Err(err).Msg("mfa reset rejected")
		respondError(w, err)
		return
	}

	writeHTML(w, http.StatusOK, fmt.Sprintf(
		"<p>Two-factor device for <b>%s</b> has been removed. You can enroll a new one after login.</p>",
		html.EscapeString(username)))
}

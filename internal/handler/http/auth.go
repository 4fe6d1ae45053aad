package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/service"
	"github.com/openscilab/lab-auth-keeper/internal/utils"
	"github.com/openscilab/lab-auth-keeper/models"
)

// respondError maps a service error onto an HTTP status. Unexpected
// errors are reported without their message so internals do not leak.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(http.StatusInternalServerError)
	}
	http.Error(w, msg, status)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.Auth.Authenticate(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserBlocked):
			log.Warn().Str("username", request.Username).Msg("login attempt while blocked")
			http.Error(w, "too many failed login attempts, try again later", http.StatusTooManyRequests)
			return
		case errors.Is(err, service.ErrMFARequired):
			http.Error(w, "two-factor enrollment is required", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrWrongCredentials),
			errors.Is(err, service.ErrWrongMFACode),
			errors.Is(err, service.ErrUserNotAuthorized):
			// one answer for every rejection so a caller cannot tell
			// which check failed
			log.Info().Err(err).Msg("login rejected")
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.LoginResponse{Username: user.Username}, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.Auth.Signup(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSignupDisabled):
			http.Error(w, "signup is disabled", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUsernameTaken):
			http.Error(w, "username is already taken", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Auth.ChangePassword(ctx, request); err != nil {
		log.Err(err).Msg("password change rejected")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) toggleAuthorization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")
	user, err := h.services.Auth.ToggleAuthorization(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("authorization toggle failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) discardUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")
	if err := h.services.Auth.DiscardUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("discard failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) forgetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ForgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Auth.RequestPasswordReset(ctx, request); err != nil {
		log.Err(err).Msg("password reset request rejected")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{
		"message": "if the account exists, a reset email has been sent",
	}, http.StatusAccepted)
}

func (h *Handler) resetMFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ResetMFARequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Auth.RequestMFAReset(ctx, request); err != nil {
		log.Err(err).Msg("mfa reset request rejected")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{
		"message": "a reset email has been sent",
	}, http.StatusAccepted)
}

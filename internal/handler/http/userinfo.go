package http

import (
	"encoding/json"
	"net/http"

	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/utils"
	"github.com/openscilab/lab-auth-keeper/models"
)

// userInfo hands the sealed context of one account to a peer service.
// The response envelope carries either the sealed data or an error
// summary, never both.
func (h *Handler) userInfo(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		utils.WriteJSON(w, models.UserDataResponse{Message: "username query parameter is required"}, http.StatusBadRequest)
		return
	}

	h.writeSealedUser(w, r, username)
}

// userData is the POST variant of userInfo for peers that prefer a JSON
// body over a query string.
func (h *Handler) userData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.UserDataRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.UserDataResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	h.writeSealedUser(w, r, request.Username)
}

func (h *Handler) writeSealedUser(w http.ResponseWriter, r *http.Request, username string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sealed, err := h.services.Auth.SealedUserContext(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("sealed user context failed")
		utils.WriteJSON(w, models.UserDataResponse{Message: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UserDataResponse{Data: sealed, Message: "OK"}, http.StatusOK)
}

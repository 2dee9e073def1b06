package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

// createShareRequest is the payload for POST /api/shares. The grantee is
// addressed by email; an omitted role defaults to Editor.
type createShareRequest struct {
	Email string           `json:"email"`
	Role  models.ShareRole `json:"role,omitempty"`
}

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shares, err := h.services.SharingService.ListShares(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("error listing shares")
		http.Error(w, "error listing shares", statusFromError(err))
		return
	}

	if shares == nil {
		shares = []models.ShareConfig{}
	}
	utils.WriteJSON(w, shares, http.StatusOK)
}

func (h *Handler) createShare(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request createShareRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	share, err := h.services.SharingService.CreateShare(r.Context(), userID, request.Email, request.Role)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("error creating share")
		http.Error(w, "error creating share", statusFromError(err))
		return
	}

	utils.WriteJSON(w, share, http.StatusCreated)
}

func (h *Handler) deleteShare(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shareID := chi.URLParam(r, "shareID")
	if err := h.services.SharingService.DeleteShare(r.Context(), userID, shareID); err != nil {
		log.Err(err).Str("share_id", shareID).Msg("error deleting share")
		http.Error(w, "error deleting share", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tags, err := h.services.RecipeService.ListTags(r.Context(), userID, tagsFilterFromQuery(r))
	if err != nil {
		log.Err(err).Msg("error listing tags")
		http.Error(w, "error listing tags", statusFromError(err))
		return
	}

	if tags == nil {
		tags = []models.Tag{}
	}
	utils.WriteJSON(w, tags, http.StatusOK)
}

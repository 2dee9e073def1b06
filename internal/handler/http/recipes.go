package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recipes, err := h.services.RecipeService.ListRecipes(r.Context(), userID, tagsFilterFromQuery(r))
	if err != nil {
		log.Err(err).Msg("error listing recipes")
		http.Error(w, "error listing recipes", statusFromError(err))
		return
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}
	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RecipeService.CreateRecipe(r.Context(), userID, recipe)
	if err != nil {
		log.Err(err).Msg("error creating recipe")
		http.Error(w, "error creating recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), userID, chi.URLParam(r, "ref"))
	if err != nil {
		log.Err(err).Str("ref", chi.URLParam(r, "ref")).Msg("error getting recipe")
		http.Error(w, "error getting recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.RecipeService.UpdateRecipe(r.Context(), userID, chi.URLParam(r, "ref"), update)
	if err != nil {
		log.Err(err).Str("ref", chi.URLParam(r, "ref")).Msg("error updating recipe")
		http.Error(w, "error updating recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.RecipeService.DeleteRecipe(r.Context(), userID, chi.URLParam(r, "ref")); err != nil {
		log.Err(err).Str("ref", chi.URLParam(r, "ref")).Msg("error deleting recipe")
		http.Error(w, "error deleting recipe", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) copyRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	copied, err := h.services.RecipeService.CopyRecipe(r.Context(), userID, chi.URLParam(r, "ref"))
	if err != nil {
		log.Err(err).Str("ref", chi.URLParam(r, "ref")).Msg("error copying recipe")
		http.Error(w, "error copying recipe", statusFromError(err))
		return
	}

	utils.WriteJSON(w, copied, http.StatusCreated)
}

// tagsFilterFromQuery collects tag filter values from the "tags" query
// parameter. The parameter may be repeated and each value may hold a
// comma-separated list; blanks are dropped.
func tagsFilterFromQuery(r *http.Request) []string {
	var tags []string
	for _, value := range r.URL.Query()["tags"] {
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return tags
}

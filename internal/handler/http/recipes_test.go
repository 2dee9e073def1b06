package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebookapp/recipebook-server/internal/service"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

// ---- Helpers ----

func newHandlerWithRecipeService(recipeSvc service.RecipeService) *Handler {
	return newHandlerWithServices(&service.Services{RecipeService: recipeSvc})
}

// authedRequest builds a request carrying a resolved user id and a nop
// logger, the way the auth and logging middleware leave it.
func authedRequest(method, target string, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = injectNopLogger(req)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request, standing in
// for the router's own parameter extraction.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// listRecipes
// ─────────────────────────────────────────────

func TestListRecipes_Success(t *testing.T) {
	recipeSvc := &mockRecipeService{
		listRecipesFn: func(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Recipe{{ID: "recipe-1", Name: "Mapo Tofu"}}, nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodGet, "/api/recipes", "", 42)
	rec := httptest.NewRecorder()
	h.listRecipes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var recipes []models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, "Mapo Tofu", recipes[0].Name)
}

// An empty collection encodes as [] rather than null.
func TestListRecipes_EmptyCollection(t *testing.T) {
	recipeSvc := &mockRecipeService{
		listRecipesFn: func(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error) {
			return nil, nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodGet, "/api/recipes", "", 42)
	rec := httptest.NewRecorder()
	h.listRecipes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListRecipes_PassesTagFilter(t *testing.T) {
	var gotTags []string
	recipeSvc := &mockRecipeService{
		listRecipesFn: func(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error) {
			gotTags = tagSlugs
			return nil, nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodGet, "/api/recipes?tags=indian,vegan&tags=quick", "", 42)
	rec := httptest.NewRecorder()
	h.listRecipes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"indian", "vegan", "quick"}, gotTags)
}

func TestListRecipes_MissingUserReturns401(t *testing.T) {
	h := newHandlerWithRecipeService(&mockRecipeService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/recipes", nil))
	rec := httptest.NewRecorder()
	h.listRecipes(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// createRecipe
// ─────────────────────────────────────────────

func TestCreateRecipe_Success(t *testing.T) {
	recipeSvc := &mockRecipeService{
		createFn: func(ctx context.Context, authorID int64, recipe models.Recipe) (models.Recipe, error) {
			assert.Equal(t, int64(42), authorID)
			recipe.ID = "new-id"
			recipe.AuthorID = authorID
			return recipe, nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodPost, "/api/recipes", `{"name":"Chana Masala"}`, 42)
	rec := httptest.NewRecorder()
	h.createRecipe(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, int64(42), created.AuthorID)
}

func TestCreateRecipe_InvalidJSONReturns400(t *testing.T) {
	h := newHandlerWithRecipeService(&mockRecipeService{})

	req := authedRequest(http.MethodPost, "/api/recipes", "{not json", 42)
	rec := httptest.NewRecorder()
	h.createRecipe(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecipe_ValidationErrorReturns400(t *testing.T) {
	recipeSvc := &mockRecipeService{
		createFn: func(ctx context.Context, authorID int64, recipe models.Recipe) (models.Recipe, error) {
			return models.Recipe{}, service.ErrInvalidDataProvided
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodPost, "/api/recipes", `{"name":""}`, 42)
	rec := httptest.NewRecorder()
	h.createRecipe(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getRecipe
// ─────────────────────────────────────────────

func TestGetRecipe_Success(t *testing.T) {
	recipeSvc := &mockRecipeService{
		getFn: func(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
			assert.Equal(t, "abc12345-mapo-tofu", ref)
			return models.Recipe{ID: "recipe-1", Name: "Mapo Tofu"}, nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodGet, "/api/recipes/abc12345-mapo-tofu", "", 42)
	req = withURLParam(req, "ref", "abc12345-mapo-tofu")
	rec := httptest.NewRecorder()
	h.getRecipe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var recipe models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipe))
	assert.Equal(t, "Mapo Tofu", recipe.Name)
}

func TestGetRecipe_NotFoundReturns404(t *testing.T) {
	recipeSvc := &mockRecipeService{
		getFn: func(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
			return models.Recipe{}, service.ErrRecipeNotFound
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodGet, "/api/recipes/unknown", "", 42)
	req = withURLParam(req, "ref", "unknown")
	rec := httptest.NewRecorder()
	h.getRecipe(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecipe_AccessDeniedReturns403(t *testing.T) {
	recipeSvc := &mockRecipeService{
		getFn: func(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
			return models.Recipe{}, service.ErrAccessDenied
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodGet, "/api/recipes/private", "", 42)
	req = withURLParam(req, "ref", "private")
	rec := httptest.NewRecorder()
	h.getRecipe(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// updateRecipe
// ─────────────────────────────────────────────

func TestUpdateRecipe_Success(t *testing.T) {
	recipeSvc := &mockRecipeService{
		updateFn: func(ctx context.Context, userID int64, ref string, update models.Recipe) (models.Recipe, error) {
			assert.Equal(t, "recipe-1", ref)
			assert.Equal(t, "Chana Masala Deluxe", update.Name)
			update.ID = "recipe-1"
			return update, nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodPut, "/api/recipes/recipe-1", `{"name":"Chana Masala Deluxe"}`, 42)
	req = withURLParam(req, "ref", "recipe-1")
	rec := httptest.NewRecorder()
	h.updateRecipe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Chana Masala Deluxe", updated.Name)
}

func TestUpdateRecipe_AccessDeniedReturns403(t *testing.T) {
	recipeSvc := &mockRecipeService{
		updateFn: func(ctx context.Context, userID int64, ref string, update models.Recipe) (models.Recipe, error) {
			return models.Recipe{}, service.ErrAccessDenied
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodPut, "/api/recipes/recipe-1", `{"name":"Stolen"}`, 99)
	req = withURLParam(req, "ref", "recipe-1")
	rec := httptest.NewRecorder()
	h.updateRecipe(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// deleteRecipe
// ─────────────────────────────────────────────

func TestDeleteRecipe_Success(t *testing.T) {
	recipeSvc := &mockRecipeService{
		deleteFn: func(ctx context.Context, userID int64, ref string) error {
			assert.Equal(t, "recipe-1", ref)
			return nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodDelete, "/api/recipes/recipe-1", "", 42)
	req = withURLParam(req, "ref", "recipe-1")
	rec := httptest.NewRecorder()
	h.deleteRecipe(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteRecipe_NotFoundReturns404(t *testing.T) {
	recipeSvc := &mockRecipeService{
		deleteFn: func(ctx context.Context, userID int64, ref string) error {
			return service.ErrRecipeNotFound
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodDelete, "/api/recipes/ghost", "", 42)
	req = withURLParam(req, "ref", "ghost")
	rec := httptest.NewRecorder()
	h.deleteRecipe(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// copyRecipe
// ─────────────────────────────────────────────

func TestCopyRecipe_Success(t *testing.T) {
	recipeSvc := &mockRecipeService{
		copyFn: func(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
			assert.Equal(t, int64(42), userID)
			return models.Recipe{ID: "copy-id", AuthorID: userID, Name: "Mapo Tofu"}, nil
		},
	}
	h := newHandlerWithRecipeService(recipeSvc)

	req := authedRequest(http.MethodPost, "/api/recipes/recipe-1/copy", "", 42)
	req = withURLParam(req, "ref", "recipe-1")
	rec := httptest.NewRecorder()
	h.copyRecipe(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var copied models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &copied))
	assert.Equal(t, "copy-id", copied.ID)
	assert.Equal(t, int64(42), copied.AuthorID)
}

// ─────────────────────────────────────────────
// tagsFilterFromQuery
// ─────────────────────────────────────────────

func TestTagsFilterFromQuery_TableTest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{
			name:   "no parameter",
			target: "/api/recipes",
			want:   nil,
		},
		{
			name:   "single value",
			target: "/api/recipes?tags=indian",
			want:   []string{"indian"},
		},
		{
			name:   "comma separated",
			target: "/api/recipes?tags=indian,vegan",
			want:   []string{"indian", "vegan"},
		},
		{
			name:   "repeated parameter",
			target: "/api/recipes?tags=indian&tags=vegan",
			want:   []string{"indian", "vegan"},
		},
		{
			name:   "blanks dropped",
			target: "/api/recipes?tags=indian,,%20%20,vegan",
			want:   []string{"indian", "vegan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.want, tagsFilterFromQuery(req))
		})
	}
}

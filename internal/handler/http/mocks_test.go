package http

import (
	"context"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/service"
	"github.com/recipebookapp/recipebook-server/models"
)

// ─────────────────────────────────────────────
// Service mocks shared by the handler tests
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	resolveUserFn func(ctx context.Context, tokenString string) (models.User, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	if m.resolveUserFn != nil {
		return m.resolveUserFn(ctx, tokenString)
	}
	return models.User{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// mockRecipeService implements service.RecipeService for unit tests.
type mockRecipeService struct {
	createFn      func(ctx context.Context, authorID int64, recipe models.Recipe) (models.Recipe, error)
	getFn         func(ctx context.Context, userID int64, ref string) (models.Recipe, error)
	updateFn      func(ctx context.Context, userID int64, ref string, update models.Recipe) (models.Recipe, error)
	deleteFn      func(ctx context.Context, userID int64, ref string) error
	copyFn        func(ctx context.Context, userID int64, ref string) (models.Recipe, error)
	listRecipesFn func(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error)
	listTagsFn    func(ctx context.Context, userID int64, tagSlugs []string) ([]models.Tag, error)
}

func (m *mockRecipeService) CreateRecipe(ctx context.Context, authorID int64, recipe models.Recipe) (models.Recipe, error) {
	return m.createFn(ctx, authorID, recipe)
}

func (m *mockRecipeService) GetRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
	return m.getFn(ctx, userID, ref)
}

func (m *mockRecipeService) UpdateRecipe(ctx context.Context, userID int64, ref string, update models.Recipe) (models.Recipe, error) {
	return m.updateFn(ctx, userID, ref, update)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, userID int64, ref string) error {
	return m.deleteFn(ctx, userID, ref)
}

func (m *mockRecipeService) CopyRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
	return m.copyFn(ctx, userID, ref)
}

func (m *mockRecipeService) ListRecipes(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error) {
	return m.listRecipesFn(ctx, userID, tagSlugs)
}

func (m *mockRecipeService) ListTags(ctx context.Context, userID int64, tagSlugs []string) ([]models.Tag, error) {
	return m.listTagsFn(ctx, userID, tagSlugs)
}

// mockSharingService implements service.SharingService for unit tests.
type mockSharingService struct {
	createShareFn   func(ctx context.Context, granterID int64, granteeEmail string, role models.ShareRole) (models.ShareConfig, error)
	deleteShareFn   func(ctx context.Context, userID int64, shareID string) error
	listSharesFn    func(ctx context.Context, userID int64) ([]models.ShareConfig, error)
	sharedPeersFn   func(ctx context.Context, userID int64) ([]int64, error)
	sharingExistsFn func(ctx context.Context, userA, userB int64) (bool, error)
}

func (m *mockSharingService) CreateShare(ctx context.Context, granterID int64, granteeEmail string, role models.ShareRole) (models.ShareConfig, error) {
	return m.createShareFn(ctx, granterID, granteeEmail, role)
}

func (m *mockSharingService) DeleteShare(ctx context.Context, userID int64, shareID string) error {
	return m.deleteShareFn(ctx, userID, shareID)
}

func (m *mockSharingService) ListShares(ctx context.Context, userID int64) ([]models.ShareConfig, error) {
	return m.listSharesFn(ctx, userID)
}

func (m *mockSharingService) SharedPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	return m.sharedPeersFn(ctx, userID)
}

func (m *mockSharingService) SharingExists(ctx context.Context, userA, userB int64) (bool, error) {
	return m.sharingExistsFn(ctx, userA, userB)
}

// ─────────────────────────────────────────────
// Request helpers
// ─────────────────────────────────────────────

func newHandlerWithServices(svcs *service.Services) *Handler {
	return &Handler{
		services: svcs,
		logger:   logger.Nop(),
	}
}

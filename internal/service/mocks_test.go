package service

import (
	"context"
	"errors"

	"github.com/recipebookapp/recipebook-server/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	getOrCreateByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByEmailFn        func(ctx context.Context, email string) (models.User, error)
	findByIDFn           func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) GetOrCreateByEmail(ctx context.Context, email string) (models.User, error) {
	if m.getOrCreateByEmailFn != nil {
		return m.getOrCreateByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.RecipeRepository
// ─────────────────────────────────────────────

type mockRecipeRepository struct {
	createFn               func(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	updateFn               func(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	deleteFn               func(ctx context.Context, recipeID string) error
	getByIDFn              func(ctx context.Context, recipeID string) (models.Recipe, error)
	getByPublicIDAndSlugFn func(ctx context.Context, publicID, slug string) ([]models.Recipe, error)
	listByAuthorsFn        func(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Recipe, error)
}

func (m *mockRecipeRepository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if m.createFn != nil {
		return m.createFn(ctx, recipe)
	}
	return recipe, nil
}

func (m *mockRecipeRepository) Update(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, recipe)
	}
	return recipe, nil
}

func (m *mockRecipeRepository) Delete(ctx context.Context, recipeID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, recipeID)
	}
	return nil
}

func (m *mockRecipeRepository) GetByID(ctx context.Context, recipeID string) (models.Recipe, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, recipeID)
	}
	return models.Recipe{}, nil
}

func (m *mockRecipeRepository) GetByPublicIDAndSlug(ctx context.Context, publicID, slug string) ([]models.Recipe, error) {
	if m.getByPublicIDAndSlugFn != nil {
		return m.getByPublicIDAndSlugFn(ctx, publicID, slug)
	}
	return nil, nil
}

func (m *mockRecipeRepository) ListByAuthors(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Recipe, error) {
	if m.listByAuthorsFn != nil {
		return m.listByAuthorsFn(ctx, authorIDs, tagSlugs)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.ShareRepository
// ─────────────────────────────────────────────

type mockShareRepository struct {
	createFn        func(ctx context.Context, share models.ShareConfig) (models.ShareConfig, error)
	deleteFn        func(ctx context.Context, shareID string) error
	getByIDFn       func(ctx context.Context, shareID string) (models.ShareConfig, error)
	listForUserFn   func(ctx context.Context, userID int64) ([]models.ShareConfig, error)
	sharedPeerIDsFn func(ctx context.Context, userID int64) ([]int64, error)
	sharingExistsFn func(ctx context.Context, userA, userB int64) (bool, error)
}

func (m *mockShareRepository) Create(ctx context.Context, share models.ShareConfig) (models.ShareConfig, error) {
	if m.createFn != nil {
		return m.createFn(ctx, share)
	}
	return share, nil
}

func (m *mockShareRepository) Delete(ctx context.Context, shareID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, shareID)
	}
	return nil
}

func (m *mockShareRepository) GetByID(ctx context.Context, shareID string) (models.ShareConfig, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, shareID)
	}
	return models.ShareConfig{}, nil
}

func (m *mockShareRepository) ListForUser(ctx context.Context, userID int64) ([]models.ShareConfig, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockShareRepository) SharedPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.sharedPeerIDsFn != nil {
		return m.sharedPeerIDsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockShareRepository) SharingExists(ctx context.Context, userA, userB int64) (bool, error) {
	if m.sharingExistsFn != nil {
		return m.sharingExistsFn(ctx, userA, userB)
	}
	return false, nil
}

// ─────────────────────────────────────────────
// Mock: store.TagRepository
// ─────────────────────────────────────────────

type mockTagRepository struct {
	listForAuthorsFn func(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Tag, error)
}

func (m *mockTagRepository) ListForAuthors(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Tag, error) {
	if m.listForAuthorsFn != nil {
		return m.listForAuthorsFn(ctx, authorIDs, tagSlugs)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: SharingService
// ─────────────────────────────────────────────

type mockSharingService struct {
	createShareFn   func(ctx context.Context, granterID int64, granteeEmail string, role models.ShareRole) (models.ShareConfig, error)
	deleteShareFn   func(ctx context.Context, userID int64, shareID string) error
	listSharesFn    func(ctx context.Context, userID int64) ([]models.ShareConfig, error)
	sharedPeerIDsFn func(ctx context.Context, userID int64) ([]int64, error)
	sharingExistsFn func(ctx context.Context, userA, userB int64) (bool, error)
}

func (m *mockSharingService) CreateShare(ctx context.Context, granterID int64, granteeEmail string, role models.ShareRole) (models.ShareConfig, error) {
	if m.createShareFn != nil {
		return m.createShareFn(ctx, granterID, granteeEmail, role)
	}
	return models.ShareConfig{}, nil
}

func (m *mockSharingService) DeleteShare(ctx context.Context, userID int64, shareID string) error {
	if m.deleteShareFn != nil {
		return m.deleteShareFn(ctx, userID, shareID)
	}
	return nil
}

func (m *mockSharingService) ListShares(ctx context.Context, userID int64) ([]models.ShareConfig, error) {
	if m.listSharesFn != nil {
		return m.listSharesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSharingService) SharedPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.sharedPeerIDsFn != nil {
		return m.sharedPeerIDsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSharingService) SharingExists(ctx context.Context, userA, userB int64) (bool, error) {
	if m.sharingExistsFn != nil {
		return m.sharingExistsFn(ctx, userA, userB)
	}
	return false, nil
}

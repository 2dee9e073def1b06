package service

import (
	"context"

	"github.com/recipebookapp/recipebook-server/models"
)

type RecipeService interface {
	CreateRecipe(ctx context.Context, authorID int64, recipe models.Recipe) (models.Recipe, error)

	// GetRecipe resolves ref (canonical recipe ID or "<public_id>-<slug>")
	// and returns the recipe if the requester may read it.
	GetRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error)

	UpdateRecipe(ctx context.Context, userID int64, ref string, update models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID int64, ref string) error

	// CopyRecipe clones a readable recipe into the requester's own collection.
	CopyRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error)

	ListRecipes(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error)
	ListTags(ctx context.Context, userID int64, tagSlugs []string) ([]models.Tag, error)
}

// SharingService maintains the sharing graph: directed grants between users
// that are treated as symmetric for every access decision.
type SharingService interface {
	CreateShare(ctx context.Context, granterID int64, granteeEmail string, role models.ShareRole) (models.ShareConfig, error)
	DeleteShare(ctx context.Context, userID int64, shareID string) error
	ListShares(ctx context.Context, userID int64) ([]models.ShareConfig, error)

	// SharedPeerIDs returns every user connected to userID by at least one
	// grant in either direction, never including userID itself.
	SharedPeerIDs(ctx context.Context, userID int64) ([]int64, error)

	// SharingExists reports whether any grant connects the two users,
	// regardless of who granted whom.
	SharingExists(ctx context.Context, userA int64, userB int64) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type AuthService interface {
	// ResolveUser validates the bearer token and maps its email claim to a
	// user record, creating the account on first sight.
	ResolveUser(ctx context.Context, tokenString string) (models.User, error)

	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// validating input before it reaches the store.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService // returns a decorated RecipeService applying additional behavior
}

package store

import (
	"context"

	"github.com/recipebookapp/recipebook-server/models"
)

// UserRepository persists identity records resolved from the external
// identity provider.
type UserRepository interface {
	// GetOrCreateByEmail returns the user with the given email, creating
	// the row on first sight. Safe against concurrent first-sight races.
	GetOrCreateByEmail(ctx context.Context, email string) (models.User, error)

	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID int64) (models.User, error)
}

// RecipeRepository persists recipes together with their tag sets.
type RecipeRepository interface {
	// Create inserts the recipe and its tags in one transaction and
	// returns the stored row.
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// Update rewrites all content columns and replaces the tag set in one
	// transaction. The recipe is addressed by its opaque id.
	Update(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	Delete(ctx context.Context, recipeID string) error

	// GetByID fetches a recipe by its opaque id, tags included.
	GetByID(ctx context.Context, recipeID string) (models.Recipe, error)

	// GetByPublicIDAndSlug fetches every recipe matching the composite
	// shareable reference, oldest first. The pair is not unique at the
	// storage layer, so more than one row may come back.
	GetByPublicIDAndSlug(ctx context.Context, publicID, slug string) ([]models.Recipe, error)

	// ListByAuthors fetches recipes authored by any of the given users,
	// optionally narrowed to recipes carrying at least one of the given
	// tag slugs.
	ListByAuthors(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Recipe, error)
}

// ShareRepository persists share grants and answers the sharing-relation
// queries the access decisions are built on.
type ShareRepository interface {
	Create(ctx context.Context, share models.ShareConfig) (models.ShareConfig, error)
	Delete(ctx context.Context, shareID string) error
	GetByID(ctx context.Context, shareID string) (models.ShareConfig, error)

	// ListForUser returns every grant the user appears in, as granter or
	// grantee.
	ListForUser(ctx context.Context, userID int64) ([]models.ShareConfig, error)

	// SharedPeerIDs returns the ids of all users connected to userID by at
	// least one grant in either direction, excluding userID itself even
	// when a self-grant row exists.
	SharedPeerIDs(ctx context.Context, userID int64) ([]int64, error)

	// SharingExists reports whether any grant connects the two users,
	// regardless of which of them is the granter. It is not reflexive:
	// (a, a) is false unless an explicit self-grant row exists.
	SharingExists(ctx context.Context, userA, userB int64) (bool, error)
}

// TagRepository answers read-side tag queries. Tag writes happen inside the
// recipe save transaction and are not exposed separately.
type TagRepository interface {
	// ListForAuthors returns the distinct tags attached to any recipe
	// authored by the given users. A non-empty tagSlugs narrows the recipe
	// set to recipes carrying at least one of the slugs; every tag on a
	// matching recipe is returned, not just the filtered ones.
	ListForAuthors(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Tag, error)
}

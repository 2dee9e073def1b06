// Package adapter provides transport-layer abstractions for communicating
// with the recipe book server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/recipebookapp/recipebook-server/models"
)

// ServerAdapter defines transport-agnostic communication with the recipe book
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ServerVersion fetches the version string the server reports.
	ServerVersion(ctx context.Context) (string, error)

	// ListRecipes fetches the recipes visible to the authenticated user,
	// optionally narrowed by tag slugs.
	ListRecipes(ctx context.Context, tags []string) ([]models.Recipe, error)

	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// GetRecipe fetches a recipe by canonical ID or shareable
	// "<public_id>-<slug>" reference.
	GetRecipe(ctx context.Context, ref string) (models.Recipe, error)

	UpdateRecipe(ctx context.Context, ref string, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, ref string) error

	// CopyRecipe asks the server to clone the referenced recipe into the
	// authenticated user's collection.
	CopyRecipe(ctx context.Context, ref string) (models.Recipe, error)

	// ListTags fetches the tags on recipes visible to the user, narrowed the
	// same way ListRecipes narrows recipes.
	ListTags(ctx context.Context, tags []string) ([]models.Tag, error)

	ListShares(ctx context.Context) ([]models.ShareConfig, error)
	CreateShare(ctx context.Context, granteeEmail string, role models.ShareRole) (models.ShareConfig, error)
	DeleteShare(ctx context.Context, shareID string) error
}

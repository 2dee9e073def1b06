package store

import (
	"github.com/recipebookapp/recipebook-server/internal/logger"
)

// Repositories bundles all persistence interfaces consumed by the service
// layer.
type Repositories struct {
	UserRepository   UserRepository
	RecipeRepository RecipeRepository
	ShareRepository  ShareRepository
	TagRepository    TagRepository
}

// NewRepositories wires all repositories to the given database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		RecipeRepository: NewRecipeRepository(db, logger),
		ShareRepository:  NewShareRepository(db, logger),
		TagRepository:    NewTagRepository(db, logger),
	}
}

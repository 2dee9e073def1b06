package service

import (
	"github.com/recipebookapp/recipebook-server/internal/config"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/store"
	"github.com/recipebookapp/recipebook-server/internal/utils"
)

type Services struct {
	AppInfoService AppInfoService
	AuthService    AuthService
	RecipeService  RecipeService
	SharingService SharingService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	idGenerator := utils.NewUUIDGenerator()
	sharingService := NewSharingService(repositories.ShareRepository, repositories.UserRepository, idGenerator, logger)
	recipeService := NewRecipeService(repositories.RecipeRepository, repositories.TagRepository, sharingService, cfg.App, idGenerator, logger)

	return &Services{
		AppInfoService: NewAppInfoService(cfg.App, logger),
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		RecipeService:  NewRecipeValidationService().Wrap(recipeService),
		SharingService: sharingService,
	}
}

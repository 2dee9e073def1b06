package service

import (
	"context"
	"fmt"

	"github.com/recipebookapp/recipebook-server/internal/validators"
	"github.com/recipebookapp/recipebook-server/models"
)

// RecipeValidationService decorates a RecipeService with input validation.
// Only the operations accepting user-supplied recipe content are checked;
// read and delete operations pass straight through to the inner service.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) CreateRecipe(ctx context.Context, authorID int64, recipe models.Recipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateRecipe(ctx, authorID, recipe)
}

func (v *RecipeValidationService) GetRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
	return v.inner.GetRecipe(ctx, userID, ref)
}

func (v *RecipeValidationService) UpdateRecipe(ctx context.Context, userID int64, ref string, update models.Recipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateRecipe(ctx, userID, ref, update)
}

func (v *RecipeValidationService) DeleteRecipe(ctx context.Context, userID int64, ref string) error {
	return v.inner.DeleteRecipe(ctx, userID, ref)
}

func (v *RecipeValidationService) CopyRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
	return v.inner.CopyRecipe(ctx, userID, ref)
}

func (v *RecipeValidationService) ListRecipes(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error) {
	return v.inner.ListRecipes(ctx, userID, tagSlugs)
}

func (v *RecipeValidationService) ListTags(ctx context.Context, userID int64, tagSlugs []string) ([]models.Tag, error) {
	return v.inner.ListTags(ctx, userID, tagSlugs)
}

// Wrap installs inner as the decorated service and returns the decorator.
func (v *RecipeValidationService) Wrap(inner RecipeService) RecipeService {
	v.inner = inner
	return v
}

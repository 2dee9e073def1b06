package validators

import (
	"context"
	"fmt"

	"github.com/recipebookapp/recipebook-server/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldName targets the recipe display name.
	FieldName = "name"

	// FieldIngredients targets the free-text ingredient list.
	FieldIngredients = "ingredients"

	// FieldInstructions targets the free-text cooking instructions.
	FieldInstructions = "instructions"

	// FieldNotes targets the free-text notes field.
	FieldNotes = "notes"

	// FieldVideoURL targets the optional video link.
	FieldVideoURL = "video_url"

	// FieldSource targets the attribution field (book, site, person).
	FieldSource = "source"

	// FieldActiveTime targets the hands-on time description.
	FieldActiveTime = "active_time"

	// FieldTotalTime targets the start-to-finish time description.
	FieldTotalTime = "total_time"

	// FieldServings targets the yield description.
	FieldServings = "servings"

	// FieldTags targets the tag name list attached to the recipe.
	FieldTags = "tags"
)

// Upper bounds on user-supplied recipe content. Free-text bodies get a
// generous limit; single-line descriptors share the name limit.
const (
	maxNameLen      = 255
	maxShortLineLen = 255
	maxTextBodyLen  = 50_000
	maxTags         = 50
	maxTagNameLen   = 100
)

// RecipeValidator implements the Validator interface for the Recipe model.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type RecipeValidator struct {
}

func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe:
		return v.validateRecipe(ctx, value, fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRecipe checks the user-supplied content fields of a recipe. When
// fields is empty every field is checked; otherwise validation is limited to
// the named fields.
func (v *RecipeValidator) validateRecipe(ctx context.Context, recipe models.Recipe, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldName, FieldIngredients, FieldInstructions, FieldNotes,
			FieldVideoURL, FieldSource, FieldActiveTime, FieldTotalTime,
			FieldServings, FieldTags,
		}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if recipe.Name == "" {
				return ErrEmptyRecipeName
			}
			if len(recipe.Name) > maxNameLen {
				return fmt.Errorf("%w: %s", ErrRecipeNameTooLong, FieldName)
			}

		case FieldIngredients:
			if len(recipe.Ingredients) > maxTextBodyLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldIngredients)
			}

		case FieldInstructions:
			if len(recipe.Instructions) > maxTextBodyLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldInstructions)
			}

		case FieldNotes:
			if len(recipe.Notes) > maxTextBodyLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldNotes)
			}

		case FieldVideoURL:
			if len(recipe.VideoURL) > maxShortLineLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldVideoURL)
			}

		case FieldSource:
			if len(recipe.Source) > maxShortLineLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldSource)
			}

		case FieldActiveTime:
			if len(recipe.ActiveTime) > maxShortLineLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldActiveTime)
			}

		case FieldTotalTime:
			if len(recipe.TotalTime) > maxShortLineLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldTotalTime)
			}

		case FieldServings:
			if len(recipe.Servings) > maxShortLineLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldServings)
			}

		case FieldTags:
			if len(recipe.Tags) > maxTags {
				return ErrTooManyTags
			}
			for _, tag := range recipe.Tags {
				if len(tag) > maxTagNameLen {
					return fmt.Errorf("%w: %q", ErrTagNameTooLong, tag)
				}
			}

		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

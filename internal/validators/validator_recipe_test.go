package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/recipebookapp/recipebook-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecipe() models.Recipe {
	return models.Recipe{
		Name:        "Chana Masala",
		Ingredients: "chickpeas, tomatoes, onion",
		Tags:        []string{"indian", "vegan"},
	}
}

func TestRecipeValidator_Validate_ValidRecipe(t *testing.T) {
	v := NewRecipeValidator()

	assert.NoError(t, v.Validate(context.Background(), validRecipe()))
}

func TestRecipeValidator_Validate_PointerReceiver(t *testing.T) {
	v := NewRecipeValidator()
	recipe := validRecipe()

	assert.NoError(t, v.Validate(context.Background(), &recipe))
}

func TestRecipeValidator_Validate_EmptyName(t *testing.T) {
	v := NewRecipeValidator()
	recipe := validRecipe()
	recipe.Name = ""

	err := v.Validate(context.Background(), recipe)

	assert.ErrorIs(t, err, ErrEmptyRecipeName)
}

func TestRecipeValidator_Validate_NameTooLong(t *testing.T) {
	v := NewRecipeValidator()
	recipe := validRecipe()
	recipe.Name = strings.Repeat("x", 256)

	err := v.Validate(context.Background(), recipe)

	assert.ErrorIs(t, err, ErrRecipeNameTooLong)
}

func TestRecipeValidator_Validate_BodyTooLong(t *testing.T) {
	v := NewRecipeValidator()
	recipe := validRecipe()
	recipe.Instructions = strings.Repeat("x", 50_001)

	err := v.Validate(context.Background(), recipe)

	assert.ErrorIs(t, err, ErrFieldTooLong)
}

func TestRecipeValidator_Validate_TooManyTags(t *testing.T) {
	v := NewRecipeValidator()
	recipe := validRecipe()
	recipe.Tags = make([]string, 51)

	err := v.Validate(context.Background(), recipe)

	assert.ErrorIs(t, err, ErrTooManyTags)
}

// Field-level scoping only checks the named fields.
func TestRecipeValidator_Validate_FieldScoping(t *testing.T) {
	v := NewRecipeValidator()
	recipe := validRecipe()
	recipe.Name = "" // invalid, but out of scope below

	err := v.Validate(context.Background(), recipe, FieldTags)

	require.NoError(t, err)
}

func TestRecipeValidator_Validate_UnknownField(t *testing.T) {
	v := NewRecipeValidator()

	err := v.Validate(context.Background(), validRecipe(), "no-such-field")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRecipeValidator_Validate_UnsupportedType(t *testing.T) {
	v := NewRecipeValidator()

	err := v.Validate(context.Background(), struct{}{})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

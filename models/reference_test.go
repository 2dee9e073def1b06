package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipeRef_CanonicalUUID(t *testing.T) {
	ref := ParseRecipeRef("9f8b2c41-1f2e-4a7b-9c3d-5e6f7a8b9c0d")

	assert.Equal(t, RefOpaqueID, ref.Kind)
	assert.Equal(t, "9f8b2c41-1f2e-4a7b-9c3d-5e6f7a8b9c0d", ref.ID)
	assert.Empty(t, ref.PublicID)
	assert.Empty(t, ref.Slug)
}

func TestParseRecipeRef_UppercaseUUIDIsCanonicalised(t *testing.T) {
	ref := ParseRecipeRef("9F8B2C41-1F2E-4A7B-9C3D-5E6F7A8B9C0D")

	assert.Equal(t, RefOpaqueID, ref.Kind)
	assert.Equal(t, "9f8b2c41-1f2e-4a7b-9c3d-5e6f7a8b9c0d", ref.ID)
}

func TestParseRecipeRef_Composite(t *testing.T) {
	ref := ParseRecipeRef("9f8b2c41-chana-masala")

	assert.Equal(t, RefComposite, ref.Kind)
	assert.Equal(t, "9f8b2c41", ref.PublicID)
	assert.Equal(t, "chana-masala", ref.Slug)
}

// The slug may itself contain hyphens; only the first hyphen separates the
// public id from the slug.
func TestParseRecipeRef_SplitsOnFirstHyphenOnly(t *testing.T) {
	ref := ParseRecipeRef("abc12345-mapo-tofu-extra-spicy")

	assert.Equal(t, RefComposite, ref.Kind)
	assert.Equal(t, "abc12345", ref.PublicID)
	assert.Equal(t, "mapo-tofu-extra-spicy", ref.Slug)
}

// A 36-character value that is not a valid UUID still falls back to the
// composite interpretation.
func TestParseRecipeRef_UUIDLengthButNotUUID(t *testing.T) {
	ref := ParseRecipeRef("zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz")

	assert.Equal(t, RefComposite, ref.Kind)
	assert.Equal(t, "zzzzzzzz", ref.PublicID)
	assert.Equal(t, "zzzz-zzzz-zzzz-zzzzzzzzzzzz", ref.Slug)
}

func TestParseRecipeRef_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "no hyphen", in: "justaslug"},
		{name: "empty public id", in: "-chana-masala"},
		{name: "empty slug", in: "9f8b2c41-"},
		{name: "lone hyphen", in: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseRecipeRef(tt.in)
			assert.Equal(t, RefInvalid, ref.Kind)
		})
	}
}

func TestRecipe_Reference(t *testing.T) {
	recipe := Recipe{PublicID: "9f8b2c41", Slug: "chana-masala"}

	assert.Equal(t, "9f8b2c41-chana-masala", recipe.Reference())
}

// A recipe's shareable reference must survive a round trip through the
// parser.
func TestRecipe_ReferenceRoundTrip(t *testing.T) {
	recipe := Recipe{PublicID: "9f8b2c41", Slug: "mapo-tofu-extra-spicy"}

	ref := ParseRecipeRef(recipe.Reference())

	assert.Equal(t, RefComposite, ref.Kind)
	assert.Equal(t, recipe.PublicID, ref.PublicID)
	assert.Equal(t, recipe.Slug, ref.Slug)
}

func TestShareRole_Valid(t *testing.T) {
	assert.True(t, RoleEditor.Valid())
	assert.True(t, RoleViewer.Valid())
	assert.False(t, ShareRole("").Valid())
	assert.False(t, ShareRole("Owner").Valid())
}

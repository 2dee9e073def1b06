package models

import (
	"strings"

	"github.com/google/uuid"
)

// RefKind tags the result of parsing an external recipe reference.
type RefKind int

const (
	// RefInvalid marks a reference that is neither a canonical UUID nor a
	// composite "<public_id>-<slug>" value (e.g. no hyphen at all).
	RefInvalid RefKind = iota

	// RefOpaqueID marks a reference given as the recipe's canonical UUID
	// text.
	RefOpaqueID

	// RefComposite marks a reference given in the shareable
	// "<public_id>-<slug>" form.
	RefComposite
)

// RecipeRef is the parsed form of an externally supplied recipe reference
// path segment. Exactly one of the field groups is meaningful depending on
// Kind.
type RecipeRef struct {
	Kind RefKind

	// ID is the canonical UUID text. Set when Kind == RefOpaqueID.
	ID string

	// PublicID and Slug are the two halves of a composite reference.
	// Set when Kind == RefComposite.
	PublicID string
	Slug     string
}

// canonical UUID text is always 36 characters (8-4-4-4-12).
const canonicalUUIDLen = 36

// ParseRecipeRef classifies and decomposes a recipe reference string.
//
// The reference is first tried as a canonical UUID. Failing that, it is
// interpreted as a composite "<public_id>-<slug>" value split on the FIRST
// hyphen only, since the slug may itself contain hyphens. A value with no
// hyphen that is not a UUID yields RefInvalid; no input causes a panic.
func ParseRecipeRef(ref string) RecipeRef {
	if len(ref) == canonicalUUIDLen {
		if id, err := uuid.Parse(ref); err == nil {
			return RecipeRef{Kind: RefOpaqueID, ID: id.String()}
		}
	}

	publicID, slug, found := strings.Cut(ref, "-")
	if !found || publicID == "" || slug == "" {
		return RecipeRef{Kind: RefInvalid}
	}

	return RecipeRef{Kind: RefComposite, PublicID: publicID, Slug: slug}
}

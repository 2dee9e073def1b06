package models

import "time"

// Recipe is the owned content entity of the application.
//
// Identity is two-fold:
//   - ID is the opaque primary key: a random 128-bit UUID generated at
//     creation and immutable afterwards.
//   - PublicID + Slug form the human-shareable reference used in links
//     ("<public_id>-<slug>"). Both are derived values recomputed on every
//     save: PublicID is the first 8 characters of the UUID text, Slug is
//     the slugified current name. Renaming a recipe therefore changes its
//     shareable link. The pair is NOT enforced unique at the storage layer;
//     duplicate matches are resolved deterministically at read time.
type Recipe struct {
	// ID is the canonical UUID text of the recipe's primary key.
	ID string `json:"id"`

	// PublicID is the 8-character prefix of ID used in shareable links.
	// Server-computed; ignored on input.
	PublicID string `json:"public_id"`

	// Slug is the URL-safe form of Name, recomputed on every save.
	// Server-computed; ignored on input.
	Slug string `json:"slug"`

	// AuthorID is the internal id of the owning user. Always taken from
	// the authenticated request, never from the payload.
	AuthorID int64 `json:"author_id"`

	// Name is the display name of the recipe. The only required content
	// field.
	Name string `json:"name"`

	Ingredients  string `json:"ingredients,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Notes        string `json:"notes,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	Source       string `json:"source,omitempty"`
	ActiveTime   string `json:"active_time,omitempty"`
	TotalTime    string `json:"total_time,omitempty"`
	Servings     string `json:"servings,omitempty"`

	// Tags holds the tag names attached to the recipe. On input the list
	// replaces the recipe's tag set; on output tags are reported by name.
	Tags []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// Reference returns the human-shareable composite reference of the recipe
// in the "<public_id>-<slug>" form used in links.
func (r Recipe) Reference() string {
	return r.PublicID + "-" + r.Slug
}

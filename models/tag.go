package models

// Tag is a community-wide label attached to recipes. Tags are upserted by
// slug whenever a recipe is saved; there is no per-user tag ownership.
type Tag struct {
	// TagID is the internal unique identifier of the tag.
	TagID int64 `json:"id"`

	// Name is the tag text as first entered by a user.
	Name string `json:"name"`

	// Slug is the unique, URL-safe form of Name. Tag filters in list
	// requests match against this value.
	Slug string `json:"slug"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}

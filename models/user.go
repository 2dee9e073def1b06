package models

import "time"

// User represents an account entity resolved from an external identity
// provider. Accounts are created lazily: the first authenticated request
// carrying an unknown email claim creates the corresponding row
// (get-or-create-by-email semantics).
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database and used by all ownership and
	// sharing checks.
	UserID int64 `json:"id"`

	// Email is the unique identity key received from the identity
	// provider's token.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	// CreatedAt is the timestamp when the account row was first created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

package models

import "time"

// ShareRole is the enumerated role attached to a share grant.
//
// The role is stored and returned to clients but is not currently used as a
// permission differentiator: the existence of a grant between two users, in
// either direction, establishes full mutual access. The field is kept as
// forward-compatible data.
type ShareRole string

const (
	// RoleEditor is the default role for new grants.
	RoleEditor ShareRole = "Editor"

	// RoleViewer marks a read-intent grant. Enforcement is identical to
	// RoleEditor today.
	RoleViewer ShareRole = "Viewer"
)

// Valid reports whether the role is one of the known enumerated values.
func (r ShareRole) Valid() bool {
	return r == RoleEditor || r == RoleViewer
}

// ShareConfig is a directed access grant between two users.
//
// Although the record is directed (granter → grantee), the access it
// establishes is symmetric: a single grant in either direction lets each
// party edit the other's recipes. Duplicate grants between the same pair are
// permitted and are not deduplicated.
type ShareConfig struct {
	// ID is the opaque UUID primary key of the grant itself.
	ID string `json:"id"`

	// GranterID is the user who created the grant.
	GranterID int64 `json:"granter_id"`

	// GranteeID is the user the grant was issued to.
	GranteeID int64 `json:"grantee_id"`

	// GranterEmail and GranteeEmail identify the parties by address on
	// listings. Resolved read-side, never stored on the grant row.
	GranterEmail string `json:"granter_email,omitempty"`
	GranteeEmail string `json:"grantee_email,omitempty"`

	// Role is the stored Editor/Viewer marker. Defaults to Editor.
	Role ShareRole `json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ShareConfig model.
func (s ShareConfig) TableName() string {
	return "share_configs"
}

// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, JSON response writing,
// JWT token generation and validation, slug computation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// resolved internal user id of the authenticated request.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user's id from the
// context.
//
// Returns the user id and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

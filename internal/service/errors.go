package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRecipeNotFound covers both a missing record and a reference that
	// cannot be parsed, so callers cannot probe which recipe IDs exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	ErrShareNotFound = errors.New("share not found")
	ErrUserNotFound  = errors.New("user not found")

	ErrAccessDenied = errors.New("access denied")

	ErrInvalidShareRole = errors.New("invalid share role")
)

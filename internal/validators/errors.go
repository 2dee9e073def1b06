package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRecipeName   = errors.New("recipe name is required")
	ErrRecipeNameTooLong = errors.New("recipe name is too long")
	ErrFieldTooLong      = errors.New("field value is too long")
	ErrTooManyTags       = errors.New("too many tags")
	ErrTagNameTooLong    = errors.New("tag name is too long")
)

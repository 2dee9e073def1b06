package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the claim set expected in tokens issued by the identity
// provider. On top of the registered claims (iss, sub, exp, iat) the token
// carries the user's email, which is the stable identity key the server
// resolves to an internal user id.
type IdentityClaims struct {
	jwt.RegisteredClaims

	// Email is the user's identity key. Required; tokens without it are
	// rejected.
	Email string `json:"email"`
}

// Token wraps a parsed JWT with convenience accessors for authentication
// flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string
	// form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded identity claim set.
	Claims IdentityClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Email returns the email claim of the token, or an empty string when the
// token has not been parsed.
func (t Token) Email() string {
	return t.Claims.Email
}

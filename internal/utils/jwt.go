package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/recipebookapp/recipebook-server/models"
)

// ErrEmptyEmailClaim is returned when a structurally valid token carries no
// email claim and therefore cannot be resolved to a user.
var ErrEmptyEmailClaim = errors.New("token has no email claim")

// GenerateIdentityToken creates a signed HMAC-SHA256 JWT carrying the given
// email as its identity claim.
//
// The token includes the standard iss/sub/iat/exp claims plus the custom
// "email" claim the server resolves to an internal user id. In production
// tokens are minted by the external identity provider; this helper exists
// for the bundled CLI client and for tests.
func GenerateIdentityToken(issuer, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || email == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// claims.
//
// Validation includes signature verification with the provided sign key, the
// issuer claim check, the expiration check performed by the jwt library, and
// presence of the email claim.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Email == "" {
		return models.Token{}, ErrEmptyEmailClaim
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

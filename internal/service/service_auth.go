package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recipebookapp/recipebook-server/internal/config"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/store"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bearer tokens issued by the identity provider and maps the
// email claim to an internal user record via get-or-create, so an account
// exists from the very first authenticated request.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens whose issuer does not
	// match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token verification parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// ResolveUser validates tokenString and resolves its email claim to a user
// record, creating the account when the email has never been seen before.
//
// Returns the resolved user or:
//   - ErrTokenIsExpired / ErrTokenIsExpiredOrInvalid if the token fails validation.
//   - A wrapped storage error if the get-or-create call fails.
func (a *authService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.GetOrCreateByEmail(ctx, token.Email())
	if err != nil {
		log.Err(err).Str("email", token.Email()).Msg("resolving user by email failed")
		return models.User{}, fmt.Errorf("resolving user by email failed: %w", err)
	}

	return user, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the presence of an email claim. Validation failures
// are normalised to ErrTokenIsExpired or ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

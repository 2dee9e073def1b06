package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles identity-record creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateByEmail implements the identity collaborator's
// create-or-fetch-by-email contract: the first authenticated request with an
// unknown email creates the account row, every later request returns it.
//
// The lookup-then-insert sequence can race with a concurrent first request
// for the same email; the losing insert fails the unique constraint and is
// resolved by re-reading the winning row.
func (r *userRepository) GetOrCreateByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	created, err := r.createUser(ctx, email)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, ErrEmailAlreadyExists) {
		return models.User{}, err
	}

	// Lost the first-sight race; the row exists now.
	log.Debug().Str("email", email).Msg("concurrent user creation detected, re-reading")
	return r.FindByEmail(ctx, email)
}

// FindByEmail retrieves a user record by its unique email.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&user.UserID, &user.Email, &user.Name, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindByID retrieves a user record by its internal id.
func (r *userRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Scan(&user.UserID, &user.Email, &user.Name, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// createUser persists a new identity row. The display name starts out equal
// to the email's local part and can be edited later.
//
// Error handling:
//   - unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) createUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, createUser, email, localPart(email))

	if err := row.Scan(&user.UserID, &user.Email, &user.Name, &user.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.createUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// localPart returns everything before the first '@' of an email address,
// or the address itself when no '@' is present.
func localPart(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}

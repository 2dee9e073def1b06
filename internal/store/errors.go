package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by id or email matches no
	// user record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrEmailAlreadyExists is returned when inserting a user fails on the
	// unique email constraint. GetOrCreateByEmail recovers from it by
	// re-reading the winning row.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrRecipeNotFound is returned when a recipe reference (opaque id or
	// public_id+slug pair) resolves to no stored row.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrShareNotFound is returned when a share grant lookup by id matches
	// no row.
	ErrShareNotFound = errors.New("share grant was not found")

	// ErrUnknownUserReferenced is returned when an insert fails a foreign
	// key check on users, i.e. the granter or grantee no longer exists.
	ErrUnknownUserReferenced = errors.New("referenced user does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

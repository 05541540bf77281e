package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// produces an empty result set, or a sync record references an unknown user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrLocalSessionNotFound is returned when the client has no stored session.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrLocalRecordNotFound is returned when no cached record exists for a user.
	ErrLocalRecordNotFound = errors.New("local user record not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result row
	// fails.
	ErrScanningRow = errors.New("failed to scan row")
)

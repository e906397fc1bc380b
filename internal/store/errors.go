package store

import "errors"

// Sentinel errors returned by store implementations to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrKeyNotFound is returned when a key has no stored value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUserNotAuthenticated is returned by the legacy store when a
	// protected key is read before the user passed an authentication
	// prompt.
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// ErrStoreInvalidated is returned when the store key can no longer
	// decrypt stored values.
	ErrStoreInvalidated = errors.New("secure store key invalidated")

	// ErrInvalidSyncMode is returned when an unknown sync mode is saved.
	ErrInvalidSyncMode = errors.New("invalid sync mode")
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
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when no credential is stored locally.
	ErrCredentialNotFound = errors.New("local credential not found")

	// ErrCorruptedCredential is returned when the stored credential blob
	// cannot be decoded.
	ErrCorruptedCredential = errors.New("local credential is corrupted")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the driver rejects a statement.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")
)

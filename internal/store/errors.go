package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an INSERT or UPDATE on the users
	// table fails because another row already holds the requested username
	// (PostgreSQL unique_violation).
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set, or when an UPDATE or DELETE
	// on the users table affects zero rows.
	ErrUserNotFound = errors.New("user not found")

	// ErrAdvertNotFound is returned when a query, update, or delete targets
	// an advert that does not exist in the database.
	ErrAdvertNotFound = errors.New("advert not found")

	// ErrOwnerMissing is returned when an advert INSERT fails because the
	// referenced owner row does not exist (PostgreSQL foreign_key_violation).
	// The authorization gate resolves the owner before the insert, but the
	// database remains the final consistency authority: the owner may have
	// been deleted between the lookup and the commit.
	ErrOwnerMissing = errors.New("advert owner does not exist")

	// ErrUserOwnsAdverts is returned when a user DELETE fails because adverts
	// still reference the user. The foreign key is declared ON DELETE
	// RESTRICT: dependent adverts must be deleted first.
	ErrUserOwnsAdverts = errors.New("user still owns adverts")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a PATCH update with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails for a reason other than a recognised
	// constraint violation.
	ErrExecutingStatement = errors.New("failed to execute statement")
)

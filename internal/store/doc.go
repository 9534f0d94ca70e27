// Package store implements the PostgreSQL persistence layer for users and
// adverts.
//
// Repositories return sentinel errors (see errors.go) for well-known failure
// conditions so that upper layers can discriminate not-found, conflict, and
// referential-integrity failures with [errors.Is]. The database is the single
// source of truth for uniqueness and foreign-key enforcement: repositories
// never pre-check constraints, they surface the violation the database
// reports at commit time.
package store

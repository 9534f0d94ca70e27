package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field is missing or
	// empty in the incoming request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrCaptionTooLong is returned when an advert caption exceeds the
	// maximum allowed length.
	ErrCaptionTooLong = errors.New("caption is too long")

	// ErrWrongPassword is returned by the authorization gate when the named
	// user exists but the supplied password does not match the stored hash.
	// Distinct from store.ErrUserNotFound: the caller can tell "no such
	// account" apart from "bad credentials".
	ErrWrongPassword = errors.New("incorrect password")

	// ErrHashingPassword is returned when bcrypt fails to hash a password
	// (e.g. the plaintext exceeds bcrypt's 72-byte limit).
	ErrHashingPassword = errors.New("error hashing password")
)

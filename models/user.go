package models

import "time"

// User represents a registered account that can own adverts.
// PasswordHash must never leave the trust boundary: it is excluded from JSON
// serialization and only the service layer compares against it.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"id"`

	// Username is the unique account name. Uniqueness is enforced by the
	// database, not by application-level pre-checks.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialized in responses.
	PasswordHash string `json:"-"`

	// Mail is the contact e-mail address of the account.
	Mail string `json:"mail"`

	// CreatedAt is assigned by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is the explicit allow-list of fields that PATCH /users/{id}/
// may change. A nil field is left untouched. Password carries plaintext on
// the way in; the service layer replaces it with a bcrypt hash before the
// update reaches the store.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Mail     *string `json:"mail,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Password == nil && u.Mail == nil
}

package store

import (
	"context"

	"github.com/ValievMarat/advert-service/models"
)

// UserRepository is the persistence contract of the identity store.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned
	// fields populated. Returns ErrUsernameTaken on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID returns the user with the given id or ErrUserNotFound.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// GetUserByUsername returns the user with the given username or
	// ErrUserNotFound. Used by the authorization gate.
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateUser applies the non-nil fields of update to the user with the
	// given id. The Password field, when set, must already be a bcrypt hash.
	// Returns ErrUserNotFound if the id does not exist and ErrUsernameTaken
	// if a username change collides with another row.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error

	// DeleteUser removes the user with the given id. Returns ErrUserNotFound
	// if absent and ErrUserOwnsAdverts if adverts still reference the user.
	DeleteUser(ctx context.Context, userID int64) error
}

// AdvertRepository is the persistence contract of the listing store.
type AdvertRepository interface {
	// CreateAdvert inserts a new advert tied to its owner and returns it
	// with server-assigned fields populated. Returns ErrOwnerMissing when
	// the owner row no longer exists at commit time.
	CreateAdvert(ctx context.Context, advert models.Advert) (models.Advert, error)

	// GetAdvertByID returns the advert with the given id or ErrAdvertNotFound.
	GetAdvertByID(ctx context.Context, advertID int64) (models.Advert, error)

	// UpdateAdvert replaces caption and description of the advert with the
	// given id. Returns ErrAdvertNotFound if absent.
	UpdateAdvert(ctx context.Context, advertID int64, caption, description string) error

	// DeleteAdvert removes the advert with the given id. Returns
	// ErrAdvertNotFound if absent.
	DeleteAdvert(ctx context.Context, advertID int64) error
}

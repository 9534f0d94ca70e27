package service

import (
	"context"

	"github.com/ValievMarat/advert-service/models"
)

// UserService owns the user lifecycle: creation with password hashing,
// lookup, allow-listed partial update, and removal.
type UserService interface {
	Create(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	Get(ctx context.Context, userID int64) (models.User, error)
	Update(ctx context.Context, userID int64, update models.UserUpdate) error
	Delete(ctx context.Context, userID int64) error
}

// AdvertService owns the advert lifecycle. Every mutation passes the
// authorization gate (owner lookup plus password verification) before it
// reaches the store.
type AdvertService interface {
	Create(ctx context.Context, request models.AdvertMutationRequest) (models.Advert, error)
	Get(ctx context.Context, advertID int64) (models.Advert, error)
	Update(ctx context.Context, advertID int64, request models.AdvertMutationRequest) error
	Delete(ctx context.Context, advertID int64, request models.AdvertDeleteRequest) error
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/ValievMarat/advert-service/models"
	"github.com/jackc/pgerrcode"
)

// advertRepository is the PostgreSQL-backed implementation of
// [AdvertRepository] over the "adverts" table.
type advertRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdvertRepository constructs an [AdvertRepository] backed by the provided
// database connection and logger.
func NewAdvertRepository(db *DB, logger *logger.Logger) AdvertRepository {
	logger.Debug().Msg("creating advert repository")
	return &advertRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdvert persists a new advert and returns the fully populated
// [models.Advert] with server-assigned fields (AdvertID, CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrOwnerMissing]. The gate
//     resolved the owner moments earlier, but the row may have been deleted
//     concurrently; the constraint is the final authority.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *advertRepository) CreateAdvert(ctx context.Context, advert models.Advert) (models.Advert, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdvert, advert.Caption, advert.Description, advert.OwnerID)

	if err := row.Scan(&advert.AdvertID, &advert.Caption, &advert.Description, &advert.OwnerID, &advert.CreatedAt); err != nil {
		log.Err(err).Str("func", "*advertRepository.CreateAdvert").Msg("error: advert insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Advert{}, ErrOwnerMissing
		default:
			return models.Advert{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return advert, nil
}

// GetAdvertByID retrieves an advert record by its primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrAdvertNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *advertRepository) GetAdvertByID(ctx context.Context, advertID int64) (models.Advert, error) {
	log := logger.FromContext(ctx)

	var advert models.Advert
	row := r.db.QueryRowContext(ctx, getAdvertByID, advertID)

	if err := row.Scan(&advert.AdvertID, &advert.Caption, &advert.Description, &advert.OwnerID, &advert.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Advert{}, ErrAdvertNotFound
		}

		log.Err(err).Str("func", "*advertRepository.GetAdvertByID").Msg("error: advert lookup failed")
		return models.Advert{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return advert, nil
}

// UpdateAdvert replaces the two mutable fields of the advert with the given
// id. OwnerID is never part of the SET list: ownership is immutable.
//
// Error handling:
//   - zero rows affected → [ErrAdvertNotFound].
func (r *advertRepository) UpdateAdvert(ctx context.Context, advertID int64, caption, description string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateAdvert, caption, description, advertID)
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.UpdateAdvert").Msg("error: advert update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAdvertNotFound
	}

	return nil
}

// DeleteAdvert removes the advert row with the given id.
//
// Error handling:
//   - zero rows affected → [ErrAdvertNotFound]. Repeating a delete on an
//     already removed advert therefore reports not-found, never success.
func (r *advertRepository) DeleteAdvert(ctx context.Context, advertID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAdvert, advertID)
	if err != nil {
		log.Err(err).Str("func", "*advertRepository.DeleteAdvert").Msg("error: advert delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAdvertNotFound
	}

	return nil
}

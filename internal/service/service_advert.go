package service

import (
	"context"
	"fmt"

	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/ValievMarat/advert-service/internal/store"
	"github.com/ValievMarat/advert-service/models"
	"golang.org/x/crypto/bcrypt"
)

// advertService is the concrete implementation of [AdvertService].
//
// Every mutation runs the authorization gate first: resolve the named user,
// verify the supplied plaintext against the stored bcrypt hash, then perform
// the store operation. Lookup failure and password mismatch stay distinct so
// callers can tell "no such account" apart from "bad credentials". The gate
// is advisory for referential integrity only; the database foreign key is
// the final authority on whether the owner still exists at commit time.
type advertService struct {
	advertRepository store.AdvertRepository
	userRepository   store.UserRepository

	logger *logger.Logger
}

// NewAdvertService constructs an [AdvertService] wired to the advert and
// user repositories. The user repository is needed by the authorization gate.
func NewAdvertService(advertRepository store.AdvertRepository, userRepository store.UserRepository, logger *logger.Logger) AdvertService {
	return &advertService{
		advertRepository: advertRepository,
		userRepository:   userRepository,
		logger:           logger,
	}
}

// Create inserts a new advert owned by the authenticated user.
//
// Returns the persisted advert or:
//   - ErrInvalidDataProvided / ErrCaptionTooLong on malformed input.
//   - store.ErrUserNotFound if the named user does not exist.
//   - ErrWrongPassword if the password does not match.
//   - store.ErrOwnerMissing if the owner row vanished before commit.
func (s *advertService) Create(ctx context.Context, request models.AdvertMutationRequest) (models.Advert, error) {
	log := logger.FromContext(ctx)

	if err := validateAdvertFields(request.Caption, request.Description); err != nil {
		log.Err(err).Str("caption", request.Caption).Msg("invalid advert data provided")
		return models.Advert{}, err
	}

	owner, err := s.authorizeOwner(ctx, request.User, request.Password)
	if err != nil {
		return models.Advert{}, err
	}

	createdAdvert, err := s.advertRepository.CreateAdvert(ctx, models.Advert{
		Caption:     request.Caption,
		Description: request.Description,
		OwnerID:     owner.UserID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", owner.UserID).Msg("advert creation ended with error")
		return models.Advert{}, fmt.Errorf("advert creation ended with error: %w", err)
	}

	return createdAdvert, nil
}

// Get returns the advert with the given id, or store.ErrAdvertNotFound.
// Reads are not gated: adverts are public.
func (s *advertService) Get(ctx context.Context, advertID int64) (models.Advert, error) {
	log := logger.FromContext(ctx)

	foundAdvert, err := s.advertRepository.GetAdvertByID(ctx, advertID)
	if err != nil {
		log.Err(err).Int64("id", advertID).Msg("advert lookup failed")
		return models.Advert{}, fmt.Errorf("advert lookup failed: %w", err)
	}

	return foundAdvert, nil
}

// Update replaces the caption and description of the advert with the given
// id after the gate has passed. Both fields are required: the operation is a
// full replacement of the mutable pair, not a partial patch.
func (s *advertService) Update(ctx context.Context, advertID int64, request models.AdvertMutationRequest) error {
	log := logger.FromContext(ctx)

	if err := validateAdvertFields(request.Caption, request.Description); err != nil {
		log.Err(err).Int64("id", advertID).Msg("invalid advert data provided")
		return err
	}

	if _, err := s.authorizeOwner(ctx, request.User, request.Password); err != nil {
		return err
	}

	if err := s.advertRepository.UpdateAdvert(ctx, advertID, request.Caption, request.Description); err != nil {
		log.Err(err).Int64("id", advertID).Msg("advert update ended with error")
		return fmt.Errorf("advert update ended with error: %w", err)
	}

	return nil
}

// Delete removes the advert with the given id after the gate has passed.
func (s *advertService) Delete(ctx context.Context, advertID int64, request models.AdvertDeleteRequest) error {
	log := logger.FromContext(ctx)

	if _, err := s.authorizeOwner(ctx, request.User, request.Password); err != nil {
		return err
	}

	if err := s.advertRepository.DeleteAdvert(ctx, advertID); err != nil {
		log.Err(err).Int64("id", advertID).Msg("advert delete ended with error")
		return fmt.Errorf("advert delete ended with error: %w", err)
	}

	return nil
}

// authorizeOwner is the authorization gate run before every advert mutation.
//
// Sequence, in order: resolve the user by username (store.ErrUserNotFound
// propagates as-is; the caller reads every lookup failure identically),
// then verify the plaintext against the stored
// bcrypt hash. bcrypt's comparison is constant-time; a mismatch yields
// ErrWrongPassword, which is deliberately distinct from the lookup failure
// because at that point the username did resolve.
func (s *advertService) authorizeOwner(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("missing owner credentials")
		return models.User{}, ErrInvalidDataProvided
	}

	owner, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("owner lookup failed")
		return models.User{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		log.Error().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return owner, nil
}

// validateAdvertFields checks the required advert fields shared by create
// and update.
func validateAdvertFields(caption, description string) error {
	if caption == "" || description == "" {
		return ErrInvalidDataProvided
	}
	if len([]rune(caption)) > models.CaptionMaxLength {
		return ErrCaptionTooLong
	}

	return nil
}

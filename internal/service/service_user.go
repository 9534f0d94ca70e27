package service

import (
	"context"
	"fmt"

	"github.com/ValievMarat/advert-service/internal/config"
	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/ValievMarat/advert-service/internal/store"
	"github.com/ValievMarat/advert-service/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of [UserService].
// It hashes passwords with bcrypt before they reach the repository and
// delegates all constraint enforcement (username uniqueness, foreign keys)
// to the store.
type userService struct {
	// userRepository is the data-access layer used to persist and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository and
// populated with the hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Create registers a new user account.
//
// It validates that username, password, and mail are all non-empty, hashes
// the plaintext password with bcrypt, and delegates persistence to the
// repository. The plaintext never reaches the store.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrUsernameTaken if the username already exists.
func (s *userService) Create(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" || request.Mail == "" {
		log.Error().Str("username", request.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := s.hashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		PasswordHash: hash,
		Mail:         request.Mail,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Get returns the user with the given id, or store.ErrUserNotFound.
func (s *userService) Get(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return foundUser, nil
}

// Update applies the allow-listed fields of update to the user with the
// given id. A password field, when present, is re-hashed before it is handed
// to the repository.
//
// Returns:
//   - ErrInvalidDataProvided if the update carries no fields or an empty value.
//   - store.ErrUserNotFound if the id does not exist.
//   - store.ErrUsernameTaken if a username change collides with another row.
func (s *userService) Update(ctx context.Context, userID int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Error().Int64("id", userID).Msg("empty user update provided")
		return ErrInvalidDataProvided
	}
	if (update.Username != nil && *update.Username == "") ||
		(update.Password != nil && *update.Password == "") ||
		(update.Mail != nil && *update.Mail == "") {
		log.Error().Int64("id", userID).Msg("empty field in user update")
		return ErrInvalidDataProvided
	}

	if update.Password != nil {
		hash, err := s.hashPassword(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return err
		}
		update.Password = &hash
	}

	if err := s.userRepository.UpdateUser(ctx, userID, update); err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return fmt.Errorf("user update ended with error: %w", err)
	}

	return nil
}

// Delete removes the user with the given id.
//
// Returns store.ErrUserNotFound if absent and store.ErrUserOwnsAdverts when
// adverts still reference the account.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user delete ended with error")
		return fmt.Errorf("user delete ended with error: %w", err)
	}

	return nil
}

// hashPassword returns the bcrypt hash of the given plaintext using the
// configured cost.
func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(hash), nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt cost parameter applied when hashing passwords
	// at registration. Verification reads the cost from the stored hash, so
	// changing it only affects new accounts.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// This is the single code path where a raw password becomes a hash: bcrypt
// runs here, once, and only the hash travels further. The store therefore
// never sees plaintext.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - *models.ValidationError carrying the uniqueness message if the email
//     is already registered.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, reg models.UserRegistration) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: string(hash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("email", reg.Email).Msg("duplicate email on registration")
			return models.User{}, models.NewValidationError(validators.MsgEmailAlreadyExists)
		}

		log.Err(err).Str("email", reg.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// VerifyCredentials authenticates an email/password pair.
//
// It looks up the account by exact email match and compares the supplied
// password against the stored bcrypt hash. bcrypt's comparison is applied
// symmetrically to the same algorithm used at registration; raw strings are
// never compared.
//
// Returns the resolved user record or:
//   - ErrInvalidCredentials if either credential is empty, the email is
//     unknown, or the password does not match. The three cases are
//     indistinguishable to the caller.
//   - A wrapped storage error for repository failures other than not-found.
func (a *authService) VerifyCredentials(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("no user behind presented email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Debug().Int64("id", foundUser.ID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StephEngl/KanMind/internal/config"
	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/internal/utils"
	"github.com/StephEngl/KanMind/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// guestEmail, guestPassword and guestFullname describe the optional demo
	// account seeded at startup. All empty when the feature is disabled.
	guestEmail    string
	guestPassword string
	guestFullname string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		guestEmail:     cfg.GuestEmail,
		guestPassword:  cfg.GuestPassword,
		guestFullname:  cfg.GuestFullname,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The full name from the request is split into first and last name, the
// password is hashed with bcrypt, and persistence is delegated to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegistrationRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	first, last := models.SplitFullName(req.Fullname)
	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found — see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CheckEmail looks up the account registered under email and returns its
// public info. Used by the frontend to resolve invitees before adding them
// to a board.
func (a *authService) CheckEmail(ctx context.Context, email string) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return models.UserInfo{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.UserInfo{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return foundUser.Info(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureGuestAccount creates the configured demo account if it does not exist
// yet. Returns the account, or nil when no guest email is configured.
func (a *authService) EnsureGuestAccount(ctx context.Context) (*models.User, error) {
	log := logger.FromContext(ctx)

	if a.guestEmail == "" {
		return nil, nil
	}

	existing, err := a.userRepository.FindUserByEmail(ctx, a.guestEmail)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return nil, fmt.Errorf("guest account lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(a.guestPassword)
	if err != nil {
		return nil, fmt.Errorf("guest password hashing failed: %w", err)
	}

	first, last := models.SplitFullName(a.guestFullname)
	guest, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        a.guestEmail,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		IsGuest:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("guest account creation failed: %w", err)
	}

	log.Info().Int64("user_id", guest.UserID).Str("email", guest.Email).Msg("guest account created")
	return &guest, nil
}

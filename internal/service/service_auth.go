package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/patas-felizes/backend/internal/config"
	"github.com/patas-felizes/backend/internal/crypto"
	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/store"
	"github.com/patas-felizes/backend/internal/utils"
	"github.com/patas-felizes/backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle for both authentication flows, using a UserRepository for
// persistence and argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validate runs declarative struct validation on registration payloads.
	validate *validator.Validate

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenAudience is the "aud" claim embedded in every issued JWT.
	// Tokens whose audience does not match this value are rejected during
	// parsing.
	tokenAudience string

	// basicTokenDuration controls how long a token minted from Basic
	// credentials remains valid.
	basicTokenDuration time.Duration

	// sessionTokenDuration controls how long a registered-user token
	// remains valid.
	sessionTokenDuration time.Duration

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
		userRepository:       userRepository,
		validate:             validator.New(),
		tokenSignKey:         cfg.SecretKey,
		tokenAudience:        cfg.Audience,
		basicTokenDuration:   cfg.BasicTokenTTL,
		sessionTokenDuration: cfg.SessionTokenTTL,
		logger:               logger,
	}
}

// RegisterUser creates a new user account.
//
// The user's username and email are validated declaratively; password must
// be non-empty. The password is hashed with argon2id before persistence, so
// the plaintext never reaches the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A *ValidationError carrying per-field messages if the payload is invalid.
//   - A wrapped storage error if the repository call fails (e.g. identity
//     already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if vErr := a.validateRegistration(user, password); vErr != nil {
		log.Error().Str("username", user.Username).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, vErr
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates a registered user by email and password.
//
// Returns the stored user record or:
//   - ErrInvalidDataProvided if email or password is empty. The store is
//     never queried in that case.
//   - A wrapped storage error if the lookup fails (e.g. unknown email —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = crypto.VerifyPassword(password, foundUser.PasswordHash); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// IssueAdHocToken issues a signed JWT for a caller that presented Basic
// credentials. The token embeds the submitted username, carries the
// configured audience, and expires after the short basic-token TTL. No
// stored identity is involved.
func (a *authService) IssueAdHocToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.IssueBasicToken(username, a.tokenAudience, a.basicTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// IssueSessionToken issues a signed JWT for a registered user. The token
// embeds the user's numeric identifier, carries the configured audience,
// and expires after the long session-token TTL.
func (a *authService) IssueSessionToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.IssueSessionToken(user.UserID, a.tokenAudience, a.sessionTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseToken, verifying the signature and
// the audience claim. Any validation failure (expired, wrong audience,
// malformed, forged) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseToken(tokenString, a.tokenSignKey, a.tokenAudience)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// validateRegistration checks the registration payload and collects
// per-field messages in the response wire format.
func (a *authService) validateRegistration(user models.User, password string) error {
	fields := map[string]string{}

	if err := a.validate.Struct(user); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				switch fieldError.Field() {
				case "Username":
					fields["username"] = "Campo obrigatório"
				case "Email":
					if fieldError.Tag() == "email" {
						fields["email"] = "Email inválido"
					} else {
						fields["email"] = "Campo obrigatório"
					}
				}
			}
		} else {
			fields["payload"] = "Dados inválidos"
		}
	}

	if password == "" {
		fields["password"] = "Campo obrigatório"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

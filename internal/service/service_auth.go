package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/utils"
	"github.com/MKhiriev/go-bot-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It checks the configured admin credentials and issues JWTs for the
// management API.
type authService struct {
	// adminLogin is the only login accepted by Login.
	adminLogin string

	// adminPasswordHash is the bcrypt hash the submitted password is
	// compared against.
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the admin
// credentials and token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login checks admin against the configured credentials.
//
// Returns:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongCredentials if the login is unknown or the password does not
//     match the bcrypt hash.
func (a *authService) Login(ctx context.Context, admin models.Admin) error {
	log := logger.FromContextOr(ctx, a.logger)

	if admin.Login == "" || admin.Password == "" {
		log.Error().Str("login", admin.Login).Msg("invalid admin data provided")
		return ErrInvalidDataProvided
	}

	loginMatches := subtle.ConstantTimeCompare([]byte(admin.Login), []byte(a.adminLogin)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(admin.Password))
	if !loginMatches || passwordErr != nil {
		log.Warn().Str("login", admin.Login).Msg("wrong admin credentials")
		return ErrWrongCredentials
	}

	return nil
}

// CreateToken issues a signed JWT whose subject is login.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed if
// JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, login string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, login, a.tokenDuration, a.tokenSignKey)
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
		logger.FromContextOr(ctx, a.logger).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

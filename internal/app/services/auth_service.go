package services

import (
	"crypto/subtle"

	"github.com/rs/zerolog"

	"github.com/keremavci/studentapi/internal/pkg/apperrors"
	"github.com/keremavci/studentapi/internal/pkg/auth"
)

// Credentials is the configured username/password pair checked at login.
type Credentials struct {
	Username string
	Password string
}

// authService implements AuthService against a single configured credential
// pair. There is no user table; the pair comes from configuration.
type authService struct {
	credentials Credentials
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(credentials Credentials, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Authenticate compares the supplied pair against the configured one.
// Both comparisons are constant-time and always executed, so the response
// does not reveal which field was wrong.
func (s *authService) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credentials.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.Password)) == 1
	return userOK && passOK
}

// Login authenticates the pair and issues a signed bearer token for the
// username on success.
func (s *authService) Login(username, password string) (string, int, error) {
	if !s.Authenticate(username, password) {
		s.logger.Warn().Str("username", username).Msg("Login failed")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(username)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate token")
		return "", 0, err
	}

	s.logger.Info().Str("username", username).Msg("Login successful")
	return token, expiresIn, nil
}

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/javiertc/adivina-go/internal/dependencies/clock"
	"github.com/javiertc/adivina-go/internal/model"
	"github.com/javiertc/adivina-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// usernameClaim is the JWT claim carrying the authenticated username
const usernameClaim = "usuario"

// Config holds configuration for the auth service
type Config struct {
	// Secret signs and verifies tokens (shared, fixed)
	Secret string
	// TokenTTL is the token lifetime from issuance
	TokenTTL time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		Secret:   "secretkey",
		TokenTTL: 24 * time.Hour,
	}
}

// Service handles account registration, login and token verification
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	secret  []byte
	ttl     time.Duration
	logger  *slog.Logger
}

// New creates a new auth Service
func New(storage storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.Secret == "" {
		cfg.Secret = DefaultConfig().Secret
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	return &Service{
		storage: storage,
		clock:   clk,
		secret:  []byte(cfg.Secret),
		ttl:     cfg.TokenTTL,
		logger:  logger,
	}
}

// Register creates an account with zeroed stats.
// Fails with model.ErrUserExists if the username is taken.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	account := &model.Account{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := s.storage.CreateAccount(ctx, account); err != nil {
		return err
	}

	s.logger.Info("user registered", slog.String("username", username))
	return nil
}

// Login verifies credentials and issues a signed token carrying the username.
// Unknown usernames and password mismatches both fail with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if account.Password != password {
		return "", ErrInvalidCredentials
	}

	now := s.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		usernameClaim: username,
		"iat":         now.Unix(),
		"exp":         now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	s.logger.Info("user logged in", slog.String("username", username))
	return signed, nil
}

// VerifyToken checks a token's signature and expiry and extracts the username claim
func (s *Service) VerifyToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	username, _ := claims[usernameClaim].(string)
	if username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}

// Stats returns the cumulative stats record for a user
func (s *Service) Stats(ctx context.Context, username string) (*model.Account, error) {
	return s.storage.GetAccount(ctx, username)
}

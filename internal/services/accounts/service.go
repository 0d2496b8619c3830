package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
)

const (
	DefaultTokenTTL = 24 * time.Hour
)

// Service handles registration, login and session tokens.
type Service struct {
	repo       catalogue.Repository
	bcryptCost int
	jwtSecret  []byte
	tokenTTL   time.Duration
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithTokenTTL overrides how long issued tokens stay valid.
func WithTokenTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl != 0 {
			s.tokenTTL = ttl
		}
	}
}

// NewService creates an account service signing tokens with jwtSecret.
func NewService(repo catalogue.Repository, jwtSecret string, opts ...ServiceOption) *Service {
	s := &Service{
		repo:       repo,
		bcryptCost: bcrypt.DefaultCost,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   DefaultTokenTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new account plus its personal playlist. The username
// is unique case-insensitively; " SimonCat " and "simoncat" are the same
// account.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	existing, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username %q: %w", username, err)
	}
	if existing != nil {
		return nil, ErrNameNotUnique
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := models.NewUser(0, username, string(hash))
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddUser(ctx, user); err != nil {
		return nil, fmt.Errorf("storing user %q: %w", username, err)
	}
	if err := s.repo.CreatePlaylist(ctx, user); err != nil {
		return nil, fmt.Errorf("creating playlist for %q: %w", username, err)
	}

	// A fresh session starts with no recently-added highlights.
	s.repo.SetRecentlyAddedEpisode(catalogue.NoMarker)
	s.repo.SetRecentlyAddedPodcast(catalogue.NoMarker)
	return user, nil
}

// Authenticate verifies the credentials and returns the account.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching user %q: %w", username, err)
	}
	if user == nil {
		return nil, ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}

// GetUser resolves an account by username.
func (s *Service) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching user %q: %w", username, err)
	}
	if user == nil {
		return nil, ErrUnknownUser
	}
	return user, nil
}

// GenerateToken issues a signed session token carrying the username.
func (s *Service) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a session token and returns the username it names.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

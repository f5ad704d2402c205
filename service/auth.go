package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/port-russell/marina-api/config"
	"github.com/port-russell/marina-api/crypto"
	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
	securityjwt "github.com/port-russell/marina-api/security/jwt"
)

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	data         *data.Data
	tokenManager *securityjwt.TokenManager
	tokenTTL     time.Duration
	logger       *logger.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(d *data.Data, tm *securityjwt.TokenManager, cfg *config.Config, log *logger.Logger) *AuthService {
	ttl := securityjwt.DefaultAccessTokenExpire
	if cfg.Auth.JWT.Expire > 0 {
		ttl = time.Duration(cfg.Auth.JWT.Expire) * time.Minute
	}

	return &AuthService{
		data:         d,
		tokenManager: tm,
		tokenTTL:     ttl,
		logger:       log,
	}
}

// Login checks the credentials and returns the user with a signed session
// token. Email and password failures stay distinguishable, as in the
// original interface.
func (s *AuthService) Login(ctx context.Context, email, password string) (*repository.User, string, error) {
	user, err := s.data.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrEmailNotFound
		}
		return nil, "", err
	}

	if !crypto.ComparePassword(user.Password, password) {
		return nil, "", ErrPasswordMismatch
	}

	payload := map[string]any{
		"user_id": user.ID.Hex(),
		"email":   user.Email,
	}

	token, err := s.tokenManager.GenerateAccessToken(uuid.NewString(), payload, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	s.logger.Infof(ctx, "user logged in: %s", user.Email)
	return user, token, nil
}

// ValidateToken decodes a session token into its claims.
func (s *AuthService) ValidateToken(token string) (map[string]any, error) {
	return s.tokenManager.DecodeToken(token)
}

package service

import (
	"context"
	"errors"

	"github.com/port-russell/marina-api/crypto"
	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
)

// UserService handles user account management.
type UserService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewUserService creates a new user service.
func NewUserService(d *data.Data, log *logger.Logger) *UserService {
	return &UserService{
		data:   d,
		logger: log,
	}
}

// CreateUser registers a new user. The password is hashed here; no other
// code path stores a plaintext password.
func (s *UserService) CreateUser(ctx context.Context, username, email, password string) (*repository.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.data.UserRepo.FindByEmail(ctx, email); err == nil {
		return nil, repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(ctx, password)
	if err != nil {
		return nil, err
	}

	user := &repository.User{
		Username: username,
		Email:    email,
		Password: hash,
	}

	created, err := s.data.UserRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Infof(ctx, "user created: %s", created.Email)
	return created, nil
}

// GetUser retrieves a user by email.
func (s *UserService) GetUser(ctx context.Context, email string) (*repository.User, error) {
	return s.data.UserRepo.FindByEmail(ctx, email)
}

// ListUsers retrieves all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*repository.User, error) {
	return s.data.UserRepo.List(ctx)
}

// UpdateUser changes the supplied fields of the user with the email. A new
// password is re-hashed before storage; absent fields stay untouched.
func (s *UserService) UpdateUser(ctx context.Context, email, username, password string) (*repository.User, error) {
	fields := repository.UserUpdate{Username: username}

	if password != "" {
		hash, err := crypto.HashPassword(ctx, password)
		if err != nil {
			return nil, err
		}
		fields.Password = hash
	}

	return s.data.UserRepo.UpdateByEmail(ctx, email, fields)
}

// DeleteUser deletes a user by email.
func (s *UserService) DeleteUser(ctx context.Context, email string) error {
	return s.data.UserRepo.DeleteByEmail(ctx, email)
}

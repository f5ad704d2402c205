package service

import (
	"context"
	"errors"

	"github.com/port-russell/marina-api/config"
	"github.com/port-russell/marina-api/data/repository"
)

// EnsureAdminUser guarantees the configured admin account exists so the
// demo credentials work against an empty database. Idempotent; meant to run
// once per process start. Failures are the caller's to log, not fatal.
func (s *UserService) EnsureAdminUser(ctx context.Context, admin *config.Admin) error {
	_, err := s.data.UserRepo.FindByEmail(ctx, admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	if _, err := s.CreateUser(ctx, admin.Username, admin.Email, admin.Password); err != nil {
		return err
	}

	s.logger.Infof(ctx, "admin user created (%s)", admin.Email)
	return nil
}

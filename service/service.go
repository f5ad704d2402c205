// Package service contains the business logic behind the HTTP surface:
// credential verification, token issuance, input validation and the
// uniqueness and existence checks the CRUD surfaces enforce.
package service

import (
	"github.com/port-russell/marina-api/config"
	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/logging/logger"
	securityjwt "github.com/port-russell/marina-api/security/jwt"
)

// Service aggregates all business logic services.
type Service struct {
	Auth        *AuthService
	User        *UserService
	Catway      *CatwayService
	Reservation *ReservationService
}

// NewService creates a new service instance with all sub-services initialized.
func NewService(d *data.Data, cfg *config.Config, log *logger.Logger) *Service {
	tokenManager := securityjwt.NewTokenManager(cfg.Auth.JWT.Secret)

	return &Service{
		Auth:        NewAuthService(d, tokenManager, cfg, log),
		User:        NewUserService(d, log),
		Catway:      NewCatwayService(d, log),
		Reservation: NewReservationService(d, log),
	}
}

package service

import (
	"context"

	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
)

// CatwayService manages the docking slot directory.
type CatwayService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewCatwayService creates a new catway service.
func NewCatwayService(d *data.Data, log *logger.Logger) *CatwayService {
	return &CatwayService{
		data:   d,
		logger: log,
	}
}

// validCatwayType restricts the type to the two enumerated values.
func validCatwayType(t string) bool {
	return t == repository.CatwayTypeLong || t == repository.CatwayTypeShort
}

// CreateCatway creates a new catway after validating the type enum and the
// state. The number must be unique.
func (s *CatwayService) CreateCatway(ctx context.Context, number int, catwayType, catwayState string) (*repository.Catway, error) {
	if !validCatwayType(catwayType) || catwayState == "" {
		return nil, ErrInvalidInput
	}

	catway := &repository.Catway{
		CatwayNumber: number,
		CatwayType:   catwayType,
		CatwayState:  catwayState,
	}

	created, err := s.data.CatwayRepo.Create(ctx, catway)
	if err != nil {
		return nil, err
	}

	s.logger.Infof(ctx, "catway created: %d", created.CatwayNumber)
	return created, nil
}

// GetCatway retrieves a catway by number.
func (s *CatwayService) GetCatway(ctx context.Context, number int) (*repository.Catway, error) {
	return s.data.CatwayRepo.FindByNumber(ctx, number)
}

// ListCatways retrieves all catways.
func (s *CatwayService) ListCatways(ctx context.Context) ([]*repository.Catway, error) {
	return s.data.CatwayRepo.List(ctx)
}

// UpdateCatwayState changes the state of a catway. catwayState is the only
// mutable field.
func (s *CatwayService) UpdateCatwayState(ctx context.Context, number int, state string) (*repository.Catway, error) {
	if state == "" {
		return nil, ErrInvalidInput
	}

	return s.data.CatwayRepo.UpdateState(ctx, number, state)
}

// DeleteCatway deletes a catway by number. Its reservations are not
// cascade-deleted.
func (s *CatwayService) DeleteCatway(ctx context.Context, number int) error {
	return s.data.CatwayRepo.DeleteByNumber(ctx, number)
}

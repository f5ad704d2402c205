package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
)

// SeedService replaces the catway and reservation collections with sample
// data from JSON files.
type SeedService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(d *data.Data, log *logger.Logger) *SeedService {
	return &SeedService{
		data:   d,
		logger: log,
	}
}

// Seed wipes the catway and reservation collections and reimports them from
// the given JSON files.
func (s *SeedService) Seed(ctx context.Context, catwaysPath, reservationsPath string) error {
	catways, err := loadJSON[repository.Catway](catwaysPath)
	if err != nil {
		return fmt.Errorf("failed to load catways data: %w", err)
	}

	reservations, err := loadJSON[repository.Reservation](reservationsPath)
	if err != nil {
		return fmt.Errorf("failed to load reservations data: %w", err)
	}

	if err := s.data.CatwayRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.data.ReservationRepo.DeleteAll(ctx); err != nil {
		return err
	}

	if err := s.data.CatwayRepo.InsertMany(ctx, catways); err != nil {
		return err
	}
	if err := s.data.ReservationRepo.InsertMany(ctx, reservations); err != nil {
		return err
	}

	s.logger.Infof(ctx, "seeded %d catways and %d reservations", len(catways), len(reservations))
	return nil
}

func loadJSON[T any](path string) ([]*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []*T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

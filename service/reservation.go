package service

import (
	"context"

	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
)

// ReservationService manages bookings scoped to a catway number.
type ReservationService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewReservationService creates a new reservation service.
func NewReservationService(d *data.Data, log *logger.Logger) *ReservationService {
	return &ReservationService{
		data:   d,
		logger: log,
	}
}

// CreateReservation books a catway after checking the catway exists. The
// existence check and the insert are not atomic; a catway deleted in
// between still gets the reservation, matching the original behavior.
// Dates are accepted as provided, with no range or overlap validation.
func (s *ReservationService) CreateReservation(ctx context.Context, catwayNumber int, fields repository.ReservationUpdate) (*repository.Reservation, error) {
	if fields.ClientName == "" || fields.BoatName == "" || fields.StartDate == "" || fields.EndDate == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.data.CatwayRepo.FindByNumber(ctx, catwayNumber); err != nil {
		return nil, err
	}

	reservation := &repository.Reservation{
		CatwayNumber: catwayNumber,
		ClientName:   fields.ClientName,
		BoatName:     fields.BoatName,
		StartDate:    fields.StartDate,
		EndDate:      fields.EndDate,
	}

	created, err := s.data.ReservationRepo.Create(ctx, reservation)
	if err != nil {
		return nil, err
	}

	s.logger.Infof(ctx, "reservation created for catway %d: %s", catwayNumber, created.ID.Hex())
	return created, nil
}

// GetReservation retrieves one reservation, scoped by both keys.
func (s *ReservationService) GetReservation(ctx context.Context, catwayNumber int, id string) (*repository.Reservation, error) {
	return s.data.ReservationRepo.FindOne(ctx, catwayNumber, id)
}

// ListReservations retrieves all reservations of a catway.
func (s *ReservationService) ListReservations(ctx context.Context, catwayNumber int) ([]*repository.Reservation, error) {
	return s.data.ReservationRepo.FindByCatway(ctx, catwayNumber)
}

// UpdateReservation replaces the four mutable fields, scoped by both keys.
func (s *ReservationService) UpdateReservation(ctx context.Context, catwayNumber int, id string, fields repository.ReservationUpdate) (*repository.Reservation, error) {
	return s.data.ReservationRepo.Replace(ctx, catwayNumber, id, fields)
}

// DeleteReservation removes a reservation, scoped by both keys.
func (s *ReservationService) DeleteReservation(ctx context.Context, catwayNumber int, id string) error {
	return s.data.ReservationRepo.Delete(ctx, catwayNumber, id)
}

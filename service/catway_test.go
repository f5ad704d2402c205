package service

import (
	"context"
	"errors"
	"testing"

	"github.com/port-russell/marina-api/data/repository"
)

func TestCreateCatway(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	catway, err := svc.Catway.CreateCatway(ctx, 4, repository.CatwayTypeLong, "bon état")
	if err != nil {
		t.Fatalf("failed to create catway: %v", err)
	}
	if catway.CatwayNumber != 4 || catway.CatwayType != "long" || catway.CatwayState != "bon état" {
		t.Errorf("unexpected catway: %+v", catway)
	}
}

func TestCreateCatwayValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name        string
		catwayType  string
		catwayState string
	}{
		{"unknown type", "medium", "bon état"},
		{"empty type", "", "bon état"},
		{"empty state", "long", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Catway.CreateCatway(ctx, 1, tt.catwayType, tt.catwayState); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateCatwayDuplicateNumber(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Catway.CreateCatway(ctx, 4, "long", "bon état"); err != nil {
		t.Fatalf("failed to create catway: %v", err)
	}
	if _, err := svc.Catway.CreateCatway(ctx, 4, "short", "autre"); !errors.Is(err, repository.ErrCatwayNumberTaken) {
		t.Errorf("expected ErrCatwayNumberTaken, got %v", err)
	}
}

func TestUpdateCatwayState(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Catway.CreateCatway(ctx, 4, "long", "bon état"); err != nil {
		t.Fatalf("failed to create catway: %v", err)
	}

	updated, err := svc.Catway.UpdateCatwayState(ctx, 4, "peinture à refaire")
	if err != nil {
		t.Fatalf("failed to update catway: %v", err)
	}
	if updated.CatwayState != "peinture à refaire" {
		t.Errorf("unexpected state: %q", updated.CatwayState)
	}

	if _, err := svc.Catway.UpdateCatwayState(ctx, 4, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty state, got %v", err)
	}
	if _, err := svc.Catway.UpdateCatwayState(ctx, 99, "x"); !errors.Is(err, repository.ErrCatwayNotFound) {
		t.Errorf("expected ErrCatwayNotFound, got %v", err)
	}
}

func TestDeleteCatwayKeepsReservations(t *testing.T) {
	svc, d := newTestService()
	ctx := context.Background()

	if _, err := svc.Catway.CreateCatway(ctx, 4, "long", "bon état"); err != nil {
		t.Fatalf("failed to create catway: %v", err)
	}
	if _, err := svc.Reservation.CreateReservation(ctx, 4, repository.ReservationUpdate{
		ClientName: "Jean Dupont",
		BoatName:   "L'Espadon",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-15",
	}); err != nil {
		t.Fatalf("failed to create reservation: %v", err)
	}

	if err := svc.Catway.DeleteCatway(ctx, 4); err != nil {
		t.Fatalf("failed to delete catway: %v", err)
	}

	left, err := d.ReservationRepo.FindByCatway(ctx, 4)
	if err != nil {
		t.Fatalf("failed to list reservations: %v", err)
	}
	if len(left) != 1 {
		t.Errorf("expected the reservation to survive the catway delete, got %d left", len(left))
	}
}

func TestListCatwaysSorted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, n := range []int{3, 1, 2} {
		if _, err := svc.Catway.CreateCatway(ctx, n, "long", "bon état"); err != nil {
			t.Fatalf("failed to create catway %d: %v", n, err)
		}
	}

	catways, err := svc.Catway.ListCatways(ctx)
	if err != nil {
		t.Fatalf("failed to list catways: %v", err)
	}
	if len(catways) != 3 {
		t.Fatalf("expected 3 catways, got %d", len(catways))
	}
	for i, want := range []int{1, 2, 3} {
		if catways[i].CatwayNumber != want {
			t.Errorf("position %d: got %d, want %d", i, catways[i].CatwayNumber, want)
		}
	}
}

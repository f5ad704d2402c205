package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/port-russell/marina-api/logging/logger"
)

// Reservation represents a booking of a catway for a client and boat over a
// date range. Dates are stored as provided; the server applies no range or
// overlap validation.
type Reservation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CatwayNumber int                `bson:"catwayNumber" json:"catwayNumber"`
	ClientName   string             `bson:"clientName" json:"clientName"`
	BoatName     string             `bson:"boatName" json:"boatName"`
	StartDate    string             `bson:"startDate" json:"startDate"`
	EndDate      string             `bson:"endDate" json:"endDate"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReservationUpdate carries the four replaceable reservation fields.
type ReservationUpdate struct {
	ClientName string
	BoatName   string
	StartDate  string
	EndDate    string
}

// ReservationRepository defines the interface for reservation data
// operations. Single-record lookups are always scoped by both the
// reservation id and the catway number.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation) (*Reservation, error)
	FindByCatway(ctx context.Context, catwayNumber int) ([]*Reservation, error)
	FindOne(ctx context.Context, catwayNumber int, id string) (*Reservation, error)
	Replace(ctx context.Context, catwayNumber int, id string, fields ReservationUpdate) (*Reservation, error)
	Delete(ctx context.Context, catwayNumber int, id string) error
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, reservations []*Reservation) error
}

type reservationRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewReservationRepository creates a new reservation repository instance.
func NewReservationRepository(db *mongo.Database, logger *logger.Logger) ReservationRepository {
	return &reservationRepository{
		collection: db.Collection("reservations"),
		logger:     logger,
	}
}

// scopedFilter builds the two-key filter. A malformed object id matches
// nothing, like the original's unmatched lookups.
func scopedFilter(catwayNumber int, id string) (bson.M, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	return bson.M{"_id": objectID, "catwayNumber": catwayNumber}, nil
}

// Create inserts a new reservation.
func (r *reservationRepository) Create(ctx context.Context, reservation *Reservation) (*Reservation, error) {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt

	if _, err := r.collection.InsertOne(ctx, reservation); err != nil {
		r.logger.Errorf(ctx, "failed to create reservation: %v", err)
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return reservation, nil
}

// FindByCatway retrieves all reservations for a catway number.
func (r *reservationRepository) FindByCatway(ctx context.Context, catwayNumber int) ([]*Reservation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"catwayNumber": catwayNumber})
	if err != nil {
		r.logger.Errorf(ctx, "failed to list reservations for catway %d: %v", catwayNumber, err)
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := []*Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		r.logger.Errorf(ctx, "failed to decode reservations: %v", err)
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	return reservations, nil
}

// FindOne retrieves a reservation scoped by both keys.
func (r *reservationRepository) FindOne(ctx context.Context, catwayNumber int, id string) (*Reservation, error) {
	filter, err := scopedFilter(catwayNumber, id)
	if err != nil {
		return nil, err
	}

	var reservation Reservation
	if err := r.collection.FindOne(ctx, filter).Decode(&reservation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReservationNotFound
		}
		r.logger.Errorf(ctx, "failed to find reservation %s: %v", id, err)
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return &reservation, nil
}

// Replace overwrites the four mutable fields of a reservation.
func (r *reservationRepository) Replace(ctx context.Context, catwayNumber int, id string, fields ReservationUpdate) (*Reservation, error) {
	filter, err := scopedFilter(catwayNumber, id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"clientName": fields.ClientName,
			"boatName":   fields.BoatName,
			"startDate":  fields.StartDate,
			"endDate":    fields.EndDate,
			"updatedAt":  time.Now(),
		},
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, ErrReservationNotFound
		}
		r.logger.Errorf(ctx, "failed to update reservation %s: %v", id, result.Err())
		return nil, fmt.Errorf("failed to update reservation: %w", result.Err())
	}

	var updated Reservation
	if err := result.Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated reservation: %w", err)
	}

	return &updated, nil
}

// Delete removes a reservation scoped by both keys.
func (r *reservationRepository) Delete(ctx context.Context, catwayNumber int, id string) error {
	filter, err := scopedFilter(catwayNumber, id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		r.logger.Errorf(ctx, "failed to delete reservation %s: %v", id, err)
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// DeleteAll removes every reservation. Used by the seed command.
func (r *reservationRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear reservations: %w", err)
	}
	return nil
}

// InsertMany inserts a batch of reservations. Used by the seed command.
func (r *reservationRepository) InsertMany(ctx context.Context, reservations []*Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	docs := make([]any, 0, len(reservations))
	now := time.Now()
	for _, res := range reservations {
		res.ID = primitive.NewObjectID()
		res.CreatedAt = now
		res.UpdatedAt = now
		docs = append(docs, res)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert reservations: %w", err)
	}
	return nil
}

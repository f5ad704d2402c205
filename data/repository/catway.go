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

// Catway types.
const (
	CatwayTypeLong  = "long"
	CatwayTypeShort = "short"
)

// Catway represents a docking slot record.
type Catway struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CatwayNumber int                `bson:"catwayNumber" json:"catwayNumber"`
	CatwayType   string             `bson:"catwayType" json:"catwayType"`
	CatwayState  string             `bson:"catwayState" json:"catwayState"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CatwayRepository defines the interface for catway data operations.
type CatwayRepository interface {
	Create(ctx context.Context, catway *Catway) (*Catway, error)
	FindByNumber(ctx context.Context, number int) (*Catway, error)
	List(ctx context.Context) ([]*Catway, error)
	UpdateState(ctx context.Context, number int, state string) (*Catway, error)
	DeleteByNumber(ctx context.Context, number int) error
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, catways []*Catway) error
}

type catwayRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewCatwayRepository creates a new catway repository instance.
func NewCatwayRepository(db *mongo.Database, logger *logger.Logger) CatwayRepository {
	collection := db.Collection("catways")

	// Create unique index on catwayNumber
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "catwayNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warnf(ctx, "failed to create index on catways.catwayNumber: %v", err)
	}

	return &catwayRepository{
		collection: collection,
		logger:     logger,
	}
}

// Create inserts a new catway.
func (r *catwayRepository) Create(ctx context.Context, catway *Catway) (*Catway, error) {
	catway.ID = primitive.NewObjectID()
	catway.CreatedAt = time.Now()
	catway.UpdatedAt = catway.CreatedAt

	if _, err := r.collection.InsertOne(ctx, catway); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrCatwayNumberTaken
		}
		r.logger.Errorf(ctx, "failed to create catway: %v", err)
		return nil, fmt.Errorf("failed to create catway: %w", err)
	}

	return catway, nil
}

// FindByNumber retrieves a catway by its number.
func (r *catwayRepository) FindByNumber(ctx context.Context, number int) (*Catway, error) {
	var catway Catway
	err := r.collection.FindOne(ctx, bson.M{"catwayNumber": number}).Decode(&catway)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCatwayNotFound
		}
		r.logger.Errorf(ctx, "failed to find catway %d: %v", number, err)
		return nil, fmt.Errorf("failed to find catway: %w", err)
	}

	return &catway, nil
}

// List retrieves all catways ordered by number.
func (r *catwayRepository) List(ctx context.Context) ([]*Catway, error) {
	opts := options.Find().SetSort(bson.D{{Key: "catwayNumber", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Errorf(ctx, "failed to list catways: %v", err)
		return nil, fmt.Errorf("failed to list catways: %w", err)
	}
	defer cursor.Close(ctx)

	catways := []*Catway{}
	if err := cursor.All(ctx, &catways); err != nil {
		r.logger.Errorf(ctx, "failed to decode catways: %v", err)
		return nil, fmt.Errorf("failed to decode catways: %w", err)
	}

	return catways, nil
}

// UpdateState changes the state of a catway. Only catwayState is mutable
// after creation.
func (r *catwayRepository) UpdateState(ctx context.Context, number int, state string) (*Catway, error) {
	update := bson.M{
		"$set": bson.M{
			"catwayState": state,
			"updatedAt":   time.Now(),
		},
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"catwayNumber": number},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, ErrCatwayNotFound
		}
		r.logger.Errorf(ctx, "failed to update catway %d: %v", number, result.Err())
		return nil, fmt.Errorf("failed to update catway: %w", result.Err())
	}

	var updated Catway
	if err := result.Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated catway: %w", err)
	}

	return &updated, nil
}

// DeleteByNumber deletes a catway by its number. Reservations referencing
// the number are left in place.
func (r *catwayRepository) DeleteByNumber(ctx context.Context, number int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"catwayNumber": number})
	if err != nil {
		r.logger.Errorf(ctx, "failed to delete catway %d: %v", number, err)
		return fmt.Errorf("failed to delete catway: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrCatwayNotFound
	}

	return nil
}

// DeleteAll removes every catway. Used by the seed command.
func (r *catwayRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear catways: %w", err)
	}
	return nil
}

// InsertMany inserts a batch of catways. Used by the seed command.
func (r *catwayRepository) InsertMany(ctx context.Context, catways []*Catway) error {
	if len(catways) == 0 {
		return nil
	}

	docs := make([]any, 0, len(catways))
	now := time.Now()
	for _, c := range catways {
		c.ID = primitive.NewObjectID()
		c.CreatedAt = now
		c.UpdatedAt = now
		docs = append(docs, c)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert catways: %w", err)
	}
	return nil
}

// Package repository provides MongoDB-backed persistence for the API.
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

// User represents a stored credential record. The password hash is never
// serialized in API responses.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}

// UserUpdate lists the mutable user fields. Empty fields are left untouched.
type UserUpdate struct {
	Username string
	Password string
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateByEmail(ctx context.Context, email string, fields UserUpdate) (*User, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type userRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	collection := db.Collection("users")

	// Create unique index on email
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warnf(ctx, "failed to create index on users.email: %v", err)
	}

	return &userRepository{
		collection: collection,
		logger:     logger,
	}
}

// Create inserts a new user. The password must already be hashed.
func (r *userRepository) Create(ctx context.Context, user *User) (*User, error) {
	user.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		r.logger.Errorf(ctx, "failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		r.logger.Errorf(ctx, "failed to find user by email %s: %v", email, err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// List retrieves all users.
func (r *userRepository) List(ctx context.Context) ([]*User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Errorf(ctx, "failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*User{}
	if err := cursor.All(ctx, &users); err != nil {
		r.logger.Errorf(ctx, "failed to decode users: %v", err)
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// UpdateByEmail applies the supplied fields to the user with the email.
func (r *userRepository) UpdateByEmail(ctx context.Context, email string, fields UserUpdate) (*User, error) {
	set := bson.M{}
	if fields.Username != "" {
		set["username"] = fields.Username
	}
	if fields.Password != "" {
		set["password"] = fields.Password
	}

	filter := bson.M{"email": email}
	if len(set) == 0 {
		// Nothing to change; behave like a read.
		return r.FindByEmail(ctx, email)
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		r.logger.Errorf(ctx, "failed to update user %s: %v", email, result.Err())
		return nil, fmt.Errorf("failed to update user: %w", result.Err())
	}

	var updated User
	if err := result.Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated user: %w", err)
	}

	return &updated, nil
}

// DeleteByEmail deletes a user by email.
func (r *userRepository) DeleteByEmail(ctx context.Context, email string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		r.logger.Errorf(ctx, "failed to delete user %s: %v", email, err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

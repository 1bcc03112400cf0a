// Package user persists accounts and their feed-source subscriptions.
package user

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SiddheshKanawade/news-hub-backend/metrics"
	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// Store provides persistence for user accounts.
type Store struct {
	users *mongo.Collection
	now   func() time.Time
}

func NewStore(db *mongo.Database) *Store {
	return &Store{users: db.Collection("users"), now: time.Now}
}

// Create inserts a new account. The email must not already exist.
func (s *Store) Create(ctx context.Context, email, username, hashedPassword string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.DuplicateValue("user with email %s already exists", email)
	}

	now := s.now().UTC()
	u := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		IsVerified:     false,
		Disabled:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.users.InsertOne(ctx, u); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("insert", "users", "error").Inc()
		log.Printf("Failed to insert user %s: %v", email, err)
		return nil, insertError(email, err)
	}
	metrics.MongoOperationsTotal.WithLabelValues("insert", "users", "success").Inc()
	return u, nil
}

// insertError maps an InsertOne failure onto the API error taxonomy. A
// concurrent registration can slip past the pre-insert lookup; the unique
// email index rejects the loser and that must surface as a duplicate, not a
// server fault.
func insertError(email string, err error) *model.AppError {
	if mongo.IsDuplicateKeyError(err) {
		return model.DuplicateValue("user with email %s already exists", email)
	}
	return model.InternalServer("error creating user")
}

// GetByEmail finds an account by email. Not found is (nil, nil).
func (s *Store) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var u model.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("find", "users", "error").Inc()
		return nil, model.InternalServer("error reading user")
	}
	return &u, nil
}

// ReplaceFeedSources swaps the caller's followed sources in one atomic
// update, so concurrent writers cannot observe a half-cleared list.
func (s *Store) ReplaceFeedSources(ctx context.Context, email string, sources []string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	result, err := s.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"feedSources": sources,
			"updatedAt":   s.now().UTC(),
		}},
	)
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("update", "users", "error").Inc()
		return model.InternalServer("error updating feed sources")
	}
	if result.MatchedCount == 0 {
		return model.NotFound("user with email %s not found", email)
	}
	metrics.MongoOperationsTotal.WithLabelValues("update", "users", "success").Inc()
	return nil
}

package cache

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the query and ingestion paths rely on:
// a unique URL key per category partition plus the publish-date sort, and
// the unique email key on users.
func EnsureIndexes(db *mongo.Database, categories []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, category := range categories {
		indexes := []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "url", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "datePublished", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "source.name", Value: 1}, {Key: "datePublished", Value: -1}},
			},
		}
		if _, err := db.Collection(category).Indexes().CreateMany(ctx, indexes); err != nil {
			log.Printf("Warning: failed to create indexes for %s: %v", category, err)
		}
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, userIndex); err != nil {
		log.Printf("Warning: failed to create users index: %v", err)
	}

	log.Println("Database indexes ensured")
}

package cache

import (
	"context"
	"log"
	"slices"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SiddheshKanawade/news-hub-backend/metrics"
	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// feedResultCap bounds how many stored articles one feed read returns.
const feedResultCap = 100

// FeedStore reads the cached category articles back out for user feeds.
type FeedStore struct {
	db         *mongo.Database
	categories []string
}

func NewFeedStore(db *mongo.Database, categories []string) *FeedStore {
	return &FeedStore{db: db, categories: categories}
}

// GetFeed returns stored articles whose source name is in the caller's
// subscribed set, newest first, capped at feedResultCap. An empty category
// reads across every partition. No matches is an empty slice, not an error.
// The category names a collection, so anything outside the configured set is
// rejected before it reaches the store.
func (s *FeedStore) GetFeed(ctx context.Context, sources []string, category string) ([]model.FeedArticle, string, error) {
	categories := s.categories
	if category != "" {
		if !slices.Contains(s.categories, category) {
			return nil, "", model.BadRequest("unknown category %q", category)
		}
		categories = []string{category}
	}

	filter := bson.M{"source.name": bson.M{"$in": sources}}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "datePublished", Value: -1}}).
		SetLimit(feedResultCap)

	var articles []model.FeedArticle
	for _, cat := range categories {
		cursor, err := s.db.Collection(cat).Find(ctx, filter, findOpts)
		if err != nil {
			metrics.MongoOperationsTotal.WithLabelValues("find", cat, "error").Inc()
			return nil, "", model.InternalServer("error reading cached articles")
		}

		var batch []model.FeedArticle
		if err := cursor.All(ctx, &batch); err != nil {
			cursor.Close(ctx)
			return nil, "", model.InternalServer("error decoding cached articles")
		}
		metrics.MongoOperationsTotal.WithLabelValues("find", cat, "success").Inc()
		articles = append(articles, batch...)
	}

	// Merging partitions loses the per-collection sort order.
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].DatePublished.After(articles[j].DatePublished)
	})
	if len(articles) > feedResultCap {
		articles = articles[:feedResultCap]
	}

	responseCategory := category
	if responseCategory == "" {
		responseCategory = "general"
	}

	log.Printf("Feed query matched %d articles for %d sources (category=%q)", len(articles), len(sources), category)
	return articles, responseCategory, nil
}

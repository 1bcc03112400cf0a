// Package cache maintains the locally stored category feeds: a
// staleness-gated ingestion job and the query layer that reads them back.
package cache

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/singleflight"

	"github.com/SiddheshKanawade/news-hub-backend/events"
	"github.com/SiddheshKanawade/news-hub-backend/metrics"
	"github.com/SiddheshKanawade/news-hub-backend/model"
	"github.com/SiddheshKanawade/news-hub-backend/provider"
)

const metadataCollection = "metadata"

// Refresher re-pulls the category feeds into per-category collections when
// the shared lastUpdated timestamp goes stale. Concurrent callers hitting a
// stale window collapse into one ingestion pass.
type Refresher struct {
	db        *mongo.Database
	feeds     *provider.FeedClient
	publisher *events.Publisher
	ttl       time.Duration
	group     singleflight.Group
	now       func() time.Time
}

func NewRefresher(db *mongo.Database, feeds *provider.FeedClient, publisher *events.Publisher, ttl time.Duration) *Refresher {
	return &Refresher{
		db:        db,
		feeds:     feeds,
		publisher: publisher,
		ttl:       ttl,
		now:       time.Now,
	}
}

// RefreshIfStale runs an ingestion pass when the cache is stale, otherwise
// it is a no-op.
func (r *Refresher) RefreshIfStale(ctx context.Context) error {
	return r.refresh(ctx, false)
}

// Refresh runs an ingestion pass regardless of staleness.
func (r *Refresher) Refresh(ctx context.Context) error {
	return r.refresh(ctx, true)
}

func (r *Refresher) refresh(ctx context.Context, force bool) error {
	// The pass is shared by every collapsed caller, so it must not die with
	// the one request that happened to trigger it.
	ctx = context.WithoutCancel(ctx)
	_, err, _ := r.group.Do("feed-refresh", func() (any, error) {
		lastUpdated, err := r.lastUpdated(ctx)
		if err != nil {
			return nil, err
		}
		if !force && !IsStale(lastUpdated, r.now().UTC(), r.ttl) {
			log.Printf("Feed cache is fresh (last updated %s), skipping refresh", lastUpdated.Format(time.RFC3339))
			metrics.FeedRefreshTotal.WithLabelValues("skipped").Inc()
			return nil, nil
		}
		return nil, r.ingest(ctx)
	})
	return err
}

// lastUpdated reads the shared metadata record. Missing record means no
// pass has run yet.
func (r *Refresher) lastUpdated(ctx context.Context) (time.Time, error) {
	var meta model.FeedMetadata
	err := r.db.Collection(metadataCollection).FindOne(ctx, bson.M{}).Decode(&meta)
	if err == mongo.ErrNoDocuments {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, model.GatewayTimeout("news store unavailable: %v", err)
	}
	return meta.LastUpdated, nil
}

// ingest pulls every configured category. Categories are independent: a
// failure is logged and skipped, and lastUpdated still advances after the
// pass so staleness is rechecked on the next TTL boundary.
func (r *Refresher) ingest(ctx context.Context) error {
	log.Println("Feed cache is stale, starting ingestion pass")

	categories := r.feeds.Categories()
	result := events.RefreshResult{RefreshedAt: r.now().UTC()}

	for _, category := range categories {
		articles, err := r.feeds.FetchCategory(ctx, category)
		if err != nil {
			log.Printf("Failed to ingest category %s: %v", category, err)
			metrics.FeedCategoriesIngested.WithLabelValues(category, "error").Inc()
			result.FailedCategories = append(result.FailedCategories, category)
			continue
		}

		inserted := r.upsertArticles(ctx, category, articles)
		metrics.FeedCategoriesIngested.WithLabelValues(category, "success").Inc()
		result.Categories = append(result.Categories, category)
		result.ArticlesUpserted += inserted
	}

	now := r.now().UTC()
	_, err := r.db.Collection(metadataCollection).UpdateOne(ctx,
		bson.M{},
		bson.M{"$set": bson.M{"lastUpdated": now}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		metrics.FeedRefreshTotal.WithLabelValues("error").Inc()
		return model.InternalServer("error updating feed metadata")
	}

	metrics.FeedRefreshTotal.WithLabelValues("success").Inc()
	r.publisher.PublishRefresh(result)
	log.Printf("Ingestion pass complete: %d articles upserted across %d categories (%d failed)",
		result.ArticlesUpserted, len(result.Categories), len(result.FailedCategories))
	return nil
}

// upsertArticles inserts articles keyed by URL, never overwriting an
// existing document.
func (r *Refresher) upsertArticles(ctx context.Context, category string, articles []model.FeedArticle) int {
	collection := r.db.Collection(category)
	inserted := 0

	for _, article := range articles {
		result, err := collection.UpdateOne(ctx,
			bson.M{"url": article.URL},
			bson.M{"$setOnInsert": article},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Printf("Upsert failed for article %s: %v", article.URL, err)
			metrics.MongoOperationsTotal.WithLabelValues("upsert", category, "error").Inc()
			continue
		}
		metrics.MongoOperationsTotal.WithLabelValues("upsert", category, "success").Inc()
		if result.UpsertedCount > 0 {
			inserted++
		}
	}

	log.Printf("Upserted %d new articles into %s (of %d fetched)", inserted, category, len(articles))
	return inserted
}

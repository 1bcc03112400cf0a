package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SiddheshKanawade/news-hub-backend/aggregator"
	"github.com/SiddheshKanawade/news-hub-backend/api"
	"github.com/SiddheshKanawade/news-hub-backend/auth"
	"github.com/SiddheshKanawade/news-hub-backend/cache"
	"github.com/SiddheshKanawade/news-hub-backend/config"
	"github.com/SiddheshKanawade/news-hub-backend/events"
	"github.com/SiddheshKanawade/news-hub-backend/metrics"
	"github.com/SiddheshKanawade/news-hub-backend/provider"
	"github.com/SiddheshKanawade/news-hub-backend/registry"
	"github.com/SiddheshKanawade/news-hub-backend/user"
)

func main() {
	log.Println("Starting news hub backend...")

	cfg := config.Load()
	metrics.Init("news-hub-backend", "1.0", "production")

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(context.Background(), nil); err != nil {
		log.Fatal("MongoDB ping error: the connection to the store could not be established: ", err)
	}
	log.Println("Connected to MongoDB")

	db := client.Database("newshub")
	cache.EnsureIndexes(db, config.Categories)

	publisher, err := events.Connect(cfg.NATSUrl)
	if err != nil {
		log.Printf("NATS connection error, continuing without events: %v", err)
	}
	defer publisher.Close()

	companyRegistry, err := registry.Load(cfg.NSECompaniesCSV)
	if err != nil {
		log.Fatal("Failed to load company registry:", err)
	}

	httpClient := provider.NewClient(cfg.RateLimit)
	searchClient := provider.NewNewsAPIClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, httpClient)
	liveClient := provider.NewMediastackClient(cfg.MediastackBaseURL, cfg.MediastackAPIKey, httpClient)
	feedClient := provider.NewFeedClient(cfg.FeedURLs, httpClient)

	retryPolicy := provider.DefaultRetryPolicy()
	retryPolicy.MaxAttempts = cfg.MaxRetries
	retryPolicy.BaseDelay = cfg.RetryBaseDelay

	engine := aggregator.NewEngine(searchClient, liveClient, companyRegistry, retryPolicy)
	refresher := cache.NewRefresher(db, feedClient, publisher, cfg.FeedCacheTTL)
	feedStore := cache.NewFeedStore(db, config.Categories)

	userStore := user.NewStore(db)
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	newsHandler := api.NewNewsHandler(engine, refresher)
	userHandler := api.NewUserHandler(userStore, authService, refresher, feedStore)

	router := api.Router(newsHandler, userHandler, userStore, authService)

	log.Printf("News hub backend is running at :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

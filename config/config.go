package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config carries every externally supplied setting. Provider keys and the
// store URI are required; everything else has a sensible default.
type Config struct {
	MongoURI string
	NATSUrl  string

	NewsAPIKey     string
	NewsAPIBaseURL string

	MediastackAPIKey  string
	MediastackBaseURL string

	FeedURLs map[string]string

	JWTSecret    string
	JWTExpiry    time.Duration
	FeedCacheTTL time.Duration

	NSECompaniesCSV string

	MaxRetries     int
	RetryBaseDelay time.Duration
	RateLimit      time.Duration
	Port           string
}

// Categories enumerates the feed categories in ingestion order. Each needs
// a <NAME>_FEED_URL environment variable to be ingested.
var Categories = []string{
	"general",
	"politics",
	"business",
	"scienceandtechnology",
	"sports",
	"entertainment",
}

func Load() *Config {
	cfg := &Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		NATSUrl:           getEnv("NATS_URL", ""),
		NewsAPIKey:        getEnv("NEWS_API_KEY", ""),
		NewsAPIBaseURL:    getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
		MediastackAPIKey:  getEnv("MEDIASTACK_API_KEY", ""),
		MediastackBaseURL: getEnv("MEDIASTACK_BASE_URL", "http://api.mediastack.com/v1"),
		JWTSecret:         getEnv("SECRET_KEY", ""),
		JWTExpiry:         getDurationEnv("ACCESS_TOKEN_EXPIRY", "120m"),
		FeedCacheTTL:      getDurationEnv("FEED_CACHE_TTL", "15m"),
		NSECompaniesCSV:   getEnv("NSE_COMPANIES_CSV", "./static/nse.csv"),
		MaxRetries:        getIntEnv("MAX_RETRIES", 3),
		RetryBaseDelay:    getDurationEnv("RETRY_BASE_DELAY", "500ms"),
		RateLimit:         getDurationEnv("RATE_LIMIT", "200ms"),
		Port:              getEnv("PORT", "3000"),
	}

	cfg.FeedURLs = map[string]string{}
	feedEnvs := map[string]string{
		"general":              "GENERAL_FEED_URL",
		"politics":             "POLITICS_FEED_URL",
		"business":             "BUSINESS_FEED_URL",
		"scienceandtechnology": "SCIENCE_TECHNOLOGY_FEED_URL",
		"sports":               "SPORTS_FEED_URL",
		"entertainment":        "ENTERTAINMENT_FEED_URL",
	}
	for category, key := range feedEnvs {
		if url := os.Getenv(key); url != "" {
			cfg.FeedURLs[category] = url
		}
	}

	if cfg.NewsAPIKey == "" {
		log.Fatal("NEWS_API_KEY is required")
	}
	if cfg.MediastackAPIKey == "" {
		log.Fatal("MEDIASTACK_API_KEY is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("SECRET_KEY is required")
	}

	log.Printf("Config loaded - FeedCacheTTL: %v, MaxRetries: %d, FeedCategories: %d",
		cfg.FeedCacheTTL, cfg.MaxRetries, len(cfg.FeedURLs))

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

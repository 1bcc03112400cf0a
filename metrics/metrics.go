package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics for the aggregation pipeline
	ArticlesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_articles_fetched_total",
			Help: "Total number of news articles fetched from upstream providers",
		},
		[]string{"provider", "status"},
	)

	ArticlesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_articles_served_total",
			Help: "Total number of news articles served to clients",
		},
		[]string{"endpoint"},
	)

	// Cache refresh metrics
	FeedRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_refresh_total",
			Help: "Total number of feed refresh passes",
		},
		[]string{"result"},
	)

	FeedCategoriesIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_categories_ingested_total",
			Help: "Total number of per-category ingestion attempts",
		},
		[]string{"category", "status"},
	)

	// Database metrics
	MongoOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_operations_total",
			Help: "Total number of MongoDB operations",
		},
		[]string{"operation", "collection", "status"},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Initialize metrics with default values
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}

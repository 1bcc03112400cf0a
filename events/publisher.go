// Package events publishes pipeline events to NATS for downstream
// consumers.
package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const refreshSubject = "news.refresh.result"

// RefreshResult describes one feed ingestion pass.
type RefreshResult struct {
	Categories       []string  `json:"categories"`
	FailedCategories []string  `json:"failedCategories,omitempty"`
	ArticlesUpserted int       `json:"articlesUpserted"`
	RefreshedAt      time.Time `json:"refreshedAt"`
	Service          string    `json:"service"`
}

// Publisher sends events over NATS. A nil Publisher is valid and drops
// everything, so NATS stays optional in deployments without it.
type Publisher struct {
	conn *nats.Conn
}

// Connect dials NATS. An empty URL disables publishing.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		log.Println("NATS_URL not set, event publishing disabled")
		return nil, nil
	}
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS at %s", url)
	return &Publisher{conn: nc}, nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}

// PublishRefresh publishes the result of a feed refresh pass.
func (p *Publisher) PublishRefresh(result RefreshResult) {
	if p == nil || p.conn == nil {
		return
	}
	result.Service = "news-hub-backend"

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Failed to marshal refresh result: %v", err)
		return
	}
	if err := p.conn.Publish(refreshSubject, data); err != nil {
		log.Printf("Failed to publish refresh result: %v", err)
		return
	}
	log.Printf("Published refresh result: %d articles across %d categories",
		result.ArticlesUpserted, len(result.Categories))
}

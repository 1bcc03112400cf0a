package provider

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// istZone is the publisher-local timezone for feeds that report wall-clock
// time with a misleading UTC marker. FixedZone keeps us independent of the
// host tzdata.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// localTimePublishers report timestamps in IST despite marking them UTC;
// their wall-clock times are reinterpreted before storage.
var localTimePublishers = []string{"The Times of India"}

// feedHeaders make the request look like a regular browser; some feed hosts
// reject the default Go user agent.
var feedHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-GB,en-US;q=0.9,en;q=0.8",
	"User-Agent":      "Mozilla/5.0 (Linux; Android 6.0; Nexus 5 Build/MRA58N) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Mobile Safari/537.36",
}

// FeedClient is the category-feed provider adapter. Each logical category
// maps to one configured feed URL (JSON Feed or RSS, parsed by gofeed).
type FeedClient struct {
	feedURLs map[string]string
	client   *Client
	parser   *gofeed.Parser
	now      func() time.Time
}

func NewFeedClient(feedURLs map[string]string, client *Client) *FeedClient {
	return &FeedClient{
		feedURLs: feedURLs,
		client:   client,
		parser:   gofeed.NewParser(),
		now:      time.Now,
	}
}

// Categories returns the categories with a configured feed URL.
func (f *FeedClient) Categories() []string {
	categories := make([]string, 0, len(f.feedURLs))
	for category := range f.feedURLs {
		categories = append(categories, category)
	}
	return categories
}

// FetchCategory pulls and parses one category feed. Items missing a title
// or URL are dropped; publisher-local timestamps are converted to UTC.
func (f *FeedClient) FetchCategory(ctx context.Context, category string) ([]model.FeedArticle, error) {
	feedURL, ok := f.feedURLs[category]
	if !ok {
		return nil, fmt.Errorf("no feed URL configured for category %q", category)
	}

	resp, err := f.client.Get(ctx, feedURL, feedHeaders)
	if err != nil {
		return nil, fmt.Errorf("fetch %s feed: %w", category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch %s feed: status %d", category, resp.StatusCode)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s feed: %w", category, err)
	}

	fetchedAt := f.now().UTC()
	var articles []model.FeedArticle
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		article := model.FeedArticle{
			URL:         item.Link,
			Title:       item.Title,
			Description: item.Description,
			ContentHTML: item.Content,
			FetchedAt:   fetchedAt,
		}
		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}
		for _, author := range item.Authors {
			article.Source = append(article.Source, model.FeedAuthor{Name: author.Name})
		}
		for _, enclosure := range item.Enclosures {
			article.Attachments = append(article.Attachments, model.FeedAttachment{URL: enclosure.URL})
		}

		if item.PublishedParsed != nil {
			article.DatePublished = normalizePublisherTime(*item.PublishedParsed, article.Source)
		} else {
			log.Printf("Feed item without parseable date, using fetch time: %s", item.Link)
			article.DatePublished = fetchedAt
		}

		articles = append(articles, article)
	}

	log.Printf("Parsed %d articles from %s feed", len(articles), category)
	return articles, nil
}

// normalizePublisherTime converts timestamps from publishers known to report
// local time into absolute UTC. Everything else passes through unchanged.
func normalizePublisherTime(t time.Time, authors []model.FeedAuthor) time.Time {
	if len(authors) == 0 {
		return t.UTC()
	}
	for _, publisher := range localTimePublishers {
		if strings.Contains(authors[0].Name, publisher) {
			wall := t.UTC()
			return time.Date(wall.Year(), wall.Month(), wall.Day(),
				wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), istZone).UTC()
		}
	}
	return t.UTC()
}

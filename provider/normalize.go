package provider

import (
	"fmt"
	"log"
	"time"

	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// RelativeTime formats how long ago a timestamp was, relative to now.
// Breakpoints: under a minute "just now", under an hour minutes, under a
// day hours, otherwise days (all floored).
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d mins ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	}
}

// NormalizeSearch maps raw keyword-search records onto the canonical shape.
// The search provider cannot supply category, language or country, so those
// stay empty. Records whose timestamp will not parse are dropped, never
// fatal.
func NormalizeSearch(raw []NewsAPIArticle, now time.Time) []model.Article {
	articles := make([]model.Article, 0, len(raw))
	for _, r := range raw {
		publishedAt, err := time.Parse(time.RFC3339, r.PublishedAt)
		if err != nil {
			log.Printf("Dropping article with bad timestamp %q: %s", r.PublishedAt, r.URL)
			continue
		}
		articles = append(articles, model.Article{
			Source:      model.ArticleSource{ID: r.Source.ID, Name: r.Source.Name},
			Author:      r.Author,
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			URLToImage:  r.URLToImage,
			PublishedAt: RelativeTime(publishedAt, now),
			Content:     r.Content,
		})
	}
	return articles
}

// liveTimeFormats covers the timestamp renderings the live provider emits.
var liveTimeFormats = []string{
	"2006-01-02T15:04:05+00:00",
	time.RFC3339,
	"2006-01-02T15:04:05.000000Z",
}

// NormalizeLive maps raw live-news records onto the canonical shape. The
// live provider supplies category/language/country but never content, and
// names its image field differently from the search provider.
func NormalizeLive(raw []LiveArticle, now time.Time) []model.Article {
	articles := make([]model.Article, 0, len(raw))
	for _, r := range raw {
		publishedAt, ok := parseLiveTime(r.PublishedAt)
		if !ok {
			log.Printf("Dropping live article with bad timestamp %q: %s", r.PublishedAt, r.URL)
			continue
		}
		articles = append(articles, model.Article{
			Source:      model.ArticleSource{Name: r.Source},
			Author:      r.Author,
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			URLToImage:  r.Image,
			PublishedAt: RelativeTime(publishedAt, now),
			Category:    r.Category,
			Language:    r.Language,
			Country:     r.Country,
		})
	}
	return articles
}

func parseLiveTime(value string) (time.Time, bool) {
	for _, format := range liveTimeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeFeed maps stored category-feed articles onto the canonical shape
// for API responses, attaching the category they were partitioned under.
func NormalizeFeed(raw []model.FeedArticle, category string, now time.Time) []model.Article {
	articles := make([]model.Article, 0, len(raw))
	for _, r := range raw {
		var sourceName string
		if len(r.Source) > 0 {
			sourceName = r.Source[0].Name
		}
		articles = append(articles, model.Article{
			Source:      model.ArticleSource{Name: sourceName},
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			URLToImage:  r.ImageURL,
			PublishedAt: RelativeTime(r.DatePublished, now),
			Content:     r.ContentHTML,
			Category:    category,
		})
	}
	return articles
}

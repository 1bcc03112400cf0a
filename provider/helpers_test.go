package provider

import (
	"time"

	"github.com/SiddheshKanawade/news-hub-backend/model"
)

func feedArticleFixture(url string, published time.Time) []model.FeedArticle {
	return []model.FeedArticle{
		{
			URL:           url,
			Title:         "Headline",
			Description:   "summary",
			ContentHTML:   "<p>body</p>",
			ImageURL:      "https://example.com/img.jpg",
			DatePublished: published,
			Source:        []model.FeedAuthor{{Name: "The Daily"}},
		},
	}
}

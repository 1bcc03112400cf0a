package model

import "time"

// ArticleSource identifies where an article came from. Only Name is
// guaranteed; the search provider also supplies an ID and the sources
// listing fills in the rest.
type ArticleSource struct {
	ID          string `json:"id,omitempty" bson:"id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Language    string `json:"language,omitempty" bson:"language,omitempty"`
	Country     string `json:"country,omitempty" bson:"country,omitempty"`
}

// Article is the canonical shape every provider is normalized into.
// PublishedAt holds a human-relative string ("2 hours ago") because it is
// computed at response-assembly time; stored feed articles keep the absolute
// timestamp (see FeedArticle).
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage,omitempty"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content,omitempty"`
	Category    string        `json:"category,omitempty"`
	Language    string        `json:"language,omitempty"`
	Country     string        `json:"country,omitempty"`
}

// Source is a provider source listing entry (GET /news/sources).
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
	Country     string `json:"country,omitempty"`
}

// NSECompany is one row of the bundled company registry.
type NSECompany struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Series        string `json:"series"`
	DateOfListing string `json:"dateOfListing"`
	PaidUpValue   int    `json:"paidUpValue"`
	MarketLot     int    `json:"marketLot"`
	ISINNumber    string `json:"isinNumber"`
	FaceValue     int    `json:"faceValue"`
}

// FeedAuthor is an author entry on a stored feed article.
type FeedAuthor struct {
	Name string `json:"name" bson:"name"`
}

// FeedAttachment is a media attachment on a stored feed article.
type FeedAttachment struct {
	URL string `json:"url" bson:"url"`
}

// FeedArticle is a category-feed article as persisted in the per-category
// collections. URL is the natural key; ingestion never overwrites an
// existing document with the same URL.
type FeedArticle struct {
	URL           string           `json:"url" bson:"url"`
	Title         string           `json:"title" bson:"title"`
	Description   string           `json:"description" bson:"description"`
	ContentHTML   string           `json:"contentHtml" bson:"contentHtml"`
	ImageURL      string           `json:"imageUrl" bson:"imageUrl"`
	DatePublished time.Time        `json:"datePublished" bson:"datePublished"`
	Source        []FeedAuthor     `json:"source" bson:"source"`
	Attachments   []FeedAttachment `json:"attachments" bson:"attachments"`
	FetchedAt     time.Time        `json:"fetchedAt" bson:"fetchedAt"`
}

// FeedMetadata is the single shared record tracking when the cached feeds
// were last refreshed.
type FeedMetadata struct {
	LastUpdated time.Time `json:"lastUpdated" bson:"lastUpdated"`
}

package provider

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// NewsAPIArticle is the raw keyword-search provider record. Never persisted;
// it only exists between the adapter call and normalization.
type NewsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []NewsAPIArticle `json:"articles"`
	Sources      []model.Source   `json:"sources"`
}

// SearchQuery drives one keyword-search call. Keywords are OR-joined, so a
// match on any of them counts.
type SearchQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Keywords  []string
	Endpoint  string
	Language  string
	Sources   []string
}

// SearchResult carries the provider-reported total alongside the raw page
// of articles; the engine applies the caller's threshold against it.
type SearchResult struct {
	TotalResults int
	Articles     []NewsAPIArticle
}

// NewsAPIClient is the keyword-search provider adapter.
type NewsAPIClient struct {
	baseURL string
	apiKey  string
	client  *Client
}

func NewNewsAPIClient(baseURL, apiKey string, client *Client) *NewsAPIClient {
	return &NewsAPIClient{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, client: client}
}

// Search issues a single keyword-search call. Without a start date results
// sort by recency; with one they sort by relevancy restricted to titles.
func (n *NewsAPIClient) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	endpoint := q.Endpoint
	if endpoint == "" {
		endpoint = "everything"
	}
	language := q.Language
	if language == "" {
		language = "en"
	}

	params := url.Values{}
	params.Set("apiKey", n.apiKey)
	params.Set("language", language)
	params.Set("pageSize", "10")
	params.Set("page", "1")

	if q.StartDate != nil {
		params.Set("sortBy", "relevancy")
		params.Set("searchIn", "title")
		params.Set("from", q.StartDate.Format("2006-01-02"))
	} else {
		params.Set("sortBy", "publishedAt")
	}
	if q.EndDate != nil {
		params.Set("to", q.EndDate.Format("2006-01-02"))
	}
	if len(q.Keywords) > 0 {
		params.Set("q", strings.Join(q.Keywords, " OR "))
	}
	if len(q.Sources) > 0 {
		params.Set("sources", strings.Join(q.Sources, ","))
	}

	resp, err := n.client.Get(ctx, n.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, model.NotFound("error fetching news: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("News search returned %d: %s", resp.StatusCode, string(body))
		return nil, model.NotFound("error fetching news: %s", string(body))
	}

	var result newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, model.NotFound("error decoding news response: %v", err)
	}

	return &SearchResult{TotalResults: result.TotalResults, Articles: result.Articles}, nil
}

// Sources lists the provider's available sources, optionally filtered by
// country.
func (n *NewsAPIClient) Sources(ctx context.Context, country string) ([]model.Source, error) {
	params := url.Values{}
	params.Set("apiKey", n.apiKey)
	params.Set("language", "en")
	if country != "" {
		params.Set("country", country)
	}

	resp, err := n.client.Get(ctx, n.baseURL+"/top-headlines/sources?"+params.Encode(), nil)
	if err != nil {
		return nil, model.NotFound("error fetching news sources: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, model.NotFound("error fetching news sources: %s", string(body))
	}

	var result newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, model.NotFound("error decoding sources response: %v", err)
	}

	return result.Sources, nil
}

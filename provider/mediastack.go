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

// LiveLanguages is the fixed set of language codes the live provider
// supports. Requests with any other code fail before the network.
var LiveLanguages = map[string]string{
	"ar": "Arabic",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"he": "Hebrew",
	"it": "Italian",
	"nl": "Dutch",
	"no": "Norwegian",
	"pt": "Portuguese",
	"ru": "Russian",
	"se": "Swedish",
	"zh": "Chinese",
}

// LiveArticle is the raw live-news provider record. All fields are strings
// so structural dedup can use map keys directly.
type LiveArticle struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Country     string `json:"country"`
	PublishedAt string `json:"published_at"`
}

type mediastackResponse struct {
	Pagination struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
		Count  int `json:"count"`
		Total  int `json:"total"`
	} `json:"pagination"`
	Data []LiveArticle `json:"data"`
}

// LiveQuery drives one live-news call. Keywords are +-joined (AND
// semantics, unlike the keyword-search provider's OR).
type LiveQuery struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Keywords   []string
	Sources    []string
	Categories []string
	Language   string
	// DefaultWindow is how far back the date range reaches when no start
	// date is supplied. Zero means one day (yesterday through today).
	DefaultWindow time.Duration
}

// LiveResult carries the provider-reported total and the raw records.
type LiveResult struct {
	Total int
	Data  []LiveArticle
}

// MediastackClient is the live/breaking-news provider adapter.
type MediastackClient struct {
	baseURL string
	apiKey  string
	client  *Client
	now     func() time.Time
}

func NewMediastackClient(baseURL, apiKey string, client *Client) *MediastackClient {
	return &MediastackClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		now:     time.Now,
	}
}

// Live fetches breaking news, retrying transient failures under the given
// policy. A 404 means the provider has nothing for the query and is not
// retried.
func (m *MediastackClient) Live(ctx context.Context, q LiveQuery, retry RetryPolicy) (*LiveResult, error) {
	if _, ok := LiveLanguages[q.Language]; !ok {
		return nil, model.NotFound("language %s not supported", q.Language)
	}

	window := q.DefaultWindow
	if window == 0 {
		window = 24 * time.Hour
	}
	startDate := m.now().Add(-window)
	if q.StartDate != nil {
		startDate = *q.StartDate
	}
	endDate := m.now()
	if q.EndDate != nil {
		endDate = *q.EndDate
	}

	params := url.Values{}
	params.Set("access_key", m.apiKey)
	params.Set("languages", q.Language)
	params.Set("limit", "100")
	params.Set("date", startDate.Format("2006-01-02")+","+endDate.Format("2006-01-02"))
	if len(q.Keywords) > 0 {
		params.Set("keywords", strings.Join(q.Keywords, " +"))
	}
	if len(q.Categories) > 0 {
		params.Set("categories", strings.Join(q.Categories, ","))
	}
	if len(q.Sources) > 0 {
		params.Set("sources", strings.Join(q.Sources, ","))
	}

	requestURL := m.baseURL + "/news?" + params.Encode()

	var result mediastackResponse
	err := retry.Do(func() (bool, error) {
		resp, err := m.client.Get(ctx, requestURL, nil)
		if err != nil {
			return true, model.NotFound("error fetching live news: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == 404 {
			body, _ := io.ReadAll(resp.Body)
			log.Printf("No live news found for keywords=%v", q.Keywords)
			return false, model.NotFound("error fetching live news: %s", string(body))
		}
		if resp.StatusCode != 200 {
			body, _ := io.ReadAll(resp.Body)
			log.Printf("Live news returned %d: %s", resp.StatusCode, string(body))
			return true, model.NotFound("error fetching live news: %s", string(body))
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return false, model.NotFound("error decoding live news response: %v", err)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &LiveResult{Total: result.Pagination.Total, Data: result.Data}, nil
}

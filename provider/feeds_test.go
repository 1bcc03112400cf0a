package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const jsonFeedBody = `{
	"version": "https://jsonfeed.org/version/1",
	"title": "Top Stories",
	"items": [
		{
			"id": "1",
			"url": "https://news.example.com/a",
			"title": "Local time story",
			"summary": "reported in local time",
			"content_html": "<p>body</p>",
			"date_published": "2024-11-01T09:30:36.000Z",
			"authors": [{"name": "The Times of India"}]
		},
		{
			"id": "2",
			"url": "https://news.example.com/b",
			"title": "UTC story",
			"summary": "already absolute",
			"content_html": "<p>body</p>",
			"date_published": "2024-11-01T09:30:36.000Z",
			"authors": [{"name": "Example Wire"}]
		}
	]
}`

func TestFetchCategoryConvertsPublisherLocalTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(jsonFeedBody))
	}))
	defer server.Close()

	client := NewFeedClient(map[string]string{"general": server.URL}, NewClient(time.Millisecond))
	articles, err := client.FetchCategory(context.Background(), "general")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	byURL := map[string]time.Time{}
	for _, a := range articles {
		byURL[a.URL] = a.DatePublished
	}

	// The publisher reporting IST wall-clock gets shifted back 5h30m.
	wantLocal := time.Date(2024, 11, 1, 4, 0, 36, 0, time.UTC)
	if got := byURL["https://news.example.com/a"]; !got.Equal(wantLocal) {
		t.Errorf("local-time publisher date = %v, want %v", got, wantLocal)
	}

	// Everyone else passes through unchanged.
	wantUTC := time.Date(2024, 11, 1, 9, 30, 36, 0, time.UTC)
	if got := byURL["https://news.example.com/b"]; !got.Equal(wantUTC) {
		t.Errorf("absolute-time publisher date = %v, want %v", got, wantUTC)
	}
}

func TestFetchCategoryUnknownCategory(t *testing.T) {
	client := NewFeedClient(map[string]string{}, NewClient(time.Millisecond))
	if _, err := client.FetchCategory(context.Background(), "sports"); err == nil {
		t.Fatal("expected error for unconfigured category")
	}
}

func TestFetchCategoryNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewFeedClient(map[string]string{"general": server.URL}, NewClient(time.Millisecond))
	if _, err := client.FetchCategory(context.Background(), "general"); err == nil {
		t.Fatal("expected error for non-200 feed response")
	}
}

func TestNormalizePublisherTimeWithoutAuthors(t *testing.T) {
	stamp := time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC)
	if got := normalizePublisherTime(stamp, nil); !got.Equal(stamp) {
		t.Errorf("got %v, want unchanged %v", got, stamp)
	}
}

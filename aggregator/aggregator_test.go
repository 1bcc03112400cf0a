package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SiddheshKanawade/news-hub-backend/provider"
)

func noSleepPolicy() provider.RetryPolicy {
	return provider.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Sleep: func(time.Duration) {}}
}

func searchUpstream(t *testing.T, totalResults, articleCount int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		articles := make([]map[string]any, articleCount)
		for i := range articles {
			articles[i] = map[string]any{
				"source":      map[string]string{"id": "src", "name": "Source"},
				"title":       fmt.Sprintf("article %d", i),
				"url":         fmt.Sprintf("https://example.com/%d", i),
				"publishedAt": time.Now().UTC().Add(-time.Hour).Format(time.RFC3339),
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":       "ok",
			"totalResults": totalResults,
			"articles":     articles,
		})
	}))
}

func TestGetNewsAppliesThreshold(t *testing.T) {
	server := searchUpstream(t, 20, 10)
	defer server.Close()

	search := provider.NewNewsAPIClient(server.URL, "key", provider.NewClient(time.Millisecond))
	e := NewEngine(search, nil, testRegistry(t), noSleepPolicy())

	articles, err := e.GetNews(context.Background(), NewsRequest{Keywords: []string{"budget"}, Threshold: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 5 {
		t.Fatalf("len = %d, want 5", len(articles))
	}
	// Truncation takes the head of the list, insertion order preserved.
	if articles[0].Title != "article 0" || articles[4].Title != "article 4" {
		t.Errorf("unexpected head of list: %q ... %q", articles[0].Title, articles[4].Title)
	}
}

func TestGetNewsBelowThresholdKeepsAll(t *testing.T) {
	server := searchUpstream(t, 3, 3)
	defer server.Close()

	search := provider.NewNewsAPIClient(server.URL, "key", provider.NewClient(time.Millisecond))
	e := NewEngine(search, nil, testRegistry(t), noSleepPolicy())

	articles, err := e.GetNews(context.Background(), NewsRequest{Keywords: []string{"budget"}, Threshold: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 3 {
		t.Errorf("len = %d, want all 3", len(articles))
	}
}

func TestGetNewsZeroResultsIsNotFound(t *testing.T) {
	server := searchUpstream(t, 0, 0)
	defer server.Close()

	search := provider.NewNewsAPIClient(server.URL, "key", provider.NewClient(time.Millisecond))
	e := NewEngine(search, nil, testRegistry(t), noSleepPolicy())

	if _, err := e.GetNews(context.Background(), NewsRequest{Keywords: []string{"budget"}, Threshold: 5}); err == nil {
		t.Fatal("expected not-found error for zero upstream results")
	}
}

// liveUpstream records the keywords of every sub-query it receives.
func liveUpstream(t *testing.T, failFor map[string]bool) (*httptest.Server, *[]string) {
	t.Helper()
	var mu sync.Mutex
	var keywords []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("keywords")
		mu.Lock()
		keywords = append(keywords, keyword)
		mu.Unlock()

		if failFor[keyword] {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"no results"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"pagination": map[string]int{"total": 1},
			"data": []map[string]string{{
				"title":        "shared headline",
				"url":          "https://example.com/shared",
				"source":       "wire",
				"published_at": time.Now().UTC().Add(-time.Hour).Format("2006-01-02T15:04:05+00:00"),
			}},
		})
	}))
	return server, &keywords
}

func TestGetTickerNewsFansOutPerDerivedTerm(t *testing.T) {
	server, keywords := liveUpstream(t, nil)
	defer server.Close()

	live := provider.NewMediastackClient(server.URL, "key", provider.NewClient(time.Millisecond))
	e := NewEngine(nil, live, testRegistry(t), noSleepPolicy())

	articles, err := e.GetTickerNews(context.Background(), TickerRequest{
		Keywords: []string{"Example Limited"},
		Language: "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"EL", "Example", "EX"}
	if len(*keywords) != len(want) {
		t.Fatalf("sub-queries = %v, want %v", *keywords, want)
	}
	for i := range want {
		if (*keywords)[i] != want[i] {
			t.Errorf("sub-query[%d] = %q, want %q", i, (*keywords)[i], want[i])
		}
	}

	// Every sub-query returned the same record; dedup collapses them.
	if len(articles) != 1 {
		t.Errorf("len = %d, want 1 after dedup", len(articles))
	}
}

func TestGetTickerNewsSkipsFailingSubQueries(t *testing.T) {
	server, _ := liveUpstream(t, map[string]bool{"EL": true})
	defer server.Close()

	live := provider.NewMediastackClient(server.URL, "key", provider.NewClient(time.Millisecond))
	e := NewEngine(nil, live, testRegistry(t), noSleepPolicy())

	articles, err := e.GetTickerNews(context.Background(), TickerRequest{
		Keywords: []string{"Example Limited"},
		Language: "en",
	})
	if err != nil {
		t.Fatalf("a failing sub-query must not abort the request: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("len = %d, want 1", len(articles))
	}
}

func TestGetTickerNewsAllSubQueriesFailing(t *testing.T) {
	server, _ := liveUpstream(t, map[string]bool{"EL": true, "Example": true, "EX": true})
	defer server.Close()

	live := provider.NewMediastackClient(server.URL, "key", provider.NewClient(time.Millisecond))
	e := NewEngine(nil, live, testRegistry(t), noSleepPolicy())

	if _, err := e.GetTickerNews(context.Background(), TickerRequest{
		Keywords: []string{"Example Limited"},
		Language: "en",
	}); err == nil {
		t.Fatal("expected not-found when every sub-query fails")
	}
}

func TestGetLiveNewsZeroTotalIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pagination":{"total":0},"data":[]}`))
	}))
	defer server.Close()

	live := provider.NewMediastackClient(server.URL, "key", provider.NewClient(time.Millisecond))
	e := NewEngine(nil, live, testRegistry(t), noSleepPolicy())

	if _, err := e.GetLiveNews(context.Background(), LiveRequest{Language: "en"}); err == nil {
		t.Fatal("expected not-found for zero total")
	}
}

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func noSleepPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseDelay: time.Millisecond, Sleep: func(time.Duration) {}}
}

func TestLiveUnsupportedLanguageFailsBeforeNetwork(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer server.Close()

	client := NewMediastackClient(server.URL, "key", NewClient(time.Millisecond))
	_, err := client.Live(context.Background(), LiveQuery{Language: "xx"}, noSleepPolicy(3))
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if atomic.LoadInt64(&hits) != 0 {
		t.Errorf("upstream was called %d times, want 0", hits)
	}
}

func TestLiveRetriesTransientFailures(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&hits, 1)
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"pagination":{"total":1},"data":[{"title":"t","url":"u","source":"s","published_at":"2025-06-01T10:00:00+00:00"}]}`))
	}))
	defer server.Close()

	client := NewMediastackClient(server.URL, "key", NewClient(time.Millisecond))
	result, err := client.Live(context.Background(), LiveQuery{Language: "en"}, noSleepPolicy(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt64(&hits) != 3 {
		t.Errorf("upstream was called %d times, want 3", hits)
	}
	if result.Total != 1 || len(result.Data) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestLive404IsNotRetried(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no results"}`))
	}))
	defer server.Close()

	client := NewMediastackClient(server.URL, "key", NewClient(time.Millisecond))
	_, err := client.Live(context.Background(), LiveQuery{Language: "en"}, noSleepPolicy(3))
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if atomic.LoadInt64(&hits) != 1 {
		t.Errorf("upstream was called %d times, want 1", hits)
	}
}

func TestLiveQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"pagination":{"total":0},"data":[]}`))
	}))
	defer server.Close()

	client := NewMediastackClient(server.URL, "secret", NewClient(time.Millisecond))
	client.now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }

	_, err := client.Live(context.Background(), LiveQuery{
		Language:   "en",
		Keywords:   []string{"tata", "steel"},
		Categories: []string{"business"},
	}, noSleepPolicy(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery["keywords"][0]; got != "tata +steel" {
		t.Errorf("keywords = %q, want AND-joined %q", got, "tata +steel")
	}
	if got := gotQuery["date"][0]; got != "2025-06-09,2025-06-10" {
		t.Errorf("date = %q, want yesterday through today", got)
	}
	if got := gotQuery["access_key"][0]; got != "secret" {
		t.Errorf("access_key = %q", got)
	}
	if got := gotQuery["categories"][0]; got != "business" {
		t.Errorf("categories = %q", got)
	}
}

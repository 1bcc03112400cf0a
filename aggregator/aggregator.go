// Package aggregator turns one logical news request into the minimum set of
// upstream calls, then merges, deduplicates and truncates the results.
package aggregator

import (
	"context"
	"log"
	"time"

	"github.com/SiddheshKanawade/news-hub-backend/metrics"
	"github.com/SiddheshKanawade/news-hub-backend/model"
	"github.com/SiddheshKanawade/news-hub-backend/provider"
	"github.com/SiddheshKanawade/news-hub-backend/registry"
)

// tickerWindow is the default look-back for ticker searches; company news
// moves slower than breaking news.
const tickerWindow = 30 * 24 * time.Hour

// Engine orchestrates the provider adapters.
type Engine struct {
	search   *provider.NewsAPIClient
	live     *provider.MediastackClient
	registry *registry.Registry
	retry    provider.RetryPolicy
	now      func() time.Time
}

func NewEngine(search *provider.NewsAPIClient, live *provider.MediastackClient, reg *registry.Registry, retry provider.RetryPolicy) *Engine {
	return &Engine{
		search:   search,
		live:     live,
		registry: reg,
		retry:    retry,
		now:      time.Now,
	}
}

// NewsRequest is a single-query keyword search.
type NewsRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Keywords  []string
	Endpoint  string
	Language  string
	Sources   []string
	Threshold int
}

// GetNews runs one keyword-search call and truncates to the caller's
// threshold when the provider reports more matches than wanted.
func (e *Engine) GetNews(ctx context.Context, req NewsRequest) ([]model.Article, error) {
	result, err := e.search.Search(ctx, provider.SearchQuery{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Keywords:  req.Keywords,
		Endpoint:  req.Endpoint,
		Language:  req.Language,
		Sources:   req.Sources,
	})
	if err != nil {
		return nil, err
	}
	if result.TotalResults == 0 {
		return nil, model.NotFound("no news found")
	}

	data := provider.NormalizeSearch(result.Articles, e.now())
	metrics.ArticlesFetched.WithLabelValues("newsapi", "success").Add(float64(len(data)))

	if result.TotalResults >= req.Threshold && req.Threshold > 0 && len(data) > req.Threshold {
		data = data[:req.Threshold]
	}
	return data, nil
}

// LiveRequest is a live/breaking-news query.
type LiveRequest struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Keywords   []string
	Sources    []string
	Categories []string
	Language   string
	Retries    int
}

// GetLiveNews queries the live provider with bounded retries.
func (e *Engine) GetLiveNews(ctx context.Context, req LiveRequest) ([]model.Article, error) {
	policy := e.retry
	if req.Retries > 0 {
		policy.MaxAttempts = req.Retries
	}

	result, err := e.live.Live(ctx, provider.LiveQuery{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Keywords:   req.Keywords,
		Sources:    req.Sources,
		Categories: req.Categories,
		Language:   req.Language,
	}, policy)
	if err != nil {
		metrics.ArticlesFetched.WithLabelValues("mediastack", "error").Inc()
		return nil, err
	}
	if result.Total == 0 {
		return nil, model.NotFound("no news found")
	}

	data := provider.NormalizeLive(result.Data, e.now())
	metrics.ArticlesFetched.WithLabelValues("mediastack", "success").Add(float64(len(data)))
	return data, nil
}

// TickerRequest is a company-news query. Each keyword fans out into its
// acronym, suffix-stripped name and registry ticker.
type TickerRequest struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Keywords   []string
	Sources    []string
	Categories []string
	Language   string
	Threshold  int
}

// GetTickerNews expands each company name into derived query terms, issues
// one live sub-query per term, and merges the survivors. A failing or empty
// sub-query is logged and skipped; only a fully empty accumulation fails.
func (e *Engine) GetTickerNews(ctx context.Context, req TickerRequest) ([]model.Article, error) {
	if len(req.Keywords) == 0 {
		return e.tickerWithoutKeywords(ctx, req)
	}

	var terms []string
	for _, keyword := range req.Keywords {
		terms = append(terms, e.expandKeyword(keyword)...)
	}

	var accumulated []provider.LiveArticle
	for _, term := range terms {
		result, err := e.live.Live(ctx, provider.LiveQuery{
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Keywords:      []string{term},
			Sources:       req.Sources,
			Categories:    req.Categories,
			Language:      req.Language,
			DefaultWindow: tickerWindow,
		}, e.retry)
		if err != nil {
			log.Printf("Ticker sub-query failed for %q: %v", term, err)
			continue
		}
		if result.Total == 0 {
			log.Printf("No news found for %q", term)
			continue
		}
		accumulated = append(accumulated, result.Data...)
	}

	if len(accumulated) == 0 {
		return nil, model.NotFound("no news found")
	}

	unique := Dedup(accumulated)
	data := provider.NormalizeLive(unique, e.now())
	metrics.ArticlesFetched.WithLabelValues("mediastack", "success").Add(float64(len(data)))

	if req.Threshold > 0 && len(data) > req.Threshold {
		data = data[:req.Threshold]
	}
	return data, nil
}

func (e *Engine) tickerWithoutKeywords(ctx context.Context, req TickerRequest) ([]model.Article, error) {
	result, err := e.live.Live(ctx, provider.LiveQuery{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Sources:       req.Sources,
		Categories:    req.Categories,
		Language:      req.Language,
		DefaultWindow: tickerWindow,
	}, e.retry)
	if err != nil {
		return nil, err
	}
	if result.Total == 0 {
		return nil, model.NotFound("no news found")
	}
	return provider.NormalizeLive(result.Data, e.now()), nil
}

// GetSources lists the keyword-search provider's sources.
func (e *Engine) GetSources(ctx context.Context, country string) ([]model.Source, error) {
	return e.search.Sources(ctx, country)
}

// Companies returns the bundled company registry.
func (e *Engine) Companies() []model.NSECompany {
	return e.registry.Companies()
}

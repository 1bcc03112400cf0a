package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/SiddheshKanawade/news-hub-backend/aggregator"
	"github.com/SiddheshKanawade/news-hub-backend/cache"
	"github.com/SiddheshKanawade/news-hub-backend/metrics"
	"github.com/SiddheshKanawade/news-hub-backend/paginate"
)

// NewsHandler serves the aggregation endpoints.
type NewsHandler struct {
	engine    *aggregator.Engine
	refresher *cache.Refresher
}

func NewNewsHandler(engine *aggregator.Engine, refresher *cache.Refresher) *NewsHandler {
	return &NewsHandler{engine: engine, refresher: refresher}
}

// GetSources handles GET /news/sources.
func (h *NewsHandler) GetSources(c *gin.Context) {
	sources, err := h.engine.GetSources(c.Request.Context(), c.Query("country"))
	if err != nil {
		renderError(c, err)
		return
	}

	page, err := paginate.New(sources, intQuery(c, "page", 1), intQuery(c, "perPage", 10))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(200, page)
}

// GetNews handles POST /news: single-query keyword search.
func (h *NewsHandler) GetNews(c *gin.Context) {
	req := aggregator.NewsRequest{
		StartDate: dateQuery(c, "startDate"),
		EndDate:   dateQuery(c, "endDate"),
		Keywords:  keywordsParam(c, "keyWords"),
		Endpoint:  c.DefaultQuery("endPoint", "everything"),
		Language:  c.DefaultQuery("language", "en"),
		Sources:   c.QueryArray("sources"),
		Threshold: intQuery(c, "threshold", 10),
	}

	log.Printf("/news called with %d keywords, threshold=%d", len(req.Keywords), req.Threshold)

	articles, err := h.engine.GetNews(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}

	page, err := paginate.New(articles, intQuery(c, "page", 1), intQuery(c, "perPage", 10))
	if err != nil {
		renderError(c, err)
		return
	}
	metrics.ArticlesServed.WithLabelValues("news").Add(float64(len(articles)))
	c.JSON(200, page)
}

// GetLiveNews handles POST /news/live.
func (h *NewsHandler) GetLiveNews(c *gin.Context) {
	req := aggregator.LiveRequest{
		StartDate:  dateQuery(c, "startDate"),
		EndDate:    dateQuery(c, "endDate"),
		Keywords:   keywordsParam(c, "keyWords"),
		Sources:    c.QueryArray("sources"),
		Categories: c.QueryArray("categories"),
		Language:   c.DefaultQuery("language", "en"),
		Retries:    intQuery(c, "retries", 3),
	}

	log.Printf("/news/live called with %d keywords, language=%s", len(req.Keywords), req.Language)

	articles, err := h.engine.GetLiveNews(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}

	page, err := paginate.New(articles, intQuery(c, "page", 1), intQuery(c, "perPage", 10))
	if err != nil {
		renderError(c, err)
		return
	}
	metrics.ArticlesServed.WithLabelValues("live").Add(float64(len(articles)))
	c.JSON(200, page)
}

// GetTickerNews handles POST /news/ticker: company fan-out search.
func (h *NewsHandler) GetTickerNews(c *gin.Context) {
	req := aggregator.TickerRequest{
		StartDate:  dateQuery(c, "startDate"),
		EndDate:    dateQuery(c, "endDate"),
		Keywords:   keywordsParam(c, "keyWords"),
		Sources:    c.QueryArray("sources"),
		Categories: c.QueryArray("categories"),
		Language:   c.DefaultQuery("language", "en"),
		Threshold:  intQuery(c, "threshold", 1000),
	}

	log.Printf("/news/ticker called with %d keywords", len(req.Keywords))

	articles, err := h.engine.GetTickerNews(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}

	page, err := paginate.New(articles, intQuery(c, "page", 1), intQuery(c, "perPage", 10))
	if err != nil {
		renderError(c, err)
		return
	}
	metrics.ArticlesServed.WithLabelValues("ticker").Add(float64(len(articles)))
	c.JSON(200, page)
}

// GetNSECompanies handles GET /news/nse-companies.
func (h *NewsHandler) GetNSECompanies(c *gin.Context) {
	page, err := paginate.New(h.engine.Companies(), intQuery(c, "page", 1), intQuery(c, "perPage", 10))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(200, page)
}

// TriggerRefresh handles POST /news/refresh: a manual ingestion trigger.
// The staleness gate still applies unless force=true.
func (h *NewsHandler) TriggerRefresh(c *gin.Context) {
	var err error
	if c.Query("force") == "true" {
		err = h.refresher.Refresh(c.Request.Context())
	} else {
		err = h.refresher.RefreshIfStale(c.Request.Context())
	}
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "refresh completed"})
}

package api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SiddheshKanawade/news-hub-backend/auth"
	"github.com/SiddheshKanawade/news-hub-backend/cache"
	"github.com/SiddheshKanawade/news-hub-backend/metrics"
	"github.com/SiddheshKanawade/news-hub-backend/middleware"
	"github.com/SiddheshKanawade/news-hub-backend/model"
	"github.com/SiddheshKanawade/news-hub-backend/paginate"
	"github.com/SiddheshKanawade/news-hub-backend/provider"
	"github.com/SiddheshKanawade/news-hub-backend/user"
)

// UserHandler serves account and personal-feed endpoints.
type UserHandler struct {
	users     *user.Store
	auth      *auth.Service
	refresher *cache.Refresher
	feeds     *cache.FeedStore
}

func NewUserHandler(users *user.Store, authService *auth.Service, refresher *cache.Refresher, feeds *cache.FeedStore) *UserHandler {
	return &UserHandler{users: users, auth: authService, refresher: refresher, feeds: feeds}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, model.BadRequest("invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		renderError(c, model.InsufficientData("email and password are required"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		renderError(c, model.InternalServer("error hashing password"))
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.Email, req.Username, hash)
	if err != nil {
		renderError(c, err)
		return
	}

	log.Printf("Registered user %s", u.Email)
	c.JSON(200, u)
}

// Token handles POST /user/token: the password grant. Credentials arrive as
// form fields named username/password.
func (h *UserHandler) Token(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	u, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		renderError(c, err)
		return
	}
	if u == nil || !auth.CheckPassword(password, u.HashedPassword) {
		renderError(c, model.Unauthorized(""))
		return
	}

	token, err := h.auth.GenerateToken(u.Email)
	if err != nil {
		renderError(c, model.InternalServer("error generating token"))
		return
	}

	c.JSON(200, gin.H{"access_token": token, "token_type": "bearer"})
}

// Login handles POST /user/login: echoes the authenticated account.
func (h *UserHandler) Login(c *gin.Context) {
	c.JSON(200, middleware.CurrentUser(c))
}

type feedSourcesRequest struct {
	Sources []string `json:"sources"`
}

// UpdateFeedSources handles POST /user/feed-sources: replaces the caller's
// followed sources.
func (h *UserHandler) UpdateFeedSources(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req feedSourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, model.BadRequest("invalid request body"))
		return
	}
	if len(req.Sources) == 0 {
		renderError(c, model.InsufficientData("sources list must not be empty"))
		return
	}

	if err := h.users.ReplaceFeedSources(c.Request.Context(), u.Email, req.Sources); err != nil {
		renderError(c, err)
		return
	}

	log.Printf("Replaced feed sources for %s: %v", u.Email, req.Sources)
	c.JSON(200, gin.H{"message": "feed sources updated", "feedSources": req.Sources})
}

// GetFeed handles POST /user/feed: refresh-if-stale, then read the cached
// category articles filtered by the caller's subscriptions.
func (h *UserHandler) GetFeed(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if len(u.FeedSources) == 0 {
		renderError(c, model.BadRequest("no feed sources configured, add sources via /user/feed-sources"))
		return
	}

	// A failed refresh should not take the whole feed down; serve what is
	// already cached.
	if err := h.refresher.RefreshIfStale(c.Request.Context()); err != nil {
		log.Printf("Feed refresh failed, serving cached articles: %v", err)
	}

	articles, category, err := h.feeds.GetFeed(c.Request.Context(), u.FeedSources, c.Query("category"))
	if err != nil {
		renderError(c, err)
		return
	}

	normalized := provider.NormalizeFeed(articles, category, time.Now().UTC())
	page, err := paginate.New(normalized, intQuery(c, "page", 1), intQuery(c, "perPage", 10))
	if err != nil {
		renderError(c, err)
		return
	}
	metrics.ArticlesServed.WithLabelValues("feed").Add(float64(len(normalized)))
	c.JSON(200, page)
}

package api

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SiddheshKanawade/news-hub-backend/auth"
	"github.com/SiddheshKanawade/news-hub-backend/middleware"
	"github.com/SiddheshKanawade/news-hub-backend/user"
)

// Router wires every endpoint onto a gin engine.
func Router(news *NewsHandler, users *UserHandler, userStore *user.Store, authService *auth.Service) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.PrometheusMiddleware("news-hub-backend"))

	// Health check routes
	r.GET("/", healthCheck)
	r.GET("/health", healthCheck)
	r.GET("/ready", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	newsGroup := r.Group("/news")
	{
		newsGroup.GET("/sources", news.GetSources)
		newsGroup.POST("", news.GetNews)
		newsGroup.POST("/live", news.GetLiveNews)
		newsGroup.POST("/ticker", news.GetTickerNews)
		newsGroup.GET("/nse-companies", news.GetNSECompanies)
		newsGroup.POST("/refresh", news.TriggerRefresh)
	}

	userGroup := r.Group("/user")
	{
		userGroup.POST("/register", users.Register)
		userGroup.POST("/token", users.Token)

		authed := userGroup.Group("", middleware.RequireAuth(authService, userStore))
		authed.POST("/login", users.Login)
		authed.POST("/feed", users.GetFeed)
		authed.POST("/feed-sources", users.UpdateFeedSources)
	}

	log.Println("Router configured with news and user endpoints")
	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": "news-hub-backend"})
}

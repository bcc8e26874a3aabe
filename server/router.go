package server

import (
	"time"

	httpHandler "tombraider-hub/interfaces/http"
	"tombraider-hub/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterOptions carries the configuration the router needs
type RouterOptions struct {
	AllowOrigins []string
	AdminToken   string
}

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

func InitiateRouter(
	videoHandler httpHandler.IVideoHandler,
	healthHandler httpHandler.IHealthHandler,
	options RouterOptions,
) *gin.Engine {
	origins := options.AllowOrigins
	if len(origins) == 0 {
		origins = defaultOrigins
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.AdminTokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/videos", videoHandler.GetVideos)

	api := router.Group("api")
	{
		api.GET("/videos", videoHandler.GetVideos)
		api.GET("/categories", videoHandler.GetCategories)
		api.GET("/channel", videoHandler.GetChannel)
	}

	admin := api.Group("/cache")
	admin.Use(middleware.AdminToken(options.AdminToken))
	{
		admin.GET("/stats", videoHandler.GetCacheStats)
		admin.POST("/clear", videoHandler.ClearCache)
		admin.DELETE("/categories/:key", videoHandler.InvalidateCategory)
	}

	return router
}

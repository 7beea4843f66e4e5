package api

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codyseavey/tcg-roi/internal/api/handlers"
	"github.com/codyseavey/tcg-roi/internal/metrics"
	"github.com/codyseavey/tcg-roi/internal/services"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Analysis     *services.AnalysisService
	Resolver     *services.SetResolver
	Cards        *services.CardService
	Products     *services.ProductService
	Worker       *services.ReportWorker
	Snapshots    *services.SnapshotService
	TopCardLimit int
	CORSOrigins  []string
}

func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = deps.CORSOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = false
	router.Use(cors.New(config))
	router.Use(requestMetrics())

	analysisHandler := handlers.NewAnalysisHandler(deps.Analysis, deps.Resolver, deps.Worker, deps.TopCardLimit)
	setHandler := handlers.NewSetHandler(deps.Resolver, deps.Cards, deps.Products)
	snapshotHandler := handlers.NewSnapshotHandler(deps.Snapshots)

	api := router.Group("/api")
	{
		api.GET("/analyze", analysisHandler.Analyze)
		api.GET("/report", analysisHandler.LatestReport)
		api.GET("/status", analysisHandler.Status)

		sets := api.Group("/sets")
		{
			sets.GET("", setHandler.ListSets)
			sets.GET("/:name/resolve", setHandler.ResolveSet)
			sets.GET("/:name/cards", setHandler.TopCards)
			sets.GET("/:name/products", setHandler.Products)
		}

		snapshots := api.Group("/snapshots")
		{
			snapshots.GET("", snapshotHandler.History)
			snapshots.GET("/latest", snapshotHandler.Latest)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		})
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// requestMetrics records per-request counters using the route template
// as the path label to keep cardinality bounded.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

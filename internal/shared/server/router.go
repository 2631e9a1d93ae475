package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/letters"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/server/middleware"
	"coverletter-backend/internal/shared/server/respond"
)

// Rate limit for the letter routes. Health and metrics stay unlimited.
var generateRateLimit = middleware.RateLimitRule{Rate: 5, Burst: 10}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, lettersHandler *letters.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	limited := api.Group("")
	limited.Use(middleware.RateLimit(middleware.NewRateLimiter(nil), generateRateLimit))
	lettersHandler.RegisterRoutes(limited)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

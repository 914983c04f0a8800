package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resume-rewriter/internal/auth"
	"resume-rewriter/internal/jobs"
	"resume-rewriter/internal/matching"
	"resume-rewriter/internal/resumes"
	"resume-rewriter/internal/services/health"
	"resume-rewriter/internal/shared/config"
	"resume-rewriter/internal/shared/metrics"
	"resume-rewriter/internal/shared/server/middleware"
	"resume-rewriter/internal/shared/server/respond"
)

// RouterDeps carries the handlers and services the router wires up.
type RouterDeps struct {
	Config         config.Config
	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
	MatchHandler   *matching.Handler
	GoogleAuth     *googleauth.GoogleService
	Health         *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"MATCH":  {Rate: 1, Burst: 10},
				"INGEST": {Rate: 0.5, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method != http.MethodPost {
					return ""
				}
				switch c.Request.URL.Path {
				case "/api/v1/match":
					return "MATCH"
				case "/api/v1/jobs":
					return "INGEST"
				}
				return ""
			},
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}

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

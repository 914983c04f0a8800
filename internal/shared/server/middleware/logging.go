package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-rewriter/internal/shared/telemetry"
)

const (
	resumeIDKey = "resumeId"
	jobIDKey    = "jobId"
)

// AnnotateResumeID tags the request log with the resume acted on.
func AnnotateResumeID(c *gin.Context, id string) {
	c.Set(resumeIDKey, id)
}

// AnnotateJobID tags the request log with the job posting acted on.
func AnnotateJobID(c *gin.Context, id string) {
	c.Set(jobIDKey, id)
}

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		userID, _ := c.Get(userIDKey)
		isGuest, _ := c.Get("isGuest")
		resumeID, _ := c.Get(resumeIDKey)
		jobID, _ := c.Get(jobIDKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  reqID,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     userID,
			"resume_id":   resumeID,
			"job_id":      jobID,
			"is_guest":    isGuest,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}

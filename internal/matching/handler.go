package matching

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-rewriter/internal/shared/server/middleware"
	"resume-rewriter/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
}

type matchRequest struct {
	ResumeID string `json:"resumeId"`
	JobID    string `json:"jobId"`
}

func (h *Handler) match(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ResumeID == "" || req.JobID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId and jobId are required", nil)
		return
	}
	middleware.AnnotateResumeID(c, req.ResumeID)
	middleware.AnnotateJobID(c, req.JobID)

	result, err := h.Svc.Match(c.Request.Context(), userID, req.ResumeID, req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume or job posting not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to match resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

package jobs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

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

// RegisterRoutes attaches job posting routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.ingest)
	rg.GET("/jobs/:id", h.get)
	rg.GET("/jobs", h.list)
}

type ingestRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

func (h *Handler) ingest(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if strings.TrimSpace(req.Text) == "" && strings.TrimSpace(req.URL) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text or url is required", nil)
		return
	}

	post, err := h.Svc.Ingest(c.Request.Context(), userID, req.Text, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusBadGateway, "ingest_failed", "failed to ingest job posting", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(post))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id := c.Param("id")
	middleware.AnnotateJobID(c, id)
	post, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job posting", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(post))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list job postings", nil)
		return
	}

	resp := make([]JobPostResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, toResponse(post))
	}

	respond.JSON(c, http.StatusOK, resp)
}

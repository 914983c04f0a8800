package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-rewriter/internal/patch"
	"resume-rewriter/internal/shared/server/middleware"
	"resume-rewriter/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

const docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PATCH("/resumes/:id", h.patch)
	rg.GET("/resumes/:id/versions", h.versions)
	rg.GET("/resumes/:id/export", h.export)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "upload_failed", "failed to process resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id := c.Param("id")
	middleware.AnnotateResumeID(c, id)
	resume, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondResumeError(c, err, "failed to fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
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

	resumes, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	resp := make([]ResumeResponse, 0, len(resumes))
	for _, resume := range resumes {
		resp = append(resp, toResponse(resume))
	}

	respond.JSON(c, http.StatusOK, resp)
}

type patchRequest struct {
	Ops []patch.Op `json:"ops"`
}

func (h *Handler) patch(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	id := c.Param("id")
	middleware.AnnotateResumeID(c, id)
	resume, err := h.Svc.Patch(c.Request.Context(), userID, id, req.Ops)
	if err != nil {
		respondResumeError(c, err, "failed to patch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) versions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id := c.Param("id")
	middleware.AnnotateResumeID(c, id)
	versions, err := h.Svc.Versions(c.Request.Context(), userID, id)
	if err != nil {
		respondResumeError(c, err, "failed to list versions")
		return
	}

	resp := make([]VersionResponse, 0, len(versions))
	for _, v := range versions {
		resp = append(resp, toVersionResponse(v))
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id := c.Param("id")
	middleware.AnnotateResumeID(c, id)
	data, filename, err := h.Svc.Export(c.Request.Context(), userID, id)
	if err != nil {
		respondResumeError(c, err, "failed to export resume")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, docxMime, data)
}

func respondResumeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

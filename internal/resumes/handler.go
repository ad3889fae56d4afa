package resumes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-chat-backend/internal/shared/server/middleware"
	"resume-chat-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

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
	rg.POST("/resumes/text", h.uploadText)
	rg.POST("/resumes/scan", h.scan)
	rg.GET("/resumes/current", h.current)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.POST("/resumes/:id/reparse", h.reparse)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
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

	res, queued, err := h.Svc.Upload(ctx, userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload resume", nil)
		}
		return
	}

	status := http.StatusCreated
	if queued {
		status = http.StatusAccepted
	}
	c.Set(middleware.ResumeIDKey, res.ID)
	respond.JSON(c, status, toResponse(res))
}

type uploadTextRequest struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
}

func (h *Handler) uploadText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req uploadTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	res, err := h.Svc.UploadText(c.Request.Context(), userID, req.FileName, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume text", nil)
		}
		return
	}

	c.Set(middleware.ResumeIDKey, res.ID)
	respond.JSON(c, http.StatusCreated, toResponse(res))
}

type scanRequest struct {
	ImageBase64 string `json:"imageBase64"`
	FileName    string `json:"fileName"`
}

func (h *Handler) scan(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Scan(c.Request.Context(), userID, req.FileName, req.ImageBase64)
	if err != nil {
		switch {
		case errors.Is(err, ErrVisionDisabled):
			respond.Error(c, http.StatusServiceUnavailable, "vision_disabled", "image recognition is not configured", nil)
		case errors.Is(err, ErrNoTextRecognized):
			respond.Error(c, http.StatusNotFound, "no_text_recognized", "no text recognized in image", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to scan image", nil)
		}
		return
	}

	c.Set(middleware.ResumeIDKey, res.ID)
	respond.JSON(c, http.StatusCreated, toResponse(res))
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	res, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	res, err := h.Svc.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

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

	all, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		}
		return
	}

	resp := make([]ResumeSummary, 0, len(all))
	for _, res := range all {
		resp = append(resp, toSummary(res))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) reparse(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))

	res, queued, err := h.Svc.Reparse(ctx, userID, resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reparse resume", nil)
		}
		return
	}

	status := http.StatusOK
	if queued {
		status = http.StatusAccepted
	}
	c.Set(middleware.ResumeIDKey, res.ID)
	respond.JSON(c, status, toResponse(res))
}

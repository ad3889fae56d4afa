package chat

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-chat-backend/internal/shared/server/middleware"
	"resume-chat-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group. The /chat routes
// target the user's current resume; the nested routes target one by ID.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.askCurrent)
	rg.GET("/chat", h.historyCurrent)
	rg.POST("/resumes/:id/chat", h.ask)
	rg.GET("/resumes/:id/chat", h.history)
}

type askRequest struct {
	Question string `json:"question"`
}

type exchangeResponse struct {
	ExchangeID string    `json:"exchangeId"`
	ResumeID   string    `json:"resumeId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toExchangeResponse(ex Exchange) exchangeResponse {
	return exchangeResponse{
		ExchangeID: ex.ID,
		ResumeID:   ex.ResumeID,
		Question:   ex.Question,
		Answer:     ex.Answer,
		Source:     ex.Source,
		CreatedAt:  ex.CreatedAt,
	}
}

func (h *Handler) askCurrent(c *gin.Context) {
	h.handleAsk(c, "")
}

func (h *Handler) ask(c *gin.Context) {
	h.handleAsk(c, strings.TrimSpace(c.Param("id")))
}

func (h *Handler) handleAsk(c *gin.Context, resumeID string) {
	userID := middleware.UserIDFromContext(c)

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ex, err := h.Svc.Ask(c.Request.Context(), userID, resumeID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to answer question", nil)
		}
		return
	}

	c.Set(middleware.ResumeIDKey, ex.ResumeID)
	c.Set(middleware.ExchangeIDKey, ex.ID)
	respond.JSON(c, http.StatusOK, toExchangeResponse(ex))
}

func (h *Handler) historyCurrent(c *gin.Context) {
	h.handleHistory(c, "")
}

func (h *Handler) history(c *gin.Context) {
	h.handleHistory(c, strings.TrimSpace(c.Param("id")))
}

func (h *Handler) handleHistory(c *gin.Context, resumeID string) {
	userID := middleware.UserIDFromContext(c)
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	exchanges, err := h.Svc.History(c.Request.Context(), userID, resumeID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history", nil)
		}
		return
	}

	out := make([]exchangeResponse, 0, len(exchanges))
	for _, ex := range exchanges {
		out = append(out, toExchangeResponse(ex))
	}
	respond.JSON(c, http.StatusOK, gin.H{"exchanges": out})
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

package assistant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adresponse-backend/internal/shared/server/respond"
)

// Handler serves the assistant chat endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assistant routes to the router group. Chat goes
// through the rate-limited AI group.
func (h *Handler) RegisterRoutes(aiGroup *gin.RouterGroup) {
	aiGroup.POST("/assistant/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.Svc.Chat(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "failed to answer chat message")
		return
	}

	respond.OK(c, gin.H{"reply": reply})
}

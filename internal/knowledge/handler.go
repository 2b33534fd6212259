package knowledge

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adresponse-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches knowledge base routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/knowledge-base/articles", h.list)
	rg.POST("/knowledge-base/articles", h.create)
	rg.DELETE("/knowledge-base/articles/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	articles, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to list articles")
		return
	}
	respond.OK(c, gin.H{"articles": articles})
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "failed to create article")
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"article": article,
		"message": "Article created successfully",
	})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete article")
		return
	}
	respond.OK(c, gin.H{"message": "Article deleted successfully"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Article not found")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, fallback)
	}
}

package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adresponse-backend/internal/shared/server/respond"
)

// Handler serves dashboard aggregates.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches dashboard routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.stats)
}

func (h *Handler) stats(c *gin.Context) {
	stats, recent, err := h.Svc.Snapshot(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to compute dashboard stats")
		return
	}
	respond.OK(c, gin.H{
		"stats":       stats,
		"recent_rfps": recent,
	})
}

package emails

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adresponse-backend/internal/shared/server/respond"
)

// Handler serves the email RFP inbox.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches email routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/emails/rfps", h.list)
}

func (h *Handler) list(c *gin.Context) {
	emails, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to list emails")
		return
	}
	respond.OK(c, gin.H{"emails": emails})
}

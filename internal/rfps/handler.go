package rfps

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

// RegisterRoutes attaches RFP routes to the router group. The AI routes go
// on aiGroup so they pick up the rate limiter.
func (h *Handler) RegisterRoutes(rg, aiGroup *gin.RouterGroup) {
	rg.GET("/rfps", h.list)
	rg.POST("/rfps", h.create)
	rg.GET("/rfps/:id", tagRFPID, h.get)
	rg.PUT("/rfps/:id", tagRFPID, h.update)
	rg.DELETE("/rfps/:id", tagRFPID, h.delete)
	rg.POST("/rfps/import", h.importRFP)
	rg.POST("/rfps/sample-data", h.seedSampleData)

	aiGroup.POST("/rfps/:id/analyze", tagRFPID, h.analyze)
	aiGroup.POST("/rfps/:id/generate-proposal", tagRFPID, h.generateProposal)
	aiGroup.POST("/rfps/:id/quality-check", tagRFPID, h.qualityCheck)
	aiGroup.POST("/rfps/:id/extract-placements", tagRFPID, h.extractPlacements)
}

// tagRFPID stores the RFP id on the request context so the request log
// carries it.
func tagRFPID(c *gin.Context) {
	if id := c.Param("id"); id != "" {
		c.Set("rfpId", id)
	}
}

func (h *Handler) list(c *gin.Context) {
	filter := ListFilter{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
		Search:  c.Query("search"),
		Status:  c.Query("status"),
	}

	result, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to list RFPs")
		return
	}

	respond.OK(c, gin.H{
		"rfps":         result.RFPs,
		"total":        result.Total,
		"pages":        result.Pages,
		"current_page": result.CurrentPage,
	})
}

func (h *Handler) get(c *gin.Context) {
	rfp, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to fetch RFP")
		return
	}
	respond.OK(c, gin.H{"rfp": rfp})
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	rfp, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "failed to create RFP")
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"rfp":     rfp,
		"message": "RFP created successfully",
	})
}

func (h *Handler) update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	rfp, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err, "failed to update RFP")
		return
	}

	respond.OK(c, gin.H{
		"rfp":     rfp,
		"message": "RFP updated successfully",
	})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete RFP")
		return
	}
	respond.OK(c, gin.H{"message": "RFP deleted successfully"})
}

func (h *Handler) importRFP(c *gin.Context) {
	var in ImportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	rfp, err := h.Svc.Import(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "failed to import RFP")
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"rfp":     rfp,
		"message": "RFP imported successfully",
	})
}

func (h *Handler) seedSampleData(c *gin.Context) {
	count, err := h.Svc.SeedSampleData(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to create sample data")
		return
	}
	respond.OK(c, gin.H{
		"message": fmt.Sprintf("Created %d sample RFPs", count),
	})
}

func (h *Handler) analyze(c *gin.Context) {
	analysis, err := h.Svc.Analyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to analyze RFP")
		return
	}
	respond.OK(c, gin.H{
		"analysis": analysis,
		"message":  "RFP analysis completed",
	})
}

func (h *Handler) generateProposal(c *gin.Context) {
	proposal, err := h.Svc.GenerateProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to generate proposal")
		return
	}
	respond.OK(c, gin.H{
		"proposal": proposal,
		"message":  "Proposal generated successfully",
	})
}

func (h *Handler) qualityCheck(c *gin.Context) {
	check, err := h.Svc.QualityCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to run quality check")
		return
	}
	respond.OK(c, gin.H{
		"quality_check": check,
		"message":       "Quality check completed",
	})
}

func (h *Handler) extractPlacements(c *gin.Context) {
	placements, err := h.Svc.ExtractPlacements(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to extract placements")
		return
	}
	respond.OK(c, gin.H{
		"placements": placements,
		"message":    "Placements extracted successfully",
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "RFP not found")
	case errors.Is(err, ErrProposalRequired):
		respond.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnsupportedImportMethod):
		respond.Error(c, http.StatusBadRequest, "Import method not supported")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, fallback)
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 1 {
		return def
	}
	return parsed
}

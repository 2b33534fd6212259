package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"adresponse-backend/internal/assistant"
	"adresponse-backend/internal/dashboard"
	"adresponse-backend/internal/emails"
	"adresponse-backend/internal/knowledge"
	"adresponse-backend/internal/rfps"
	"adresponse-backend/internal/shared/config"
	"adresponse-backend/internal/shared/metrics"
	"adresponse-backend/internal/shared/server/middleware"
	"adresponse-backend/internal/shared/server/respond"
)

// aiRateLimitGroup throttles the generation endpoints, which fan out to an
// LLM provider when one is configured.
const aiRateLimitGroup = "ai"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	RFPHandler       *rfps.Handler
	EmailHandler     *emails.Handler
	KnowledgeHandler *knowledge.Handler
	DashboardHandler *dashboard.Handler
	AssistantHandler *assistant.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})

	ai := api.Group("")
	ai.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			aiRateLimitGroup: {Rate: 1, Burst: 5},
		},
		DefaultGroup: aiRateLimitGroup,
	}))

	if deps.RFPHandler != nil {
		deps.RFPHandler.RegisterRoutes(api, ai)
	}
	if deps.EmailHandler != nil {
		deps.EmailHandler.RegisterRoutes(api)
	}
	if deps.KnowledgeHandler != nil {
		deps.KnowledgeHandler.RegisterRoutes(api)
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.RegisterRoutes(api)
	}
	if deps.AssistantHandler != nil {
		deps.AssistantHandler.RegisterRoutes(ai)
	}

	registerStatic(r, deps.Config.StaticDir)

	return r
}

// registerStatic serves the built dashboard bundle. Unknown non-API paths
// fall back to index.html so client-side routing works after a refresh.
func registerStatic(r *gin.Engine, dir string) {
	if strings.TrimSpace(dir) == "" {
		return
	}
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			respond.Error(c, http.StatusNotFound, "not found")
			return
		}
		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(index)
	})
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"adresponse-backend/internal/assistant"
	"adresponse-backend/internal/dashboard"
	"adresponse-backend/internal/emails"
	"adresponse-backend/internal/knowledge"
	"adresponse-backend/internal/llm"
	openai "adresponse-backend/internal/llm/openai"
	"adresponse-backend/internal/rfps"
	"adresponse-backend/internal/shared/config"
	"adresponse-backend/internal/shared/server"
	"adresponse-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	RFPRepo          rfps.Repo
	KnowledgeRepo    knowledge.Repo
	EmailRepo        emails.Repo
	RFPService       *rfps.Service
	KnowledgeService *knowledge.Service
	DashboardService *dashboard.Service
	AssistantService *assistant.Service
	RFPHandler       *rfps.Handler
	EmailHandler     *emails.Handler
	KnowledgeHandler *knowledge.Handler
	DashboardHandler *dashboard.Handler
	AssistantHandler *assistant.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		RFPHandler:       app.RFPHandler,
		EmailHandler:     app.EmailHandler,
		KnowledgeHandler: app.KnowledgeHandler,
		DashboardHandler: app.DashboardHandler,
		AssistantHandler: app.AssistantHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(ctx context.Context, app *App) error {
	var rfpRepo rfps.Repo
	var knowledgeRepo knowledge.Repo
	if app.DB != nil {
		rfpRepo = &rfps.PGRepo{DB: app.DB}
		knowledgeRepo = &knowledge.PGRepo{DB: app.DB}
	} else {
		rfpRepo = rfps.NewMemoryRepo()
		knowledgeRepo = knowledge.NewMemoryRepo()
	}
	emailRepo := emails.NewMemoryRepo()

	if err := knowledge.SeedArticles(ctx, knowledgeRepo); err != nil {
		return fmt.Errorf("seed knowledge base: %w", err)
	}

	var llmClient llm.Client
	if app.Config.LLMProvider == "openai" {
		client, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = client
	}

	rfpSvc := &rfps.Service{Repo: rfpRepo, LLM: llmClient}
	knowledgeSvc := &knowledge.Service{Repo: knowledgeRepo}
	dashboardSvc := &dashboard.Service{RFPs: rfpRepo}
	assistantSvc := &assistant.Service{LLM: llmClient}

	app.RFPRepo = rfpRepo
	app.KnowledgeRepo = knowledgeRepo
	app.EmailRepo = emailRepo
	app.RFPService = rfpSvc
	app.KnowledgeService = knowledgeSvc
	app.DashboardService = dashboardSvc
	app.AssistantService = assistantSvc
	app.RFPHandler = rfps.NewHandler(rfpSvc)
	app.EmailHandler = emails.NewHandler(emailRepo)
	app.KnowledgeHandler = knowledge.NewHandler(knowledgeSvc)
	app.DashboardHandler = dashboard.NewHandler(dashboardSvc)
	app.AssistantHandler = assistant.NewHandler(assistantSvc)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

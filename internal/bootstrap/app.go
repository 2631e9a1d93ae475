package bootstrap

import (
	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/letters"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/llm/openai"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	LLM            llm.Client
	LettersService *letters.Service
	LettersHandler *letters.Handler
}

// Build prepares dependencies and wires routes. It fails fast when the API
// credential is missing, before any pipeline invocation is possible.
func Build(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.MaxOutputTokens)
	if err != nil {
		return nil, err
	}
	return BuildWithClient(cfg, client), nil
}

// BuildWithClient wires the app around an existing completion client.
// Tests use it to substitute a fake.
func BuildWithClient(cfg config.Config, client llm.Client) *App {
	svc := &letters.Service{LLM: client, Model: cfg.LLMModel}
	handler := letters.NewHandler(svc)
	router := server.NewRouter(cfg, handler)

	return &App{
		Config:         cfg,
		Router:         router,
		LLM:            client,
		LettersService: svc,
		LettersHandler: handler,
	}
}

package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	echomid "github.com/labstack/echo/v4/middleware"

	"github.com/videobrief/backend/internal/config"
	mid "github.com/videobrief/backend/internal/server/middleware"
	"github.com/videobrief/backend/pkg/ai"
	oll "github.com/videobrief/backend/pkg/ai/ollama"
	oai "github.com/videobrief/backend/pkg/ai/openai"
	"github.com/videobrief/backend/pkg/logger"
	"github.com/videobrief/backend/pkg/summarize"
	"github.com/videobrief/backend/pkg/transcript"
	"github.com/videobrief/backend/pkg/translate"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func newAIClient(cfg *config.Config) ai.ChatAIClient {
	switch cfg.AIAdapter {
	case "ollama":
		client, err := oll.NewChatOllamaClient(oll.NewChatOllamaClientParams{
			ChatModel: cfg.AIChatModel,

			BaseURL: cfg.AIChatURL,
			ApiKey:  cfg.AIChatKey,

			MaxConcurrentRequests: int64(cfg.AIMaxParallel),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return oai.NewChatOpenAIClient(oai.NewChatOpenAIClientParams{
			ChatModel: cfg.AIChatModel,
			ChatURL:   cfg.AIChatURL,
			ChatKey:   cfg.AIChatKey,
		})
	}
}

func Init(cfg *config.Config) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiClient := newAIClient(cfg)

	app := &mid.App{
		Config:   cfg,
		AiClient: aiClient,
		Pipeline: summarize.NewPipeline(aiClient, summarize.DefaultPolicy()),
		Transcripts: transcript.NewClient(transcript.NewClientParams{
			APIKey: cfg.YouTubeAPIKey,
		}),
		Translator: translate.NewClient(translate.NewClientParams{
			APIKey:  cfg.TranslateAPIKey,
			BaseURL: cfg.TranslateURL,
		}),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(mid.RequestIDMiddleware)
	e.Use(echomid.CORSWithConfig(echomid.CORSConfig{
		AllowOrigins: []string{cfg.AllowOrigin},
	}))
	e.Use(echomid.RequestLogger())
	e.Use(echomid.Recover())
	e.Use(echomid.BodyLimit("2M"))

	RegisterRoutes(e)

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

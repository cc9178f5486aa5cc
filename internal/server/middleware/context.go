package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/config"
	"github.com/videobrief/backend/pkg/ai"
	"github.com/videobrief/backend/pkg/summarize"
	"github.com/videobrief/backend/pkg/transcript"
	"github.com/videobrief/backend/pkg/translate"
)

// App holds the shared clients every handler needs. It is constructed once
// at startup; nothing in it is request-scoped.
type App struct {
	Config      *config.Config
	AiClient    ai.ChatAIClient
	Pipeline    *summarize.Pipeline
	Transcripts *transcript.Client
	Translator  *translate.Client
}

// AppContext wraps the echo context with the shared application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}

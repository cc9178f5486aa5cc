package server

import (
	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/metrics", routes.GetMetricsHandler)

	e.GET("/transcript/:videoId", routes.GetTranscriptHandler)
	e.GET("/video/:videoId", routes.GetVideoHandler)
	e.POST("/detect-language", routes.DetectLanguageHandler)
	e.POST("/translate", routes.TranslateHandler)
	e.POST("/summarize", routes.SummarizeHandler)
}

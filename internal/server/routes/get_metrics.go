package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/server/middleware"
	"github.com/videobrief/backend/pkg/ai"
)

// GetMetricsHandler reports the model usage accumulated since startup.
func GetMetricsHandler(c echo.Context) error {
	type getMetricsResponse struct {
		Success bool            `json:"success"`
		Model   ai.ModelMetrics `json:"model"`
	}

	app := c.(*middleware.AppContext).App
	return c.JSON(http.StatusOK, getMetricsResponse{
		Success: true,
		Model:   app.AiClient.GetMetrics(),
	})
}

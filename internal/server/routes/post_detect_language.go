package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/server/middleware"
	"github.com/videobrief/backend/pkg/logger"
	"github.com/videobrief/backend/pkg/summarize"
)

// DetectLanguageHandler identifies the language of a text and returns its
// ISO 639-1 code.
func DetectLanguageHandler(c echo.Context) error {
	type detectLanguageBody struct {
		Text string `json:"text" validate:"required"`
	}

	type detectLanguageResponse struct {
		Success  bool   `json:"success"`
		Language string `json:"language,omitempty"`
		Error    string `json:"error,omitempty"`
	}

	data := new(detectLanguageBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, detectLanguageResponse{
			Error: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, detectLanguageResponse{
			Error: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	code, err := app.Pipeline.DetectLanguage(c.Request().Context(), data.Text)
	if err != nil {
		if summarize.IsInvalidInput(err) {
			return c.JSON(http.StatusBadRequest, detectLanguageResponse{
				Error: err.Error(),
			})
		}
		logger.Error("Language detection failed", "err", err)
		return c.JSON(http.StatusInternalServerError, detectLanguageResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, detectLanguageResponse{
		Success:  true,
		Language: code,
	})
}

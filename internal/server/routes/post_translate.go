package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/server/middleware"
	"github.com/videobrief/backend/pkg/logger"
)

// TranslateHandler forwards a text to the translation API and returns the
// first translation.
func TranslateHandler(c echo.Context) error {
	type translateBody struct {
		Text           string `json:"text" validate:"required"`
		TargetLanguage string `json:"targetLanguage" validate:"required"`
	}

	type translateResponse struct {
		Success     bool   `json:"success"`
		Translation string `json:"translation,omitempty"`
		Error       string `json:"error,omitempty"`
	}

	data := new(translateBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, translateResponse{
			Error: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, translateResponse{
			Error: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	translation, err := app.Translator.Translate(
		c.Request().Context(), data.Text, data.TargetLanguage,
	)
	if err != nil {
		logger.Error("Translation failed", "err", err)
		return c.JSON(http.StatusInternalServerError, translateResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, translateResponse{
		Success:     true,
		Translation: translation,
	})
}

package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/server/middleware"
	"github.com/videobrief/backend/pkg/logger"
	"github.com/videobrief/backend/pkg/summarize"
	"github.com/videobrief/backend/pkg/transcript"
)

// SummarizeHandler runs the summarization pipeline over a transcript posted
// by the client and returns the summary plus concept map.
func SummarizeHandler(c echo.Context) error {
	type summarizeBody struct {
		Transcript []transcript.Segment `json:"transcript" validate:"required"`
		Language   string               `json:"language"`
		Length     string               `json:"length"`
	}

	type summarizeResponse struct {
		Success    bool            `json:"success"`
		Summary    string          `json:"summary,omitempty"`
		ConceptMap json.RawMessage `json:"conceptMap,omitempty"`
		Error      string          `json:"error,omitempty"`
	}

	data := new(summarizeBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, summarizeResponse{
			Error: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, summarizeResponse{
			Error: "Invalid request body",
		})
	}
	if data.Language == "" {
		data.Language = "english"
	}

	app := c.(*middleware.AppContext).App
	result, err := app.Pipeline.Summarize(
		c.Request().Context(),
		data.Transcript,
		data.Language,
		data.Length,
	)
	if err != nil {
		if summarize.IsInvalidInput(err) {
			return c.JSON(http.StatusBadRequest, summarizeResponse{
				Error: err.Error(),
			})
		}
		logger.Error("Summarization failed", "err", err)
		return c.JSON(http.StatusInternalServerError, summarizeResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, summarizeResponse{
		Success:    true,
		Summary:    result.Summary,
		ConceptMap: result.ConceptMap,
	})
}

package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/server/middleware"
	"github.com/videobrief/backend/pkg/logger"
	"github.com/videobrief/backend/pkg/transcript"
)

// GetTranscriptHandler fetches the caption segments of a video. The language
// defaults to English and can be overridden with the lang query parameter.
func GetTranscriptHandler(c echo.Context) error {
	type getTranscriptResponse struct {
		Success    bool                 `json:"success"`
		Transcript []transcript.Segment `json:"transcript,omitempty"`
		Error      string               `json:"error,omitempty"`
	}

	videoID := c.Param("videoId")
	if videoID == "" {
		return c.JSON(http.StatusBadRequest, getTranscriptResponse{
			Error: "Missing video id",
		})
	}
	lang := c.QueryParam("lang")

	app := c.(*middleware.AppContext).App
	segments, err := app.Transcripts.FetchTranscript(c.Request().Context(), videoID, lang)
	if err != nil {
		if errors.Is(err, transcript.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getTranscriptResponse{
				Error: "No transcript available for this video",
			})
		}
		logger.Error("Failed to fetch transcript", "video_id", videoID, "err", err)
		return c.JSON(http.StatusBadGateway, getTranscriptResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, getTranscriptResponse{
		Success:    true,
		Transcript: segments,
	})
}

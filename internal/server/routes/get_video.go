package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/videobrief/backend/internal/server/middleware"
	"github.com/videobrief/backend/pkg/logger"
	"github.com/videobrief/backend/pkg/transcript"
)

// GetVideoHandler returns video and channel metadata from the YouTube Data
// API.
func GetVideoHandler(c echo.Context) error {
	type getVideoResponse struct {
		Success bool                  `json:"success"`
		Video   *transcript.VideoInfo `json:"video,omitempty"`
		Error   string                `json:"error,omitempty"`
	}

	videoID := c.Param("videoId")
	if videoID == "" {
		return c.JSON(http.StatusBadRequest, getVideoResponse{
			Error: "Missing video id",
		})
	}

	app := c.(*middleware.AppContext).App
	info, err := app.Transcripts.GetVideoInfo(c.Request().Context(), videoID)
	if err != nil {
		switch {
		case errors.Is(err, transcript.ErrNotFound):
			return c.JSON(http.StatusNotFound, getVideoResponse{
				Error: "Video not found",
			})
		case errors.Is(err, transcript.ErrNoAPIKey):
			return c.JSON(http.StatusNotImplemented, getVideoResponse{
				Error: "Video metadata is not configured on this server",
			})
		}
		logger.Error("Failed to fetch video info", "video_id", videoID, "err", err)
		return c.JSON(http.StatusBadGateway, getVideoResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, getVideoResponse{
		Success: true,
		Video:   info,
	})
}

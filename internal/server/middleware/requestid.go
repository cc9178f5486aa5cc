package middleware

import (
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags every request/response pair with a short id.
// An inbound X-Request-Id is kept so callers can correlate with their own
// logs.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(requestIDHeader)
		if id == "" {
			id, _ = gonanoid.New(12)
		}
		c.Set("request_id", id)
		c.Response().Header().Set(requestIDHeader, id)
		return next(c)
	}
}

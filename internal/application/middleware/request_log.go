package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weathercast/pkg/log"
	"weathercast/pkg/msg"
)

// DefaultSkippedPaths are the health probe and swagger UI paths
var DefaultSkippedPaths = []string{"/health", "/swagger/"}

// SetupRequestLogger registers the request id and request logging middlewares.
// Requests whose path contains one of skippedPaths are not logged.
func SetupRequestLogger(e *echo.Echo, skippedPaths ...string) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			return isSkipped(c.Request().URL.Path, skippedPaths)
		},
		LogValuesFunc: logRequest,
	}))
}

func isSkipped(path string, skippedPaths []string) bool {
	for _, skipped := range skippedPaths {
		if strings.Contains(path, skipped) {
			return true
		}
	}
	return false
}

func logRequest(c echo.Context, v echomw.RequestLoggerValues) error {
	fields := []zap.Field{
		zap.String("method", v.Method),
		zap.String("uri", v.URI),
		zap.Int("status", v.Status),
		zap.Duration("latency", v.Latency),
		zap.String("request_id", v.RequestID),
	}
	if id := c.Param("id"); id != "" {
		fields = append(fields, zap.String("session_id", id))
	}

	if v.Error == nil {
		log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID), fields...)
		return nil
	}

	log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID, v.Error.Error()),
		append(fields, zap.Error(v.Error))...)
	return nil
}

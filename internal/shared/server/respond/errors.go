package respond

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/telemetry"
)

// ErrorTemplate is the view rendered for every failure.
const ErrorTemplate = "error.html"

// ErrorPage logs err and renders the generic error view carrying message.
func ErrorPage(c *gin.Context, status int, message string, err error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Error("http.error", fields)

	c.HTML(status, ErrorTemplate, gin.H{
		"Title":   "Error",
		"Message": message,
	})
	c.Abort()
}

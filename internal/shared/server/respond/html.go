package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTML renders the named template with a 200 status.
func HTML(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// Redirect sends the browser to path after a successful write.
func Redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, path)
}

package middleware

import (
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/views"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := views.Load(nil)
	if err != nil {
		t.Fatalf("load views: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	return r
}

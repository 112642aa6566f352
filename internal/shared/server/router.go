package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/records"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/server/views"
)

// RouterDeps carries the handlers and services the router mounts.
type RouterDeps struct {
	Config        config.Config
	RecordHandler *records.Handler
	Health        *health.Service
}

// NewRouter constructs the Gin engine with middleware, templates and routes registered.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	tmpl, err := views.Load(navItems())
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.ErrorPage(c, http.StatusNotFound, "Page not found.", nil)
	})

	if deps.Health != nil {
		r.GET("/health", func(c *gin.Context) {
			status, ok := deps.Health.Status(c.Request.Context())
			code := http.StatusOK
			if !ok {
				code = http.StatusServiceUnavailable
			}
			respond.JSON(c, code, status)
		})
	}
	r.GET("/metrics", metrics.Handler())

	if deps.RecordHandler != nil {
		contactLimit := middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "CONTACT",
			Rules: map[string]middleware.RateLimitRule{
				"CONTACT": {Rate: deps.Config.ContactRate, Burst: deps.Config.ContactBurst},
			},
			Message: "Too many messages. Please try again later.",
		})
		deps.RecordHandler.RegisterRoutes(r, contactLimit)
	}

	return r, nil
}

func navItems() []views.NavItem {
	schemas := records.Editable()
	items := make([]views.NavItem, 0, len(schemas))
	for _, s := range schemas {
		items = append(items, views.NavItem{Title: s.Title, Path: s.ListPath})
	}
	return items
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

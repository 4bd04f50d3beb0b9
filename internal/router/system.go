package router

import (
	"net/http"

	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// employee domain: health and API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", handler.Handle(h.Health.Handler, h.Health.CheckHealth, http.StatusOK))

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)
	r.StaticFS("/static", h.OpenAPI.Files())
}

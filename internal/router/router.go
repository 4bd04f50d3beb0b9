// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain, the
// global error handler, and every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and transaction must exist before the
	// request logger is built, and Recover must sit inside the logger so a
	// panic is still logged as a 500.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerEmployeeRoutes(router, h, middlewares)

	return router
}

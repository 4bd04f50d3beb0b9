package middleware

import (
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server,
// built once with their shared dependencies and reused during router setup.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers,
	// and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and transaction attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-client request budget.
	RateLimit *RateLimitMiddleware

	// Body parses and caps JSON request bodies.
	Body *BodyMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
//
// When New Relic is not configured the tracing middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s, nrApp),
		Body:            NewBodyMiddleware(s),
	}
}

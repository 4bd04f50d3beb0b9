package middleware

import (
	"net/http"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/newrelic"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware enforces a per-IP token bucket and reports every
// rejected request to New Relic.
type RateLimitMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewRateLimitMiddleware(s *server.Server, nrApp *newrelic.Application) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// Limit returns the rate limiting middleware. Rejected requests end in a 429
// failure envelope. When rate limiting is disabled it is a pass-through.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.New(http.StatusForbidden, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("client", identifier).
				Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError()
		},
	})
}

// RecordRateLimitHit records a RateLimitHit custom event for endpoint.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.nrApp == nil {
		return
	}
	r.nrApp.RecordCustomEvent("RateLimitHit", map[string]any{
		"endpoint": endpoint,
	})
}

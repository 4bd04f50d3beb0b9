// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request correlation, request logging, CORS,
// rate limiting, JSON body parsing and panic recovery.
// It also owns the global error handler, the one place where a
// failed request is turned into a failure envelope.
package middleware

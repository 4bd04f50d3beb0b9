package middleware

import (
	"net/http"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups "global" middleware and the global error handler,
// so they can read config values and the logger from *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by server.cors_allowed_origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAccept,
			RequestIDHeader,
		},
		ExposeHeaders: []string{RequestIDHeader},
	})
}

// RequestLogger produces one "API" log line per request, with the level
// picked from the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// A returned error has not been written yet when this runs, so
			// the status is taken from the error the handler will map it to.
			// See https://github.com/labstack/echo/issues/2310
			if v.Error != nil {
				statusCode = resolveError(c, v.Error).Status
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns a panic into an error for GlobalErrorHandler, which answers
// with the generic 500 envelope. The panic value and stack are logged here.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			GetLogger(c).Error().
				Err(err).
				Bytes("stack", stack).
				Msg("recovered from panic")
			return err
		},
	})
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error returned by a handler or middleware ends up here and leaves as
// a failure envelope whose status_code matches the HTTP status. The original
// error is logged with the request logger; the client only sees the mapped
// message.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := resolveError(c, err)

	logger := GetLogger(c)

	var event *zerolog.Event
	if httpErr.Status >= 500 {
		event = logger.Error().Stack()
	} else {
		event = logger.Warn()
	}
	event.
		Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Strs("validation_errors", httpErr.Violations).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Status)
	} else {
		err = c.JSON(httpErr.Status, httpErr.Envelope())
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}

// resolveError maps any error onto the HTTPError the client will receive.
func resolveError(c echo.Context, err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, repository.ErrNotFound) {
		var nf *repository.NotFoundError
		if errors.As(err, &nf) {
			return errs.NewNotFoundError(nf.Resource, nf.ID)
		}
		return errs.NewRouteNotFoundError()
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch echoErr.Code {
		case http.StatusNotFound:
			return errs.NewRouteNotFoundError()
		case http.StatusMethodNotAllowed:
			return errs.NewMethodNotAllowedError(c.Request().Method)
		case http.StatusRequestEntityTooLarge:
			return errs.New(http.StatusRequestEntityTooLarge, "Request body too large")
		}
		if echoErr.Code >= 500 {
			return errs.NewInternalServerError()
		}
		return errs.New(echoErr.Code, http.StatusText(echoErr.Code))
	}

	return errs.NewInternalServerError()
}

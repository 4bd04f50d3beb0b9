package handler

import (
	"time"

	"github.com/deppfellow/employee-api/internal/envelope"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// Concrete handlers embed it to reach config, logger and the New Relic
// application through *server.Server.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc is a typed endpoint function. It returns the value placed under
// "data" in the success envelope and an optional message, or an error that
// the global error handler turns into a failure envelope.
type HandlerFunc[Res any] func(c echo.Context) (Res, string, error)

// ResponseHandler defines how a successful handler result is written to the
// HTTP response and which attributes it adds to the New Relic transaction.
type ResponseHandler interface {
	Handle(c echo.Context, result any, message string) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes a success envelope with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any, message string) error {
	return c.JSON(h.status, envelope.Success(result, message))
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// handleRequest is the shared execution pipeline for all JSON endpoints.
//
// It centralizes structured logging, New Relic attributes and error
// reporting, timing, and writing the success envelope. Errors are returned
// untouched so the global error handler stays the only failure writer.
func handleRequest(
	c echo.Context,
	handler func(c echo.Context) (any, string, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	result, message, err := handler(c)
	handlerDuration := time.Since(start)

	if err != nil {
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler returned an error")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Msg("request completed successfully")

	if err := responseHandler.Handle(c, result, message); err != nil {
		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
		}
		return err
	}
	return nil
}

// Handle wraps a typed handler into the unified pipeline and returns an
// echo.HandlerFunc that can be registered directly on routes.
//
//	router.POST("/employees", handler.Handle(h.Handler, h.CreateEmployee, http.StatusCreated))
func Handle[Res any](h Handler, handler HandlerFunc[Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, func(c echo.Context) (any, string, error) {
			return handler(c)
		}, JSONResponseHandler{status: status})
	}
}

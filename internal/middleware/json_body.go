package middleware

import (
	"net/http"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// JSONBodyKey is the Echo context key holding the parsed request object.
const JSONBodyKey = "json_body"

// BodyMiddleware parses JSON request bodies before handlers run.
type BodyMiddleware struct {
	server *server.Server
}

func NewBodyMiddleware(s *server.Server) *BodyMiddleware {
	return &BodyMiddleware{server: s}
}

// RequireJSON rejects requests whose Content-Type is not JSON or whose body
// is not exactly one JSON object, before any validation runs. The body is
// capped at server.max_body_bytes.
//
// The parsed object is available to handlers through GetJSONBody.
func (b *BodyMiddleware) RequireJSON() echo.MiddlewareFunc {
	maxBytes := b.server.Config.Server.MaxBodyBytes

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !validation.IsJSONContentType(req.Header.Get(echo.HeaderContentType)) {
				return errs.NewInvalidJSONError()
			}

			if req.ContentLength > maxBytes {
				return errs.New(http.StatusRequestEntityTooLarge, "Request body too large")
			}

			body := http.MaxBytesReader(c.Response(), req.Body, maxBytes)
			data, err := validation.DecodeJSONObject(body)
			if err != nil {
				return err
			}

			c.Set(JSONBodyKey, data)
			return next(c)
		}
	}
}

// GetJSONBody returns the object parsed by RequireJSON, or nil when the
// middleware did not run for this route.
func GetJSONBody(c echo.Context) map[string]any {
	if data, ok := c.Get(JSONBodyKey).(map[string]any); ok {
		return data
	}
	return nil
}

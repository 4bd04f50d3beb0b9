package middleware

import (
	"strconv"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// PathIDKey is the Echo context key holding the id parsed by PathID.
const PathIDKey = "path_id"

// PathID returns a route middleware that only lets unsigned decimal values
// of the :param path parameter through, before the body is looked at.
//
// Any other value means the route did not match. An all-digit id too large
// for int is a valid route that can never name a stored resource.
func PathID(param, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Param(param)
			if !isDecimal(raw) {
				return errs.NewRouteNotFoundError()
			}

			id, err := strconv.Atoi(raw)
			if err != nil {
				return errs.NewNotFoundError(resource, raw)
			}

			c.Set(PathIDKey, id)
			return next(c)
		}
	}
}

// GetPathID returns the id stored by PathID. ok is false when PathID did not
// run for this route.
func GetPathID(c echo.Context) (id int, ok bool) {
	id, ok = c.Get(PathIDKey).(int)
	return id, ok
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

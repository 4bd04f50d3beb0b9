// Package handler is the first layer after the router.
//
// It reads path parameters and parsed request bodies, calls the
// service layer, and hands the result to the shared pipeline that
// writes the success envelope. Failures are returned as errors and
// left to the global error handler.
package handler

import (
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Employee *EmployeeHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Employee: NewEmployeeHandler(s, services.Employees),
		Health:   NewHealthHandler(s, services.Employees),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}

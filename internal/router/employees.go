package router

import (
	"net/http"

	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerEmployeeRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	eh := h.Employee
	requireJSON := m.Body.RequireJSON()
	requireID := middleware.PathID("id", "Employee")

	employees := r.Group("/employees")

	employees.GET("", handler.Handle(eh.Handler, eh.ListEmployees, http.StatusOK))
	employees.POST("", handler.Handle(eh.Handler, eh.CreateEmployee, http.StatusCreated), requireJSON)

	employees.GET("/:id", handler.Handle(eh.Handler, eh.GetEmployee, http.StatusOK), requireID)
	employees.PUT("/:id", handler.Handle(eh.Handler, eh.UpdateEmployee, http.StatusOK), requireID, requireJSON)
	employees.DELETE("/:id", handler.Handle(eh.Handler, eh.DeleteEmployee, http.StatusOK), requireID)
}

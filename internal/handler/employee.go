package handler

import (
	"fmt"

	"github.com/deppfellow/employee-api/internal/domain"
	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
	"github.com/labstack/echo/v4"
)

// EmployeeHandler serves the /employees endpoints.
type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

func (h *EmployeeHandler) ListEmployees(c echo.Context) ([]domain.Employee, string, error) {
	return h.employees.List(c.Request().Context()), "", nil
}

func (h *EmployeeHandler) GetEmployee(c echo.Context) (domain.Employee, string, error) {
	id, err := employeeID(c)
	if err != nil {
		return domain.Employee{}, "", err
	}

	employee, err := h.employees.Get(c.Request().Context(), id)
	return employee, "", err
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context) (domain.Employee, string, error) {
	employee, err := h.employees.Create(c.Request().Context(), middleware.GetJSONBody(c))
	if err != nil {
		return domain.Employee{}, "", err
	}
	return employee, "Employee created successfully", nil
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context) (domain.Employee, string, error) {
	id, err := employeeID(c)
	if err != nil {
		return domain.Employee{}, "", err
	}

	employee, err := h.employees.Update(c.Request().Context(), id, middleware.GetJSONBody(c))
	if err != nil {
		return domain.Employee{}, "", err
	}
	return employee, "Employee updated successfully", nil
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context) (domain.DeletedEmployee, string, error) {
	id, err := employeeID(c)
	if err != nil {
		return domain.DeletedEmployee{}, "", err
	}

	employee, err := h.employees.Delete(c.Request().Context(), id)
	if err != nil {
		return domain.DeletedEmployee{}, "", err
	}

	return domain.DeletedEmployee{DeletedID: employee.ID},
		fmt.Sprintf("Employee '%s' deleted successfully", employee.Name),
		nil
}

// employeeID returns the id validated by the PathID route middleware.
func employeeID(c echo.Context) (int, error) {
	id, ok := middleware.GetPathID(c)
	if !ok {
		return 0, errs.NewRouteNotFoundError()
	}
	return id, nil
}

package handler

import (
	"time"

	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthStatus is the data returned by the health endpoint.
type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Employees   int       `json:"employees"`
}

// HealthHandler exposes a "system" endpoint that load balancers and uptime
// monitors use to verify the service is alive.
type HealthHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewHealthHandler(s *server.Server, employees *service.EmployeeService) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

// CheckHealth reports the service as healthy along with the number of stored
// employees. The store lives in process memory, so there is no dependency
// that can be down while the process answers.
func (h *HealthHandler) CheckHealth(c echo.Context) (HealthStatus, string, error) {
	status := HealthStatus{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Employees:   h.employees.Count(),
	}

	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Int("employees", status.Employees).
		Msg("health check passed")

	return status, "API is running", nil
}

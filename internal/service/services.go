package service

import (
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
)

// Services is a container for all business services.
type Services struct {
	Employees *EmployeeService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Employees: NewEmployeeService(s, repos.Employees),
	}
}

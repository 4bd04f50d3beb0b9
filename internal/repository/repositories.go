// Package repository owns the application's records.
//
// Repositories hide how records are stored from the service layer. The
// employee store keeps everything in memory for the lifetime of the process.
package repository

import (
	"github.com/deppfellow/employee-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Employees *EmployeeRepository
}

// NewRepositories constructs the repository container.
//
// When store.seed_demo is set the employee store starts with the demo records.
func NewRepositories(s *server.Server) *Repositories {
	employees := NewEmployeeRepository()

	if s.Config.Store.SeedDemo {
		employees.SeedDemo()
		s.Logger.Info().
			Int("employees", employees.Count()).
			Msg("seeded employee store with demo records")
	}

	return &Repositories{
		Employees: employees,
	}
}

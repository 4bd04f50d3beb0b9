package service

import (
	"context"

	"github.com/deppfellow/employee-api/internal/domain"
	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/validation"
	"github.com/rs/zerolog"
)

const invalidEmployeeMessage = "Invalid employee data"

// EmployeeService implements the employee use cases on top of the store.
type EmployeeService struct {
	server *server.Server
	repo   *repository.EmployeeRepository
}

func NewEmployeeService(s *server.Server, repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		server: s,
		repo:   repo,
	}
}

func (s *EmployeeService) List(ctx context.Context) []domain.Employee {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int) (domain.Employee, error) {
	return s.repo.Find(ctx, id)
}

// Create validates payload in create mode and stores the trimmed employee.
func (s *EmployeeService) Create(ctx context.Context, payload map[string]any) (domain.Employee, error) {
	if violations := validation.ValidateEmployee(payload, false); len(violations) > 0 {
		return domain.Employee{}, errs.NewValidationError(invalidEmployeeMessage, violations)
	}

	patch := validation.EmployeePatchFrom(payload)
	employee := s.repo.Create(ctx, *patch.Name, *patch.Position)

	zerolog.Ctx(ctx).Info().
		Int("employee_id", employee.ID).
		Msg("employee created")

	return employee, nil
}

// Update changes only the fields present in payload.
//
// A missing employee is reported before the payload is validated.
func (s *EmployeeService) Update(ctx context.Context, id int, payload map[string]any) (domain.Employee, error) {
	if _, err := s.repo.Find(ctx, id); err != nil {
		return domain.Employee{}, err
	}

	if violations := validation.ValidateEmployee(payload, true); len(violations) > 0 {
		return domain.Employee{}, errs.NewValidationError(invalidEmployeeMessage, violations)
	}

	employee, err := s.repo.Update(ctx, id, validation.EmployeePatchFrom(payload))
	if err != nil {
		return domain.Employee{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int("employee_id", employee.ID).
		Msg("employee updated")

	return employee, nil
}

// Delete removes the employee and returns it so callers can name it.
func (s *EmployeeService) Delete(ctx context.Context, id int) (domain.Employee, error) {
	employee, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int("employee_id", employee.ID).
		Msg("employee deleted")

	return employee, nil
}

// Count is the number of stored employees.
func (s *EmployeeService) Count() int {
	return s.repo.Count()
}

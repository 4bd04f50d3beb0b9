package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/deppfellow/employee-api/internal/domain"
)

const employeeResource = "Employee"

// EmployeeRepository is an insertion-ordered, in-memory employee store.
//
// Ids come from a counter that starts at 1 and only moves forward, so a
// deleted id is never handed out again. All methods are safe for concurrent
// use.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []domain.Employee
	nextID    int
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{nextID: 1}
}

// SeedDemo appends the demo employees.
func (r *EmployeeRepository) SeedDemo() {
	ctx := context.Background()
	r.Create(ctx, "John Doe", "Developer")
	r.Create(ctx, "Jane Smith", "Designer")
	r.Create(ctx, "Emily Johnson", "Manager")
}

// List returns a copy of all employees in insertion order. It never returns nil.
func (r *EmployeeRepository) List(ctx context.Context) []domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *EmployeeRepository) Find(ctx context.Context, id int) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Employee{}, notFound(id)
	}
	return r.employees[i], nil
}

// Create stores a new employee under the next id. Callers pass values that
// are already validated and trimmed.
func (r *EmployeeRepository) Create(ctx context.Context, name, position string) domain.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee := domain.Employee{
		ID:       r.nextID,
		Name:     name,
		Position: position,
	}
	r.nextID++
	r.employees = append(r.employees, employee)

	return employee
}

// Update applies patch to the employee with the given id and returns the
// stored result.
func (r *EmployeeRepository) Update(ctx context.Context, id int, patch domain.EmployeePatch) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Employee{}, notFound(id)
	}

	r.employees[i] = patch.Apply(r.employees[i])
	return r.employees[i], nil
}

// Delete removes the employee with the given id and returns it.
func (r *EmployeeRepository) Delete(ctx context.Context, id int) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Employee{}, notFound(id)
	}

	removed := r.employees[i]
	r.employees = slices.Delete(r.employees, i, i+1)
	return removed, nil
}

func (r *EmployeeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.employees)
}

// NextID is the id the next Create will assign.
func (r *EmployeeRepository) NextID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}

// indexOf must be called with mu held.
func (r *EmployeeRepository) indexOf(id int) int {
	return slices.IndexFunc(r.employees, func(e domain.Employee) bool {
		return e.ID == id
	})
}

func notFound(id int) error {
	return &NotFoundError{Resource: employeeResource, ID: id}
}

package service

import (
	"context"

	"employees/internal/model"
	"employees/internal/repository"
)

// IEmployeeService defines the operations the HTTP layer depends on.
// Single-value lookups return nil with a nil error when no employee
// matches the given id.
type IEmployeeService interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	Get(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context) ([]*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee, id string) (*model.Employee, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeService mediates between the HTTP layer and persistence
type EmployeeService struct {
	repo repository.IEmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.IEmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Create stores a new employee. A caller-supplied id is honored as an
// upsert by the repository.
func (s *EmployeeService) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	return s.repo.Save(ctx, employee)
}

// Get returns the employee with the given id, or nil when none exists
func (s *EmployeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all employees
func (s *EmployeeService) List(ctx context.Context) ([]*model.Employee, error) {
	return s.repo.FindAll(ctx)
}

// Update overwrites the name and email fields of the employee addressed
// by id. The stored id is retained and the incoming entity's id is
// ignored. Returns nil when no employee with that id exists.
func (s *EmployeeService) Update(ctx context.Context, employee *model.Employee, id string) (*model.Employee, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.FirstName = employee.FirstName
	existing.LastName = employee.LastName
	existing.Email = employee.Email

	return s.repo.Save(ctx, existing)
}

// Delete removes the employee with the given id. Deleting a missing id
// succeeds.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

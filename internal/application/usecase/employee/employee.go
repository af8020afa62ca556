// Package employee contains hub employee use cases.
package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ListEmployeesUseCase lists the employees of a hub.
type ListEmployeesUseCase struct {
	hubRepo      adapter.HubRepository
	employeeRepo adapter.EmployeeRepository
}

// NewListEmployeesUseCase creates a new ListEmployeesUseCase instance.
func NewListEmployeesUseCase(hubRepo adapter.HubRepository, employeeRepo adapter.EmployeeRepository) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{hubRepo: hubRepo, employeeRepo: employeeRepo}
}

// Execute returns the hub employees ordered by name.
func (uc *ListEmployeesUseCase) Execute(ctx context.Context, hubID uuid.UUID) ([]*entity.Employee, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, hubID); err != nil {
		return nil, err
	}
	employees, err := uc.employeeRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// CreateEmployeeInput represents the input for employee creation.
type CreateEmployeeInput struct {
	HubID    uuid.UUID
	Name     string
	Position string
}

// CreateEmployeeUseCase handles employee creation.
type CreateEmployeeUseCase struct {
	hubRepo      adapter.HubRepository
	employeeRepo adapter.EmployeeRepository
}

// NewCreateEmployeeUseCase creates a new CreateEmployeeUseCase instance.
func NewCreateEmployeeUseCase(hubRepo adapter.HubRepository, employeeRepo adapter.EmployeeRepository) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{hubRepo: hubRepo, employeeRepo: employeeRepo}
}

// Execute creates the employee inside the hub.
func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, input CreateEmployeeInput) (*entity.Employee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingEmployee, "Employee name is required", nil)
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	employee := entity.NewEmployee(input.HubID, name, strings.TrimSpace(input.Position))
	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// UpdateEmployeeInput represents the input for employee update. Nil fields are left untouched.
type UpdateEmployeeInput struct {
	HubID      uuid.UUID
	EmployeeID uuid.UUID
	Name       *string
	Position   *string
}

// UpdateEmployeeUseCase handles partial employee updates.
type UpdateEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewUpdateEmployeeUseCase creates a new UpdateEmployeeUseCase instance.
func NewUpdateEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{employeeRepo: employeeRepo}
}

// Execute applies the update.
func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, input UpdateEmployeeInput) (*entity.Employee, error) {
	if input.Name == nil && input.Position == nil {
		return nil, domainerror.NewEmptyUpdateError()
	}

	employee, err := uc.employeeRepo.FindByID(ctx, input.HubID, input.EmployeeID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrEmployeeNotFound, domainerror.NewEmployeeNotFoundError, "find employee")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingEmployee, "Employee name is required", nil)
		}
		employee.Name = name
	}
	if input.Position != nil {
		employee.Position = strings.TrimSpace(*input.Position)
	}

	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// DeleteEmployeeUseCase deletes an employee and its attendance.
type DeleteEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewDeleteEmployeeUseCase creates a new DeleteEmployeeUseCase instance.
func NewDeleteEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *DeleteEmployeeUseCase {
	return &DeleteEmployeeUseCase{employeeRepo: employeeRepo}
}

// Execute deletes the employee.
func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, hubID, employeeID uuid.UUID) error {
	if err := uc.employeeRepo.Delete(ctx, hubID, employeeID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrEmployeeNotFound, domainerror.NewEmployeeNotFoundError, "delete employee")
	}
	return nil
}

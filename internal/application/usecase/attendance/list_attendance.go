// Package attendance contains employee attendance use cases.
package attendance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// MonthInput identifies a hub month.
type MonthInput struct {
	HubID uuid.UUID
	Year  int
	Month int
}

// ListAttendanceOutput is the monthly attendance grid of a hub.
type ListAttendanceOutput struct {
	Month     valueobject.MonthRange
	Employees []*entity.Employee
	// Entries is keyed by "<employee_id>_<date>".
	Entries map[string]*entity.AttendanceEntry
}

// EntryKey builds the grid key of an attendance entry.
func EntryKey(employeeID uuid.UUID, date string) string {
	return employeeID.String() + "_" + date
}

// ListAttendanceUseCase loads a month of attendance.
type ListAttendanceUseCase struct {
	hubRepo        adapter.HubRepository
	employeeRepo   adapter.EmployeeRepository
	attendanceRepo adapter.AttendanceRepository
}

// NewListAttendanceUseCase creates a new ListAttendanceUseCase instance.
func NewListAttendanceUseCase(
	hubRepo adapter.HubRepository,
	employeeRepo adapter.EmployeeRepository,
	attendanceRepo adapter.AttendanceRepository,
) *ListAttendanceUseCase {
	return &ListAttendanceUseCase{
		hubRepo:        hubRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Execute returns the employees and their entries of the month.
func (uc *ListAttendanceUseCase) Execute(ctx context.Context, input MonthInput) (*ListAttendanceOutput, error) {
	month, err := valueobject.NewMonthRange(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	employees, entries, err := loadMonth(ctx, uc.hubRepo, uc.employeeRepo, uc.attendanceRepo, input.HubID, month)
	if err != nil {
		return nil, err
	}

	grid := make(map[string]*entity.AttendanceEntry, len(entries))
	for _, entry := range entries {
		grid[EntryKey(entry.EmployeeID, entry.Date)] = entry
	}

	return &ListAttendanceOutput{
		Month:     month,
		Employees: employees,
		Entries:   grid,
	}, nil
}

func loadMonth(
	ctx context.Context,
	hubRepo adapter.HubRepository,
	employeeRepo adapter.EmployeeRepository,
	attendanceRepo adapter.AttendanceRepository,
	hubID uuid.UUID,
	month valueobject.MonthRange,
) ([]*entity.Employee, []*entity.AttendanceEntry, error) {
	if _, err := scope.RequireHub(ctx, hubRepo, hubID); err != nil {
		return nil, nil, err
	}
	return listMonth(ctx, employeeRepo, attendanceRepo, hubID, month)
}

func listMonth(
	ctx context.Context,
	employeeRepo adapter.EmployeeRepository,
	attendanceRepo adapter.AttendanceRepository,
	hubID uuid.UUID,
	month valueobject.MonthRange,
) ([]*entity.Employee, []*entity.AttendanceEntry, error) {
	employees, err := employeeRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list employees: %w", err)
	}
	entries, err := attendanceRepo.ListByHubAndRange(ctx, hubID, month.Start, month.End)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return employees, entries, nil
}

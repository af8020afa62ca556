// Package stats contains the dashboard counters use case.
package stats

import (
	"context"
	"fmt"

	"github.com/hubmanager/backend/internal/application/adapter"
)

// GetStatsOutput holds the global counters.
type GetStatsOutput struct {
	TotalHubs         int64
	TotalEmployees    int64
	TotalRecords      int64
	TotalUsers        int64
	PendingUsers      int64
	RecordsByCategory map[string]int64
}

// GetStatsUseCase computes the global counters.
type GetStatsUseCase struct {
	hubRepo      adapter.HubRepository
	employeeRepo adapter.EmployeeRepository
	recordRepo   adapter.RecordRepository
	userRepo     adapter.UserRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	hubRepo adapter.HubRepository,
	employeeRepo adapter.EmployeeRepository,
	recordRepo adapter.RecordRepository,
	userRepo adapter.UserRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		hubRepo:      hubRepo,
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
		userRepo:     userRepo,
	}
}

// Execute gathers the counters.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsOutput, error) {
	hubs, err := uc.hubRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count hubs: %w", err)
	}
	employees, err := uc.employeeRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	records, err := uc.recordRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	users, pending, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	byCategory, err := uc.recordRepo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records by category: %w", err)
	}

	return &GetStatsOutput{
		TotalHubs:         hubs,
		TotalEmployees:    employees,
		TotalRecords:      records,
		TotalUsers:        users,
		PendingUsers:      pending,
		RecordsByCategory: byCategory,
	}, nil
}

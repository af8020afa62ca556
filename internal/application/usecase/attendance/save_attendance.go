package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// EntryInput is one employee day of a bulk save.
type EntryInput struct {
	EmployeeID uuid.UUID
	Date       string
	Status     string
	ExtraHours float64
	Diet       int
}

// SaveAttendanceInput represents a bulk attendance save.
type SaveAttendanceInput struct {
	HubID   uuid.UUID
	Entries []EntryInput
}

// SaveAttendanceOutput reports how many entries were stored.
type SaveAttendanceOutput struct {
	Count int
}

// SaveAttendanceUseCase upserts a batch of attendance entries.
type SaveAttendanceUseCase struct {
	hubRepo        adapter.HubRepository
	employeeRepo   adapter.EmployeeRepository
	attendanceRepo adapter.AttendanceRepository
}

// NewSaveAttendanceUseCase creates a new SaveAttendanceUseCase instance.
func NewSaveAttendanceUseCase(
	hubRepo adapter.HubRepository,
	employeeRepo adapter.EmployeeRepository,
	attendanceRepo adapter.AttendanceRepository,
) *SaveAttendanceUseCase {
	return &SaveAttendanceUseCase{
		hubRepo:        hubRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Execute stores each entry independently. A rejected entry is logged and skipped,
// it never aborts the rest of the batch.
func (uc *SaveAttendanceUseCase) Execute(ctx context.Context, input SaveAttendanceInput) (*SaveAttendanceOutput, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	employees, err := uc.employeeRepo.ListByHub(ctx, input.HubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	known := make(map[uuid.UUID]struct{}, len(employees))
	for _, e := range employees {
		known[e.ID] = struct{}{}
	}

	count := 0
	for _, in := range input.Entries {
		if _, ok := known[in.EmployeeID]; !ok {
			slog.Warn("Skipping attendance of unknown employee", "hub_id", input.HubID, "employee_id", in.EmployeeID)
			continue
		}
		if err := valueobject.ValidateDate(in.Date); err != nil {
			slog.Warn("Skipping attendance with invalid date", "hub_id", input.HubID, "date", in.Date)
			continue
		}
		if in.ExtraHours < 0 {
			slog.Warn("Skipping attendance with negative extra hours", "hub_id", input.HubID, "date", in.Date)
			continue
		}

		entry := &entity.AttendanceEntry{
			EmployeeID: in.EmployeeID,
			HubID:      input.HubID,
			Date:       in.Date,
			Status:     entity.AttendanceStatus(strings.TrimSpace(in.Status)),
			ExtraHours: in.ExtraHours,
			Diet:       in.Diet,
		}
		if _, err := uc.attendanceRepo.Upsert(ctx, entry); err != nil {
			slog.Error("Failed to save attendance", "error", err, "hub_id", input.HubID, "employee_id", in.EmployeeID, "date", in.Date)
			continue
		}
		count++
	}

	return &SaveAttendanceOutput{Count: count}, nil
}

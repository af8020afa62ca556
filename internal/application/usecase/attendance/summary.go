package attendance

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// EmployeeSummary holds the monthly totals of one employee.
type EmployeeSummary struct {
	EmployeeID      uuid.UUID
	EmployeeName    string
	DaysWorked      int
	DaysRest        int
	DaysAbsent      int
	DaysSick        int
	DaysOther       int
	TotalExtraHours float64
	TotalDiets      int
}

// Summarize computes one row per employee, in the order employees are given.
// Entries of employees not in the list are ignored. Unknown status codes count in no bucket.
func Summarize(employees []*entity.Employee, entries []*entity.AttendanceEntry) []EmployeeSummary {
	byEmployee := make(map[uuid.UUID][]*entity.AttendanceEntry, len(employees))
	for _, entry := range entries {
		byEmployee[entry.EmployeeID] = append(byEmployee[entry.EmployeeID], entry)
	}

	out := make([]EmployeeSummary, 0, len(employees))
	for _, employee := range employees {
		row := EmployeeSummary{EmployeeID: employee.ID, EmployeeName: employee.Name}
		for _, entry := range byEmployee[employee.ID] {
			switch entry.Status {
			case entity.AttendanceWorked:
				row.DaysWorked++
			case entity.AttendanceRest:
				row.DaysRest++
			case entity.AttendanceAbsent:
				row.DaysAbsent++
			case entity.AttendanceSick:
				row.DaysSick++
			case entity.AttendanceOther:
				row.DaysOther++
			}
			row.TotalExtraHours += entry.ExtraHours
			if entry.HasDiet() {
				row.TotalDiets++
			}
		}
		out = append(out, row)
	}
	return out
}

// SummaryOutput represents the attendance summary of a month.
type SummaryOutput struct {
	Month   valueobject.MonthRange
	Summary []EmployeeSummary
}

// SummaryUseCase computes the monthly attendance summary of a hub.
type SummaryUseCase struct {
	hubRepo        adapter.HubRepository
	employeeRepo   adapter.EmployeeRepository
	attendanceRepo adapter.AttendanceRepository
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	hubRepo adapter.HubRepository,
	employeeRepo adapter.EmployeeRepository,
	attendanceRepo adapter.AttendanceRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		hubRepo:        hubRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Execute performs the aggregation.
func (uc *SummaryUseCase) Execute(ctx context.Context, input MonthInput) (*SummaryOutput, error) {
	month, err := valueobject.NewMonthRange(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	employees, entries, err := loadMonth(ctx, uc.hubRepo, uc.employeeRepo, uc.attendanceRepo, input.HubID, month)
	if err != nil {
		return nil, err
	}
	return &SummaryOutput{Month: month, Summary: Summarize(employees, entries)}, nil
}

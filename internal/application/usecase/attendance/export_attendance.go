package attendance

import (
	"context"
	"fmt"
	"strings"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// ExportOutput is a rendered attendance spreadsheet.
type ExportOutput struct {
	FileName string
	Content  []byte
}

// ExportUseCase renders the monthly attendance of a hub as a spreadsheet.
type ExportUseCase struct {
	hubRepo        adapter.HubRepository
	employeeRepo   adapter.EmployeeRepository
	attendanceRepo adapter.AttendanceRepository
	exporter       adapter.AttendanceExporter
}

// NewExportUseCase creates a new ExportUseCase instance.
func NewExportUseCase(
	hubRepo adapter.HubRepository,
	employeeRepo adapter.EmployeeRepository,
	attendanceRepo adapter.AttendanceRepository,
	exporter adapter.AttendanceExporter,
) *ExportUseCase {
	return &ExportUseCase{
		hubRepo:        hubRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		exporter:       exporter,
	}
}

// Execute builds the sheet and renders it.
func (uc *ExportUseCase) Execute(ctx context.Context, input MonthInput) (*ExportOutput, error) {
	month, err := valueobject.NewMonthRange(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	hub, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID)
	if err != nil {
		return nil, err
	}
	employees, entries, err := listMonth(ctx, uc.employeeRepo, uc.attendanceRepo, hub.ID, month)
	if err != nil {
		return nil, err
	}

	summary := Summarize(employees, entries)
	rows := make([]adapter.AttendanceSheetRow, len(summary))
	for i, s := range summary {
		rows[i] = adapter.AttendanceSheetRow{
			EmployeeName:    s.EmployeeName,
			DaysWorked:      s.DaysWorked,
			DaysRest:        s.DaysRest,
			DaysAbsent:      s.DaysAbsent,
			DaysSick:        s.DaysSick,
			DaysOther:       s.DaysOther,
			TotalExtraHours: s.TotalExtraHours,
			TotalDiets:      s.TotalDiets,
		}
	}

	content, err := uc.exporter.Export(adapter.AttendanceSheet{
		HubName:   hub.Name,
		Month:     month,
		Employees: employees,
		Entries:   entries,
		Summary:   rows,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export attendance: %w", err)
	}

	return &ExportOutput{
		FileName: fmt.Sprintf("asistencias_%s_%04d-%02d.xlsx", fileSafe(hub.Name), month.Year, month.Month),
		Content:  content,
	}, nil
}

func fileSafe(name string) string {
	folded := valueobject.FoldText(name)
	return strings.Join(strings.FieldsFunc(folded, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}), "_")
}

package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

func TestAttendanceExporter_Export(t *testing.T) {
	month, err := valueobject.NewMonthRange(2026, 2)
	require.NoError(t, err)

	hub := entity.NewHub("Hub Cadiz", "", "Cadiz")
	ana := entity.NewEmployee(hub.ID, "Ana", "Repartidora")
	luis := entity.NewEmployee(hub.ID, "Luis", "Mozo")

	sheet := adapter.AttendanceSheet{
		HubName:   hub.Name,
		Month:     month,
		Employees: []*entity.Employee{ana, luis},
		Entries: []*entity.AttendanceEntry{
			{EmployeeID: ana.ID, HubID: hub.ID, Date: "2026-02-02", Status: entity.AttendanceWorked, ExtraHours: 1.5},
			{EmployeeID: luis.ID, HubID: hub.ID, Date: "2026-02-28", Status: entity.AttendanceSick},
		},
		Summary: []adapter.AttendanceSheetRow{
			{EmployeeName: "Ana", DaysWorked: 1, TotalExtraHours: 1.5},
			{EmployeeName: "Luis", DaysSick: 1},
		},
	}

	content, err := NewAttendanceExporter().Export(sheet)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{gridSheet, summarySheet}, f.GetSheetList())

	title, _ := f.GetCellValue(gridSheet, "A1")
	assert.Equal(t, "Hub Cadiz - 2026/02", title)

	// February 2026 has 28 days: the last day column is AC.
	lastDay, _ := f.GetCellValue(gridSheet, "AC3")
	assert.Equal(t, "28", lastDay)

	anaDay2, _ := f.GetCellValue(gridSheet, "C4")
	assert.Equal(t, "1 +1.5h", anaDay2)
	luisDay28, _ := f.GetCellValue(gridSheet, "AC5")
	assert.Equal(t, "E", luisDay28)
	empty, _ := f.GetCellValue(gridSheet, "B4")
	assert.Empty(t, empty)

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Empleado", rows[0][0])
	assert.Equal(t, "Luis", rows[2][0])
	assert.Equal(t, "1", rows[2][4])
}

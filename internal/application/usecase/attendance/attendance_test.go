package attendance

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func TestSummarize(t *testing.T) {
	hubID := uuid.New()
	ana := entity.NewEmployee(hubID, "Ana", "Mozo")
	luis := entity.NewEmployee(hubID, "Luis", "Chófer")

	statuses := []entity.AttendanceStatus{"1", "1", "D", "IN", "E", "O", "X"}
	var entries []*entity.AttendanceEntry
	for i, status := range statuses {
		entries = append(entries, &entity.AttendanceEntry{
			EmployeeID: ana.ID,
			HubID:      hubID,
			Date:       "2026-03-0" + string(rune('1'+i)),
			Status:     status,
			ExtraHours: 1.5,
			Diet:       i % 2,
		})
	}
	entries = append(entries, &entity.AttendanceEntry{EmployeeID: uuid.New(), HubID: hubID, Date: "2026-03-01", Status: "1"})

	rows := Summarize([]*entity.Employee{ana, luis}, entries)
	require.Len(t, rows, 2)

	assert.Equal(t, EmployeeSummary{
		EmployeeID:      ana.ID,
		EmployeeName:    "Ana",
		DaysWorked:      2,
		DaysRest:        1,
		DaysAbsent:      1,
		DaysSick:        1,
		DaysOther:       1,
		TotalExtraHours: 10.5,
		TotalDiets:      3,
	}, rows[0])
	assert.Equal(t, EmployeeSummary{EmployeeID: luis.ID, EmployeeName: "Luis"}, rows[1])
}

type attendanceFixture struct {
	store *adaptertest.Store
	hub   *entity.Hub
	ana   *entity.Employee
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Madrid Central", "", "Madrid")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	ana := entity.NewEmployee(hub.ID, "Ana", "Mozo")
	require.NoError(t, store.Employees.Create(ctx, ana))
	return &attendanceFixture{store: store, hub: hub, ana: ana}
}

func TestSaveAttendance_SkipsInvalidEntries(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	uc := NewSaveAttendanceUseCase(f.store.Hubs, f.store.Employees, f.store.Attendance)

	out, err := uc.Execute(ctx, SaveAttendanceInput{
		HubID: f.hub.ID,
		Entries: []EntryInput{
			{EmployeeID: f.ana.ID, Date: "2026-03-02", Status: "1", ExtraHours: 2, Diet: 1},
			{EmployeeID: f.ana.ID, Date: "2026-03-02", Status: "D"},
			{EmployeeID: uuid.New(), Date: "2026-03-03", Status: "1"},
			{EmployeeID: f.ana.ID, Date: "03/03/2026", Status: "1"},
			{EmployeeID: f.ana.ID, Date: "2026-03-04", Status: "1", ExtraHours: -1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)

	list, err := NewListAttendanceUseCase(f.store.Hubs, f.store.Employees, f.store.Attendance).
		Execute(ctx, MonthInput{HubID: f.hub.ID, Year: 2026, Month: 3})
	require.NoError(t, err)
	require.Len(t, list.Entries, 1, "the second save of the same day replaces the first")
	entry := list.Entries[EntryKey(f.ana.ID, "2026-03-02")]
	require.NotNil(t, entry)
	assert.Equal(t, entity.AttendanceRest, entry.Status)
	assert.Equal(t, 31, list.Month.Days())
}

func TestSummaryUseCase_UnknownHub(t *testing.T) {
	f := newAttendanceFixture(t)
	uc := NewSummaryUseCase(f.store.Hubs, f.store.Employees, f.store.Attendance)

	_, err := uc.Execute(context.Background(), MonthInput{HubID: uuid.New(), Year: 2026, Month: 3})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
}

func TestSummaryUseCase_InvalidMonth(t *testing.T) {
	f := newAttendanceFixture(t)
	uc := NewSummaryUseCase(f.store.Hubs, f.store.Employees, f.store.Attendance)

	_, err := uc.Execute(context.Background(), MonthInput{HubID: f.hub.ID, Year: 2026, Month: 13})
	assert.Error(t, err)
}

func TestExportUseCase(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	_, err := f.store.Attendance.Upsert(ctx, &entity.AttendanceEntry{EmployeeID: f.ana.ID, HubID: f.hub.ID, Date: "2026-03-02", Status: "1"})
	require.NoError(t, err)

	exporter := &adaptertest.AttendanceExporter{}
	uc := NewExportUseCase(f.store.Hubs, f.store.Employees, f.store.Attendance, exporter)

	out, err := uc.Execute(ctx, MonthInput{HubID: f.hub.ID, Year: 2026, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, "asistencias_hub_madrid_central_2026-03.xlsx", out.FileName)
	assert.Equal(t, []byte("xlsx"), out.Content)

	require.NotNil(t, exporter.Last)
	require.Len(t, exporter.Last.Summary, 1)
	assert.Equal(t, 1, exporter.Last.Summary[0].DaysWorked)
}

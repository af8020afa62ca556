package incident

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		{"15/03/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{" 2026-03-15 ", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"15-03-2026", time.Time{}, true},
		{"31/02/2026", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseDate(tt.value, "rec-1")
			if tt.wantErr {
				var parseErr *domainerror.DateParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, "rec-1", parseErr.RecordID)
				assert.Equal(t, tt.value, parseErr.Value)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestSummarize(t *testing.T) {
	hubID := uuid.New()
	van := entity.NewVehicle(hubID, "1234abc", "Furgoneta")
	moto := entity.NewVehicle(hubID, "5678DEF", "Moto")
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	incidents := []*entity.Incident{
		entity.NewIncident(hubID, van.ID, "Rueda", "", "05/03/2026", decimal.RequireFromString("100.50"), 0),
		entity.NewIncident(hubID, van.ID, "Espejo", "", "2026-01-10", decimal.NewFromInt(40), 0),
		entity.NewIncident(hubID, van.ID, "ITV", "", "2025-03-10", decimal.NewFromInt(999), 0),
		entity.NewIncident(hubID, van.ID, "Golpe", "", "ayer", decimal.NewFromInt(70), 0),
		entity.NewIncident(hubID, uuid.New(), "Otro", "", "2026-03-01", decimal.NewFromInt(5), 0),
	}

	costs, skipped := Summarize([]*entity.Vehicle{van, moto}, incidents, now)
	require.Len(t, costs, 2)

	assert.Equal(t, "1234ABC", costs[0].Plate)
	assert.True(t, costs[0].TotalCostMonth.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, costs[0].TotalCostYear.Equal(decimal.RequireFromString("140.50")))
	assert.Equal(t, 4, costs[0].IncidentsCount)

	assert.True(t, costs[1].TotalCostMonth.IsZero())
	assert.Equal(t, 0, costs[1].IncidentsCount)

	require.Len(t, skipped, 1)
	assert.Equal(t, "ayer", skipped[0].Value)
}

func TestCreateIncident(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Cartagena", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	van := entity.NewVehicle(hub.ID, "1234ABC", "Furgoneta")
	require.NoError(t, store.Vehicles.Create(ctx, van))

	uc := NewCreateIncidentUseCase(store.Vehicles, store.Incidents)

	created, err := uc.Execute(ctx, CreateIncidentInput{HubID: hub.ID, VehicleID: van.ID, Title: "Rueda", Date: "05/03/2026", Cost: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.Equal(t, van.ID, created.VehicleID)

	_, err = uc.Execute(ctx, CreateIncidentInput{HubID: hub.ID, VehicleID: van.ID, Title: "Rueda", Date: "ayer"})
	assert.True(t, domainerror.IsKind(err, domainerror.KindInvalidDate))

	_, err = uc.Execute(ctx, CreateIncidentInput{HubID: hub.ID, VehicleID: uuid.New(), Title: "Rueda", Date: "2026-03-05"})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))

	_, err = uc.Execute(ctx, CreateIncidentInput{HubID: hub.ID, VehicleID: van.ID, Title: "Rueda", Date: "2026-03-05", Cost: decimal.NewFromInt(-1)})
	assert.True(t, domainerror.IsKind(err, domainerror.KindInvalidInput))

	summary, err := NewSummaryUseCase(store.Hubs, store.Vehicles, store.Incidents, func() time.Time {
		return time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	}).Execute(ctx, hub.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Month)
	require.Len(t, summary.Vehicles, 1)
	assert.True(t, summary.Vehicles[0].TotalCostMonth.Equal(decimal.NewFromInt(10)))
}

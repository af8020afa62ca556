package stats

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()

	hub := entity.NewHub("Hub Madrid", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	require.NoError(t, store.Employees.Create(ctx, entity.NewEmployee(hub.ID, "Ana", "")))
	require.NoError(t, store.Records.Create(ctx, entity.NewRecord(hub.ID, "Flota", "A", "", nil, uuid.Nil)))
	require.NoError(t, store.Records.Create(ctx, entity.NewRecord(hub.ID, "Flota", "B", "", nil, uuid.Nil)))
	require.NoError(t, store.Records.Create(ctx, entity.NewRecord(hub.ID, "Compras", "C", "", nil, uuid.Nil)))
	require.NoError(t, store.Users.Create(ctx, entity.NewAdminUser("admin@hub.es", "Admin", "")))
	require.NoError(t, store.Users.Create(ctx, entity.NewUser("ana@hub.es", "Ana", "")))

	out, err := NewGetStatsUseCase(store.Hubs, store.Employees, store.Records, store.Users).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, &GetStatsOutput{
		TotalHubs:         1,
		TotalEmployees:    1,
		TotalRecords:      3,
		TotalUsers:        2,
		PendingUsers:      1,
		RecordsByCategory: map[string]int64{"Flota": 2, "Compras": 1},
	}, out)
}

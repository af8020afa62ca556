package kiloslitros

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
	r1 := entity.NewRoute(hubID, "R1")
	r2 := entity.NewRoute(hubID, "R2")

	entries := []*entity.KilosLitrosEntry{
		entity.NewKilosLitrosEntry(hubID, r1.ID, "2026-03-01", "Juan", 10, 5, 2, 3),
		entity.NewKilosLitrosEntry(hubID, r1.ID, "2026-03-02", "JUAN", 20, 8, 1, 4),
		entity.NewKilosLitrosEntry(hubID, r1.ID, "2026-03-03", "", 0, 0, 0, 1),
	}

	summary := Summarize([]*entity.Route{r1, r2}, entries)

	assert.Equal(t, Measures{Clientes: 30, Kilos: 13, Litros: 3, Bultos: 8}, summary.Totals)

	require.Len(t, summary.ByRepartidor, 1, "entries without repartidor are left out of the breakdown")
	assert.Equal(t, "juan", summary.ByRepartidor[0].Repartidor)
	assert.Equal(t, 30, summary.ByRepartidor[0].Clientes)

	require.Len(t, summary.ByRoute, 2)
	assert.Equal(t, "R1", summary.ByRoute[0].RouteName)
	assert.Equal(t, 8, summary.ByRoute[0].Bultos)
	assert.Equal(t, RouteMeasures{RouteID: r2.ID, RouteName: "R2"}, summary.ByRoute[1])
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, nil)
	assert.Equal(t, Measures{}, summary.Totals)
	assert.NotNil(t, summary.ByRepartidor)
	assert.Empty(t, summary.ByRoute)
}

func TestUpsert_RejectsNegativeMeasures(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Córdoba", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	route := entity.NewRoute(hub.ID, "R1")
	require.NoError(t, store.Routes.Create(ctx, route))

	uc := NewUpsertUseCase(store.Hubs, store.Routes, store.KilosLitros)
	_, err := uc.Execute(ctx, UpsertInput{HubID: hub.ID, Entry: EntryInput{RouteID: route.ID, Date: "2026-03-01", Kilos: -1}})

	domainErr, ok := domainerror.As(err)
	require.True(t, ok)
	assert.Equal(t, domainerror.ErrCodeNegativeMeasure, domainErr.Code)
}

func TestBulkUpsert_KeyIncludesRepartidor(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Córdoba", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	route := entity.NewRoute(hub.ID, "R1")
	require.NoError(t, store.Routes.Create(ctx, route))

	bulk := NewBulkUpsertUseCase(NewUpsertUseCase(store.Hubs, store.Routes, store.KilosLitros))
	out, err := bulk.Execute(ctx, BulkUpsertInput{
		HubID: hub.ID,
		Entries: []EntryInput{
			{RouteID: route.ID, Date: "2026-03-01", Repartidor: "Juan", Clientes: 1},
			{RouteID: route.ID, Date: "2026-03-01", Repartidor: "Pedro", Clientes: 2},
			{RouteID: route.ID, Date: "2026-03-01", Repartidor: "juan", Clientes: 5},
			{RouteID: route.ID, Date: "2026-03-01", Repartidor: "Ana", Clientes: -1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count)

	summary, err := NewSummaryUseCase(store.Hubs, store.Routes, store.KilosLitros).
		Execute(ctx, MonthInput{HubID: hub.ID, Year: 2026, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Totals.Clientes)
}

package liquidation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEstado(t *testing.T) {
	assert.Equal(t, "debe depositar 12.50 €", Estado(dec("12.5")))
	assert.Equal(t, "a favor 3.00 €", Estado(dec("-3")))
	assert.Equal(t, "sin descuadre", Estado(decimal.Zero))
}

func TestSummarize(t *testing.T) {
	hubID := uuid.New()
	r1 := entity.NewRoute(hubID, "R1")
	r2 := entity.NewRoute(hubID, "R2")
	empty := entity.NewRoute(hubID, "R3")

	entries := []*entity.LiquidationEntry{
		entity.NewLiquidationEntry(hubID, r1.ID, "2026-03-01", "Juan ", dec("100"), dec("90"), ""),
		entity.NewLiquidationEntry(hubID, r1.ID, "2026-03-02", "juan", dec("50"), dec("50"), ""),
		entity.NewLiquidationEntry(hubID, r2.ID, "2026-03-01", "Pedro", dec("20"), dec("25.5"), ""),
		entity.NewLiquidationEntry(hubID, r2.ID, "2026-03-02", "Ana", dec("10"), dec("10"), ""),
	}

	summary := Summarize([]*entity.Route{r1, r2, empty}, entries)

	require.Len(t, summary.ByRepartidor, 3)
	assert.Equal(t, "ana", summary.ByRepartidor[0].Repartidor)
	assert.Equal(t, "sin descuadre", summary.ByRepartidor[0].Estado)
	assert.Empty(t, summary.ByRepartidor[0].Diferencias)

	juan := summary.ByRepartidor[1]
	assert.Equal(t, "juan", juan.Repartidor)
	assert.True(t, juan.Total.Equal(dec("10")))
	assert.Equal(t, "debe depositar 10.00 €", juan.Estado)
	require.Len(t, juan.Diferencias, 1)
	assert.Equal(t, "R1", juan.Diferencias[0].RouteName)

	pedro := summary.ByRepartidor[2]
	assert.Equal(t, "a favor 5.50 €", pedro.Estado)

	require.Len(t, summary.ByRoute, 2, "routes without entries are omitted")
	assert.Equal(t, r1.ID, summary.ByRoute[0].RouteID)
	assert.True(t, summary.ByRoute[0].TotalMetalico.Equal(dec("150")))
	assert.True(t, summary.ByRoute[0].Descuadre.Equal(dec("10")))
	assert.True(t, summary.ByRoute[1].Descuadre.Equal(dec("-5.5")))
	assert.Len(t, summary.ByRoute[1].DescuadresDetectados, 1)

	repartidorSum, routeSum := decimal.Zero, decimal.Zero
	for _, r := range summary.ByRepartidor {
		repartidorSum = repartidorSum.Add(r.Total)
	}
	for _, r := range summary.ByRoute {
		routeSum = routeSum.Add(r.Descuadre)
	}
	assert.True(t, repartidorSum.Equal(routeSum), "both groupings must add up to the same balance")
}

type liquidationFixture struct {
	store *adaptertest.Store
	hub   *entity.Hub
	route *entity.Route
}

func newLiquidationFixture(t *testing.T) *liquidationFixture {
	t.Helper()
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Cádiz", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	route := entity.NewRoute(hub.ID, "Ruta 1")
	require.NoError(t, store.Routes.Create(ctx, route))
	return &liquidationFixture{store: store, hub: hub, route: route}
}

func TestUpsert_ReplacesSameRouteAndDate(t *testing.T) {
	f := newLiquidationFixture(t)
	ctx := context.Background()
	uc := NewUpsertUseCase(f.store.Hubs, f.store.Routes, f.store.Liquidations)

	_, err := uc.Execute(ctx, UpsertInput{HubID: f.hub.ID, Entry: EntryInput{RouteID: f.route.ID, Date: "2026-03-01", Repartidor: "Juan", Metalico: dec("10"), Ingreso: dec("10")}})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, UpsertInput{HubID: f.hub.ID, Entry: EntryInput{RouteID: f.route.ID, Date: "2026-03-01", Repartidor: "Juan", Metalico: dec("30"), Ingreso: dec("10")}})
	require.NoError(t, err)

	list, err := NewListUseCase(f.store.Hubs, f.store.Liquidations).Execute(ctx, MonthInput{HubID: f.hub.ID, Year: 2026, Month: 3})
	require.NoError(t, err)
	require.Len(t, list.Entries, 1)
	assert.True(t, list.Entries[0].Diferencia().Equal(dec("20")))
}

func TestUpsert_Errors(t *testing.T) {
	f := newLiquidationFixture(t)
	uc := NewUpsertUseCase(f.store.Hubs, f.store.Routes, f.store.Liquidations)

	_, err := uc.Execute(context.Background(), UpsertInput{HubID: f.hub.ID, Entry: EntryInput{RouteID: uuid.New(), Date: "2026-03-01"}})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))

	_, err = uc.Execute(context.Background(), UpsertInput{HubID: f.hub.ID, Entry: EntryInput{RouteID: f.route.ID, Date: "2026/03/01"}})
	assert.Error(t, err)
}

func TestBulkUpsert_CountsOnlyStoredEntries(t *testing.T) {
	f := newLiquidationFixture(t)
	bulk := NewBulkUpsertUseCase(NewUpsertUseCase(f.store.Hubs, f.store.Routes, f.store.Liquidations))

	out, err := bulk.Execute(context.Background(), BulkUpsertInput{
		HubID: f.hub.ID,
		Entries: []EntryInput{
			{RouteID: f.route.ID, Date: "2026-03-01", Metalico: dec("1")},
			{RouteID: f.route.ID, Date: "2026-03-02", Metalico: dec("2")},
			{RouteID: uuid.New(), Date: "2026-03-03"},
			{RouteID: f.route.ID, Date: "bad"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
}

func TestDelete_NotFound(t *testing.T) {
	f := newLiquidationFixture(t)
	err := NewDeleteUseCase(f.store.Liquidations).Execute(context.Background(), f.hub.ID, uuid.New())
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
}

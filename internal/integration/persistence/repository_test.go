package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createHubWithRoute(t *testing.T, db *gorm.DB) (*entity.Hub, *entity.Route) {
	t.Helper()
	ctx := context.Background()
	hub := entity.NewHub("Hub Puerta Toledo", "Madrid centro", "Madrid")
	require.NoError(t, NewHubRepository(db).Create(ctx, hub))
	route := entity.NewRoute(hub.ID, "Ruta 1")
	require.NoError(t, NewRouteRepository(db).Create(ctx, route))
	return hub, route
}

func TestLiquidationRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hub, route := createHubWithRoute(t, db)
	repo := NewLiquidationRepository(db)

	first := entity.NewLiquidationEntry(hub.ID, route.ID, "2026-03-10", "Juan", decimal.NewFromInt(100), decimal.NewFromInt(90), "")
	stored, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	assert.True(t, stored.Metalico.Equal(decimal.NewFromInt(100)))

	second := entity.NewLiquidationEntry(hub.ID, route.ID, "2026-03-10", "JUAN", decimal.NewFromInt(150), decimal.NewFromInt(90), "corregido")
	stored, err = repo.Upsert(ctx, second)
	require.NoError(t, err)

	entries, err := repo.ListByHubAndRange(ctx, hub.ID, "2026-03-01", "2026-03-31", nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.True(t, entries[0].Metalico.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "juan", entries[0].Repartidor)
	assert.Equal(t, "corregido", entries[0].Comentario)
	assert.Equal(t, stored.ID, entries[0].ID)

	var row model.LiquidationModel
	require.NoError(t, db.First(&row, "id = ?", first.ID).Error)
	assert.True(t, row.Diferencia.Equal(decimal.NewFromInt(60)))
}

func TestAttendanceRepository_UpsertReplacesSameDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hub, _ := createHubWithRoute(t, db)
	employee := entity.NewEmployee(hub.ID, "Ana", "Mozo")
	require.NoError(t, NewEmployeeRepository(db).Create(ctx, employee))
	repo := NewAttendanceRepository(db)

	_, err := repo.Upsert(ctx, &entity.AttendanceEntry{EmployeeID: employee.ID, HubID: hub.ID, Date: "2026-03-02", Status: entity.AttendanceWorked})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &entity.AttendanceEntry{EmployeeID: employee.ID, HubID: hub.ID, Date: "2026-03-02", Status: entity.AttendanceSick, ExtraHours: 1.5, Diet: 1})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &entity.AttendanceEntry{EmployeeID: employee.ID, HubID: hub.ID, Date: "2026-04-01", Status: entity.AttendanceWorked})
	require.NoError(t, err)

	entries, err := repo.ListByHubAndRange(ctx, hub.ID, "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AttendanceSick, entries[0].Status)
	assert.Equal(t, 1.5, entries[0].ExtraHours)
	assert.Equal(t, 1, entries[0].Diet)
}

func TestKilosLitrosRepository_UpsertKeyIncludesRepartidor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hub, route := createHubWithRoute(t, db)
	repo := NewKilosLitrosRepository(db)

	_, err := repo.Upsert(ctx, entity.NewKilosLitrosEntry(hub.ID, route.ID, "2026-03-10", "Juan", 5, 10, 5, 2))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, entity.NewKilosLitrosEntry(hub.ID, route.ID, "2026-03-10", "Pedro", 3, 20, 8, 1))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, entity.NewKilosLitrosEntry(hub.ID, route.ID, "2026-03-10", "juan", 6, 12, 5, 2))
	require.NoError(t, err)

	entries, err := repo.ListByHubAndRange(ctx, hub.ID, "2026-03-01", "2026-03-31", &route.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "juan", entries[0].Repartidor)
	assert.Equal(t, 12.0, entries[0].Kilos)
}

func TestHubRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hub, route := createHubWithRoute(t, db)
	other, _ := createHubWithRoute(t, db)

	vehicle := entity.NewVehicle(hub.ID, "1234abc", "Moto")
	require.NoError(t, NewVehicleRepository(db).Create(ctx, vehicle))
	require.NoError(t, NewIncidentRepository(db).Create(ctx, entity.NewIncident(hub.ID, vehicle.ID, "Rueda", "", "2026-01-10", decimal.NewFromInt(50), 1000)))
	_, err := NewLiquidationRepository(db).Upsert(ctx, entity.NewLiquidationEntry(hub.ID, route.ID, "2026-03-10", "juan", decimal.NewFromInt(1), decimal.Zero, ""))
	require.NoError(t, err)

	require.NoError(t, NewHubRepository(db).Delete(ctx, hub.ID))

	for _, table := range []interface{}{&model.VehicleModel{}, &model.IncidentModel{}, &model.LiquidationModel{}, &model.RouteModel{}} {
		var count int64
		require.NoError(t, db.Model(table).Where("hub_id = ?", hub.ID).Count(&count).Error)
		assert.Zero(t, count, "%T", table)
	}

	routes, err := NewRouteRepository(db).ListByHub(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, routes, 1)

	err = NewHubRepository(db).Delete(ctx, hub.ID)
	assert.ErrorIs(t, err, domainerror.ErrHubNotFound)
}

func TestScopedLookupsRejectOtherHubs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hub, route := createHubWithRoute(t, db)
	other, _ := createHubWithRoute(t, db)

	_, err := NewRouteRepository(db).FindByID(ctx, other.ID, route.ID)
	assert.ErrorIs(t, err, domainerror.ErrRouteNotFound)

	found, err := NewRouteRepository(db).FindByID(ctx, hub.ID, route.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ruta 1", found.Name)

	exists, err := NewRouteRepository(db).ExistsByName(ctx, hub.ID, "Ruta 1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVehicleRepository_ExistsByPlate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hub, _ := createHubWithRoute(t, db)
	repo := NewVehicleRepository(db)

	vehicle := entity.NewVehicle(hub.ID, " 1234abc ", "Furgoneta")
	require.NoError(t, repo.Create(ctx, vehicle))
	assert.Equal(t, "1234ABC", vehicle.Plate)

	exists, err := repo.ExistsByPlate(ctx, "1234ABC", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPlate(ctx, "1234ABC", &vehicle.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRecordRepository_FiltersAndCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	hub, _ := createHubWithRoute(t, db)
	repo := NewRecordRepository(db)
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, entity.NewRecord(hub.ID, "Flota", "ITV", "", map[string]interface{}{"km": 1200.0}, userID)))
	require.NoError(t, repo.Create(ctx, entity.NewRecord(hub.ID, "Flota", "Seguro", "", nil, userID)))
	require.NoError(t, repo.Create(ctx, entity.NewRecord(uuid.New(), "Compras", "Palets", "", nil, userID)))

	records, err := repo.List(ctx, adapter.RecordFilter{HubID: &hub.ID, Category: "Flota"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	counts, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["Flota"])
	assert.Equal(t, int64(1), counts["Compras"])
}

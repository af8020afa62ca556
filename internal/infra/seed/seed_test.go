package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
)

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	seeder := NewSeeder(store.Users, store.Hubs, store.Restrictions, adaptertest.PasswordHasher{})
	cfg := config.SeedConfig{AdminEmail: "Admin@Admin.com", AdminPassword: "secret1", AdminName: "Administrador"}

	require.NoError(t, seeder.Run(ctx, cfg))
	// A second run must not duplicate anything.
	require.NoError(t, seeder.Run(ctx, cfg))

	admin, err := store.Users.FindByEmail(ctx, "admin@admin.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.IsApproved)
	assert.Equal(t, "hashed:secret1", admin.PasswordHash)

	hubs, err := store.Hubs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hubs, len(DefaultHubs))

	for _, hub := range hubs {
		restrictions, err := store.Restrictions.ListByHub(ctx, hub.ID)
		require.NoError(t, err)
		if hub.Location == "Madrid" {
			require.Len(t, restrictions, 1, hub.Name)
			assert.Equal(t, "Madrid Central", restrictions[0].Zona)
			assert.Equal(t, entity.AplicaVehiculosCombustible, restrictions[0].AplicaA)
		} else {
			assert.Empty(t, restrictions, hub.Name)
		}
	}
}

func TestSeeder_KeepsExistingRestrictions(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Puerta Toledo", "", "Madrid")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	own := entity.NewTimeRestriction(hub.ID, "ZBE Centro", "8:00 - 20:00", "L-S", entity.AplicaTodos, "")
	require.NoError(t, store.Restrictions.Create(ctx, own))

	seeder := NewSeeder(store.Users, store.Hubs, store.Restrictions, adaptertest.PasswordHasher{})
	require.NoError(t, seeder.Run(ctx, config.SeedConfig{AdminEmail: "admin@admin.com", AdminPassword: "admin123"}))

	restrictions, err := store.Restrictions.ListByHub(ctx, hub.ID)
	require.NoError(t, err)
	require.Len(t, restrictions, 1)
	assert.Equal(t, "ZBE Centro", restrictions[0].Zona)
}

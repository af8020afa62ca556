package hub

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

func strPtr(s string) *string { return &s }

func TestCreateHub_RequiresName(t *testing.T) {
	store := adaptertest.NewStore()
	_, err := NewCreateHubUseCase(store.Hubs).Execute(context.Background(), CreateHubInput{Name: "  "})

	domainErr, ok := domainerror.As(err)
	require.True(t, ok)
	assert.Equal(t, domainerror.ErrCodeMissingHubName, domainErr.Code)
}

func TestUpdateHub(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	created, err := NewCreateHubUseCase(store.Hubs).Execute(ctx, CreateHubInput{Name: "Hub Cáceres", Location: "Cáceres"})
	require.NoError(t, err)

	uc := NewUpdateHubUseCase(store.Hubs)

	t.Run("empty payload", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateHubInput{HubID: created.ID})
		domainErr, ok := domainerror.As(err)
		require.True(t, ok)
		assert.Equal(t, domainerror.ErrCodeEmptyUpdate, domainErr.Code)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := uc.Execute(ctx, UpdateHubInput{HubID: created.ID, Description: strPtr("Centro norte")})
		require.NoError(t, err)
		assert.Equal(t, "Hub Cáceres", updated.Name)
		assert.Equal(t, "Centro norte", updated.Description)
	})

	t.Run("unknown hub", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateHubInput{HubID: uuid.New(), Name: strPtr("X")})
		assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
	})
}

func TestDeleteHub_Cascades(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Cádiz", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	require.NoError(t, store.Employees.Create(ctx, entity.NewEmployee(hub.ID, "Ana", "")))

	uc := NewDeleteHubUseCase(store.Hubs)
	require.NoError(t, uc.Execute(ctx, hub.ID))

	employees, err := store.Employees.ListByHub(ctx, hub.ID)
	require.NoError(t, err)
	assert.Empty(t, employees)

	assert.True(t, domainerror.IsKind(uc.Execute(ctx, hub.ID), domainerror.KindNotFound))
}

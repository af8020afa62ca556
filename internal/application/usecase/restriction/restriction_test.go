package restriction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func TestCreateRestriction(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Madrid", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	uc := NewCreateUseCase(store.Hubs, store.Restrictions)

	created, err := uc.Execute(ctx, CreateInput{HubID: hub.ID, Zona: "Madrid Central", Horario: "07:00-21:00", Dias: "L-V"})
	require.NoError(t, err)
	assert.Equal(t, entity.AplicaTodos, created.AplicaA)

	_, err = uc.Execute(ctx, CreateInput{HubID: hub.ID, Zona: "ZBE", AplicaA: "camiones"})
	domainErr, ok := domainerror.As(err)
	require.True(t, ok)
	assert.Equal(t, domainerror.ErrCodeInvalidAplicaA, domainErr.Code)

	_, err = uc.Execute(ctx, CreateInput{HubID: hub.ID})
	domainErr, ok = domainerror.As(err)
	require.True(t, ok)
	assert.Equal(t, domainerror.ErrCodeMissingZona, domainErr.Code)

	listed, err := NewListUseCase(store.Hubs, store.Restrictions).Execute(ctx, hub.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

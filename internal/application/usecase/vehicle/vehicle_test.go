package vehicle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

func TestCreateVehicle(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	madrid := entity.NewHub("Hub Madrid", "", "")
	cadiz := entity.NewHub("Hub Cádiz", "", "")
	require.NoError(t, store.Hubs.Create(ctx, madrid))
	require.NoError(t, store.Hubs.Create(ctx, cadiz))

	uc := NewCreateVehicleUseCase(store.Hubs, store.Vehicles, valueobject.DefaultCatalog())

	created, err := uc.Execute(ctx, CreateVehicleInput{HubID: madrid.ID, Plate: " 1234abc ", VehicleType: "Furgoneta"})
	require.NoError(t, err)
	assert.Equal(t, "1234ABC", created.Plate)

	tests := []struct {
		name  string
		input CreateVehicleInput
		code  domainerror.ErrorCode
	}{
		{"plate taken in another hub", CreateVehicleInput{HubID: cadiz.ID, Plate: "1234ABC", VehicleType: "Moto"}, domainerror.ErrCodePlateExists},
		{"unknown type", CreateVehicleInput{HubID: cadiz.ID, Plate: "9999ZZZ", VehicleType: "Avión"}, domainerror.ErrCodeInvalidVehicleType},
		{"missing plate", CreateVehicleInput{HubID: cadiz.ID, VehicleType: "Moto"}, domainerror.ErrCodeMissingPlate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			domainErr, ok := domainerror.As(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}

func TestUpdateVehicle_SamePlateIsNotAConflict(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	hub := entity.NewHub("Hub Madrid", "", "")
	require.NoError(t, store.Hubs.Create(ctx, hub))
	van := entity.NewVehicle(hub.ID, "1234ABC", "Furgoneta")
	other := entity.NewVehicle(hub.ID, "5678DEF", "Moto")
	require.NoError(t, store.Vehicles.Create(ctx, van))
	require.NoError(t, store.Vehicles.Create(ctx, other))

	uc := NewUpdateVehicleUseCase(store.Vehicles, valueobject.DefaultCatalog())
	plate := "1234abc"
	_, err := uc.Execute(ctx, UpdateVehicleInput{HubID: hub.ID, VehicleID: van.ID, Plate: &plate})
	require.NoError(t, err)

	taken := "5678def"
	_, err = uc.Execute(ctx, UpdateVehicleInput{HubID: hub.ID, VehicleID: van.ID, Plate: &taken})
	assert.True(t, domainerror.IsKind(err, domainerror.KindConflict))
}

package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/domain/valueobject"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, registerOn(v, valueobject.DefaultCatalog()))
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		value interface{}
		valid bool
	}{
		{"vehicle type in catalog", CreateVehicleRequest{Plate: "1234ABC", VehicleType: "Furgoneta"}, true},
		{"vehicle type unknown", CreateVehicleRequest{Plate: "1234ABC", VehicleType: "Avión"}, false},
		{"incident date european", CreateIncidentRequest{VehicleID: "6b0f7e1c-3a44-4c3e-9d57-2f0e6f1f2a10", Title: "Rueda", Date: "05/03/2026"}, true},
		{"incident date iso", CreateIncidentRequest{VehicleID: "6b0f7e1c-3a44-4c3e-9d57-2f0e6f1f2a10", Title: "Rueda", Date: "2026-03-05"}, true},
		{"incident date free text", CreateIncidentRequest{VehicleID: "6b0f7e1c-3a44-4c3e-9d57-2f0e6f1f2a10", Title: "Rueda", Date: "ayer"}, false},
		{"liquidation iso date", LiquidationRequest{RouteID: "6b0f7e1c-3a44-4c3e-9d57-2f0e6f1f2a10", Date: "2026-03-05"}, true},
		{"liquidation european date", LiquidationRequest{RouteID: "6b0f7e1c-3a44-4c3e-9d57-2f0e6f1f2a10", Date: "05/03/2026"}, false},
		{"aplica_a omitted", RestrictionRequest{Zona: "Madrid Central"}, true},
		{"aplica_a known", RestrictionRequest{Zona: "Madrid Central", AplicaA: "vehiculos_0"}, true},
		{"aplica_a unknown", RestrictionRequest{Zona: "Madrid Central", AplicaA: "camiones"}, false},
		{"holiday type known", HolidayRequest{Date: "2026-05-15", Name: "San Isidro", Type: "local"}, true},
		{"holiday type unknown", HolidayRequest{Date: "2026-05-15", Name: "San Isidro", Type: "religioso"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

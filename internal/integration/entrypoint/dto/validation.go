package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hubmanager/backend/internal/application/usecase/incident"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// RegisterValidators installs the custom binding tags on gin's validator engine:
// ymd, incident_date, vehicle_type, aplica_a and holiday_type.
func RegisterValidators(catalog *valueobject.Catalog) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerOn(v, catalog)
}

func registerOn(v *validator.Validate, catalog *valueobject.Catalog) error {
	rules := map[string]validator.Func{
		"ymd": func(fl validator.FieldLevel) bool {
			return valueobject.ValidateDate(fl.Field().String()) == nil
		},
		"incident_date": func(fl validator.FieldLevel) bool {
			_, err := incident.ParseDate(fl.Field().String(), "")
			return err == nil
		},
		"vehicle_type": func(fl validator.FieldLevel) bool {
			return catalog.IsVehicleType(fl.Field().String())
		},
		"aplica_a": func(fl validator.FieldLevel) bool {
			return entity.AplicaA(fl.Field().String()).IsValid()
		},
		"holiday_type": func(fl validator.FieldLevel) bool {
			return entity.HolidayType(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

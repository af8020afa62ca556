package entity

import (
	"time"

	"github.com/google/uuid"
)

// HolidayType classifies a holiday by the administration that declares it.
type HolidayType string

const (
	HolidayNacional   HolidayType = "nacional"
	HolidayAutonomico HolidayType = "autonomico"
	HolidayLocal      HolidayType = "local"
)

// IsValid reports whether t is a known holiday type.
func (t HolidayType) IsValid() bool {
	switch t {
	case HolidayNacional, HolidayAutonomico, HolidayLocal:
		return true
	}
	return false
}

// Holiday is a custom, hub specific holiday. Dates are unique within a hub.
type Holiday struct {
	ID        uuid.UUID
	HubID     uuid.UUID
	Date      string
	Name      string
	Type      HolidayType
	CreatedAt time.Time
}

// NewHoliday creates a new custom Holiday.
func NewHoliday(hubID uuid.UUID, date, name string, holidayType HolidayType) *Holiday {
	return &Holiday{
		ID:        uuid.New(),
		HubID:     hubID,
		Date:      date,
		Name:      name,
		Type:      holidayType,
		CreatedAt: time.Now().UTC(),
	}
}

// AplicaA is the vehicle class a time restriction applies to.
type AplicaA string

const (
	AplicaVehiculosCero        AplicaA = "vehiculos_0"
	AplicaVehiculosCombustible AplicaA = "vehiculos_combustible"
	AplicaTodos                AplicaA = "todos"
)

// IsValid reports whether a is a known vehicle class.
func (a AplicaA) IsValid() bool {
	switch a {
	case AplicaVehiculosCero, AplicaVehiculosCombustible, AplicaTodos:
		return true
	}
	return false
}

// TimeRestriction describes a low emission zone access window for a hub.
// Horario and Dias are free text.
type TimeRestriction struct {
	ID        uuid.UUID
	HubID     uuid.UUID
	Zona      string
	Horario   string
	Dias      string
	AplicaA   AplicaA
	Notas     string
	CreatedAt time.Time
}

// NewTimeRestriction creates a new TimeRestriction.
func NewTimeRestriction(hubID uuid.UUID, zona, horario, dias string, aplicaA AplicaA, notas string) *TimeRestriction {
	return &TimeRestriction{
		ID:        uuid.New(),
		HubID:     hubID,
		Zona:      zona,
		Horario:   horario,
		Dias:      dias,
		AplicaA:   aplicaA,
		Notas:     notas,
		CreatedAt: time.Now().UTC(),
	}
}

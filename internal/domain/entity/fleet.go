package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehicle represents a hub vehicle. Plates are stored upper-cased and are globally unique.
type Vehicle struct {
	ID          uuid.UUID
	HubID       uuid.UUID
	Plate       string
	VehicleType string
	CreatedAt   time.Time
}

// NewVehicle creates a new Vehicle with a normalized plate.
func NewVehicle(hubID uuid.UUID, plate, vehicleType string) *Vehicle {
	return &Vehicle{
		ID:          uuid.New(),
		HubID:       hubID,
		Plate:       NormalizePlate(plate),
		VehicleType: vehicleType,
		CreatedAt:   time.Now().UTC(),
	}
}

// NormalizePlate trims and upper-cases a plate.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// Incident represents a repair or damage event of a vehicle.
// Date is free text accepting DD/MM/YYYY or YYYY-MM-DD.
type Incident struct {
	ID          uuid.UUID
	VehicleID   uuid.UUID
	HubID       uuid.UUID
	Title       string
	Description string
	Date        string
	Cost        decimal.Decimal
	Km          int
	CreatedAt   time.Time
}

// NewIncident creates a new Incident.
func NewIncident(hubID, vehicleID uuid.UUID, title, description, date string, cost decimal.Decimal, km int) *Incident {
	return &Incident{
		ID:          uuid.New(),
		VehicleID:   vehicleID,
		HubID:       hubID,
		Title:       title,
		Description: description,
		Date:        strings.TrimSpace(date),
		Cost:        cost,
		Km:          km,
		CreatedAt:   time.Now().UTC(),
	}
}

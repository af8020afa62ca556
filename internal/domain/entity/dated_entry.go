package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AttendanceStatus is the daily attendance code.
type AttendanceStatus string

const (
	AttendanceWorked AttendanceStatus = "1"
	AttendanceRest   AttendanceStatus = "D"
	AttendanceAbsent AttendanceStatus = "IN"
	AttendanceSick   AttendanceStatus = "E"
	AttendanceOther  AttendanceStatus = "O"
)

// AttendanceEntry is one employee day. Unique per (employee, hub, date).
type AttendanceEntry struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	HubID      uuid.UUID
	Date       string
	Status     AttendanceStatus
	ExtraHours float64
	Diet       int
	UpdatedAt  time.Time
}

// HasDiet reports whether the diet flag is set.
func (a *AttendanceEntry) HasDiet() bool {
	return a.Diet == 1
}

// LiquidationEntry is the daily cash settlement of a route. Unique per (route, date).
type LiquidationEntry struct {
	ID         uuid.UUID
	RouteID    uuid.UUID
	HubID      uuid.UUID
	Date       string
	Repartidor string
	Metalico   decimal.Decimal
	Ingreso    decimal.Decimal
	Comentario string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLiquidationEntry creates a LiquidationEntry with a normalized repartidor.
func NewLiquidationEntry(hubID, routeID uuid.UUID, date, repartidor string, metalico, ingreso decimal.Decimal, comentario string) *LiquidationEntry {
	now := time.Now().UTC()
	return &LiquidationEntry{
		ID:         uuid.New(),
		RouteID:    routeID,
		HubID:      hubID,
		Date:       date,
		Repartidor: NormalizeRepartidor(repartidor),
		Metalico:   metalico,
		Ingreso:    ingreso,
		Comentario: comentario,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Diferencia is metalico minus ingreso. It is always derived, never stored independently.
func (l *LiquidationEntry) Diferencia() decimal.Decimal {
	return l.Metalico.Sub(l.Ingreso)
}

// KilosLitrosEntry holds the delivered volume of a repartidor on a route and day.
// Unique per (route, date, repartidor).
type KilosLitrosEntry struct {
	ID         uuid.UUID
	HubID      uuid.UUID
	RouteID    uuid.UUID
	Date       string
	Repartidor string
	Clientes   int
	Kilos      float64
	Litros     float64
	Bultos     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewKilosLitrosEntry creates a KilosLitrosEntry with a normalized repartidor.
func NewKilosLitrosEntry(hubID, routeID uuid.UUID, date, repartidor string, clientes int, kilos, litros float64, bultos int) *KilosLitrosEntry {
	now := time.Now().UTC()
	return &KilosLitrosEntry{
		ID:         uuid.New(),
		HubID:      hubID,
		RouteID:    routeID,
		Date:       date,
		Repartidor: NormalizeRepartidor(repartidor),
		Clientes:   clientes,
		Kilos:      kilos,
		Litros:     litros,
		Bultos:     bultos,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NormalizeRepartidor trims and lower-cases a repartidor name.
// A Caser is stateful, so one is built per call.
func NormalizeRepartidor(name string) string {
	return cases.Lower(language.Spanish).String(strings.TrimSpace(name))
}

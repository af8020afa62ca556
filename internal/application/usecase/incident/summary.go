package incident

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// VehicleCost holds the incident costs of one vehicle.
type VehicleCost struct {
	VehicleID      uuid.UUID
	Plate          string
	VehicleType    string
	TotalCostMonth decimal.Decimal
	TotalCostYear  decimal.Decimal
	IncidentsCount int
}

// SummaryOutput represents the incident cost summary of a hub.
type SummaryOutput struct {
	Year     int
	Month    int
	Vehicles []VehicleCost
	// Skipped lists incidents whose date could not be parsed.
	Skipped []*domainerror.DateParseError
}

// Summarize accumulates the current year and month costs per vehicle, in vehicle order.
// Incidents with a malformed date count toward IncidentsCount only and are reported in skipped.
func Summarize(vehicles []*entity.Vehicle, incidents []*entity.Incident, now time.Time) ([]VehicleCost, []*domainerror.DateParseError) {
	index := make(map[uuid.UUID]int, len(vehicles))
	out := make([]VehicleCost, len(vehicles))
	for i, v := range vehicles {
		index[v.ID] = i
		out[i] = VehicleCost{
			VehicleID:      v.ID,
			Plate:          v.Plate,
			VehicleType:    v.VehicleType,
			TotalCostMonth: decimal.Zero,
			TotalCostYear:  decimal.Zero,
		}
	}

	var skipped []*domainerror.DateParseError
	for _, incident := range incidents {
		i, ok := index[incident.VehicleID]
		if !ok {
			continue
		}
		out[i].IncidentsCount++

		date, err := ParseDate(incident.Date, incident.ID.String())
		if err != nil {
			var parseErr *domainerror.DateParseError
			if errors.As(err, &parseErr) {
				skipped = append(skipped, parseErr)
			}
			continue
		}
		if date.Year() != now.Year() {
			continue
		}
		out[i].TotalCostYear = out[i].TotalCostYear.Add(incident.Cost)
		if date.Month() == now.Month() {
			out[i].TotalCostMonth = out[i].TotalCostMonth.Add(incident.Cost)
		}
	}
	return out, skipped
}

// SummaryUseCase computes the incident cost summary of a hub.
type SummaryUseCase struct {
	hubRepo      adapter.HubRepository
	vehicleRepo  adapter.VehicleRepository
	incidentRepo adapter.IncidentRepository
	now          func() time.Time
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	hubRepo adapter.HubRepository,
	vehicleRepo adapter.VehicleRepository,
	incidentRepo adapter.IncidentRepository,
	now func() time.Time,
) *SummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &SummaryUseCase{
		hubRepo:      hubRepo,
		vehicleRepo:  vehicleRepo,
		incidentRepo: incidentRepo,
		now:          now,
	}
}

// Execute performs the aggregation. Malformed dates never fail the summary.
func (uc *SummaryUseCase) Execute(ctx context.Context, hubID uuid.UUID) (*SummaryOutput, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, hubID); err != nil {
		return nil, err
	}
	vehicles, err := uc.vehicleRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	incidents, err := uc.incidentRepo.ListByHub(ctx, hubID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	now := uc.now()
	costs, skipped := Summarize(vehicles, incidents, now)
	for _, s := range skipped {
		slog.Warn("Skipping incident with malformed date", "hub_id", hubID, "incident_id", s.RecordID, "date", s.Value)
	}

	return &SummaryOutput{
		Year:     now.Year(),
		Month:    int(now.Month()),
		Vehicles: costs,
		Skipped:  skipped,
	}, nil
}

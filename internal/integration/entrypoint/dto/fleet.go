package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/usecase/incident"
	"github.com/hubmanager/backend/internal/domain/entity"
)

// CreateVehicleRequest represents the request body for vehicle creation.
type CreateVehicleRequest struct {
	Plate       string `json:"plate" binding:"required,max=20"`
	VehicleType string `json:"vehicle_type" binding:"required,vehicle_type"`
}

// UpdateVehicleRequest represents a partial vehicle update.
type UpdateVehicleRequest struct {
	Plate       *string `json:"plate,omitempty" binding:"omitempty,max=20"`
	VehicleType *string `json:"vehicle_type,omitempty" binding:"omitempty,vehicle_type"`
}

// VehicleResponse represents a vehicle in API responses.
type VehicleResponse struct {
	ID          string    `json:"id"`
	HubID       string    `json:"hub_id"`
	Plate       string    `json:"plate"`
	VehicleType string    `json:"vehicle_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToVehicleResponse converts a domain Vehicle entity.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID.String(),
		HubID:       v.HubID.String(),
		Plate:       v.Plate,
		VehicleType: v.VehicleType,
		CreatedAt:   v.CreatedAt,
	}
}

// ToVehicleListResponse converts a list of vehicles.
func ToVehicleListResponse(vehicles []*entity.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, ToVehicleResponse(v))
	}
	return out
}

// IncidentQuery binds the optional vehicle filter of the incident listing.
type IncidentQuery struct {
	VehicleID string `form:"vehicle_id" binding:"omitempty,uuid"`
}

// CreateIncidentRequest represents the request body for incident creation.
// Cost is accepted as a JSON number or string.
type CreateIncidentRequest struct {
	VehicleID   string          `json:"vehicle_id" binding:"required,uuid"`
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required,incident_date"`
	Cost        decimal.Decimal `json:"cost"`
	Km          int             `json:"km" binding:"min=0"`
}

// UpdateIncidentRequest represents a partial incident update.
type UpdateIncidentRequest struct {
	Title       *string          `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty" binding:"omitempty,incident_date"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Km          *int             `json:"km,omitempty" binding:"omitempty,min=0"`
}

// IncidentResponse represents an incident in API responses.
type IncidentResponse struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicle_id"`
	HubID       string    `json:"hub_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Cost        float64   `json:"cost"`
	Km          int       `json:"km"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToIncidentResponse converts a domain Incident entity.
func ToIncidentResponse(i *entity.Incident) IncidentResponse {
	return IncidentResponse{
		ID:          i.ID.String(),
		VehicleID:   i.VehicleID.String(),
		HubID:       i.HubID.String(),
		Title:       i.Title,
		Description: i.Description,
		Date:        i.Date,
		Cost:        i.Cost.InexactFloat64(),
		Km:          i.Km,
		CreatedAt:   i.CreatedAt,
	}
}

// ToIncidentListResponse converts a list of incidents.
func ToIncidentListResponse(incidents []*entity.Incident) []IncidentResponse {
	out := make([]IncidentResponse, 0, len(incidents))
	for _, i := range incidents {
		out = append(out, ToIncidentResponse(i))
	}
	return out
}

// VehicleCostResponse is the cost summary of one vehicle.
type VehicleCostResponse struct {
	VehicleID      string  `json:"vehicle_id"`
	Plate          string  `json:"plate"`
	VehicleType    string  `json:"vehicle_type"`
	TotalCostMonth float64 `json:"total_cost_month"`
	TotalCostYear  float64 `json:"total_cost_year"`
	IncidentsCount int     `json:"incidents_count"`
}

// SkippedIncidentResponse identifies an incident left out of the cost totals.
type SkippedIncidentResponse struct {
	IncidentID string `json:"incident_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

// IncidentSummaryResponse is the per vehicle incident cost summary.
type IncidentSummaryResponse struct {
	Year      int                       `json:"year"`
	Month     int                       `json:"month"`
	Summaries []VehicleCostResponse     `json:"summaries"`
	Skipped   []SkippedIncidentResponse `json:"skipped"`
}

// ToIncidentSummaryResponse converts the incident summary output.
func ToIncidentSummaryResponse(out *incident.SummaryOutput) IncidentSummaryResponse {
	resp := IncidentSummaryResponse{
		Year:      out.Year,
		Month:     out.Month,
		Summaries: make([]VehicleCostResponse, 0, len(out.Vehicles)),
		Skipped:   make([]SkippedIncidentResponse, 0, len(out.Skipped)),
	}
	for _, v := range out.Vehicles {
		resp.Summaries = append(resp.Summaries, VehicleCostResponse{
			VehicleID:      v.VehicleID.String(),
			Plate:          v.Plate,
			VehicleType:    v.VehicleType,
			TotalCostMonth: v.TotalCostMonth.InexactFloat64(),
			TotalCostYear:  v.TotalCostYear.InexactFloat64(),
			IncidentsCount: v.IncidentsCount,
		})
	}
	for _, s := range out.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedIncidentResponse{
			IncidentID: s.RecordID,
			Date:       s.Value,
			Reason:     s.Error(),
		})
	}
	return resp
}

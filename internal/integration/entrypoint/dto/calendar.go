package dto

import (
	"time"

	"github.com/hubmanager/backend/internal/application/usecase/holiday"
	"github.com/hubmanager/backend/internal/domain/entity"
)

// HolidayQuery binds the year of the holiday calendar. An absent year means the current one.
type HolidayQuery struct {
	Year *int `form:"year" binding:"omitempty,min=1900,max=9999"`
}

// HolidayRequest represents the request body for a custom holiday.
type HolidayRequest struct {
	Date string `json:"date" binding:"required"`
	Name string `json:"name" binding:"required,max=120"`
	Type string `json:"type" binding:"omitempty,holiday_type"`
}

// HolidayResponse is one holiday of the resolved calendar.
type HolidayResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPreset bool   `json:"is_preset"`
}

// HolidayCalendarResponse is the resolved calendar of a hub for one year.
type HolidayCalendarResponse struct {
	Year     int               `json:"year"`
	Location string            `json:"location"`
	Holidays []HolidayResponse `json:"holidays"`
}

// ToHolidayResponse converts a stored custom holiday.
func ToHolidayResponse(h *entity.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID.String(),
		Date: h.Date,
		Name: h.Name,
		Type: string(h.Type),
	}
}

// ToHolidayCalendarResponse converts the resolved calendar.
func ToHolidayCalendarResponse(out *holiday.ResolveOutput) HolidayCalendarResponse {
	resp := HolidayCalendarResponse{
		Year:     out.Year,
		Location: out.Location,
		Holidays: make([]HolidayResponse, 0, len(out.Holidays)),
	}
	for _, h := range out.Holidays {
		resp.Holidays = append(resp.Holidays, HolidayResponse{
			ID:       h.ID,
			Date:     h.Date,
			Name:     h.Name,
			Type:     string(h.Type),
			IsPreset: h.IsPreset,
		})
	}
	return resp
}

// RestrictionRequest represents the request body for a time restriction.
type RestrictionRequest struct {
	Zona    string `json:"zona" binding:"required,max=120"`
	Horario string `json:"horario"`
	Dias    string `json:"dias"`
	AplicaA string `json:"aplica_a" binding:"omitempty,aplica_a"`
	Notas   string `json:"notas"`
}

// UpdateRestrictionRequest represents a partial time restriction update.
type UpdateRestrictionRequest struct {
	Zona    *string `json:"zona,omitempty" binding:"omitempty,max=120"`
	Horario *string `json:"horario,omitempty"`
	Dias    *string `json:"dias,omitempty"`
	AplicaA *string `json:"aplica_a,omitempty" binding:"omitempty,aplica_a"`
	Notas   *string `json:"notas,omitempty"`
}

// RestrictionResponse represents a time restriction.
type RestrictionResponse struct {
	ID        string    `json:"id"`
	HubID     string    `json:"hub_id"`
	Zona      string    `json:"zona"`
	Horario   string    `json:"horario"`
	Dias      string    `json:"dias"`
	AplicaA   string    `json:"aplica_a"`
	Notas     string    `json:"notas"`
	CreatedAt time.Time `json:"created_at"`
}

// ToRestrictionResponse converts a domain TimeRestriction.
func ToRestrictionResponse(r *entity.TimeRestriction) RestrictionResponse {
	return RestrictionResponse{
		ID:        r.ID.String(),
		HubID:     r.HubID.String(),
		Zona:      r.Zona,
		Horario:   r.Horario,
		Dias:      r.Dias,
		AplicaA:   string(r.AplicaA),
		Notas:     r.Notas,
		CreatedAt: r.CreatedAt,
	}
}

// ToRestrictionListResponse converts a list of time restrictions.
func ToRestrictionListResponse(restrictions []*entity.TimeRestriction) []RestrictionResponse {
	out := make([]RestrictionResponse, 0, len(restrictions))
	for _, r := range restrictions {
		out = append(out, ToRestrictionResponse(r))
	}
	return out
}

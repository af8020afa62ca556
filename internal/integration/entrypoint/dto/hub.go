package dto

import (
	"time"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// CreateHubRequest represents the request body for hub creation.
type CreateHubRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// UpdateHubRequest represents a partial hub update. Absent fields are left unchanged.
type UpdateHubRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// HubResponse represents a hub in API responses.
type HubResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToHubResponse converts a domain Hub entity to a HubResponse DTO.
func ToHubResponse(h *entity.Hub) HubResponse {
	return HubResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		Description: h.Description,
		Location:    h.Location,
		CreatedAt:   h.CreatedAt,
	}
}

// ToHubListResponse converts a list of hubs.
func ToHubListResponse(hubs []*entity.Hub) []HubResponse {
	out := make([]HubResponse, 0, len(hubs))
	for _, h := range hubs {
		out = append(out, ToHubResponse(h))
	}
	return out
}

// EmployeeRequest represents the request body for employee creation.
type EmployeeRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Position string `json:"position"`
}

// UpdateEmployeeRequest represents a partial employee update.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Position *string `json:"position,omitempty"`
}

// EmployeeResponse represents an employee in API responses.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	HubID     string    `json:"hub_id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// ToEmployeeResponse converts a domain Employee entity.
func ToEmployeeResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID.String(),
		HubID:     e.HubID.String(),
		Name:      e.Name,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
	}
}

// ToEmployeeListResponse converts a list of employees.
func ToEmployeeListResponse(employees []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}

// RouteRequest represents the request body for route creation.
type RouteRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

// RouteResponse represents a delivery route.
type RouteResponse struct {
	ID        string    `json:"id"`
	HubID     string    `json:"hub_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToRouteListResponse converts a list of routes.
func ToRouteListResponse(routes []*entity.Route) []RouteResponse {
	out := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, ToRouteResponse(r))
	}
	return out
}

// ToRouteResponse converts a domain Route entity.
func ToRouteResponse(r *entity.Route) RouteResponse {
	return RouteResponse{ID: r.ID.String(), HubID: r.HubID.String(), Name: r.Name, CreatedAt: r.CreatedAt}
}

// ContactRequest represents the request body for contact creation.
type ContactRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Position string `json:"position"`
	Phone    string `json:"phone" binding:"max=40"`
}

// UpdateContactRequest represents a partial contact update.
type UpdateContactRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Position *string `json:"position,omitempty"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=40"`
}

// ContactResponse represents a phone book entry.
type ContactResponse struct {
	ID        string    `json:"id"`
	HubID     string    `json:"hub_id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ToContactResponse converts a domain Contact entity.
func ToContactResponse(c *entity.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID.String(),
		HubID:     c.HubID.String(),
		Name:      c.Name,
		Position:  c.Position,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// ToContactListResponse converts a list of contacts.
func ToContactListResponse(contacts []*entity.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ToContactResponse(c))
	}
	return out
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hub represents a regional operational site. Every other record is scoped to a hub.
type Hub struct {
	ID          uuid.UUID
	Name        string
	Description string
	Location    string
	CreatedAt   time.Time
}

// NewHub creates a new Hub.
func NewHub(name, description, location string) *Hub {
	return &Hub{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Location:    location,
		CreatedAt:   time.Now().UTC(),
	}
}

// Employee represents a hub worker whose attendance is tracked.
type Employee struct {
	ID        uuid.UUID
	HubID     uuid.UUID
	Name      string
	Position  string
	CreatedAt time.Time
}

// NewEmployee creates a new Employee.
func NewEmployee(hubID uuid.UUID, name, position string) *Employee {
	return &Employee{
		ID:        uuid.New(),
		HubID:     hubID,
		Name:      name,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}
}

// Route represents a delivery route of a hub. Names are unique within a hub.
type Route struct {
	ID        uuid.UUID
	HubID     uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewRoute creates a new Route.
func NewRoute(hubID uuid.UUID, name string) *Route {
	return &Route{
		ID:        uuid.New(),
		HubID:     hubID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Contact represents a phone book entry of a hub.
type Contact struct {
	ID        uuid.UUID
	HubID     uuid.UUID
	Name      string
	Position  string
	Phone     string
	CreatedAt time.Time
}

// NewContact creates a new Contact.
func NewContact(hubID uuid.UUID, name, position, phone string) *Contact {
	return &Contact{
		ID:        uuid.New(),
		HubID:     hubID,
		Name:      name,
		Position:  position,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase represents a supply purchase of a hub.
type Purchase struct {
	ID             uuid.UUID
	HubID          uuid.UUID
	Item           string
	Specifications string
	Supplier       string
	Price          decimal.Decimal
	Quantity       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPurchase creates a new Purchase.
func NewPurchase(hubID uuid.UUID, item, specifications, supplier string, price decimal.Decimal, quantity int) *Purchase {
	now := time.Now().UTC()
	return &Purchase{
		ID:             uuid.New(),
		HubID:          hubID,
		Item:           item,
		Specifications: specifications,
		Supplier:       supplier,
		Price:          price,
		Quantity:       quantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Total is price times quantity, derived on every read.
func (p *Purchase) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

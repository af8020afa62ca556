package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/usecase/stats"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// RecordQuery binds the filters of the generic record listing.
type RecordQuery struct {
	HubID    string `form:"hub_id" binding:"omitempty,uuid"`
	Category string `form:"category"`
}

// CreateHubRecordRequest represents the request body for a record created under a hub path.
type CreateHubRecordRequest struct {
	Category    string                 `json:"category" binding:"required"`
	Title       string                 `json:"title" binding:"required,max=200"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data"`
}

// CreateRecordRequest represents the request body for POST /records, where the hub comes from the body.
type CreateRecordRequest struct {
	HubID string `json:"hub_id" binding:"required,uuid"`
	CreateHubRecordRequest
}

// UpdateRecordRequest represents a partial record update. A non-null data replaces the stored map.
type UpdateRecordRequest struct {
	Category    *string                `json:"category,omitempty"`
	Title       *string                `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string                `json:"description,omitempty"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// RecordResponse represents a generic record.
type RecordResponse struct {
	ID          string                 `json:"id"`
	HubID       string                 `json:"hub_id"`
	Category    string                 `json:"category"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data"`
	FileName    string                 `json:"file_name,omitempty"`
	FileData    string                 `json:"file_data,omitempty"`
	CreatedBy   string                 `json:"created_by,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// UploadResponse is returned after a file upload.
type UploadResponse struct {
	Message  string `json:"message"`
	FileName string `json:"file_name"`
}

// ToRecordResponse converts a domain Record.
func ToRecordResponse(r *entity.Record) RecordResponse {
	resp := RecordResponse{
		ID:          r.ID.String(),
		HubID:       r.HubID.String(),
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Data:        r.Data,
		FileName:    r.FileName,
		FileData:    r.FileData,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if resp.Data == nil {
		resp.Data = map[string]interface{}{}
	}
	if r.CreatedBy != uuid.Nil {
		resp.CreatedBy = r.CreatedBy.String()
	}
	return resp
}

// ToRecordListResponse converts a list of records.
func ToRecordListResponse(records []*entity.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToRecordResponse(r))
	}
	return out
}

// PurchaseRequest represents the request body for a purchase.
// Price is accepted as a JSON number or string.
type PurchaseRequest struct {
	Item           string          `json:"item" binding:"required,max=200"`
	Specifications string          `json:"specifications"`
	Supplier       string          `json:"supplier"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity" binding:"min=0"`
}

// UpdatePurchaseRequest represents a partial purchase update.
type UpdatePurchaseRequest struct {
	Item           *string          `json:"item,omitempty" binding:"omitempty,max=200"`
	Specifications *string          `json:"specifications,omitempty"`
	Supplier       *string          `json:"supplier,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Quantity       *int             `json:"quantity,omitempty" binding:"omitempty,min=0"`
}

// PurchaseResponse represents a purchase. Total is price times quantity.
type PurchaseResponse struct {
	ID             string    `json:"id"`
	HubID          string    `json:"hub_id"`
	Item           string    `json:"item"`
	Specifications string    `json:"specifications"`
	Supplier       string    `json:"supplier"`
	Price          float64   `json:"price"`
	Quantity       int       `json:"quantity"`
	Total          float64   `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToPurchaseResponse converts a domain Purchase.
func ToPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:             p.ID.String(),
		HubID:          p.HubID.String(),
		Item:           p.Item,
		Specifications: p.Specifications,
		Supplier:       p.Supplier,
		Price:          p.Price.InexactFloat64(),
		Quantity:       p.Quantity,
		Total:          p.Total().InexactFloat64(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToPurchaseListResponse converts a list of purchases.
func ToPurchaseListResponse(purchases []*entity.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, ToPurchaseResponse(p))
	}
	return out
}

// CategoryResponse is one record category.
type CategoryResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ToCategoryListResponse converts the category table.
func ToCategoryListResponse(categories []valueobject.CategoryType) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{Name: c.Name, Icon: c.Icon})
	}
	return out
}

// StatsResponse holds the global counters.
type StatsResponse struct {
	TotalHubs         int64            `json:"total_hubs"`
	TotalEmployees    int64            `json:"total_employees"`
	TotalRecords      int64            `json:"total_records"`
	TotalUsers        int64            `json:"total_users"`
	PendingUsers      int64            `json:"pending_users"`
	RecordsByCategory map[string]int64 `json:"records_by_category"`
}

// ToStatsResponse converts the stats output.
func ToStatsResponse(out *stats.GetStatsOutput) StatsResponse {
	return StatsResponse{
		TotalHubs:         out.TotalHubs,
		TotalEmployees:    out.TotalEmployees,
		TotalRecords:      out.TotalRecords,
		TotalUsers:        out.TotalUsers,
		PendingUsers:      out.PendingUsers,
		RecordsByCategory: out.RecordsByCategory,
	}
}

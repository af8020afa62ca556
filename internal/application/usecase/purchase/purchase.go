// Package purchase contains hub purchase use cases.
package purchase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ListPurchasesUseCase lists the purchases of a hub.
type ListPurchasesUseCase struct {
	hubRepo      adapter.HubRepository
	purchaseRepo adapter.PurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(hubRepo adapter.HubRepository, purchaseRepo adapter.PurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{hubRepo: hubRepo, purchaseRepo: purchaseRepo}
}

// Execute returns the hub purchases, newest first.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context, hubID uuid.UUID) ([]*entity.Purchase, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, hubID); err != nil {
		return nil, err
	}
	purchases, err := uc.purchaseRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// CreatePurchaseInput represents the input for purchase creation.
type CreatePurchaseInput struct {
	HubID          uuid.UUID
	Item           string
	Specifications string
	Supplier       string
	Price          decimal.Decimal
	Quantity       int
}

// CreatePurchaseUseCase handles purchase creation.
type CreatePurchaseUseCase struct {
	hubRepo      adapter.HubRepository
	purchaseRepo adapter.PurchaseRepository
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(hubRepo adapter.HubRepository, purchaseRepo adapter.PurchaseRepository) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{hubRepo: hubRepo, purchaseRepo: purchaseRepo}
}

// Execute creates the purchase.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, input CreatePurchaseInput) (*entity.Purchase, error) {
	item := strings.TrimSpace(input.Item)
	if item == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingItem, "Item is required", nil)
	}
	if err := validateAmounts(input.Price, input.Quantity); err != nil {
		return nil, err
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	purchase := entity.NewPurchase(
		input.HubID,
		item,
		strings.TrimSpace(input.Specifications),
		strings.TrimSpace(input.Supplier),
		input.Price,
		input.Quantity,
	)
	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}
	return purchase, nil
}

// UpdatePurchaseInput represents the input for purchase update. Nil fields are left untouched.
type UpdatePurchaseInput struct {
	HubID          uuid.UUID
	PurchaseID     uuid.UUID
	Item           *string
	Specifications *string
	Supplier       *string
	Price          *decimal.Decimal
	Quantity       *int
}

func (in UpdatePurchaseInput) empty() bool {
	return in.Item == nil && in.Specifications == nil && in.Supplier == nil && in.Price == nil && in.Quantity == nil
}

// UpdatePurchaseUseCase handles partial purchase updates.
type UpdatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewUpdatePurchaseUseCase creates a new UpdatePurchaseUseCase instance.
func NewUpdatePurchaseUseCase(purchaseRepo adapter.PurchaseRepository) *UpdatePurchaseUseCase {
	return &UpdatePurchaseUseCase{purchaseRepo: purchaseRepo}
}

// Execute applies the update. The total follows price and quantity.
func (uc *UpdatePurchaseUseCase) Execute(ctx context.Context, input UpdatePurchaseInput) (*entity.Purchase, error) {
	if input.empty() {
		return nil, domainerror.NewEmptyUpdateError()
	}

	purchase, err := uc.purchaseRepo.FindByID(ctx, input.HubID, input.PurchaseID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrPurchaseNotFound, domainerror.NewPurchaseNotFoundError, "find purchase")
	}

	if input.Item != nil {
		item := strings.TrimSpace(*input.Item)
		if item == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingItem, "Item is required", nil)
		}
		purchase.Item = item
	}
	if input.Specifications != nil {
		purchase.Specifications = strings.TrimSpace(*input.Specifications)
	}
	if input.Supplier != nil {
		purchase.Supplier = strings.TrimSpace(*input.Supplier)
	}
	if input.Price != nil {
		purchase.Price = *input.Price
	}
	if input.Quantity != nil {
		purchase.Quantity = *input.Quantity
	}
	if err := validateAmounts(purchase.Price, purchase.Quantity); err != nil {
		return nil, err
	}
	purchase.UpdatedAt = time.Now().UTC()

	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}
	return purchase, nil
}

// DeletePurchaseUseCase deletes a purchase.
type DeletePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewDeletePurchaseUseCase creates a new DeletePurchaseUseCase instance.
func NewDeletePurchaseUseCase(purchaseRepo adapter.PurchaseRepository) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{purchaseRepo: purchaseRepo}
}

// Execute deletes the purchase.
func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, hubID, purchaseID uuid.UUID) error {
	if err := uc.purchaseRepo.Delete(ctx, hubID, purchaseID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrPurchaseNotFound, domainerror.NewPurchaseNotFoundError, "delete purchase")
	}
	return nil
}

func validateAmounts(price decimal.Decimal, quantity int) error {
	if price.IsNegative() || quantity < 0 {
		return domainerror.InvalidInput(domainerror.ErrCodeInvalidQuantity, "Price and quantity cannot be negative", domainerror.ErrInvalidQuantity)
	}
	return nil
}

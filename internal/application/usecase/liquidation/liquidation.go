// Package liquidation contains route cash settlement use cases.
package liquidation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// MonthInput identifies a hub month, optionally narrowed to one route.
type MonthInput struct {
	HubID   uuid.UUID
	Year    int
	Month   int
	RouteID *uuid.UUID
}

// ListOutput represents the liquidation entries of a month.
type ListOutput struct {
	Month   valueobject.MonthRange
	Entries []*entity.LiquidationEntry
}

// ListUseCase lists the liquidation entries of a month.
type ListUseCase struct {
	hubRepo         adapter.HubRepository
	liquidationRepo adapter.LiquidationRepository
}

// NewListUseCase creates a new ListUseCase instance.
func NewListUseCase(hubRepo adapter.HubRepository, liquidationRepo adapter.LiquidationRepository) *ListUseCase {
	return &ListUseCase{hubRepo: hubRepo, liquidationRepo: liquidationRepo}
}

// Execute returns the entries ordered by date.
func (uc *ListUseCase) Execute(ctx context.Context, input MonthInput) (*ListOutput, error) {
	month, err := valueobject.NewMonthRange(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}
	entries, err := uc.liquidationRepo.ListByHubAndRange(ctx, input.HubID, month.Start, month.End, input.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liquidations: %w", err)
	}
	return &ListOutput{Month: month, Entries: entries}, nil
}

// EntryInput is one liquidation to store.
type EntryInput struct {
	RouteID    uuid.UUID
	Date       string
	Repartidor string
	Metalico   decimal.Decimal
	Ingreso    decimal.Decimal
	Comentario string
}

// UpsertInput represents a single liquidation upsert.
type UpsertInput struct {
	HubID uuid.UUID
	Entry EntryInput
}

// UpsertUseCase stores one liquidation, replacing the entry of the same route and date.
type UpsertUseCase struct {
	hubRepo         adapter.HubRepository
	routeRepo       adapter.RouteRepository
	liquidationRepo adapter.LiquidationRepository
}

// NewUpsertUseCase creates a new UpsertUseCase instance.
func NewUpsertUseCase(
	hubRepo adapter.HubRepository,
	routeRepo adapter.RouteRepository,
	liquidationRepo adapter.LiquidationRepository,
) *UpsertUseCase {
	return &UpsertUseCase{hubRepo: hubRepo, routeRepo: routeRepo, liquidationRepo: liquidationRepo}
}

// Execute performs the upsert and returns the stored entry.
func (uc *UpsertUseCase) Execute(ctx context.Context, input UpsertInput) (*entity.LiquidationEntry, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}
	if err := valueobject.ValidateDate(input.Entry.Date); err != nil {
		return nil, err
	}
	if _, err := scope.RequireRoute(ctx, uc.routeRepo, input.HubID, input.Entry.RouteID); err != nil {
		return nil, err
	}
	return uc.store(ctx, input.HubID, input.Entry)
}

func (uc *UpsertUseCase) store(ctx context.Context, hubID uuid.UUID, in EntryInput) (*entity.LiquidationEntry, error) {
	entry := entity.NewLiquidationEntry(hubID, in.RouteID, in.Date, in.Repartidor, in.Metalico, in.Ingreso, strings.TrimSpace(in.Comentario))
	stored, err := uc.liquidationRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save liquidation: %w", err)
	}
	return stored, nil
}

// BulkUpsertInput represents a batch of liquidation upserts.
type BulkUpsertInput struct {
	HubID   uuid.UUID
	Entries []EntryInput
}

// BulkUpsertOutput reports how many entries were stored.
type BulkUpsertOutput struct {
	Count int
}

// BulkUpsertUseCase stores a batch of liquidations.
type BulkUpsertUseCase struct {
	upsert *UpsertUseCase
}

// NewBulkUpsertUseCase creates a new BulkUpsertUseCase instance.
func NewBulkUpsertUseCase(upsert *UpsertUseCase) *BulkUpsertUseCase {
	return &BulkUpsertUseCase{upsert: upsert}
}

// Execute stores each entry independently. Rejected entries are logged and skipped.
func (uc *BulkUpsertUseCase) Execute(ctx context.Context, input BulkUpsertInput) (*BulkUpsertOutput, error) {
	if _, err := scope.RequireHub(ctx, uc.upsert.hubRepo, input.HubID); err != nil {
		return nil, err
	}
	routes, err := uc.upsert.routeRepo.ListByHub(ctx, input.HubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	known := scope.RouteNames(routes)

	count := 0
	for _, in := range input.Entries {
		if _, ok := known[in.RouteID]; !ok {
			slog.Warn("Skipping liquidation of unknown route", "hub_id", input.HubID, "route_id", in.RouteID)
			continue
		}
		if err := valueobject.ValidateDate(in.Date); err != nil {
			slog.Warn("Skipping liquidation with invalid date", "hub_id", input.HubID, "date", in.Date)
			continue
		}
		if _, err := uc.upsert.store(ctx, input.HubID, in); err != nil {
			slog.Error("Failed to save liquidation", "error", err, "hub_id", input.HubID, "route_id", in.RouteID, "date", in.Date)
			continue
		}
		count++
	}
	return &BulkUpsertOutput{Count: count}, nil
}

// DeleteUseCase deletes a liquidation entry.
type DeleteUseCase struct {
	liquidationRepo adapter.LiquidationRepository
}

// NewDeleteUseCase creates a new DeleteUseCase instance.
func NewDeleteUseCase(liquidationRepo adapter.LiquidationRepository) *DeleteUseCase {
	return &DeleteUseCase{liquidationRepo: liquidationRepo}
}

// Execute deletes the entry.
func (uc *DeleteUseCase) Execute(ctx context.Context, hubID, entryID uuid.UUID) error {
	if err := uc.liquidationRepo.Delete(ctx, hubID, entryID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrLiquidationNotFound, domainerror.NewLiquidationNotFoundError, "delete liquidation")
	}
	return nil
}

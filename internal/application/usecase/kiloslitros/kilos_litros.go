// Package kiloslitros contains delivered volume use cases.
package kiloslitros

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

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

// ListOutput represents the kilos/litros entries of a month.
type ListOutput struct {
	Month   valueobject.MonthRange
	Entries []*entity.KilosLitrosEntry
}

// ListUseCase lists the kilos/litros entries of a month.
type ListUseCase struct {
	hubRepo   adapter.HubRepository
	kilosRepo adapter.KilosLitrosRepository
}

// NewListUseCase creates a new ListUseCase instance.
func NewListUseCase(hubRepo adapter.HubRepository, kilosRepo adapter.KilosLitrosRepository) *ListUseCase {
	return &ListUseCase{hubRepo: hubRepo, kilosRepo: kilosRepo}
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
	entries, err := uc.kilosRepo.ListByHubAndRange(ctx, input.HubID, month.Start, month.End, input.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kilos/litros: %w", err)
	}
	return &ListOutput{Month: month, Entries: entries}, nil
}

// EntryInput is one kilos/litros entry to store.
type EntryInput struct {
	RouteID    uuid.UUID
	Date       string
	Repartidor string
	Clientes   int
	Kilos      float64
	Litros     float64
	Bultos     int
}

func (in EntryInput) validate() error {
	if err := valueobject.ValidateDate(in.Date); err != nil {
		return err
	}
	if in.Clientes < 0 || in.Kilos < 0 || in.Litros < 0 || in.Bultos < 0 {
		return domainerror.InvalidInput(domainerror.ErrCodeNegativeMeasure, "Measures cannot be negative", domainerror.ErrNegativeMeasure)
	}
	return nil
}

// UpsertInput represents a single kilos/litros upsert.
type UpsertInput struct {
	HubID uuid.UUID
	Entry EntryInput
}

// UpsertUseCase stores one entry, replacing the one of the same route, date and repartidor.
type UpsertUseCase struct {
	hubRepo   adapter.HubRepository
	routeRepo adapter.RouteRepository
	kilosRepo adapter.KilosLitrosRepository
}

// NewUpsertUseCase creates a new UpsertUseCase instance.
func NewUpsertUseCase(
	hubRepo adapter.HubRepository,
	routeRepo adapter.RouteRepository,
	kilosRepo adapter.KilosLitrosRepository,
) *UpsertUseCase {
	return &UpsertUseCase{hubRepo: hubRepo, routeRepo: routeRepo, kilosRepo: kilosRepo}
}

// Execute performs the upsert and returns the stored entry.
func (uc *UpsertUseCase) Execute(ctx context.Context, input UpsertInput) (*entity.KilosLitrosEntry, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}
	if err := input.Entry.validate(); err != nil {
		return nil, err
	}
	if _, err := scope.RequireRoute(ctx, uc.routeRepo, input.HubID, input.Entry.RouteID); err != nil {
		return nil, err
	}
	return uc.store(ctx, input.HubID, input.Entry)
}

func (uc *UpsertUseCase) store(ctx context.Context, hubID uuid.UUID, in EntryInput) (*entity.KilosLitrosEntry, error) {
	entry := entity.NewKilosLitrosEntry(hubID, in.RouteID, in.Date, in.Repartidor, in.Clientes, in.Kilos, in.Litros, in.Bultos)
	stored, err := uc.kilosRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save kilos/litros: %w", err)
	}
	return stored, nil
}

// BulkUpsertInput represents a batch of kilos/litros upserts.
type BulkUpsertInput struct {
	HubID   uuid.UUID
	Entries []EntryInput
}

// BulkUpsertOutput reports how many entries were stored.
type BulkUpsertOutput struct {
	Count int
}

// BulkUpsertUseCase stores a batch of kilos/litros entries.
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
			slog.Warn("Skipping kilos/litros of unknown route", "hub_id", input.HubID, "route_id", in.RouteID)
			continue
		}
		if err := in.validate(); err != nil {
			slog.Warn("Skipping invalid kilos/litros entry", "hub_id", input.HubID, "date", in.Date, "error", err)
			continue
		}
		if _, err := uc.upsert.store(ctx, input.HubID, in); err != nil {
			slog.Error("Failed to save kilos/litros", "error", err, "hub_id", input.HubID, "route_id", in.RouteID, "date", in.Date)
			continue
		}
		count++
	}
	return &BulkUpsertOutput{Count: count}, nil
}

// DeleteUseCase deletes a kilos/litros entry.
type DeleteUseCase struct {
	kilosRepo adapter.KilosLitrosRepository
}

// NewDeleteUseCase creates a new DeleteUseCase instance.
func NewDeleteUseCase(kilosRepo adapter.KilosLitrosRepository) *DeleteUseCase {
	return &DeleteUseCase{kilosRepo: kilosRepo}
}

// Execute deletes the entry.
func (uc *DeleteUseCase) Execute(ctx context.Context, hubID, entryID uuid.UUID) error {
	if err := uc.kilosRepo.Delete(ctx, hubID, entryID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrKilosLitrosNotFound, domainerror.NewKilosLitrosNotFoundError, "delete kilos/litros")
	}
	return nil
}

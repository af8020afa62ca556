package kiloslitros

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// Measures are the four delivered volume figures.
type Measures struct {
	Clientes int
	Kilos    float64
	Litros   float64
	Bultos   int
}

func (m *Measures) add(e *entity.KilosLitrosEntry) {
	m.Clientes += e.Clientes
	m.Kilos += e.Kilos
	m.Litros += e.Litros
	m.Bultos += e.Bultos
}

// RepartidorMeasures is the breakdown of one repartidor.
type RepartidorMeasures struct {
	Repartidor string
	Measures
}

// RouteMeasures is the breakdown of one route.
type RouteMeasures struct {
	RouteID   uuid.UUID
	RouteName string
	Measures
}

// Summary holds the three views of a month of entries.
type Summary struct {
	Totals       Measures
	ByRepartidor []RepartidorMeasures
	ByRoute      []RouteMeasures
}

// Summarize reduces entries in one pass. ByRepartidor skips entries without a repartidor
// and is sorted by name. ByRoute has one row per given route, zero when it has no entries.
func Summarize(routes []*entity.Route, entries []*entity.KilosLitrosEntry) Summary {
	out := Summary{
		ByRepartidor: []RepartidorMeasures{},
		ByRoute:      make([]RouteMeasures, len(routes)),
	}

	routeIndex := make(map[uuid.UUID]int, len(routes))
	for i, r := range routes {
		routeIndex[r.ID] = i
		out.ByRoute[i] = RouteMeasures{RouteID: r.ID, RouteName: r.Name}
	}

	repartidores := make(map[string]*Measures)
	for _, e := range entries {
		out.Totals.add(e)
		if e.Repartidor != "" {
			m, ok := repartidores[e.Repartidor]
			if !ok {
				m = &Measures{}
				repartidores[e.Repartidor] = m
			}
			m.add(e)
		}
		if i, ok := routeIndex[e.RouteID]; ok {
			out.ByRoute[i].add(e)
		}
	}

	for name, m := range repartidores {
		out.ByRepartidor = append(out.ByRepartidor, RepartidorMeasures{Repartidor: name, Measures: *m})
	}
	sort.Slice(out.ByRepartidor, func(i, j int) bool {
		return out.ByRepartidor[i].Repartidor < out.ByRepartidor[j].Repartidor
	})
	return out
}

// SummaryOutput represents the kilos/litros summary of a month.
type SummaryOutput struct {
	Month valueobject.MonthRange
	Summary
}

// SummaryUseCase computes the monthly kilos/litros summary of a hub.
type SummaryUseCase struct {
	hubRepo   adapter.HubRepository
	routeRepo adapter.RouteRepository
	kilosRepo adapter.KilosLitrosRepository
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	hubRepo adapter.HubRepository,
	routeRepo adapter.RouteRepository,
	kilosRepo adapter.KilosLitrosRepository,
) *SummaryUseCase {
	return &SummaryUseCase{hubRepo: hubRepo, routeRepo: routeRepo, kilosRepo: kilosRepo}
}

// Execute performs the aggregation.
func (uc *SummaryUseCase) Execute(ctx context.Context, input MonthInput) (*SummaryOutput, error) {
	month, err := valueobject.NewMonthRange(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}
	routes, err := uc.routeRepo.ListByHub(ctx, input.HubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	entries, err := uc.kilosRepo.ListByHubAndRange(ctx, input.HubID, month.Start, month.End, input.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kilos/litros: %w", err)
	}
	return &SummaryOutput{Month: month, Summary: Summarize(routes, entries)}, nil
}

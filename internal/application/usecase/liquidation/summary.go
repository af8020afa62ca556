package liquidation

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// Difference is one entry whose metalico and ingreso do not match.
type Difference struct {
	EntryID    uuid.UUID
	Date       string
	RouteID    uuid.UUID
	RouteName  string
	Repartidor string
	Diferencia decimal.Decimal
}

// RepartidorBalance is the running difference of one repartidor.
type RepartidorBalance struct {
	Repartidor  string
	Total       decimal.Decimal
	Estado      string
	Diferencias []Difference
}

// RouteBalance is the cash reconciliation of one route.
type RouteBalance struct {
	RouteID              uuid.UUID
	RouteName            string
	TotalMetalico        decimal.Decimal
	TotalIngreso         decimal.Decimal
	Descuadre            decimal.Decimal
	DescuadresDetectados []Difference
}

// Summary holds both groupings of a month of liquidations.
type Summary struct {
	ByRepartidor []RepartidorBalance
	ByRoute      []RouteBalance
}

// Estado labels a repartidor balance. Amounts use two decimals.
func Estado(total decimal.Decimal) string {
	switch total.Sign() {
	case 1:
		return fmt.Sprintf("debe depositar %s €", total.StringFixed(2))
	case -1:
		return fmt.Sprintf("a favor %s €", total.Abs().StringFixed(2))
	default:
		return "sin descuadre"
	}
}

// Summarize groups entries by repartidor and by route.
// Repartidores are sorted by name. Routes follow the given order, and routes without
// entries are omitted. Entries of routes missing from the list are grouped after them.
func Summarize(routes []*entity.Route, entries []*entity.LiquidationEntry) Summary {
	names := scope.RouteNames(routes)

	repartidores := make(map[string]*RepartidorBalance)
	byRoute := make(map[uuid.UUID]*RouteBalance)
	var extraRoutes []uuid.UUID

	for _, entry := range entries {
		diferencia := entry.Diferencia()
		diff := Difference{
			EntryID:    entry.ID,
			Date:       entry.Date,
			RouteID:    entry.RouteID,
			RouteName:  names[entry.RouteID],
			Repartidor: entry.Repartidor,
			Diferencia: diferencia,
		}

		rep, ok := repartidores[entry.Repartidor]
		if !ok {
			rep = &RepartidorBalance{Repartidor: entry.Repartidor, Total: decimal.Zero}
			repartidores[entry.Repartidor] = rep
		}
		rep.Total = rep.Total.Add(diferencia)

		route, ok := byRoute[entry.RouteID]
		if !ok {
			route = &RouteBalance{
				RouteID:       entry.RouteID,
				RouteName:     names[entry.RouteID],
				TotalMetalico: decimal.Zero,
				TotalIngreso:  decimal.Zero,
			}
			byRoute[entry.RouteID] = route
			if _, known := names[entry.RouteID]; !known {
				extraRoutes = append(extraRoutes, entry.RouteID)
			}
		}
		route.TotalMetalico = route.TotalMetalico.Add(entry.Metalico)
		route.TotalIngreso = route.TotalIngreso.Add(entry.Ingreso)

		if !diferencia.IsZero() {
			rep.Diferencias = append(rep.Diferencias, diff)
			route.DescuadresDetectados = append(route.DescuadresDetectados, diff)
		}
	}

	out := Summary{
		ByRepartidor: make([]RepartidorBalance, 0, len(repartidores)),
		ByRoute:      make([]RouteBalance, 0, len(byRoute)),
	}
	for _, rep := range repartidores {
		rep.Estado = Estado(rep.Total)
		out.ByRepartidor = append(out.ByRepartidor, *rep)
	}
	sort.Slice(out.ByRepartidor, func(i, j int) bool {
		return out.ByRepartidor[i].Repartidor < out.ByRepartidor[j].Repartidor
	})

	appendRoute := func(id uuid.UUID) {
		if route, ok := byRoute[id]; ok {
			route.Descuadre = route.TotalMetalico.Sub(route.TotalIngreso)
			out.ByRoute = append(out.ByRoute, *route)
		}
	}
	for _, r := range routes {
		appendRoute(r.ID)
	}
	for _, id := range extraRoutes {
		appendRoute(id)
	}
	return out
}

// SummaryOutput represents the liquidation summary of a month.
type SummaryOutput struct {
	Month valueobject.MonthRange
	Summary
}

// SummaryUseCase computes the monthly liquidation summary of a hub.
type SummaryUseCase struct {
	hubRepo         adapter.HubRepository
	routeRepo       adapter.RouteRepository
	liquidationRepo adapter.LiquidationRepository
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	hubRepo adapter.HubRepository,
	routeRepo adapter.RouteRepository,
	liquidationRepo adapter.LiquidationRepository,
) *SummaryUseCase {
	return &SummaryUseCase{hubRepo: hubRepo, routeRepo: routeRepo, liquidationRepo: liquidationRepo}
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
	entries, err := uc.liquidationRepo.ListByHubAndRange(ctx, input.HubID, month.Start, month.End, input.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liquidations: %w", err)
	}
	return &SummaryOutput{Month: month, Summary: Summarize(routes, entries)}, nil
}

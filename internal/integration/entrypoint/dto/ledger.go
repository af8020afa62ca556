package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/usecase/kiloslitros"
	"github.com/hubmanager/backend/internal/application/usecase/liquidation"
	"github.com/hubmanager/backend/internal/domain/entity"
)

// LiquidationRequest is one daily cash settlement of a route.
// Amounts are accepted as JSON numbers or strings.
type LiquidationRequest struct {
	RouteID    string          `json:"route_id" binding:"required,uuid"`
	Date       string          `json:"date" binding:"required,ymd"`
	Repartidor string          `json:"repartidor" binding:"max=120"`
	Metalico   decimal.Decimal `json:"metalico"`
	Ingreso    decimal.Decimal `json:"ingreso"`
	Comentario string          `json:"comentario"`
}

// LiquidationResponse represents a stored liquidation entry. Diferencia is derived.
type LiquidationResponse struct {
	ID         string    `json:"id"`
	HubID      string    `json:"hub_id"`
	RouteID    string    `json:"route_id"`
	Date       string    `json:"date"`
	Repartidor string    `json:"repartidor"`
	Metalico   float64   `json:"metalico"`
	Ingreso    float64   `json:"ingreso"`
	Diferencia float64   `json:"diferencia"`
	Comentario string    `json:"comentario"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToLiquidationResponse converts a domain LiquidationEntry.
func ToLiquidationResponse(l *entity.LiquidationEntry) LiquidationResponse {
	return LiquidationResponse{
		ID:         l.ID.String(),
		HubID:      l.HubID.String(),
		RouteID:    l.RouteID.String(),
		Date:       l.Date,
		Repartidor: l.Repartidor,
		Metalico:   l.Metalico.InexactFloat64(),
		Ingreso:    l.Ingreso.InexactFloat64(),
		Diferencia: l.Diferencia().InexactFloat64(),
		Comentario: l.Comentario,
		UpdatedAt:  l.UpdatedAt,
	}
}

// ToLiquidationListResponse converts a list of liquidation entries.
func ToLiquidationListResponse(entries []*entity.LiquidationEntry) []LiquidationResponse {
	out := make([]LiquidationResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToLiquidationResponse(e))
	}
	return out
}

// DifferenceResponse is one unbalanced liquidation.
type DifferenceResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	RouteID    string  `json:"route_id"`
	RouteName  string  `json:"route_name"`
	Repartidor string  `json:"repartidor"`
	Diferencia float64 `json:"diferencia"`
}

// RepartidorBalanceResponse is the balance of one repartidor.
type RepartidorBalanceResponse struct {
	Repartidor  string               `json:"repartidor"`
	Total       float64              `json:"total"`
	Estado      string               `json:"estado"`
	Diferencias []DifferenceResponse `json:"diferencias"`
}

// RouteBalanceResponse is the balance of one route.
type RouteBalanceResponse struct {
	RouteID              string               `json:"route_id"`
	RouteName            string               `json:"route_name"`
	TotalMetalico        float64              `json:"total_metalico"`
	TotalIngreso         float64              `json:"total_ingreso"`
	Descuadre            float64              `json:"descuadre"`
	DescuadresDetectados []DifferenceResponse `json:"descuadres_detectados"`
}

// LiquidationSummaryResponse is the monthly liquidation summary.
type LiquidationSummaryResponse struct {
	Year         int                         `json:"year"`
	Month        int                         `json:"month"`
	ByRepartidor []RepartidorBalanceResponse `json:"by_repartidor"`
	ByRoute      []RouteBalanceResponse      `json:"by_route"`
}

func toDifferences(diffs []liquidation.Difference) []DifferenceResponse {
	out := make([]DifferenceResponse, 0, len(diffs))
	for _, d := range diffs {
		out = append(out, DifferenceResponse{
			ID:         d.EntryID.String(),
			Date:       d.Date,
			RouteID:    d.RouteID.String(),
			RouteName:  d.RouteName,
			Repartidor: d.Repartidor,
			Diferencia: d.Diferencia.InexactFloat64(),
		})
	}
	return out
}

// ToLiquidationSummaryResponse converts the liquidation summary output.
func ToLiquidationSummaryResponse(out *liquidation.SummaryOutput) LiquidationSummaryResponse {
	resp := LiquidationSummaryResponse{
		Year:         out.Month.Year,
		Month:        out.Month.Month,
		ByRepartidor: make([]RepartidorBalanceResponse, 0, len(out.ByRepartidor)),
		ByRoute:      make([]RouteBalanceResponse, 0, len(out.ByRoute)),
	}
	for _, r := range out.ByRepartidor {
		resp.ByRepartidor = append(resp.ByRepartidor, RepartidorBalanceResponse{
			Repartidor:  r.Repartidor,
			Total:       r.Total.InexactFloat64(),
			Estado:      r.Estado,
			Diferencias: toDifferences(r.Diferencias),
		})
	}
	for _, r := range out.ByRoute {
		resp.ByRoute = append(resp.ByRoute, RouteBalanceResponse{
			RouteID:              r.RouteID.String(),
			RouteName:            r.RouteName,
			TotalMetalico:        r.TotalMetalico.InexactFloat64(),
			TotalIngreso:         r.TotalIngreso.InexactFloat64(),
			Descuadre:            r.Descuadre.InexactFloat64(),
			DescuadresDetectados: toDifferences(r.DescuadresDetectados),
		})
	}
	return resp
}

// KilosLitrosRequest is the delivered volume of a repartidor on a route and day.
type KilosLitrosRequest struct {
	RouteID    string  `json:"route_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required,ymd"`
	Repartidor string  `json:"repartidor" binding:"max=120"`
	Clientes   int     `json:"clientes" binding:"min=0"`
	Kilos      float64 `json:"kilos" binding:"min=0"`
	Litros     float64 `json:"litros" binding:"min=0"`
	Bultos     int     `json:"bultos" binding:"min=0"`
}

// KilosLitrosResponse represents a stored kilos/litros entry.
type KilosLitrosResponse struct {
	ID         string    `json:"id"`
	HubID      string    `json:"hub_id"`
	RouteID    string    `json:"route_id"`
	Date       string    `json:"date"`
	Repartidor string    `json:"repartidor"`
	Clientes   int       `json:"clientes"`
	Kilos      float64   `json:"kilos"`
	Litros     float64   `json:"litros"`
	Bultos     int       `json:"bultos"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToKilosLitrosResponse converts a domain KilosLitrosEntry.
func ToKilosLitrosResponse(k *entity.KilosLitrosEntry) KilosLitrosResponse {
	return KilosLitrosResponse{
		ID:         k.ID.String(),
		HubID:      k.HubID.String(),
		RouteID:    k.RouteID.String(),
		Date:       k.Date,
		Repartidor: k.Repartidor,
		Clientes:   k.Clientes,
		Kilos:      k.Kilos,
		Litros:     k.Litros,
		Bultos:     k.Bultos,
		UpdatedAt:  k.UpdatedAt,
	}
}

// ToKilosLitrosListResponse converts a list of kilos/litros entries.
func ToKilosLitrosListResponse(entries []*entity.KilosLitrosEntry) []KilosLitrosResponse {
	out := make([]KilosLitrosResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToKilosLitrosResponse(e))
	}
	return out
}

// MeasuresResponse holds the four volume figures.
type MeasuresResponse struct {
	Clientes int     `json:"clientes"`
	Kilos    float64 `json:"kilos"`
	Litros   float64 `json:"litros"`
	Bultos   int     `json:"bultos"`
}

// RepartidorMeasuresResponse is the volume of one repartidor.
type RepartidorMeasuresResponse struct {
	Repartidor string `json:"repartidor"`
	MeasuresResponse
}

// RouteMeasuresResponse is the volume of one route.
type RouteMeasuresResponse struct {
	RouteID   string `json:"route_id"`
	RouteName string `json:"route_name"`
	MeasuresResponse
}

// KilosLitrosSummaryResponse is the monthly volume summary.
type KilosLitrosSummaryResponse struct {
	Year         int                          `json:"year"`
	Month        int                          `json:"month"`
	Totals       MeasuresResponse             `json:"totals"`
	ByRepartidor []RepartidorMeasuresResponse `json:"by_repartidor"`
	ByRoute      []RouteMeasuresResponse      `json:"by_route"`
}

func toMeasures(m kiloslitros.Measures) MeasuresResponse {
	return MeasuresResponse{Clientes: m.Clientes, Kilos: m.Kilos, Litros: m.Litros, Bultos: m.Bultos}
}

// ToKilosLitrosSummaryResponse converts the kilos/litros summary output.
func ToKilosLitrosSummaryResponse(out *kiloslitros.SummaryOutput) KilosLitrosSummaryResponse {
	resp := KilosLitrosSummaryResponse{
		Year:         out.Month.Year,
		Month:        out.Month.Month,
		Totals:       toMeasures(out.Totals),
		ByRepartidor: make([]RepartidorMeasuresResponse, 0, len(out.ByRepartidor)),
		ByRoute:      make([]RouteMeasuresResponse, 0, len(out.ByRoute)),
	}
	for _, r := range out.ByRepartidor {
		resp.ByRepartidor = append(resp.ByRepartidor, RepartidorMeasuresResponse{
			Repartidor:       r.Repartidor,
			MeasuresResponse: toMeasures(r.Measures),
		})
	}
	for _, r := range out.ByRoute {
		resp.ByRoute = append(resp.ByRoute, RouteMeasuresResponse{
			RouteID:          r.RouteID.String(),
			RouteName:        r.RouteName,
			MeasuresResponse: toMeasures(r.Measures),
		})
	}
	return resp
}

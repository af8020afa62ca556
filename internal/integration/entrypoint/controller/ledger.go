package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/usecase/kiloslitros"
	"github.com/hubmanager/backend/internal/application/usecase/liquidation"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// monthQuery binds the hub id, month and optional route filter of a ledger read.
func monthQuery(ctx *gin.Context, now time.Time) (id uuid.UUID, year, month int, routeID *uuid.UUID, ok bool) {
	id, ok = hubID(ctx)
	if !ok {
		return uuid.Nil, 0, 0, nil, false
	}
	var query dto.MonthQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindError(ctx, err)
		return uuid.Nil, 0, 0, nil, false
	}
	year, month = query.Resolve(now)
	return id, year, month, optionalUUID(query.RouteID), true
}

// LiquidationController handles the daily cash settlements of a hub.
type LiquidationController struct {
	listUseCase    *liquidation.ListUseCase
	upsertUseCase  *liquidation.UpsertUseCase
	bulkUseCase    *liquidation.BulkUpsertUseCase
	deleteUseCase  *liquidation.DeleteUseCase
	summaryUseCase *liquidation.SummaryUseCase
	now            func() time.Time
}

// NewLiquidationController creates a new liquidation controller instance.
func NewLiquidationController(
	listUseCase *liquidation.ListUseCase,
	upsertUseCase *liquidation.UpsertUseCase,
	bulkUseCase *liquidation.BulkUpsertUseCase,
	deleteUseCase *liquidation.DeleteUseCase,
	summaryUseCase *liquidation.SummaryUseCase,
) *LiquidationController {
	return &LiquidationController{
		listUseCase:    listUseCase,
		upsertUseCase:  upsertUseCase,
		bulkUseCase:    bulkUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		now:            time.Now,
	}
}

func toLiquidationInput(req dto.LiquidationRequest) liquidation.EntryInput {
	routeID, _ := uuid.Parse(req.RouteID)
	return liquidation.EntryInput{
		RouteID:    routeID,
		Date:       req.Date,
		Repartidor: req.Repartidor,
		Metalico:   req.Metalico,
		Ingreso:    req.Ingreso,
		Comentario: req.Comentario,
	}
}

// List handles GET /hubs/:id/liquidations requests.
func (c *LiquidationController) List(ctx *gin.Context) {
	id, year, month, routeID, ok := monthQuery(ctx, c.now())
	if !ok {
		return
	}
	output, err := c.listUseCase.Execute(ctx.Request.Context(), liquidation.MonthInput{
		HubID: id, Year: year, Month: month, RouteID: routeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToLiquidationListResponse(output.Entries))
}

// Upsert handles POST /hubs/:id/liquidations requests.
// An entry for the same route and date is replaced.
func (c *LiquidationController) Upsert(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.LiquidationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	entry, err := c.upsertUseCase.Execute(ctx.Request.Context(), liquidation.UpsertInput{
		HubID: id,
		Entry: toLiquidationInput(req),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToLiquidationResponse(entry))
}

// BulkUpsert handles POST /hubs/:id/liquidations/bulk requests. The body is a JSON array.
func (c *LiquidationController) BulkUpsert(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req []dto.LiquidationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	entries := make([]liquidation.EntryInput, 0, len(req))
	for _, r := range req {
		entries = append(entries, toLiquidationInput(r))
	}
	output, err := c.bulkUseCase.Execute(ctx.Request.Context(), liquidation.BulkUpsertInput{
		HubID:   id,
		Entries: entries,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Message: "Liquidaciones guardadas", Count: output.Count})
}

// Delete handles DELETE /hubs/:id/liquidations/:lid requests.
func (c *LiquidationController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx, "lid", domainerror.NewLiquidationNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, entryID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Liquidación eliminada"})
}

// Summary handles GET /hubs/:id/liquidations/summary requests.
func (c *LiquidationController) Summary(ctx *gin.Context) {
	id, year, month, routeID, ok := monthQuery(ctx, c.now())
	if !ok {
		return
	}
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), liquidation.MonthInput{
		HubID: id, Year: year, Month: month, RouteID: routeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToLiquidationSummaryResponse(output))
}

// KilosLitrosController handles the delivered volume records of a hub.
type KilosLitrosController struct {
	listUseCase    *kiloslitros.ListUseCase
	upsertUseCase  *kiloslitros.UpsertUseCase
	bulkUseCase    *kiloslitros.BulkUpsertUseCase
	deleteUseCase  *kiloslitros.DeleteUseCase
	summaryUseCase *kiloslitros.SummaryUseCase
	now            func() time.Time
}

// NewKilosLitrosController creates a new kilos/litros controller instance.
func NewKilosLitrosController(
	listUseCase *kiloslitros.ListUseCase,
	upsertUseCase *kiloslitros.UpsertUseCase,
	bulkUseCase *kiloslitros.BulkUpsertUseCase,
	deleteUseCase *kiloslitros.DeleteUseCase,
	summaryUseCase *kiloslitros.SummaryUseCase,
) *KilosLitrosController {
	return &KilosLitrosController{
		listUseCase:    listUseCase,
		upsertUseCase:  upsertUseCase,
		bulkUseCase:    bulkUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		now:            time.Now,
	}
}

func toKilosLitrosInput(req dto.KilosLitrosRequest) kiloslitros.EntryInput {
	routeID, _ := uuid.Parse(req.RouteID)
	return kiloslitros.EntryInput{
		RouteID:    routeID,
		Date:       req.Date,
		Repartidor: req.Repartidor,
		Clientes:   req.Clientes,
		Kilos:      req.Kilos,
		Litros:     req.Litros,
		Bultos:     req.Bultos,
	}
}

// List handles GET /hubs/:id/kilos-litros requests.
func (c *KilosLitrosController) List(ctx *gin.Context) {
	id, year, month, routeID, ok := monthQuery(ctx, c.now())
	if !ok {
		return
	}
	output, err := c.listUseCase.Execute(ctx.Request.Context(), kiloslitros.MonthInput{
		HubID: id, Year: year, Month: month, RouteID: routeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToKilosLitrosListResponse(output.Entries))
}

// Upsert handles POST /hubs/:id/kilos-litros requests.
func (c *KilosLitrosController) Upsert(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.KilosLitrosRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	entry, err := c.upsertUseCase.Execute(ctx.Request.Context(), kiloslitros.UpsertInput{
		HubID: id,
		Entry: toKilosLitrosInput(req),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToKilosLitrosResponse(entry))
}

// BulkUpsert handles POST /hubs/:id/kilos-litros/bulk requests. The body is a JSON array.
func (c *KilosLitrosController) BulkUpsert(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req []dto.KilosLitrosRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	entries := make([]kiloslitros.EntryInput, 0, len(req))
	for _, r := range req {
		entries = append(entries, toKilosLitrosInput(r))
	}
	output, err := c.bulkUseCase.Execute(ctx.Request.Context(), kiloslitros.BulkUpsertInput{
		HubID:   id,
		Entries: entries,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Message: "Registros guardados", Count: output.Count})
}

// Delete handles DELETE /hubs/:id/kilos-litros/:kid requests.
func (c *KilosLitrosController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx, "kid", domainerror.NewKilosLitrosNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, entryID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Registro eliminado"})
}

// Summary handles GET /hubs/:id/kilos-litros/summary requests.
func (c *KilosLitrosController) Summary(ctx *gin.Context) {
	id, year, month, routeID, ok := monthQuery(ctx, c.now())
	if !ok {
		return
	}
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), kiloslitros.MonthInput{
		HubID: id, Year: year, Month: month, RouteID: routeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToKilosLitrosSummaryResponse(output))
}

// SetClock replaces the clock used to default the month query.
func (c *LiquidationController) SetClock(now func() time.Time) {
	c.now = now
}

// SetClock replaces the clock used to default the month query.
func (c *KilosLitrosController) SetClock(now func() time.Time) {
	c.now = now
}

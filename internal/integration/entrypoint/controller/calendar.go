package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/internal/application/usecase/holiday"
	"github.com/hubmanager/backend/internal/application/usecase/restriction"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// HolidayController handles the holiday calendar of a hub.
type HolidayController struct {
	resolveUseCase *holiday.ResolveUseCase
	createUseCase  *holiday.CreateUseCase
	deleteUseCase  *holiday.DeleteUseCase
	now            func() time.Time
}

// NewHolidayController creates a new holiday controller instance.
func NewHolidayController(
	resolveUseCase *holiday.ResolveUseCase,
	createUseCase *holiday.CreateUseCase,
	deleteUseCase *holiday.DeleteUseCase,
) *HolidayController {
	return &HolidayController{
		resolveUseCase: resolveUseCase,
		createUseCase:  createUseCase,
		deleteUseCase:  deleteUseCase,
		now:            time.Now,
	}
}

// List handles GET /hubs/:id/holidays requests.
func (c *HolidayController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var query dto.HolidayQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindError(ctx, err)
		return
	}
	year := c.now().Year()
	if query.Year != nil {
		year = *query.Year
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), holiday.ResolveInput{HubID: id, Year: year})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHolidayCalendarResponse(output))
}

// Create handles POST /hubs/:id/holidays requests.
func (c *HolidayController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.HolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	h, err := c.createUseCase.Execute(ctx.Request.Context(), holiday.CreateInput{
		HubID: id,
		Date:  req.Date,
		Name:  req.Name,
		Type:  entity.HolidayType(req.Type),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHolidayResponse(h))
}

// Delete handles DELETE /hubs/:id/holidays/:holiday_id requests.
// The id is kept as text so preset ids can be rejected explicitly.
func (c *HolidayController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, ctx.Param("holiday_id")); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Festivo eliminado"})
}

// RestrictionController handles the low emission zone windows of a hub.
type RestrictionController struct {
	listUseCase   *restriction.ListUseCase
	createUseCase *restriction.CreateUseCase
	updateUseCase *restriction.UpdateUseCase
	deleteUseCase *restriction.DeleteUseCase
}

// NewRestrictionController creates a new time restriction controller instance.
func NewRestrictionController(
	listUseCase *restriction.ListUseCase,
	createUseCase *restriction.CreateUseCase,
	updateUseCase *restriction.UpdateUseCase,
	deleteUseCase *restriction.DeleteUseCase,
) *RestrictionController {
	return &RestrictionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /hubs/:id/time-restrictions requests.
func (c *RestrictionController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	restrictions, err := c.listUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRestrictionListResponse(restrictions))
}

// Create handles POST /hubs/:id/time-restrictions requests.
func (c *RestrictionController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.RestrictionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	r, err := c.createUseCase.Execute(ctx.Request.Context(), restriction.CreateInput{
		HubID:   id,
		Zona:    req.Zona,
		Horario: req.Horario,
		Dias:    req.Dias,
		AplicaA: entity.AplicaA(req.AplicaA),
		Notas:   req.Notas,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRestrictionResponse(r))
}

// Update handles PUT /hubs/:id/time-restrictions/:tid requests.
func (c *RestrictionController) Update(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	restrictionID, ok := pathID(ctx, "tid", domainerror.NewTimeRestrictionNotFoundError)
	if !ok {
		return
	}
	var req dto.UpdateRestrictionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	var aplicaA *entity.AplicaA
	if req.AplicaA != nil {
		a := entity.AplicaA(*req.AplicaA)
		aplicaA = &a
	}
	r, err := c.updateUseCase.Execute(ctx.Request.Context(), restriction.UpdateInput{
		HubID:         id,
		RestrictionID: restrictionID,
		Zona:          req.Zona,
		Horario:       req.Horario,
		Dias:          req.Dias,
		AplicaA:       aplicaA,
		Notas:         req.Notas,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRestrictionResponse(r))
}

// Delete handles DELETE /hubs/:id/time-restrictions/:tid requests.
func (c *RestrictionController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	restrictionID, ok := pathID(ctx, "tid", domainerror.NewTimeRestrictionNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, restrictionID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Restricción eliminada"})
}

// SetClock replaces the clock used to default the year query.
func (c *HolidayController) SetClock(now func() time.Time) {
	c.now = now
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/usecase/incident"
	"github.com/hubmanager/backend/internal/application/usecase/vehicle"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// VehicleController handles the vehicles of a hub.
type VehicleController struct {
	listUseCase   *vehicle.ListVehiclesUseCase
	createUseCase *vehicle.CreateVehicleUseCase
	updateUseCase *vehicle.UpdateVehicleUseCase
	deleteUseCase *vehicle.DeleteVehicleUseCase
}

// NewVehicleController creates a new vehicle controller instance.
func NewVehicleController(
	listUseCase *vehicle.ListVehiclesUseCase,
	createUseCase *vehicle.CreateVehicleUseCase,
	updateUseCase *vehicle.UpdateVehicleUseCase,
	deleteUseCase *vehicle.DeleteVehicleUseCase,
) *VehicleController {
	return &VehicleController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /hubs/:id/vehicles requests.
func (c *VehicleController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	vehicles, err := c.listUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToVehicleListResponse(vehicles))
}

// Create handles POST /hubs/:id/vehicles requests.
func (c *VehicleController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.CreateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	v, err := c.createUseCase.Execute(ctx.Request.Context(), vehicle.CreateVehicleInput{
		HubID:       id,
		Plate:       req.Plate,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(v))
}

// Update handles PUT /hubs/:id/vehicles/:vid requests.
func (c *VehicleController) Update(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	vehicleID, ok := pathID(ctx, "vid", domainerror.NewVehicleNotFoundError)
	if !ok {
		return
	}
	var req dto.UpdateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	v, err := c.updateUseCase.Execute(ctx.Request.Context(), vehicle.UpdateVehicleInput{
		HubID:       id,
		VehicleID:   vehicleID,
		Plate:       req.Plate,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(v))
}

// Delete handles DELETE /hubs/:id/vehicles/:vid requests. Incidents of the vehicle go with it.
func (c *VehicleController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	vehicleID, ok := pathID(ctx, "vid", domainerror.NewVehicleNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, vehicleID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehículo eliminado"})
}

// IncidentController handles vehicle incidents of a hub.
type IncidentController struct {
	listUseCase    *incident.ListIncidentsUseCase
	createUseCase  *incident.CreateIncidentUseCase
	updateUseCase  *incident.UpdateIncidentUseCase
	deleteUseCase  *incident.DeleteIncidentUseCase
	summaryUseCase *incident.SummaryUseCase
}

// NewIncidentController creates a new incident controller instance.
func NewIncidentController(
	listUseCase *incident.ListIncidentsUseCase,
	createUseCase *incident.CreateIncidentUseCase,
	updateUseCase *incident.UpdateIncidentUseCase,
	deleteUseCase *incident.DeleteIncidentUseCase,
	summaryUseCase *incident.SummaryUseCase,
) *IncidentController {
	return &IncidentController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// List handles GET /hubs/:id/incidents requests, optionally filtered by vehicle_id.
func (c *IncidentController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var query dto.IncidentQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindError(ctx, err)
		return
	}

	incidents, err := c.listUseCase.Execute(ctx.Request.Context(), incident.ListIncidentsInput{
		HubID:     id,
		VehicleID: optionalUUID(query.VehicleID),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIncidentListResponse(incidents))
}

// Create handles POST /hubs/:id/incidents requests.
func (c *IncidentController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.CreateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}
	vehicleID, _ := uuid.Parse(req.VehicleID)

	i, err := c.createUseCase.Execute(ctx.Request.Context(), incident.CreateIncidentInput{
		HubID:       id,
		VehicleID:   vehicleID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Cost:        req.Cost,
		Km:          req.Km,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIncidentResponse(i))
}

// Update handles PUT /hubs/:id/incidents/:iid requests.
func (c *IncidentController) Update(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	incidentID, ok := pathID(ctx, "iid", domainerror.NewIncidentNotFoundError)
	if !ok {
		return
	}
	var req dto.UpdateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	i, err := c.updateUseCase.Execute(ctx.Request.Context(), incident.UpdateIncidentInput{
		HubID:       id,
		IncidentID:  incidentID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Cost:        req.Cost,
		Km:          req.Km,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIncidentResponse(i))
}

// Delete handles DELETE /hubs/:id/incidents/:iid requests.
func (c *IncidentController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	incidentID, ok := pathID(ctx, "iid", domainerror.NewIncidentNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, incidentID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Incidencia eliminada"})
}

// Summary handles GET /hubs/:id/incidents/summary requests.
func (c *IncidentController) Summary(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIncidentSummaryResponse(output))
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/internal/application/usecase/employee"
	"github.com/hubmanager/backend/internal/application/usecase/hub"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// HubController handles hub endpoints.
type HubController struct {
	listUseCase   *hub.ListHubsUseCase
	getUseCase    *hub.GetHubUseCase
	createUseCase *hub.CreateHubUseCase
	updateUseCase *hub.UpdateHubUseCase
	deleteUseCase *hub.DeleteHubUseCase
}

// NewHubController creates a new hub controller instance.
func NewHubController(
	listUseCase *hub.ListHubsUseCase,
	getUseCase *hub.GetHubUseCase,
	createUseCase *hub.CreateHubUseCase,
	updateUseCase *hub.UpdateHubUseCase,
	deleteUseCase *hub.DeleteHubUseCase,
) *HubController {
	return &HubController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /hubs requests.
func (c *HubController) List(ctx *gin.Context) {
	hubs, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHubListResponse(hubs))
}

// Get handles GET /hubs/:id requests.
func (c *HubController) Get(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	h, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHubResponse(h))
}

// Create handles POST /hubs requests.
func (c *HubController) Create(ctx *gin.Context) {
	var req dto.CreateHubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	h, err := c.createUseCase.Execute(ctx.Request.Context(), hub.CreateHubInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHubResponse(h))
}

// Update handles PUT /hubs/:id requests.
func (c *HubController) Update(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateHubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	h, err := c.updateUseCase.Execute(ctx.Request.Context(), hub.UpdateHubInput{
		HubID:       id,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHubResponse(h))
}

// Delete handles DELETE /hubs/:id requests.
func (c *HubController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Hub eliminado"})
}

// EmployeeController handles the employees of a hub.
type EmployeeController struct {
	listUseCase   *employee.ListEmployeesUseCase
	createUseCase *employee.CreateEmployeeUseCase
	updateUseCase *employee.UpdateEmployeeUseCase
	deleteUseCase *employee.DeleteEmployeeUseCase
}

// NewEmployeeController creates a new employee controller instance.
func NewEmployeeController(
	listUseCase *employee.ListEmployeesUseCase,
	createUseCase *employee.CreateEmployeeUseCase,
	updateUseCase *employee.UpdateEmployeeUseCase,
	deleteUseCase *employee.DeleteEmployeeUseCase,
) *EmployeeController {
	return &EmployeeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /hubs/:id/employees requests.
func (c *EmployeeController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	employees, err := c.listUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees))
}

// Create handles POST /hubs/:id/employees requests.
func (c *EmployeeController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	e, err := c.createUseCase.Execute(ctx.Request.Context(), employee.CreateEmployeeInput{
		HubID:    id,
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(e))
}

// Update handles PUT /hubs/:id/employees/:eid requests.
func (c *EmployeeController) Update(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	employeeID, ok := pathID(ctx, "eid", domainerror.NewEmployeeNotFoundError)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	e, err := c.updateUseCase.Execute(ctx.Request.Context(), employee.UpdateEmployeeInput{
		HubID:      id,
		EmployeeID: employeeID,
		Name:       req.Name,
		Position:   req.Position,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(e))
}

// Delete handles DELETE /hubs/:id/employees/:eid requests.
func (c *EmployeeController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	employeeID, ok := pathID(ctx, "eid", domainerror.NewEmployeeNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, employeeID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Empleado eliminado"})
}

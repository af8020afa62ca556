package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/internal/application/usecase/contact"
	"github.com/hubmanager/backend/internal/application/usecase/purchase"
	"github.com/hubmanager/backend/internal/application/usecase/route"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// PurchaseController handles the supply purchases of a hub.
type PurchaseController struct {
	listUseCase   *purchase.ListPurchasesUseCase
	createUseCase *purchase.CreatePurchaseUseCase
	updateUseCase *purchase.UpdatePurchaseUseCase
	deleteUseCase *purchase.DeletePurchaseUseCase
}

// NewPurchaseController creates a new purchase controller instance.
func NewPurchaseController(
	listUseCase *purchase.ListPurchasesUseCase,
	createUseCase *purchase.CreatePurchaseUseCase,
	updateUseCase *purchase.UpdatePurchaseUseCase,
	deleteUseCase *purchase.DeletePurchaseUseCase,
) *PurchaseController {
	return &PurchaseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /hubs/:id/purchases requests.
func (c *PurchaseController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	purchases, err := c.listUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(purchases))
}

// Create handles POST /hubs/:id/purchases requests.
func (c *PurchaseController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	p, err := c.createUseCase.Execute(ctx.Request.Context(), purchase.CreatePurchaseInput{
		HubID:          id,
		Item:           req.Item,
		Specifications: req.Specifications,
		Supplier:       req.Supplier,
		Price:          req.Price,
		Quantity:       req.Quantity,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}

// Update handles PUT /hubs/:id/purchases/:pid requests.
func (c *PurchaseController) Update(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	purchaseID, ok := pathID(ctx, "pid", domainerror.NewPurchaseNotFoundError)
	if !ok {
		return
	}
	var req dto.UpdatePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	p, err := c.updateUseCase.Execute(ctx.Request.Context(), purchase.UpdatePurchaseInput{
		HubID:          id,
		PurchaseID:     purchaseID,
		Item:           req.Item,
		Specifications: req.Specifications,
		Supplier:       req.Supplier,
		Price:          req.Price,
		Quantity:       req.Quantity,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}

// Delete handles DELETE /hubs/:id/purchases/:pid requests.
func (c *PurchaseController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	purchaseID, ok := pathID(ctx, "pid", domainerror.NewPurchaseNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, purchaseID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Compra eliminada"})
}

// ContactController handles the phone book of a hub.
type ContactController struct {
	listUseCase   *contact.ListContactsUseCase
	createUseCase *contact.CreateContactUseCase
	updateUseCase *contact.UpdateContactUseCase
	deleteUseCase *contact.DeleteContactUseCase
}

// NewContactController creates a new contact controller instance.
func NewContactController(
	listUseCase *contact.ListContactsUseCase,
	createUseCase *contact.CreateContactUseCase,
	updateUseCase *contact.UpdateContactUseCase,
	deleteUseCase *contact.DeleteContactUseCase,
) *ContactController {
	return &ContactController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /hubs/:id/contacts requests.
func (c *ContactController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	contacts, err := c.listUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToContactListResponse(contacts))
}

// Create handles POST /hubs/:id/contacts requests.
func (c *ContactController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	ct, err := c.createUseCase.Execute(ctx.Request.Context(), contact.CreateContactInput{
		HubID:    id,
		Name:     req.Name,
		Position: req.Position,
		Phone:    req.Phone,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToContactResponse(ct))
}

// Update handles PUT /hubs/:id/contacts/:cid requests.
func (c *ContactController) Update(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	contactID, ok := pathID(ctx, "cid", domainerror.NewContactNotFoundError)
	if !ok {
		return
	}
	var req dto.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	ct, err := c.updateUseCase.Execute(ctx.Request.Context(), contact.UpdateContactInput{
		HubID:     id,
		ContactID: contactID,
		Name:      req.Name,
		Position:  req.Position,
		Phone:     req.Phone,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToContactResponse(ct))
}

// Delete handles DELETE /hubs/:id/contacts/:cid requests.
func (c *ContactController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	contactID, ok := pathID(ctx, "cid", domainerror.NewContactNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, contactID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Contacto eliminado"})
}

// RouteController handles the delivery routes of a hub.
type RouteController struct {
	listUseCase   *route.ListRoutesUseCase
	createUseCase *route.CreateRouteUseCase
	deleteUseCase *route.DeleteRouteUseCase
}

// NewRouteController creates a new route controller instance.
func NewRouteController(
	listUseCase *route.ListRoutesUseCase,
	createUseCase *route.CreateRouteUseCase,
	deleteUseCase *route.DeleteRouteUseCase,
) *RouteController {
	return &RouteController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /hubs/:id/routes requests.
func (c *RouteController) List(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	routes, err := c.listUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRouteListResponse(routes))
}

// Create handles POST /hubs/:id/routes requests.
func (c *RouteController) Create(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.RouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	r, err := c.createUseCase.Execute(ctx.Request.Context(), route.CreateRouteInput{HubID: id, Name: req.Name})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRouteResponse(r))
}

// Delete handles DELETE /hubs/:id/routes/:rid requests.
// Liquidations and kilos/litros entries of the route are removed with it.
func (c *RouteController) Delete(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	routeID, ok := pathID(ctx, "rid", domainerror.NewRouteNotFoundError)
	if !ok {
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, routeID); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Ruta eliminada"})
}

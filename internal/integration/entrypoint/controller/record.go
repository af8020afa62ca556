package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/record"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
	"github.com/hubmanager/backend/internal/integration/entrypoint/middleware"
)

// RecordController handles generic records, both global and hub scoped.
type RecordController struct {
	listUseCase    *record.ListUseCase
	createUseCase  *record.CreateUseCase
	updateUseCase  *record.UpdateUseCase
	deleteUseCase  *record.DeleteUseCase
	uploadUseCase  *record.UploadUseCase
	maxUploadBytes int64
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListUseCase,
	createUseCase *record.CreateUseCase,
	updateUseCase *record.UpdateUseCase,
	deleteUseCase *record.DeleteUseCase,
	uploadUseCase *record.UploadUseCase,
	maxUploadBytes int64,
) *RecordController {
	return &RecordController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		uploadUseCase:  uploadUseCase,
		maxUploadBytes: maxUploadBytes,
	}
}

func recordID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	return pathID(ctx, name, domainerror.NewRecordNotFoundError)
}

// List handles GET /records requests, filtered by hub_id and category.
func (c *RecordController) List(ctx *gin.Context) {
	var query dto.RecordQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindError(ctx, err)
		return
	}
	c.list(ctx, adapter.RecordFilter{HubID: optionalUUID(query.HubID), Category: query.Category})
}

// ListByHub handles GET /hubs/:id/records requests.
func (c *RecordController) ListByHub(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	c.list(ctx, adapter.RecordFilter{HubID: &id, Category: ctx.Query("category")})
}

func (c *RecordController) list(ctx *gin.Context, filter adapter.RecordFilter) {
	records, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(records))
}

// Create handles POST /records requests. The hub comes from the body.
func (c *RecordController) Create(ctx *gin.Context) {
	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}
	// hub_id is checked by the uuid binding
	id, _ := uuid.Parse(req.HubID)
	c.create(ctx, id, req.CreateHubRecordRequest)
}

// CreateForHub handles POST /hubs/:id/records requests.
func (c *RecordController) CreateForHub(ctx *gin.Context) {
	id, ok := hubID(ctx)
	if !ok {
		return
	}
	var req dto.CreateHubRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}
	c.create(ctx, id, req)
}

func (c *RecordController) create(ctx *gin.Context, hubID uuid.UUID, req dto.CreateHubRecordRequest) {
	createdBy, _ := middleware.GetUserIDFromContext(ctx)
	r, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateInput{
		HubID:       hubID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Data:        req.Data,
		CreatedBy:   createdBy,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecordResponse(r))
}

// Update handles PUT /records/:rid requests.
func (c *RecordController) Update(ctx *gin.Context) {
	id, ok := recordID(ctx, "rid")
	if !ok {
		return
	}
	c.update(ctx, id, nil)
}

// UpdateForHub handles PUT /hubs/:id/records/:rid requests.
func (c *RecordController) UpdateForHub(ctx *gin.Context) {
	hub, ok := hubID(ctx)
	if !ok {
		return
	}
	id, ok := recordID(ctx, "rid")
	if !ok {
		return
	}
	c.update(ctx, id, &hub)
}

func (c *RecordController) update(ctx *gin.Context, id uuid.UUID, hubID *uuid.UUID) {
	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}
	r, err := c.updateUseCase.Execute(ctx.Request.Context(), record.UpdateInput{
		RecordID:    id,
		HubID:       hubID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Data:        req.Data,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecordResponse(r))
}

// Delete handles DELETE /records/:rid requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	id, ok := recordID(ctx, "rid")
	if !ok {
		return
	}
	c.delete(ctx, record.DeleteInput{RecordID: id})
}

// DeleteForHub handles DELETE /hubs/:id/records/:rid requests.
func (c *RecordController) DeleteForHub(ctx *gin.Context) {
	hub, ok := hubID(ctx)
	if !ok {
		return
	}
	id, ok := recordID(ctx, "rid")
	if !ok {
		return
	}
	c.delete(ctx, record.DeleteInput{RecordID: id, HubID: &hub})
}

func (c *RecordController) delete(ctx *gin.Context, input record.DeleteInput) {
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Registro eliminado"})
}

// Upload handles POST /records/:rid/upload multipart requests with a "file" part.
func (c *RecordController) Upload(ctx *gin.Context) {
	id, ok := recordID(ctx, "rid")
	if !ok {
		return
	}
	if c.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		bindError(ctx, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		bindError(ctx, err)
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), record.UploadInput{
		RecordID: id,
		FileName: header.Filename,
		Content:  content,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UploadResponse{Message: "Archivo subido", FileName: output.FileName})
}

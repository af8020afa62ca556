package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/internal/application/usecase/user"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
	"github.com/hubmanager/backend/internal/integration/entrypoint/middleware"
)

// UserController handles the admin user management endpoints.
type UserController struct {
	listUseCase    *user.ListUsersUseCase
	approveUseCase *user.ApproveUserUseCase
	deleteUseCase  *user.DeleteUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	listUseCase *user.ListUsersUseCase,
	approveUseCase *user.ApproveUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
) *UserController {
	return &UserController{
		listUseCase:    listUseCase,
		approveUseCase: approveUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /admin/users requests.
func (c *UserController) List(ctx *gin.Context) {
	c.list(ctx, false)
}

// ListPending handles GET /admin/users/pending requests.
func (c *UserController) ListPending(ctx *gin.Context) {
	c.list(ctx, true)
}

func (c *UserController) list(ctx *gin.Context, pendingOnly bool) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), user.ListUsersInput{PendingOnly: pendingOnly})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// Approve handles POST /admin/users/:id/approve requests.
func (c *UserController) Approve(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id", domainerror.NewUserNotFoundError)
	if !ok {
		return
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Usuario aprobado",
		"user":    dto.ToUserResponse(output.User),
	})
}

// Reject handles POST /admin/users/:id/reject requests. A rejected registration is deleted.
func (c *UserController) Reject(ctx *gin.Context) {
	c.delete(ctx, "Usuario rechazado")
}

// Delete handles DELETE /admin/users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	c.delete(ctx, "Usuario eliminado")
}

func (c *UserController) delete(ctx *gin.Context, message string) {
	userID, ok := pathID(ctx, "id", domainerror.NewUserNotFoundError)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		UserID:  userID,
		ActorID: actorID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// statusForKind maps a domain error kind to its HTTP status.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindUnauthorized:
		return http.StatusUnauthorized
	case domainerror.KindForbidden:
		return http.StatusForbidden
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindConflict, domainerror.KindInvalidInput, domainerror.KindInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the response for a use case error.
func handleError(ctx *gin.Context, err error) {
	if domainErr, ok := domainerror.As(err); ok {
		ctx.JSON(statusForKind(domainErr.Kind), dto.ErrorResponse{
			Error: domainErr.Message,
			Code:  string(domainErr.Code),
		})
		return
	}

	slog.Error("Request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// bindError writes the response for a request that failed binding or validation.
func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeMissingFields),
		Details: err.Error(),
	})
}

// pathID parses a uuid path parameter. A malformed id is reported as the
// resource's not found error, since no such row can exist.
func pathID(ctx *gin.Context, name string, notFound func() *domainerror.DomainError) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		handleError(ctx, notFound())
		return uuid.Nil, false
	}
	return id, true
}

// hubID parses the :id hub path parameter.
func hubID(ctx *gin.Context) (uuid.UUID, bool) {
	return pathID(ctx, "id", domainerror.NewHubNotFoundError)
}

// optionalUUID parses an optional, already validated uuid query value.
func optionalUUID(value string) *uuid.UUID {
	if value == "" {
		return nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return &id
}

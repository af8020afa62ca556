package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/internal/application/usecase/catalog"
	"github.com/hubmanager/backend/internal/application/usecase/stats"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
)

// CatalogController serves the fixed catalogs and the global counters.
type CatalogController struct {
	categoriesUseCase   *catalog.ListCategoriesUseCase
	vehicleTypesUseCase *catalog.ListVehicleTypesUseCase
	statsUseCase        *stats.GetStatsUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	categoriesUseCase *catalog.ListCategoriesUseCase,
	vehicleTypesUseCase *catalog.ListVehicleTypesUseCase,
	statsUseCase *stats.GetStatsUseCase,
) *CatalogController {
	return &CatalogController{
		categoriesUseCase:   categoriesUseCase,
		vehicleTypesUseCase: vehicleTypesUseCase,
		statsUseCase:        statsUseCase,
	}
}

// Categories handles GET /categories requests.
func (c *CatalogController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(c.categoriesUseCase.Execute()))
}

// VehicleTypes handles GET /vehicle-types requests.
func (c *CatalogController) VehicleTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.vehicleTypesUseCase.Execute())
}

// Stats handles GET /stats requests.
func (c *CatalogController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output))
}

// Package catalog exposes the fixed record categories and vehicle types.
package catalog

import "github.com/hubmanager/backend/internal/domain/valueobject"

// ListCategoriesUseCase returns the record categories.
type ListCategoriesUseCase struct {
	catalog *valueobject.Catalog
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(catalog *valueobject.Catalog) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{catalog: catalog}
}

// Execute returns a copy of the categories.
func (uc *ListCategoriesUseCase) Execute() []valueobject.CategoryType {
	return uc.catalog.Categories()
}

// ListVehicleTypesUseCase returns the vehicle types.
type ListVehicleTypesUseCase struct {
	catalog *valueobject.Catalog
}

// NewListVehicleTypesUseCase creates a new ListVehicleTypesUseCase instance.
func NewListVehicleTypesUseCase(catalog *valueobject.Catalog) *ListVehicleTypesUseCase {
	return &ListVehicleTypesUseCase{catalog: catalog}
}

// Execute returns a copy of the vehicle types.
func (uc *ListVehicleTypesUseCase) Execute() []string {
	return uc.catalog.VehicleTypes()
}

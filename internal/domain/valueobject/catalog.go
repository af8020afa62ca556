package valueobject

// CategoryType is a generic record category with its UI icon name.
type CategoryType struct {
	Name string
	Icon string
}

// Catalog holds the fixed record categories and vehicle types.
// Built once at startup; accessors return copies.
type Catalog struct {
	categories   []CategoryType
	vehicleTypes []string
}

// NewCatalog builds a Catalog from the given tables.
func NewCatalog(categories []CategoryType, vehicleTypes []string) *Catalog {
	return &Catalog{
		categories:   append([]CategoryType(nil), categories...),
		vehicleTypes: append([]string(nil), vehicleTypes...),
	}
}

// DefaultCatalog returns the categories and vehicle types used by every hub.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]CategoryType{
			{Name: "Asistencias", Icon: "Wrench"},
			{Name: "Liquidaciones", Icon: "Banknote"},
			{Name: "Flota", Icon: "Truck"},
			{Name: "Historico de incidencias", Icon: "History"},
			{Name: "Repartos", Icon: "Package"},
			{Name: "Compras", Icon: "ShoppingCart"},
			{Name: "Kilos/Litros", Icon: "Scale"},
			{Name: "Contactos", Icon: "Users"},
		},
		[]string{"Moto", "Furgoneta", "Carrozado", "Trailer", "Camión", "MUS"},
	)
}

// Categories returns a copy of the category table.
func (c *Catalog) Categories() []CategoryType {
	return append([]CategoryType(nil), c.categories...)
}

// VehicleTypes returns a copy of the vehicle type table.
func (c *Catalog) VehicleTypes() []string {
	return append([]string(nil), c.vehicleTypes...)
}

// IsCategory reports whether name is a known category.
func (c *Catalog) IsCategory(name string) bool {
	for _, category := range c.categories {
		if category.Name == name {
			return true
		}
	}
	return false
}

// IsVehicleType reports whether vehicleType is in the catalog.
func (c *Catalog) IsVehicleType(vehicleType string) bool {
	for _, t := range c.vehicleTypes {
		if t == vehicleType {
			return true
		}
	}
	return false
}

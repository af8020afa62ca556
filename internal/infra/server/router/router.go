// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hubmanager/backend/internal/integration/entrypoint/controller"
	"github.com/hubmanager/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups every HTTP controller the router mounts.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	User        *controller.UserController
	Hub         *controller.HubController
	Employee    *controller.EmployeeController
	Attendance  *controller.AttendanceController
	Vehicle     *controller.VehicleController
	Incident    *controller.IncidentController
	Purchase    *controller.PurchaseController
	Contact     *controller.ContactController
	Route       *controller.RouteController
	Liquidation *controller.LiquidationController
	KilosLitros *controller.KilosLitrosController
	Holiday     *controller.HolidayController
	Restriction *controller.RestrictionController
	Record      *controller.RecordController
	Catalog     *controller.CatalogController
}

// Options configures the engine level middleware.
type Options struct {
	Environment    string
	AllowedOrigins []string
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(opts Options) *gin.Engine {
	switch opts.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Logger(), gin.Recovery())
	r.engine.Use(middleware.CORS(opts.AllowedOrigins))
	r.engine.Use(middleware.SecureHeaders(opts.Environment != "production"))

	api := r.engine.Group("/api")
	api.GET("/health", r.controllers.Health.Check)

	r.setupAuthRoutes(api)

	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	r.setupAdminRoutes(protected)
	r.setupHubRoutes(protected)
	r.setupRecordRoutes(protected)

	protected.GET("/categories", r.controllers.Catalog.Categories)
	protected.GET("/vehicle-types", r.controllers.Catalog.VehicleTypes)
	protected.GET("/stats", r.controllers.Catalog.Stats)

	return r.engine
}

// Engine returns the configured Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", r.controllers.Auth.Register)
		if r.loginRateLimiter != nil {
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.controllers.Auth.Login)
		} else {
			auth.POST("/login", r.controllers.Auth.Login)
		}
		auth.GET("/me", r.authMiddleware.Authenticate(), r.controllers.Auth.Me)
	}
}

func (r *Router) setupAdminRoutes(protected *gin.RouterGroup) {
	admin := protected.Group("/admin")
	admin.Use(r.authMiddleware.RequireAdmin())
	{
		admin.GET("/users", r.controllers.User.List)
		admin.GET("/users/pending", r.controllers.User.ListPending)
		admin.POST("/users/:id/approve", r.controllers.User.Approve)
		admin.POST("/users/:id/reject", r.controllers.User.Reject)
		admin.DELETE("/users/:id", r.controllers.User.Delete)
	}
}

// setupHubRoutes mounts the hub resource and every collection scoped to a hub.
func (r *Router) setupHubRoutes(protected *gin.RouterGroup) {
	requireAdmin := r.authMiddleware.RequireAdmin()
	c := r.controllers

	protected.GET("/hubs", c.Hub.List)
	protected.POST("/hubs", requireAdmin, c.Hub.Create)

	hub := protected.Group("/hubs/:id")
	{
		hub.GET("", c.Hub.Get)
		hub.PUT("", requireAdmin, c.Hub.Update)
		hub.DELETE("", requireAdmin, c.Hub.Delete)

		hub.GET("/employees", c.Employee.List)
		hub.POST("/employees", requireAdmin, c.Employee.Create)
		hub.PUT("/employees/:eid", requireAdmin, c.Employee.Update)
		hub.DELETE("/employees/:eid", requireAdmin, c.Employee.Delete)

		hub.GET("/attendance", c.Attendance.List)
		hub.POST("/attendance", c.Attendance.Save)
		hub.GET("/attendance/summary", c.Attendance.Summary)
		hub.GET("/attendance/export", c.Attendance.Export)

		hub.GET("/vehicles", c.Vehicle.List)
		hub.POST("/vehicles", c.Vehicle.Create)
		hub.PUT("/vehicles/:vid", c.Vehicle.Update)
		hub.DELETE("/vehicles/:vid", c.Vehicle.Delete)

		hub.GET("/incidents", c.Incident.List)
		hub.POST("/incidents", c.Incident.Create)
		hub.GET("/incidents/summary", c.Incident.Summary)
		hub.PUT("/incidents/:iid", c.Incident.Update)
		hub.DELETE("/incidents/:iid", c.Incident.Delete)

		hub.GET("/purchases", c.Purchase.List)
		hub.POST("/purchases", c.Purchase.Create)
		hub.PUT("/purchases/:pid", c.Purchase.Update)
		hub.DELETE("/purchases/:pid", c.Purchase.Delete)

		hub.GET("/contacts", c.Contact.List)
		hub.POST("/contacts", c.Contact.Create)
		hub.PUT("/contacts/:cid", c.Contact.Update)
		hub.DELETE("/contacts/:cid", c.Contact.Delete)

		hub.GET("/routes", c.Route.List)
		hub.POST("/routes", c.Route.Create)
		hub.DELETE("/routes/:rid", c.Route.Delete)

		hub.GET("/liquidations", c.Liquidation.List)
		hub.POST("/liquidations", c.Liquidation.Upsert)
		hub.POST("/liquidations/bulk", c.Liquidation.BulkUpsert)
		hub.GET("/liquidations/summary", c.Liquidation.Summary)
		hub.DELETE("/liquidations/:lid", c.Liquidation.Delete)

		hub.GET("/kilos-litros", c.KilosLitros.List)
		hub.POST("/kilos-litros", c.KilosLitros.Upsert)
		hub.POST("/kilos-litros/bulk", c.KilosLitros.BulkUpsert)
		hub.GET("/kilos-litros/summary", c.KilosLitros.Summary)
		hub.DELETE("/kilos-litros/:kid", c.KilosLitros.Delete)

		hub.GET("/holidays", c.Holiday.List)
		hub.POST("/holidays", c.Holiday.Create)
		hub.DELETE("/holidays/:holiday_id", c.Holiday.Delete)

		hub.GET("/time-restrictions", c.Restriction.List)
		hub.POST("/time-restrictions", c.Restriction.Create)
		hub.PUT("/time-restrictions/:tid", c.Restriction.Update)
		hub.DELETE("/time-restrictions/:tid", c.Restriction.Delete)

		hub.GET("/records", c.Record.ListByHub)
		hub.POST("/records", c.Record.CreateForHub)
		hub.PUT("/records/:rid", c.Record.UpdateForHub)
		hub.DELETE("/records/:rid", c.Record.DeleteForHub)
	}
}

func (r *Router) setupRecordRoutes(protected *gin.RouterGroup) {
	records := protected.Group("/records")
	{
		records.GET("", r.controllers.Record.List)
		records.POST("", r.controllers.Record.Create)
		records.PUT("/:rid", r.controllers.Record.Update)
		records.DELETE("/:rid", r.controllers.Record.Delete)
		records.POST("/:rid/upload", r.controllers.Record.Upload)
	}
}

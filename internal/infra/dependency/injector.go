// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/attendance"
	"github.com/hubmanager/backend/internal/application/usecase/auth"
	"github.com/hubmanager/backend/internal/application/usecase/catalog"
	"github.com/hubmanager/backend/internal/application/usecase/contact"
	"github.com/hubmanager/backend/internal/application/usecase/employee"
	"github.com/hubmanager/backend/internal/application/usecase/holiday"
	"github.com/hubmanager/backend/internal/application/usecase/hub"
	"github.com/hubmanager/backend/internal/application/usecase/incident"
	"github.com/hubmanager/backend/internal/application/usecase/kiloslitros"
	"github.com/hubmanager/backend/internal/application/usecase/liquidation"
	"github.com/hubmanager/backend/internal/application/usecase/purchase"
	"github.com/hubmanager/backend/internal/application/usecase/record"
	"github.com/hubmanager/backend/internal/application/usecase/restriction"
	"github.com/hubmanager/backend/internal/application/usecase/route"
	"github.com/hubmanager/backend/internal/application/usecase/stats"
	"github.com/hubmanager/backend/internal/application/usecase/user"
	"github.com/hubmanager/backend/internal/application/usecase/vehicle"
	"github.com/hubmanager/backend/internal/domain/valueobject"
	"github.com/hubmanager/backend/internal/infra/cache"
	"github.com/hubmanager/backend/internal/infra/seed"
	"github.com/hubmanager/backend/internal/infra/server/router"
	"github.com/hubmanager/backend/internal/integration/adapters"
	"github.com/hubmanager/backend/internal/integration/email"
	"github.com/hubmanager/backend/internal/integration/email/templates"
	"github.com/hubmanager/backend/internal/integration/entrypoint/controller"
	"github.com/hubmanager/backend/internal/integration/entrypoint/dto"
	"github.com/hubmanager/backend/internal/integration/entrypoint/middleware"
	"github.com/hubmanager/backend/internal/integration/export"
	"github.com/hubmanager/backend/internal/integration/persistence"
)

// Externals carries the dependencies that live outside the database.
// Nil fields fall back to in-process implementations.
type Externals struct {
	RateLimitStore adapter.RateLimitStore
	EmailSender    adapter.EmailSender
	DatabaseHealth controller.HealthCheck
	CacheHealth    controller.HealthCheck
	// Now overrides the clock of the month based summaries and the email outbox. Used by tests.
	Now func() time.Time
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	Seeder      *seed.Seeder
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, ext Externals) (*Injector, error) {
	if ext.RateLimitStore == nil {
		ext.RateLimitStore = cache.NewMemoryRateLimitStore()
	}
	if ext.EmailSender == nil {
		sender, err := newEmailSender(cfg.Email)
		if err != nil {
			return nil, err
		}
		ext.EmailSender = sender
	}
	if ext.DatabaseHealth == nil {
		ext.DatabaseHealth = func(ctx context.Context) bool {
			sqlDB, err := db.DB()
			return err == nil && sqlDB.PingContext(ctx) == nil
		}
	}

	// Static tables
	catalogTable := valueobject.DefaultCatalog()
	holidayCalendar := valueobject.SpanishHolidayCalendar()

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	hubRepo := persistence.NewHubRepository(db)
	employeeRepo := persistence.NewEmployeeRepository(db)
	routeRepo := persistence.NewRouteRepository(db)
	contactRepo := persistence.NewContactRepository(db)
	vehicleRepo := persistence.NewVehicleRepository(db)
	incidentRepo := persistence.NewIncidentRepository(db)
	attendanceRepo := persistence.NewAttendanceRepository(db)
	liquidationRepo := persistence.NewLiquidationRepository(db)
	kilosRepo := persistence.NewKilosLitrosRepository(db)
	holidayRepo := persistence.NewHolidayRepository(db)
	restrictionRepo := persistence.NewTimeRestrictionRepository(db)
	purchaseRepo := persistence.NewPurchaseRepository(db)
	recordRepo := persistence.NewRecordRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters
	passwordHasher := adapters.NewBcryptHasher(0)
	tokenService := adapters.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	phoneNormalizer := adapters.NewPhoneNormalizer(cfg.Phone.DefaultRegion)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL, ext.Now)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, ext.EmailSender, renderer, email.WorkerConfig{
		PollInterval:  cfg.Email.PollInterval,
		BatchSize:     cfg.Email.BatchSize,
		RetentionDays: email.DefaultWorkerConfig().RetentionDays,
	}, ext.Now)

	// Use cases
	upsertLiquidation := liquidation.NewUpsertUseCase(hubRepo, routeRepo, liquidationRepo)
	upsertKilos := kiloslitros.NewUpsertUseCase(hubRepo, routeRepo, kilosRepo)

	attendanceController := controller.NewAttendanceController(
		attendance.NewListAttendanceUseCase(hubRepo, employeeRepo, attendanceRepo),
		attendance.NewSaveAttendanceUseCase(hubRepo, employeeRepo, attendanceRepo),
		attendance.NewSummaryUseCase(hubRepo, employeeRepo, attendanceRepo),
		attendance.NewExportUseCase(hubRepo, employeeRepo, attendanceRepo, export.NewAttendanceExporter()),
	)
	liquidationController := controller.NewLiquidationController(
		liquidation.NewListUseCase(hubRepo, liquidationRepo),
		upsertLiquidation,
		liquidation.NewBulkUpsertUseCase(upsertLiquidation),
		liquidation.NewDeleteUseCase(liquidationRepo),
		liquidation.NewSummaryUseCase(hubRepo, routeRepo, liquidationRepo),
	)
	kilosController := controller.NewKilosLitrosController(
		kiloslitros.NewListUseCase(hubRepo, kilosRepo),
		upsertKilos,
		kiloslitros.NewBulkUpsertUseCase(upsertKilos),
		kiloslitros.NewDeleteUseCase(kilosRepo),
		kiloslitros.NewSummaryUseCase(hubRepo, routeRepo, kilosRepo),
	)
	holidayController := controller.NewHolidayController(
		holiday.NewResolveUseCase(hubRepo, holidayRepo, holidayCalendar),
		holiday.NewCreateUseCase(hubRepo, holidayRepo),
		holiday.NewDeleteUseCase(holidayRepo),
	)
	if ext.Now != nil {
		attendanceController.SetClock(ext.Now)
		liquidationController.SetClock(ext.Now)
		kilosController.SetClock(ext.Now)
		holidayController.SetClock(ext.Now)
	}

	controllers := router.Controllers{
		Health: controller.NewHealthController(ext.DatabaseHealth, ext.CacheHealth),
		Auth: controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordHasher, emailService, cfg.Email.AppBaseURL),
			auth.NewLoginUserUseCase(userRepo, passwordHasher, tokenService),
			auth.NewGetCurrentUserUseCase(userRepo),
		),
		User: controller.NewUserController(
			user.NewListUsersUseCase(userRepo),
			user.NewApproveUserUseCase(userRepo, emailService, cfg.Email.AppBaseURL),
			user.NewDeleteUserUseCase(userRepo),
		),
		Hub: controller.NewHubController(
			hub.NewListHubsUseCase(hubRepo),
			hub.NewGetHubUseCase(hubRepo),
			hub.NewCreateHubUseCase(hubRepo),
			hub.NewUpdateHubUseCase(hubRepo),
			hub.NewDeleteHubUseCase(hubRepo),
		),
		Employee: controller.NewEmployeeController(
			employee.NewListEmployeesUseCase(hubRepo, employeeRepo),
			employee.NewCreateEmployeeUseCase(hubRepo, employeeRepo),
			employee.NewUpdateEmployeeUseCase(employeeRepo),
			employee.NewDeleteEmployeeUseCase(employeeRepo),
		),
		Attendance: attendanceController,
		Vehicle: controller.NewVehicleController(
			vehicle.NewListVehiclesUseCase(hubRepo, vehicleRepo),
			vehicle.NewCreateVehicleUseCase(hubRepo, vehicleRepo, catalogTable),
			vehicle.NewUpdateVehicleUseCase(vehicleRepo, catalogTable),
			vehicle.NewDeleteVehicleUseCase(vehicleRepo),
		),
		Incident: controller.NewIncidentController(
			incident.NewListIncidentsUseCase(hubRepo, incidentRepo),
			incident.NewCreateIncidentUseCase(vehicleRepo, incidentRepo),
			incident.NewUpdateIncidentUseCase(incidentRepo),
			incident.NewDeleteIncidentUseCase(incidentRepo),
			incident.NewSummaryUseCase(hubRepo, vehicleRepo, incidentRepo, ext.Now),
		),
		Purchase: controller.NewPurchaseController(
			purchase.NewListPurchasesUseCase(hubRepo, purchaseRepo),
			purchase.NewCreatePurchaseUseCase(hubRepo, purchaseRepo),
			purchase.NewUpdatePurchaseUseCase(purchaseRepo),
			purchase.NewDeletePurchaseUseCase(purchaseRepo),
		),
		Contact: controller.NewContactController(
			contact.NewListContactsUseCase(hubRepo, contactRepo),
			contact.NewCreateContactUseCase(hubRepo, contactRepo, phoneNormalizer),
			contact.NewUpdateContactUseCase(contactRepo, phoneNormalizer),
			contact.NewDeleteContactUseCase(contactRepo),
		),
		Route: controller.NewRouteController(
			route.NewListRoutesUseCase(hubRepo, routeRepo),
			route.NewCreateRouteUseCase(hubRepo, routeRepo),
			route.NewDeleteRouteUseCase(routeRepo),
		),
		Liquidation: liquidationController,
		KilosLitros: kilosController,
		Holiday:     holidayController,
		Restriction: controller.NewRestrictionController(
			restriction.NewListUseCase(hubRepo, restrictionRepo),
			restriction.NewCreateUseCase(hubRepo, restrictionRepo),
			restriction.NewUpdateUseCase(restrictionRepo),
			restriction.NewDeleteUseCase(restrictionRepo),
		),
		Record: controller.NewRecordController(
			record.NewListUseCase(recordRepo),
			record.NewCreateUseCase(hubRepo, recordRepo, catalogTable),
			record.NewUpdateUseCase(recordRepo, catalogTable),
			record.NewDeleteUseCase(recordRepo),
			record.NewUploadUseCase(recordRepo),
			cfg.Server.MaxUploadBytes,
		),
		Catalog: controller.NewCatalogController(
			catalog.NewListCategoriesUseCase(catalogTable),
			catalog.NewListVehicleTypesUseCase(catalogTable),
			stats.NewGetStatsUseCase(hubRepo, employeeRepo, recordRepo, userRepo),
		),
	}

	if err := dto.RegisterValidators(catalogTable); err != nil {
		return nil, fmt.Errorf("binding validators: %w", err)
	}

	loginRateLimiter := middleware.NewRateLimiter(ext.RateLimitStore, middleware.LoginPolicy)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      router.NewRouter(controllers, loginRateLimiter, authMiddleware),
		EmailWorker: emailWorker,
		Seeder:      seed.NewSeeder(userRepo, hubRepo, restrictionRepo, passwordHasher),
	}, nil
}

// newEmailSender picks Resend when an API key is configured and the recording sender otherwise.
func newEmailSender(cfg config.EmailConfig) (adapter.EmailSender, error) {
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails will only be recorded in memory")
		return email.NewRecordingSender(), nil
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.FromName, cfg.FromEmail)
}

package routes

import (
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/http/handlers"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/http/middleware"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/config"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	administratorRepo := repositories.NewAdministratorRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	eventCrewRepo := repositories.NewEventCrewRepository(db)
	eventAttendeeRepo := repositories.NewEventAttendeeRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	receiptRepo := repositories.NewReceiptRepository(db)
	userCCInfoRepo := repositories.NewUserCCInfoRepository(db)
	clubFamilyRepo := repositories.NewClubFamilyRepository(db)
	facultyRepo := repositories.NewFacultyRepository(db)
	yearSessionRepo := repositories.NewYearSessionRepository(db)

	// Initialize services
	securityService := services.NewSecurityService(administratorRepo, eventCrewRepo, eventRepo, userCCInfoRepo)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo, securityService)
	eventCrewService := services.NewEventCrewService(eventCrewRepo, eventRepo, userRepo, securityService)
	eventAttendeeService := services.NewEventAttendeeService(eventAttendeeRepo, eventRepo, userRepo, securityService)
	budgetService := services.NewBudgetService(budgetRepo, eventRepo, securityService)
	transactionService := services.NewTransactionService(transactionRepo, receiptRepo, eventRepo, securityService)
	financeReportService := services.NewFinanceReportService(eventRepo, budgetRepo, transactionRepo)
	administratorService := services.NewAdministratorService(administratorRepo, userRepo, securityService)
	userCCInfoService := services.NewUserCCInfoService(userCCInfoRepo, clubFamilyRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService, securityService)
	eventHandler := handlers.NewEventHandler(eventService)
	eventCrewHandler := handlers.NewEventCrewHandler(eventCrewService)
	eventAttendeeHandler := handlers.NewEventAttendeeHandler(eventAttendeeService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	financeReportHandler := handlers.NewFinanceReportHandler(financeReportService)
	administratorHandler := handlers.NewAdministratorHandler(administratorService)
	userCCInfoHandler := handlers.NewUserCCInfoHandler(userCCInfoService)
	masterHandler := handlers.NewMasterHandler(facultyRepo, yearSessionRepo, clubFamilyRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public + protected)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// User management routes
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	setupUserRoutes(userRoutes, userHandler)

	// Profile routes (Authenticated users)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProfileRoutes(profileRoutes, userHandler)

	// Event routes
	eventRoutes := apiV1.Group("/events")
	eventRoutes.Use(middleware.AuthMiddleware(cfg))
	setupEventRoutes(eventRoutes, eventHandler)

	// Event crew routes
	eventCrewRoutes := apiV1.Group("/event-crews")
	eventCrewRoutes.Use(middleware.AuthMiddleware(cfg))
	setupEventCrewRoutes(eventCrewRoutes, eventCrewHandler)

	// Event attendee routes
	eventAttendeeRoutes := apiV1.Group("/event-attendees")
	eventAttendeeRoutes.Use(middleware.AuthMiddleware(cfg))
	setupEventAttendeeRoutes(eventAttendeeRoutes, eventAttendeeHandler)

	// Budget routes
	budgetRoutes := apiV1.Group("/budgets")
	budgetRoutes.Use(middleware.AuthMiddleware(cfg))
	setupBudgetRoutes(budgetRoutes, budgetHandler)

	// Transaction routes
	transactionRoutes := apiV1.Group("/transactions")
	transactionRoutes.Use(middleware.AuthMiddleware(cfg))
	setupTransactionRoutes(transactionRoutes, transactionHandler)

	// Finance report routes
	financeReportRoutes := apiV1.Group("/finance-reports")
	financeReportRoutes.Use(middleware.AuthMiddleware(cfg))
	setupFinanceReportRoutes(financeReportRoutes, financeReportHandler)

	// Administrator routes
	administratorRoutes := apiV1.Group("/administrators")
	administratorRoutes.Use(middleware.AuthMiddleware(cfg))
	setupAdministratorRoutes(administratorRoutes, administratorHandler)

	// CC info routes
	ccInfoRoutes := apiV1.Group("/cc-infos")
	ccInfoRoutes.Use(middleware.AuthMiddleware(cfg))
	setupCCInfoRoutes(ccInfoRoutes, userCCInfoHandler)

	// Master data routes
	masterRoutes := apiV1.Group("/master")
	masterRoutes.Use(middleware.AuthMiddleware(cfg))
	masterRoutes.Use(middleware.MasterDataCache())
	setupMasterRoutes(masterRoutes, masterHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.List)
	router.Get("/not-event-crew/:eventId", handler.ListNotEventCrew)
	router.Get("/:id/roles", handler.ListRoles)
	router.Get("/:id", handler.Get)

	// Admin only
	router.Put("/:id", middleware.AdminOnly(), handler.UpdateByAdmin)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupProfileRoutes configures profile routes (Authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Put("/", handler.UpdateProfile)
	router.Put("/password", handler.ChangePassword)
}

// setupEventRoutes configures event lifecycle routes
func setupEventRoutes(router fiber.Router, handler *handlers.EventHandler) {
	router.Get("/", handler.List)
	router.Get("/range", handler.ListByDateRange)
	router.Get("/:id", handler.Get)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Put("/:id/cancel", handler.Cancel)
	router.Delete("/:id", handler.Delete)
}

// setupEventCrewRoutes configures event crew routes
func setupEventCrewRoutes(router fiber.Router, handler *handlers.EventCrewHandler) {
	router.Post("/", handler.Create)
	router.Get("/event/:eventId", handler.ListByEvent)
	router.Delete("/:id", handler.Delete)
}

// setupEventAttendeeRoutes configures event attendee routes
func setupEventAttendeeRoutes(router fiber.Router, handler *handlers.EventAttendeeHandler) {
	router.Post("/", handler.Register)
	router.Get("/event/:eventId", handler.ListByEvent)
	router.Get("/mine", handler.ListMine)
}

// setupBudgetRoutes configures budget routes
func setupBudgetRoutes(router fiber.Router, handler *handlers.BudgetHandler) {
	router.Post("/", handler.Create)
	router.Get("/event/:eventId", handler.ListByEvent)
	router.Get("/:id", handler.Get)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupTransactionRoutes configures transaction routes
func setupTransactionRoutes(router fiber.Router, handler *handlers.TransactionHandler) {
	router.Post("/", handler.Create)
	router.Get("/event/:eventId", handler.ListByEvent)
	router.Get("/:id", handler.Get)
	router.Put("/:id", handler.Update)
	router.Put("/:id/status", handler.UpdateStatus)
	router.Get("/:id/receipt", handler.GetReceipt)
}

// setupFinanceReportRoutes configures finance report routes
func setupFinanceReportRoutes(router fiber.Router, handler *handlers.FinanceReportHandler) {
	router.Get("/", handler.List)
	router.Get("/monthly", handler.MonthlyByYearSession)
	router.Get("/statistic", handler.Statistic)
	router.Get("/event/:eventId", handler.GetByEvent)
}

// setupAdministratorRoutes configures committee appointment routes. Mutations
// are gated in the service: system admin or current CC head.
func setupAdministratorRoutes(router fiber.Router, handler *handlers.AdministratorHandler) {
	router.Get("/", handler.List)
	router.Get("/user/:userId", handler.ListByUser)
	router.Get("/:id", handler.Get)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Put("/:id/deactivate", handler.Deactivate)
	router.Delete("/:id", handler.Delete)
}

// setupCCInfoRoutes configures club membership info routes
func setupCCInfoRoutes(router fiber.Router, handler *handlers.UserCCInfoHandler) {
	router.Get("/user/:userId", handler.ListByUser)
	router.Get("/:id", handler.Get)

	// Admin only
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupMasterRoutes configures master data routes
func setupMasterRoutes(router fiber.Router, handler *handlers.MasterHandler) {
	// Faculties
	router.Get("/faculties", handler.ListFaculties)
	router.Get("/faculties/:id", handler.GetFaculty)
	router.Post("/faculties", middleware.AdminOnly(), handler.CreateFaculty)
	router.Put("/faculties/:id", middleware.AdminOnly(), handler.UpdateFaculty)
	router.Delete("/faculties/:id", middleware.AdminOnly(), handler.DeleteFaculty)

	// Year sessions
	router.Get("/year-sessions", handler.ListYearSessions)
	router.Get("/year-sessions/current", handler.GetCurrentYearSession)
	router.Post("/year-sessions", middleware.AdminOnly(), handler.CreateYearSession)

	// Club families
	router.Get("/club-families", handler.ListClubFamilies)
	router.Get("/club-families/:id", handler.GetClubFamily)
	router.Post("/club-families", middleware.AdminOnly(), handler.CreateClubFamily)
	router.Put("/club-families/:id", middleware.AdminOnly(), handler.UpdateClubFamily)
	router.Delete("/club-families/:id", middleware.AdminOnly(), handler.DeleteClubFamily)
}

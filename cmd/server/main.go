package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/http/middleware"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/http/routes"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/config"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title Club Management API
// @version 1.0
// @description Back office API for the Five Fishes CC club

// @contact.name API Support
// @contact.email support@fivefishes.club

// @host api.fivefishes.club
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the initial system admin account
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed admin user: %v", err)
	}

	// Seed master data (faculties, year sessions)
	if err := config.SeedMasterData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed master data: %v", err)
	}

	// Start cron service (close ended events daily, purge expired tokens hourly)
	cronService := services.NewCronService(
		repositories.NewEventRepository(db),
		repositories.NewRefreshTokenRepository(db),
	)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron jobs: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Club Management API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}

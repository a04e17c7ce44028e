package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/milldesk/milldesk-api/internal/application/service"
	"github.com/milldesk/milldesk-api/internal/config"
	"github.com/milldesk/milldesk-api/internal/infrastructure/database"
	"github.com/milldesk/milldesk-api/internal/infrastructure/repository"
	"github.com/milldesk/milldesk-api/internal/presentation/http/handler"
	"github.com/milldesk/milldesk-api/internal/presentation/http/routes"
	"github.com/milldesk/milldesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	loadingRepo := repository.NewLoadingRepository(db)
	paddyRepo := repository.NewPaddyTruckRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	restoreRepo := repository.NewRestoreRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo, ledgerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	bookingService := service.NewBookingService(bookingRepo, customerRepo, loadingRepo)
	loadingService := service.NewLoadingService(loadingRepo, customerRepo)
	paddyService := service.NewPaddyService(paddyRepo, supplierRepo)
	saleService := service.NewSaleService(saleRepo, customerService)
	dashboardService := service.NewDashboardService(customerRepo, supplierRepo, bookingRepo, loadingRepo, paddyRepo, saleRepo)
	backupService := service.NewBackupService(cfg.Backup, customerRepo, ledgerRepo, supplierRepo, bookingRepo, saleRepo, restoreRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Booking:   handler.NewBookingHandler(bookingService),
		Loading:   handler.NewLoadingHandler(loadingService),
		Paddy:     handler.NewPaddyHandler(paddyService),
		Sale:      handler.NewSaleHandler(saleService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Backup:    handler.NewBackupHandler(backupService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/milldesk/milldesk-api/internal/config"
	"github.com/milldesk/milldesk-api/internal/presentation/http/handler"
	"github.com/milldesk/milldesk-api/internal/presentation/http/middleware"
	"github.com/milldesk/milldesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Booking   *handler.BookingHandler
	Loading   *handler.LoadingHandler
	Paddy     *handler.PaddyHandler
	Sale      *handler.SaleHandler
	Dashboard *handler.DashboardHandler
	Backup    *handler.BackupHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.Stats)
	}

	registerCustomerRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerBookingRoutes(protected, h)
	registerLoadingRoutes(protected, h)
	registerPaddyRoutes(protected, h)
	registerSaleRoutes(protected, h)
	registerBackupRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/stats", h.Customer.Stats)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/ledger", h.Customer.Ledger)
		customers.POST("/:id/ledger", h.Customer.AddLedgerEntry)
		customers.GET("/:id/statement.pdf", h.Customer.Statement)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequirePermission("manage-suppliers"))
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/stats", h.Supplier.Stats)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PATCH("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerBookingRoutes(protected *gin.RouterGroup, h *Handlers) {
	bookings := protected.Group("/bookings")
	bookings.Use(middleware.RequirePermission("manage-bookings"))
	{
		bookings.GET("", h.Booking.List)
		bookings.POST("", h.Booking.Create)
		bookings.GET("/:id", h.Booking.Get)
		bookings.PATCH("/:id", h.Booking.Update)
		bookings.DELETE("/:id", h.Booking.Delete)
		bookings.POST("/:id/load", h.Booking.Load)
	}
}

func registerLoadingRoutes(protected *gin.RouterGroup, h *Handlers) {
	loadings := protected.Group("/loadings")
	loadings.Use(middleware.RequirePermission("manage-loadings"))
	{
		loadings.GET("", h.Loading.List)
		loadings.POST("", h.Loading.Create)
		loadings.GET("/:id", h.Loading.Get)
		loadings.DELETE("/:id", h.Loading.Delete)
	}
}

func registerPaddyRoutes(protected *gin.RouterGroup, h *Handlers) {
	paddy := protected.Group("/paddy")
	paddy.Use(middleware.RequirePermission("manage-paddy"))
	{
		paddy.GET("", h.Paddy.List)
		paddy.POST("", h.Paddy.Receive)
		paddy.GET("/:id", h.Paddy.Get)
		paddy.DELETE("/:id", h.Paddy.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequirePermission("manage-sales"))
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Record)
		sales.GET("/:id", h.Sale.Get)
	}
}

func registerBackupRoutes(protected *gin.RouterGroup, h *Handlers) {
	backup := protected.Group("/backup")
	backup.Use(middleware.RequirePermission("manage-backup"))
	{
		backup.GET("/customers", h.Backup.ExportCustomers)
		backup.GET("/suppliers", h.Backup.ExportSuppliers)
		backup.GET("/full", h.Backup.ExportFull)
		backup.POST("/import", h.Backup.Import)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"), middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/roles", h.User.Roles)
		users.GET("/permissions", h.User.Permissions)
		users.GET("/:id", h.User.Get)
		users.DELETE("/:id", h.User.Delete)
		users.POST("/:id/roles", h.User.AssignRole)
		users.DELETE("/:id/roles", h.User.RemoveRole)
	}
}

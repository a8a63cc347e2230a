package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salon-booking-server/internal/auth"
	"salon-booking-server/internal/config"
	"salon-booking-server/internal/handlers"
	"salon-booking-server/internal/middleware"
	"salon-booking-server/internal/scheduling"
	"salon-booking-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Stores and core services
	appointmentStore := store.NewAppointmentStore(db)
	userStore := store.NewUserStore(db)
	engine := scheduling.NewEngine(appointmentStore, userStore)
	aggregator := scheduling.NewAggregator(appointmentStore)

	// Handlers
	authHandler := handlers.NewAuthHandler(userStore, cfg)
	userHandler := handlers.NewUserHandler(userStore)
	appointmentHandler := handlers.NewAppointmentHandler(engine, aggregator)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}
		// One-time seeding of a fresh database
		public.POST("/init", userHandler.Bootstrap)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		// Appointment routes; capability checks live in the scheduling engine
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/all", appointmentHandler.GetAllAppointments)
			appointmentRoutes.GET("/stats", appointmentHandler.GetStats)
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.PATCH("/:id/cancel", appointmentHandler.CancelAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		// User routes; the roster is readable by anyone authenticated,
		// mutations are admin-only
		userRoutes := private.Group("/users")
		{
			userRoutes.GET("", userHandler.GetUsers)

			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RequireAction(auth.ActionManageUsers))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeactivateUser)
			}
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}

package routes

import (
	"team-capacity-backend/internal/api/handlers"
	"team-capacity-backend/internal/api/middleware"
	"team-capacity-backend/internal/auth"
	"team-capacity-backend/internal/config"
	"team-capacity-backend/internal/database/models"
	"team-capacity-backend/internal/repository"
	"team-capacity-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	leaveRepo := repository.NewAnnualLeaveRepository(db)
	markerRepo := repository.NewCalendarMarkerRepository(db)
	userRepo := repository.NewUserRepository(db)
	store := repository.NewStore(db)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo, leaveRepo, validator, cfg.DefaultAnnualLeaveDays)
	projectService := service.NewProjectService(projectRepo, validator)
	allocationService := service.NewAllocationService(allocationRepo, store, validator)
	leaveService := service.NewAnnualLeaveService(leaveRepo, store, validator)
	markerService := service.NewCalendarMarkerService(markerRepo, employeeRepo, validator)
	userService := service.NewUserService(userRepo, employeeRepo, validator)
	calendarService := service.NewCalendarService(store)
	capacityService := service.NewCapacityService(store)

	// Initialize auth
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if cfg.AuthEnabled {
		authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTTokenTTL)
		if err != nil {
			logrus.Fatalf("Failed to initialize auth service: %v", err)
		}
		authHandler = auth.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	} else {
		logrus.Warn("Authentication is disabled; all API routes are open")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	projectHandler := handlers.NewProjectHandler(projectService)
	allocationHandler := handlers.NewAllocationHandler(allocationService)
	leaveHandler := handlers.NewAnnualLeaveHandler(leaveService)
	markerHandler := handlers.NewCalendarMarkerHandler(markerService)
	userHandler := handlers.NewUserHandler(userService)
	calendarHandler := handlers.NewCalendarHandler(calendarService, capacityService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
		v1.POST("/auth/validate", authHandler.ValidateToken)
	}

	// Mutations need an admin once auth is on
	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if authMiddleware == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{authMiddleware.RequireRole(models.UserRoleAdmin), h}
	}

	{
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", admin(employeeHandler.CreateEmployee)...)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", admin(employeeHandler.UpdateEmployee)...)
			employees.DELETE("/:id", admin(employeeHandler.DeleteEmployee)...)
			employees.GET("/:id/leave-summary", employeeHandler.GetLeaveSummary)
			employees.GET("/:id/capacity", calendarHandler.GetEmployeeCapacity)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", admin(projectHandler.CreateProject)...)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", admin(projectHandler.UpdateProject)...)
			projects.DELETE("/:id", admin(projectHandler.DeleteProject)...)
		}

		allocations := v1.Group("/allocations")
		{
			allocations.GET("", allocationHandler.ListAllocations) // Optional employee_id parameter
			allocations.POST("", admin(allocationHandler.CreateAllocation)...)
			allocations.POST("/validate", allocationHandler.ValidateAllocation) // Dry run, nothing is stored
			allocations.GET("/:id", allocationHandler.GetAllocation)
			allocations.PUT("/:id", admin(allocationHandler.UpdateAllocation)...)
			allocations.DELETE("/:id", admin(allocationHandler.DeleteAllocation)...)
		}

		leave := v1.Group("/annual-leave")
		{
			leave.GET("", leaveHandler.ListAnnualLeave) // Optional employee_id parameter
			leave.POST("", admin(leaveHandler.CreateAnnualLeave)...)
			leave.GET("/:id", leaveHandler.GetAnnualLeave)
			leave.PUT("/:id", admin(leaveHandler.UpdateAnnualLeave)...)
			leave.DELETE("/:id", admin(leaveHandler.DeleteAnnualLeave)...)
		}

		markers := v1.Group("/markers")
		{
			markers.GET("", markerHandler.ListMarkers) // Optional start and end parameters
			markers.POST("", admin(markerHandler.CreateMarker)...)
			markers.GET("/:id", markerHandler.GetMarker)
			markers.PUT("/:id", admin(markerHandler.UpdateMarker)...)
			markers.DELETE("/:id", admin(markerHandler.DeleteMarker)...)
		}

		users := v1.Group("/users")
		{
			users.GET("", admin(userHandler.ListUsers)...)
			users.POST("", admin(userHandler.CreateUser)...)
			users.GET("/:id", admin(userHandler.GetUser)...)
			users.PUT("/:id", admin(userHandler.UpdateUser)...)
			users.DELETE("/:id", admin(userHandler.DeleteUser)...)
		}

		v1.GET("/calendar", calendarHandler.GetCalendar)
		v1.GET("/capacity", calendarHandler.GetTeamCapacity)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

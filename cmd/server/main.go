package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/cache"
	"github.com/ikedoebber/organizer-api/internal/config"
	"github.com/ikedoebber/organizer-api/internal/constants"
	"github.com/ikedoebber/organizer-api/internal/database"
	"github.com/ikedoebber/organizer-api/internal/handlers"
	"github.com/ikedoebber/organizer-api/internal/middleware"
	"github.com/ikedoebber/organizer-api/internal/repository"
	"github.com/ikedoebber/organizer-api/internal/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", constants.XHRHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup session middleware with Redis
	store, err := redisStore.NewStore(
		10,    // Redis pool size
		"tcp", // network type
		cfg.RedisAddr(),
		"", // username (empty for default user)
		"", // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Dashboard cache; summaries are time-relative, so keep the TTL short
	var dashboardCache *cache.DashboardCache
	if cfg.CacheEnabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
		dashboardCache = cache.NewDashboardCache(rdb, time.Minute)
	}

	// Repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo)
	goalService := services.NewGoalService(goalRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	dashboardService := services.NewDashboardService(taskRepo, goalRepo, appointmentRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, dashboardCache)
	taskHandler := handlers.NewTaskHandler(taskRepo, taskService, dashboardService, dashboardCache)
	goalHandler := handlers.NewGoalHandler(goalRepo, goalService, dashboardService, dashboardCache)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, appointmentService, dashboardService, dashboardCache)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Organizer API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Main dashboard (protected)
		api.GET("/dashboard", middleware.RequireAuth(), dashboardHandler.MainDashboard)

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/dashboard", taskHandler.TaskDashboard)
			tasks.GET("/board", taskHandler.TasksBoard)
			tasks.Any("/update-status", taskHandler.UpdateTaskStatus)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Goal routes (protected)
		goals := api.Group("/goals")
		goals.Use(middleware.RequireAuth())
		{
			goals.GET("", goalHandler.ListGoals)
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("/dashboard", goalHandler.GoalDashboard)
			goals.GET("/board", goalHandler.GoalsBoard)
			goals.Any("/update-period", goalHandler.UpdateGoalPeriod)
			goals.GET("/:id", goalHandler.GetGoal)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}

		// Appointment routes (protected)
		appointments := api.Group("/appointments")
		appointments.Use(middleware.RequireAuth())
		{
			appointments.GET("", appointmentHandler.ListAppointments)
			appointments.POST("", appointmentHandler.CreateAppointment)
			appointments.GET("/dashboard", appointmentHandler.AppointmentsDashboard)
			appointments.GET("/calendar", appointmentHandler.Calendar)
			appointments.GET("/:id", appointmentHandler.GetAppointment)
			appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
			appointments.Any("/:id/update-status", appointmentHandler.UpdateAppointmentStatus)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

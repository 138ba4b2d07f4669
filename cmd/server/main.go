package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/hinagiku/todo-lists-api/internal/config"
	"github.com/hinagiku/todo-lists-api/internal/constants"
	"github.com/hinagiku/todo-lists-api/internal/database"
	"github.com/hinagiku/todo-lists-api/internal/handlers"
	"github.com/hinagiku/todo-lists-api/internal/middleware"
	"github.com/hinagiku/todo-lists-api/internal/repository"
	"github.com/hinagiku/todo-lists-api/internal/services"
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
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	listService := services.NewListService(listRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	listHandler := handlers.NewListHandler(listService, taskService)
	taskHandler := handlers.NewTaskHandler(taskService)
	adminHandler := handlers.NewAdminHandler(authService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "To-Do Lists API is running",
		})
	})

	// Public routes
	r.GET("/", listHandler.Home)
	r.POST("/", listHandler.Home)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

	// List routes (protected)
	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.GET("/create-new-list", listHandler.CreateListForm)
		authed.POST("/create-new-list", listHandler.CreateList)
		authed.GET("/view-list/:list_id", middleware.RequireListOwner(), listHandler.ViewList)
		authed.POST("/view-list/:list_id", middleware.RequireListOwner(), taskHandler.AddTask)
		authed.GET("/delete-check/:list_id", middleware.RequireListOwner(), listHandler.DeleteCheck)
		authed.GET("/delete-list/:list_id", middleware.RequireListOwner(), listHandler.DeleteList)

		// Task routes
		authed.GET("/mark-complete/:list_id/:task_id", middleware.RequireTaskOwner(), taskHandler.MarkComplete)
		authed.GET("/edit-task/:list_id/:task_id", middleware.RequireTaskOwner(), taskHandler.EditTaskForm)
		authed.POST("/edit-task/:list_id/:task_id", middleware.RequireTaskOwner(), taskHandler.EditTask)
		authed.GET("/delete-task/:list_id/:task_id", middleware.RequireTaskOwner(), taskHandler.DeleteTask)

		// Admin routes
		authed.GET("/admin-page", middleware.RequireAdmin(), adminHandler.ListUsers)
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

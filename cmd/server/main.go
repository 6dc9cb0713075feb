package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
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

	// Auth components: one hasher and one token manager for the whole
	// process, built from config and injected below.
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	todoRepo := repository.NewTodoRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, hasher, tokens)
	todoService := services.NewTodoService(todoRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	todoHandler := handlers.NewTodoHandler(todoService)

	// Initialize Gin router
	r := gin.Default()

	// CORS is wide open; tighten the origin list before exposing this
	// beyond local use.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo API is running",
		})
	})

	// Static frontend, if one is configured
	if cfg.FrontendDir != "" {
		if _, err := os.Stat(cfg.FrontendDir); err == nil {
			r.Static("/static", cfg.FrontendDir)
			r.StaticFile("/", cfg.FrontendDir+"/index.html")
		} else {
			log.Printf("Frontend directory %s not found, skipping static routes", cfg.FrontendDir)
		}
	}

	// Auth routes (public)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	// User routes (public, see UserHandler.GetUser)
	r.GET("/users/:id", userHandler.GetUser)

	// Todo routes (protected)
	todos := r.Group("/todos")
	todos.Use(middleware.RequireAuth(tokens))
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("/:id", middleware.RequireTodoOwnership("access"), todoHandler.GetTodo)
		todos.PUT("/:id", middleware.RequireTodoOwnership("update"), todoHandler.UpdateTodo)
		todos.DELETE("/:id", middleware.RequireTodoOwnership("delete"), todoHandler.DeleteTodo)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

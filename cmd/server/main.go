package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/IssacSR/tareasDistribuidos/internal/config"
	"github.com/IssacSR/tareasDistribuidos/internal/database"
	"github.com/IssacSR/tareasDistribuidos/internal/handlers"
	"github.com/IssacSR/tareasDistribuidos/internal/middleware"
	"github.com/IssacSR/tareasDistribuidos/internal/repository"
	"github.com/IssacSR/tareasDistribuidos/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

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

	// Wire repositories, services and handlers
	tareaRepo := repository.NewTareaRepository(database.GetDB())
	usuarioRepo := repository.NewUsuarioRepository(database.GetDB())

	tareaService := services.NewTareaService(tareaRepo, usuarioRepo)
	usuarioService := services.NewUsuarioService(usuarioRepo)

	tareaHandler := handlers.NewTareaHandler(tareaService)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Tareas API is running",
		})
	})

	// Task routes
	apiTarea := r.Group("/apiTarea")
	{
		apiTarea.GET("/tareas", tareaHandler.ReadAll)
		apiTarea.GET("/tareas/:id", tareaHandler.Read)
		apiTarea.GET("/tareas/owner/:ownerId", tareaHandler.FindByOwner)
		apiTarea.POST("/tareas", tareaHandler.Create)
		apiTarea.PUT("/tareas/:id", tareaHandler.Update)
		apiTarea.PUT("/tareas/:id/completada", tareaHandler.SetCompletada)
		apiTarea.DELETE("/tareas/:id", tareaHandler.Delete)
	}

	// User routes
	apiUsuario := r.Group("/apiUsuario")
	{
		apiUsuario.GET("/usuarios", usuarioHandler.ReadAll)
		apiUsuario.GET("/usuarios/:id", usuarioHandler.Read)
		apiUsuario.POST("/usuarios", usuarioHandler.Create)
		apiUsuario.PUT("/usuarios/:id", usuarioHandler.Update)
		apiUsuario.DELETE("/usuarios/:id", usuarioHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

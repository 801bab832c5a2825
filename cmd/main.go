package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"katalog/internal/config"
	"katalog/internal/db"
	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	database, err := db.Connect(context.Background(), cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	log.Println("✅ Connected to MongoDB")

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	requireAdmin := middleware.RequireAdmin(cfg.AdminToken)

	handlers.NewHealthHandler(database, cfg).RegisterRoutes(app)

	api := app.Group("/api")
	handlers.NewAuthHandler(services.NewAuthService(cfg)).RegisterRoutes(api)
	handlers.NewCategoryHandler(services.NewCategoryService(database)).RegisterRoutes(api, requireAdmin)
	handlers.NewProductHandler(services.NewProductService(database)).RegisterRoutes(api, requireAdmin)
	handlers.NewAdminHandler(services.NewAdminService(database)).RegisterRoutes(api, requireAdmin)
	handlers.NewContactHandler(services.NewContactService(database)).RegisterRoutes(api)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	if err := database.Client().Disconnect(context.Background()); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
	log.Println("Server stopped")
}

package handlers

import (
	"context"

	"katalog/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler serves the liveness banner and the store diagnostic. The
// diagnostic deliberately swallows every error and reports it as a string
// so the endpoint itself never fails.
type HealthHandler struct {
	db         *mongo.Database
	cfg        config.Config
	instanceID string
}

func NewHealthHandler(db *mongo.Database, cfg config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg, instanceID: uuid.NewString()}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleRoot)
	app.Get("/test", h.HandleTest)
}

func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Product Catalog Backend is running"})
}

func (h *HealthHandler) HandleTest(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"instance_id":       h.instanceID,
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.db == nil {
		return c.JSON(response)
	}

	response["database"] = "✅ Available"
	if h.cfg.MongoURIFromEnv {
		response["database_url"] = "✅ Set"
	}
	response["database_name"] = h.db.Name()
	response["connection_status"] = "Connected"

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	names, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		return c.JSON(response)
	}

	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"
	return c.JSON(response)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

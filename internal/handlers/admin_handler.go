package handlers

import (
	"context"

	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the admin dashboard aggregates.
type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterRoutes(router fiber.Router, requireAdmin fiber.Handler) {
	router.Get("/admin/summary", requireAdmin, h.HandleSummary)
}

func (h *AdminHandler) HandleSummary(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	summary, err := h.service.Summarize(ctx)
	if err != nil {
		return serverError(c)
	}
	return c.JSON(summary)
}

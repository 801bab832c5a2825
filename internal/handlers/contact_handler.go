package handlers

import (
	"context"

	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler accepts contact-form submissions. No auth.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service, validate: validator.New()}
}

func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleCreate)
}

func (h *ContactHandler) HandleCreate(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(msg); err != nil {
		return validationFailed(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	if err := h.service.Create(ctx, msg); err != nil {
		return serverError(c)
	}
	return c.JSON(fiber.Map{"status": "received"})
}

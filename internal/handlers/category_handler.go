package handlers

import (
	"context"
	"errors"

	"katalog/internal/docid"
	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category CRUD. Reads are public; mutations sit
// behind the admin gate wired in RegisterRoutes.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service, validate: validator.New()}
}

func (h *CategoryHandler) RegisterRoutes(router fiber.Router, requireAdmin fiber.Handler) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
	categories.Get("/:id", h.HandleGet)
	categories.Post("/", requireAdmin, h.HandleCreate)
	categories.Put("/:id", requireAdmin, h.HandleUpdate)
	categories.Delete("/:id", requireAdmin, h.HandleDelete)
}

func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	categories, err := h.service.List(ctx)
	if err != nil {
		return serverError(c)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGet(c *fiber.Ctx) error {
	id, err := docid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	cat, err := h.service.Get(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	if err != nil {
		return serverError(c)
	}
	return c.JSON(cat)
}

func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(cat); err != nil {
		return validationFailed(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	created, err := h.service.Create(ctx, cat)
	if errors.Is(err, services.ErrDuplicateSlug) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slug already exists"})
	}
	if err != nil {
		return serverError(c)
	}
	return c.JSON(created)
}

func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := docid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(cat); err != nil {
		return validationFailed(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	updated, err := h.service.Update(ctx, id, cat)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	if err != nil {
		return serverError(c)
	}
	return c.JSON(updated)
}

func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := docid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	err = h.service.Delete(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	if err != nil {
		return serverError(c)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

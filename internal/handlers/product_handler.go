package handlers

import (
	"context"
	"errors"
	"strconv"

	"katalog/internal/docid"
	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles product listing and CRUD.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service, validate: validator.New()}
}

func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireAdmin fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	// /featured must register before /:id
	products.Get("/featured", h.HandleFeatured)
	products.Get("/:id", h.HandleGet)
	products.Post("/", requireAdmin, h.HandleCreate)
	products.Put("/:id", requireAdmin, h.HandleUpdate)
	products.Delete("/:id", requireAdmin, h.HandleDelete)
}

func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	params := services.ListParams{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 12),
	}

	if v := c.Query("minPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "minPrice must be a number"})
		}
		params.MinPrice = &f
	}
	if v := c.Query("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "maxPrice must be a number"})
		}
		params.MaxPrice = &f
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	result, err := h.service.List(ctx, params)
	if err != nil {
		return serverError(c)
	}
	return c.JSON(result)
}

func (h *ProductHandler) HandleFeatured(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	items, err := h.service.Featured(ctx, c.QueryInt("limit", 8))
	if err != nil {
		return serverError(c)
	}
	return c.JSON(items)
}

func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id, err := docid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	prod, err := h.service.Get(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		return serverError(c)
	}
	return c.JSON(prod)
}

func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	// in_stock defaults to true when the payload omits it
	prod := models.Product{InStock: true}
	if err := c.BodyParser(&prod); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(prod); err != nil {
		return validationFailed(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	created, err := h.service.Create(ctx, prod)
	if err != nil {
		return serverError(c)
	}
	return c.JSON(created)
}

func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := docid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	prod := models.Product{InStock: true}
	if err := c.BodyParser(&prod); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(prod); err != nil {
		return validationFailed(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	updated, err := h.service.Update(ctx, id, prod)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		return serverError(c)
	}
	return c.JSON(updated)
}

func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := docid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	ctx, cancel := context.WithTimeout(c.Context(), storeTimeout)
	defer cancel()

	err = h.service.Delete(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		return serverError(c)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

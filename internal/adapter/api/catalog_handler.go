package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"studenthub-core/internal/domain/entity"
	"studenthub-core/internal/domain/prompt"
)

type CatalogService interface {
	Fetch(ctx context.Context, category entity.Category) ([]entity.Record, error)
}

type InsightsService interface {
	FetchAll(ctx context.Context) (map[string][]entity.Record, error)
}

type CatalogHandler struct {
	catalog  CatalogService
	insights InsightsService
}

func NewCatalogHandler(catalog CatalogService, insights InsightsService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, insights: insights}
}

// Fixed returns a handler that always serves one category.
func (h *CatalogHandler) Fixed(category entity.Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.serve(c, category)
	}
}

// Selectable returns a handler for a ?category= endpoint. A missing parameter serves
// fallback; a value outside group is rejected.
func (h *CatalogHandler) Selectable(group []entity.Category, fallback entity.Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("category")
		if raw == "" {
			return h.serve(c, fallback)
		}
		category := entity.Category(raw)
		if !prompt.In(category, group) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
		}
		return h.serve(c, category)
	}
}

func (h *CatalogHandler) All(c *fiber.Ctx) error {
	data, err := h.insights.FetchAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Fetched all insights successfully",
		"data":    data,
	})
}

func (h *CatalogHandler) serve(c *fiber.Ctx, category entity.Category) error {
	records, err := h.catalog.Fetch(c.UserContext(), category)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

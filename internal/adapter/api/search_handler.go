package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"studenthub-core/internal/domain/entity"
)

type Searcher interface {
	Search(ctx context.Context, query string) (*entity.SearchResult, error)
}

type SearchHandler struct {
	search Searcher
}

func NewSearchHandler(s Searcher) *SearchHandler {
	return &SearchHandler{search: s}
}

func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req entity.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.search.Search(c.UserContext(), req.Query)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Response fetched successfully",
		"data":    result,
	})
}

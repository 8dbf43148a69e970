package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-gateway/internal/api/dto"
	"github.com/spec-kit/bistro-gateway/internal/domain"
	"github.com/spec-kit/bistro-gateway/internal/repository"
)

// MenuHandler exposes the catalog endpoints.
type MenuHandler struct {
	menu repository.MenuRepository
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menu repository.MenuRepository) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// List handles GET /menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create handles POST /menu.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req dto.NewMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := &domain.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}
	result, err := h.menu.Insert(c.Context(), item)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Delete handles DELETE /menu/:id.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	result, err := h.menu.DeleteByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

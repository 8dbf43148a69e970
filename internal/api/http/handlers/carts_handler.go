package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-gateway/internal/api/dto"
	"github.com/spec-kit/bistro-gateway/internal/auth"
	"github.com/spec-kit/bistro-gateway/internal/domain"
	"github.com/spec-kit/bistro-gateway/internal/repository"
	apperrors "github.com/spec-kit/bistro-gateway/pkg/util"
)

// CartsHandler exposes the cart endpoints.
type CartsHandler struct {
	carts repository.CartRepository
}

// NewCartsHandler constructs handler.
func NewCartsHandler(carts repository.CartRepository) *CartsHandler {
	return &CartsHandler{carts: carts}
}

// List handles GET /carts?email=. No email means no query, which answers an
// empty list; an email other than the caller's own is forbidden.
func (h *CartsHandler) List(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]domain.CartItem{})
	}

	if !auth.OwnsEmail(c, email) {
		return apperrors.NewForbidden("Forbidden Access")
	}

	items, err := h.carts.FindByOwner(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create handles POST /carts.
func (h *CartsHandler) Create(c *fiber.Ctx) error {
	var req dto.NewCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := &domain.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}
	result, err := h.carts.Insert(c.Context(), item)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Delete handles DELETE /carts/:id.
func (h *CartsHandler) Delete(c *fiber.Ctx) error {
	result, err := h.carts.DeleteByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

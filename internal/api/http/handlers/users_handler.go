package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-gateway/internal/api/dto"
	"github.com/spec-kit/bistro-gateway/internal/auth"
	"github.com/spec-kit/bistro-gateway/internal/domain"
	"github.com/spec-kit/bistro-gateway/internal/repository"
)

// UsersHandler exposes the stored-identity endpoints.
type UsersHandler struct {
	users repository.UserRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Create handles POST /users. Duplicate emails short-circuit without a
// second insert; the response spelling is load-bearing for existing clients.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.NewUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	existing, err := h.users.FindByEmail(c.Context(), req.Email)
	if err != nil && err != pgx.ErrNoRows {
		return err
	}
	if existing != nil {
		return c.JSON(fiber.Map{"message": "Already Exits"})
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  domain.RoleNone,
	}
	result, err := h.users.Insert(c.Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Elevate handles PATCH /users/admin/:id.
func (h *UsersHandler) Elevate(c *fiber.Ctx) error {
	result, err := h.users.SetAdminRole(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// AdminStatus handles GET /users/admin/:email. Callers may only probe their
// own email; a mismatch answers false rather than failing.
func (h *UsersHandler) AdminStatus(c *fiber.Ctx) error {
	email := c.Params("email")

	claims, ok := auth.ClaimsFromContext(c)
	if !ok || claims.Email != email {
		return c.JSON(dto.AdminStatusResponse{Admin: false})
	}

	user, err := h.users.FindByEmail(c.Context(), email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.JSON(dto.AdminStatusResponse{Admin: false})
		}
		return err
	}
	return c.JSON(dto.AdminStatusResponse{Admin: user.IsAdmin()})
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	result, err := h.users.DeleteByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

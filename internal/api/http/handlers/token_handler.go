package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-gateway/internal/api/dto"
	"github.com/spec-kit/bistro-gateway/internal/auth"
)

// TokenHandler exposes session token issuance.
type TokenHandler struct {
	tokens *auth.TokenManager
}

// NewTokenHandler constructs handler.
func NewTokenHandler(tokens *auth.TokenManager) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles POST /jwt. The posted claim is signed as-is; callers are
// expected to hit this only after they have authenticated the email
// themselves (the upstream identity provider does that here).
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	token, _, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-gateway/internal/api/dto"
	"github.com/spec-kit/bistro-gateway/internal/payment"
)

// PaymentsHandler exposes payment intent creation.
type PaymentsHandler struct {
	bridge *payment.Bridge
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(bridge *payment.Bridge) *PaymentsHandler {
	return &PaymentsHandler{bridge: bridge}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	secret, err := h.bridge.CreateIntent(c.UserContext(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}

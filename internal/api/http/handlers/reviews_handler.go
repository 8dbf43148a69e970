package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-gateway/internal/repository"
)

// ReviewsHandler exposes the public review feed.
type ReviewsHandler struct {
	reviews repository.ReviewRepository
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviews repository.ReviewRepository) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// List handles GET /reviews.
func (h *ReviewsHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviews.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

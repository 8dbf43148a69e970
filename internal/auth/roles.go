package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bistro-gateway/internal/repository"
	apperrors "github.com/spec-kit/bistro-gateway/pkg/util"
)

// RequireAdmin ensures the authenticated caller holds the admin role. The
// role is looked up fresh on every request so elevations and demotions take
// effect on the next call. Must run after RequireAuthenticated; wiring it
// standalone is a programming error.
func RequireAdmin(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewForbidden("Forbidden Access")
		}

		user, err := users.FindByEmail(c.Context(), claims.Email)
		if err != nil {
			// An unknown identity simply has no elevated role.
			if err == pgx.ErrNoRows {
				return apperrors.NewForbidden("Forbidden Access")
			}
			return apperrors.MapError(err)
		}
		if !user.IsAdmin() {
			return apperrors.NewForbidden("Forbidden Access")
		}
		return c.Next()
	}
}

// OwnsEmail reports whether the authenticated caller's identity claim
// matches the supplied owner email.
func OwnsEmail(c *fiber.Ctx, email string) bool {
	claims, ok := ClaimsFromContext(c)
	return ok && claims.Email == email
}

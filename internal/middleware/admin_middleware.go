package middleware

import (
	"context"
	"errors"

	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserLookup finds the stored account behind a token.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AdminMiddleware lets only stored admins through. The role comes from the
// users collection, never from the token, because tokens are issued for
// caller-supplied claims. It must run after AuthMiddleware.
func AdminMiddleware(users UserLookup, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized Access"})
		}

		user, err := users.GetByEmail(c.UserContext(), claims.Email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admins only."})
			}
			log.Error("admin lookup failed", zap.String("email", claims.Email), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching data."})
		}

		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admins only."})
		}
		return c.Next()
	}
}

package middleware

import "github.com/gofiber/fiber/v2"

// RequireSelf allows the request only when the token's email equals the
// named path parameter. It must run after AuthMiddleware.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Email != Param(c, param) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden Access"})
		}
		return c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/arzan03/DrugHouse/internal/metrics"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// TokenVerifier is the part of the token service the gate needs.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// AuthMiddleware rejects requests without a bearer token with 401 and
// requests whose token does not verify with 403. Verified claims are stored
// for later handlers.
func AuthMiddleware(verifier TokenVerifier, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := bearerToken(header)
		if !ok {
			m.AuthFailed("missing")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized Access"})
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			m.AuthFailed("invalid")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden access"})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// ClaimsFrom returns the claims stored by AuthMiddleware.
func ClaimsFrom(c *fiber.Ctx) (*services.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*services.Claims)
	return claims, ok && claims != nil
}

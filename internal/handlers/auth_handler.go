package handlers

import (
	"github.com/arzan03/DrugHouse/internal/metrics"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	tokens  *services.TokenService
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewAuthHandler(tokens *services.TokenService, m *metrics.Metrics, log *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, metrics: m, log: log}
}

// IssueToken signs the posted claims into a bearer token.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var claims services.Claims
	if err := c.BodyParser(&claims); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return fail(c, h.log, err, "Failed to issue token")
	}

	h.metrics.TokenIssued()
	return c.JSON(fiber.Map{"token": token})
}

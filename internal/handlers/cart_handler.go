package handlers

import (
	"github.com/arzan03/DrugHouse/internal/middleware"
	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CartHandler struct {
	carts *services.CartService
	log   *zap.Logger
}

func NewCartHandler(carts *services.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, log: log}
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	claims, _ := middleware.ClaimsFrom(c)
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.carts.Add(c.UserContext(), claims.Email, body.ProductID, body.Quantity)
	if err != nil {
		return fail(c, h.log, err, "Failed to add to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List returns the caller's cart; the route checks :email against the token.
func (h *CartHandler) List(c *fiber.Ctx) error {
	items, err := h.carts.List(c.UserContext(), middleware.Param(c, "email"))
	if err != nil {
		return fail(c, h.log, err, "An error occurred while fetching data.")
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return c.JSON(items)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.carts.Remove(c.UserContext(), claims.Email, c.Params("id")); err != nil {
		return fail(c, h.log, err, "Failed to remove cart item")
	}
	return c.JSON(fiber.Map{"message": "Cart item removed."})
}

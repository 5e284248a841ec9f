package handlers

import (
	"errors"

	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// fail maps a service error to its HTTP status. Anything unrecognised is
// logged and answered with serverMsg as a 500.
func fail(c *fiber.Ctx, log *zap.Logger, err error, serverMsg string) error {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return errorJSON(c, fiber.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidClaims):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnknownKind):
		return errorJSON(c, fiber.StatusNotFound, "Unknown catalog.")
	case errors.Is(err, services.ErrUserNotFound):
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrProductNotFound):
		return errorJSON(c, fiber.StatusNotFound, "Product not found.")
	case errors.Is(err, services.ErrTermNotFound):
		return errorJSON(c, fiber.StatusNotFound, "Catalog entry not found.")
	case errors.Is(err, services.ErrCartItemNotFound):
		return errorJSON(c, fiber.StatusNotFound, "Cart item not found.")
	}

	log.Error(serverMsg, zap.String("path", c.Path()), zap.Error(err))
	return errorJSON(c, fiber.StatusInternalServerError, serverMsg)
}

// pageParam reads ?page=, treating anything missing, non-numeric or below 1
// as the first page.
func pageParam(c *fiber.Ctx) int64 {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return int64(page)
}

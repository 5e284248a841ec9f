package handlers

import (
	"github.com/arzan03/DrugHouse/internal/middleware"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog *services.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog *services.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

// Search lists approved terms of :kind whose text matches :text.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	results, err := h.catalog.Search(c.UserContext(), middleware.Param(c, "kind"), middleware.Param(c, "text"))
	if err != nil {
		return fail(c, h.log, err, "An error occurred while fetching data.")
	}
	return c.JSON(results)
}

// Submit proposes a new term; it stays pending until an admin approves it.
func (h *CatalogHandler) Submit(c *fiber.Ctx) error {
	claims, _ := middleware.ClaimsFrom(c)
	var body struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := h.catalog.Submit(c.UserContext(), c.Params("kind"), body.Text, claims.Email)
	if err != nil {
		return fail(c, h.log, err, "Failed to save catalog entry")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"acknowledged": true, "insertedId": id.Hex()})
}

func (h *CatalogHandler) SetStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.catalog.SetStatus(c.UserContext(), c.Params("kind"), c.Params("id"), body.Status); err != nil {
		return fail(c, h.log, err, "Failed to update catalog entry")
	}
	return c.JSON(fiber.Map{"message": "Status updated successfully."})
}

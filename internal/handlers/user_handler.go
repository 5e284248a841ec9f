package handlers

import (
	"errors"

	"github.com/arzan03/DrugHouse/internal/middleware"
	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	users *services.UserService
	log   *zap.Logger
}

func NewUserHandler(users *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// ListUsers pages through all users, oldest first.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, err := h.users.List(c.UserContext(), pageParam(c))
	if err != nil {
		return fail(c, h.log, err, "Error fetching users")
	}
	return c.JSON(fiber.Map{
		"currentPage": page.Number,
		"totalPages":  page.TotalPages,
		"perPage":     page.PerPage,
		"totalUsers":  page.Total,
		"users":       page.Items,
	})
}

func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, "An error occurred while fetching data.")
	}
	return c.JSON(user)
}

// GetUserByEmail serves the caller's own profile; the route checks that the
// email matches the token.
func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.users.GetByEmail(c.UserContext(), middleware.Param(c, "email"))
	if err != nil {
		return fail(c, h.log, err, "An error occurred while fetching data.")
	}
	return c.JSON(user)
}

// CreateUser registers a customer. An existing email is reported with a
// message rather than an error status.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := h.users.Create(c.UserContext(), &user)
	if errors.Is(err, services.ErrUserExists) {
		return c.JSON(fiber.Map{"message": "user already exist"})
	}
	if err != nil {
		return fail(c, h.log, err, "Failed to create user")
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id.Hex()})
}

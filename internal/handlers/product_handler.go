package handlers

import (
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products *services.ProductService
	images   *services.ImageService
	log      *zap.Logger
}

func NewProductHandler(products *services.ProductService, images *services.ImageService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, images: images, log: log}
}

// ListProducts pages through products that are not banned, newest first.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	page, err := h.products.List(c.UserContext(), pageParam(c))
	if err != nil {
		return fail(c, h.log, err, "An error occurred while fetching data.")
	}
	return c.JSON(fiber.Map{
		"currentPage":   page.Number,
		"totalPages":    page.TotalPages,
		"perPage":       page.PerPage,
		"totalProducts": page.Total,
		"products":      page.Items,
	})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, "An error occurred while fetching data.")
	}
	return c.JSON(product)
}

// UpdateViews adds the posted value to the product's view counter.
func (h *ProductHandler) UpdateViews(c *fiber.Ctx) error {
	var body struct {
		Value *float64 `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil || body.Value == nil {
		return errorJSON(c, fiber.StatusBadRequest, "A numeric value is required.")
	}

	if err := h.products.AddViews(c.UserContext(), c.Params("id"), *body.Value); err != nil {
		return fail(c, h.log, err, "An error occurred while updating the value.")
	}
	return c.JSON(fiber.Map{"message": "Value updated successfully."})
}

// UploadImage stores the multipart "image" file against the product.
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "failed to retrieve image")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "failed to open image")
	}
	defer file.Close()

	key, err := h.images.Upload(c.UserContext(), c.Params("id"), fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType), file, fileHeader.Size)
	if err != nil {
		return fail(c, h.log, err, "Failed to upload image")
	}
	return c.JSON(fiber.Map{"message": "Image uploaded successfully", "key": key})
}

func (h *ProductHandler) ImageURLs(c *fiber.Ctx) error {
	urls, err := h.images.URLs(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, "Failed to generate image links")
	}
	return c.JSON(fiber.Map{
		"images":    urls,
		"expiresIn": services.ImageURLExpiry.String(),
	})
}

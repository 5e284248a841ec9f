package server

import (
	"errors"

	"github.com/arzan03/DrugHouse/internal/handlers"
	"github.com/arzan03/DrugHouse/internal/metrics"
	"github.com/arzan03/DrugHouse/internal/middleware"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

const (
	liveness  = "drug house server is running"
	bodyLimit = 10 * 1024 * 1024
)

// Deps carries everything the HTTP layer needs. Metrics may be nil, in which
// case /metrics is not mounted.
type Deps struct {
	Tokens    *services.TokenService
	Users     *services.UserService
	Products  *services.ProductService
	Catalog   *services.CatalogService
	Carts     *services.CartService
	Images    *services.ImageService
	Metrics   *metrics.Metrics
	Log       *zap.Logger
	StaticDir string
}

// New builds the Fiber app with every route registered.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "DrugHouse",
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler(d.Log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	app.Use(middleware.RequestLogger(d.Log))
	app.Use(d.Metrics.Middleware())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(liveness)
	})
	if d.Metrics != nil {
		app.Get("/metrics", d.Metrics.Handler())
	}

	registerAPI(app, d)

	if d.StaticDir != "" {
		app.Static("/", d.StaticDir)
	}
	return app
}

func registerAPI(app *fiber.App, d Deps) {
	auth := handlers.NewAuthHandler(d.Tokens, d.Metrics, d.Log)
	users := handlers.NewUserHandler(d.Users, d.Log)
	products := handlers.NewProductHandler(d.Products, d.Images, d.Log)
	catalog := handlers.NewCatalogHandler(d.Catalog, d.Log)
	carts := handlers.NewCartHandler(d.Carts, d.Log)

	gate := middleware.AuthMiddleware(d.Tokens, d.Metrics)
	admin := middleware.AdminMiddleware(d.Users, d.Log)

	api := app.Group("/api")

	api.Post("/jwt", auth.IssueToken)

	api.Get("/get/:kind/:text", catalog.Search)
	api.Post("/catalog/:kind", gate, catalog.Submit)
	api.Patch("/catalog/:kind/:id/status", gate, admin, catalog.SetStatus)

	api.Get("/all/users", users.ListUsers)
	api.Get("/userGetById/:id", gate, users.GetUserByID)
	api.Get("/users/:email", gate, middleware.RequireSelf("email"), users.GetUserByEmail)
	api.Post("/add/users", users.CreateUser)

	api.Get("/all/products", products.ListProducts)
	api.Get("/product/:id", products.GetProduct)
	api.Put("/product/views/:id", products.UpdateViews)
	api.Post("/product/:id/image", gate, admin, products.UploadImage)
	api.Get("/product/:id/images", products.ImageURLs)

	api.Post("/add/carts", gate, carts.Add)
	api.Get("/carts/:email", gate, middleware.RequireSelf("email"), carts.List)
	api.Delete("/carts/:id", gate, carts.Remove)
}

// errorHandler keeps Fiber's own errors (unknown route, oversized body,
// recovered panics) in the same {"error": ...} shape as the handlers.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		} else {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studenthub-core/internal/domain/entity"
	"studenthub-core/internal/domain/prompt"
)

type Handlers struct {
	Catalog *CatalogHandler
	Search  *SearchHandler
	Auth    *AuthHandler
}

type BuildInfo struct {
	Version string
	Env     string
}

func SetupRouter(app *fiber.App, h Handlers, info BuildInfo) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": info.Version,
			"env":     info.Env,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes := app.Group("/api")
	// Structured endpoints
	routes.Get("/colleges", h.Catalog.Fixed(entity.CategoryColleges))
	routes.Get("/private_colleges", h.Catalog.Fixed(entity.CategoryPrivateColleges))
	routes.Get("/education", h.Catalog.Fixed(entity.CategoryEducationNews))
	routes.Get("/alerts", h.Catalog.Selectable(prompt.AlertCategories, entity.CategoryGeneralNews))
	routes.Get("/data/all", h.Catalog.All)
	routes.Get("/data", h.Catalog.Selectable(prompt.InsightCategories, entity.CategoryGeneralInsights))

	routes.Post("/search", h.Search.HandleSearch)

	auth := routes.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/verify", h.Auth.Verify)
}
